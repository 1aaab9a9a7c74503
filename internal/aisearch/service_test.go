package aisearch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/store"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

const strictReply = `[{"employeeCode":"GEP001","name":"Aditya Sharma","employmentStatus":"Active","functionGroup":"Consulting","subFunction":"Global Delivery","skillset":["Power BI"]}]`

type fakeSearcher struct {
	mu      sync.Mutex
	reply   string
	err     error
	calls   int
	release chan struct{}
	started chan struct{}
}

func (f *fakeSearcher) Search(ctx context.Context, records []domain.Employee, query string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return f.reply, f.err
}

func (f *fakeSearcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func newSearchService(t *testing.T, searcher Searcher, cache ResponseCache) *Service {
	t.Helper()
	st := store.NewEmployeeStore(zap.NewNop())
	st.Seed([]domain.Employee{{ID: "1", EmployeeCode: "GEP001", Name: "Aditya Sharma"}})
	return NewService(Dependencies{
		Store:    st,
		Client:   searcher,
		Cache:    cache,
		CacheTTL: time.Minute,
		Logger:   zap.NewNop(),
	})
}

func TestSearchStrictSuccess(t *testing.T) {
	svc := newSearchService(t, &fakeSearcher{reply: strictReply}, nil)

	result, err := svc.Search(context.Background(), "power bi people")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, result.Outcome)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "GEP001", result.Records[0].EmployeeCode)
	assert.Zero(t, result.Rejected)
}

func TestSearchRecoveredFromMalformedReply(t *testing.T) {
	svc := newSearchService(t, &fakeSearcher{
		reply: "[{employeeCode:'GEP001',name:'Aditya Sharma'}]",
	}, nil)

	result, err := svc.Search(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, OutcomeRecovered, result.Outcome)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Aditya Sharma", result.Records[0].Name)
}

func TestSearchServiceEmptyArray(t *testing.T) {
	svc := newSearchService(t, &fakeSearcher{reply: "[]"}, nil)

	result, err := svc.Search(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, OutcomeServiceEmpty, result.Outcome)
	assert.Empty(t, result.Records)
}

func TestSearchStrictWipeoutEscalatesToLenient(t *testing.T) {
	// Parses strictly but every candidate misses a strict-required key, so
	// the service re-parses the same payload leniently.
	svc := newSearchService(t, &fakeSearcher{
		reply: `[{"employeeCode":"GEP001","name":"Aditya Sharma"}]`,
	}, nil)

	result, err := svc.Search(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, OutcomeRecovered, result.Outcome)
	require.Len(t, result.Records, 1)
}

func TestSearchValidationEmpty(t *testing.T) {
	svc := newSearchService(t, &fakeSearcher{
		reply: `[{"employeeCode":"","name":""}]`,
	}, nil)

	result, err := svc.Search(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, OutcomeValidationEmpty, result.Outcome)
	assert.Empty(t, result.Records)
	assert.Equal(t, 1, result.Rejected)
}

func TestSearchUnparseableReplyFails(t *testing.T) {
	svc := newSearchService(t, &fakeSearcher{
		reply: "I found nothing worth mentioning.",
	}, nil)

	_, err := svc.Search(context.Background(), "q")
	require.Error(t, err)
	assert.Equal(t, "RECOVERY_FAILED", apperrors.ToDomainError(err).Code)
}

func TestSearchClientErrorPropagates(t *testing.T) {
	svc := newSearchService(t, &fakeSearcher{
		err: apperrors.NewRequestError("API request failed: 500 - boom", nil),
	}, nil)

	_, err := svc.Search(context.Background(), "q")
	require.Error(t, err)
	assert.Equal(t, "REQUEST_FAILED", apperrors.ToDomainError(err).Code)
}

func TestSearchBlankQueryRejected(t *testing.T) {
	searcher := &fakeSearcher{reply: "[]"}
	svc := newSearchService(t, searcher, nil)

	_, err := svc.Search(context.Background(), "   ")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	assert.Zero(t, searcher.callCount())
}

func TestSearchSecondInvocationWhileInFlight(t *testing.T) {
	searcher := &fakeSearcher{
		reply:   strictReply,
		release: make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	svc := newSearchService(t, searcher, nil)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Search(context.Background(), "first")
		done <- err
	}()
	<-searcher.started

	_, err := svc.Search(context.Background(), "second")
	require.Error(t, err)
	assert.Equal(t, "SEARCH_IN_FLIGHT", apperrors.ToDomainError(err).Code)

	close(searcher.release)
	require.NoError(t, <-done)

	// Idle again after the first finishes.
	_, err = svc.Search(context.Background(), "third")
	assert.NoError(t, err)
}

func TestSearchCacheHitSkipsClient(t *testing.T) {
	cache := newFakeCache()
	searcher := &fakeSearcher{reply: strictReply}
	svc := newSearchService(t, searcher, cache)

	_, err := svc.Search(context.Background(), "power bi")
	require.NoError(t, err)
	assert.Equal(t, 1, searcher.callCount())

	_, err = svc.Search(context.Background(), "power bi")
	require.NoError(t, err)
	assert.Equal(t, 1, searcher.callCount())

	// A different query misses.
	_, err = svc.Search(context.Background(), "sap")
	require.NoError(t, err)
	assert.Equal(t, 2, searcher.callCount())
}

func TestSearchFailedCallNotCached(t *testing.T) {
	cache := newFakeCache()
	searcher := &fakeSearcher{err: apperrors.NewRequestError("down", nil)}
	svc := newSearchService(t, searcher, cache)

	_, err := svc.Search(context.Background(), "q")
	require.Error(t, err)
	assert.Empty(t, cache.entries)
}
