package aisearch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/events"
	"github.com/spec-kit/roster-service/internal/store"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

// OutcomeKind classifies how one search invocation ended.
type OutcomeKind string

const (
	// OutcomeSuccess: strict parse and strict validation both held.
	OutcomeSuccess OutcomeKind = "success"
	// OutcomeRecovered: results came through the lenient repair path and
	// deserve a lower-confidence presentation.
	OutcomeRecovered OutcomeKind = "recovered"
	// OutcomeServiceEmpty: the service itself returned an empty array,
	// meaning no matches.
	OutcomeServiceEmpty OutcomeKind = "empty"
	// OutcomeValidationEmpty: the reply parsed but no candidate could be
	// confirmed as a valid record.
	OutcomeValidationEmpty OutcomeKind = "validation_empty"
)

// SearchResult is the terminal state of one invocation.
type SearchResult struct {
	Records  []domain.Employee
	Outcome  OutcomeKind
	Rejected int
}

// ResponseCache stores raw service replies keyed by dataset and query.
// Implementations are best-effort; a miss or a failed write never fails the
// search.
type ResponseCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

// Dependencies wires the search service.
type Dependencies struct {
	Store      *store.EmployeeStore
	Client     Searcher
	Cache      ResponseCache
	CacheTTL   time.Duration
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// Service drives one search invocation end to end: snapshot the store, call
// the generative-text service, recover structured candidates from the reply,
// validate them into typed records. Only one search may be in flight at a
// time; a second invocation is rejected rather than queued, which also
// removes any need for request identifiers or response reordering.
type Service struct {
	store      *store.EmployeeStore
	client     Searcher
	cache      ResponseCache
	cacheTTL   time.Duration
	dispatcher events.Dispatcher
	logger     *zap.Logger

	mu        sync.Mutex
	searching bool
}

// NewService constructs the service.
func NewService(deps Dependencies) *Service {
	return &Service{
		store:      deps.Store,
		client:     deps.Client,
		cache:      deps.Cache,
		cacheTTL:   deps.CacheTTL,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Search runs one invocation. Errors are RequestError, RecoveryError, or the
// in-flight conflict; every path returns the service to idle.
func (s *Service) Search(ctx context.Context, query string) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("search query required", nil)
	}

	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	records := s.store.Snapshot()

	raw, cached, err := s.fetchRaw(ctx, records, query)
	if err != nil {
		s.publishFailure(ctx, query, err)
		return nil, err
	}

	outcome, err := Recover(raw)
	if err != nil {
		s.publishFailure(ctx, query, err)
		return nil, err
	}

	result, err := s.resolve(outcome)
	if err != nil {
		s.publishFailure(ctx, query, err)
		return nil, err
	}

	s.logger.Info("search completed",
		zap.String("outcome", string(result.Outcome)),
		zap.Int("results", len(result.Records)),
		zap.Int("rejected", result.Rejected),
		zap.Bool("cached", cached))
	s.publish(ctx, events.EventSearchCompleted, events.SearchCompletedPayload{
		Query:       query,
		Outcome:     string(result.Outcome),
		ResultCount: len(result.Records),
		Rejected:    result.Rejected,
	})
	return result, nil
}

// resolve maps a recovery outcome onto a terminal result, escalating a
// strict-path validation wipeout to the lenient repair pass over the same
// payload. "Zero results" is only reported when the service itself returned
// an empty array.
func (s *Service) resolve(outcome Outcome) (*SearchResult, error) {
	if outcome.Tag == TagRecovered {
		validation := ValidateLenient(outcome.Candidates)
		return recoveredResult(validation), nil
	}

	if len(outcome.Candidates) == 0 {
		return &SearchResult{Outcome: OutcomeServiceEmpty}, nil
	}

	validation := ValidateStrict(outcome.Candidates)
	if len(validation.Records) > 0 {
		return &SearchResult{
			Records:  validation.Records,
			Outcome:  OutcomeSuccess,
			Rejected: validation.Rejected,
		}, nil
	}

	candidates, err := RepairAndParse(outcome.Payload)
	if err != nil {
		return nil, apperrors.NewRecoveryError("could not parse results from the AI response", err)
	}
	return recoveredResult(ValidateLenient(candidates)), nil
}

func recoveredResult(validation Validation) *SearchResult {
	if len(validation.Records) == 0 {
		return &SearchResult{Outcome: OutcomeValidationEmpty, Rejected: validation.Rejected}
	}
	return &SearchResult{
		Records:  validation.Records,
		Outcome:  OutcomeRecovered,
		Rejected: validation.Rejected,
	}
}

func (s *Service) fetchRaw(ctx context.Context, records []domain.Employee, query string) (raw string, cached bool, err error) {
	key := cacheKey(records, query)
	if s.cache != nil {
		if hit, ok := s.cache.Get(ctx, key); ok {
			return hit, true, nil
		}
	}

	raw, err = s.client.Search(ctx, records, query)
	if err != nil {
		return "", false, err
	}
	if s.cache != nil && s.cacheTTL > 0 {
		s.cache.Set(ctx, key, raw, s.cacheTTL)
	}
	return raw, false, nil
}

func (s *Service) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.searching {
		return apperrors.NewSearchInFlight()
	}
	s.searching = true
	return nil
}

func (s *Service) end() {
	s.mu.Lock()
	s.searching = false
	s.mu.Unlock()
}

func (s *Service) publishFailure(ctx context.Context, query string, err error) {
	domainErr := apperrors.ToDomainError(err)
	s.logger.Warn("search failed",
		zap.String("code", domainErr.Code),
		zap.Error(domainErr))
	s.publish(ctx, events.EventSearchFailed, events.SearchFailedPayload{
		Query:  query,
		Code:   domainErr.Code,
		Reason: domainErr.Message,
	})
}

func (s *Service) publish(ctx context.Context, eventType events.EventType, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}

// cacheKey hashes the serialized dataset and query together, so any change
// to the working set misses the cache.
func cacheKey(records []domain.Employee, query string) string {
	hash := sha256.New()
	if dataset, err := json.Marshal(records); err == nil {
		hash.Write(dataset)
	}
	hash.Write([]byte{0})
	hash.Write([]byte(query))
	return "aisearch:" + hex.EncodeToString(hash.Sum(nil))
}
