package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/roster-service/internal/config"
	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/events"
	"github.com/spec-kit/roster-service/internal/query"
	"github.com/spec-kit/roster-service/internal/store"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

func newRosterService(t *testing.T, seed []domain.Employee) (*RosterService, events.Dispatcher) {
	t.Helper()
	st := store.NewEmployeeStore(zap.NewNop())
	st.Seed(seed)
	dispatcher := events.NewInMemoryDispatcher()
	cfg := config.Config{App: config.AppConfig{DefaultPageSize: 10}}
	return NewRosterService(cfg, RosterDependencies{Store: st, Dispatcher: dispatcher}), dispatcher
}

func minimalInput() domain.Employee {
	return domain.Employee{
		Name:         "New Joiner",
		EmployeeCode: "GEP999",
		Location:     domain.AllowedLocations[0],
		Skillset:     []string{"SAP", "Power BI"},
	}
}

func TestCreateAssignsIDAndDefaults(t *testing.T) {
	svc, _ := newRosterService(t, nil)

	rec, err := svc.Create(context.Background(), minimalInput())
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Active", rec.EmploymentStatus)
	assert.Equal(t, "Global Delivery", rec.SubFunction)
	// Single-skill normalization.
	assert.Equal(t, []string{"SAP"}, rec.Skillset)

	result := svc.Query(query.Params{Page: 1})
	require.Equal(t, 1, result.Total)
	assert.Equal(t, rec.ID, result.Items[0].ID)
}

func TestCreatePublishesEvent(t *testing.T) {
	svc, dispatcher := newRosterService(t, nil)

	var got []events.Event
	dispatcher.Subscribe(events.EventEmployeeAdded, func(ctx context.Context, e events.Event) error {
		got = append(got, e)
		return nil
	})

	rec, err := svc.Create(context.Background(), minimalInput())
	require.NoError(t, err)
	require.Len(t, got, 1)
	payload := got[0].Payload.(events.EmployeeChangedPayload)
	assert.Equal(t, rec.ID, payload.EmployeeID)
	assert.Equal(t, "GEP999", payload.EmployeeCode)
}

func TestCreateRejectsMissingIdentity(t *testing.T) {
	svc, _ := newRosterService(t, nil)

	_, err := svc.Create(context.Background(), domain.Employee{Name: "No Code"})
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "employeeCode")
}

func TestCreateRejectsAvailabilityOutOfRange(t *testing.T) {
	svc, _ := newRosterService(t, nil)

	input := minimalInput()
	input.Availability60Days = 150
	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)
	assert.Contains(t, apperrors.ToDomainError(err).Details, "availability60Days")
}

func TestReplaceKeepsIDAndPosition(t *testing.T) {
	seed := store.SeedEmployees()
	svc, _ := newRosterService(t, seed)
	target := seed[3]

	input := minimalInput()
	input.Name = "Replaced Person"
	rec, err := svc.Replace(context.Background(), target.ID, input)
	require.NoError(t, err)
	assert.Equal(t, target.ID, rec.ID)

	result := svc.Query(query.Params{Page: 1, PageSize: 50})
	assert.Equal(t, "Replaced Person", result.Items[3].Name)
	assert.Equal(t, 50, result.Total)
}

func TestReplaceUnknownID(t *testing.T) {
	svc, _ := newRosterService(t, store.SeedEmployees())

	_, err := svc.Replace(context.Background(), "no-such-id", minimalInput())
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestQueryAppliesDefaultPageSize(t *testing.T) {
	svc, _ := newRosterService(t, store.SeedEmployees())

	result := svc.Query(query.Params{Page: 1})
	assert.Len(t, result.Items, 10)
	assert.Equal(t, 5, result.PageCount)
}

func TestDistinctValues(t *testing.T) {
	svc, _ := newRosterService(t, store.SeedEmployees())

	locations, err := svc.DistinctValues("location")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"India – Coimbatore",
		"India – Hyderabad",
		"India – Mumbai",
	}, locations)

	skills, err := svc.DistinctValues("skillset")
	require.NoError(t, err)
	assert.Len(t, skills, 6)

	_, err = svc.DistinctValues("favoriteColor")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}
