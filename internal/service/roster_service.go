package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/roster-service/internal/config"
	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/events"
	"github.com/spec-kit/roster-service/internal/query"
	"github.com/spec-kit/roster-service/internal/store"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

// RosterService exposes the record collection: querying, creation, and
// edit-as-replacement. Reads work on a store snapshot, so concurrent queries
// never observe a mutable alias.
type RosterService struct {
	store           *store.EmployeeStore
	dispatcher      events.Dispatcher
	defaultPageSize int
}

// RosterDependencies encapsulates collaborators for the roster service.
type RosterDependencies struct {
	Store      *store.EmployeeStore
	Dispatcher events.Dispatcher
}

// NewRosterService constructs the service.
func NewRosterService(cfg config.Config, deps RosterDependencies) *RosterService {
	pageSize := cfg.App.DefaultPageSize
	if pageSize < 1 {
		pageSize = 10
	}
	return &RosterService{
		store:           deps.Store,
		dispatcher:      deps.Dispatcher,
		defaultPageSize: pageSize,
	}
}

// Query executes the filter/search/sort/paginate pipeline over the current
// collection.
func (s *RosterService) Query(p query.Params) query.Result {
	if p.PageSize < 1 {
		p.PageSize = s.defaultPageSize
	}
	return query.Execute(s.store.Snapshot(), p)
}

// DefaultPageSize reports the configured page size.
func (s *RosterService) DefaultPageSize() int {
	return s.defaultPageSize
}

// Create appends a new record, newest first. Optional fields get defaults so
// the stored record is always fully populated.
func (s *RosterService) Create(ctx context.Context, input domain.Employee) (*domain.Employee, error) {
	if err := validateRecord(input); err != nil {
		return nil, err
	}
	input.ID = uuid.NewString()
	rec := domain.NormalizeSkillset(domain.ApplyDefaults(input))
	s.store.Add(rec)
	s.publishChange(ctx, events.EventEmployeeAdded, rec)
	return &rec, nil
}

// Replace swaps the record with the given id wholesale; records are never
// mutated in place.
func (s *RosterService) Replace(ctx context.Context, id string, input domain.Employee) (*domain.Employee, error) {
	if err := validateRecord(input); err != nil {
		return nil, err
	}
	if _, err := s.store.GetByID(id); err != nil {
		return nil, err
	}
	input.ID = id
	rec := domain.NormalizeSkillset(domain.ApplyDefaults(input))
	if err := s.store.Replace(rec); err != nil {
		return nil, err
	}
	s.publishChange(ctx, events.EventEmployeeReplaced, rec)
	return &rec, nil
}

// GetByID fetches one record.
func (s *RosterService) GetByID(id string) (*domain.Employee, error) {
	return s.store.GetByID(id)
}

// DistinctValues lists the sorted unique values of one field across the
// collection, backing select-style filters. The skill set flattens.
func (s *RosterService) DistinctValues(field string) ([]string, error) {
	records := s.store.Snapshot()
	seen := map[string]struct{}{}
	values := []string{}

	add := func(v string) {
		if v == "" {
			return
		}
		if _, dup := seen[v]; dup {
			return
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	for _, rec := range records {
		value, ok := query.FieldValue(rec, field)
		if !ok {
			return nil, apperrors.NewValidationError("unknown field", map[string]any{"field": field})
		}
		switch v := value.(type) {
		case []string:
			for _, item := range v {
				add(item)
			}
		case string:
			add(v)
		case int:
			add(strconv.Itoa(v))
		}
	}
	sort.Strings(values)
	return values, nil
}

func validateRecord(input domain.Employee) error {
	details := map[string]any{}
	if input.Name == "" {
		details["name"] = "required"
	}
	if input.EmployeeCode == "" {
		details["employeeCode"] = "required"
	}
	for field, pct := range map[string]int{
		"currentAvailability": input.CurrentAvailability,
		"availability30Days":  input.Availability30Days,
		"availability60Days":  input.Availability60Days,
		"availability90Days":  input.Availability90Days,
		"availability120Days": input.Availability120Days,
	} {
		if pct < 0 || pct > 100 {
			details[field] = "must be within 0-100"
		}
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid employee record", details)
	}
	return nil
}

func (s *RosterService) publishChange(ctx context.Context, eventType events.EventType, rec domain.Employee) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload: events.EmployeeChangedPayload{
			EmployeeID:   rec.ID,
			EmployeeCode: rec.EmployeeCode,
			Name:         rec.Name,
			Location:     rec.Location,
		},
	})
}

