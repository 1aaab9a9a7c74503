package store

import (
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/roster-service/internal/domain"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

// EmployeeStore holds the current ordered sequence of personnel records in
// process memory. It is rebuilt from the static seed on each run; there is no
// persistence. Newest records come first. Records are never mutated in place:
// an edit is a full replacement keyed by id, and deletion is not supported.
type EmployeeStore struct {
	mu      sync.RWMutex
	records []domain.Employee
	logger  *zap.Logger
}

// NewEmployeeStore creates an empty store.
func NewEmployeeStore(logger *zap.Logger) *EmployeeStore {
	return &EmployeeStore{logger: logger}
}

// Seed replaces the working set with the given records.
func (s *EmployeeStore) Seed(records []domain.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]domain.Employee{}, records...)
	s.warnInvalidLocations(s.records)
}

// Snapshot returns a copy of the full collection. Callers filter and sort the
// copy freely without exposing a mutable alias of the working set.
func (s *EmployeeStore) Snapshot() []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Employee, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the current record count.
func (s *EmployeeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Add prepends a record so the newest entry is shown first.
func (s *EmployeeStore) Add(e domain.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]domain.Employee{e}, s.records...)
	s.warnInvalidLocations([]domain.Employee{e})
}

// Replace swaps the record with the same id wholesale.
func (s *EmployeeStore) Replace(e domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == e.ID {
			s.records[i] = e
			s.warnInvalidLocations([]domain.Employee{e})
			return nil
		}
	}
	return apperrors.NewNotFound("employee", map[string]any{"id": e.ID})
}

// GetByID fetches a copy of one record.
func (s *EmployeeStore) GetByID(id string) (*domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.records {
		if s.records[i].ID == id {
			rec := s.records[i]
			return &rec, nil
		}
	}
	return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
}

func (s *EmployeeStore) warnInvalidLocations(records []domain.Employee) {
	if s.logger == nil {
		return
	}
	for i := range records {
		if !domain.LocationAllowed(records[i].Location) {
			s.logger.Warn("employee location outside whitelist",
				zap.String("employee_code", records[i].EmployeeCode),
				zap.String("location", records[i].Location))
		}
	}
}
