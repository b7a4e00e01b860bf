// Package memory keeps users and reports in process memory. It backs local
// runs with STORAGE_DRIVER=memory and stands in for Postgres in tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hongminglow/guard-reports-be/internal/models"
	"github.com/hongminglow/guard-reports-be/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	nextID map[string]int64
	now    func() time.Time

	users        map[int64]models.User
	shifts       map[int64]models.ShiftReport
	workstations map[int64]models.WorkstationReport
	incidents    map[int64]models.IncidentReport
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		nextID:       map[string]int64{},
		now:          time.Now,
		users:        map[int64]models.User{},
		shifts:       map[int64]models.ShiftReport{},
		workstations: map[int64]models.WorkstationReport{},
		incidents:    map[int64]models.IncidentReport{},
	}
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() {}

// allocate must be called with mu held.
func (s *Store) allocate(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

// CreateUser assigns the next id, rejecting a duplicate correo.
func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(user.Correo, 0) {
		return models.User{}, storage.ErrAlreadyExists
	}
	user.ID = s.allocate("usuarios")
	user.CreatedAt = s.now().UTC()
	s.users[user.ID] = user
	return user, nil
}

// ListUsers returns users ordered by id.
func (s *Store) ListUsers(context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.users), nil
}

// GetUser returns storage.ErrNotFound for unknown ids.
func (s *Store) GetUser(_ context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lookup(s.users, id)
}

// FindByEmail looks a user up by exact correo.
func (s *Store) FindByEmail(_ context.Context, correo string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Correo == correo {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

// UpdateUser replaces every column; an empty PasswordHash keeps the stored one.
func (s *Store) UpdateUser(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.users[user.ID]
	if !ok {
		return storage.ErrNotFound
	}
	if s.emailTaken(user.Correo, user.ID) {
		return storage.ErrAlreadyExists
	}
	if user.PasswordHash == "" {
		user.PasswordHash = current.PasswordHash
	}
	user.CreatedAt = current.CreatedAt
	s.users[user.ID] = user
	return nil
}

// DeleteUser removes the user with id.
func (s *Store) DeleteUser(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

// emailTaken must be called with mu held.
func (s *Store) emailTaken(correo string, except int64) bool {
	for id, user := range s.users {
		if id != except && user.Correo == correo {
			return true
		}
	}
	return false
}

// CreateShiftReport stores r and returns its id.
func (s *Store) CreateShiftReport(_ context.Context, r models.ShiftReport) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.allocate("reportes")
	r.CreatedAt = s.now().UTC()
	s.shifts[r.ID] = r
	return r.ID, nil
}

// ListShiftReports returns shift reports ordered by id.
func (s *Store) ListShiftReports(context.Context) ([]models.ShiftReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.shifts), nil
}

// GetShiftReport returns storage.ErrNotFound for unknown ids.
func (s *Store) GetShiftReport(_ context.Context, id int64) (models.ShiftReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lookup(s.shifts, id)
}

// CreateWorkstationReport stores r and returns its id.
func (s *Store) CreateWorkstationReport(_ context.Context, r models.WorkstationReport) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.allocate("puestos_trabajo")
	r.CreatedAt = s.now().UTC()
	s.workstations[r.ID] = r
	return r.ID, nil
}

// ListWorkstationReports returns workstation reports ordered by id.
func (s *Store) ListWorkstationReports(context.Context) ([]models.WorkstationReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.workstations), nil
}

// GetWorkstationReport returns storage.ErrNotFound for unknown ids.
func (s *Store) GetWorkstationReport(_ context.Context, id int64) (models.WorkstationReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lookup(s.workstations, id)
}

// CreateIncidentReport stores r and returns its id.
func (s *Store) CreateIncidentReport(_ context.Context, r models.IncidentReport) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.allocate("reporte_incidente")
	r.CreatedAt = s.now().UTC()
	s.incidents[r.ID] = r
	return r.ID, nil
}

// ListIncidentReports returns incident reports ordered by id.
func (s *Store) ListIncidentReports(context.Context) ([]models.IncidentReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sorted(s.incidents), nil
}

// GetIncidentReport returns storage.ErrNotFound for unknown ids.
func (s *Store) GetIncidentReport(_ context.Context, id int64) (models.IncidentReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lookup(s.incidents, id)
}

func lookup[T any](table map[int64]T, id int64) (T, error) {
	item, ok := table[id]
	if !ok {
		var zero T
		return zero, storage.ErrNotFound
	}
	return item, nil
}

func sorted[T any](table map[int64]T) []T {
	ids := make([]int64, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, table[id])
	}
	return out
}
