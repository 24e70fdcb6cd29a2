package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"hospital-tui/internal/models"
)

type idSetter interface {
	SetID(id int64)
}

// MemoryRepository keeps records in a map. Used when no database is
// configured and as a fake in tests.
type MemoryRepository[T models.Entity] struct {
	mu     sync.RWMutex
	items  map[int64]T
	nextID int64
}

func NewMemoryRepository[T models.Entity]() *MemoryRepository[T] {
	return &MemoryRepository[T]{items: map[int64]T{}, nextID: 1}
}

func (r *MemoryRepository[T]) List(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]T, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].GetID() < items[j].GetID() })
	return items, nil
}

func (r *MemoryRepository[T]) Get(_ context.Context, id int64) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return item, ErrNotFound
	}
	return item, nil
}

func (r *MemoryRepository[T]) Create(_ context.Context, rec *T) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	if setter, ok := any(rec).(idSetter); ok {
		setter.SetID(id)
	}
	r.items[id] = *rec
	return id, nil
}

func (r *MemoryRepository[T]) Update(_ context.Context, rec T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[rec.GetID()]; !ok {
		return ErrNotFound
	}
	r.items[rec.GetID()] = rec
	return nil
}

func (r *MemoryRepository[T]) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// MemoryShiftStore keeps assignments in insertion order.
type MemoryShiftStore struct {
	mu          sync.RWMutex
	assignments []models.ShiftAssignment
}

func (s *MemoryShiftStore) AssignShift(_ context.Context, staffID int64, date time.Time, kind models.ShiftKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := models.ShiftAssignment{StaffID: staffID, Date: dateOnly(date), Shift: kind}
	a.ID = int64(len(s.assignments) + 1)
	s.assignments = append(s.assignments, a)
	return nil
}

func (s *MemoryShiftStore) ListAssignments(_ context.Context, staffID int64) ([]models.ShiftAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.ShiftAssignment
	for _, a := range s.assignments {
		if a.StaffID == staffID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// NewMemoryStores wires in-memory repositories for every entity.
func NewMemoryStores() *Stores {
	return &Stores{
		Patients: NewMemoryRepository[models.Patient](),
		Staff:    NewMemoryRepository[models.StaffMember](),
		Records:  NewMemoryRepository[models.MedicalRecord](),
		Invoices: NewMemoryRepository[models.Invoice](),
		Shifts:   &MemoryShiftStore{},
	}
}
