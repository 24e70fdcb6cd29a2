// Package store is the storage collaborator used by the workflow screens.
// Every call is a blocking call-and-return; multi-step sequences such as
// deleting several marked records are loops in the caller, not transactions.
package store

import (
	"context"
	"errors"
	"time"

	"hospital-tui/internal/models"
)

// ErrNotFound is returned when a record id does not resolve.
var ErrNotFound = errors.New("record not found")

// Repository is the per-entity CRUD contract.
type Repository[T models.Entity] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, rec *T) (int64, error)
	Update(ctx context.Context, rec T) error
	Delete(ctx context.Context, id int64) error
}

// ShiftStore persists shift assignments. Assignments are append-only.
type ShiftStore interface {
	AssignShift(ctx context.Context, staffID int64, date time.Time, kind models.ShiftKind) error
	ListAssignments(ctx context.Context, staffID int64) ([]models.ShiftAssignment, error)
}

// Stores bundles the repositories for every entity the application manages.
type Stores struct {
	Patients Repository[models.Patient]
	Staff    Repository[models.StaffMember]
	Records  Repository[models.MedicalRecord]
	Invoices Repository[models.Invoice]
	Shifts   ShiftStore
}

// dateOnly strips the clock so assignments compare by calendar day.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
