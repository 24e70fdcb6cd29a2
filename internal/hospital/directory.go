// Package hospital binds the generic record workflow to the hospital's
// entities: patients, staff, medical records and invoices.
package hospital

import (
	"context"

	"hospital-tui/internal/models"
	"hospital-tui/internal/store"
)

// PatientDirectory caches patients by id so records and invoices can be
// searched and shown by patient name.
type PatientDirectory struct {
	repo     store.Repository[models.Patient]
	patients map[int64]models.Patient
}

func NewPatientDirectory(repo store.Repository[models.Patient]) *PatientDirectory {
	return &PatientDirectory{repo: repo, patients: map[int64]models.Patient{}}
}

// Reload replaces the cache with the current patient table.
func (d *PatientDirectory) Reload(ctx context.Context) error {
	list, err := d.repo.List(ctx)
	if err != nil {
		return err
	}
	patients := make(map[int64]models.Patient, len(list))
	for _, p := range list {
		patients[p.ID] = p
	}
	d.patients = patients
	return nil
}

func (d *PatientDirectory) Lookup(id int64) (models.Patient, bool) {
	p, ok := d.patients[id]
	return p, ok
}

// Name returns the patient's full name, or "" for unknown ids.
func (d *PatientDirectory) Name(id int64) string {
	return d.patients[id].FullName()
}
