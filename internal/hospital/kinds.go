package hospital

import (
	"strconv"
	"strings"

	"hospital-tui/internal/models"
	"hospital-tui/internal/workflow"
)

func PatientKind() workflow.Kind[models.Patient] {
	type P = models.Patient
	return workflow.Kind[P]{
		Noun:   "patient",
		Plural: "patients",
		Fields: []workflow.Field[P]{
			idField[P](),
			textField("First name", true, func(p P) string { return p.FirstName }, func(p *P, v string) { p.FirstName = v }),
			textField("Last name", true, func(p P) string { return p.LastName }, func(p *P, v string) { p.LastName = v }),
			{
				Name:   "Date of birth",
				Format: func(p P) string { return p.DateOfBirth },
				Parse: func(p *P, raw string) error {
					dob, err := parseDate(raw)
					if err != nil {
						return err
					}
					p.DateOfBirth = dob
					return nil
				},
			},
			{
				Name:   "Gender",
				Format: func(p P) string { return string(p.Gender) },
				Parse: func(p *P, raw string) error {
					p.Gender = ParseGender(raw)
					return nil
				},
			},
			textField("Address", false, func(p P) string { return p.Address }, func(p *P, v string) { p.Address = v }),
			textField("Phone", false, func(p P) string { return p.PhoneNumber }, func(p *P, v string) { p.PhoneNumber = v }),
			emailField(func(p P) string { return p.Email }, func(p *P, v string) { p.Email = v }),
			textField("Medical history", false, func(p P) string { return p.MedicalHistory }, func(p *P, v string) { p.MedicalHistory = v }),
			textField("Allergies", false, func(p P) string { return p.Allergies }, func(p *P, v string) { p.Allergies = v }),
			textField("Current medications", false, func(p P) string { return p.CurrentMedications }, func(p *P, v string) { p.CurrentMedications = v }),
		},
		ListFields: []int{0, 1, 2, 3, 4, 6},
		Project: func(p P) string {
			return strings.Join([]string{p.FirstName, p.LastName, strconv.FormatInt(p.ID, 10), p.PhoneNumber}, " ")
		},
		Validate: func(p P) error { return validateModel(p) },
	}
}

func StaffKind() workflow.Kind[models.StaffMember] {
	type S = models.StaffMember
	return workflow.Kind[S]{
		Noun:   "staff member",
		Plural: "staff members",
		Fields: []workflow.Field[S]{
			idField[S](),
			textField("Name", true, func(s S) string { return s.Name }, func(s *S, v string) { s.Name = v }),
			{
				Name:   "Role",
				Format: func(s S) string { return string(s.Role) },
				Parse: func(s *S, raw string) error {
					s.Role = ParseRole(raw)
					return nil
				},
			},
			textField("Phone", false, func(s S) string { return s.PhoneNumber }, func(s *S, v string) { s.PhoneNumber = v }),
			emailField(func(s S) string { return s.Email }, func(s *S, v string) { s.Email = v }),
			textField("Address", false, func(s S) string { return s.Address }, func(s *S, v string) { s.Address = v }),
		},
		Project: func(s S) string {
			return strings.Join([]string{s.Name, strconv.FormatInt(s.ID, 10), s.PhoneNumber, s.Address}, " ")
		},
		Validate: func(s S) error { return validateModel(s) },
	}
}

// RecordKind describes medical records. Records are searchable by the name
// of their patient, which dir supplies.
func RecordKind(dir *PatientDirectory) workflow.Kind[models.MedicalRecord] {
	type R = models.MedicalRecord
	return workflow.Kind[R]{
		Noun:   "record",
		Plural: "records",
		Fields: []workflow.Field[R]{
			idField[R](),
			patientIDField(func(r R) int64 { return r.PatientID }, func(r *R, id int64) { r.PatientID = id }),
			computedField("Patient", func(r R) string { return dir.Name(r.PatientID) }),
			textField("Doctor notes", false, func(r R) string { return r.DoctorNotes }, func(r *R, v string) { r.DoctorNotes = v }),
			textField("Nurse notes", false, func(r R) string { return r.NurseNotes }, func(r *R, v string) { r.NurseNotes = v }),
			textField("Diagnosis", true, func(r R) string { return r.Diagnosis }, func(r *R, v string) { r.Diagnosis = v }),
			textField("Prescription", false, func(r R) string { return r.Prescription }, func(r *R, v string) { r.Prescription = v }),
		},
		ListFields: []int{0, 1, 2, 5, 6},
		Project: func(r R) string {
			return strings.Join([]string{strconv.FormatInt(r.PatientID, 10), dir.Name(r.PatientID), r.Diagnosis}, " ")
		},
		Validate: func(r R) error {
			if err := validateModel(r); err != nil {
				return err
			}
			return dir.requirePatient(r.PatientID)
		},
		Prepare: dir.Reload,
	}
}

func InvoiceKind(dir *PatientDirectory) workflow.Kind[models.Invoice] {
	type I = models.Invoice
	return workflow.Kind[I]{
		Noun:   "invoice",
		Plural: "invoices",
		Fields: []workflow.Field[I]{
			idField[I](),
			patientIDField(func(i I) int64 { return i.PatientID }, func(i *I, id int64) { i.PatientID = id }),
			computedField("Patient", func(i I) string { return dir.Name(i.PatientID) }),
			textField("Item", true, func(i I) string { return i.Item }, func(i *I, v string) { i.Item = v }),
			{
				Name:   "Quantity",
				Format: func(i I) string { return strconv.Itoa(i.Quantity) },
				Parse: func(i *I, raw string) error {
					q, err := parseQuantity(raw)
					if err != nil {
						return err
					}
					i.Quantity = q
					return nil
				},
			},
			{
				Name:   "Cost",
				Format: func(i I) string { return i.Cost.StringFixed(2) },
				Parse: func(i *I, raw string) error {
					cost, err := parseCost(raw)
					if err != nil {
						return err
					}
					i.Cost = cost
					return nil
				},
			},
			computedField("Total", func(i I) string { return i.Total().StringFixed(2) }),
		},
		Project: func(i I) string {
			return strings.Join([]string{strconv.FormatInt(i.PatientID, 10), i.Item, dir.Name(i.PatientID)}, " ")
		},
		Validate: func(i I) error {
			if err := validateModel(i); err != nil {
				return err
			}
			return dir.requirePatient(i.PatientID)
		},
		Prepare: dir.Reload,
	}
}

func (d *PatientDirectory) requirePatient(id int64) error {
	if _, ok := d.Lookup(id); !ok {
		return &workflow.NotFoundError{Noun: "patient", ID: id}
	}
	return nil
}
