package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"hospital-tui/internal/models"
)

// SeedSummary reports how many records Seed created per entity.
type SeedSummary struct {
	Patients int
	Staff    int
	Records  int
	Invoices int
}

// Seed fills the stores with a small demo data set.
func Seed(ctx context.Context, s *Stores) (SeedSummary, error) {
	var sum SeedSummary

	patients := []models.Patient{
		{FirstName: "Amara", LastName: "Okafor", DateOfBirth: "1984-03-12", Gender: models.GenderFemale,
			Address: "14 Elm Street", PhoneNumber: "555-0101", Email: "amara@example.com", Allergies: "Penicillin"},
		{FirstName: "Jonas", LastName: "Berg", DateOfBirth: "1971-11-02", Gender: models.GenderMale,
			Address: "3 Harbour Road", PhoneNumber: "555-0102", MedicalHistory: "Hypertension",
			CurrentMedications: "Lisinopril"},
		{FirstName: "Mei", LastName: "Tanaka", DateOfBirth: "1999-07-23", Gender: models.GenderFemale,
			Address: "88 Hill Avenue", PhoneNumber: "555-0103"},
	}
	patientIDs := make([]int64, 0, len(patients))
	for i := range patients {
		id, err := s.Patients.Create(ctx, &patients[i])
		if err != nil {
			return sum, fmt.Errorf("seed patient: %w", err)
		}
		patientIDs = append(patientIDs, id)
		sum.Patients++
	}

	staff := []models.StaffMember{
		{Name: "Dr. Lena Fischer", Role: models.StaffRoleDoctor, PhoneNumber: "555-0201", Email: "lena@example.com", Address: "21 Oak Lane"},
		{Name: "Sam Rivera", Role: models.StaffRoleNurse, PhoneNumber: "555-0202", Address: "7 Birch Close"},
		{Name: "Priya Nair", Role: models.StaffRoleTechnician, PhoneNumber: "555-0203", Address: "40 Mill Street"},
	}
	for i := range staff {
		if _, err := s.Staff.Create(ctx, &staff[i]); err != nil {
			return sum, fmt.Errorf("seed staff: %w", err)
		}
		sum.Staff++
	}

	records := []models.MedicalRecord{
		{PatientID: patientIDs[0], DoctorNotes: "Follow up in two weeks", Diagnosis: "Bronchitis", Prescription: "Azithromycin"},
		{PatientID: patientIDs[1], NurseNotes: "BP 150/95", Diagnosis: "Hypertension", Prescription: "Lisinopril 10mg"},
	}
	for i := range records {
		if _, err := s.Records.Create(ctx, &records[i]); err != nil {
			return sum, fmt.Errorf("seed record: %w", err)
		}
		sum.Records++
	}

	invoices := []models.Invoice{
		{PatientID: patientIDs[0], Item: "Consultation", Quantity: 1, Cost: decimal.RequireFromString("80.00")},
		{PatientID: patientIDs[0], Item: "Chest X-ray", Quantity: 1, Cost: decimal.RequireFromString("120.50")},
		{PatientID: patientIDs[1], Item: "Blood panel", Quantity: 2, Cost: decimal.RequireFromString("45.25")},
	}
	for i := range invoices {
		if _, err := s.Invoices.Create(ctx, &invoices[i]); err != nil {
			return sum, fmt.Errorf("seed invoice: %w", err)
		}
		sum.Invoices++
	}

	return sum, nil
}
