package models

// Gender of a patient
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Patient represents a person admitted to or treated by the hospital
type Patient struct {
	BaseModel
	FirstName          string `gorm:"size:100;not null" json:"firstName" validate:"required"`
	LastName           string `gorm:"size:100;not null" json:"lastName" validate:"required"`
	DateOfBirth        string `gorm:"size:10" json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender             Gender `gorm:"size:10;default:'Other'" json:"gender"`
	Address            string `gorm:"size:255" json:"address"`
	PhoneNumber        string `gorm:"size:50" json:"phoneNumber"`
	Email              string `gorm:"size:255" json:"email" validate:"omitempty,email"`
	MedicalHistory     string `gorm:"type:text" json:"medicalHistory"`
	Allergies          string `gorm:"type:text" json:"allergies"`
	CurrentMedications string `gorm:"type:text" json:"currentMedications"`
}

// FullName joins first and last name
func (p Patient) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
