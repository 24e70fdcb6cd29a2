package models

// MedicalRecord represents notes, diagnosis and prescription for one patient visit
type MedicalRecord struct {
	BaseModel
	PatientID    int64  `gorm:"index;not null" json:"patientId" validate:"required"`
	DoctorNotes  string `gorm:"type:text" json:"doctorNotes"`
	NurseNotes   string `gorm:"type:text" json:"nurseNotes"`
	Diagnosis    string `gorm:"type:text;not null" json:"diagnosis" validate:"required"`
	Prescription string `gorm:"type:text" json:"prescription"`
}
