package models

// StaffRole enum
type StaffRole string

const (
	StaffRoleDoctor     StaffRole = "Doctor"
	StaffRoleNurse      StaffRole = "Nurse"
	StaffRoleAdmin      StaffRole = "Admin"
	StaffRoleTechnician StaffRole = "Technician"
)

// StaffMember represents an employee who can be assigned shifts
type StaffMember struct {
	BaseModel
	Name        string    `gorm:"size:200;not null" json:"name" validate:"required"`
	Role        StaffRole `gorm:"size:20;default:'Doctor'" json:"role"`
	PhoneNumber string    `gorm:"size:50" json:"phoneNumber"`
	Email       string    `gorm:"size:255" json:"email" validate:"omitempty,email"`
	Address     string    `gorm:"size:255" json:"address"`
}

// TableName keeps the table name short
func (StaffMember) TableName() string {
	return "staff"
}
