package models

import "time"

// ShiftKind is the unit of schedule assignment
type ShiftKind string

const (
	ShiftMorning   ShiftKind = "Morning"
	ShiftAfternoon ShiftKind = "Afternoon"
	ShiftNight     ShiftKind = "Night"
)

// ShiftKinds lists the kinds in the order they are offered for selection.
var ShiftKinds = []ShiftKind{ShiftMorning, ShiftAfternoon, ShiftNight}

// TimeRange returns the wall-clock span covered by the shift.
func (k ShiftKind) TimeRange() string {
	switch k {
	case ShiftMorning:
		return "6am - 2pm"
	case ShiftAfternoon:
		return "2pm - 10pm"
	case ShiftNight:
		return "10pm - 6am"
	default:
		return ""
	}
}

// ShiftAssignment records that a staff member works a shift on a date.
// Assignments are append-only.
type ShiftAssignment struct {
	BaseModel
	StaffID int64     `gorm:"index;not null" json:"staffId"`
	Date    time.Time `gorm:"type:date;index;not null" json:"date"`
	Shift   ShiftKind `gorm:"size:20;not null" json:"shift"`
}
