package models

import "github.com/shopspring/decimal"

// Invoice represents a billed item for a patient
type Invoice struct {
	BaseModel
	PatientID int64           `gorm:"index;not null" json:"patientId" validate:"required"`
	Item      string          `gorm:"size:255;not null" json:"item" validate:"required"`
	Quantity  int             `gorm:"not null" json:"quantity" validate:"gte=0"`
	Cost      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"cost"`
}

// Total is quantity times unit cost
func (i Invoice) Total() decimal.Decimal {
	return i.Cost.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
