package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPatientFullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", Patient{FirstName: "Ada", LastName: "Lovelace"}.FullName())
	assert.Equal(t, "Ada", Patient{FirstName: "Ada"}.FullName())
}

func TestInvoiceTotal(t *testing.T) {
	inv := Invoice{Quantity: 3, Cost: decimal.RequireFromString("12.50")}
	assert.True(t, decimal.RequireFromString("37.50").Equal(inv.Total()))
}

func TestShiftKindTimeRange(t *testing.T) {
	assert.Equal(t, "6am - 2pm", ShiftMorning.TimeRange())
	assert.Equal(t, "2pm - 10pm", ShiftAfternoon.TimeRange())
	assert.Equal(t, "10pm - 6am", ShiftNight.TimeRange())
	assert.Equal(t, []ShiftKind{ShiftMorning, ShiftAfternoon, ShiftNight}, ShiftKinds)
}

func TestBaseModelIdentity(t *testing.T) {
	var p Patient
	p.SetID(42)
	var e Entity = p
	assert.Equal(t, int64(42), e.GetID())
}

func TestInitDB_UnsupportedDriver(t *testing.T) {
	_, err := InitDB(DatabaseConfig{Driver: "sqlite"})
	assert.ErrorContains(t, err, "unsupported database driver")
}
