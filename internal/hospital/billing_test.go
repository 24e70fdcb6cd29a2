package hospital

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-tui/internal/models"
	"hospital-tui/internal/store"
	"hospital-tui/internal/workflow"
)

func TestSummarize_GroupsByPatient(t *testing.T) {
	dir := NewPatientDirectory(store.NewMemoryRepository[models.Patient]())
	invoices := []models.Invoice{
		{PatientID: 3, Item: "Cast", Quantity: 1, Cost: decimal.RequireFromString("60")},
		{PatientID: 1, Item: "Consultation", Quantity: 1, Cost: decimal.RequireFromString("80")},
		{PatientID: 3, Item: "Crutches", Quantity: 2, Cost: decimal.RequireFromString("12.50")},
	}

	got := Summarize(invoices, dir)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].PatientID)
	assert.Equal(t, int64(3), got[1].PatientID)
	assert.Equal(t, "85.00", got[1].Total.StringFixed(2))
	assert.Len(t, got[1].Invoices, 2)
	assert.Equal(t, "Cast", got[1].Invoices[0].Item)
}

func TestBillingSummary_DrillDown(t *testing.T) {
	ctx := context.Background()
	stores := seeded(t)
	b := NewBillingSummary(stores.Invoices, NewPatientDirectory(stores.Patients), workflow.Options{})
	require.NoError(t, b.Refresh(ctx))

	require.Len(t, b.Balances(), 2)
	snap := b.Snapshot()
	assert.Equal(t, []string{"1", "Amara Okafor", "2", "200.50"}, snap.Table.Rows[0])
	assert.Equal(t, "All patients: 291.00", snap.Lines[0])

	b.HandleKey(ctx, workflow.Press(workflow.KeyDown))
	b.HandleKey(ctx, workflow.Press(workflow.KeyEnter))
	snap = b.Snapshot()
	assert.Equal(t, "Invoices for Jonas Berg", snap.Title)
	require.Len(t, snap.Table.Rows, 1)
	assert.Equal(t, "90.50", snap.Table.Rows[0][4])

	assert.False(t, b.HandleKey(ctx, workflow.Press(workflow.KeyEsc)))
	assert.True(t, b.HandleKey(ctx, workflow.Press(workflow.KeyEsc)))
}

func TestBillingSummary_Empty(t *testing.T) {
	ctx := context.Background()
	stores := store.NewMemoryStores()
	b := NewBillingSummary(stores.Invoices, NewPatientDirectory(stores.Patients), workflow.Options{})
	require.NoError(t, b.Refresh(ctx))

	b.HandleKey(ctx, workflow.Press(workflow.KeyEnter))
	assert.Equal(t, "No invoices to show", b.Notice().Text())
	_, ok := b.Current()
	assert.False(t, ok)
}
