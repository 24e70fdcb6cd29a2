package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-tui/internal/models"
)

func TestMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository[models.Patient]()

	p := models.Patient{FirstName: "Ada", LastName: "Lovelace"}
	id, err := repo.Create(ctx, &p)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, id, p.ID)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)

	got.FirstName = "Augusta"
	require.NoError(t, repo.Update(ctx, got))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Augusta", list[0].FirstName)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepository_MissingIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository[models.Invoice]()

	_, err := repo.Get(ctx, 99999)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, 5), ErrNotFound)

	missing := models.Invoice{Item: "Gauze"}
	missing.ID = 12
	assert.ErrorIs(t, repo.Update(ctx, missing), ErrNotFound)
}

func TestMemoryRepository_ListIsOrderedByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository[models.StaffMember]()
	for _, name := range []string{"c", "a", "b"} {
		s := models.StaffMember{Name: name}
		_, err := repo.Create(ctx, &s)
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, s := range list {
		assert.Equal(t, int64(i+1), s.ID)
	}
}

func TestMemoryShiftStore_ListsByStaffOrderedByDate(t *testing.T) {
	ctx := context.Background()
	s := &MemoryShiftStore{}

	later := time.Date(2026, time.November, 3, 15, 30, 0, 0, time.UTC)
	earlier := time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.AssignShift(ctx, 1, later, models.ShiftNight))
	require.NoError(t, s.AssignShift(ctx, 2, earlier, models.ShiftMorning))
	require.NoError(t, s.AssignShift(ctx, 1, earlier, models.ShiftAfternoon))

	got, err := s.ListAssignments(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.ShiftAfternoon, got[0].Shift)
	assert.Equal(t, models.ShiftNight, got[1].Shift)
	assert.Equal(t, time.Date(2026, time.November, 3, 0, 0, 0, 0, time.UTC), got[1].Date)

	none, err := s.ListAssignments(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSeed(t *testing.T) {
	stores := NewMemoryStores()

	sum, err := Seed(context.Background(), stores)
	require.NoError(t, err)
	assert.Equal(t, SeedSummary{Patients: 3, Staff: 3, Records: 2, Invoices: 3}, sum)

	invoices, err := stores.Invoices.List(context.Background())
	require.NoError(t, err)
	require.Len(t, invoices, 3)
	assert.Equal(t, int64(1), invoices[0].PatientID)
}
