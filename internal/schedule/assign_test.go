package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-tui/internal/hospital"
	"hospital-tui/internal/models"
	"hospital-tui/internal/store"
	"hospital-tui/internal/workflow"
)

type brokenShifts struct {
	store.MemoryShiftStore
}

func (*brokenShifts) AssignShift(context.Context, int64, time.Time, models.ShiftKind) error {
	return errors.New("deadlock detected")
}

func newAssignFixture(t *testing.T, shifts store.ShiftStore) (*AssignScreen, *store.Stores) {
	t.Helper()
	stores := store.NewMemoryStores()
	if shifts != nil {
		stores.Shifts = shifts
	}
	_, err := store.Seed(context.Background(), stores)
	require.NoError(t, err)

	now := func() time.Time { return time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC) }
	a := NewAssignScreen(hospital.StaffKind(), stores.Staff, stores.Shifts, workflow.Options{Now: now})
	require.NoError(t, a.Refresh(context.Background()))
	return a, stores
}

func press(ctx context.Context, a *AssignScreen, codes ...workflow.KeyCode) {
	for _, c := range codes {
		a.HandleKey(ctx, workflow.Press(c))
	}
}

func TestAssignScreen_AssignFlow(t *testing.T) {
	ctx := context.Background()
	a, stores := newAssignFixture(t, nil)

	press(ctx, a, workflow.KeyEnter)
	require.Equal(t, SelectingDate, a.State())
	assert.Equal(t, "Dr. Lena Fischer", a.Member().Name)
	assert.Equal(t, day(2024, 5, 10), a.Calendar().Selected())

	press(ctx, a, workflow.KeyRight, workflow.KeyEnter)
	require.Equal(t, SelectingShift, a.State())
	assert.Equal(t, models.ShiftMorning, a.Shift())

	press(ctx, a, workflow.KeyDown, workflow.KeyEnter)
	require.True(t, a.Gate().IsOpen())
	assert.Equal(t, "Assign Afternoon shift (2pm - 10pm) to Dr. Lena Fischer on May 11, 2024?", a.Gate().Message())

	a.HandleKey(ctx, workflow.Char('y'))
	assert.Equal(t, "Shift assigned to Dr. Lena Fischer successfully!", a.Notice().Text())
	assert.Equal(t, SelectingStaff, a.State())
	assert.Nil(t, a.Calendar())

	got, err := stores.Shifts.ListAssignments(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, day(2024, 5, 11), got[0].Date)
	assert.Equal(t, models.ShiftAfternoon, got[0].Shift)

	a.HandleKey(ctx, workflow.Char('v'))
	require.Equal(t, ViewingAssignments, a.State())
	snap := a.Snapshot()
	require.Len(t, snap.Table.Rows, 1)
	assert.Equal(t, []string{"2024-05-11", "Afternoon", "2pm - 10pm"}, snap.Table.Rows[0])

	press(ctx, a, workflow.KeyEsc)
	assert.Equal(t, SelectingStaff, a.State())
}

func TestAssignScreen_GateDefaultsToNo(t *testing.T) {
	ctx := context.Background()
	a, stores := newAssignFixture(t, nil)

	press(ctx, a, workflow.KeyEnter, workflow.KeyEnter, workflow.KeyEnter, workflow.KeyEnter)
	assert.False(t, a.Gate().IsOpen())
	assert.Equal(t, SelectingShift, a.State())

	got, err := stores.Shifts.ListAssignments(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAssignScreen_ViewEmptyAssignments(t *testing.T) {
	ctx := context.Background()
	a, _ := newAssignFixture(t, nil)

	press(ctx, a, workflow.KeyDown)
	a.HandleKey(ctx, workflow.Char('v'))

	require.Equal(t, ViewingAssignments, a.State())
	assert.Equal(t, "Sam Rivera", a.Member().Name)
	snap := a.Snapshot()
	assert.Equal(t, []string{"No shifts assigned"}, snap.Lines)
	assert.Empty(t, snap.Table.Rows)
	assert.Equal(t, workflow.NoticeNone, a.Notice().Level())
}

func TestAssignScreen_StorageFailureKeepsSelection(t *testing.T) {
	ctx := context.Background()
	a, _ := newAssignFixture(t, &brokenShifts{})

	press(ctx, a, workflow.KeyEnter, workflow.KeyEnter, workflow.KeyEnter)
	a.HandleKey(ctx, workflow.Char('y'))

	assert.Equal(t, workflow.NoticeError, a.Notice().Level())
	assert.Equal(t, "Database error: deadlock detected", a.Notice().Text())
	assert.Equal(t, SelectingShift, a.State())
}

func TestAssignScreen_TabMovesFocus(t *testing.T) {
	ctx := context.Background()
	a, _ := newAssignFixture(t, nil)

	press(ctx, a, workflow.KeyEnter, workflow.KeyTab, workflow.KeyTab)
	assert.Equal(t, 2, a.Calendar().Focused())
	assert.Equal(t, day(2024, 7, 1), a.Calendar().Selected())

	press(ctx, a, workflow.KeyBackTab)
	assert.Equal(t, day(2024, 6, 1), a.Calendar().Selected())

	snap := a.Snapshot()
	view, ok := snap.Extra.(CalendarView)
	require.True(t, ok)
	require.Len(t, view.Months, MonthWindow)
	assert.True(t, view.Months[1].Focused)
	assert.Equal(t, 1, view.Months[1].Selected)
}

func TestAssignScreen_EscSteps(t *testing.T) {
	ctx := context.Background()
	a, _ := newAssignFixture(t, nil)

	press(ctx, a, workflow.KeyEnter, workflow.KeyEnter)
	require.Equal(t, SelectingShift, a.State())
	press(ctx, a, workflow.KeyEsc)
	assert.Equal(t, SelectingDate, a.State())
	press(ctx, a, workflow.KeyEsc)
	assert.Equal(t, SelectingStaff, a.State())
	assert.True(t, a.HandleKey(ctx, workflow.Press(workflow.KeyEsc)))
}

func TestAssignScreen_NoStaff(t *testing.T) {
	ctx := context.Background()
	stores := store.NewMemoryStores()
	a := NewAssignScreen(hospital.StaffKind(), stores.Staff, stores.Shifts, workflow.Options{})
	require.NoError(t, a.Refresh(ctx))

	press(ctx, a, workflow.KeyEnter)
	assert.Equal(t, SelectingStaff, a.State())
	assert.Equal(t, "No staff selected", a.Notice().Text())
}
