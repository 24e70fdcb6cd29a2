package schedule

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"hospital-tui/internal/models"
	"hospital-tui/internal/store"
	"hospital-tui/internal/workflow"
)

// State is the step of the assignment flow. A pending confirmation is
// tracked by the gate, not by a state of its own.
type State int

const (
	SelectingStaff State = iota
	SelectingDate
	SelectingShift
	ViewingAssignments
)

func (s State) String() string {
	switch s {
	case SelectingStaff:
		return "selecting staff"
	case SelectingDate:
		return "selecting date"
	case SelectingShift:
		return "selecting shift"
	case ViewingAssignments:
		return "viewing assignments"
	default:
		return "unknown"
	}
}

// AssignScreen walks through staff, date and shift selection and records
// the assignment after confirmation.
type AssignScreen struct {
	staff    store.Repository[models.StaffMember]
	shifts   store.ShiftStore
	log      *zap.Logger
	now      func() time.Time
	selector *workflow.Selector[models.StaffMember]
	kind     workflow.Kind[models.StaffMember]
	gate     workflow.Gate
	notice   *workflow.Notice

	state       State
	member      models.StaffMember
	calendar    *Calendar
	shift       int
	assignments []models.ShiftAssignment
}

func NewAssignScreen(kind workflow.Kind[models.StaffMember], staff store.Repository[models.StaffMember], shifts store.ShiftStore, opts workflow.Options) *AssignScreen {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &AssignScreen{
		staff:    staff,
		shifts:   shifts,
		log:      opts.Log().With(zap.String("screen", "assign")),
		now:      now,
		selector: workflow.NewSelector(kind),
		kind:     kind,
		notice:   opts.NewNotice(),
	}
}

func (a *AssignScreen) State() State                                     { return a.state }
func (a *AssignScreen) Calendar() *Calendar                              { return a.calendar }
func (a *AssignScreen) Shift() models.ShiftKind                          { return models.ShiftKinds[a.shift] }
func (a *AssignScreen) Member() models.StaffMember                       { return a.member }
func (a *AssignScreen) Assignments() []models.ShiftAssignment            { return a.assignments }
func (a *AssignScreen) Selector() *workflow.Selector[models.StaffMember] { return a.selector }
func (a *AssignScreen) Gate() *workflow.Gate                             { return &a.gate }
func (a *AssignScreen) Notice() *workflow.Notice                         { return a.notice }

// Refresh implements workflow.Screen.
func (a *AssignScreen) Refresh(ctx context.Context) error {
	list, err := a.staff.List(ctx)
	if err != nil {
		wrapped := &workflow.StorageError{Err: err}
		a.notice.Fail(wrapped)
		a.log.Error("staff list failed", zap.Error(err))
		return wrapped
	}
	a.selector.SetItems(list)
	return nil
}

func (a *AssignScreen) CheckTimeout() {
	a.notice.CheckTimeout()
}

// HandleKey implements workflow.Screen.
func (a *AssignScreen) HandleKey(ctx context.Context, k workflow.Key) bool {
	a.notice.CheckTimeout()

	if a.gate.IsOpen() {
		switch {
		case k.Is('y', 'Y'):
			a.gate.Answer(ctx, true)
		case k.Is('n', 'N'):
			a.gate.Answer(ctx, false)
		default:
			a.gate.HandleKey(ctx, k)
		}
		return false
	}

	switch a.state {
	case SelectingStaff:
		return a.handleStaffKey(ctx, k)
	case SelectingDate:
		a.handleDateKey(k)
	case SelectingShift:
		a.handleShiftKey(k)
	case ViewingAssignments:
		if k.Code == workflow.KeyEsc {
			a.state = SelectingStaff
		}
	}
	return false
}

func (a *AssignScreen) handleStaffKey(ctx context.Context, k workflow.Key) bool {
	if a.selector.Searching() {
		a.selector.HandleSearchKey(k)
		return false
	}

	switch {
	case k.Is('/', 's', 'S'):
		a.selector.StartSearch()
	case k.Code == workflow.KeyUp:
		a.selector.MovePrevious()
	case k.Code == workflow.KeyDown:
		a.selector.MoveNext()
	case k.Code == workflow.KeyEnter:
		member, ok := a.selector.Current()
		if !ok {
			a.notice.Error("No staff selected")
			break
		}
		a.member = member
		if a.calendar == nil {
			a.calendar = NewCalendar(a.now())
		} else {
			a.calendar.refocus()
		}
		a.state = SelectingDate
	case k.Is('v', 'V'):
		a.viewAssignments(ctx)
	case k.Code == workflow.KeyEsc:
		return true
	}
	return false
}

func (a *AssignScreen) viewAssignments(ctx context.Context) {
	member, ok := a.selector.Current()
	if !ok {
		a.notice.Error("No staff selected")
		return
	}
	list, err := a.shifts.ListAssignments(ctx, member.ID)
	if err != nil {
		a.notice.Error("Failed to load assignments: " + err.Error())
		a.log.Error("list assignments failed", zap.Int64("staff_id", member.ID), zap.Error(err))
		return
	}
	a.member = member
	a.assignments = list
	a.state = ViewingAssignments
}

func (a *AssignScreen) handleDateKey(k workflow.Key) {
	switch k.Code {
	case workflow.KeyLeft:
		a.calendar.Navigate(Left)
	case workflow.KeyRight:
		a.calendar.Navigate(Right)
	case workflow.KeyUp:
		a.calendar.Navigate(Up)
	case workflow.KeyDown:
		a.calendar.Navigate(Down)
	case workflow.KeyTab:
		a.calendar.CycleFocus(1)
	case workflow.KeyBackTab:
		a.calendar.CycleFocus(-1)
	case workflow.KeyEnter:
		a.shift = 0
		a.state = SelectingShift
	case workflow.KeyEsc:
		a.state = SelectingStaff
	}
}

func (a *AssignScreen) handleShiftKey(k workflow.Key) {
	n := len(models.ShiftKinds)
	switch k.Code {
	case workflow.KeyUp:
		a.shift = (a.shift - 1 + n) % n
	case workflow.KeyDown:
		a.shift = (a.shift + 1) % n
	case workflow.KeyEnter:
		a.gate.Request(a.Summary(), a.assign)
	case workflow.KeyEsc:
		a.state = SelectingDate
	}
}

// Summary describes the pending assignment for the confirmation prompt.
func (a *AssignScreen) Summary() string {
	kind := a.Shift()
	return fmt.Sprintf("Assign %s shift (%s) to %s on %s?",
		kind, kind.TimeRange(), a.member.Name, a.calendar.Selected().Format("Jan 02, 2006"))
}

func (a *AssignScreen) assign(ctx context.Context) {
	member, date, kind := a.member, a.calendar.Selected(), a.Shift()
	if err := a.shifts.AssignShift(ctx, member.ID, date, kind); err != nil {
		a.notice.Fail(&workflow.StorageError{Err: err})
		a.log.Error("assign shift failed", zap.Int64("staff_id", member.ID), zap.Error(err))
		return
	}
	a.log.Info("shift assigned",
		zap.Int64("staff_id", member.ID),
		zap.String("date", date.Format(time.DateOnly)),
		zap.String("shift", string(kind)))

	a.reset(ctx)
	a.notice.Success("Shift assigned to " + member.Name + " successfully!")
}

// reset returns to staff selection with a fresh staff list.
func (a *AssignScreen) reset(ctx context.Context) {
	a.state = SelectingStaff
	a.member = models.StaffMember{}
	a.calendar = nil
	a.shift = 0
	a.assignments = nil
	_ = a.Refresh(ctx)
}
