package schedule

import (
	"time"

	"hospital-tui/internal/models"
	"hospital-tui/internal/workflow"
)

// CalendarView is the Snapshot.Extra payload while a date is being chosen.
type CalendarView struct {
	Months []MonthGrid
}

// Snapshot implements workflow.Screen.
func (a *AssignScreen) Snapshot() workflow.Snapshot {
	snap := workflow.Snapshot{
		Title:  "Assign shifts",
		Notice: workflow.NoticeView{Level: a.notice.Level(), Text: a.notice.Text()},
	}
	if a.gate.IsOpen() {
		snap.Gate = &workflow.GateView{Message: a.gate.Message(), Choice: a.gate.Choice()}
	}

	switch a.state {
	case SelectingStaff:
		snap.Help = "/ search | Up/Down move | Enter select | v view shifts | Esc back"
		snap.Search = workflow.SearchView{Active: a.selector.Searching(), Query: a.selector.Query()}
		snap.Table = workflow.TableView{Header: a.kind.Header(), Cursor: a.selector.Cursor()}
		for _, m := range a.selector.Items() {
			snap.Table.Rows = append(snap.Table.Rows, a.kind.Row(m))
		}

	case SelectingDate:
		snap.Title = "Choose a date for " + a.member.Name
		snap.Help = "Arrows move | Tab/Shift+Tab month | Enter select | Esc back"
		view := CalendarView{Months: make([]MonthGrid, MonthWindow)}
		for i := range view.Months {
			view.Months[i] = a.calendar.Grid(i)
		}
		snap.Extra = view
		snap.Lines = []string{"Selected: " + a.calendar.Selected().Format("Monday, Jan 02, 2006")}

	case SelectingShift:
		snap.Title = "Choose a shift for " + a.member.Name
		snap.Help = "Up/Down choose | Enter confirm | Esc back"
		snap.Table = workflow.TableView{Header: []string{"Shift", "Hours"}, Cursor: a.shift}
		for _, kind := range models.ShiftKinds {
			snap.Table.Rows = append(snap.Table.Rows, []string{string(kind), kind.TimeRange()})
		}
		snap.Lines = []string{"Date: " + a.calendar.Selected().Format("Jan 02, 2006")}

	case ViewingAssignments:
		snap.Title = "Shifts for " + a.member.Name
		snap.Help = "Esc back"
		if len(a.assignments) == 0 {
			snap.Lines = []string{"No shifts assigned"}
			break
		}
		snap.Table = workflow.TableView{Header: []string{"Date", "Shift", "Hours"}, Cursor: -1}
		for _, as := range a.assignments {
			snap.Table.Rows = append(snap.Table.Rows, []string{
				as.Date.Format(time.DateOnly), string(as.Shift), as.Shift.TimeRange(),
			})
		}
	}
	return snap
}
