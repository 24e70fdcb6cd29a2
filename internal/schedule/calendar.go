// Package schedule assigns shifts to staff members on a rolling six-month
// calendar.
package schedule

import "time"

// MonthWindow is the number of month panels offered for date selection.
const MonthWindow = 6

// DaysInMonth counts the days between the first of month and the first of
// the following month.
func DaysInMonth(year int, month time.Month) int {
	nextYear, nextMonth := year, month+1
	if month == time.December {
		nextYear, nextMonth = year+1, time.January
	}
	return int(julianDay(nextYear, nextMonth, 1) - julianDay(year, month, 1))
}

// julianDay returns the Julian day number of a proleptic Gregorian date.
func julianDay(year int, month time.Month, day int) int64 {
	a := (14 - int64(month)) / 12
	y := int64(year) + 4800 - a
	m := int64(month) + 12*a - 3
	return int64(day) + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Anchors returns the first day of today's month and of each of the five
// following months. Each anchor steps 32 days past the previous one and
// truncates to the first of that month.
func Anchors(today time.Time) [MonthWindow]time.Time {
	var out [MonthWindow]time.Time
	out[0] = firstOfMonth(today)
	for i := 1; i < MonthWindow; i++ {
		out[i] = firstOfMonth(out[i-1].AddDate(0, 0, 32))
	}
	return out
}

// Direction is a date navigation step.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Calendar is a selected date plus the month panel that has focus.
type Calendar struct {
	today    time.Time
	anchors  [MonthWindow]time.Time
	selected time.Time
	focused  int
}

// NewCalendar starts on today with the first month focused.
func NewCalendar(today time.Time) *Calendar {
	return &Calendar{
		today:    dateOf(today),
		anchors:  Anchors(today),
		selected: dateOf(today),
	}
}

func (c *Calendar) Selected() time.Time             { return c.selected }
func (c *Calendar) Focused() int                    { return c.focused }
func (c *Calendar) Today() time.Time                { return c.today }
func (c *Calendar) Anchors() [MonthWindow]time.Time { return c.anchors }

// IsPast reports whether day lies before today. Past days stay selectable.
func (c *Calendar) IsPast(day time.Time) bool {
	return dateOf(day).Before(c.today)
}

// Navigate moves the selection by a day or a week. Movement wraps within
// the selected month and never crosses into another month.
func (c *Calendar) Navigate(dir Direction) {
	y, m, d := c.selected.Date()
	dim := DaysInMonth(y, m)

	switch dir {
	case Left:
		if d > 1 {
			d--
		} else {
			d = dim
		}
	case Right:
		if d < dim {
			d++
		} else {
			d = 1
		}
	case Up:
		switch {
		case d > 7:
			d -= 7
		case dim >= 2*d:
			d = dim - d
		default:
			d = dim
		}
	case Down:
		if d+7 <= dim {
			d += 7
		} else {
			d = d + 7 - dim
		}
	}

	c.selected = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	c.refocus()
}

// refocus points the focus at the panel showing the selected month, or at
// the first panel when the selection lies outside the window.
func (c *Calendar) refocus() {
	for i, a := range c.anchors {
		if a.Year() == c.selected.Year() && a.Month() == c.selected.Month() {
			c.focused = i
			return
		}
	}
	c.focused = 0
}

// CycleFocus moves the focus by step panels, wrapping around the window,
// and selects the first day of the newly focused month.
func (c *Calendar) CycleFocus(step int) {
	c.focused = ((c.focused+step)%MonthWindow + MonthWindow) % MonthWindow
	c.selected = c.anchors[c.focused]
}

// MonthGrid is one month panel laid out in Sunday-first weeks. Zero
// entries in Weeks are padding.
type MonthGrid struct {
	Title    string
	Weeks    [][]int
	Selected int
	Focused  bool
	// PastBefore is the first day of the month that is not in the past;
	// zero when no day of the month is past.
	PastBefore int
}

// Grid lays out panel i of the window.
func (c *Calendar) Grid(i int) MonthGrid {
	anchor := c.anchors[i]
	dim := DaysInMonth(anchor.Year(), anchor.Month())
	g := MonthGrid{
		Title:   anchor.Format("January 2006"),
		Focused: i == c.focused,
	}
	if c.selected.Year() == anchor.Year() && c.selected.Month() == anchor.Month() {
		g.Selected = c.selected.Day()
	}
	if c.today.Year() == anchor.Year() && c.today.Month() == anchor.Month() && c.today.Day() > 1 {
		g.PastBefore = c.today.Day()
	}

	week := make([]int, 7)
	col := int(anchor.Weekday())
	for day := 1; day <= dim; day++ {
		week[col] = day
		col++
		if col == 7 {
			g.Weeks = append(g.Weeks, week)
			week = make([]int, 7)
			col = 0
		}
	}
	if col > 0 {
		g.Weeks = append(g.Weeks, week)
	}
	return g
}
