package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"hospital-tui/internal/schedule"
	"hospital-tui/internal/workflow"
)

const maxColumnWidth = 28

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginBottom(1)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0"))
	markedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	editingStyle  = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("218"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).MarginTop(1)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	modalStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(1, 2)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	focusedPanel  = panelStyle.BorderForeground(lipgloss.Color("63"))
)

func (a *App) menuView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Hospital Management"))
	b.WriteString("\n")

	section := ""
	for i, e := range a.entries {
		if e.Section != section {
			section = e.Section
			b.WriteString(sectionStyle.Render(section) + "\n")
		}
		line := "  " + e.Title
		if i == a.cursor {
			line = selectedStyle.Render("> " + e.Title)
		}
		b.WriteString(line + "\n")
	}

	help := []string{}
	for _, k := range []key.Help{a.keys.Up.Help(), a.keys.Down.Help(), a.keys.Enter.Help(), a.keys.Quit.Help()} {
		help = append(help, k.Key+" "+k.Desc)
	}
	b.WriteString(helpStyle.Render(strings.Join(help, " | ") + " | q quit"))
	return b.String()
}

func renderSnapshot(s workflow.Snapshot, width int) string {
	parts := []string{titleStyle.Render(s.Title)}

	if s.Search.Active || s.Search.Query != "" {
		line := "Search: " + s.Search.Query
		if s.Search.Active {
			line = editingStyle.Render(line + "_")
		}
		parts = append(parts, line)
	}
	if s.IDInput != "" {
		parts = append(parts, "ID: "+s.IDInput)
	}

	switch {
	case len(s.Form) > 0:
		parts = append(parts, renderForm(s.Form))
	case s.Extra != nil:
		if cal, ok := s.Extra.(schedule.CalendarView); ok {
			parts = append(parts, renderCalendar(cal, width))
		}
	case len(s.Table.Header) > 0:
		parts = append(parts, renderTable(s.Table))
	}

	for _, line := range s.Lines {
		parts = append(parts, dimStyle.Render(line))
	}
	if s.Gate != nil {
		parts = append(parts, renderGate(*s.Gate))
	}
	switch s.Notice.Level {
	case workflow.NoticeSuccess:
		parts = append(parts, successStyle.Render(s.Notice.Text))
	case workflow.NoticeError:
		parts = append(parts, errorStyle.Render(s.Notice.Text))
	}
	if s.Help != "" {
		parts = append(parts, helpStyle.Render(s.Help))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func renderTable(t workflow.TableView) string {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); i < len(widths) && w > widths[i] {
				widths[i] = min(w, maxColumnWidth)
			}
		}
	}

	format := func(cells []string) string {
		out := make([]string, len(cells))
		for i, c := range cells {
			out[i] = fmt.Sprintf("%-*s", widths[i], truncate(c, widths[i]))
		}
		return strings.Join(out, "  ")
	}

	lines := []string{"    " + headerStyle.Render(format(t.Header))}
	if len(t.Rows) == 0 {
		lines = append(lines, dimStyle.Render("    (no entries)"))
	}
	for i, row := range t.Rows {
		prefix := "  "
		if t.Marked != nil {
			prefix = "[ ]"
			if t.Marked[i] {
				prefix = markedStyle.Render("[x]")
			}
		}
		text := format(row)
		if i == t.Cursor {
			text = selectedStyle.Render(text)
		}
		lines = append(lines, prefix+" "+text)
	}
	return strings.Join(lines, "\n")
}

func renderForm(fields []workflow.FormField) string {
	nameWidth := 0
	for _, f := range fields {
		nameWidth = max(nameWidth, lipgloss.Width(f.Name))
	}
	lines := make([]string, len(fields))
	for i, f := range fields {
		name := fmt.Sprintf("%-*s", nameWidth, f.Name)
		value := f.Value
		switch {
		case f.Editing:
			value = editingStyle.Render(value + "_")
		case f.Active:
			value = selectedStyle.Render(value)
		case f.ReadOnly:
			value = dimStyle.Render(value)
		}
		lines[i] = headerStyle.Render(name) + "  " + value
	}
	return strings.Join(lines, "\n")
}

func renderGate(g workflow.GateView) string {
	yes, no := " Yes ", " No "
	if g.Choice == workflow.ChoiceYes {
		yes = selectedStyle.Render(yes)
	} else {
		no = selectedStyle.Render(no)
	}
	return modalStyle.Render(g.Message + "\n\n" + yes + "   " + no)
}

func renderMonth(g schedule.MonthGrid) string {
	lines := []string{headerStyle.Render(g.Title), dimStyle.Render("Su Mo Tu We Th Fr Sa")}
	for _, week := range g.Weeks {
		cells := make([]string, len(week))
		for i, d := range week {
			switch {
			case d == 0:
				cells[i] = "  "
			case d == g.Selected:
				cells[i] = selectedStyle.Render(fmt.Sprintf("%2d", d))
			case d < g.PastBefore:
				cells[i] = dimStyle.Render(fmt.Sprintf("%2d", d))
			default:
				cells[i] = fmt.Sprintf("%2d", d)
			}
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	style := panelStyle
	if g.Focused {
		style = focusedPanel
	}
	return style.Render(strings.Join(lines, "\n"))
}

// renderCalendar lays the month panels out in rows as wide as the terminal
// allows, at least one panel per row.
func renderCalendar(c schedule.CalendarView, width int) string {
	if len(c.Months) == 0 {
		return ""
	}
	panels := make([]string, len(c.Months))
	for i, m := range c.Months {
		panels[i] = renderMonth(m)
	}
	perRow := 3
	if w := lipgloss.Width(panels[0]); width > 0 && w > 0 {
		perRow = max(1, min(perRow, width/w))
	}

	var rows []string
	for i := 0; i < len(panels); i += perRow {
		end := min(i+perRow, len(panels))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, panels[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
