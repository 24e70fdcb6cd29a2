// Package tui runs the workflow screens as a bubbletea program.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"hospital-tui/internal/hospital"
	"hospital-tui/internal/schedule"
	"hospital-tui/internal/store"
	"hospital-tui/internal/workflow"
)

type tickMsg time.Time

// MenuEntry is one screen reachable from the main menu.
type MenuEntry struct {
	Section string
	Title   string
	Screen  workflow.Screen
}

// Options configures the application model.
type Options struct {
	Logger        *zap.Logger
	NoticeTimeout time.Duration
	TickInterval  time.Duration
	Now           func() time.Time
}

// App is the bubbletea model: a menu of screens, one of which may be active.
type App struct {
	ctx     context.Context
	log     *zap.Logger
	keys    keyMap
	tick    time.Duration
	entries []MenuEntry
	cursor  int
	active  workflow.Screen
	width   int
}

// New builds every screen over stores.
func New(ctx context.Context, stores *store.Stores, opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	tick := opts.TickInterval
	if tick <= 0 {
		tick = 250 * time.Millisecond
	}
	return &App{
		ctx:     ctx,
		log:     log,
		keys:    defaultKeyMap(),
		tick:    tick,
		entries: Menu(stores, workflow.Options{Logger: log, NoticeTimeout: opts.NoticeTimeout, Now: opts.Now}),
	}
}

// Menu lists the screens in menu order.
func Menu(stores *store.Stores, opts workflow.Options) []MenuEntry {
	patients := hospital.PatientKind()
	staff := hospital.StaffKind()
	dir := hospital.NewPatientDirectory(stores.Patients)
	records := hospital.RecordKind(dir)
	invoices := hospital.InvoiceKind(dir)

	return []MenuEntry{
		{"Patients", "View patients", workflow.NewBrowseScreen(patients, stores.Patients, opts)},
		{"Patients", "Update patient", workflow.NewUpdateScreen(patients, stores.Patients, opts)},
		{"Patients", "Delete patients", workflow.NewDeleteScreen(patients, stores.Patients, opts)},
		{"Staff", "View staff", workflow.NewBrowseScreen(staff, stores.Staff, opts)},
		{"Staff", "Update staff member", workflow.NewUpdateScreen(staff, stores.Staff, opts)},
		{"Staff", "Delete staff", workflow.NewDeleteScreen(staff, stores.Staff, opts)},
		{"Staff", "Assign shifts", schedule.NewAssignScreen(staff, stores.Staff, stores.Shifts, opts)},
		{"Records", "View records", workflow.NewBrowseScreen(records, stores.Records, opts)},
		{"Records", "Update record", workflow.NewUpdateScreen(records, stores.Records, opts)},
		{"Records", "Delete records", workflow.NewDeleteScreen(records, stores.Records, opts)},
		{"Finance", "View invoices", workflow.NewBrowseScreen(invoices, stores.Invoices, opts)},
		{"Finance", "Update invoice", workflow.NewUpdateScreen(invoices, stores.Invoices, opts)},
		{"Finance", "Delete invoices", workflow.NewDeleteScreen(invoices, stores.Invoices, opts)},
		{"Finance", "Billing summary", hospital.NewBillingSummary(stores.Invoices, dir, opts)},
	}
}

func (a *App) Entries() []MenuEntry    { return a.entries }
func (a *App) Active() workflow.Screen { return a.active }

func (a *App) Init() tea.Cmd {
	return a.nextTick()
}

func (a *App) nextTick() tea.Cmd {
	return tea.Tick(a.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
	case tickMsg:
		if a.active != nil {
			a.active.CheckTimeout()
		}
		return a, a.nextTick()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.active == nil {
			return a, a.updateMenu(msg)
		}
		for _, k := range a.keys.translate(msg) {
			if a.active.HandleKey(a.ctx, k) {
				a.log.Debug("screen closed", zap.String("screen", a.entries[a.cursor].Title))
				a.active = nil
				break
			}
		}
	}
	return a, nil
}

func (a *App) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up":
		a.cursor = (a.cursor - 1 + len(a.entries)) % len(a.entries)
	case "down":
		a.cursor = (a.cursor + 1) % len(a.entries)
	case "enter":
		entry := a.entries[a.cursor]
		a.log.Debug("screen opened", zap.String("screen", entry.Title))
		// storage failures are shown by the screen itself
		_ = entry.Screen.Refresh(a.ctx)
		a.active = entry.Screen
	case "q", "esc":
		return tea.Quit
	}
	return nil
}

func (a *App) View() string {
	if a.active == nil {
		return a.menuView()
	}
	return renderSnapshot(a.active.Snapshot(), a.width)
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(ctx context.Context, stores *store.Stores, opts Options) error {
	p := tea.NewProgram(New(ctx, stores, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
