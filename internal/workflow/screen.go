package workflow

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hospital-tui/internal/models"
	"hospital-tui/internal/store"
)

// Screen is one interactive view driven by the application loop.
type Screen interface {
	// HandleKey processes k to completion and reports whether the screen
	// wants to return to the menu.
	HandleKey(ctx context.Context, k Key) (exit bool)
	// Refresh reloads the screen's data from storage.
	Refresh(ctx context.Context) error
	// CheckTimeout expires stale notices. Called on every tick.
	CheckTimeout()
	Snapshot() Snapshot
}

// Options configures the ambient collaborators of a screen.
type Options struct {
	Logger        *zap.Logger
	NoticeTimeout time.Duration
	// Now is the clock used for notice expiry. Defaults to time.Now.
	Now func() time.Time
}

// Log returns the configured logger or a no-op one.
func (o Options) Log() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// NewNotice builds a notice from the options.
func (o Options) NewNotice() *Notice {
	return NewNotice(o.NoticeTimeout, o.Now)
}

// Snapshot is the render-facing state of a screen.
type Snapshot struct {
	Title   string
	Help    string
	Search  SearchView
	IDInput string
	Table   TableView
	Form    []FormField
	Lines   []string
	Gate    *GateView
	Notice  NoticeView
	// Extra carries screen-specific state the generic views do not cover.
	Extra any
}

type SearchView struct {
	Active bool
	Query  string
}

type TableView struct {
	Header []string
	Rows   [][]string
	Cursor int
	// Marked is nil when the screen has no bulk selection.
	Marked []bool
}

type FormField struct {
	Name     string
	Value    string
	Active   bool
	Editing  bool
	ReadOnly bool
}

type GateView struct {
	Message string
	Choice  Choice
}

type NoticeView struct {
	Level NoticeLevel
	Text  string
}

// listScreen is the state shared by the screens that work on a filtered
// list of one kind.
type listScreen[T models.Entity] struct {
	kind     Kind[T]
	repo     store.Repository[T]
	log      *zap.Logger
	selector *Selector[T]
	gate     Gate
	notice   *Notice
}

func newListScreen[T models.Entity](kind Kind[T], repo store.Repository[T], opts Options) listScreen[T] {
	return listScreen[T]{
		kind:     kind,
		repo:     repo,
		log:      opts.Log().With(zap.String("kind", kind.Noun)),
		selector: NewSelector(kind),
		notice:   opts.NewNotice(),
	}
}

// Refresh reloads the full list from storage and re-applies the query.
func (s *listScreen[T]) Refresh(ctx context.Context) error {
	if s.kind.Prepare != nil {
		if err := s.kind.Prepare(ctx); err != nil {
			return s.storageFailure("prepare", err)
		}
	}
	items, err := s.repo.List(ctx)
	if err != nil {
		return s.storageFailure("list", err)
	}
	s.selector.SetItems(items)
	return nil
}

func (s *listScreen[T]) storageFailure(op string, err error) error {
	wrapped := &StorageError{Err: err}
	s.notice.Fail(wrapped)
	s.log.Error("storage call failed", zap.String("op", op), zap.Error(err))
	return wrapped
}

func (s *listScreen[T]) CheckTimeout() {
	s.notice.CheckTimeout()
}

func (s *listScreen[T]) Selector() *Selector[T] { return s.selector }
func (s *listScreen[T]) Notice() *Notice        { return s.notice }
func (s *listScreen[T]) Gate() *Gate            { return &s.gate }

func (s *listScreen[T]) snapshot(title, help string, marks *Marks) Snapshot {
	snap := Snapshot{
		Title:  title,
		Help:   help,
		Search: SearchView{Active: s.selector.Searching(), Query: s.selector.Query()},
		Notice: NoticeView{Level: s.notice.Level(), Text: s.notice.Text()},
	}

	items := s.selector.Items()
	table := TableView{Header: s.kind.Header(), Cursor: s.selector.Cursor()}
	table.Rows = make([][]string, len(items))
	if marks != nil {
		table.Marked = make([]bool, len(items))
	}
	for i, item := range items {
		table.Rows[i] = s.kind.Row(item)
		if marks != nil {
			table.Marked[i] = marks.Marked(item.GetID())
		}
	}
	snap.Table = table

	if s.gate.IsOpen() {
		snap.Gate = &GateView{Message: s.gate.Message(), Choice: s.gate.Choice()}
	}
	return snap
}
