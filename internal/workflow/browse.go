package workflow

import (
	"context"

	"hospital-tui/internal/models"
	"hospital-tui/internal/store"
)

// BrowseScreen is a read-only searchable list with a detail view of the
// selected record.
type BrowseScreen[T models.Entity] struct {
	listScreen[T]
	detail bool
}

func NewBrowseScreen[T models.Entity](kind Kind[T], repo store.Repository[T], opts Options) *BrowseScreen[T] {
	return &BrowseScreen[T]{listScreen: newListScreen(kind, repo, opts)}
}

func (s *BrowseScreen[T]) ShowingDetail() bool { return s.detail }

// HandleKey implements Screen.
func (s *BrowseScreen[T]) HandleKey(ctx context.Context, k Key) bool {
	s.notice.CheckTimeout()

	if s.detail {
		if k.Code == KeyEsc || k.Code == KeyEnter {
			s.detail = false
		}
		return false
	}
	if s.selector.Searching() {
		s.selector.HandleSearchKey(k)
		return false
	}

	switch {
	case startsSearch(k):
		s.selector.StartSearch()
	case k.Code == KeyUp:
		s.selector.MovePrevious()
	case k.Code == KeyDown:
		s.selector.MoveNext()
	case k.Code == KeyEnter:
		if _, ok := s.selector.Current(); ok {
			s.detail = true
		} else {
			s.notice.Error("No " + s.kind.Noun + " selected")
		}
	case k.Is('r'):
		_ = s.Refresh(ctx)
	case k.Code == KeyEsc:
		return true
	}
	return false
}

// Snapshot implements Screen.
func (s *BrowseScreen[T]) Snapshot() Snapshot {
	snap := s.snapshot("View "+s.kind.Plural, "/ search | Up/Down move | Enter details | r refresh | Esc back", nil)
	if !s.detail {
		return snap
	}
	cur, ok := s.selector.Current()
	if !ok {
		return snap
	}
	snap.Help = "Esc close"
	snap.Form = make([]FormField, len(s.kind.Fields))
	for i, f := range s.kind.Fields {
		snap.Form[i] = FormField{Name: f.Name, Value: f.Format(cur), ReadOnly: true}
	}
	return snap
}
