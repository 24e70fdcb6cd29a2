package workflow

import (
	"strings"

	"hospital-tui/internal/models"
)

// Selector holds the full list of a kind, the subset matching the current
// query and a cursor into that subset. The cursor is -1 exactly when the
// filtered list is empty.
type Selector[T models.Entity] struct {
	kind      Kind[T]
	all       []T
	filtered  []T
	query     string
	cursor    int
	searching bool
}

func NewSelector[T models.Entity](kind Kind[T]) *Selector[T] {
	return &Selector[T]{kind: kind, cursor: -1}
}

// SetItems replaces the full list and re-applies the current query.
func (s *Selector[T]) SetItems(items []T) {
	s.all = items
	s.refilter()
}

// SetQuery lowercases q and keeps the items whose projection contains it.
func (s *Selector[T]) SetQuery(q string) {
	s.query = strings.ToLower(q)
	s.refilter()
}

func (s *Selector[T]) refilter() {
	if s.query == "" {
		s.filtered = s.all
	} else {
		s.filtered = make([]T, 0, len(s.all))
		for _, item := range s.all {
			if strings.Contains(s.kind.project(item), s.query) {
				s.filtered = append(s.filtered, item)
			}
		}
	}
	s.clamp()
}

func (s *Selector[T]) clamp() {
	switch {
	case len(s.filtered) == 0:
		s.cursor = -1
	case s.cursor < 0 || s.cursor >= len(s.filtered):
		s.cursor = 0
	}
}

// MoveNext advances the cursor, wrapping to the first item.
func (s *Selector[T]) MoveNext() {
	if len(s.filtered) == 0 {
		return
	}
	s.cursor = (s.cursor + 1) % len(s.filtered)
}

// MovePrevious moves the cursor back, wrapping to the last item.
func (s *Selector[T]) MovePrevious() {
	n := len(s.filtered)
	if n == 0 {
		return
	}
	s.cursor = (s.cursor - 1 + n) % n
}

// Current returns the item under the cursor.
func (s *Selector[T]) Current() (T, bool) {
	var zero T
	if s.cursor < 0 {
		return zero, false
	}
	return s.filtered[s.cursor], true
}

func (s *Selector[T]) Items() []T      { return s.filtered }
func (s *Selector[T]) All() []T        { return s.all }
func (s *Selector[T]) Query() string   { return s.query }
func (s *Selector[T]) Cursor() int     { return s.cursor }
func (s *Selector[T]) Searching() bool { return s.searching }

// IDs returns the ids of the filtered items in display order.
func (s *Selector[T]) IDs() []int64 {
	ids := make([]int64, len(s.filtered))
	for i, item := range s.filtered {
		ids[i] = item.GetID()
	}
	return ids
}

// StartSearch switches key handling to the query buffer.
func (s *Selector[T]) StartSearch() {
	s.searching = true
}

// HandleSearchKey edits the query while in search mode and reports
// whether the filtered list may have changed.
func (s *Selector[T]) HandleSearchKey(k Key) bool {
	switch k.Code {
	case KeyRune:
		s.SetQuery(s.query + string(k.Rune))
		return true
	case KeyBackspace:
		if s.query == "" {
			return false
		}
		q := []rune(s.query)
		s.SetQuery(string(q[:len(q)-1]))
		return true
	case KeyEnter, KeyDown:
		if len(s.filtered) > 0 {
			s.searching = false
			s.cursor = 0
		}
	case KeyEsc:
		s.searching = false
		changed := s.query != ""
		s.SetQuery("")
		if len(s.filtered) > 0 {
			s.cursor = 0
		}
		return changed
	}
	return false
}
