package workflow

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hospital-tui/internal/models"
	"hospital-tui/internal/store"
)

// DeleteScreen marks records in a filtered list and deletes them in bulk
// behind a confirmation.
type DeleteScreen[T models.Entity] struct {
	listScreen[T]
	marks *Marks
}

func NewDeleteScreen[T models.Entity](kind Kind[T], repo store.Repository[T], opts Options) *DeleteScreen[T] {
	return &DeleteScreen[T]{
		listScreen: newListScreen(kind, repo, opts),
		marks:      NewMarks(),
	}
}

func (s *DeleteScreen[T]) Marks() *Marks { return s.marks }

// Refresh reloads the list. Marks do not survive a reload.
func (s *DeleteScreen[T]) Refresh(ctx context.Context) error {
	s.marks.Clear()
	return s.listScreen.Refresh(ctx)
}

// HandleKey implements Screen.
func (s *DeleteScreen[T]) HandleKey(ctx context.Context, k Key) bool {
	s.notice.CheckTimeout()

	if s.gate.IsOpen() {
		s.gate.HandleKey(ctx, k)
		return false
	}
	if s.selector.Searching() {
		if s.selector.HandleSearchKey(k) {
			s.marks.Clear()
		}
		return false
	}

	switch {
	case startsSearch(k):
		s.selector.StartSearch()
	case k.Code == KeyUp:
		s.selector.MovePrevious()
	case k.Code == KeyDown:
		s.selector.MoveNext()
	case k.Is(' '):
		if cur, ok := s.selector.Current(); ok {
			s.marks.Toggle(cur.GetID())
		}
	case k.Is('a'):
		s.marks.SelectAllOrClear(s.selector.IDs())
	case k.Is('b'):
		s.requestDelete(ctx)
	case k.Code == KeyEnter:
		if cur, ok := s.selector.Current(); ok {
			s.marks.Mark(cur.GetID())
		}
		s.requestDelete(ctx)
	case k.Is('r'):
		_ = s.Refresh(ctx)
	case k.Code == KeyEsc:
		return true
	}
	return false
}

func (s *DeleteScreen[T]) requestDelete(ctx context.Context) {
	n := s.marks.Len()
	if n == 0 {
		s.notice.Error("No " + s.kind.Plural + " selected for deletion.")
		_ = s.Refresh(ctx)
		return
	}
	s.gate.Request(fmt.Sprintf("Are you sure you want to delete %s?", s.kind.Count(n)), s.deleteMarked)
}

// deleteMarked deletes the marked ids in marking order and stops at the
// first failure. Records deleted before the failure stay deleted.
func (s *DeleteScreen[T]) deleteMarked(ctx context.Context) {
	deleted := 0
	var failure error
	for _, id := range s.marks.IDs() {
		if err := s.repo.Delete(ctx, id); err != nil {
			failure = storageErr(s.kind.Noun, id, err)
			s.log.Error("delete failed", zap.Int64("id", id), zap.Int("deleted", deleted), zap.Error(err))
			break
		}
		deleted++
	}

	if failure != nil {
		s.notice.Error(fmt.Sprintf("Error during deletion: %v. %s deleted successfully.", failure, s.kind.Count(deleted)))
	} else {
		s.notice.Success(s.kind.Count(deleted) + " deleted successfully!")
		s.log.Info("records deleted", zap.Int("count", deleted))
	}

	// a reload failure would replace the outcome notice
	s.marks.Clear()
	if items, err := s.repo.List(ctx); err == nil {
		s.selector.SetItems(items)
	}
}

// Snapshot implements Screen.
func (s *DeleteScreen[T]) Snapshot() Snapshot {
	snap := s.snapshot("Delete "+s.kind.Plural, "/ search | Space mark | a all | b delete marked | Enter delete | r refresh | Esc back", s.marks)
	if n := s.marks.Len(); n > 0 {
		snap.Lines = []string{fmt.Sprintf("%s marked", s.kind.Count(n))}
	}
	return snap
}
