package workflow

import (
	"context"

	"go.uber.org/zap"

	"hospital-tui/internal/models"
	"hospital-tui/internal/store"
)

// UpdateScreen selects one record, edits it field by field and persists it
// behind a confirmation.
type UpdateScreen[T models.Entity] struct {
	listScreen[T]
	editor  *Editor[T]
	idInput string
}

func NewUpdateScreen[T models.Entity](kind Kind[T], repo store.Repository[T], opts Options) *UpdateScreen[T] {
	return &UpdateScreen[T]{
		listScreen: newListScreen(kind, repo, opts),
		editor:     NewEditor(kind),
	}
}

func (s *UpdateScreen[T]) Editor() *Editor[T] { return s.editor }
func (s *UpdateScreen[T]) IDInput() string    { return s.idInput }

// HandleKey implements Screen.
func (s *UpdateScreen[T]) HandleKey(ctx context.Context, k Key) bool {
	s.notice.CheckTimeout()

	switch {
	case s.gate.IsOpen():
		s.gate.HandleKey(ctx, k)
	case s.editor.Loaded():
		s.handleSessionKey(k)
	case s.selector.Searching():
		s.selector.HandleSearchKey(k)
	default:
		return s.handleSelectKey(ctx, k)
	}
	return false
}

func (s *UpdateScreen[T]) handleSelectKey(ctx context.Context, k Key) bool {
	switch {
	case startsSearch(k):
		s.selector.StartSearch()
	case k.Code == KeyRune:
		s.idInput += string(k.Rune)
	case k.Code == KeyBackspace:
		if b := []rune(s.idInput); len(b) > 0 {
			s.idInput = string(b[:len(b)-1])
		}
	case k.Code == KeyUp:
		s.selector.MovePrevious()
	case k.Code == KeyDown:
		s.selector.MoveNext()
	case k.Code == KeyEnter:
		s.load(ctx)
	case k.Code == KeyEsc:
		return true
	}
	return false
}

// load opens a session on the typed id, or on the selection when nothing
// was typed.
func (s *UpdateScreen[T]) load(ctx context.Context) {
	typed := s.idInput
	s.idInput = ""

	var id int64
	if typed != "" {
		parsed, err := ParseID(s.kind.Noun, typed)
		if err != nil {
			s.notice.Fail(err)
			return
		}
		id = parsed
	} else if cur, ok := s.selector.Current(); ok {
		id = cur.GetID()
	} else {
		s.notice.Error("No " + s.kind.Noun + " selected")
		return
	}

	if err := s.editor.Load(ctx, s.repo, id); err != nil {
		s.notice.Fail(err)
		s.log.Warn("load failed", zap.Int64("id", id), zap.Error(err))
		return
	}
	s.log.Debug("record loaded", zap.Int64("id", id))
}

func (s *UpdateScreen[T]) handleSessionKey(k Key) {
	if s.editor.Editing() {
		switch k.Code {
		case KeyEnter:
			if err := s.editor.Commit(); err != nil {
				s.notice.Fail(err)
			}
		case KeyEsc:
			s.editor.Cancel()
		default:
			s.editor.Input(k)
		}
		return
	}

	switch k.Code {
	case KeyUp:
		s.editor.MoveField(-1)
	case KeyDown:
		s.editor.MoveField(1)
	case KeyEnter:
		s.editor.BeginEdit()
	case KeySave:
		s.gate.Request("Are you sure you want to update this "+s.kind.Noun+"?", s.save)
	case KeyEsc:
		s.editor.Close()
	}
}

func (s *UpdateScreen[T]) save(ctx context.Context) {
	sess := s.editor.Session()
	if sess == nil {
		return
	}
	rec := sess.Record
	id := rec.GetID()

	if s.kind.Validate != nil {
		if err := s.kind.Validate(rec); err != nil {
			s.notice.Fail(err)
			return
		}
	}
	if err := s.repo.Update(ctx, rec); err != nil {
		err = storageErr(s.kind.Noun, id, err)
		s.notice.Fail(err)
		s.log.Error("update failed", zap.Int64("id", id), zap.Error(err))
		return
	}

	s.notice.Success(s.kind.Title() + " updated successfully!")
	s.log.Info("record updated", zap.Int64("id", id))
	// a failed reload keeps the success notice
	if items, err := s.repo.List(ctx); err == nil {
		s.selector.SetItems(items)
	}
}

// Snapshot implements Screen.
func (s *UpdateScreen[T]) Snapshot() Snapshot {
	snap := s.snapshot("Update "+s.kind.Title(), "", nil)
	snap.IDInput = s.idInput

	sess := s.editor.Session()
	if sess == nil {
		snap.Help = "Type ID or select | / search | Up/Down move | Enter load | Esc back"
		return snap
	}

	snap.Help = "Up/Down field | Enter edit | Ctrl+S save | Esc back"
	snap.Form = make([]FormField, len(s.kind.Fields))
	for i, f := range s.kind.Fields {
		field := FormField{
			Name:     f.Name,
			Value:    f.Format(sess.Record),
			Active:   i == sess.Field,
			ReadOnly: f.ReadOnly(),
		}
		if field.Active && sess.Editing {
			field.Value = sess.Buffer
			field.Editing = true
		}
		snap.Form[i] = field
	}
	if sess.Editing {
		snap.Help = "Enter commit | Esc cancel"
	}
	return snap
}
