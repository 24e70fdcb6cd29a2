package workflow

import (
	"context"
	"strconv"
	"strings"

	"hospital-tui/internal/models"
	"hospital-tui/internal/store"
)

// Session is a loaded record being edited field by field. Changes stay in
// the session until they are explicitly persisted.
type Session[T models.Entity] struct {
	Record  T
	Field   int
	Buffer  string
	Editing bool
}

// Editor owns at most one Session.
type Editor[T models.Entity] struct {
	kind    Kind[T]
	session *Session[T]
}

func NewEditor[T models.Entity](kind Kind[T]) *Editor[T] {
	return &Editor[T]{kind: kind}
}

// ParseID parses a typed record id.
func ParseID(noun, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, &ValidationError{Field: "ID", Message: "Invalid " + capitalize(noun) + " ID format."}
	}
	return id, nil
}

// Load fetches id into a fresh session. On failure the previous session,
// if any, is left as it was.
func (e *Editor[T]) Load(ctx context.Context, repo store.Repository[T], id int64) error {
	rec, err := repo.Get(ctx, id)
	if err != nil {
		return storageErr(e.kind.Noun, id, err)
	}
	e.session = &Session[T]{Record: rec}
	e.session.Buffer = e.format()
	return nil
}

// Session returns the active session or nil.
func (e *Editor[T]) Session() *Session[T] {
	return e.session
}

func (e *Editor[T]) Loaded() bool {
	return e.session != nil
}

func (e *Editor[T]) Editing() bool {
	return e.session != nil && e.session.Editing
}

// Close drops the session and any uncommitted edits.
func (e *Editor[T]) Close() {
	e.session = nil
}

func (e *Editor[T]) format() string {
	return e.kind.Fields[e.session.Field].Format(e.session.Record)
}

// MoveField moves the field cursor by delta, clamped to the field range.
// The buffer is reset to the new field's stored value.
func (e *Editor[T]) MoveField(delta int) {
	if e.session == nil || e.session.Editing {
		return
	}
	f := e.session.Field + delta
	if f < 0 {
		f = 0
	}
	if last := len(e.kind.Fields) - 1; f > last {
		f = last
	}
	e.session.Field = f
	e.session.Buffer = e.format()
}

// BeginEdit enters editing mode on the current field. Read-only fields
// stay idle.
func (e *Editor[T]) BeginEdit() bool {
	if e.session == nil || e.session.Editing {
		return false
	}
	if e.kind.Fields[e.session.Field].ReadOnly() {
		return false
	}
	e.session.Editing = true
	e.session.Buffer = e.format()
	return true
}

// Input applies a printable character or backspace to the buffer.
func (e *Editor[T]) Input(k Key) {
	if !e.Editing() {
		return
	}
	switch k.Code {
	case KeyRune:
		e.session.Buffer += string(k.Rune)
	case KeyBackspace:
		if b := []rune(e.session.Buffer); len(b) > 0 {
			e.session.Buffer = string(b[:len(b)-1])
		}
	}
}

// Commit parses the buffer into the current field. On a parse failure the
// record is unchanged and the session stays in editing mode.
func (e *Editor[T]) Commit() error {
	if !e.Editing() {
		return nil
	}
	field := e.kind.Fields[e.session.Field]
	rec := e.session.Record
	if err := field.Parse(&rec, e.session.Buffer); err != nil {
		return &ValidationError{Field: field.Name, Message: err.Error()}
	}
	e.session.Record = rec
	e.session.Editing = false
	e.session.Buffer = e.format()
	return nil
}

// Cancel leaves editing mode and restores the buffer from the record.
func (e *Editor[T]) Cancel() {
	if !e.Editing() {
		return
	}
	e.session.Editing = false
	e.session.Buffer = e.format()
}
