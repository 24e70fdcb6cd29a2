package workflow

import (
	"context"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"hospital-tui/internal/models"
)

// Field is one editable column of a record kind.
type Field[T any] struct {
	Name   string
	Format func(T) string
	// Parse writes raw into rec. A nil Parse marks the field read-only.
	// The returned error's text is shown to the user.
	Parse func(rec *T, raw string) error
}

// ReadOnly reports whether the field can be edited in place.
func (f Field[T]) ReadOnly() bool {
	return f.Parse == nil
}

// Kind describes one record type to the generic screens.
type Kind[T models.Entity] struct {
	Noun   string
	Plural string
	Fields []Field[T]
	// ListFields selects the columns shown in lists; nil shows every field.
	ListFields []int
	// Project returns the searchable text of a record.
	Project func(T) string
	// Validate runs before a record is persisted. Optional.
	Validate func(T) error
	// Prepare runs before every list refresh, e.g. to reload lookups used
	// by Project. Optional.
	Prepare func(ctx context.Context) error
}

// Title is the capitalized singular noun.
func (k Kind[T]) Title() string {
	return capitalize(k.Noun)
}

func (k Kind[T]) columns() []int {
	if k.ListFields != nil {
		return k.ListFields
	}
	cols := make([]int, len(k.Fields))
	for i := range cols {
		cols[i] = i
	}
	return cols
}

// Header returns the names of the list columns.
func (k Kind[T]) Header() []string {
	cols := k.columns()
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = k.Fields[c].Name
	}
	return out
}

// Row formats rec for the list columns.
func (k Kind[T]) Row(rec T) []string {
	cols := k.columns()
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = k.Fields[c].Format(rec)
	}
	return out
}

// Count renders n with the singular or plural noun.
func (k Kind[T]) Count(n int) string {
	if n == 1 {
		return "1 " + k.Noun
	}
	return strconv.Itoa(n) + " " + k.Plural
}

func (k Kind[T]) project(rec T) string {
	return strings.ToLower(k.Project(rec))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
