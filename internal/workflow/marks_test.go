package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarks_ToggleKeepsOrder(t *testing.T) {
	m := NewMarks()
	m.Toggle(3)
	m.Toggle(1)
	m.Toggle(2)
	m.Toggle(1)

	assert.Equal(t, []int64{3, 2}, m.IDs())
	assert.False(t, m.Marked(1))
	assert.Equal(t, 2, m.Len())
}

func TestMarks_SelectAllTwiceReturnsToEmpty(t *testing.T) {
	m := NewMarks()
	ids := []int64{4, 5, 6}

	m.SelectAllOrClear(ids)
	assert.Equal(t, ids, m.IDs())

	m.SelectAllOrClear(ids)
	assert.Zero(t, m.Len())
}

func TestMarks_SelectAllCompletesPartialSelection(t *testing.T) {
	m := NewMarks()
	m.Mark(5)
	m.SelectAllOrClear([]int64{4, 5, 6})
	assert.Equal(t, []int64{4, 5, 6}, m.IDs())
}

func TestMarks_MarkIsIdempotent(t *testing.T) {
	m := NewMarks()
	m.Mark(7)
	m.Mark(7)
	assert.Equal(t, []int64{7}, m.IDs())
}
