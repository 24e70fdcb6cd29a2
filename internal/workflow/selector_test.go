package workflow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-tui/internal/models"
)

func newSelectorWith(items ...string) *Selector[models.Invoice] {
	s := NewSelector(invoiceKind())
	list := make([]models.Invoice, len(items))
	for i, item := range items {
		list[i] = models.Invoice{Item: item}
		list[i].ID = int64(i + 1)
	}
	s.SetItems(list)
	return s
}

func TestSelector_EmptyQueryKeepsEverything(t *testing.T) {
	s := newSelectorWith("Bandage", "X-Ray", "Saline")
	s.SetQuery("")
	assert.Len(t, s.Items(), 3)
	assert.Equal(t, 0, s.Cursor())
}

func TestSelector_FilterIsCaseInsensitiveSubset(t *testing.T) {
	s := newSelectorWith("Bandage", "X-Ray", "Saline", "bandage roll")
	s.SetQuery("BAND")

	assert.Equal(t, "band", s.Query())
	require.Len(t, s.Items(), 2)
	for _, item := range s.Items() {
		assert.Contains(t, strings.ToLower(item.Item), "band")
		assert.Contains(t, s.All(), item)
	}
}

func TestSelector_NoMatchClearsCursor(t *testing.T) {
	s := newSelectorWith("Bandage")
	s.SetQuery("zzz")
	assert.Empty(t, s.Items())
	assert.Equal(t, -1, s.Cursor())
	_, ok := s.Current()
	assert.False(t, ok)

	s.MoveNext()
	assert.Equal(t, -1, s.Cursor())
}

func TestSelector_MoveNextWrapsAround(t *testing.T) {
	s := newSelectorWith("a", "b", "c")
	start := s.Cursor()
	for range s.Items() {
		s.MoveNext()
	}
	assert.Equal(t, start, s.Cursor())

	s.MovePrevious()
	assert.Equal(t, 2, s.Cursor())
}

func TestSelector_CursorClampedAfterShrink(t *testing.T) {
	s := newSelectorWith("alpha", "beta", "gamma")
	s.MoveNext()
	s.MoveNext()
	s.SetQuery("alpha")
	assert.Equal(t, 0, s.Cursor())
}

func TestSelector_SearchKeys(t *testing.T) {
	s := newSelectorWith("Bandage", "Saline")
	s.StartSearch()
	require.True(t, s.Searching())

	assert.True(t, s.HandleSearchKey(Char('s')))
	assert.True(t, s.HandleSearchKey(Char('a')))
	assert.Equal(t, "sa", s.Query())
	assert.Len(t, s.Items(), 1)

	assert.True(t, s.HandleSearchKey(Press(KeyBackspace)))
	assert.Equal(t, "s", s.Query())

	assert.False(t, s.HandleSearchKey(Press(KeyEnter)))
	assert.False(t, s.Searching())
	assert.Equal(t, "s", s.Query())
}

func TestSelector_EscClearsQuery(t *testing.T) {
	s := newSelectorWith("Bandage", "Saline")
	s.StartSearch()
	s.HandleSearchKey(Char('x'))
	require.Empty(t, s.Items())

	assert.True(t, s.HandleSearchKey(Press(KeyEsc)))
	assert.False(t, s.Searching())
	assert.Empty(t, s.Query())
	assert.Len(t, s.Items(), 2)
	assert.Equal(t, 0, s.Cursor())
}

func TestSelector_EnterWithNoMatchesStaysInSearch(t *testing.T) {
	s := newSelectorWith("Bandage")
	s.StartSearch()
	s.HandleSearchKey(Char('q'))
	s.HandleSearchKey(Press(KeyEnter))
	assert.True(t, s.Searching())
}
