package tui

import (
	"context"
	"testing"

	"github.com/cristianoliveira/dragselect/internal/catalog"
	"github.com/cristianoliveira/dragselect/internal/selection"
	"github.com/stretchr/testify/assert"
)

func testItems(n int, locked ...int) []catalog.Item {
	items, _ := catalog.NewMemory(n, locked).Items(context.Background())
	return items
}

func TestAdapterRefusesLockedAndOutOfRange(t *testing.T) {
	a := NewAdapter(testItems(10, 6))

	assert.True(t, a.UpdateSelectState(2, true))
	assert.False(t, a.UpdateSelectState(6, true))
	assert.False(t, a.UpdateSelectState(-1, true))
	assert.False(t, a.UpdateSelectState(10, true))
	assert.Equal(t, []string{"item-2"}, a.CurrentSelectedIDs())
	assert.Equal(t, "item-4", a.ItemID(4))
	assert.Equal(t, "", a.ItemID(42))
}

func TestAdapterToggleAndBulk(t *testing.T) {
	a := NewAdapter(testItems(8, 6))

	assert.True(t, a.Toggle(1))
	assert.True(t, a.IsSelected(1))
	assert.True(t, a.Toggle(1))
	assert.False(t, a.IsSelected(1))
	assert.False(t, a.Toggle(6))

	a.SelectAll()
	assert.Equal(t, 7, a.SelectedCount())
	assert.False(t, a.IsSelected(6))

	a.DeselectAll()
	assert.Zero(t, a.SelectedCount())
}

func TestAdapterLeavingSelectModeClears(t *testing.T) {
	a := NewAdapter(testItems(5))
	a.SetSelectMode(true)
	a.SelectAll()

	a.SetSelectMode(true)
	assert.Equal(t, 5, a.SelectedCount())

	a.SetSelectMode(false)
	assert.False(t, a.SelectMode())
	assert.Zero(t, a.SelectedCount())
}

func TestAdapterUnderPolicy(t *testing.T) {
	a := NewAdapter(testItems(10))
	a.UpdateSelectState(4, true)
	p := selection.NewPolicy[string](a, selection.ToggleAndUndo)

	p.OnSelectStart(2)
	start, end := a.LastGesture()
	assert.Equal(t, 2, start)
	assert.Equal(t, selection.NoPosition, end)

	p.OnSelectChange(2, true)
	p.OnSelectChange(3, true)
	p.OnSelectChange(4, true)
	assert.Equal(t, []string{"item-2", "item-3", "item-4"}, a.CurrentSelectedIDs())

	// receding restores the original states
	p.OnSelectChange(4, false)
	p.OnSelectChange(3, false)
	p.OnSelectEnd(2)
	assert.Equal(t, []string{"item-2", "item-4"}, a.CurrentSelectedIDs())
	start, end = a.LastGesture()
	assert.Equal(t, 2, start)
	assert.Equal(t, 2, end)
}
