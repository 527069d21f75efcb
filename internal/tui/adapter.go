package tui

import (
	"github.com/cristianoliveira/dragselect/internal/catalog"
	"github.com/cristianoliveira/dragselect/internal/selection"
)

// Adapter is the demo's data model. It owns the selection and the select
// mode flag, and refuses changes to locked items.
type Adapter struct {
	items      []catalog.Item
	selected   map[string]bool
	selectMode bool

	// gesture bookkeeping shown in the status bar
	lastStart int
	lastEnd   int
}

var (
	_ selection.Source[string] = (*Adapter)(nil)
	_ selection.StartListener  = (*Adapter)(nil)
	_ selection.EndListener    = (*Adapter)(nil)
)

// NewAdapter creates an adapter over items with nothing selected.
func NewAdapter(items []catalog.Item) *Adapter {
	return &Adapter{
		items:     items,
		selected:  make(map[string]bool),
		lastStart: selection.NoPosition,
		lastEnd:   selection.NoPosition,
	}
}

// Len returns the number of items.
func (a *Adapter) Len() int {
	return len(a.items)
}

// Item returns the item at position.
func (a *Adapter) Item(position int) (catalog.Item, bool) {
	if position < 0 || position >= len(a.items) {
		return catalog.Item{}, false
	}
	return a.items[position], true
}

func (a *Adapter) CurrentSelectedIDs() []string {
	ids := make([]string, 0, len(a.selected))
	for _, it := range a.items {
		if a.selected[it.ID] {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

func (a *Adapter) ItemID(position int) string {
	it, _ := a.Item(position)
	return it.ID
}

// UpdateSelectState sets the state of position. Locked and out of range
// positions are refused.
func (a *Adapter) UpdateSelectState(position int, selected bool) bool {
	it, ok := a.Item(position)
	if !ok || it.Locked {
		return false
	}
	if selected {
		a.selected[it.ID] = true
	} else {
		delete(a.selected, it.ID)
	}
	return true
}

func (a *Adapter) OnSelectStart(start int) {
	a.lastStart = start
	a.lastEnd = selection.NoPosition
}

func (a *Adapter) OnSelectEnd(end int) {
	a.lastEnd = end
}

// LastGesture returns the start and end of the most recent gesture.
func (a *Adapter) LastGesture() (start, end int) {
	return a.lastStart, a.lastEnd
}

// Toggle flips position and reports whether it changed.
func (a *Adapter) Toggle(position int) bool {
	return a.UpdateSelectState(position, !a.IsSelected(position))
}

// IsSelected reports whether position is selected.
func (a *Adapter) IsSelected(position int) bool {
	it, ok := a.Item(position)
	return ok && a.selected[it.ID]
}

// SelectedCount returns the number of selected items.
func (a *Adapter) SelectedCount() int {
	return len(a.selected)
}

// SelectAll selects every item that accepts selection.
func (a *Adapter) SelectAll() {
	for i := range a.items {
		a.UpdateSelectState(i, true)
	}
}

// DeselectAll clears the selection.
func (a *Adapter) DeselectAll() {
	a.selected = make(map[string]bool)
}

// SelectMode reports whether checkboxes are shown.
func (a *Adapter) SelectMode() bool {
	return a.selectMode
}

// SetSelectMode switches select mode. Leaving it clears the selection.
func (a *Adapter) SetSelectMode(enabled bool) {
	if a.selectMode == enabled {
		return
	}
	a.selectMode = enabled
	if !enabled {
		a.DeselectAll()
	}
}
