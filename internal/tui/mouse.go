package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/dragselect/internal/dragselect"
	"github.com/cristianoliveira/dragselect/internal/selection"
)

const wheelStep = 3

// press tracks the left button between press and release.
type press struct {
	active bool
	gen    int
	// pos is the item under the press, or NoPosition once the pointer
	// left it.
	pos int
	// owned is set once a touch listener took the gesture.
	owned       bool
	longPressed bool
}

func idlePress() press {
	return press{pos: selection.NoPosition}
}

// resetPress forgets the current press. The generation survives so pending
// long press ticks stay stale.
func (m *Model) resetPress() {
	gen := m.press.gen
	m.press = idlePress()
	m.press.gen = gen
}

// longPressMsg fires when the button stayed on one item long enough.
type longPressMsg struct {
	gen int
	pos int
}

func longPressAfter(d time.Duration, gen, pos int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return longPressMsg{gen: gen, pos: pos}
	})
}

// touchPoint maps a mouse cell to the centre of that cell in list
// coordinates.
func touchPoint(msg tea.MouseMsg) (x, y float64) {
	return float64(msg.X) + 0.5, float64(msg.Y-headerLines) + 0.5
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	x, y := touchPoint(msg)
	switch {
	case msg.Action == tea.MouseActionPress && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelLeft):
		m.list.ScrollBy(-wheelStep, m.list.Orientation())
	case msg.Action == tea.MouseActionPress && (msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelRight):
		m.list.ScrollBy(wheelStep, m.list.Orientation())
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.pointerDown(x, y)
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		m.pointerMove(x, y)
	case msg.Action == tea.MouseActionRelease:
		m.pointerUp(x, y)
	}
	return nil
}

func (m *Model) pointerDown(x, y float64) tea.Cmd {
	m.resetPress()
	m.press.gen++
	m.press.active = true
	gen := m.press.gen
	if m.list.Dispatch(dragselect.TouchEvent{Action: dragselect.TouchDown, X: x, Y: y}) {
		m.press.owned = true
		return nil
	}
	pos, ok := m.list.ItemAt(x, y)
	if !ok {
		return nil
	}
	m.press.pos = pos
	return longPressAfter(m.opts.LongPress, gen, pos)
}

func (m *Model) pointerMove(x, y float64) {
	if !m.press.active {
		return
	}
	if m.list.Dispatch(dragselect.TouchEvent{Action: dragselect.TouchMove, X: x, Y: y}) {
		m.press.owned = true
		return
	}
	if pos, ok := m.list.ItemAt(x, y); !ok || pos != m.press.pos {
		m.press.pos = selection.NoPosition
	}
}

func (m *Model) pointerUp(x, y float64) {
	if !m.press.active {
		return
	}
	owned := m.list.Dispatch(dragselect.TouchEvent{Action: dragselect.TouchUp, X: x, Y: y})
	p := m.press
	m.resetPress()
	if owned || p.owned || p.longPressed || p.pos == selection.NoPosition {
		return
	}
	if pos, ok := m.list.ItemAt(x, y); ok && pos == p.pos && m.adapter.SelectMode() {
		m.adapter.Toggle(pos)
	}
}

// handleLongPress starts a drag at the pressed item if the press is still
// the same and nobody took the gesture.
func (m *Model) handleLongPress(msg longPressMsg) {
	p := &m.press
	if !p.active || p.gen != msg.gen || p.pos != msg.pos || p.owned || p.longPressed {
		return
	}
	p.longPressed = true
	m.statusMessage = ""
	m.adapter.SetSelectMode(true)
	ok, err := m.helper.ActiveDragSelect(msg.pos)
	if err != nil {
		m.fail("drag select", err)
		return
	}
	if !ok {
		m.log.Debug("drag select refused", "position", msg.pos)
	}
}
