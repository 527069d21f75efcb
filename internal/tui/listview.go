package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/dragselect/internal/dragselect"
)

// horizontalCellWidth is the number of columns an item takes when the list
// scrolls sideways. Vertical lists use one row per item.
const horizontalCellWidth = 14

// frameMsg runs the posted frame with the same id.
type frameMsg struct {
	id int
}

// ListView is the scrollable area of the demo. It implements
// dragselect.Host in cell coordinates: one unit is one terminal cell and the
// scroll offset counts cells along the scroll axis.
type ListView struct {
	count       func() int
	width       int
	height      int
	orientation dragselect.Orientation
	offset      int

	listeners []dragselect.TouchListener
	captured  dragselect.TouchListener

	frames    map[int]func()
	nextFrame int
	due       []int
}

var _ dragselect.Host = (*ListView)(nil)

// NewListView creates a view over count items.
func NewListView(count func() int, orientation dragselect.Orientation) *ListView {
	return &ListView{
		count:       count,
		orientation: orientation,
		frames:      make(map[int]func()),
	}
}

func (v *ListView) ItemCount() int {
	return v.count()
}

// ItemAt resolves the item under a point inside the view.
func (v *ListView) ItemAt(x, y float64) (int, bool) {
	if x < 0 || y < 0 || x >= float64(v.width) || y >= float64(v.height) {
		return -1, false
	}
	along := y
	if v.orientation == dragselect.Horizontal {
		along = x
	}
	pos := int(math.Floor((float64(v.offset) + along) / float64(v.span())))
	if pos < 0 || pos >= v.count() {
		return -1, false
	}
	return pos, true
}

// ScrollBy moves the content by delta cells, clamped to the content.
func (v *ListView) ScrollBy(delta int, axis dragselect.Orientation) {
	if axis != v.orientation {
		return
	}
	v.offset = v.clamp(v.offset + delta)
}

func (v *ListView) Bounds() dragselect.Bounds {
	return dragselect.Bounds{Width: float64(v.width), Height: float64(v.height)}
}

func (v *ListView) Orientation() dragselect.Orientation {
	return v.orientation
}

// PostFrame queues fn for the next frame tick. The tick is emitted by
// FrameCmds; a cancelled or already run frame ignores its tick.
func (v *ListView) PostFrame(fn func()) func() {
	id := v.nextFrame
	v.nextFrame++
	v.frames[id] = fn
	v.due = append(v.due, id)
	return func() { delete(v.frames, id) }
}

func (v *ListView) AddTouchListener(l dragselect.TouchListener) {
	v.listeners = append(v.listeners, l)
}

func (v *ListView) RemoveTouchListener(l dragselect.TouchListener) {
	for i, existing := range v.listeners {
		if existing == l {
			v.listeners = append(v.listeners[:i], v.listeners[i+1:]...)
			break
		}
	}
	if v.captured == l {
		v.captured = nil
	}
}

// Dispatch routes a pointer event to the listeners and reports whether one
// of them owns the gesture.
func (v *ListView) Dispatch(e dragselect.TouchEvent) bool {
	if e.Action == dragselect.TouchDown {
		v.captured = nil
	}
	owned := false
	if v.captured != nil {
		v.captured.HandleTouch(e)
		owned = true
	} else {
		for _, l := range v.listeners {
			if l.InterceptTouch(e) {
				v.captured = l
				owned = true
				break
			}
		}
	}
	if e.Action == dragselect.TouchUp || e.Action == dragselect.TouchCancel {
		v.captured = nil
	}
	return owned
}

// Captured reports whether a listener owns the current gesture.
func (v *ListView) Captured() bool {
	return v.captured != nil
}

// RevokeIntercept takes the current gesture back from the listeners.
func (v *ListView) RevokeIntercept() {
	v.captured = nil
	for _, l := range v.listeners {
		l.RequestDisallowIntercept(true)
	}
}

// FrameCmds returns one tick command per frame posted since the last call.
func (v *ListView) FrameCmds(interval time.Duration) []tea.Cmd {
	if len(v.due) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(v.due))
	for _, id := range v.due {
		cmds = append(cmds, tea.Tick(interval, func(time.Time) tea.Msg {
			return frameMsg{id: id}
		}))
	}
	v.due = v.due[:0]
	return cmds
}

// RunFrame runs the frame with id and reports whether it was still pending.
func (v *ListView) RunFrame(id int) bool {
	fn, ok := v.frames[id]
	if !ok {
		return false
	}
	delete(v.frames, id)
	fn()
	return true
}

// SetSize resizes the view and keeps the offset inside the content.
func (v *ListView) SetSize(width, height int) {
	v.width, v.height = max(width, 0), max(height, 0)
	v.offset = v.clamp(v.offset)
}

// SetOrientation switches the scroll axis, keeping the first visible item
// in front.
func (v *ListView) SetOrientation(o dragselect.Orientation) {
	if o == v.orientation {
		return
	}
	first := v.offset / v.span()
	v.orientation = o
	v.offset = v.clamp(first * v.span())
}

// Offset returns the scroll offset in cells.
func (v *ListView) Offset() int {
	return v.offset
}

// Size returns the view size in cells.
func (v *ListView) Size() (width, height int) {
	return v.width, v.height
}

// Extent returns the view length along the scroll axis.
func (v *ListView) Extent() int {
	if v.orientation == dragselect.Horizontal {
		return v.width
	}
	return v.height
}

func (v *ListView) span() int {
	if v.orientation == dragselect.Horizontal {
		return horizontalCellWidth
	}
	return 1
}

func (v *ListView) clamp(offset int) int {
	limit := v.count()*v.span() - v.Extent()
	if offset > limit {
		offset = limit
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
