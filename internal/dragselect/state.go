package dragselect

// State is the interaction state of a Helper.
type State int

const (
	// StateNormal means no selection mode is active.
	StateNormal State = 0x00
	// StateSlide means a press inside the slide area starts a selection.
	StateSlide State = 0x01
	// StateDragFromNormal is a drag session entered from StateNormal.
	StateDragFromNormal State = 0x10
	// StateDragFromSlide is a drag session entered from StateSlide.
	StateDragFromSlide State = 0x11
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "NormalState"
	case StateSlide:
		return "SlideState"
	case StateDragFromNormal:
		return "DragFromNormal"
	case StateDragFromSlide:
		return "DragFromSlide"
	default:
		return "UnknownState"
	}
}

// Dragging reports whether s is one of the drag states.
func (s State) Dragging() bool {
	return s == StateDragFromNormal || s == StateDragFromSlide
}
