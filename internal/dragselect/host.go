package dragselect

// Orientation is the primary scroll axis of a host list.
type Orientation int

const (
	// OrientationUnknown is reported by hosts whose layout has no single
	// linear scroll axis.
	OrientationUnknown Orientation = iota
	Vertical
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Bounds is the size of a host view and the padding around its content.
type Bounds struct {
	Width, Height float64

	PaddingLeft   float64
	PaddingTop    float64
	PaddingRight  float64
	PaddingBottom float64
}

// Host is the scrollable list a Helper drives.
//
// All methods are called from the goroutine that delivers touch events and
// runs posted frames. Hosts must not call back into the Helper concurrently.
type Host interface {
	ItemCount() int
	// ItemAt resolves the item under the point, in view coordinates.
	ItemAt(x, y float64) (int, bool)
	ScrollBy(delta int, axis Orientation)
	Bounds() Bounds
	Orientation() Orientation
	// PostFrame runs fn once on the next frame. The returned cancel
	// function prevents fn from running if it has not run yet.
	PostFrame(fn func()) (cancel func())
	AddTouchListener(l TouchListener)
	RemoveTouchListener(l TouchListener)
}

// TouchAction is the kind of a pointer event.
type TouchAction int

const (
	TouchDown TouchAction = iota
	TouchMove
	TouchUp
	TouchCancel
)

func (a TouchAction) String() string {
	switch a {
	case TouchDown:
		return "down"
	case TouchMove:
		return "move"
	case TouchUp:
		return "up"
	case TouchCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// TouchEvent is a single pointer event in view coordinates.
type TouchEvent struct {
	Action TouchAction
	X, Y   float64
}

// TouchListener receives a host's pointer events.
//
// Hosts offer every event of a gesture to InterceptTouch until it returns
// true; the remaining events of that gesture go to HandleTouch instead and
// are not processed by the host itself.
type TouchListener interface {
	InterceptTouch(e TouchEvent) bool
	HandleTouch(e TouchEvent)
	// RequestDisallowIntercept is called when the host takes the gesture
	// back from its listeners.
	RequestDisallowIntercept(disallow bool)
}
