package selection

// Callback is the required contract between a drag-select controller and
// the application's data model.
type Callback interface {
	// OnSelectChange asks for position to become selected or unselected
	// and reports whether the change was applied. Rejecting the first item
	// of a gesture prevents the gesture from starting.
	OnSelectChange(position int, selected bool) bool
}

// StartListener is implemented by callbacks that want to know when a
// gesture begins. It is called before any OnSelectChange of the gesture.
type StartListener interface {
	OnSelectStart(start int)
}

// EndListener is implemented by callbacks that want to know when a
// gesture ends. It is called after every OnSelectChange of the gesture.
type EndListener interface {
	OnSelectEnd(end int)
}

// Funcs adapts plain functions to Callback, StartListener and EndListener.
// Nil hooks are skipped; a nil Change accepts every change.
type Funcs struct {
	Change func(position int, selected bool) bool
	Start  func(start int)
	End    func(end int)
}

var (
	_ Callback      = Funcs{}
	_ StartListener = Funcs{}
	_ EndListener   = Funcs{}
)

func (f Funcs) OnSelectChange(position int, selected bool) bool {
	if f.Change == nil {
		return true
	}
	return f.Change(position, selected)
}

func (f Funcs) OnSelectStart(start int) {
	if f.Start != nil {
		f.Start(start)
	}
}

func (f Funcs) OnSelectEnd(end int) {
	if f.End != nil {
		f.End(end)
	}
}

// NotifyStart calls cb.OnSelectStart when cb implements StartListener.
func NotifyStart(cb Callback, start int) {
	if l, ok := cb.(StartListener); ok {
		l.OnSelectStart(start)
	}
}

// NotifyEnd calls cb.OnSelectEnd when cb implements EndListener.
func NotifyEnd(cb Callback, end int) {
	if l, ok := cb.(EndListener); ok {
		l.OnSelectEnd(end)
	}
}
