package selection

// Source is the data model a Policy drives. T identifies items independently
// of their position.
type Source[T comparable] interface {
	// CurrentSelectedIDs returns the identities selected right now.
	CurrentSelectedIDs() []T
	// ItemID returns the identity of the item at position.
	ItemID(position int) T
	// UpdateSelectState sets the state of position and reports success.
	UpdateSelectState(position int, selected bool) bool
}

// Policy decorates a Source with a Behavior. It snapshots the selection when
// a gesture starts and resolves every change request through the behavior
// table before writing to the source.
//
// If the source also implements StartListener or EndListener it is notified
// after the policy updates its own snapshot.
type Policy[T comparable] struct {
	source           Source[T]
	behavior         Behavior
	original         map[T]struct{}
	firstWasSelected bool
	anchor           int
}

var (
	_ Callback      = (*Policy[string])(nil)
	_ StartListener = (*Policy[string])(nil)
	_ EndListener   = (*Policy[string])(nil)
)

// NewPolicy creates a policy over source using behavior.
func NewPolicy[T comparable](source Source[T], behavior Behavior) *Policy[T] {
	return &Policy[T]{source: source, behavior: behavior, anchor: NoPosition}
}

// Behavior returns the current behavior.
func (p *Policy[T]) Behavior() Behavior {
	return p.behavior
}

// SetBehavior switches the behavior. It applies to the next change request.
func (p *Policy[T]) SetBehavior(b Behavior) {
	p.behavior = b
}

// FirstWasSelected reports whether the anchor was selected before the
// current gesture.
func (p *Policy[T]) FirstWasSelected() bool {
	return p.firstWasSelected
}

// OnSelectStart snapshots the selection and the anchor's state.
func (p *Policy[T]) OnSelectStart(start int) {
	selected := p.source.CurrentSelectedIDs()
	p.original = make(map[T]struct{}, len(selected))
	for _, id := range selected {
		p.original[id] = struct{}{}
	}
	_, p.firstWasSelected = p.original[p.source.ItemID(start)]
	p.anchor = start
	if l, ok := p.source.(StartListener); ok {
		l.OnSelectStart(start)
	}
}

// OnSelectEnd drops the snapshot.
func (p *Policy[T]) OnSelectEnd(end int) {
	p.original = nil
	p.anchor = NoPosition
	if l, ok := p.source.(EndListener); ok {
		l.OnSelectEnd(end)
	}
}

// OnSelectChange resolves the target state for position and applies it.
// Selecting the gesture's anchor resolves through AnchorTarget.
func (p *Policy[T]) OnSelectChange(position int, selected bool) bool {
	var target bool
	if selected && position == p.anchor {
		target = p.behavior.AnchorTarget(p.firstWasSelected)
	} else {
		target = p.behavior.Target(selected, p.firstWasSelected, p.wasSelected(position))
	}
	return p.source.UpdateSelectState(position, target)
}

func (p *Policy[T]) wasSelected(position int) bool {
	if p.original == nil {
		return false
	}
	_, ok := p.original[p.source.ItemID(position)]
	return ok
}
