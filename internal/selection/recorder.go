// Package selection tracks the range covered by a drag-select gesture and
// decides which state each traversed item should take.
package selection

// NoPosition marks an unset item position.
const NoPosition = -1

// Recorder tracks one anchored selection range and accumulates the items
// that must flip between selected and unselected as the range end moves.
//
// The materialized range is always [min(anchor, end), max(anchor, end)].
// Pending changes are kept as a net diff: an item queued for selection and
// later for unselection before a drain is dropped from both queues.
type Recorder struct {
	anchor    int
	end       int
	lastStart int
	lastEnd   int

	toSelect   indexQueue
	toUnselect indexQueue
}

// NewRecorder creates an inactive recorder.
func NewRecorder() *Recorder {
	r := &Recorder{}
	r.Clear()
	return r
}

// SelectFirst anchors a new range on position.
func (r *Recorder) SelectFirst(position int) {
	r.anchor = position
	r.end = position
	r.lastStart = position
	r.lastEnd = position
	r.toSelect.reset()
	r.toUnselect.reset()
}

// Active reports whether a range is anchored.
func (r *Recorder) Active() bool {
	return r.anchor != NoPosition
}

// Anchor returns the first selected position, or NoPosition.
func (r *Recorder) Anchor() int {
	return r.anchor
}

// End returns the current range end, or NoPosition.
func (r *Recorder) End() int {
	return r.end
}

// Range returns the materialized inclusive bounds.
func (r *Recorder) Range() (start, end int) {
	return r.lastStart, r.lastEnd
}

// Update moves the range end to position. It returns false when nothing
// changed: the recorder is inactive or position is already the end.
func (r *Recorder) Update(position int) bool {
	if !r.Active() || position == NoPosition || position == r.end {
		return false
	}
	r.end = position
	newStart := min(r.anchor, r.end)
	newEnd := max(r.anchor, r.end)

	if newStart > r.lastStart {
		for i := r.lastStart; i <= newStart-1; i++ {
			r.queue(i, false)
		}
	} else if newStart < r.lastStart {
		for i := newStart; i <= r.lastStart-1; i++ {
			r.queue(i, true)
		}
	}

	if newEnd > r.lastEnd {
		for i := r.lastEnd + 1; i <= newEnd; i++ {
			r.queue(i, true)
		}
	} else if newEnd < r.lastEnd {
		for i := newEnd + 1; i <= r.lastEnd; i++ {
			r.queue(i, false)
		}
	}

	r.lastStart = newStart
	r.lastEnd = newEnd
	return true
}

// DrainSelected returns the positions that entered the range since the
// last drain, in crossing order, and clears them.
func (r *Recorder) DrainSelected() []int {
	if !r.Active() {
		return nil
	}
	return r.toSelect.drain()
}

// DrainUnselected returns the positions that left the range since the last
// drain, in crossing order, and clears them.
func (r *Recorder) DrainUnselected() []int {
	if !r.Active() {
		return nil
	}
	return r.toUnselect.drain()
}

// Clear drops the range and any pending changes.
func (r *Recorder) Clear() {
	r.anchor = NoPosition
	r.end = NoPosition
	r.lastStart = NoPosition
	r.lastEnd = NoPosition
	r.toSelect.reset()
	r.toUnselect.reset()
}

func (r *Recorder) queue(position int, selected bool) {
	add, opposite := &r.toSelect, &r.toUnselect
	if !selected {
		add, opposite = opposite, add
	}
	if opposite.remove(position) {
		return
	}
	add.push(position)
}

// indexQueue is an insertion-ordered set of positions.
type indexQueue struct {
	order []int
	seen  map[int]struct{}
}

func (q *indexQueue) push(position int) {
	if q.seen == nil {
		q.seen = make(map[int]struct{})
	}
	if _, ok := q.seen[position]; ok {
		return
	}
	q.seen[position] = struct{}{}
	q.order = append(q.order, position)
}

func (q *indexQueue) remove(position int) bool {
	if _, ok := q.seen[position]; !ok {
		return false
	}
	delete(q.seen, position)
	for i, p := range q.order {
		if p == position {
			q.order = append(q.order[:i], q.order[i+1:]...)
			break
		}
	}
	return true
}

func (q *indexQueue) drain() []int {
	if len(q.order) == 0 {
		return nil
	}
	out := q.order
	q.order = nil
	q.seen = nil
	return out
}

func (q *indexQueue) reset() {
	q.order = nil
	q.seen = nil
}
