// Package dragselect turns long presses and slide gestures on a scrollable
// list into range selections, auto-scrolling the list when the pointer
// reaches its edges.
package dragselect

import (
	"math"
	"time"

	"github.com/cristianoliveira/dragselect/internal/autoscroll"
	"github.com/cristianoliveira/dragselect/internal/logging"
	"github.com/cristianoliveira/dragselect/internal/selection"
)

// Option configures a Helper.
type Option func(*Helper)

// WithLogger sets the logger used for state transitions and diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(h *Helper) {
		if l != nil {
			h.log = l
		}
	}
}

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(h *Helper) {
		h.cfg = cfg
	}
}

// WithClock replaces time.Now for auto-scroll timing.
func WithClock(now func() time.Time) Option {
	return func(h *Helper) {
		h.clock = now
	}
}

// session is the scratch state of one gesture, from the first selection
// hook to release.
type session struct {
	// started is the position passed to OnSelectStart.
	started int
	// pending is a slide-area press waiting for the first move.
	pending int
	touch   [2]float64
	touched bool
}

const (
	axisX = 0
	axisY = 1
)

// Helper is the drag-select state machine. It must be driven from a single
// goroutine: the one delivering the host's touch events and frames.
type Helper struct {
	callback selection.Callback
	cfg      Config
	log      logging.Logger
	clock    func() time.Time

	host        Host
	listener    *touchListener
	orientation Orientation
	state       State
	sess        *session
	recorder    *selection.Recorder
	scroller    *autoscroll.Scroller
	cancelFrame func()
}

// New creates a detached helper that reports selection changes to callback.
func New(callback selection.Callback, opts ...Option) *Helper {
	h := &Helper{
		callback:    callback,
		cfg:         NewConfig(),
		log:         logging.With("component", "dragselect"),
		orientation: Vertical,
		recorder:    selection.NewRecorder(),
	}
	for _, opt := range opts {
		opt(h)
	}
	var scrollOpts []autoscroll.Option
	if h.clock != nil {
		scrollOpts = append(scrollOpts, autoscroll.WithClock(h.clock))
	}
	h.scroller = autoscroll.NewScroller(h.onScrollStateChange, scrollOpts...)
	h.listener = &touchListener{h: h}
	return h
}

// Attach binds the helper to host, detaching it from the previous host
// first. Attach(nil) only detaches.
func (h *Helper) Attach(host Host) {
	if h.host == host {
		return
	}
	if h.host != nil {
		h.stopFrames()
		h.host.RemoveTouchListener(h.listener)
	}
	h.host = host
	if host != nil {
		host.AddTouchListener(h.listener)
	}
}

// Config returns the current configuration.
func (h *Helper) Config() Config {
	return h.cfg
}

// SetConfig replaces the configuration. It applies from the next event.
func (h *Helper) SetConfig(cfg Config) *Helper {
	h.cfg = cfg
	return h
}

func (h *Helper) SetEdgeType(t autoscroll.EdgeType) *Helper {
	h.cfg = h.cfg.WithEdgeType(t)
	return h
}

func (h *Helper) SetRelativeHotspotEdges(ratio float64) *Helper {
	h.cfg = h.cfg.WithRelativeHotspotEdges(ratio)
	return h
}

func (h *Helper) SetMaximumHotspotEdges(max float64) *Helper {
	h.cfg = h.cfg.WithMaximumHotspotEdges(max)
	return h
}

// SetRelativeVelocity sets the target speed as a fraction of the view
// extent per second.
func (h *Helper) SetRelativeVelocity(v float64) *Helper {
	h.cfg = h.cfg.WithRelativeVelocity(v)
	return h
}

// SetMinimumVelocity sets the minimum auto-scroll speed, per second.
func (h *Helper) SetMinimumVelocity(v float64) *Helper {
	h.cfg = h.cfg.WithMinimumVelocity(v)
	return h
}

// SetMaximumVelocity sets the maximum auto-scroll speed, per second.
func (h *Helper) SetMaximumVelocity(v float64) *Helper {
	h.cfg = h.cfg.WithMaximumVelocity(v)
	return h
}

func (h *Helper) SetAutoEnterSlideState(enabled bool) *Helper {
	h.cfg = h.cfg.WithAutoEnterSlide(enabled)
	return h
}

func (h *Helper) SetAllowDragInSlideState(enabled bool) *Helper {
	h.cfg = h.cfg.WithAllowDragInSlide(enabled)
	return h
}

func (h *Helper) SetSlideArea(start, end float64) *Helper {
	h.cfg = h.cfg.WithSlideArea(start, end)
	return h
}

// State returns the current interaction state.
func (h *Helper) State() State {
	return h.state
}

// IsSelectActivated reports whether any selection mode is active.
func (h *Helper) IsSelectActivated() bool {
	return h.state != StateNormal
}

// Orientation returns the scroll axis captured when selection was last
// activated.
func (h *Helper) Orientation() Orientation {
	return h.orientation
}

// ActiveSlideSelect enters the slide state.
func (h *Helper) ActiveSlideSelect() error {
	if err := h.prepare(); err != nil {
		return err
	}
	h.setState(StateSlide)
	return nil
}

// ActiveDragSelect starts a drag session anchored at position, normally in
// response to a long press. It reports false without an error when the
// callback refuses the anchor or the current state does not allow a drag.
func (h *Helper) ActiveDragSelect(position int) (bool, error) {
	if err := h.prepare(); err != nil {
		return false, err
	}
	switch h.state {
	case StateNormal:
		if !h.startSession(position) {
			return false, nil
		}
		h.setState(StateDragFromNormal)
	case StateSlide:
		if !h.cfg.AllowDragInSlide {
			h.log.Debug("drag ignored in slide state", "position", position)
			return false, nil
		}
		if !h.startSession(position) {
			return false, nil
		}
		h.setState(StateDragFromSlide)
	default:
		h.log.Warn("drag select requested during a drag", "state", h.state.String(), "position", position)
		return false, nil
	}
	return true, nil
}

// InactiveSelect ends any running session and returns to the normal state
// directly, without the release fallback of a drag.
func (h *Helper) InactiveSelect() {
	h.endSession()
	h.setState(StateNormal)
}

func (h *Helper) prepare() error {
	if h.host == nil {
		return ErrNotAttached
	}
	switch o := h.host.Orientation(); o {
	case Vertical, Horizontal:
		h.orientation = o
		return nil
	default:
		return ErrUnsupportedOrientation
	}
}

// startSession notifies the start hook and selects the anchor. A refused
// anchor closes the hooks again and drops the session.
func (h *Helper) startSession(position int) bool {
	s := h.ensureSession()
	h.notifyStart(s, position)
	if !h.selectFirst(position) {
		h.log.Debug("anchor refused", "position", position)
		h.finish()
		return false
	}
	s.pending = selection.NoPosition
	return true
}

func (h *Helper) ensureSession() *session {
	if h.sess == nil {
		h.sess = &session{started: selection.NoPosition, pending: selection.NoPosition}
	}
	return h.sess
}

func (h *Helper) notifyStart(s *session, position int) {
	if s.started != selection.NoPosition {
		return
	}
	s.started = position
	selection.NotifyStart(h.callback, position)
}

func (h *Helper) selectFirst(position int) bool {
	if !h.callback.OnSelectChange(position, true) {
		return false
	}
	h.recorder.SelectFirst(position)
	return true
}

// finish ends the session of a released drag. Drag states fall back to the
// state they came from.
func (h *Helper) finish() {
	h.endSession()

	switch h.state {
	case StateDragFromNormal:
		if h.cfg.AutoEnterSlide {
			h.setState(StateSlide)
		} else {
			h.setState(StateNormal)
		}
	case StateDragFromSlide:
		h.setState(StateSlide)
	}
}

// endSession closes the hooks of the current session, clears the range and
// stops scrolling.
func (h *Helper) endSession() {
	if s := h.sess; s != nil && s.started != selection.NoPosition {
		last := s.started
		if h.recorder.Active() {
			last = h.recorder.End()
		}
		selection.NotifyEnd(h.callback, last)
	}
	h.sess = nil
	h.recorder.Clear()
	h.scroller.SetVelocity(0)
	h.stopFrames()
}

func (h *Helper) setState(to State) {
	if h.state == to {
		return
	}
	h.log.Info("select state changed", "from", h.state.String(), "to", to.String())
	h.state = to
}

// interceptTouch decides whether the helper owns the rest of a gesture.
func (h *Helper) interceptTouch(e TouchEvent) bool {
	if h.host == nil || h.host.ItemCount() == 0 {
		return false
	}
	switch e.Action {
	case TouchDown:
		if h.state != StateSlide || !h.cfg.inSlideArea(h.crossAxis(e)) {
			return false
		}
		pos, ok := h.host.ItemAt(e.X, e.Y)
		if !ok {
			return false
		}
		s := h.ensureSession()
		s.pending = pos
		h.notifyStart(s, pos)
		return true
	case TouchMove:
		if !h.state.Dragging() {
			return false
		}
		// the claiming move is part of the drag
		if h.sess != nil && h.recorder.Active() {
			h.trackTouch(e)
		}
		return true
	case TouchUp, TouchCancel:
		intercept := h.state.Dragging()
		if h.sess != nil {
			h.finish()
		}
		return intercept
	}
	return false
}

func (h *Helper) handleTouch(e TouchEvent) {
	if !h.IsSelectActivated() {
		return
	}
	switch e.Action {
	case TouchMove:
		if s := h.sess; s != nil && s.pending != selection.NoPosition {
			anchor := s.pending
			s.pending = selection.NoPosition
			if !h.selectFirst(anchor) {
				h.log.Debug("anchor refused", "position", anchor)
				h.finish()
				return
			}
			h.setState(StateDragFromSlide)
		}
		if h.sess == nil || !h.recorder.Active() {
			return
		}
		h.trackTouch(e)
	case TouchUp, TouchCancel:
		h.finish()
	}
}

func (h *Helper) crossAxis(e TouchEvent) float64 {
	if h.orientation == Horizontal {
		return e.Y
	}
	return e.X
}

// trackTouch records the pointer, recomputes the scroll velocity and, when
// not auto-scrolling, re-resolves the range.
func (h *Helper) trackTouch(e TouchEvent) {
	s := h.sess
	s.touched = true
	b := h.host.Bounds()
	cfg := h.cfg
	if h.orientation == Horizontal {
		s.touch[axisY] = clampRange(e.Y, b.PaddingTop, b.Height-b.PaddingBottom)
		h.updateVelocity(cfg, axisX, e.X, b.Width)
	} else {
		s.touch[axisX] = clampRange(e.X, b.PaddingLeft, b.Width-b.PaddingRight)
		h.updateVelocity(cfg, axisY, e.Y, b.Height)
	}
	if !h.scroller.IsScrolling() {
		h.updateRange()
	}
}

func (h *Helper) updateVelocity(cfg Config, axis int, coordinate, size float64) {
	signal := autoscroll.Signal(cfg.hotspot(), coordinate, size, h.scroller.IsScrolling())
	switch signal {
	case -1:
		h.sess.touch[axis] = 0
	case 1:
		h.sess.touch[axis] = size
	default:
		h.sess.touch[axis] = coordinate
	}
	h.scroller.SetVelocity(autoscroll.VelocityFor(signal, cfg.speed(), size))
}

// updateRange resolves the item under the last touch point and reports the
// resulting range changes to the callback.
func (h *Helper) updateRange() {
	s := h.sess
	if h.host == nil || s == nil || !s.touched || !h.recorder.Active() {
		return
	}
	b := h.host.Bounds()
	x := clampContent(s.touch[axisX], b.PaddingLeft, b.Width-b.PaddingRight)
	y := clampContent(s.touch[axisY], b.PaddingTop, b.Height-b.PaddingBottom)
	pos, ok := h.host.ItemAt(x, y)
	if !ok || !h.recorder.Update(pos) {
		return
	}
	for _, i := range h.recorder.DrainSelected() {
		h.callback.OnSelectChange(i, true)
	}
	for _, i := range h.recorder.DrainUnselected() {
		h.callback.OnSelectChange(i, false)
	}
}

func (h *Helper) onScrollStateChange(scrolling bool) {
	if h.host == nil {
		h.log.Error("auto-scroll state changed without a host", "scrolling", scrolling)
		return
	}
	if scrolling {
		h.postFrame()
		return
	}
	h.stopFrames()
	h.updateRange()
}

func (h *Helper) postFrame() {
	if h.cancelFrame != nil {
		return
	}
	h.cancelFrame = h.host.PostFrame(h.onFrame)
}

func (h *Helper) stopFrames() {
	if h.cancelFrame != nil {
		h.cancelFrame()
		h.cancelFrame = nil
	}
}

// onFrame applies one auto-scroll step and schedules the next.
func (h *Helper) onFrame() {
	h.cancelFrame = nil
	if h.host == nil || !h.scroller.IsScrolling() {
		return
	}
	if delta := h.scroller.Tick(); delta != 0 {
		h.host.ScrollBy(delta, h.orientation)
	}
	h.updateRange()
	if h.scroller.IsScrolling() {
		h.postFrame()
	}
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampContent keeps v inside [lo, hi) so a point on the far edge still
// resolves to the last item.
func clampContent(v, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return clampRange(v, lo, math.Nextafter(hi, math.Inf(-1)))
}

// touchListener keeps the TouchListener methods off the Helper API.
type touchListener struct {
	h *Helper
}

var _ TouchListener = (*touchListener)(nil)

func (l *touchListener) InterceptTouch(e TouchEvent) bool {
	return l.h.interceptTouch(e)
}

func (l *touchListener) HandleTouch(e TouchEvent) {
	l.h.handleTouch(e)
}

func (l *touchListener) RequestDisallowIntercept(disallow bool) {
	if disallow {
		l.h.log.Debug("host revoked touch interception")
		l.h.InactiveSelect()
	}
}
