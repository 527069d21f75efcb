package tui

import (
	"testing"

	"github.com/cristianoliveira/dragselect/internal/dragselect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingListener struct {
	intercept func(dragselect.TouchEvent) bool
	handled   []dragselect.TouchAction
	revoked   int
}

func (l *recordingListener) InterceptTouch(e dragselect.TouchEvent) bool {
	return l.intercept != nil && l.intercept(e)
}

func (l *recordingListener) HandleTouch(e dragselect.TouchEvent) {
	l.handled = append(l.handled, e.Action)
}

func (l *recordingListener) RequestDisallowIntercept(disallow bool) {
	if disallow {
		l.revoked++
	}
}

func fixedCount(n int) func() int {
	return func() int { return n }
}

func TestListViewItemAtVertical(t *testing.T) {
	v := NewListView(fixedCount(30), dragselect.Vertical)
	v.SetSize(20, 10)

	pos, ok := v.ItemAt(3.5, 4.5)
	require.True(t, ok)
	assert.Equal(t, 4, pos)

	v.ScrollBy(5, dragselect.Vertical)
	pos, ok = v.ItemAt(3.5, 4.5)
	require.True(t, ok)
	assert.Equal(t, 9, pos)

	for _, p := range [][2]float64{{-0.5, 1}, {1, -0.5}, {20, 1}, {1, 10}} {
		_, ok := v.ItemAt(p[0], p[1])
		assert.False(t, ok, "%v", p)
	}
}

func TestListViewItemAtHorizontal(t *testing.T) {
	v := NewListView(fixedCount(30), dragselect.Horizontal)
	v.SetSize(40, 6)

	pos, ok := v.ItemAt(15.5, 2.5)
	require.True(t, ok)
	assert.Equal(t, 1, pos)

	v.ScrollBy(7, dragselect.Horizontal)
	pos, ok = v.ItemAt(6.5, 0.5)
	require.True(t, ok)
	assert.Equal(t, 0, pos)
	pos, _ = v.ItemAt(7.5, 0.5)
	assert.Equal(t, 1, pos)
}

func TestListViewScrollClamps(t *testing.T) {
	v := NewListView(fixedCount(12), dragselect.Vertical)
	v.SetSize(20, 10)

	v.ScrollBy(-3, dragselect.Vertical)
	assert.Zero(t, v.Offset())
	v.ScrollBy(100, dragselect.Vertical)
	assert.Equal(t, 2, v.Offset())
	v.ScrollBy(-1, dragselect.Horizontal)
	assert.Equal(t, 2, v.Offset(), "other axis is ignored")

	v.SetSize(20, 20)
	assert.Zero(t, v.Offset(), "content shorter than the view")
}

func TestListViewSetOrientationKeepsFirstItem(t *testing.T) {
	v := NewListView(fixedCount(100), dragselect.Vertical)
	v.SetSize(40, 10)
	v.ScrollBy(7, dragselect.Vertical)

	v.SetOrientation(dragselect.Horizontal)
	assert.Equal(t, 7*horizontalCellWidth, v.Offset())
	assert.Equal(t, 40, v.Extent())

	v.SetOrientation(dragselect.Vertical)
	assert.Equal(t, 7, v.Offset())
}

func TestListViewDispatch(t *testing.T) {
	v := NewListView(fixedCount(10), dragselect.Vertical)
	passive := &recordingListener{}
	grabber := &recordingListener{intercept: func(e dragselect.TouchEvent) bool {
		return e.Action == dragselect.TouchMove
	}}
	v.AddTouchListener(passive)
	v.AddTouchListener(grabber)

	assert.False(t, v.Dispatch(dragselect.TouchEvent{Action: dragselect.TouchDown}))
	assert.True(t, v.Dispatch(dragselect.TouchEvent{Action: dragselect.TouchMove}))
	assert.True(t, v.Captured())
	assert.True(t, v.Dispatch(dragselect.TouchEvent{Action: dragselect.TouchMove}))
	assert.True(t, v.Dispatch(dragselect.TouchEvent{Action: dragselect.TouchUp}))
	assert.False(t, v.Captured())

	assert.Empty(t, passive.handled)
	assert.Equal(t, []dragselect.TouchAction{dragselect.TouchMove, dragselect.TouchUp}, grabber.handled)

	v.RemoveTouchListener(grabber)
	assert.False(t, v.Dispatch(dragselect.TouchEvent{Action: dragselect.TouchMove}))
}

func TestListViewRevokeIntercept(t *testing.T) {
	v := NewListView(fixedCount(10), dragselect.Vertical)
	l := &recordingListener{intercept: func(dragselect.TouchEvent) bool { return true }}
	v.AddTouchListener(l)
	v.Dispatch(dragselect.TouchEvent{Action: dragselect.TouchDown})
	require.True(t, v.Captured())

	v.RevokeIntercept()

	assert.False(t, v.Captured())
	assert.Equal(t, 1, l.revoked)
}

func TestListViewFrames(t *testing.T) {
	v := NewListView(fixedCount(10), dragselect.Vertical)
	runs := 0

	cancel := v.PostFrame(func() { runs++ })
	v.PostFrame(func() { runs += 10 })
	assert.Len(t, v.FrameCmds(0), 2)
	assert.Empty(t, v.FrameCmds(0), "ticks are only emitted once")

	cancel()
	assert.False(t, v.RunFrame(0), "cancelled frame is dropped")
	assert.True(t, v.RunFrame(1))
	assert.False(t, v.RunFrame(1), "frames run once")
	assert.Equal(t, 10, runs)
}
