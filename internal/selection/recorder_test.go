package selection

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderStartsInactive(t *testing.T) {
	r := NewRecorder()

	assert.False(t, r.Active())
	assert.Equal(t, NoPosition, r.Anchor())
	assert.Equal(t, NoPosition, r.End())
	assert.False(t, r.Update(3))
	assert.Nil(t, r.DrainSelected())
	assert.Nil(t, r.DrainUnselected())
}

func TestRecorderSelectFirst(t *testing.T) {
	r := NewRecorder()

	r.SelectFirst(5)

	require.True(t, r.Active())
	assert.Equal(t, 5, r.Anchor())
	assert.Equal(t, 5, r.End())
	start, end := r.Range()
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)
}

func TestRecorderForwardThenBack(t *testing.T) {
	r := NewRecorder()
	r.SelectFirst(5)

	require.True(t, r.Update(8))
	assert.Equal(t, []int{6, 7, 8}, r.DrainSelected())
	assert.Nil(t, r.DrainUnselected())

	require.True(t, r.Update(6))
	assert.Nil(t, r.DrainSelected())
	assert.Equal(t, []int{7, 8}, r.DrainUnselected())
}

func TestRecorderCrossingAnchor(t *testing.T) {
	r := NewRecorder()
	r.SelectFirst(5)
	r.Update(8)
	r.DrainSelected()

	require.True(t, r.Update(3))

	assert.Equal(t, []int{3, 4}, r.DrainSelected())
	assert.Equal(t, []int{6, 7, 8}, r.DrainUnselected())
	start, end := r.Range()
	assert.Equal(t, 3, start)
	assert.Equal(t, 5, end)
	assert.Equal(t, 5, r.Anchor())
}

func TestRecorderSameEndIsNoop(t *testing.T) {
	r := NewRecorder()
	r.SelectFirst(5)
	r.Update(7)

	assert.False(t, r.Update(7))
	assert.Equal(t, []int{6, 7}, r.DrainSelected())

	assert.False(t, r.Update(7))
	assert.Nil(t, r.DrainSelected())
	assert.Nil(t, r.DrainUnselected())
}

func TestRecorderCoalescesUndrainedMoves(t *testing.T) {
	r := NewRecorder()
	r.SelectFirst(5)

	r.Update(8)
	r.Update(6)

	assert.Equal(t, []int{6}, r.DrainSelected())
	assert.Nil(t, r.DrainUnselected())
}

func TestRecorderCoalescesBackAndForth(t *testing.T) {
	r := NewRecorder()
	r.SelectFirst(5)
	r.Update(8)
	r.DrainSelected()

	r.Update(6)
	r.Update(9)

	assert.Equal(t, []int{9}, r.DrainSelected())
	assert.Nil(t, r.DrainUnselected())
}

func TestRecorderClear(t *testing.T) {
	r := NewRecorder()
	r.SelectFirst(2)
	r.Update(4)

	r.Clear()

	assert.False(t, r.Active())
	assert.Nil(t, r.DrainSelected())
	r.SelectFirst(10)
	assert.Nil(t, r.DrainSelected())
}

func TestRecorderDiffsMatchRangeOnRandomWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 20; round++ {
		anchor := rng.Intn(40)
		r := NewRecorder()
		r.SelectFirst(anchor)
		selected := map[int]bool{anchor: true}

		for step := 0; step < 30; step++ {
			r.Update(rng.Intn(40))
			if rng.Intn(3) == 0 {
				// let some moves coalesce before draining
				continue
			}
			added := r.DrainSelected()
			removed := r.DrainUnselected()
			for _, i := range added {
				assert.NotContains(t, removed, i)
				assert.False(t, selected[i], "item %d reported twice", i)
				selected[i] = true
			}
			for _, i := range removed {
				assert.True(t, selected[i], "item %d unselected while outside range", i)
				delete(selected, i)
			}

			start, end := r.Range()
			assert.Len(t, selected, end-start+1)
			for i := start; i <= end; i++ {
				assert.True(t, selected[i])
			}
			assert.Equal(t, anchor, r.Anchor())
		}
	}
}
