package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClampsSize(t *testing.T) {
	assert.Equal(t, DefaultSize, New(0).Cap())
	assert.Equal(t, DefaultSize, New(-5).Cap())
	assert.Equal(t, 7, New(7).Cap())
}

func TestEmptySnapshot(t *testing.T) {
	b := New(3)
	assert.Nil(t, b.Snapshot())
	assert.Equal(t, 0, b.Len())
}

func TestPushBelowCapacity(t *testing.T) {
	b := New(5)
	b.Push(10)
	b.Push(20)

	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []float64{10, 20}, b.Snapshot())
}

func TestEvictionKeepsMostRecent(t *testing.T) {
	b := New(3)
	for _, v := range []float64{10, 20, 30, 40} {
		b.Push(v)
	}

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []float64{20, 30, 40}, b.Snapshot())
}

func TestLengthNeverExceedsCapacity(t *testing.T) {
	b := New(4)
	for i := 0; i < 100; i++ {
		b.Push(float64(i))
		require.LessOrEqual(t, b.Len(), 4)
	}

	// The last 4 pushes, oldest first.
	assert.Equal(t, []float64{96, 97, 98, 99}, b.Snapshot())
}

func TestSnapshotIsACopy(t *testing.T) {
	b := New(3)
	b.Push(1)
	b.Push(2)

	snap := b.Snapshot()
	snap[0] = 99
	b.Push(3)

	assert.Equal(t, []float64{1, 2, 3}, b.Snapshot())
}

func TestAcceptsOutOfRangeValues(t *testing.T) {
	// The buffer does not validate; scaling clamps at render time.
	b := New(2)
	b.Push(-10)
	b.Push(250)
	assert.Equal(t, []float64{-10, 250}, b.Snapshot())
}
