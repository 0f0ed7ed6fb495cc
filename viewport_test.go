package devon_test

import (
	"math/rand/v2"
	"testing"

	"github.com/elbaro/devon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// itemsOfHeights returns items with the given number of rows each.
func itemsOfHeights(heights ...int) []devon.Item {
	items := make([]devon.Item, len(heights))
	for i, h := range heights {
		lines := make([][]byte, h)
		for j := range lines {
			lines[j] = []byte{}
		}
		items[i] = devon.Item{Lines: lines}
	}
	return items
}

func TestViewport_Navigation(t *testing.T) {
	t.Parallel()

	store := devon.NewStore(itemsOfHeights(4, 4, 4))
	v := devon.NewViewport(store, 80, 6)

	require.True(t, v.MoveDown())
	assert.Equal(t, 1, v.Selected)
	assert.Equal(t, 0, v.FirstItem)
	assert.Equal(t, 2, v.FirstSubline)

	require.True(t, v.MoveDown())
	assert.Equal(t, 2, v.Selected)
	assert.Equal(t, 1, v.FirstItem)
	assert.Equal(t, 2, v.FirstSubline)
	assert.Equal(t, 6, v.FirstOffset())

	// Back up one: the selected item starts above the viewport.
	require.True(t, v.MoveUp())
	assert.Equal(t, 1, v.Selected)
	assert.Equal(t, 1, v.FirstItem)
	assert.Equal(t, 0, v.FirstSubline)
}

func TestViewport_BoundaryMovesAreNoOps(t *testing.T) {
	t.Parallel()

	t.Run("empty store", func(t *testing.T) {
		t.Parallel()

		v := devon.NewViewport(devon.NewStore(), 80, 24)
		assert.False(t, v.MoveDown())
		assert.False(t, v.MoveUp())
		assert.Equal(t, 0, v.Selected)
		assert.Equal(t, 0, v.FirstOffset())
	})

	t.Run("up at first item", func(t *testing.T) {
		t.Parallel()

		v := devon.NewViewport(devon.NewStore(itemsOfHeights(2, 2)), 80, 24)
		assert.False(t, v.MoveUp())
		assert.Equal(t, 0, v.Selected)
	})

	t.Run("down at last item", func(t *testing.T) {
		t.Parallel()

		v := devon.NewViewport(devon.NewStore(itemsOfHeights(2, 2)), 80, 24)
		require.True(t, v.MoveDown())
		assert.False(t, v.MoveDown())
		assert.Equal(t, 1, v.Selected)
	})
}

func TestViewport_NoScrollWhenSelectionFits(t *testing.T) {
	t.Parallel()

	v := devon.NewViewport(devon.NewStore(itemsOfHeights(3, 3, 3)), 80, 24)
	require.True(t, v.MoveDown())
	require.True(t, v.MoveDown())

	assert.Equal(t, 0, v.FirstItem)
	assert.Equal(t, 0, v.FirstSubline)
}

func TestViewport_TallItemShownFromTop(t *testing.T) {
	t.Parallel()

	v := devon.NewViewport(devon.NewStore(itemsOfHeights(2, 10)), 80, 4)
	require.True(t, v.MoveDown())

	assert.Equal(t, 1, v.Selected)
	assert.Equal(t, 1, v.FirstItem)
	assert.Equal(t, 0, v.FirstSubline)
}

func TestViewport_ResizeKeepsScroll(t *testing.T) {
	t.Parallel()

	v := devon.NewViewport(devon.NewStore(itemsOfHeights(4, 4, 4)), 80, 6)
	require.True(t, v.MoveDown())

	v.Resize(100, 40)

	assert.Equal(t, 100, v.Width)
	assert.Equal(t, 40, v.Height)
	assert.Equal(t, 1, v.Selected)
	assert.Equal(t, 2, v.FirstSubline)
}

// checkInvariants asserts the selection and scroll invariants.
func checkInvariants(t *testing.T, v devon.Viewport, store *devon.Store) {
	t.Helper()

	require.GreaterOrEqual(t, v.Selected, 0)
	require.Less(t, v.Selected, store.Len())

	// Selection is never above the viewport.
	require.LessOrEqual(t, v.FirstItem, v.Selected)
	if v.FirstItem == v.Selected {
		require.Equal(t, 0, v.FirstSubline)
	}

	// The last row of the selection is on screen.
	last := store.LineOffset(v.Selected, store.Lines(v.Selected)-1)
	require.LessOrEqual(t, last, v.FirstOffset()+v.Height-1)
}

func TestViewport_InvariantsHoldForRandomWalks(t *testing.T) {
	t.Parallel()

	for seed := uint64(1); seed <= 200; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*7919))

		height := 1 + rng.IntN(12)
		heights := make([]int, 1+rng.IntN(15))
		for i := range heights {
			heights[i] = 1 + rng.IntN(height)
		}
		store := devon.NewStore(itemsOfHeights(heights...))
		v := devon.NewViewport(store, 80, height)
		checkInvariants(t, v, store)

		for step := 0; step < 100; step++ {
			if rng.IntN(3) == 0 {
				v.MoveUp()
			} else {
				v.MoveDown()
			}
			checkInvariants(t, v, store)
		}
	}
}

func TestViewport_DownThenUpRestoresSelection(t *testing.T) {
	t.Parallel()

	for seed := uint64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewPCG(seed, 42))

		heights := make([]int, 2+rng.IntN(10))
		for i := range heights {
			heights[i] = 1 + rng.IntN(5)
		}
		store := devon.NewStore(itemsOfHeights(heights...))
		v := devon.NewViewport(store, 80, 5)
		for range rng.IntN(len(heights) - 1) {
			v.MoveDown()
		}

		before := v.Selected
		require.True(t, v.MoveDown())
		require.True(t, v.MoveUp())
		assert.Equal(t, before, v.Selected)
	}
}
