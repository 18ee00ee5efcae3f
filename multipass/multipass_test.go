package multipass_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/warppath/dtw"
	"github.com/katalvlaran/warppath/multipass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func absCost(a, b float64) float64 { return math.Abs(a - b) }

// TestAlign_NoPasses verifies that an empty window list errors.
func TestAlign_NoPasses(t *testing.T) {
	_, err := multipass.Align([]float64{1}, []float64{1}, absCost, nil)
	assert.ErrorIs(t, err, multipass.ErrNoPasses)
}

// TestAlign_SinglePassMatchesCore verifies that one pass is exactly one
// core call with diagonal placement.
func TestAlign_SinglePassMatchesCore(t *testing.T) {
	a := []float64{0, 1, 2, 3, 4}
	b := []float64{0, 0, 1, 2, 3, 4, 4}

	want, err := dtw.Align(a, b, absCost, 4)
	require.NoError(t, err)

	got, err := multipass.Align(a, b, absCost, []int{4})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestAlign_RefinementBeatsColdNarrowPass verifies the point of the loop:
// with a shifted second sequence, a narrow window alone misses the match,
// but the same narrow window re-centered by a coarse pass recovers it.
func TestAlign_RefinementBeatsColdNarrowPass(t *testing.T) {
	a := []float64{5, 6, 7}
	b := []float64{0, 0, 5, 6, 7}

	cold, err := dtw.Align(a, b, absCost, 2)
	require.NoError(t, err)

	wide, err := dtw.Align(a, b, absCost, 4)
	require.NoError(t, err)

	refined, err := multipass.Align(a, b, absCost, []int{4, 2})
	require.NoError(t, err)

	assert.Less(t, refined.PathCost, cold.PathCost, "re-centering must beat the cold narrow pass")
	assert.GreaterOrEqual(t, refined.PathCost, wide.PathCost, "refinement cannot beat the window it refines")
}

// TestAlign_EmptyInput verifies that empty sequences short-circuit with an
// empty result and no error, regardless of the pass list.
func TestAlign_EmptyInput(t *testing.T) {
	res, err := multipass.Align([]float64{}, []float64{1, 2}, absCost, []int{8, 4})
	assert.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.Equal(t, 0.0, res.PathCost)
}

// TestAlign_NarrowWindowHook verifies the undersized-window warning fires
// with the pass index and window length.
func TestAlign_NarrowWindowHook(t *testing.T) {
	a := make([]float64, 3)
	b := make([]float64, 50)

	var warned [][2]int
	_, err := multipass.Align(a, b, absCost, []int{2},
		multipass.WithOnNarrowWindow(func(pass, window int) {
			warned = append(warned, [2]int{pass, window})
		}))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 2}}, warned, "window 2 against 50 frames must warn")
}

// TestAlign_BadWindowAnnotated verifies core errors surface with the pass
// context while remaining matchable via errors.Is.
func TestAlign_BadWindowAnnotated(t *testing.T) {
	_, err := multipass.Align([]float64{1, 2}, []float64{1, 2}, absCost, []int{4, 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, dtw.ErrWindowTooSmall)
	assert.Contains(t, err.Error(), "pass 1")
}

// TestAlign_ContextCancelled verifies the forwarded context stops the loop.
func TestAlign_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := multipass.Align([]float64{1, 2, 3}, []float64{1, 2, 3}, absCost, []int{3},
		multipass.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
