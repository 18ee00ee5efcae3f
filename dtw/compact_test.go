package dtw_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/warppath/dtw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompactPath_Empty verifies that an empty path compacts to nothing.
func TestCompactPath_Empty(t *testing.T) {
	assert.Empty(t, dtw.CompactPath(nil))
	assert.Empty(t, dtw.CompactPath([]dtw.PathEntry{}))
}

// TestCompactPath_Ranges verifies the range collapse on a hand-built path:
// repeated sources fold into a single {First, Last} entry.
func TestCompactPath_Ranges(t *testing.T) {
	raw := []dtw.PathEntry{
		{Source: 0, Dest: 0},
		{Source: 0, Dest: 1},
		{Source: 1, Dest: 2},
		{Source: 2, Dest: 3},
		{Source: 2, Dest: 4},
	}

	assert.Equal(t, []dtw.CompactedEntry{
		{First: 0, Last: 1},
		{First: 2, Last: 2},
		{First: 3, Last: 4},
	}, dtw.CompactPath(raw))
}

// TestCompactPath_FromAlign compacts a path produced by Align and checks
// the contract: one entry per source index, First ≤ Last, and both bounds
// present in the raw path under that source.
func TestCompactPath_FromAlign(t *testing.T) {
	a := []float64{0, 1, 2, 3, 4}
	b := []float64{0, 0, 1, 2, 3, 4, 4}
	cost := func(x, y float64) float64 { return math.Abs(x - y) }

	res, err := dtw.Align(a, b, cost, 4)
	require.NoError(t, err)

	compacted := dtw.CompactPath(res.Path)
	require.Len(t, compacted, len(a), "one compacted entry per source index")

	destsBySource := make(map[int]map[int]bool)
	for _, entry := range res.Path {
		if destsBySource[entry.Source] == nil {
			destsBySource[entry.Source] = make(map[int]bool)
		}
		destsBySource[entry.Source][entry.Dest] = true
	}
	for i, entry := range compacted {
		assert.LessOrEqual(t, entry.First, entry.Last, "source %d: First must not exceed Last", i)
		assert.True(t, destsBySource[i][entry.First], "source %d: First appears in the raw path", i)
		assert.True(t, destsBySource[i][entry.Last], "source %d: Last appears in the raw path", i)
	}
	for i := 1; i < len(compacted); i++ {
		assert.GreaterOrEqual(t, compacted[i].First, compacted[i-1].First, "ranges are non-decreasing")
		assert.GreaterOrEqual(t, compacted[i].Last, compacted[i-1].Last, "ranges are non-decreasing")
	}
}
