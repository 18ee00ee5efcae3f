package multipass

import (
	"fmt"

	"github.com/katalvlaran/warppath/dtw"
)

// Align runs windowed DTW repeatedly, one pass per entry of windows,
// typically ordered coarse to fine. The first pass places its band along
// the diagonal; every later pass re-centers each column's band on the
// previous pass's alignment (the midpoint of the source index's matched
// destination range), so a narrow final window can follow a path far off
// the diagonal. Returns the last pass's result.
//
// The core stays single-pass and stateless; this loop only projects each
// result into the next call's center indexes.
func Align[T, U any](seq1 []T, seq2 []U, cost dtw.CostFunc[T, U], windows []int, opts ...Option) (dtw.Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(windows) == 0 {
		return dtw.Result{}, ErrNoPasses
	}

	var res dtw.Result
	var centers []int
	for pass, window := range windows {
		if tooNarrow(window, len(seq1), len(seq2)) {
			o.OnNarrowWindow(pass, window)
		}

		passOpts := []dtw.Option{
			dtw.WithContext(o.Ctx),
			dtw.WithOnDegenerate(o.OnDegenerate),
		}
		if centers != nil {
			passOpts = append(passOpts, dtw.WithCenterIndexes(centers))
		}

		var err error
		res, err = dtw.Align(seq1, seq2, cost, window, passOpts...)
		if err != nil {
			return dtw.Result{}, fmt.Errorf("multipass: pass %d (window %d): %w", pass, window, err)
		}
		if len(res.Path) == 0 {
			// empty input; nothing to refine
			return res, nil
		}
		centers = centersFromPath(res.Path)
	}

	return res, nil
}

// centersFromPath projects a pass result into per-column window centers
// for the next pass: the midpoint of each source index's matched range.
func centersFromPath(path []dtw.PathEntry) []int {
	compacted := dtw.CompactPath(path)
	centers := make([]int, len(compacted))
	for i, r := range compacted {
		centers[i] = (r.First + r.Last) / 2
	}

	return centers
}

// tooNarrow reports whether a window looks suspiciously small for the
// sequences at hand: a band covering less than a tenth of the longer
// sequence rarely contains the true path. Heuristic only; the pass still
// runs and the core reports actual band failures per cell.
func tooNarrow(window, n, m int) bool {
	longer := n
	if m > longer {
		longer = m
	}

	return window*10 < longer
}
