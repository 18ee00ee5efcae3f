// Package dtw provides tunable options and error definitions
// for windowed sequence alignment.
package dtw

import (
	"context"
	"errors"
)

// Sentinel errors for alignment execution.
var (
	// ErrWindowTooSmall is returned when windowMaxLength is below 2.
	// A band of height 1 admits no insertion moves and cannot align
	// sequences of different lengths.
	ErrWindowTooSmall = errors.New("dtw: window max length must be at least 2")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dtw: invalid option supplied")
)

// CostFunc measures the distance between one element of each sequence.
// Lower values mean more similar elements. The function must be pure and
// total; it is evaluated up to len(seq1)×windowMaxLength times per call,
// so it should be cheap.
type CostFunc[T, U any] func(a T, b U) float64

// PathEntry is one step of a raw alignment path: element Source of the
// first sequence matched to element Dest of the second.
type PathEntry struct {
	Source int
	Dest   int
}

// CompactedEntry is the inclusive range [First, Last] of second-sequence
// indices matched to a single first-sequence index.
type CompactedEntry struct {
	First int
	Last  int
}

// Result holds the outcome of an alignment:
//   - Path: the raw alignment path, ordered by non-decreasing Source,
//     from {0, 0} to the terminal cell of the band.
//   - PathCost: the accumulated cost of the chosen path.
//   - DegenerateSteps: the number of backtracking steps at which every
//     predecessor was unreachable (+Inf). Non-zero means the window was
//     too narrow to contain the true path; the result is best-effort and
//     the caller should consider retrying with a larger window.
type Result struct {
	Path            []PathEntry
	PathCost        float64
	DegenerateSteps int
}

// Option configures alignment behavior via functional arguments.
// If an Option is invalid (e.g. a CenterIndexes slice of the wrong
// length), it is surfaced as ErrOptionViolation when Align is invoked.
type Option func(*AlignOptions)

// AlignOptions holds parameters and callbacks to customize alignment.
type AlignOptions struct {
	// Ctx allows cancellation and deadlines. Cancellation is checked
	// once per matrix column.
	Ctx context.Context

	// CenterIndexes, when non-nil, supplies a second-sequence window
	// center for every first-sequence index, overriding the default
	// diagonal-following placement. Its length must equal len(seq1);
	// out-of-range centers are clamped into the valid band range.
	// Used by multi-pass callers to re-center the band on a previous,
	// coarser alignment.
	CenterIndexes []int

	// OnDegenerate is called once for every backtracking step at which
	// all three predecessor cells are unreachable (+Inf), with the band
	// coordinates of the offending cell.
	OnDegenerate func(column, row int)
}

// DefaultOptions returns AlignOptions with sane defaults:
//   - context.Background()
//   - diagonal window placement (no CenterIndexes)
//   - no-op OnDegenerate hook.
func DefaultOptions() AlignOptions {
	return AlignOptions{
		Ctx:           context.Background(),
		CenterIndexes: nil,
		OnDegenerate:  func(int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *AlignOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCenterIndexes re-centers each column's window on the given
// second-sequence indexes instead of the diagonal. The slice length must
// equal the first sequence's length, which is validated by Align.
func WithCenterIndexes(centers []int) Option {
	return func(o *AlignOptions) {
		o.CenterIndexes = centers
	}
}

// WithOnDegenerate registers a diagnostic callback fired whenever
// backtracking finds no reachable predecessor. See Result.DegenerateSteps.
func WithOnDegenerate(fn func(column, row int)) Option {
	return func(o *AlignOptions) {
		if fn != nil {
			o.OnDegenerate = fn
		}
	}
}
