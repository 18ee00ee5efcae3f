package dtw

import (
	"fmt"
	"math"
)

// Windowed DTW — band-limited Dynamic Time Warping
//
// Description:
//
//	Align finds a monotonic correspondence path between two time-ordered
//	sequences under a pairwise cost function, considering for each
//	first-sequence index only a window of windowMaxLength candidate
//	second-sequence indexes. The window follows the diagonal
//	proportionally to progress through the first sequence (or caller
//	supplied centers), so memory and time are O(N·W) rather than O(N·M).
//
// Algorithm Outline:
//  1. Let N = len(seq1), M = len(seq2), W = windowMaxLength,
//     bandHeight = min(W, M). Allocate one band of bandHeight cells per
//     column, plus a parallel windowStarts array.
//  2. For column c: windowCenter = floor(c/N·M) (or CenterIndexes[c]),
//     windowStart = clamp(windowCenter − W/2, 0, M − bandHeight).
//  3. Cell (c, r) covers the absolute pair (c, windowStart(c)+r) and
//     accumulates cost(c, r) + min(up, left, up-and-left), where the
//     predecessor cells of the previous column are re-indexed through
//     delta = windowStart(c) − windowStart(c−1). Moves that leave the
//     band cost +Inf. Column 0 admits only the up move.
//  4. Backtrack from cell (N−1, bandHeight−1) to (0, 0), at each step
//     taking the cheapest predecessor move, then reverse the collected
//     entries into forward order.
//
// The optimum is exact within the band only. When the true path leaves
// the band the result is an approximation; multi-pass callers compensate
// by re-centering a narrower window on a previous, coarser alignment.
//
// Complexity:
//
//	Time   = O(N·W) cost evaluations
//	Memory = O(N·W)

// Predecessor moves, in tie-break order. On exact cost ties the earliest
// move wins; equal-cost paths therefore resolve identically across runs.
const (
	moveUp     = iota // insertion: advance in seq2 only
	moveLeft          // deletion: advance in seq1 only
	moveUpLeft        // match: advance in both
)

var inf = math.Inf(1)

// Align computes a windowed DTW alignment of seq1 against seq2.
// Returns the raw alignment path and its accumulated cost.
//
// Either sequence being empty yields an empty Result and no error.
// windowMaxLength below 2 returns ErrWindowTooSmall; a bad option
// returns ErrOptionViolation.
//
// Example:
//
//	cost := func(a, b float64) float64 { return math.Abs(a - b) }
//	res, err := dtw.Align(seqA, seqB, cost, 100)
func Align[T, U any](seq1 []T, seq2 []U, cost CostFunc[T, U], windowMaxLength int, opts ...Option) (Result, error) {
	// Build options and validate input before any allocation
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if windowMaxLength < 2 {
		return Result{}, ErrWindowTooSmall
	}
	if len(seq1) == 0 || len(seq2) == 0 {
		return Result{}, nil
	}
	if o.CenterIndexes != nil && len(o.CenterIndexes) != len(seq1) {
		return Result{}, fmt.Errorf("%w: %d center indexes for %d columns",
			ErrOptionViolation, len(o.CenterIndexes), len(seq1))
	}

	m, err := buildCostMatrix(seq1, seq2, cost, windowMaxLength, &o)
	if err != nil {
		return Result{}, err
	}
	path, degenerate := backtrack(m, &o)

	return Result{
		Path:            path,
		PathCost:        m.at(m.columns-1, m.bandHeight-1),
		DegenerateSteps: degenerate,
	}, nil
}

// bandedMatrix is the accumulated-cost matrix restricted to a sliding
// window: one fixed-height band per first-sequence index, stored
// column-major in a single flat buffer, plus the absolute second-sequence
// index of each band's first row.
type bandedMatrix struct {
	cells        []float64 // cells[c*bandHeight+r], len columns*bandHeight
	windowStarts []int     // absolute seq2 index of row 0, per column
	columns      int
	bandHeight   int
}

func (m *bandedMatrix) at(c, r int) float64 { return m.cells[c*m.bandHeight+r] }

func (m *bandedMatrix) set(c, r int, v float64) { m.cells[c*m.bandHeight+r] = v }

// delta is the band shift between column c and its predecessor: row r of
// column c covers the same absolute seq2 index as row r+delta of column c−1.
func (m *bandedMatrix) delta(c int) int {
	if c == 0 {
		return 0
	}
	return m.windowStarts[c] - m.windowStarts[c-1]
}

// predecessors returns the accumulated costs of the three cells that may
// precede (c, r): up (insertion), left (deletion) and up-and-left (match).
// A move that leaves the band, or the matrix, costs +Inf.
func (m *bandedMatrix) predecessors(c, r int) (up, left, upLeft float64) {
	up, left, upLeft = inf, inf, inf
	if r > 0 {
		up = m.at(c, r-1)
	}
	if c > 0 {
		d := m.delta(c)
		if pr := r + d; pr >= 0 && pr < m.bandHeight {
			left = m.at(c-1, pr)
		}
		if pr := r + d - 1; pr >= 0 && pr < m.bandHeight {
			upLeft = m.at(c-1, pr)
		}
	}

	return up, left, upLeft
}

// buildCostMatrix fills the banded accumulated-cost matrix column by
// column, placing each column's window per the diagonal (or the supplied
// center indexes) and applying the three-move recurrence.
func buildCostMatrix[T, U any](seq1 []T, seq2 []U, cost CostFunc[T, U], windowMaxLength int, o *AlignOptions) (*bandedMatrix, error) {
	n, rows := len(seq1), len(seq2)
	bandHeight := windowMaxLength
	if rows < bandHeight {
		bandHeight = rows
	}
	m := &bandedMatrix{
		cells:        make([]float64, n*bandHeight),
		windowStarts: make([]int, n),
		columns:      n,
		bandHeight:   bandHeight,
	}

	halfWindow := windowMaxLength / 2
	for c := 0; c < n; c++ {
		// cancellation check (once per column)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		center := c * rows / n
		if o.CenterIndexes != nil {
			center = o.CenterIndexes[c]
		}
		m.windowStarts[c] = clamp(center-halfWindow, 0, rows-bandHeight)

		for r := 0; r < bandHeight; r++ {
			up, left, upLeft := m.predecessors(c, r)
			best := min3(up, left, upLeft)
			if c == 0 && r == 0 {
				best = 0 // origin cell carries its own cost only
			}
			m.set(c, r, cost(seq1[c], seq2[m.windowStarts[c]+r])+best)
		}
	}

	return m, nil
}

// backtrack walks the matrix from its terminal cell back to (0, 0),
// choosing at each step the cheapest of the three predecessor moves, and
// returns the forward-ordered raw path plus the count of degenerate
// (all-+Inf) steps encountered.
func backtrack(m *bandedMatrix, o *AlignOptions) ([]PathEntry, int) {
	c, r := m.columns-1, m.bandHeight-1
	path := make([]PathEntry, 0, m.columns+m.bandHeight)
	degenerate := 0

	for c != 0 || r != 0 {
		path = append(path, PathEntry{Source: c, Dest: m.windowStarts[c] + r})

		up, left, upLeft := m.predecessors(c, r)
		d := m.delta(c)
		if math.IsInf(up, 1) && math.IsInf(left, 1) && math.IsInf(upLeft, 1) {
			// The band was too narrow to admit any predecessor. Report
			// the cell and keep walking toward the origin so the path
			// still terminates: diagonally into the previous band with
			// the row clamped into range, or up when already at column 0.
			o.OnDegenerate(c, r)
			degenerate++
			if c > 0 {
				c, r = c-1, clamp(r+d-1, 0, m.bandHeight-1)
			} else {
				r--
			}
			continue
		}

		switch argMin3(up, left, upLeft) {
		case moveUp:
			r--
		case moveLeft:
			c, r = c-1, r+d
		default: // moveUpLeft
			c, r = c-1, r+d-1
		}
	}
	path = append(path, PathEntry{Source: 0, Dest: m.windowStarts[0]})

	// reverse path in-place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, degenerate
}

// clamp bounds v into [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// argMin3 returns the index (0, 1 or 2) of the smallest of three values,
// preferring the earliest on exact ties. The order is part of the
// alignment contract; changing it changes which of several equal-cost
// paths is returned.
func argMin3(a, b, c float64) int {
	idx, best := 0, a
	if b < best {
		idx, best = 1, b
	}
	if c < best {
		idx = 2
	}
	return idx
}
