// Package dtw aligns two time-ordered sequences with a windowed
// (band-limited) Dynamic Time Warping recurrence, returning the raw
// element-to-element path, its accumulated cost, and a per-source-index
// compaction of the path.
//
// 🚀 What is windowed DTW?
//
//	Classic DTW fills an N×M cost matrix. For long feature streams —
//	acoustic frames, embeddings, attention weights — that is too much
//	memory and time. This package restricts each first-sequence index to
//	a window of windowMaxLength second-sequence candidates that slides
//	along the diagonal, so cost is O(N·W) instead of O(N·M). It's widely
//	used in:
//	  • Audio-to-text and audio-to-audio alignment
//	  • Word- and phoneme-level timestamp synthesis
//	  • Cross-attention token alignment for transcription models
//
// ✨ Key features:
//   - generic over element types: align []T against []U under any CostFunc
//   - fixed diagonal window placement, or caller-supplied per-column
//     centers (WithCenterIndexes) for multi-pass refinement
//   - deterministic backtracking with a fixed tie-break order
//     (up → left → up-and-left, earliest minimum wins)
//   - CompactPath: the per-source destination ranges consumed by
//     timeline-mapping code
//   - degenerate-band diagnostics via WithOnDegenerate and
//     Result.DegenerateSteps
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/warppath/dtw"
//
//	cost := func(a, b []float64) float64 { return dist.Euclidean(a, b) }
//	res, err := dtw.Align(frames1, frames2, cost, 120)
//	if err != nil {
//	  // dtw.ErrWindowTooSmall or dtw.ErrOptionViolation
//	}
//	ranges := dtw.CompactPath(res.Path)
//
// The optimum is exact within the band only: with a window smaller than
// the true path's drift from the diagonal the result is an approximation.
// Choose windowMaxLength generously, or refine coarse-to-fine with the
// multipass package.
//
// Performance:
//
//   - Time:   O(N·W) cost-function evaluations
//   - Memory: O(N·W), freed when the call returns
package dtw
