// Package multipass refines windowed DTW alignments coarse-to-fine:
// a wide first pass finds the rough shape of the path, then each
// narrower pass re-centers its band on the previous result.
//
// 🚀 Why multiple passes?
//
//	The core aligner (warppath/dtw) places its band along the diagonal,
//	which is fixed and data-independent within a single call. Alignments
//	that drift far from the diagonal — long leading silence, heavy local
//	stretching — need either a wide window (expensive) or a re-centered
//	narrow one. Running a cheap coarse pass first and projecting its path
//	into the next pass's center indexes gets the accuracy of a wide
//	window at the cost of a narrow one.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/warppath/multipass"
//
//	// one coarse pass at window 600, refined at 120, polished at 30
//	res, err := multipass.Align(frames1, frames2, cost, []int{600, 120, 30})
//
// Diagnostics:
//   - WithOnNarrowWindow warns before passes whose window looks too small
//     relative to the sequence lengths (heuristic, pass still runs).
//   - WithOnDegenerate is forwarded to every core call.
//
// Complexity: sum over passes of O(N·W) time and memory; each pass owns
// and discards its own matrix.
package multipass
