// Package warppath aligns time-ordered feature sequences — audio frames,
// embeddings, recognizer attention weights — using windowed Dynamic Time
// Warping within a bounded memory and time budget.
//
// 🚀 What is warppath?
//
//	A small, deterministic alignment toolkit that brings together:
//		• dtw/       — banded (windowed) DTW over generic sequences, with
//		               path backtracking and path compaction
//		• multipass/ — coarse-to-fine refinement: repeated alignment at
//		               shrinking window sizes, re-centered between passes
//		• dist/      — ready-made cost functions (Euclidean, cosine, …)
//
// ✨ Why choose warppath?
//
//   - Bounded resources – O(N·W) time and memory via a sliding band
//     instead of the full O(N·M) matrix
//   - Generic – align []T against []U under any pairwise cost function
//   - Deterministic – fixed tie-break order; identical inputs yield an
//     identical path
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – diagnostic hooks (OnDegenerate, OnNarrowWindow) for
//     custom logging and telemetry
//
// Typical uses: align two recordings of the same utterance frame by
// frame, map word timestamps from a synthesized reference onto real
// audio, or re-align recognizer output against acoustic features.
//
// Quick start:
//
//	cost := func(a, b float64) float64 { return math.Abs(a - b) }
//	res, err := dtw.Align(frames1, frames2, cost, 120)
//	if err != nil {
//		// handle dtw.ErrWindowTooSmall / dtw.ErrOptionViolation
//	}
//	ranges := dtw.CompactPath(res.Path) // one dest range per source frame
package warppath
