// Package dist provides ready-made pairwise distance functions for use
// as alignment cost functions: Euclidean, squared Euclidean, Manhattan
// and cosine distance over feature vectors, plus a scalar absolute
// difference.
//
// All functions are pure, total and O(len(vector)), matching the cost
// contract of warppath/dtw: they run in the aligner's innermost loop, so
// prefer SquaredEuclidean over Euclidean when only the ordering of costs
// matters.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/warppath/dist"
//	  "github.com/katalvlaran/warppath/dtw"
//	)
//
//	// mfcc1, mfcc2 are [][]float64 frame sequences
//	res, err := dtw.Align(mfcc1, mfcc2, dist.Euclidean, 120)
package dist
