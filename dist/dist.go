package dist

import "math"

// Vectors of different lengths are treated as maximally distant: every
// function returns +Inf for them, which is safe under the aligner's
// min-based recurrence (an +Inf cell simply never wins).

// Euclidean returns the L2 distance between two equally sized vectors.
func Euclidean(a, b []float64) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// SquaredEuclidean returns the squared L2 distance, skipping the square
// root. Preferred in alignment cost functions: it preserves ordering and
// runs in the innermost loop.
func SquaredEuclidean(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return sum
}

// Manhattan returns the L1 distance between two equally sized vectors.
func Manhattan(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}

	return sum
}

// Cosine returns one minus the cosine similarity of two equally sized
// vectors, in [0, 2]: 0 for parallel, 1 for orthogonal, 2 for opposite.
// A zero-norm input has no direction and is treated as maximally
// dissimilar (distance 1).
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 1
	}

	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}

// Absolute returns |a-b|, the scalar counterpart for one-dimensional
// feature sequences (pitch tracks, energy contours).
func Absolute(a, b float64) float64 {
	return math.Abs(a - b)
}
