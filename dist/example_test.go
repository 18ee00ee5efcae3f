package dist_test

import (
	"fmt"

	"github.com/katalvlaran/warppath/dist"
	"github.com/katalvlaran/warppath/dtw"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEuclidean
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Feature-vector alignment: two short sequences of 2-dimensional
//	"frames" (think MFCC vectors), aligned under Euclidean cost.
func ExampleEuclidean() {
	frames1 := [][]float64{{0, 0}, {1, 0}, {1, 1}}
	frames2 := [][]float64{{0, 0}, {0, 0}, {1, 0}, {1, 1}}

	res, err := dtw.Align(frames1, frames2, dist.Euclidean, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("pathCost=%.0f\npath=%v\n", res.PathCost, res.Path)
	// Output:
	// pathCost=0
	// path=[{0 0} {0 1} {1 2} {2 3}]
}
