package metrics

import (
	"math"

	"github.com/archfold/hpremc/conformation"
)

// CompactnessIndex returns the radius of gyration of c's occupied
// coordinates: the root-mean-square Euclidean distance of every residue
// from the chain's centroid. A compact fold has a small radius relative to
// chain length; a stretched-out one has a large one. Grounded on
// tsp/cost.go's style of a single deterministic pass over coordinates
// producing one float (the teacher's matrix package, which this index was
// originally sketched against, was dropped — see DESIGN.md).
func CompactnessIndex(c *conformation.Conformation) float64 {
	coords := c.Coordinates()
	n := len(coords)
	if n == 0 {
		return 0
	}

	dims := coords[0].Axes()
	centroid := make([]float64, len(dims))
	for _, p := range coords {
		for i, v := range p.Axes() {
			centroid[i] += float64(v)
		}
	}
	for i := range centroid {
		centroid[i] /= float64(n)
	}

	var sumSq float64
	for _, p := range coords {
		for i, v := range p.Axes() {
			d := float64(v) - centroid[i]
			sumSq += d * d
		}
	}
	return math.Sqrt(sumSq / float64(n))
}

// ChainSpan returns the ℓ1 bounding-box diagonal of all occupied
// coordinates: the sum, over each axis, of (max-min). O(n), pure geometry.
func ChainSpan(c *conformation.Conformation) int {
	coords := c.Coordinates()
	if len(coords) == 0 {
		return 0
	}

	dims := coords[0].Axes()
	mins := make([]int, len(dims))
	maxs := make([]int, len(dims))
	copy(mins, dims)
	copy(maxs, dims)

	for _, p := range coords[1:] {
		for i, v := range p.Axes() {
			if v < mins[i] {
				mins[i] = v
			}
			if v > maxs[i] {
				maxs[i] = v
			}
		}
	}

	span := 0
	for i := range mins {
		span += maxs[i] - mins[i]
	}
	return span
}
