package geometry

// offsets2 enumerates the 4 unit steps in fixed order: -x,+x,-y,+y.
var offsets2 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// offsets3 enumerates the 6 unit steps in fixed order: -x,+x,-y,+y,-z,+z.
var offsets3 = [][3]int{{-1, 0, 0}, {1, 0, 0}, {0, -1, 0}, {0, 1, 0}, {0, 0, -1}, {0, 0, 1}}

// L1Distance returns the Manhattan distance between two points of equal
// dimensionality. Mismatched dimensionality (a 2D point against a 3D point)
// returns -1, since that comparison is never meaningful within one lattice.
func L1Distance(a, b Point) int {
	aa, ba := a.Axes(), b.Axes()
	if len(aa) != len(ba) {
		return -1
	}
	sum := 0
	for i := range aa {
		d := aa[i] - ba[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

// AreAdjacent reports whether a and b are lattice-adjacent: distinct points
// at ℓ1 distance exactly 1 (exactly one axis differs by exactly one).
// Symmetric and irreflexive by construction (P6).
func AreAdjacent(a, b Point) bool {
	if a.Key() == b.Key() {
		return false
	}
	return L1Distance(a, b) == 1
}

// InBounds reports whether p lies within [0,dims.At(i)) on every axis.
func InBounds(d Dimensionality, p Point) bool {
	axes := p.Axes()
	if len(axes) != d.Len() {
		return false
	}
	for i, v := range axes {
		if v < 0 || v >= d.At(i) {
			return false
		}
	}
	return true
}

// NeighborOffsets returns the up-to-2d in-bounds neighbours of p within d,
// in the fixed enumeration order (−x,+x,−y,+y[,−z,+z]). Mirrors
// gridgraph.neighborOffsets, generalized to 2 or 3 axes.
func NeighborOffsets(d Dimensionality, p Point) []Point {
	switch d.Len() {
	case 2:
		c, ok := p.(Coord2)
		if !ok {
			return nil
		}
		out := make([]Point, 0, 4)
		for _, off := range offsets2 {
			n := Coord2{X: c.X + off[0], Y: c.Y + off[1]}
			if InBounds(d, n) {
				out = append(out, n)
			}
		}
		return out
	case 3:
		c, ok := p.(Coord3)
		if !ok {
			return nil
		}
		out := make([]Point, 0, 6)
		for _, off := range offsets3 {
			n := Coord3{X: c.X + off[0], Y: c.Y + off[1], Z: c.Z + off[2]}
			if InBounds(d, n) {
				out = append(out, n)
			}
		}
		return out
	default:
		return nil
	}
}
