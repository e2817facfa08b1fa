package geometry

import (
	"fmt"
)

// Point is an integer coordinate in 2 or 3 dimensions. Axes returns the
// coordinate values in fixed axis order (x,y[,z]); Key formats a stable,
// hashable string identity used as the map key throughout lattice and
// conformation.
type Point interface {
	Axes() []int
	Key() string
}

// Dimensionality describes the bounds of a lattice: Len is 2 or 3, At(i)
// is the size along axis i.
type Dimensionality interface {
	Len() int
	At(i int) int
}

// Coord2 is a point in the 2D lattice.
type Coord2 struct {
	X, Y int
}

// Axes returns {X,Y}.
func (c Coord2) Axes() []int { return []int{c.X, c.Y} }

// Key formats "x,y", matching the teacher's gridgraph vertex-id convention.
func (c Coord2) Key() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// Coord3 is a point in the 3D lattice.
type Coord3 struct {
	X, Y, Z int
}

// Axes returns {X,Y,Z}.
func (c Coord3) Axes() []int { return []int{c.X, c.Y, c.Z} }

// Key formats "x,y,z".
func (c Coord3) Key() string { return fmt.Sprintf("%d,%d,%d", c.X, c.Y, c.Z) }

// Dims2 bounds a 2D lattice: [0,X) x [0,Y).
type Dims2 struct {
	X, Y int
}

// Len is always 2.
func (d Dims2) Len() int { return 2 }

// At returns the bound along axis i (0=X, 1=Y).
func (d Dims2) At(i int) int {
	if i == 0 {
		return d.X
	}
	return d.Y
}

// Dims3 bounds a 3D lattice: [0,X) x [0,Y) x [0,Z).
type Dims3 struct {
	X, Y, Z int
}

// Len is always 3.
func (d Dims3) Len() int { return 3 }

// At returns the bound along axis i (0=X, 1=Y, 2=Z).
func (d Dims3) At(i int) int {
	switch i {
	case 0:
		return d.X
	case 1:
		return d.Y
	default:
		return d.Z
	}
}
