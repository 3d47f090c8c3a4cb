package curve3

import (
	"fmt"
	"math"
)

// Box is an axis-aligned box, the 3D counterpart of a rectangle.
type Box struct {
	X0, Y0, Z0 float64
	X1, Y1, Z1 float64
}

// NewBoxFromPoints returns a box with the extents of p0 and p1, ensuring that
// all of its dimensions are non-negative.
func NewBoxFromPoints(p0, p1 Point) Box {
	return Box{p0.X, p0.Y, p0.Z, p1.X, p1.Y, p1.Z}.Abs()
}

// NewBoxFromCenter returns a box centered around center that extends by the
// given half extents along each axis.
func NewBoxFromCenter(center Point, halfExtents Point) Box {
	return NewBoxFromPoints(center.Sub(halfExtents), center.Add(halfExtents))
}

func (b Box) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g]×[%g, %g]", b.X0, b.X1, b.Y0, b.Y1, b.Z0, b.Z1)
}

// Abs returns a new box with the same extents as b, but ensuring that width,
// height, and depth are non-negative.
func (b Box) Abs() Box {
	return Box{
		X0: min(b.X0, b.X1),
		Y0: min(b.Y0, b.Y1),
		Z0: min(b.Z0, b.Z1),
		X1: max(b.X0, b.X1),
		Y1: max(b.Y0, b.Y1),
		Z1: max(b.Z0, b.Z1),
	}
}

func (b Box) Min() Point { return Point{b.X0, b.Y0, b.Z0} }
func (b Box) Max() Point { return Point{b.X1, b.Y1, b.Z1} }

// Width returns the box's extent along x, defined as X1 − X0.
func (b Box) Width() float64 { return b.X1 - b.X0 }

// Height returns the box's extent along y, defined as Y1 − Y0.
func (b Box) Height() float64 { return b.Y1 - b.Y0 }

// Depth returns the box's extent along z, defined as Z1 − Z0.
func (b Box) Depth() float64 { return b.Z1 - b.Z0 }

func (b Box) Center() Point {
	return Point{
		X: 0.5 * (b.X0 + b.X1),
		Y: 0.5 * (b.Y0 + b.Y1),
		Z: 0.5 * (b.Z0 + b.Z1),
	}
}

// Contains reports whether pt lies inside the box. Unlike a half-open
// rectangle, all six faces count as inside, so that points sampled exactly on
// a curve's extremes are contained in its bounding box.
func (b Box) Contains(pt Point) bool {
	return pt.X >= b.X0 && pt.X <= b.X1 &&
		pt.Y >= b.Y0 && pt.Y <= b.Y1 &&
		pt.Z >= b.Z0 && pt.Z <= b.Z1
}

// Inflate returns a box that is larger by eps in every direction.
func (b Box) Inflate(eps float64) Box {
	return Box{
		X0: b.X0 - eps,
		Y0: b.Y0 - eps,
		Z0: b.Z0 - eps,
		X1: b.X1 + eps,
		Y1: b.Y1 + eps,
		Z1: b.Z1 + eps,
	}
}

// Union returns the smallest box enclosing b and o.
//
// Both boxes are expected to have non-negative dimensions.
func (b Box) Union(o Box) Box {
	return Box{
		X0: min(b.X0, o.X0),
		Y0: min(b.Y0, o.Y0),
		Z0: min(b.Z0, o.Z0),
		X1: max(b.X1, o.X1),
		Y1: max(b.Y1, o.Y1),
		Z1: max(b.Z1, o.Z1),
	}
}

// UnionPoint returns the smallest box enclosing b and pt.
func (b Box) UnionPoint(pt Point) Box {
	return Box{
		X0: min(b.X0, pt.X),
		Y0: min(b.Y0, pt.Y),
		Z0: min(b.Z0, pt.Z),
		X1: max(b.X1, pt.X),
		Y1: max(b.Y1, pt.Y),
		Z1: max(b.Z1, pt.Z),
	}
}

func (b Box) IsInf() bool {
	return b.Min().IsInf() || b.Max().IsInf()
}

func (b Box) IsNaN() bool {
	return b.Min().IsNaN() || b.Max().IsNaN()
}

// angleExtrema returns the angles in (t0, t1) at which cos or sin reach an
// extremum, i.e. the multiples of π/2 strictly inside the interval.
func angleExtrema(t0, t1 float64) []float64 {
	if t1 < t0 {
		t0, t1 = t1, t0
	}
	const quarter = math.Pi / 2
	var out []float64
	for k := math.Floor(t0/quarter) + 1; k*quarter < t1; k++ {
		out = append(out, k*quarter)
		if len(out) >= 4 {
			// Beyond a full turn every extremum has been seen.
			break
		}
	}
	return out
}
