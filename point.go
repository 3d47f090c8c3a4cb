package curve3

import (
	"fmt"
	"math"
)

// Point is a triple of coordinates. It is used both for positions on a curve
// and for the tangent vectors returned by evaluation.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Pt returns the point (x, y, z).
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

func (pt Point) Splat() (float64, float64, float64) {
	return pt.X, pt.Y, pt.Z
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

// Add computes pt+o.
func (pt Point) Add(o Point) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
		Z: pt.Z + o.Z,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Point {
	return Point{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

// Mul scales each coordinate by f.
func (pt Point) Mul(f float64) Point {
	return Point{
		X: pt.X * f,
		Y: pt.Y * f,
		Z: pt.Z * f,
	}
}

// Dot returns the dot product of pt and o, treating both as vectors.
func (pt Point) Dot(o Point) float64 {
	return pt.X*o.X + pt.Y*o.Y + pt.Z*o.Z
}

// Cross returns the cross product of pt and o, treating both as vectors.
func (pt Point) Cross(o Point) Point {
	return Point{
		X: pt.Y*o.Z - pt.Z*o.Y,
		Y: pt.Z*o.X - pt.X*o.Z,
		Z: pt.X*o.Y - pt.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector from the origin to pt.
func (pt Point) Hypot() float64 {
	return math.Sqrt(pt.Hypot2())
}

// Hypot2 returns the squared magnitude of the vector from the origin to pt.
//
// This function is more efficient than squaring the result of [Point.Hypot].
func (pt Point) Hypot2() float64 {
	return pt.Dot(pt)
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return pt.Add(o.Sub(pt).Mul(t))
}

// IsInf reports whether at least one of x, y and z is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsInf(pt.Z, 0)
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}
