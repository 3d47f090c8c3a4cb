package curve3

import (
	"math"
)

// Circle is a circle in the plane z = Center.Z.
type Circle struct {
	center Point
	radius float64
}

var _ Evaluator = Circle{}

// NewCircle returns a circle around center. The radius must be positive.
func NewCircle(center Point, radius float64) (Circle, error) {
	if err := checkPositive(CircleKind, "radius", radius); err != nil {
		return Circle{}, err
	}
	return Circle{center: center, radius: radius}, nil
}

func (c Circle) Center() Point   { return c.center }
func (c Circle) Radius() float64 { return c.radius }

// Curve wraps the circle in a [Curve].
func (c Circle) Curve() Curve {
	return Curve{kind: CircleKind, center: c.center, r0: c.radius}
}

// Eval implements Evaluator.
func (c Circle) Eval(t float64) (pos, tangent Point) {
	sin, cos := math.Sincos(t)
	r := c.radius
	pos = c.center.Add(Point{X: r * cos, Y: r * sin})
	tangent = Point{X: -r * sin, Y: r * cos}
	return pos, tangent
}

// Arclen implements Evaluator.
func (c Circle) Arclen(t0, t1 float64) float64 {
	return c.radius * math.Abs(t1-t0)
}

// BoundingBox implements Evaluator.
func (c Circle) BoundingBox(t0, t1 float64) Box {
	return planarBoundingBox(c, t0, t1)
}

func (c Circle) Translate(v Point) Circle {
	c.center = c.center.Add(v)
	return c
}

// Perimeter returns the circumference of the circle.
func (c Circle) Perimeter() float64 {
	return 2 * math.Pi * c.radius
}

func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

func (c Circle) IsInf() bool {
	return c.center.IsInf() || math.IsInf(c.radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.center.IsNaN() || math.IsNaN(c.radius)
}

// planarBoundingBox computes the bounding box of a curve of the form
// center + (a cos t, b sin t, g(t)) with monotonic g. The extremes are found at
// the end points and at the multiples of π/2 inside the interval.
func planarBoundingBox(e Evaluator, t0, t1 float64) Box {
	p0, _ := e.Eval(t0)
	p1, _ := e.Eval(t1)
	bbox := NewBoxFromPoints(p0, p1)
	for _, t := range angleExtrema(t0, t1) {
		pt, _ := e.Eval(t)
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}
