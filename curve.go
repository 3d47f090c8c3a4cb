package curve3

import (
	"fmt"
	"iter"
	"math"
)

// Evaluator describes curves parametrized by a scalar.
//
// The parameter is conventionally an angle in radians. Circles and ellipses
// are periodic with period 2π; helices are not.
type Evaluator interface {
	// Eval evaluates the curve at parameter t, returning the position and the
	// derivative of the position with respect to t.
	Eval(t float64) (pos, tangent Point)

	// Arclen returns the length of the curve between the parameters t0 and
	// t1. The order of t0 and t1 doesn't matter.
	Arclen(t0, t1 float64) float64

	// BoundingBox returns the smallest axis-aligned box that encloses the
	// curve between the parameters t0 and t1.
	BoundingBox(t0, t1 float64) Box
}

// Kind identifies the variant stored in a [Curve].
type Kind int

const (
	// A circle, see [Circle].
	CircleKind Kind = iota + 1
	// An ellipse, see [Ellipse].
	EllipseKind
	// A helix, see [Helix].
	HelixKind
)

// Kinds lists every valid kind, in declaration order.
var Kinds = [...]Kind{CircleKind, EllipseKind, HelixKind}

func (k Kind) String() string {
	switch k {
	case CircleKind:
		return "circle"
	case EllipseKind:
		return "ellipse"
	case HelixKind:
		return "helix"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind returns the kind whose String method returns s.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown curve kind %q", s)
}

// Curve is a circle, ellipse, or helix. This type acts as a tagged union of
// [Circle], [Ellipse], and [Helix], so that collections of mixed curves can be
// stored by value and inspected without type assertions.
//
// The zero value is not a valid curve. Curves are built with the Curve
// methods of the variants or with [NewCurve], and cannot be modified
// afterwards.
type Curve struct {
	kind   Kind
	center Point
	// r0 is the radius of circles and helices and the x radius of ellipses.
	r0 float64
	// r1 is the y radius of ellipses and the step of helices.
	r1 float64
}

var _ Evaluator = Curve{}

// NewCurve constructs a curve of the given kind. Circles use only r0,
// ellipses use r0 and r1 as their x and y radii, and helices use r0 as the
// radius and r1 as the step.
func NewCurve(kind Kind, center Point, r0, r1 float64) (Curve, error) {
	var e interface{ Curve() Curve }
	var err error
	switch kind {
	case CircleKind:
		e, err = NewCircle(center, r0)
	case EllipseKind:
		e, err = NewEllipse(center, r0, r1)
	case HelixKind:
		e, err = NewHelix(center, r0, r1)
	default:
		return Curve{}, fmt.Errorf("unknown curve kind %d", int(kind))
	}
	if err != nil {
		return Curve{}, err
	}
	return e.Curve(), nil
}

func (c Curve) Kind() Kind     { return c.kind }
func (c Curve) Center() Point  { return c.center }
func (c Curve) IsValid() bool  { return c.kind >= CircleKind && c.kind <= HelixKind }
func (c Curve) String() string { return fmt.Sprintf("%s%v", c.kind, c.params()) }

func (c Curve) params() []float64 {
	if c.kind == CircleKind {
		return []float64{c.r0}
	}
	return []float64{c.r0, c.r1}
}

// Circle returns the circle stored in c. The second return value reports
// whether c is a circle.
func (c Curve) Circle() (Circle, bool) {
	if c.kind != CircleKind {
		return Circle{}, false
	}
	return Circle{center: c.center, radius: c.r0}, true
}

// Ellipse returns the ellipse stored in c. The second return value reports
// whether c is an ellipse.
func (c Curve) Ellipse() (Ellipse, bool) {
	if c.kind != EllipseKind {
		return Ellipse{}, false
	}
	return Ellipse{center: c.center, radiusX: c.r0, radiusY: c.r1}, true
}

// Helix returns the helix stored in c. The second return value reports
// whether c is a helix.
func (c Curve) Helix() (Helix, bool) {
	if c.kind != HelixKind {
		return Helix{}, false
	}
	return Helix{center: c.center, radius: c.r0, step: c.r1}, true
}

// Evaluator returns the variant stored in c.
func (c Curve) Evaluator() Evaluator {
	switch c.kind {
	case CircleKind:
		v, _ := c.Circle()
		return v
	case EllipseKind:
		v, _ := c.Ellipse()
		return v
	case HelixKind:
		v, _ := c.Helix()
		return v
	default:
		return nil
	}
}

// Radius returns the radius of circles and helices and the mean radius of
// ellipses.
func (c Curve) Radius() float64 {
	switch c.kind {
	case CircleKind, HelixKind:
		return c.r0
	case EllipseKind:
		return (c.r0 + c.r1) / 2
	default:
		return 0
	}
}

// Eval implements Evaluator. Evaluating the zero Curve returns zero points.
func (c Curve) Eval(t float64) (pos, tangent Point) {
	switch c.kind {
	case CircleKind:
		v, _ := c.Circle()
		return v.Eval(t)
	case EllipseKind:
		v, _ := c.Ellipse()
		return v.Eval(t)
	case HelixKind:
		v, _ := c.Helix()
		return v.Eval(t)
	default:
		return Point{}, Point{}
	}
}

// Position returns the position at t.
func (c Curve) Position(t float64) Point {
	pos, _ := c.Eval(t)
	return pos
}

// Tangent returns the derivative of the position at t.
func (c Curve) Tangent(t float64) Point {
	_, tangent := c.Eval(t)
	return tangent
}

// Arclen implements Evaluator.
func (c Curve) Arclen(t0, t1 float64) float64 {
	if e := c.Evaluator(); e != nil {
		return e.Arclen(t0, t1)
	}
	return 0
}

// BoundingBox implements Evaluator.
func (c Curve) BoundingBox(t0, t1 float64) Box {
	if e := c.Evaluator(); e != nil {
		return e.BoundingBox(t0, t1)
	}
	return Box{}
}

// Translate returns a copy of c whose center is moved by v.
func (c Curve) Translate(v Point) Curve {
	c.center = c.center.Add(v)
	return c
}

func (c Curve) IsInf() bool {
	return c.center.IsInf() || math.IsInf(c.r0, 0) || math.IsInf(c.r1, 0)
}

func (c Curve) IsNaN() bool {
	return c.center.IsNaN() || math.IsNaN(c.r0) || math.IsNaN(c.r1)
}

// Samples returns an iterator over n+1 evenly spaced parameters in [t0, t1]
// and the positions at those parameters. It yields nothing if n < 1.
func Samples(e Evaluator, t0, t1 float64, n int) iter.Seq2[float64, Point] {
	return func(yield func(float64, Point) bool) {
		if n < 1 {
			return
		}
		dt := (t1 - t0) / float64(n)
		for i := 0; i <= n; i++ {
			t := t0 + float64(i)*dt
			if i == n {
				t = t1
			}
			pos, _ := e.Eval(t)
			if !yield(t, pos) {
				return
			}
		}
	}
}

// Table of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>

var gaussLegendreCoeffs16 = [...][2]float64{
	{0.1894506104550685, -0.0950125098376374},
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, -0.2816035507792589},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, -0.4580167776572274},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, -0.6178762444026438},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, -0.7554044083550030},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, -0.8656312023878318},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, -0.9445750230732326},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, -0.9894009349916499},
	{0.0271524594117541, 0.9894009349916499},
}
