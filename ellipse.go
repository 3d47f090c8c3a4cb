package curve3

import (
	"math"
)

// Ellipse is an axis-aligned ellipse in the plane z = Center.Z.
type Ellipse struct {
	center  Point
	radiusX float64
	radiusY float64
}

var _ Evaluator = Ellipse{}

// NewEllipse returns an ellipse around center with the semi-axis radiusX
// along x and radiusY along y. Both radii must be positive; their order is
// not constrained.
func NewEllipse(center Point, radiusX, radiusY float64) (Ellipse, error) {
	if err := checkPositive(EllipseKind, "radiusX", radiusX); err != nil {
		return Ellipse{}, err
	}
	if err := checkPositive(EllipseKind, "radiusY", radiusY); err != nil {
		return Ellipse{}, err
	}
	return Ellipse{center: center, radiusX: radiusX, radiusY: radiusY}, nil
}

func (e Ellipse) Center() Point { return e.center }

// Radii returns the semi-axes along x and y, in that order.
func (e Ellipse) Radii() (float64, float64) { return e.radiusX, e.radiusY }

func (e Ellipse) RadiusX() float64   { return e.radiusX }
func (e Ellipse) RadiusY() float64   { return e.radiusY }
func (e Ellipse) RadiusMin() float64 { return min(e.radiusX, e.radiusY) }
func (e Ellipse) RadiusMax() float64 { return max(e.radiusX, e.radiusY) }

// Radius returns the arithmetic mean of the two radii. It is the value used
// when ellipses are sorted or summed alongside other curves.
func (e Ellipse) Radius() float64 {
	return (e.radiusX + e.radiusY) / 2
}

// Curve wraps the ellipse in a [Curve].
func (e Ellipse) Curve() Curve {
	return Curve{kind: EllipseKind, center: e.center, r0: e.radiusX, r1: e.radiusY}
}

// Eval implements Evaluator.
//
// The parameter is used directly as the angle of the ellipse's
// parametrization, i.e. the position is center + (rx cos t, ry sin t, 0).
func (e Ellipse) Eval(t float64) (pos, tangent Point) {
	sin, cos := math.Sincos(t)
	pos = e.center.Add(Point{X: e.radiusX * cos, Y: e.radiusY * sin})
	tangent = Point{X: -e.radiusX * sin, Y: e.radiusY * cos}
	return pos, tangent
}

// Arclen implements Evaluator.
//
// There is no closed form for the arc length of an ellipse. The interval is
// split into pieces of at most a quarter turn, each of which is integrated
// with Legendre-Gauss quadrature.
func (e Ellipse) Arclen(t0, t1 float64) float64 {
	if t1 < t0 {
		t0, t1 = t1, t0
	}
	if e.radiusX == e.radiusY {
		return e.radiusX * (t1 - t0)
	}
	n := max(1, math.Ceil((t1-t0)/(math.Pi/2)))
	dt := (t1 - t0) / n
	var sum float64
	for i := range int(n) {
		a := t0 + float64(i)*dt
		sum += e.arclenQuadrature(a, a+dt)
	}
	return sum
}

func (e Ellipse) arclenQuadrature(t0, t1 float64) float64 {
	half := 0.5 * (t1 - t0)
	mid := 0.5 * (t1 + t0)
	var sum float64
	for _, coeff := range gaussLegendreCoeffs16 {
		wi, xi := coeff[0], coeff[1]
		_, d := e.Eval(mid + half*xi)
		sum += wi * d.Hypot()
	}
	return sum * half
}

// BoundingBox implements Evaluator.
func (e Ellipse) BoundingBox(t0, t1 float64) Box {
	return planarBoundingBox(e, t0, t1)
}

func (e Ellipse) Translate(v Point) Ellipse {
	e.center = e.center.Add(v)
	return e
}

func (e Ellipse) Area() float64 {
	return math.Pi * e.radiusX * e.radiusY
}

func (e Ellipse) IsInf() bool {
	return e.center.IsInf() || math.IsInf(e.radiusX, 0) || math.IsInf(e.radiusY, 0)
}

func (e Ellipse) IsNaN() bool {
	return e.center.IsNaN() || math.IsNaN(e.radiusX) || math.IsNaN(e.radiusY)
}
