package curve3

import (
	"math"
)

// Helix is a circular helix whose axis is parallel to z and passes through
// Center. It rises by Step for every unit of the parameter, so one full turn
// raises it by 2π·Step.
type Helix struct {
	center Point
	radius float64
	step   float64
}

var _ Evaluator = Helix{}

// NewHelix returns a helix around center. Both radius and step must be
// positive.
func NewHelix(center Point, radius, step float64) (Helix, error) {
	if err := checkPositive(HelixKind, "radius", radius); err != nil {
		return Helix{}, err
	}
	if err := checkPositive(HelixKind, "step", step); err != nil {
		return Helix{}, err
	}
	return Helix{center: center, radius: radius, step: step}, nil
}

func (h Helix) Center() Point   { return h.center }
func (h Helix) Radius() float64 { return h.radius }
func (h Helix) Step() float64   { return h.step }

// Pitch returns the height gained by one full turn.
func (h Helix) Pitch() float64 {
	return 2 * math.Pi * h.step
}

// Curve wraps the helix in a [Curve].
func (h Helix) Curve() Curve {
	return Curve{kind: HelixKind, center: h.center, r0: h.radius, r1: h.step}
}

// Eval implements Evaluator.
//
// The position is center + (r cos t, r sin t, step·t), so the z component of
// the tangent is step for every t.
func (h Helix) Eval(t float64) (pos, tangent Point) {
	sin, cos := math.Sincos(t)
	r := h.radius
	pos = h.center.Add(Point{X: r * cos, Y: r * sin, Z: h.step * t})
	tangent = Point{X: -r * sin, Y: r * cos, Z: h.step}
	return pos, tangent
}

// Arclen implements Evaluator.
func (h Helix) Arclen(t0, t1 float64) float64 {
	return math.Hypot(h.radius, h.step) * math.Abs(t1-t0)
}

// BoundingBox implements Evaluator.
func (h Helix) BoundingBox(t0, t1 float64) Box {
	return planarBoundingBox(h, t0, t1)
}

func (h Helix) Translate(v Point) Helix {
	h.center = h.center.Add(v)
	return h
}

func (h Helix) IsInf() bool {
	return h.center.IsInf() || math.IsInf(h.radius, 0) || math.IsInf(h.step, 0)
}

func (h Helix) IsNaN() bool {
	return h.center.IsNaN() || math.IsNaN(h.radius) || math.IsNaN(h.step)
}
