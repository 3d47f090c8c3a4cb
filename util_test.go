package curve3

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, including those nested in points and boxes, with
// an absolute tolerance.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

func approxEqual(x, y float64) bool {
	return math.Abs(x-y) < 1e-9
}

func mustCircle(t *testing.T, center Point, r float64) Curve {
	t.Helper()
	c, err := NewCircle(center, r)
	if err != nil {
		t.Fatal(err)
	}
	return c.Curve()
}

func mustEllipse(t *testing.T, center Point, rx, ry float64) Curve {
	t.Helper()
	e, err := NewEllipse(center, rx, ry)
	if err != nil {
		t.Fatal(err)
	}
	return e.Curve()
}

func mustHelix(t *testing.T, center Point, r, step float64) Curve {
	t.Helper()
	h, err := NewHelix(center, r, step)
	if err != nil {
		t.Fatal(err)
	}
	return h.Curve()
}
