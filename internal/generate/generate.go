// Package generate produces random curves for demonstrations and tests.
//
// All randomness comes from the *rand.Rand supplied by the caller, so two
// generators built from equally seeded sources produce the same curves.
package generate

import (
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
	"honnef.co/go/curve3"
)

var ErrBadOptions = errors.New("bad options")

type Options struct {
	// Radii of circles and helices, and both radii of ellipses, are drawn
	// uniformly from [MinRadius, MaxRadius].
	MinRadius float64
	MaxRadius float64
	// Steps of helices are drawn uniformly from [MinStep, MaxStep].
	MinStep float64
	MaxStep float64
	// Every coordinate of a center is drawn uniformly from
	// [-CenterSpread, CenterSpread].
	CenterSpread float64
	// Kinds lists the kinds to choose from. All kinds are used if it is
	// empty.
	Kinds []curve3.Kind
}

func DefaultOptions() Options {
	return Options{
		MinRadius:    0.5,
		MaxRadius:    10,
		MinStep:      0.1,
		MaxStep:      2,
		CenterSpread: 5,
	}
}

func (opts Options) validate() error {
	if opts.MaxRadius < opts.MinRadius {
		return fmt.Errorf("%w: radius range [%g, %g] is empty", ErrBadOptions, opts.MinRadius, opts.MaxRadius)
	}
	if opts.MaxStep < opts.MinStep {
		return fmt.Errorf("%w: step range [%g, %g] is empty", ErrBadOptions, opts.MinStep, opts.MaxStep)
	}
	if opts.CenterSpread < 0 {
		return fmt.Errorf("%w: negative center spread %g", ErrBadOptions, opts.CenterSpread)
	}
	for _, k := range opts.Kinds {
		if k < curve3.CircleKind || k > curve3.HelixKind {
			return fmt.Errorf("%w: unknown kind %v", ErrBadOptions, k)
		}
	}
	return nil
}

type Generator struct {
	rng    *rand.Rand
	opts   Options
	kinds  []curve3.Kind
	logger l.Wrapper
}

func New(rng *rand.Rand, opts Options, logger l.Wrapper) (*Generator, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if rng == nil {
		return nil, fmt.Errorf("%w: no random source", ErrBadOptions)
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	kinds := opts.Kinds
	if len(kinds) == 0 {
		kinds = curve3.Kinds[:]
	}

	return &Generator{
		rng:    rng,
		opts:   opts,
		kinds:  kinds,
		logger: logger.WithFields(l.StringField(l.ClsKey, "Generator")),
	}, nil
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *Generator) center() curve3.Point {
	s := g.opts.CenterSpread
	return curve3.Pt(g.uniform(-s, s), g.uniform(-s, s), g.uniform(-s, s))
}

// Next returns a new random curve. Options that allow non-positive radii or
// steps can produce parameters the curve constructors reject; the resulting
// error wraps curve3.ErrInvalidParameter and no curve is returned.
func (g *Generator) Next() (curve3.Curve, error) {
	kind := g.kinds[g.rng.IntN(len(g.kinds))]
	center := g.center()

	var r0, r1 float64
	switch kind {
	case curve3.CircleKind:
		r0 = g.uniform(g.opts.MinRadius, g.opts.MaxRadius)
	case curve3.EllipseKind:
		r0 = g.uniform(g.opts.MinRadius, g.opts.MaxRadius)
		r1 = g.uniform(g.opts.MinRadius, g.opts.MaxRadius)
		r0, r1 = min(r0, r1), max(r0, r1)
	case curve3.HelixKind:
		r0 = g.uniform(g.opts.MinRadius, g.opts.MaxRadius)
		r1 = g.uniform(g.opts.MinStep, g.opts.MaxStep)
	}

	c, err := curve3.NewCurve(kind, center, r0, r1)
	if err != nil {
		g.logger.WithFields(l.ErrorField(err), l.StringField("kind", kind.String()),
			l.StringField("r0", cast.ToString(r0)), l.StringField("r1", cast.ToString(r1))).Error("construct curve failed")

		return curve3.Curve{}, fmt.Errorf("generate %s: %w", kind, err)
	}

	g.logger.WithFields(l.StringField("curve", c.String()), l.StringField("center", center.String())).Debug("generated curve")

	return c, nil
}

// Seq returns an iterator over n results of Next. It doesn't stop at
// errors; the consumer decides whether to skip or abort.
func (g *Generator) Seq(n int) iter.Seq2[curve3.Curve, error] {
	return func(yield func(curve3.Curve, error) bool) {
		for range n {
			if !yield(g.Next()) {
				return
			}
		}
	}
}

// Collection generates n curves and returns them as a collection. It fails
// with the first construction error; curves generated before it are
// discarded.
func (g *Generator) Collection(n int, prefix ...curve3.Curve) (curve3.Collection, error) {
	curves := make([]curve3.Curve, 0, len(prefix)+n)
	curves = append(curves, prefix...)

	for c, err := range g.Seq(n) {
		if err != nil {
			return curve3.Collection{}, err
		}

		curves = append(curves, c)
	}

	g.logger.WithFields(l.IntField("count", len(curves))).Debug("collection generated")

	return curve3.NewCollection(curves...), nil
}

// Canonical returns the circle, ellipse, and helix used to demonstrate the
// curves: a circle of radius 2, an ellipse with radii 3 and 2, and a helix of
// radius 1 and step 0.5, all centered on the origin.
func Canonical() []curve3.Curve {
	origin := curve3.Pt(0, 0, 0)
	circle, _ := curve3.NewCircle(origin, 2)
	ellipse, _ := curve3.NewEllipse(origin, 3, 2)
	helix, _ := curve3.NewHelix(origin, 1, 0.5)
	return []curve3.Curve{circle.Curve(), ellipse.Curve(), helix.Curve()}
}
