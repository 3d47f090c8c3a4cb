package generate

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/sgostarter/i/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/curve3"
)

func newGenerator(t *testing.T, seed uint64, opts Options) *Generator {
	t.Helper()

	g, err := New(rand.New(rand.NewPCG(seed, seed)), opts, l.NewNopLoggerWrapper())
	require.NoError(t, err)

	return g
}

func TestReproducible(t *testing.T) {
	c1, err := newGenerator(t, 7, DefaultOptions()).Collection(50)
	require.NoError(t, err)
	c2, err := newGenerator(t, 7, DefaultOptions()).Collection(50)
	require.NoError(t, err)
	c3, err := newGenerator(t, 8, DefaultOptions()).Collection(50)
	require.NoError(t, err)

	require.Equal(t, 50, c1.Len())
	require.Equal(t, 50, c2.Len())

	same := true
	for i := range c1.Len() {
		assert.Equal(t, c1.At(i).String(), c2.At(i).String())
		assert.Equal(t, c1.At(i).Center(), c2.At(i).Center())
		same = same && c1.At(i).String() == c3.At(i).String()
	}
	assert.False(t, same, "different seeds produced the same curves")
}

func TestGeneratedCurvesAreValid(t *testing.T) {
	opts := DefaultOptions()
	g := newGenerator(t, 1, opts)

	seen := map[curve3.Kind]int{}
	for c, err := range g.Seq(300) {
		require.NoError(t, err)
		require.True(t, c.IsValid())
		seen[c.Kind()]++

		center := c.Center()
		for _, v := range []float64{center.X, center.Y, center.Z} {
			assert.LessOrEqual(t, v, opts.CenterSpread)
			assert.GreaterOrEqual(t, v, -opts.CenterSpread)
		}

		switch c.Kind() {
		case curve3.CircleKind:
			v, _ := c.Circle()
			assert.GreaterOrEqual(t, v.Radius(), opts.MinRadius)
			assert.LessOrEqual(t, v.Radius(), opts.MaxRadius)
		case curve3.EllipseKind:
			v, _ := c.Ellipse()
			assert.LessOrEqual(t, v.RadiusX(), v.RadiusY())
			assert.GreaterOrEqual(t, v.RadiusMin(), opts.MinRadius)
			assert.LessOrEqual(t, v.RadiusMax(), opts.MaxRadius)
		case curve3.HelixKind:
			v, _ := c.Helix()
			assert.GreaterOrEqual(t, v.Step(), opts.MinStep)
			assert.LessOrEqual(t, v.Step(), opts.MaxStep)
		}
	}

	for _, k := range curve3.Kinds {
		assert.Positive(t, seen[k], "no %s generated", k)
	}
}

func TestKindsOption(t *testing.T) {
	opts := DefaultOptions()
	opts.Kinds = []curve3.Kind{curve3.HelixKind}

	coll, err := newGenerator(t, 3, opts).Collection(20)
	require.NoError(t, err)
	assert.Equal(t, 20, coll.Filter(curve3.HelixKind).Len())
}

func TestInvalidParametersSurface(t *testing.T) {
	opts := DefaultOptions()
	opts.MinRadius = 0
	opts.MaxRadius = 0

	g := newGenerator(t, 1, opts)
	c, err := g.Next()
	require.Error(t, err)
	assert.True(t, errors.Is(err, curve3.ErrInvalidParameter))
	assert.False(t, c.IsValid())

	_, err = g.Collection(5, Canonical()...)
	assert.ErrorIs(t, err, curve3.ErrInvalidParameter)
}

func TestBadOptions(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))

	opts := DefaultOptions()
	opts.MaxRadius = opts.MinRadius - 1
	_, err := New(rng, opts, nil)
	assert.ErrorIs(t, err, ErrBadOptions)

	opts = DefaultOptions()
	opts.Kinds = []curve3.Kind{0}
	_, err = New(rng, opts, nil)
	assert.ErrorIs(t, err, ErrBadOptions)

	_, err = New(nil, DefaultOptions(), nil)
	assert.ErrorIs(t, err, ErrBadOptions)
}

func TestCollectionPrefix(t *testing.T) {
	coll, err := newGenerator(t, 1, DefaultOptions()).Collection(4, Canonical()...)
	require.NoError(t, err)
	require.Equal(t, 7, coll.Len())

	assert.Equal(t, []curve3.Kind{curve3.CircleKind, curve3.EllipseKind, curve3.HelixKind},
		[]curve3.Kind{coll.At(0).Kind(), coll.At(1).Kind(), coll.At(2).Kind()})
	assert.Equal(t, 2.0, coll.At(0).Radius())
}
