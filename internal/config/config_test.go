package config

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParam(t *testing.T) {
	cases := map[string]float64{
		"pi/4":    math.Pi / 4,
		"pi":      math.Pi,
		"2pi":     2 * math.Pi,
		"-pi/2":   -math.Pi / 2,
		"3*pi/2":  3 * math.Pi / 2,
		"0.5 PI":  0.5 * math.Pi,
		"0.5":     0.5,
		"-1.25":   -1.25,
		"+pi":     math.Pi,
		"pi/0.25": 4 * math.Pi,
	}
	for in, want := range cases {
		got, err := ParseParam(in)
		require.NoError(t, err, in)
		assert.InDelta(t, want, got, 1e-12, in)
	}

	for _, in := range []string{"", "abc", "pi/", "pi/0", "xpi", "pi4", "pi/abc"} {
		_, err := ParseParam(in)
		assert.Error(t, err, in)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Count)
	assert.Equal(t, uint64(1), cfg.Seed)
	assert.Equal(t, "text", cfg.Format)
	assert.True(t, cfg.Canonical)

	p, err := cfg.Parameter()
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/4, p, 1e-12)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CURVE_COUNT", "3")
	t.Setenv("CURVE_SEED", "42")
	t.Setenv("CURVE_PARAM", "pi/2")
	t.Setenv("CURVE_FORMAT", "yaml")
	t.Setenv("CURVE_CANONICAL", "false")
	t.Setenv("CURVE_MAX_RADIUS", "4.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "yaml", cfg.Format)
	assert.False(t, cfg.Canonical)
	assert.Equal(t, 4.5, cfg.MaxRadius)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("CURVE_PARAM", "pi/0")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("CURVE_PARAM", "1")
	t.Setenv("CURVE_COUNT", "-1")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("CURVE_COUNT", "many")
	_, err = Load()
	assert.Error(t, err)
}
