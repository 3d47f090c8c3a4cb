package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cast"
)

type Config struct {
	Count     int     `envconfig:"COUNT" default:"10"`
	Seed      uint64  `envconfig:"SEED" default:"1"`
	Param     string  `envconfig:"PARAM" default:"pi/4"`
	Format    string  `envconfig:"FORMAT" default:"text"`
	Canonical bool    `envconfig:"CANONICAL" default:"true"`
	MinRadius float64 `envconfig:"MIN_RADIUS" default:"0.5"`
	MaxRadius float64 `envconfig:"MAX_RADIUS" default:"10"`
	MaxStep   float64 `envconfig:"MAX_STEP" default:"2"`
	Spread    float64 `envconfig:"SPREAD" default:"5"`
}

// Load reads the configuration from CURVE_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("curve", &cfg); err != nil {
		return nil, err
	}
	if cfg.Count < 0 {
		return nil, fmt.Errorf("CURVE_COUNT must not be negative, got %d", cfg.Count)
	}
	if _, err := cfg.Parameter(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Parameter returns the evaluation parameter described by Param.
func (cfg *Config) Parameter() (float64, error) {
	return ParseParam(cfg.Param)
}

// ParseParam parses a curve parameter. Besides plain numbers it accepts
// multiples and fractions of pi, such as "pi", "2pi", "pi/4", "-3*pi/2" and
// "0.5pi".
func ParseParam(s string) (float64, error) {
	s = strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if s == "" {
		return 0, fmt.Errorf("empty parameter")
	}

	before, after, ok := strings.Cut(s, "pi")
	if !ok {
		v, err := cast.ToFloat64E(s)
		if err != nil {
			return 0, fmt.Errorf("invalid parameter %q: %w", s, err)
		}
		return v, nil
	}

	factor := 1.0
	switch before = strings.TrimSuffix(before, "*"); before {
	case "":
	case "-":
		factor = -1
	case "+":
	default:
		v, err := cast.ToFloat64E(before)
		if err != nil {
			return 0, fmt.Errorf("invalid factor in parameter %q: %w", s, err)
		}
		factor = v
	}

	divisor := 1.0
	if after != "" {
		d, ok := strings.CutPrefix(after, "/")
		if !ok {
			return 0, fmt.Errorf("invalid parameter %q", s)
		}
		v, err := cast.ToFloat64E(d)
		if err != nil {
			return 0, fmt.Errorf("invalid divisor in parameter %q: %w", s, err)
		}
		if v == 0 {
			return 0, fmt.Errorf("zero divisor in parameter %q", s)
		}
		divisor = v
	}

	return factor * math.Pi / divisor, nil
}
