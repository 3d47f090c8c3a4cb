// Command curvedemo generates a random collection of curves, evaluates each
// of them, and sums the radii of the circles among them.
//
// It is configured through CURVE_* environment variables, see
// internal/config.
package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
	"honnef.co/go/curve3"
	"honnef.co/go/curve3/internal/config"
	"honnef.co/go/curve3/internal/generate"
	"honnef.co/go/curve3/internal/report"
)

func main() {
	logger := l.NewConsoleLoggerWrapper()

	cfg, err := config.Load()
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("load config failed")
	}

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("run failed")
	}
}

func run(cfg *config.Config, out io.Writer, logger l.Wrapper) error {
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	param, err := cfg.Parameter()
	if err != nil {
		return err
	}

	opts := generate.DefaultOptions()
	opts.MinRadius = cfg.MinRadius
	opts.MaxRadius = cfg.MaxRadius
	opts.MaxStep = cfg.MaxStep
	opts.CenterSpread = cfg.Spread

	gen, err := generate.New(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)), opts, logger)
	if err != nil {
		return fmt.Errorf("create generator: %w", err)
	}

	var prefix []curve3.Curve
	if cfg.Canonical {
		prefix = generate.Canonical()
	}

	coll, err := gen.Collection(cfg.Count, prefix...)
	if err != nil {
		return err
	}

	logger.WithFields(l.IntField("curves", coll.Len()), l.StringField("t", cast.ToString(param))).Debug("collection ready")

	w := report.NewWriter(out, format)
	if err := w.WriteEvaluations(report.Evaluate(coll, param)); err != nil {
		return fmt.Errorf("write evaluations: %w", err)
	}

	if err := w.WriteSummary(report.Summarize(coll, curve3.CircleKind)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}
