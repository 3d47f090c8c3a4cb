// Package report turns curve evaluations and pipeline results into records
// and writes them as text or YAML.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
	"honnef.co/go/curve3"
)

type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown report format %q", s)
	}
}

// Evaluation is a curve's position and derivative at one parameter.
type Evaluation struct {
	Index      int          `yaml:"index"`
	Kind       string       `yaml:"kind"`
	Param      float64      `yaml:"t"`
	Point      curve3.Point `yaml:"point,flow"`
	Derivative curve3.Point `yaml:"derivative,flow"`
}

// Item is one curve of a filtered and sorted view.
type Item struct {
	Index  int     `yaml:"index"`
	Kind   string  `yaml:"kind"`
	Radius float64 `yaml:"radius"`
}

// Summary is the result of filtering a collection by kind, sorting the
// result by radius, and summing the radii.
type Summary struct {
	Kind  string  `yaml:"kind"`
	Items []Item  `yaml:"items"`
	Sum   float64 `yaml:"sum"`
}

// Evaluate evaluates every curve of coll at t.
func Evaluate(coll curve3.Collection, t float64) []Evaluation {
	out := make([]Evaluation, 0, coll.Len())
	for i, c := range coll.All() {
		pos, tangent := c.Eval(t)
		out = append(out, Evaluation{
			Index:      i,
			Kind:       c.Kind().String(),
			Param:      t,
			Point:      pos,
			Derivative: tangent,
		})
	}
	return out
}

// Summarize filters coll to the given kind, sorts the curves by radius, and
// sums their radii.
func Summarize(coll curve3.Collection, kind curve3.Kind) Summary {
	sorted := coll.Filter(kind).SortByRadius()

	s := Summary{
		Kind:  kind.String(),
		Items: make([]Item, 0, sorted.Len()),
		Sum:   sorted.SumRadius(),
	}
	for i, c := range sorted.All() {
		s.Items = append(s.Items, Item{Index: i, Kind: c.Kind().String(), Radius: c.Radius()})
	}
	return s
}

type Writer struct {
	w      *bufio.Writer
	format Format
}

func NewWriter(w io.Writer, format Format) *Writer {
	return &Writer{w: bufio.NewWriter(w), format: format}
}

func (w *Writer) WriteEvaluations(evs []Evaluation) error {
	if w.format == FormatYAML {
		return w.writeYAML(map[string]any{"evaluations": evs})
	}

	for _, ev := range evs {
		t := cast.ToString(ev.Param)
		fmt.Fprintf(w.w, "Curve type: %s\n", ev.Kind)
		fmt.Fprintf(w.w, "Point at t = %s: %v\n", t, ev.Point)
		fmt.Fprintf(w.w, "Derivative at t = %s: %v\n", t, ev.Derivative)
		fmt.Fprintln(w.w)
	}
	return w.w.Flush()
}

func (w *Writer) WriteSummary(s Summary) error {
	if w.format == FormatYAML {
		return w.writeYAML(map[string]any{"summary": s})
	}

	fmt.Fprintf(w.w, "Curves of type %s sorted by radius:\n", s.Kind)
	for _, it := range s.Items {
		fmt.Fprintf(w.w, "  #%d %s radius %s\n", it.Index, it.Kind, cast.ToString(it.Radius))
	}
	fmt.Fprintf(w.w, "Total sum of radii: %s\n", cast.ToString(s.Sum))
	return w.w.Flush()
}

func (w *Writer) writeYAML(doc any) error {
	enc := yaml.NewEncoder(w.w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return w.w.Flush()
}
