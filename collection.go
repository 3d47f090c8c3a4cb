package curve3

import (
	"cmp"
	"iter"
	"slices"
)

// Collection is an ordered, immutable sequence of curves. It owns its curves:
// constructing a collection copies its input, and no method modifies it.
type Collection struct {
	curves []Curve
}

// NewCollection returns a collection of the given curves, in order.
func NewCollection(curves ...Curve) Collection {
	return Collection{curves: slices.Clone(curves)}
}

// CollectCurves returns a collection of the curves produced by seq.
func CollectCurves(seq iter.Seq[Curve]) Collection {
	return Collection{curves: slices.Collect(seq)}
}

func (c Collection) Len() int { return len(c.curves) }

// At returns the i'th curve. It panics if i is out of range.
func (c Collection) At(i int) Curve { return c.curves[i] }

// All returns an iterator over the indices and curves of the collection.
func (c Collection) All() iter.Seq2[int, Curve] { return slices.All(c.curves) }

// Values returns an iterator over the curves of the collection.
func (c Collection) Values() iter.Seq[Curve] { return slices.Values(c.curves) }

// View returns a view of every curve in the collection.
func (c Collection) View() View {
	idx := make([]int, len(c.curves))
	for i := range idx {
		idx[i] = i
	}
	return View{curves: c.curves, idx: idx}
}

// Filter returns a view of the curves of the given kind, in collection order.
func (c Collection) Filter(kind Kind) View {
	return c.View().Filter(kind)
}

// SumRadius returns the sum of the radii of all curves in the collection.
func (c Collection) SumRadius() float64 {
	return c.View().SumRadius()
}

// View is an ordered selection of curves from a [Collection]. It refers to
// the collection's curves by index and doesn't copy them. Views are values;
// operations that reorder or narrow a view return a new view and leave both
// the receiver and the collection unchanged.
//
// The zero View is empty.
type View struct {
	curves []Curve
	idx    []int
}

func (v View) Len() int { return len(v.idx) }

// At returns the i'th curve of the view. It panics if i is out of range.
func (v View) At(i int) Curve { return v.curves[v.idx[i]] }

// Index returns the position in the collection of the view's i'th curve.
func (v View) Index(i int) int { return v.idx[i] }

// Indices returns a copy of the collection positions selected by the view,
// in view order.
func (v View) Indices() []int { return slices.Clone(v.idx) }

// All returns an iterator over the collection indices and curves of the
// view, in view order.
func (v View) All() iter.Seq2[int, Curve] {
	return func(yield func(int, Curve) bool) {
		for _, i := range v.idx {
			if !yield(i, v.curves[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the curves of the view, in view order.
func (v View) Values() iter.Seq[Curve] {
	return func(yield func(Curve) bool) {
		for _, i := range v.idx {
			if !yield(v.curves[i]) {
				return
			}
		}
	}
}

// Filter returns a view of the curves of the given kind, preserving their
// relative order.
func (v View) Filter(kind Kind) View {
	return v.FilterFunc(func(c Curve) bool { return c.Kind() == kind })
}

// FilterFunc returns a view of the curves for which keep returns true,
// preserving their relative order.
func (v View) FilterFunc(keep func(Curve) bool) View {
	var idx []int
	for _, i := range v.idx {
		if keep(v.curves[i]) {
			idx = append(idx, i)
		}
	}
	return View{curves: v.curves, idx: idx}
}

// SortBy returns a view of the same curves ordered by non-decreasing key.
// The sort is stable: curves with equal keys keep their relative order.
func (v View) SortBy(key func(Curve) float64) View {
	idx := slices.Clone(v.idx)
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(key(v.curves[a]), key(v.curves[b]))
	})
	return View{curves: v.curves, idx: idx}
}

// SortByRadius is shorthand for SortBy(Radius).
func (v View) SortByRadius() View {
	return v.SortBy(Radius)
}

// Sum returns the sum of key over the view's curves, accumulated in view
// order. The sum of an empty view is 0.
func (v View) Sum(key func(Curve) float64) float64 {
	var sum float64
	for c := range v.Values() {
		sum += key(c)
	}
	return sum
}

// SumRadius is shorthand for Sum(Radius).
func (v View) SumRadius() float64 {
	return v.Sum(Radius)
}

// Kinds returns the kinds of the view's curves, in view order.
func (v View) Kinds() []Kind {
	out := make([]Kind, 0, len(v.idx))
	for c := range v.Values() {
		out = append(out, c.Kind())
	}
	return out
}

// Radius returns c.Radius(). It is meant to be used as a key for
// [View.SortBy] and [View.Sum].
func Radius(c Curve) float64 {
	return c.Radius()
}
