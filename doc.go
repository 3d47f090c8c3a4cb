// Package curve3 provides a small family of parametric 3D curves (circles,
// ellipses, and helices) and routines for working with mixed collections of
// them.
//
// # Curves
//
// [Circle], [Ellipse], and [Helix] are immutable values. They are constructed
// with [NewCircle], [NewEllipse], and [NewHelix], which reject shape
// parameters that aren't strictly positive with an error wrapping
// [ErrInvalidParameter]. No curve value exists when construction fails.
//
// All three implement [Evaluator]. Evaluating a curve at parameter t returns
// its position and its tangent, the derivative of the position with respect
// to t. Both are expressed as a [Point]. The parameter is an angle in
// radians:
//
//   - circle: center + (r cos t, r sin t, 0)
//   - ellipse: center + (rx cos t, ry sin t, 0)
//   - helix: center + (r cos t, r sin t, step·t)
//
// The ellipse uses t directly as the angle of its parametrization; there is no
// reparametrization by polar angle. The helix rises by step per unit of t,
// which makes the z component of its tangent equal to step everywhere.
//
// # Mixed collections
//
// [Curve] is a tagged union of the three variants, identified by its [Kind].
// It can be evaluated like any variant, and the variant itself can be
// recovered with [Curve.Circle], [Curve.Ellipse], and [Curve.Helix].
//
// A [Collection] owns an ordered sequence of curves and never changes after
// construction. Selections of a collection are expressed as a [View], which
// refers to the collection's curves by index. Views can be narrowed with
// [View.Filter], reordered with [View.SortBy], and aggregated with
// [View.Sum], none of which modify the collection or the original view:
//
//	circles := coll.Filter(curve3.CircleKind).SortByRadius()
//	total := circles.SumRadius()
//
// # Radius
//
// [Curve.Radius], used as the key for sorting and summing, is the radius of
// circles and helices, and the mean of the two radii of ellipses.
package curve3
