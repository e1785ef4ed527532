package s2

import (
	"math"

	"github.com/golang/geo/s1"

	"github.com/missinglink/s2js-sub001/r3"
)

// Point represents a point on the unit sphere as a normalized 3D vector.
//
// Points are expected to be close to unit length. The predicates in this
// package do not normalize their inputs, but their error bounds assume that
// the norm of every point is very close to 1.
//
// Fields should be treated as read-only. Use one of the factory methods for
// creation.
type Point struct {
	r3.Vector
}

// PointFromCoords creates a new normalized point from coordinates.
//
// This always returns a valid point. If the given coordinates can not be
// normalized the origin point will be returned.
func PointFromCoords(x, y, z float64) Point {
	if x == 0 && y == 0 && z == 0 {
		return OriginPoint()
	}
	return Point{r3.Vector{X: x, Y: y, Z: z}.Normalize()}
}

// OriginPoint returns a unique "origin" on the sphere for operations that
// need a fixed reference point.
//
// It should *not* be a point that is commonly used in edge tests in order
// to avoid triggering code to handle degenerate cases (this rules out the
// north and south poles).
func OriginPoint() Point {
	return Point{r3.Vector{X: -0.0099994664350250197, Y: 0.0025924542609324121, Z: 0.99994664350250195}}
}

// PointCross returns a Point that is orthogonal to both p and op. This is
// similar to p.Cross(op) (the true cross product) except that it does a
// better job of ensuring orthogonality when p is nearly parallel to op, and
// it returns a non-zero result even when p == op or p == -op.
//
// The result is not normalized; callers that need a unit vector must
// normalize it themselves.
//
// It satisfies the following properties (f == PointCross):
//
//	(1) f(p, op) != 0 for all p, op
//	(2) f(op,p) == -f(p,op) unless p == op or p == -op
//	(3) f(-p,op) == -f(p,op) unless p == op or p == -op
//	(4) f(p,-op) == -f(p,op) unless p == op or p == -op
func (p Point) PointCross(op Point) Point {
	// The direct cross product of two nearly parallel vectors loses most of
	// its significant bits. (p+op) and (op-p) are exactly orthogonal when p
	// and op have the same norm, and their cross product is 2*(p x op)
	// computed with much smaller relative error.
	x := p.Add(op.Vector).Cross(op.Sub(p.Vector))

	if x == (r3.Vector{}) {
		// The only result that makes sense mathematically is to return zero,
		// but we find it more convenient to return an arbitrary orthogonal
		// vector.
		return Point{p.Ortho()}
	}
	return Point{x}
}

// Distance returns the angle between two points.
func (p Point) Distance(b Point) s1.Angle {
	return p.Vector.Angle(b.Vector)
}

// ApproxEqual reports whether the two points are within 1e-15 radians.
func (p Point) ApproxEqual(other Point) bool {
	return p.ApproxEqualWithin(other, s1.Angle(1e-15))
}

// ApproxEqualWithin reports whether the two points are within the given
// angle of each other.
func (p Point) ApproxEqualWithin(other Point, maxError s1.Angle) bool {
	return p.Vector.Angle(other.Vector) <= maxError
}

// ChordAngleBetweenPoints returns the squared chord distance between two
// points, clamped to the maximum of 4 (antipodal points).
func ChordAngleBetweenPoints(x, y Point) s1.ChordAngle {
	return s1.ChordAngle(math.Min(4.0, x.Sub(y.Vector).Norm2()))
}

// FrameFromPoint returns a right-handed orthonormal frame whose third column
// is z.
func FrameFromPoint(z Point) r3.Matrix {
	y := z.Ortho()
	return r3.MatrixFromCols(y.Cross(z.Vector), y, z.Vector)
}

// ToFrame returns the coordinates of p in the given frame.
func ToFrame(m r3.Matrix, p Point) Point {
	// The inverse of an orthonormal matrix is its transpose.
	return Point{m.Transpose().MulVector(p.Vector)}
}

// FromFrame converts coordinates in the given frame back to a point.
func FromFrame(m r3.Matrix, q Point) Point {
	return Point{m.MulVector(q.Vector)}
}
