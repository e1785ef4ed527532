package s2

import (
	"github.com/missinglink/s2js-sub001/r3"
)

// tangentError bounds the error in c.Dot(aTangent) and friends. The error
// in PointCross is insignificant. The maximum error in the call to Cross
// (i.e., the maximum norm of the error vector) is (0.5 + 1/sqrt(3)) *
// dblEpsilon. The maximum error in each call to Dot is dblEpsilon. (There
// is also a small relative error term that is insignificant because we are
// comparing the result against a constant that is very close to zero.)
const tangentError = (1.5 + 1/sqrt3) * dblEpsilon

// EdgeCrosser allows edges to be efficiently tested for intersection with a
// given fixed edge AB. It is especially efficient when testing for
// intersection with an edge chain connecting vertices v0, v1, v2, ...
//
// An EdgeCrosser carries mutable state between calls and must not be
// shared between goroutines without external synchronization.
//
// Example usage:
//
//	func CountIntersections(a, b Point, edges []Edge) int {
//		count := 0
//		crosser := NewEdgeCrosser(a, b)
//		for _, edge := range edges {
//			if crosser.CrossingSign(edge.V0, edge.V1) == Cross {
//				count++
//			}
//		}
//		return count
//	}
type EdgeCrosser struct {
	a   Point
	b   Point
	aXb r3.Vector

	// To reduce the number of calls to expensiveSign, we compute an
	// outward-facing tangent at A and B. If the plane
	// perpendicular to one of these tangents separates AB from CD (i.e.,
	// one edge on each side) then there is no intersection.
	aTangent r3.Vector // Outward-facing tangent at A.
	bTangent r3.Vector // Outward-facing tangent at B.

	// The fields below are updated for each vertex in the chain.
	c   Point     // Previous vertex in the vertex chain.
	acb Direction // The orientation of triangle ACB.
	bda Direction // The orientation of triangle BDA.
}

// NewEdgeCrosser returns an EdgeCrosser with the fixed edge AB.
func NewEdgeCrosser(a, b Point) *EdgeCrosser {
	norm := a.PointCross(b).Normalize()
	return &EdgeCrosser{
		a:        a,
		b:        b,
		aXb:      a.Cross(b.Vector),
		aTangent: a.Cross(norm),
		bTangent: norm.Cross(b.Vector),
	}
}

// NewChainEdgeCrosser is a convenience constructor that uses AB as the
// fixed edge, and C as the first vertex of the vertex chain (equivalent to
// calling RestartAt(c)).
//
// You don't need to use this or any of the chain functions unless you're
// trying to squeeze out every last drop of performance. Essentially all
// you are saving is a test whether the first vertex of the current edge
// is the same as the second vertex of the previous edge.
func NewChainEdgeCrosser(a, b, c Point) *EdgeCrosser {
	e := NewEdgeCrosser(a, b)
	e.RestartAt(c)
	return e
}

// A returns the first vertex of the fixed edge.
func (e *EdgeCrosser) A() Point { return e.a }

// B returns the second vertex of the fixed edge.
func (e *EdgeCrosser) B() Point { return e.b }

// C returns the current vertex of the chain.
func (e *EdgeCrosser) C() Point { return e.c }

// CrossingSign reports whether the edge AB intersects the edge CD. If any
// two vertices from different edges are the same, returns MaybeCross. If
// either edge is degenerate (A == B or C == D), returns either DoNotCross
// or MaybeCross.
//
// Properties of CrossingSign:
//
//	(1) CrossingSign(b,a,c,d) == CrossingSign(a,b,c,d)
//	(2) CrossingSign(c,d,a,b) == CrossingSign(a,b,c,d)
//	(3) CrossingSign(a,b,c,d) == MaybeCross if a==c, a==d, b==c, b==d
//	(4) CrossingSign(a,b,c,d) == DoNotCross or MaybeCross if a==b or c==d
//
// Note that if you want to check an edge against a chain of other edges,
// it is slightly more efficient to use the single-argument version
// ChainCrossingSign below.
func (e *EdgeCrosser) CrossingSign(c, d Point) Crossing {
	if c != e.c {
		e.RestartAt(c)
	}
	return e.ChainCrossingSign(d)
}

// EdgeOrVertexCrossing reports whether CrossingSign(c, d) is Cross, or AB
// and CD share a vertex and VertexCrossing(a, b, c, d) is true.
//
// This method extends the concept of a "crossing" to the case where AB
// and CD have a vertex in common. The two edges may or may not cross,
// according to the rules defined in VertexCrossing above. The rules are
// designed so that point containment tests can be implemented simply by
// counting edge crossings. Similarly, determining whether one edge chain
// crosses another edge chain can be implemented by counting.
func (e *EdgeCrosser) EdgeOrVertexCrossing(c, d Point) bool {
	if c != e.c {
		e.RestartAt(c)
	}
	return e.EdgeOrVertexChainCrossing(d)
}

// RestartAt sets the current point of the edge crosser to be c.
// Call this method when your chain 'jumps' to a new place.
func (e *EdgeCrosser) RestartAt(c Point) {
	e.c = c
	e.acb = -triageSign(e.a, e.b, e.c, e.aXb)
}

// ChainCrossingSign is like CrossingSign, but uses the last vertex passed
// to one of the crossing methods (or RestartAt) as the first vertex of the
// current edge.
func (e *EdgeCrosser) ChainCrossingSign(d Point) Crossing {
	// For there to be an edge crossing, the triangles ACB, CBD, BDA, DAC
	// must all be oriented the same way (CW or CCW). We keep the
	// orientation of ACB as part of our state. When each new point D
	// arrives, we compute the orientation of BDA and check whether it
	// matches ACB. This checks whether the points C and D are on opposite
	// sides of the great circle through AB.

	// Recall that triageSign is invariant with respect to rotating its
	// arguments, i.e. ABD has the same orientation as BDA.
	bda := triageSign(e.a, e.b, d, e.aXb)
	if e.acb == -bda && bda != Indeterminate {
		// The most common case -- triangles have opposite orientations.
		// Save the current vertex D as the next vertex C, and also save
		// the orientation of the new triangle ACB (which is opposite to
		// the current triangle BDA).
		e.c = d
		e.acb = -bda
		return DoNotCross
	}
	e.bda = bda
	return e.crossingSign(d)
}

// EdgeOrVertexChainCrossing is like EdgeOrVertexCrossing, but uses the last
// vertex passed to one of the crossing methods (or RestartAt) as the first
// vertex of the current edge.
func (e *EdgeCrosser) EdgeOrVertexChainCrossing(d Point) bool {
	// We need to copy e.c since it is clobbered by ChainCrossingSign.
	c := e.c
	switch e.ChainCrossingSign(d) {
	case DoNotCross:
		return false
	case Cross:
		return true
	}
	return VertexCrossing(e.a, e.b, c, d)
}

// crossingSign handles the slow path of CrossingSign.
func (e *EdgeCrosser) crossingSign(d Point) Crossing {
	// Compute the actual result, and then save the current vertex D as
	// the next vertex C, and save the orientation of the next triangle ACB
	// (which is opposite to the current triangle BDA).
	defer func() {
		e.c = d
		e.acb = -e.bda
	}()

	// At this point, a very common situation is that A,B,C,D are four
	// points on a line such that AB does not overlap CD. (For example,
	// this happens when a line or curve is sampled finely, or when
	// geometry is constructed by computing the union of CellIDs.) Most of
	// the time, we can determine that AB and CD do not intersect using the
	// two outward-facing tangents at A and B (parallel to AB) and testing
	// whether AB and CD are on opposite sides of the plane perpendicular to
	// one of these tangents. This is moderately expensive but still much
	// cheaper than expensiveSign.
	if (e.c.Dot(e.aTangent) > tangentError && d.Dot(e.aTangent) > tangentError) ||
		(e.c.Dot(e.bTangent) > tangentError && d.Dot(e.bTangent) > tangentError) {
		return DoNotCross
	}

	// Otherwise, eliminate the cases where two vertices from different
	// edges are equal. (These cases could be handled in the code below,
	// but we would rather avoid calling expensiveSign if possible.)
	if e.a == e.c || e.a == d || e.b == e.c || e.b == d {
		return MaybeCross
	}

	// Eliminate the cases where an input edge is degenerate. (Note that in
	// most cases, if CD is degenerate then this method is not even called
	// because acb and bda have different signs.)
	if e.a == e.b || e.c == d {
		return DoNotCross
	}

	// Otherwise it's time to break out the big guns.
	if e.acb == Indeterminate {
		e.acb = -expensiveSign(e.a, e.b, e.c)
	}
	if e.bda == Indeterminate {
		e.bda = expensiveSign(e.a, e.b, d)
	}

	if e.bda != e.acb {
		return DoNotCross
	}

	cXd := e.c.Cross(d.Vector)
	cbd := -robustSign(e.c, d, e.b, cXd)
	if cbd != e.acb {
		return DoNotCross
	}
	dac := robustSign(e.c, d, e.a, cXd)
	if dac != e.acb {
		return DoNotCross
	}
	return Cross
}
