package s2

import (
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/assert"
)

func TestOriginPoint(t *testing.T) {
	assert.True(t, OriginPoint().IsUnit())
	assert.Equal(t, OriginPoint(), PointFromCoords(0, 0, 0))
}

func TestPointCross(t *testing.T) {
	tests := []struct {
		p1x, p1y, p1z, p2x, p2y, p2z, norm float64
	}{
		{1, 0, 0, 1, 0, 0, 1},
		{1, 0, 0, 0, 1, 0, 2},
		{0, 1, 0, 1, 0, 0, 2},
		{1, 2, 3, -4, 5, -6, 2 * math.Sqrt(934)},
	}
	for _, test := range tests {
		p1 := pc(test.p1x, test.p1y, test.p1z)
		p2 := pc(test.p2x, test.p2y, test.p2z)
		result := p1.PointCross(p2)
		if !float64Eq(result.Norm(), test.norm) {
			t.Errorf("|%v ⨯ %v| = %v, want %v", p1, p2, result.Norm(), test.norm)
		}
		if x := result.Dot(p1.Vector); !float64Eq(x, 0) {
			t.Errorf("|(%v ⨯ %v) · %v| = %v, want 0", p1, p2, p1, x)
		}
		if x := result.Dot(p2.Vector); !float64Eq(x, 0) {
			t.Errorf("|(%v ⨯ %v) · %v| = %v, want 0", p1, p2, p2, x)
		}
	}
}

func TestPointCrossProperties(t *testing.T) {
	for i := 0; i < 1000; i++ {
		p, op := randomPoint(), randomPoint()
		if p.Distance(op) < 1e-2 {
			continue
		}
		x := p.PointCross(op)
		assert.NotEqual(t, pc(0, 0, 0), x)

		// The result is orthogonal to both inputs but not normalized.
		n := x.Normalize()
		assert.InDelta(t, 0, n.Dot(p.Vector), 1e-13)
		assert.InDelta(t, 0, n.Dot(op.Vector), 1e-13)

		// Negating either input negates the result exactly.
		assert.Equal(t, x.Neg(), op.PointCross(p).Vector)
		assert.Equal(t, x.Neg(), Point{p.Neg()}.PointCross(op).Vector)
		assert.Equal(t, x.Neg(), p.PointCross(Point{op.Neg()}).Vector)

		// Identical and antipodal inputs still yield a unit orthogonal vector.
		for _, q := range []Point{p, {p.Neg()}} {
			y := p.PointCross(q)
			assert.True(t, y.IsUnit(), "%v.PointCross(%v) = %v", p, q, y)
			assert.InDelta(t, 0, y.Dot(p.Vector), 1e-15)
		}
	}
}

func TestPointDistance(t *testing.T) {
	tests := []struct {
		x1, y1, z1 float64
		x2, y2, z2 float64
		want       float64 // radians
	}{
		{1, 0, 0, 1, 0, 0, 0},
		{1, 0, 0, 0, 1, 0, math.Pi / 2},
		{1, 0, 0, 0, 1, 1, math.Pi / 2},
		{1, 0, 0, -1, 0, 0, math.Pi},
		{1, 2, 3, 2, 3, -1, math.Acos(5.0 / 14)},
	}
	for _, test := range tests {
		p1 := PointFromCoords(test.x1, test.y1, test.z1)
		p2 := PointFromCoords(test.x2, test.y2, test.z2)
		if a := p1.Distance(p2).Radians(); !float64Eq(a, test.want) {
			t.Errorf("%v.Distance(%v) = %v, want %v", p1, p2, a, test.want)
		}
		if a := p2.Distance(p1).Radians(); !float64Eq(a, test.want) {
			t.Errorf("%v.Distance(%v) = %v, want %v", p2, p1, a, test.want)
		}
	}
}

func TestPointApproxEqual(t *testing.T) {
	tests := []struct {
		x1, y1, z1 float64
		x2, y2, z2 float64
		want       bool
	}{
		{1, 0, 0, 1, 0, 0, true},
		{1, 0, 0, 0, 1, 0, false},
		{1, 0, 0, 0, 1, 1, false},
		{1, 0, 0, -1, 0, 0, false},
		{1, 2, 3, 2, 3, -1, false},
		{1, 0, 0, 1 * (1 + epsilon), 0, 0, true},
		{1, 0, 0, 1, 1e-16, 0, true},
		{1, 0, 0, 1, 1e-14, 0, false},
	}
	for _, test := range tests {
		p1 := PointFromCoords(test.x1, test.y1, test.z1)
		p2 := PointFromCoords(test.x2, test.y2, test.z2)
		if got := p1.ApproxEqual(p2); got != test.want {
			t.Errorf("%v.ApproxEqual(%v), got %v want %v", p1, p2, got, test.want)
		}
	}

	p1, p2 := pc(1, 0, 0), PointFromCoords(1, 1e-10, 0)
	assert.False(t, p1.ApproxEqual(p2))
	assert.True(t, p1.ApproxEqualWithin(p2, s1.Angle(1e-9)))
}

func TestChordAngleBetweenPoints(t *testing.T) {
	a, b := pc(1, 0, 0), pc(0, 1, 0)
	assert.Equal(t, s1.ChordAngle(0), ChordAngleBetweenPoints(a, a))
	assert.Equal(t, s1.RightChordAngle, ChordAngleBetweenPoints(a, b))
	assert.Equal(t, s1.StraightChordAngle, ChordAngleBetweenPoints(a, pc(-1, 0, 0)))

	for i := 0; i < 100; i++ {
		x, y := randomPoint(), randomPoint()
		got := ChordAngleBetweenPoints(x, y)
		assert.LessOrEqual(t, float64(got), 4.0)
		assert.InDelta(t, x.Distance(y).Radians(), got.Angle().Radians(), 1e-7)
	}
}

func TestPointFrames(t *testing.T) {
	z := PointFromCoords(0.2, 0.5, -3.3)
	m := FrameFromPoint(z)

	assert.True(t, m.Col(0).IsUnit())
	assert.True(t, m.Col(1).IsUnit())
	assert.True(t, Point{m.Col(0).Cross(m.Col(1))}.ApproxEqualWithin(z, 1e-14), "frame must be right-handed")
	assert.Equal(t, z.Vector, m.Col(2))

	assert.True(t, ToFrame(m, Point{m.Col(0)}).ApproxEqualWithin(pc(1, 0, 0), 1e-14))
	assert.True(t, ToFrame(m, Point{m.Col(1)}).ApproxEqualWithin(pc(0, 1, 0), 1e-14))
	assert.True(t, ToFrame(m, z).ApproxEqualWithin(pc(0, 0, 1), 1e-14))

	assert.True(t, FromFrame(m, pc(1, 0, 0)).ApproxEqualWithin(Point{m.Col(0)}, 1e-14))
	assert.True(t, FromFrame(m, pc(0, 1, 0)).ApproxEqualWithin(Point{m.Col(1)}, 1e-14))
	assert.True(t, FromFrame(m, pc(0, 0, 1)).ApproxEqualWithin(z, 1e-14))

	for i := 0; i < 100; i++ {
		m := randomFrame()
		q := randomPoint()
		assert.True(t, ToFrame(m, FromFrame(m, q)).ApproxEqualWithin(q, 1e-14))
	}
}
