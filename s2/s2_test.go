package s2

import (
	"math"
	"math/rand"

	geor3 "github.com/golang/geo/r3"
	geos2 "github.com/golang/geo/s2"

	"github.com/missinglink/s2js-sub001/r3"
)

// epsilon is a small number that represents a reasonable level of noise
// between two values that can be considered to be equal.
const epsilon = 1e-14

// pc returns the raw, unnormalized point (x, y, z).
func pc(x, y, z float64) Point { return Point{r3.Vector{X: x, Y: y, Z: z}} }

// float64Eq reports whether the two values are within the default epsilon.
func float64Eq(x, y float64) bool { return float64Near(x, y, epsilon) }

// float64Near reports whether the two values are within the given epsilon.
func float64Near(x, y, ε float64) bool {
	return math.Abs(x-y) <= ε
}

// randomFloat64 returns a uniformly distributed value in the range [min, max).
func randomFloat64Range(min, max float64) float64 {
	return min + (max-min)*rand.Float64()
}

// randomPoint returns a random unit vector.
func randomPoint() Point {
	return PointFromCoords(randomFloat64Range(-1, 1),
		randomFloat64Range(-1, 1), randomFloat64Range(-1, 1))
}

// randomFrame returns a right-handed coordinate frame using a random
// point as the z-axis.
func randomFrame() r3.Matrix {
	return FrameFromPoint(randomPoint())
}

// oneIn returns true with a probability of 1/n.
func oneIn(n int) bool { return rand.Intn(n) == 0 }

// geoPoint converts p to the golang/geo representation used as a reference
// implementation in the property tests.
func geoPoint(p Point) geos2.Point {
	return geos2.Point{Vector: geor3.Vector{X: p.X, Y: p.Y, Z: p.Z}}
}

func fromGeoPoint(p geos2.Point) Point {
	return pc(p.X, p.Y, p.Z)
}

// geoCrossing maps a golang/geo crossing result onto ours by name, the
// numeric values of the two enumerations differ.
func geoCrossing(c geos2.Crossing) Crossing {
	switch c {
	case geos2.Cross:
		return Cross
	case geos2.MaybeCross:
		return MaybeCross
	}
	return DoNotCross
}
