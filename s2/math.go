package s2

import "math"

const (
	// dblEpsilon is the distance from 1.0 to the next larger double.
	dblEpsilon = 2.220446049250313e-16
	// dblError is the unit roundoff: half of dblEpsilon.
	dblError = 1.110223024625156e-16

	// underflowSlack bounds the absolute error contributed by subnormal
	// intermediate results in the handful of products and sums that make
	// up a 3x3 determinant.
	underflowSlack = 16 * math.SmallestNonzeroFloat64
)

func maxAbsComponent(p Point) float64 {
	return math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Z)))
}
