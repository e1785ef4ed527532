package r3

import (
	"fmt"
	"math"

	"github.com/missinglink/s2js-sub001/exactfloat"
)

// PreciseVector is a vector whose components are exact. Sums, differences,
// products, dot and cross products of precise vectors carry no rounding
// error.
type PreciseVector struct {
	X, Y, Z exactfloat.ExactFloat
}

// PreciseVectorFromVector returns the exact copy of v.
func PreciseVectorFromVector(v Vector) PreciseVector {
	return NewPreciseVector(v.X, v.Y, v.Z)
}

// NewPreciseVector builds a precise vector from the given coordinates.
func NewPreciseVector(x, y, z float64) PreciseVector {
	return PreciseVector{
		X: exactfloat.NewExactFloat(x),
		Y: exactfloat.NewExactFloat(y),
		Z: exactfloat.NewExactFloat(z),
	}
}

// Vector rounds each component to the nearest double.
func (v PreciseVector) Vector() Vector {
	return Vector{v.X.ToDouble(), v.Y.ToDouble(), v.Z.ToDouble()}
}

// ScaledVector returns a double precision vector pointing in the same
// direction as v. All components are scaled by the same power of two before
// rounding so that the result neither overflows nor underflows to zero when
// v is non-zero.
func (v PreciseVector) ScaledVector() Vector {
	exp := math.MinInt32
	for _, c := range []exactfloat.ExactFloat{v.X, v.Y, v.Z} {
		if c.Sgn() != 0 && c.Exp() > exp {
			exp = c.Exp()
		}
	}
	if exp == math.MinInt32 {
		return Vector{}
	}
	return Vector{
		v.X.Ldexp(-exp).ToDouble(),
		v.Y.Ldexp(-exp).ToDouble(),
		v.Z.Ldexp(-exp).ToDouble(),
	}
}

func (v PreciseVector) Equal(ov PreciseVector) bool {
	return v.X.Eq(ov.X) && v.Y.Eq(ov.Y) && v.Z.Eq(ov.Z)
}

// IsZero reports whether all components are zero.
func (v PreciseVector) IsZero() bool {
	return v.X.Sgn() == 0 && v.Y.Sgn() == 0 && v.Z.Sgn() == 0
}

func (v PreciseVector) Norm2() exactfloat.ExactFloat { return v.Dot(v) }

func (v PreciseVector) Add(ov PreciseVector) PreciseVector {
	return PreciseVector{v.X.Add(ov.X), v.Y.Add(ov.Y), v.Z.Add(ov.Z)}
}

func (v PreciseVector) Sub(ov PreciseVector) PreciseVector {
	return PreciseVector{v.X.Sub(ov.X), v.Y.Sub(ov.Y), v.Z.Sub(ov.Z)}
}

// Mul returns v scaled by f.
func (v PreciseVector) Mul(f exactfloat.ExactFloat) PreciseVector {
	return PreciseVector{v.X.Mul(f), v.Y.Mul(f), v.Z.Mul(f)}
}

// MulByFloat64 returns v scaled by f.
func (v PreciseVector) MulByFloat64(f float64) PreciseVector {
	return v.Mul(exactfloat.NewExactFloat(f))
}

func (v PreciseVector) Dot(ov PreciseVector) exactfloat.ExactFloat {
	return v.X.Mul(ov.X).Add(v.Y.Mul(ov.Y)).Add(v.Z.Mul(ov.Z))
}

func (v PreciseVector) Cross(ov PreciseVector) PreciseVector {
	return PreciseVector{
		v.Y.Mul(ov.Z).Sub(v.Z.Mul(ov.Y)),
		v.Z.Mul(ov.X).Sub(v.X.Mul(ov.Z)),
		v.X.Mul(ov.Y).Sub(v.Y.Mul(ov.X)),
	}
}

func (v PreciseVector) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
