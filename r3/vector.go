// Package r3 implements vectors and matrices in three dimensional
// Euclidean space.
package r3

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
)

// Vector is a point or direction in R^3.
type Vector struct {
	X, Y, Z float64
}

// Axis enumerates the three coordinate axes.
type Axis int

const (
	XAxis Axis = iota
	YAxis
	ZAxis
)

func (v Vector) String() string { return fmt.Sprintf("(%0.24f, %0.24f, %0.24f)", v.X, v.Y, v.Z) }

// Add returns v + ov.
func (v Vector) Add(ov Vector) Vector { return Vector{v.X + ov.X, v.Y + ov.Y, v.Z + ov.Z} }

// Sub returns v - ov.
func (v Vector) Sub(ov Vector) Vector { return Vector{v.X - ov.X, v.Y - ov.Y, v.Z - ov.Z} }

// Mul returns v scaled by m.
func (v Vector) Mul(m float64) Vector { return Vector{m * v.X, m * v.Y, m * v.Z} }

// Neg returns -v.
func (v Vector) Neg() Vector { return Vector{-v.X, -v.Y, -v.Z} }

// Abs returns the vector with nonnegative components.
func (v Vector) Abs() Vector { return Vector{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)} }

func (v Vector) Dot(ov Vector) float64 { return v.X*ov.X + v.Y*ov.Y + v.Z*ov.Z }

func (v Vector) Cross(ov Vector) Vector {
	return Vector{
		v.Y*ov.Z - v.Z*ov.Y,
		v.Z*ov.X - v.X*ov.Z,
		v.X*ov.Y - v.Y*ov.X,
	}
}

// Norm returns the vector's norm.
func (v Vector) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Norm2 returns the square of the norm.
func (v Vector) Norm2() float64 { return v.Dot(v) }

// Normalize returns a unit vector in the same direction as v. Vectors whose
// components are very small or very large are first rescaled by a power of
// two so that the result is accurate; the zero vector is returned unchanged.
func (v Vector) Normalize() Vector {
	m := math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
	if m == 0 {
		return v
	}
	if m < 0x1p-500 || m > 0x1p500 {
		_, exp := math.Frexp(m)
		v = Vector{math.Ldexp(v.X, -exp), math.Ldexp(v.Y, -exp), math.Ldexp(v.Z, -exp)}
	}
	return v.Mul(1 / v.Norm())
}

// IsUnit reports whether v is of approximately unit length.
func (v Vector) IsUnit() bool {
	const epsilon = 5e-14
	return math.Abs(v.Norm2()-1) <= epsilon
}

// Distance returns the Euclidean distance between v and ov.
func (v Vector) Distance(ov Vector) float64 { return v.Sub(ov).Norm() }

// Angle returns the angle between v and ov.
func (v Vector) Angle(ov Vector) s1.Angle {
	return s1.Angle(math.Atan2(v.Cross(ov).Norm(), v.Dot(ov))) * s1.Radian
}

// Ortho returns a unit vector that is orthogonal to v.
// Ortho(-v) = -Ortho(v) for all v.
func (v Vector) Ortho() Vector {
	ov := Vector{0.012, 0.0053, 0.00457}
	switch v.LargestComponent() {
	case XAxis:
		ov.Z = 1
	case YAxis:
		ov.X = 1
	default:
		ov.Y = 1
	}
	return v.Cross(ov).Normalize()
}

// LargestComponent returns the axis that represents the largest component
// in this vector.
func (v Vector) LargestComponent() Axis {
	t := v.Abs()
	if t.X > t.Y {
		if t.X > t.Z {
			return XAxis
		}
		return ZAxis
	}
	if t.Y > t.Z {
		return YAxis
	}
	return ZAxis
}

// SmallestComponent returns the axis that represents the smallest component
// in this vector.
func (v Vector) SmallestComponent() Axis {
	t := v.Abs()
	if t.X < t.Y {
		if t.X < t.Z {
			return XAxis
		}
		return ZAxis
	}
	if t.Y < t.Z {
		return YAxis
	}
	return ZAxis
}

// Cmp compares v and ov lexicographically and returns:
//
//	-1 if v <  ov
//	 0 if v == ov
//	+1 if v >  ov
func (v Vector) Cmp(ov Vector) int {
	if v.X != ov.X {
		return cmpFloat(v.X, ov.X)
	}
	if v.Y != ov.Y {
		return cmpFloat(v.Y, ov.Y)
	}
	return cmpFloat(v.Z, ov.Z)
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// LessThan reports whether v is lexicographically smaller than ov.
func (v Vector) LessThan(ov Vector) bool { return v.Cmp(ov) < 0 }

// ApproxEqual reports whether v and ov are equal within a small epsilon.
func (v Vector) ApproxEqual(ov Vector) bool {
	const epsilon = 1e-16
	return math.Abs(v.X-ov.X) < epsilon && math.Abs(v.Y-ov.Y) < epsilon && math.Abs(v.Z-ov.Z) < epsilon
}
