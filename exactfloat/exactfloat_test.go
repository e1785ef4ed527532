package exactfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSign(t *testing.T) {
	tests := []struct {
		v    float64
		want int
	}{
		{0, 1},
		{1, 1},
		{2, 1},
		{-1, -1},
		{1.2345, 1},
		{-1.2345, -1},
		{math.Copysign(0, -1), -1},
	}
	for _, test := range tests {
		f := NewExactFloat(test.v)
		assert.Equal(t, test.want, f.sign, "sign of %v", test.v)
	}
}

func TestSgn(t *testing.T) {
	tests := []struct {
		f    ExactFloat
		want int
	}{
		{NewExactFloat(0), 0},
		{SignedZero(-1), 0},
		{NaN(), 0},
		{NewExactFloat(3), 1},
		{NewExactFloat(-3), -1},
		{Infinity(-1), -1},
		{Infinity(1), 1},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.f.Sgn(), "%v.Sgn()", test.f)
	}
}

func TestSignedZeroAndInfinity(t *testing.T) {
	tests := []struct {
		f    ExactFloat
		want float64
	}{
		{SignedZero(1), math.Copysign(0, 1)},
		{SignedZero(-1), math.Copysign(0, -1)},
		{Infinity(1), math.Inf(1)},
		{Infinity(-1), math.Inf(-1)},
	}
	for _, test := range tests {
		got := test.f.ToDouble()
		assert.Equal(t, math.Signbit(test.want), math.Signbit(got), "sign of %v", test.f)
		assert.Equal(t, math.IsInf(test.want, 0), test.f.IsInf())
		assert.Equal(t, test.want == 0, test.f.IsZero())
	}
	assert.True(t, math.IsNaN(NaN().ToDouble()))
}

func TestToDouble(t *testing.T) {
	tests := []struct {
		f    ExactFloat
		want float64
	}{
		{NewExactFloat(0.0), 0.0},
		{NewExactFloat(math.Copysign(0, -1)), math.Copysign(0, -1)},
		{NewExactFloat(1.0), 1.0},
		{NewExactFloat(-1.0), -1.0},
		{NewExactFloat(2.5), 2.5},
		{NewExactFloat(-2.5), -2.5},
		{NewExactFloat(math.SmallestNonzeroFloat64), math.SmallestNonzeroFloat64},
		{NewExactFloat(math.MaxFloat64), math.MaxFloat64},
		{NewExactFloat(12345.6789), 12345.6789},
		{NewExactFloat(-12345.6789), -12345.6789},
	}
	for _, test := range tests {
		got := test.f.ToDouble()
		assert.Equal(t, test.want, got, "%v.ToDouble()", test.f)
		assert.Equal(t, math.Signbit(test.want), math.Signbit(got))
	}
}

func TestToDoubleRounding(t *testing.T) {
	one := NewExactFloat(1)
	tiny := NewExactFloat(math.Ldexp(1, -53))

	// 1 + 2^-53 is exactly halfway between 1 and the next double; ties go to
	// the even mantissa.
	assert.Equal(t, 1.0, one.Add(tiny).ToDouble())

	// Anything beyond the halfway point rounds up.
	above := one.Add(tiny).Add(NewExactFloat(math.Ldexp(1, -80)))
	assert.Equal(t, 1+math.Ldexp(1, -52), above.ToDouble())

	// (1 + 2^-52) + 2^-53 is halfway with an odd kept mantissa.
	odd := NewExactFloat(1 + math.Ldexp(1, -52)).Add(tiny)
	assert.Equal(t, 1+math.Ldexp(1, -51), odd.ToDouble())
}

func TestAdd(t *testing.T) {
	tests := []struct {
		a    ExactFloat
		b    ExactFloat
		want float64
	}{
		{NewExactFloat(0), NewExactFloat(0), 0},
		{NewExactFloat(1), NewExactFloat(-1), 0},
		{NewExactFloat(5), NewExactFloat(5), 10},
		{NewExactFloat(1.25), NewExactFloat(1.25), 2.5},
		{NewExactFloat(1.25), NewExactFloat(-0.25), 1.0},
		{NewExactFloat(math.MaxFloat64), NewExactFloat(-math.MaxFloat64), 0},
	}
	for _, test := range tests {
		got := test.a.Add(test.b).ToDouble()
		assert.Equal(t, test.want, got, "%v.Add(%v)", test.a, test.b)
	}
}

func TestAddIsExact(t *testing.T) {
	// 1e30 + 1 - 1e30 loses the 1 in double arithmetic.
	big := NewExactFloat(1e30)
	got := big.Add(NewExactFloat(1)).Sub(big)
	assert.Equal(t, 1.0, got.ToDouble())
}

func TestAddSpecialValues(t *testing.T) {
	negZero := SignedZero(-1)
	assert.Equal(t, -1, negZero.Add(negZero).sign)
	assert.Equal(t, 1, negZero.Add(SignedZero(1)).sign)
	assert.True(t, Infinity(1).Add(Infinity(-1)).IsNaN())
	assert.True(t, Infinity(1).Add(NewExactFloat(5)).IsInf())
	assert.True(t, NaN().Add(NewExactFloat(5)).IsNaN())
	assert.Equal(t, -7.0, negZero.Sub(NewExactFloat(7)).ToDouble())
}

func TestSub(t *testing.T) {
	tests := []struct {
		a    ExactFloat
		b    ExactFloat
		want float64
	}{
		{NewExactFloat(0), NewExactFloat(0), 0},
		{NewExactFloat(1), NewExactFloat(2), -1},
		{NewExactFloat(1), NewExactFloat(-1), 2},
		{NewExactFloat(5), NewExactFloat(3), 2},
		{NewExactFloat(1.25), NewExactFloat(.25), 1},
		{NewExactFloat(1.25), NewExactFloat(1), .25},
		{NewExactFloat(1), NewExactFloat(0), 1},
		{NewExactFloat(math.MaxFloat64), NewExactFloat(math.MaxFloat64), 0},
	}
	for _, test := range tests {
		got := test.a.Sub(test.b).ToDouble()
		assert.Equal(t, test.want, got, "%v.Sub(%v)", test.a, test.b)
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		a    ExactFloat
		b    ExactFloat
		want ExactFloat
	}{
		{NewExactFloat(0), NewExactFloat(0), NewExactFloat(0)},
		{NewExactFloat(1.25), NewExactFloat(1.25), NewExactFloat(1.5625)},
		{NewExactFloat(10), NewExactFloat(10), NewExactFloat(100)},
		{NewExactFloat(-2), NewExactFloat(2), NewExactFloat(-4)},
		{NewExactFloat(.5), NewExactFloat(.5), NewExactFloat(.25)},
		{NewExactFloat(-1), NewExactFloat(-1), NewExactFloat(1)},
	}
	for _, test := range tests {
		got := test.a.Mul(test.b)
		assert.True(t, got.Eq(test.want), "%s * %s = %s, want %s", test.a, test.b, got, test.want)
	}
	assert.True(t, Infinity(1).Mul(SignedZero(1)).IsNaN())
	assert.Equal(t, -1, Infinity(1).Mul(NewExactFloat(-2)).sign)
}

func TestMulDoesNotModifyOperands(t *testing.T) {
	a := NewExactFloat(3)
	b := a.Mul(a)
	c := b.Add(a)
	assert.Equal(t, 3.0, a.ToDouble())
	assert.Equal(t, 9.0, b.ToDouble())
	assert.Equal(t, 12.0, c.ToDouble())
}

func TestLdexp(t *testing.T) {
	assert.Equal(t, 12.0, NewExactFloat(3).Ldexp(2).ToDouble())
	assert.Equal(t, 0.75, NewExactFloat(3).Ldexp(-2).ToDouble())
	assert.True(t, NewExactFloat(1).Ldexp(maxExp+10).IsInf())
	assert.True(t, NewExactFloat(1).Ldexp(minExp-10).IsZero())
	assert.True(t, SignedZero(1).Ldexp(5).IsZero())
}

func TestLargeAddEqual(t *testing.T) {
	a := NewExactFloat(math.MaxFloat64)
	c := a.Add(a)
	assert.True(t, c.Eq(a.Ldexp(1)), "%v + %v = %v", a, a, c)
	assert.True(t, math.IsInf(c.ToDouble(), 1))
}

func TestLargeMul(t *testing.T) {
	a := NewExactFloat(math.MaxFloat64)
	assert.Equal(t, "3.23170060713110001248980312245796e+616", a.Mul(a).String())
}

func TestEq(t *testing.T) {
	tests := []struct {
		a    ExactFloat
		b    ExactFloat
		want bool
	}{
		{NewExactFloat(math.NaN()), NewExactFloat(math.NaN()), false},
		{NewExactFloat(0), NewExactFloat(math.Copysign(0, -1)), true},
		{NewExactFloat(-1), NewExactFloat(1), false},
		{NewExactFloat(math.SmallestNonzeroFloat64), NewExactFloat(math.SmallestNonzeroFloat64), true},
		{NewExactFloat(math.MaxFloat64), NewExactFloat(math.MaxFloat64), true},
		{NewExactFloat(2), NewExactFloat(1).Add(NewExactFloat(1)), true},
		{Infinity(1), Infinity(-1), false},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.a.Eq(test.b), "%v.Eq(%v)", test.a, test.b)
	}
}

func TestLessThan(t *testing.T) {
	tests := []struct {
		a, b ExactFloat
		want bool
	}{
		{NewExactFloat(1), NewExactFloat(2), true},
		{NewExactFloat(2), NewExactFloat(1), false},
		{NewExactFloat(-2), NewExactFloat(-1), true},
		{NewExactFloat(-1), NewExactFloat(1), true},
		{NewExactFloat(0), SignedZero(-1), false},
		{SignedZero(-1), NewExactFloat(0), false},
		{NewExactFloat(1), Infinity(1), true},
		{Infinity(-1), NewExactFloat(-1e300), true},
		{NaN(), NewExactFloat(1), false},
		{NewExactFloat(1), NaN(), false},
		{NewExactFloat(3), NewExactFloat(3.5), true},
		{NewExactFloat(1.5), NewExactFloat(1.25), false},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.a.LessThan(test.b), "%v < %v", test.a, test.b)
	}
}

func TestRoundToMaxPrec(t *testing.T) {
	// 0b1011 = 11.
	v := NewExactFloat(11)
	tests := []struct {
		mode int
		prec int
		want float64
	}{
		{roundTiesToEven, 3, 12},
		{roundTiesToEven, 2, 12},
		{roundTowardZero, 3, 10},
		{roundAwayFromZero, 3, 12},
		{roundTiesAwayFromZero, 3, 12},
		{roundTowardPositive, 2, 12},
		{roundTowardNegative, 2, 8},
		{roundTiesToEven, 4, 11},
	}
	for _, test := range tests {
		got := v.RoundToMaxPrec(test.prec, test.mode)
		assert.Equal(t, test.want, got.ToDouble(), "mode %d prec %d", test.mode, test.prec)
		assert.LessOrEqual(t, got.Prec(), test.prec)
	}
	// Ties to even: 10 = 0b1010 rounds to 8 with two bits, 14 = 0b1110 to 16.
	assert.Equal(t, 8.0, NewExactFloat(10).RoundToMaxPrec(2, roundTiesToEven).ToDouble())
	assert.Equal(t, 16.0, NewExactFloat(14).RoundToMaxPrec(2, roundTiesToEven).ToDouble())
	assert.Equal(t, -8.0, NewExactFloat(-11).RoundToMaxPrec(2, roundTowardPositive).ToDouble())
}

func TestPrecAndExp(t *testing.T) {
	f := NewExactFloat(12)
	require.Equal(t, 2, f.Prec())
	assert.Equal(t, 4, f.Exp())
	assert.Equal(t, 1, NewExactFloat(0.5).Prec())
	assert.Equal(t, 0, NewExactFloat(0.5).Exp())
}

func TestString(t *testing.T) {
	tests := []struct {
		a    ExactFloat
		want string
	}{
		{NewExactFloat(math.NaN()), "nan"},
		{NewExactFloat(math.Inf(1)), "inf"},
		{NewExactFloat(math.Inf(-1)), "-inf"},
		{NewExactFloat(0), "0"},
		{NewExactFloat(math.Copysign(0, -1)), "-0"},
		{NewExactFloat(1.0), "1"},
		{NewExactFloat(-1.5), "-1.5"},
		{NewExactFloat(100), "100"},
		{NewExactFloat(1024), "1024"},
		{NewExactFloat(1. / 512), "0.001953125"},
		{NewExactFloat(1.23456789), "1.2345678899999999"},
		{NewExactFloat(math.SmallestNonzeroFloat64), "4.940656458e-324"},
		{NewExactFloat(math.MaxFloat64), "1.7976931348623157e+308"},
		{NewExactFloat(math.MaxFloat64).Add(NewExactFloat(math.MaxFloat64)), "3.5953862697246314e+308"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.a.String())
	}
}

func TestAbsNeg(t *testing.T) {
	assert.Equal(t, 2.5, Abs(NewExactFloat(-2.5)).ToDouble())
	assert.Equal(t, -2.5, NewExactFloat(2.5).Neg().ToDouble())
	assert.Equal(t, 2.5, NewExactFloat(-2.5).Neg().ToDouble())
}

func BenchmarkMul(b *testing.B) {
	x := NewExactFloat(1.0 / 3)
	y := NewExactFloat(2.0 / 7)
	for i := 0; i < b.N; i++ {
		x.Mul(y).Add(x).Sub(y)
	}
}
