// Package exactfloat implements a multiple-precision floating point type
// whose sums, differences and products are always exact. Values have the
// form sign * mantissa * 2^exponent where the mantissa is an arbitrary
// precision non-negative integer.
package exactfloat

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

const (
	maxExp             = 200 * 1000 * 1000
	minExp             = -maxExp
	maxPrec            = 64 << 20
	expNaN             = math.MaxInt32
	expInfinity        = math.MaxInt32 - 1
	expZero            = math.MaxInt32 - 2
	doubleMantissaBits = 53
)

const (
	roundTiesToEven = iota
	roundTiesAwayFromZero
	roundTowardZero
	roundAwayFromZero
	roundTowardPositive
	roundTowardNegative
)

// ExactFloat is an immutable value. The mantissa is never modified once a
// value has been constructed, so copies may share it.
type ExactFloat struct {
	sign  int
	bnExp int
	bn    *big.Int
}

// NewExactFloat returns the exact value of v.
func NewExactFloat(v float64) ExactFloat {
	f := ExactFloat{sign: 1, bn: new(big.Int)}
	if math.Signbit(v) {
		f.sign = -1
	}
	switch {
	case math.IsNaN(v):
		f.setNaN()
	case math.IsInf(v, 0):
		f.setInf(f.sign)
	case v == 0:
		f.setZero(f.sign)
	default:
		frac, exp := math.Frexp(math.Abs(v))
		f.bn.SetUint64(uint64(math.Ldexp(frac, doubleMantissaBits)))
		f.bnExp = exp - doubleMantissaBits
		f.canonicalize()
	}
	return f
}

// Abs returns |a|.
func Abs(a ExactFloat) ExactFloat {
	return a.copyWithSign(1)
}

// SignedZero returns a zero with the sign of sign.
func SignedZero(sign int) ExactFloat {
	f := ExactFloat{}
	f.setZero(sign)
	return f
}

// Infinity returns an infinity with the sign of sign.
func Infinity(sign int) ExactFloat {
	f := ExactFloat{}
	f.setInf(sign)
	return f
}

// NaN returns a quiet NaN.
func NaN() ExactFloat {
	f := ExactFloat{}
	f.setNaN()
	return f
}

// LessThan reports whether f < b. NaN is unordered.
func (f ExactFloat) LessThan(b ExactFloat) bool {
	if f.IsNaN() || b.IsNaN() {
		return false
	}
	// Positive and negative zero are equal.
	if f.IsZero() && b.IsZero() {
		return false
	}
	// Otherwise, anything negative is less than anything positive.
	if f.sign != b.sign {
		return f.sign < b.sign
	}
	// Now we just compare absolute values.
	if f.sign > 0 {
		return f.unsignedLess(b)
	}
	return b.unsignedLess(f)
}

func (f ExactFloat) unsignedLess(b ExactFloat) bool {
	// Handle the zero/infinity cases (NaN has already been done).
	if f.IsInf() || b.IsZero() {
		return false
	}
	if f.IsZero() || b.IsInf() {
		return true
	}
	// If the high-order bit positions differ, we are done.
	if cmp := f.exp() - b.exp(); cmp != 0 {
		return cmp < 0
	}
	// Otherwise shift one of the two values so that they both have
	// the same bnExp and then compare the mantissas.
	if f.bnExp >= b.bnExp {
		return f.scaleAndCompare(b) < 0
	}
	return b.scaleAndCompare(f) > 0
}

// scaleAndCompare compares the mantissas of f and b after shifting f so
// that both share b's exponent. Requires f.bnExp >= b.bnExp.
func (f ExactFloat) scaleAndCompare(b ExactFloat) int {
	tmp := new(big.Int).Lsh(f.bn, uint(f.bnExp-b.bnExp))
	return tmp.Cmp(b.bn)
}

// canonicalize must only be called on freshly constructed values.
func (f *ExactFloat) canonicalize() {
	if !f.isNormal() {
		return
	}

	// Underflow/overflow occurs if exp() is not in [minExp, maxExp].
	// We also convert a zero mantissa to signed zero.
	e := f.exp()
	if e < minExp || f.bn.Sign() == 0 {
		f.setZero(f.sign)
		return
	}
	if e > maxExp {
		f.setInf(f.sign)
		return
	}
	if shift := f.bn.TrailingZeroBits(); shift > 0 {
		f.bn = new(big.Int).Rsh(f.bn, shift)
		f.bnExp += int(shift)
	}
	if f.prec() > maxPrec {
		f.setNaN()
	}
}

// Eq reports whether f == b. NaN is not equal to anything, not even itself.
func (f ExactFloat) Eq(b ExactFloat) bool {
	if f.IsNaN() || b.IsNaN() {
		return false
	}
	// Since canonicalize strips low-order zero bits, all other cases
	// (including non-normal values) require bnExp to be equal.
	if f.bnExp != b.bnExp {
		return false
	}
	// Positive and negative zero are equal.
	if f.IsZero() && b.IsZero() {
		return true
	}
	// Otherwise, the signs and mantissas must match. Note that non-normal
	// values such as infinity have a mantissa of zero.
	if f.sign != b.sign {
		return false
	}
	return f.bn.Cmp(b.bn) == 0
}

// Add returns f + b.
func (f ExactFloat) Add(b ExactFloat) ExactFloat {
	return signedSum(f.sign, f, b.sign, b)
}

// Sub returns f - b.
func (f ExactFloat) Sub(b ExactFloat) ExactFloat {
	return signedSum(f.sign, f, -b.sign, b)
}

// Neg returns -f.
func (f ExactFloat) Neg() ExactFloat {
	return f.copyWithSign(-f.sign)
}

// Mul returns f * b.
func (f ExactFloat) Mul(b ExactFloat) ExactFloat {
	resultSign := f.sign * b.sign
	if !f.isNormal() || !b.isNormal() {
		// Handle zero, inf, and NaN according to IEEE 754-2008.
		switch {
		case f.IsNaN():
			return f
		case b.IsNaN():
			return b
		case f.IsInf():
			// Infinity times zero yields NaN.
			if b.IsZero() {
				return NaN()
			}
			return Infinity(resultSign)
		case b.IsInf():
			if f.IsZero() {
				return NaN()
			}
			return Infinity(resultSign)
		}
		return SignedZero(resultSign)
	}
	r := ExactFloat{
		sign:  resultSign,
		bnExp: f.bnExp + b.bnExp,
		bn:    new(big.Int).Mul(f.bn, b.bn),
	}
	r.canonicalize()
	return r
}

// Ldexp returns f * 2^exp. The result is exact unless it leaves the
// supported exponent range.
func (f ExactFloat) Ldexp(exp int) ExactFloat {
	if !f.isNormal() {
		return f
	}
	r := f
	r.bnExp += exp
	r.canonicalize()
	return r
}

func signedSum(aSign int, a ExactFloat, bSign int, b ExactFloat) ExactFloat {
	if !a.isNormal() || !b.isNormal() {
		// Handle zero, inf, and NaN according to IEEE 754-2008.
		switch {
		case a.IsNaN():
			return a
		case b.IsNaN():
			return b
		case a.IsInf():
			// Adding two infinities with opposite signs yields NaN.
			if b.IsInf() && aSign != bSign {
				return NaN()
			}
			return Infinity(aSign)
		case b.IsInf():
			return Infinity(bSign)
		case a.IsZero():
			if !b.IsZero() {
				return b.copyWithSign(bSign)
			}
			// Adding two zeros with the same sign preserves the sign.
			if aSign == bSign {
				return SignedZero(aSign)
			}
			return SignedZero(1)
		}
		return a.copyWithSign(aSign)
	}
	// Swap the numbers if necessary so that "a" has the larger bnExp.
	if a.bnExp < b.bnExp {
		aSign, bSign = bSign, aSign
		a, b = b, a
	}
	// Shift "a" so that both values have the same bnExp.
	am := new(big.Int).Lsh(a.bn, uint(a.bnExp-b.bnExp))
	r := ExactFloat{bnExp: b.bnExp, bn: new(big.Int)}
	if aSign == bSign {
		r.bn.Add(am, b.bn)
		r.sign = aSign
	} else {
		r.bn.Sub(am, b.bn)
		switch r.bn.Sign() {
		case 0:
			r.sign = 1
		case -1:
			// The magnitude of "b" was larger.
			r.sign = bSign
			r.bn.Neg(r.bn)
		default:
			r.sign = aSign
		}
	}
	r.canonicalize()
	return r
}

// ToDouble returns the float64 nearest to f, rounding ties to even.
func (f ExactFloat) ToDouble() float64 {
	if f.prec() <= doubleMantissaBits {
		return f.toDoubleHelper()
	}
	return f.RoundToMaxPrec(doubleMantissaBits, roundTiesToEven).toDoubleHelper()
}

func (f ExactFloat) toDoubleHelper() float64 {
	sign := float64(f.sign)
	if !f.isNormal() {
		if f.IsZero() {
			return math.Copysign(0, sign)
		}
		if f.IsInf() {
			return math.Inf(f.sign)
		}
		return math.Copysign(math.NaN(), sign)
	}
	return sign * math.Ldexp(float64(f.bn.Uint64()), f.bnExp)
}

// RoundToMaxPrec rounds f to at most maxPrec bits of mantissa.
func (f ExactFloat) RoundToMaxPrec(maxPrec, mode int) ExactFloat {
	// The following test also catches zero, inf, and NaN.
	shift := f.prec() - maxPrec
	if shift <= 0 {
		return f
	}
	// Round by removing the appropriate number of bits from the mantissa.
	// If the value is rounded up to a power of 2 the high-order bit
	// position may increase, but canonicalize then removes at least one
	// zero bit so the result still has prec() <= maxPrec.
	return f.roundToPowerOf2(f.bnExp+shift, mode)
}

func (f ExactFloat) roundToPowerOf2(bitExp, mode int) ExactFloat {
	shift := bitExp - f.bnExp
	if shift <= 0 {
		return f
	}

	// Convert rounding up/down to toward/away from zero, so that we
	// don't need to consider the sign of the number from this point onward.
	switch mode {
	case roundTowardPositive:
		if f.sign > 0 {
			mode = roundAwayFromZero
		} else {
			mode = roundTowardZero
		}
	case roundTowardNegative:
		if f.sign > 0 {
			mode = roundTowardZero
		} else {
			mode = roundAwayFromZero
		}
	}

	// Rounding consists of right-shifting the mantissa by "shift", and then
	// possibly incrementing the result.
	lowZeros := int(f.bn.TrailingZeroBits())
	increment := false
	switch mode {
	case roundTowardZero:
	case roundTiesAwayFromZero:
		// Increment if the highest discarded bit is 1.
		increment = f.bn.Bit(shift-1) != 0
	case roundAwayFromZero:
		// Increment unless all discarded bits are zero.
		increment = lowZeros < shift
	default:
		// Let "w/xyz" denote a mantissa where "w" is the lowest kept
		// bit and "xyz" are the discarded bits. Then using regexp
		// notation:
		//   ./0.*    -> Don't increment (fraction < 1/2)
		//   0/10*    -> Don't increment (fraction = 1/2, kept part even)
		//   1/10*    -> Increment (fraction = 1/2, kept part odd)
		//   ./1.*1.* -> Increment (fraction > 1/2)
		increment = f.bn.Bit(shift-1) != 0 &&
			(f.bn.Bit(shift) != 0 || lowZeros < shift-1)
	}
	r := ExactFloat{
		sign:  f.sign,
		bnExp: f.bnExp + shift,
		bn:    new(big.Int).Rsh(f.bn, uint(shift)),
	}
	if increment {
		r.bn.Add(r.bn, big.NewInt(1))
	}
	r.canonicalize()
	return r
}

// numSignificantDigitsForPrec returns an upper bound on the number of
// decimal digits needed to represent a mantissa of prec bits.
func numSignificantDigitsForPrec(prec int) int {
	// The simplest bound is
	//
	//    d <= 1 + ceil(prec * log10(2))
	//
	// A bound that also uses the exponent is tighter by 0.5 digits on
	// average, but both can be too large by up to 2 digits so we keep the
	// simple one.
	return 1 + int(math.Ceil(float64(prec)*(math.Ln2/math.Ln10)))
}

// Numbers are always formatted with at least this many significant digits.
// This prevents small integers from being formatted in exponential notation
// (e.g. 1024 formatted as 1e+03), and also avoids the confusion of having
// supposedly "high precision" numbers formatted with just 1 or 2 digits
// (e.g. 1/512 == 0.001953125 formatted as 0.002).
const minSignificantDigits = 10

// String formats f with enough digits to represent it exactly.
func (f ExactFloat) String() string {
	maxDigits := numSignificantDigitsForPrec(f.prec())
	if maxDigits < minSignificantDigits {
		maxDigits = minSignificantDigits
	}
	return f.StringWithMaxDigits(maxDigits)
}

// StringWithMaxDigits formats f using '%g' rules with at most maxDigits
// significant digits.
func (f ExactFloat) StringWithMaxDigits(maxDigits int) string {
	if !f.isNormal() {
		switch {
		case f.IsNaN():
			return "nan"
		case f.IsZero():
			if f.sign < 0 {
				return "-0"
			}
			return "0"
		case f.sign < 0:
			return "-inf"
		}
		return "inf"
	}
	digits, exp10 := f.decimalDigits(maxDigits)
	var sb strings.Builder
	if f.sign < 0 {
		sb.WriteByte('-')
	}

	// "exp10" is the base-10 exponent for a mantissa in [0.1, 1), whereas
	// the '%g' rules assume a mantissa in [1.0, 10), hence the adjustments
	// by 1 below.
	if exp10 <= -4 || exp10 > maxDigits {
		// Use exponential format.
		sb.WriteString(digits[:1])
		if len(digits) > 1 {
			sb.WriteByte('.')
			sb.WriteString(digits[1:])
		}
		fmt.Fprintf(&sb, "e%+03d", exp10-1)
		return sb.String()
	}
	// Use fixed format. We split this into two cases depending on
	// whether the integer portion is non-zero or not.
	if exp10 > 0 {
		if exp10 >= len(digits) {
			sb.WriteString(digits)
			sb.WriteString(strings.Repeat("0", exp10-len(digits)))
		} else {
			sb.WriteString(digits[:exp10])
			sb.WriteByte('.')
			sb.WriteString(digits[exp10:])
		}
	} else {
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", -exp10))
		sb.WriteString(digits)
	}
	return sb.String()
}

// decimalDigits returns the significant decimal digits of |f| (at most
// maxDigits, trailing zeros removed) and the exponent exp10 such that
// |f| ~= 0.digits * 10^exp10.
func (f ExactFloat) decimalDigits(maxDigits int) (string, int) {
	// Convert the value to the form (bn * (10 ** bnExp10)) where "bn"
	// is a positive integer.
	var bnExp10 int
	bn := new(big.Int)
	if f.bnExp >= 0 {
		// The easy case: bn = f.bn * (2 ** f.bnExp), bnExp10 = 0.
		bn.Lsh(f.bn, uint(f.bnExp))
	} else {
		// Set bn = f.bn * (5 ** -f.bnExp) and bnExp10 = f.bnExp. This is
		// equivalent to the original value of (f.bn * (2 ** f.bnExp)).
		pow := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-f.bnExp)), nil)
		bn.Mul(f.bn, pow)
		bnExp10 = f.bnExp
	}
	allDigits := bn.String()
	numDigits := len(allDigits)
	digits := allDigits
	if numDigits > maxDigits {
		digits = allDigits[:maxDigits]
		// Standard "printf" formatting rounds ties to an even number.
		// This means that we round up (away from zero) if highest
		// discarded digit is '5' or more, unless all other discarded
		// digits are zero, in which case we round up only if the lowest
		// kept digit is odd.
		odd := allDigits[maxDigits-1]&1 == 1
		rest := strings.IndexAny(allDigits[maxDigits+1:], "123456789") != -1
		if allDigits[maxDigits] >= '5' && (odd || rest || allDigits[maxDigits] > '5') {
			digits = incrementDecimalDigits(digits)
		}
		bnExp10 += numDigits - maxDigits
	}

	// Strip any trailing zeros.
	trimmed := strings.TrimRight(digits, "0")
	bnExp10 += len(digits) - len(trimmed)
	return trimmed, bnExp10 + len(trimmed)
}

// incrementDecimalDigits increments an unsigned integer represented as a
// string of ASCII digits.
func incrementDecimalDigits(digits string) string {
	b := []byte(digits)
	for pos := len(b) - 1; pos >= 0; pos-- {
		if b[pos] < '9' {
			b[pos]++
			return string(b)
		}
		b[pos] = '0'
	}
	return "1" + string(b)
}

func (f ExactFloat) copyWithSign(sign int) ExactFloat {
	r := f
	r.sign = sign
	return r
}

func (f *ExactFloat) setNaN() {
	f.sign = 1
	f.bnExp = expNaN
	f.bn = new(big.Int)
}

func (f *ExactFloat) setZero(sign int) {
	f.sign = sign
	f.bnExp = expZero
	f.bn = new(big.Int)
}

func (f *ExactFloat) setInf(sign int) {
	f.sign = sign
	f.bnExp = expInfinity
	f.bn = new(big.Int)
}

func (f ExactFloat) prec() int {
	if f.bn == nil {
		return 0
	}
	return f.bn.BitLen()
}

func (f ExactFloat) exp() int {
	return f.bnExp + f.bn.BitLen()
}

// Prec returns the number of bits in the mantissa.
func (f ExactFloat) Prec() int { return f.prec() }

// Exp returns the exponent e such that |f| = m * 2^e with 0.5 <= m < 1.
// The result is meaningless for zero, infinity and NaN.
func (f ExactFloat) Exp() int { return f.exp() }

// IsZero reports whether f is positive or negative zero.
func (f ExactFloat) IsZero() bool { return f.bnExp == expZero }

// IsInf reports whether f is an infinity.
func (f ExactFloat) IsInf() bool { return f.bnExp == expInfinity }

// IsNaN reports whether f is NaN.
func (f ExactFloat) IsNaN() bool { return f.bnExp == expNaN }

func (f ExactFloat) isNormal() bool { return f.bnExp < expZero }

// Sgn returns +1 if f is positive, -1 if it is negative, and 0 if it is
// zero or NaN. Unlike the sign bit, Sgn returns 0 for both zeros.
func (f ExactFloat) Sgn() int {
	if f.IsNaN() || f.IsZero() {
		return 0
	}
	return f.sign
}
