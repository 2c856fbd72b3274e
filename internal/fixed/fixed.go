// Package fixed implements saturating 16.16 fixed-point arithmetic.
//
// Every function is pure and total: overflow clamps to [Min, Max] instead of
// wrapping, and division by zero yields zero. Nothing here panics.
package fixed

import (
	"math"
)

// Q16 is a signed 16.16 fixed-point number stored in an int32.
type Q16 int32

// saturate narrows a widened intermediate to the Q16 range.
func saturate(v int64) Q16 {
	if v > int64(Max) {
		return Max
	}
	if v < int64(Min) {
		return Min
	}
	return Q16(v)
}

// FromInt converts an integer to Q16, saturating outside ±16383.
func FromInt(v int32) Q16 {
	return saturate(int64(v) << FracBits)
}

// FromFloat converts a float to Q16 with rounding to nearest.
// Infinities and NaN are treated as fully saturated.
func FromFloat(f float64) Q16 {
	switch {
	case math.IsNaN(f), math.IsInf(f, 1):
		return Max
	case math.IsInf(f, -1):
		return Min
	}

	scaled := math.Round(f * float64(One))
	if scaled >= float64(Max) {
		return Max
	}
	if scaled <= float64(Min) {
		return Min
	}
	return Q16(scaled)
}

// Float returns q as a float64.
func (q Q16) Float() float64 {
	return float64(q) / float64(One)
}

// AddSat adds two Q16 values with saturation.
func AddSat(a, b Q16) Q16 {
	return saturate(int64(a) + int64(b))
}

// MulSat multiplies two Q16 values. The product is formed in 64 bits and
// clamped to [Min, Max], so it never wraps.
func MulSat(a, b Q16) Q16 {
	return saturate((int64(a) * int64(b)) >> FracBits)
}

// MulInt multiplies q by an integer. The product is exact until it
// saturates.
func MulInt(q Q16, v int32) Q16 {
	return saturate(int64(q) * int64(v))
}

// Square returns q² as a widened Q16 value without saturating. The result
// fits in an int64 for every q.
func Square(q Q16) int64 {
	return (int64(q) * int64(q)) >> FracBits
}

// Div divides a by b. It fails closed: a zero divisor returns 0.
func Div(a, b Q16) Q16 {
	if b == 0 {
		return 0
	}
	return saturate((int64(a) << FracBits) / int64(b))
}

// PowIntSat raises base to a non-negative integer power by squaring,
// saturating at every step. exp <= 0 returns One.
func PowIntSat(base Q16, exp int) Q16 {
	result := One
	for exp > 0 {
		if exp&1 == 1 {
			result = MulSat(result, base)
		}
		exp >>= 1
		if exp > 0 {
			base = MulSat(base, base)
		}
	}
	return result
}

// Trunc returns the integer part of q, truncated toward zero.
func (q Q16) Trunc() int32 {
	if q < 0 {
		return -int32((-q) >> FracBits)
	}
	return int32(q >> FracBits)
}

// Round returns q rounded to the nearest integer, ties away from zero.
func (q Q16) Round() int32 {
	if q < 0 {
		return -int32((-q + Half) >> FracBits)
	}
	return int32((q + Half) >> FracBits)
}

// AddSat32 adds two int32 values, clamping at the int32 limits.
func AddSat32(a, b int32) int32 {
	return Clamp32(int64(a) + int64(b))
}

// Clamp32 narrows v to the int32 range.
func Clamp32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

// Hypot returns sqrt(x² + y²) in Q16 using integer arithmetic only.
// Below 65536 counts the result carries full fractional precision;
// anything beyond Max saturates.
func Hypot(x, y int32) Q16 {
	ax := abs64(x)
	ay := abs64(y)
	sum := ax*ax + ay*ay

	if sum < exactHypotLimit {
		return saturate(int64(isqrt(sum << (2 * FracBits))))
	}
	return saturate(int64(isqrt(sum)) << FracBits)
}

// HypotInt returns floor(sqrt(x² + y²)) as an integer. Unlike Hypot it never
// saturates.
func HypotInt(x, y int32) uint64 {
	ax := abs64(x)
	ay := abs64(y)
	return isqrt(ax*ax + ay*ay)
}

func abs64(v int32) uint64 {
	if v < 0 {
		return uint64(-int64(v))
	}
	return uint64(v)
}

// isqrt returns floor(sqrt(n)) using the digit-by-digit method.
func isqrt(n uint64) uint64 {
	var res uint64
	bit := uint64(isqrtTopBit)
	for bit > n {
		bit >>= 2
	}
	for bit != 0 {
		if n >= res+bit {
			n -= res + bit
			res = (res >> 1) + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	return res
}
