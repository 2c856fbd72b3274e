package fixed

import "math"

// Q16 format constants.
const (
	// FracBits is the number of fractional bits in a Q16 value.
	FracBits = 16

	// One is 1.0 in Q16.
	One Q16 = 1 << FracBits

	// Half is 0.5 in Q16. Used for round-half-away-from-zero.
	Half Q16 = 1 << (FracBits - 1)

	// Max is the saturation ceiling. It sits one bit below the container
	// maximum so that adding two in-range values can never wrap.
	Max Q16 = math.MaxInt32 >> 1

	// Min is the negative saturation floor (symmetric with Max).
	Min Q16 = -Max
)

// Square root constants.
const (
	// exactHypotLimit bounds x²+y² for which sqrt((x²+y²) << 32) fits in
	// a uint64 and the full 16 fractional bits can be recovered.
	exactHypotLimit = 1 << 32

	// isqrtTopBit is the highest even bit of a uint64, the starting probe
	// for the digit-by-digit square root.
	isqrtTopBit = 1 << 62
)
