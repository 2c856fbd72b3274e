package curve

// Parameter encoding constants.
const (
	// tenthsPerUnit converts ExponentTenths to an exponent offset:
	// e = 1 + ExponentTenths/10.
	tenthsPerUnit = 10

	// baseExponent is the exponent when ExponentTenths is zero.
	baseExponent = 1

	// milliPerUnit converts CoeffMilli to a coefficient (100 => 0.1).
	milliPerUnit = 1000
)

// Parameter limits. Values outside are clamped by Normalize so that every
// magnitude the curve sees stays representable in Q16.
const (
	// MaxParam is the largest integer representable in Q16 with the
	// saturation headroom (see fixed.Max).
	MaxParam = 16383

	minHalfInput = 1
	minMaxOutput = 1
)
