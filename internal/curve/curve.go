// Package curve implements the magnitude-response curve used by the scaler.
//
// The sigmoid shape maps an input magnitude m to
//
//	out(m) = MaxOutput * r^e / (1 + r^e),   r = m / HalfInput
//
// where e = 1 + ExponentTenths/10. With e = 1 the curve passes through
// (HalfInput, MaxOutput/2). Both numerator and denominator grow together, so
// the fraction stays inside [0, 1) under fixed-point rounding error.
//
// The quadratic shape is the older law out(m) = coeff * m², coeff =
// CoeffMilli/1000, clamped to MaxOutput.
//
// Each shape is available in 16.16 fixed point (FractionQ16, OutputQ16) and in
// float64 (Fraction, Output). The two forms agree to within a few counts of
// 2^-16 per unit of MaxOutput.
package curve

import (
	"math"

	"github.com/tphakala/go-motion-scaler/internal/fixed"
)

// Shape selects the response law.
type Shape int

const (
	// ShapeSigmoid is the r^e/(1+r^e) S-curve.
	ShapeSigmoid Shape = iota

	// ShapeQuadratic is the legacy coeff*m² power law.
	ShapeQuadratic
)

// Params holds the curve parameters.
type Params struct {
	Shape          Shape
	MaxOutput      int32
	HalfInput      int32
	ExponentTenths int32
	CoeffMilli     int32
}

// Normalize returns p with degenerate values replaced by their fallbacks:
// HalfInput <= 0 becomes 1, negative ExponentTenths and CoeffMilli become 0,
// and integer parameters are clamped into the Q16 range.
func (p Params) Normalize() Params {
	if p.HalfInput < minHalfInput {
		p.HalfInput = minHalfInput
	}
	if p.HalfInput > MaxParam {
		p.HalfInput = MaxParam
	}
	if p.MaxOutput < minMaxOutput {
		p.MaxOutput = minMaxOutput
	}
	if p.MaxOutput > MaxParam {
		p.MaxOutput = MaxParam
	}
	if p.ExponentTenths < 0 {
		p.ExponentTenths = 0
	}
	if p.CoeffMilli < 0 {
		p.CoeffMilli = 0
	}
	if p.CoeffMilli > MaxParam {
		p.CoeffMilli = MaxParam
	}
	return p
}

// Exponent returns the effective exponent e = 1 + ExponentTenths/10.
func (p Params) Exponent() float64 {
	return baseExponent + float64(p.ExponentTenths)/tenthsPerUnit
}

// exponentParts splits e into an integer part, handled by squaring, and a
// fractional part in [0, 1) that needs a real-valued power.
func (p Params) exponentParts() (whole int, frac float64) {
	whole = baseExponent + int(p.ExponentTenths/tenthsPerUnit)
	frac = float64(p.ExponentTenths%tenthsPerUnit) / tenthsPerUnit
	return whole, frac
}

// FractionQ16 returns the response fraction for magnitude m in [0, 1).
// p must be normalized.
func FractionQ16(m fixed.Q16, p Params) fixed.Q16 {
	if m <= 0 {
		return 0
	}

	r := fixed.Div(m, fixed.FromInt(p.HalfInput))
	whole, frac := p.exponentParts()

	rp := fixed.PowIntSat(r, whole)
	if frac > 0 && rp < fixed.Max {
		// FromFloat maps a non-finite power to Max, i.e. fully saturated.
		rp = fixed.MulSat(rp, fixed.FromFloat(math.Pow(r.Float(), frac)))
	}

	// One + rp uses the container headroom above Max and cannot wrap.
	// A saturating add here would pin the fraction to exactly 1.
	return fixed.Div(rp, fixed.One+rp)
}

// OutputQ16 returns the output magnitude for input magnitude m.
// p must be normalized.
func OutputQ16(m fixed.Q16, p Params) fixed.Q16 {
	limit := fixed.FromInt(p.MaxOutput)

	switch p.Shape {
	case ShapeQuadratic:
		if m <= 0 || p.CoeffMilli == 0 {
			return 0
		}
		// m² is kept wide. Compare against limit/coeff before multiplying
		// so the product cannot overflow, then scale by the integer
		// coefficient before dividing so 0.1 * 10² stays exact.
		sq := fixed.Square(m)
		coeff := int64(p.CoeffMilli)
		if sq > int64(limit)*milliPerUnit/coeff {
			return limit
		}
		return fixed.Q16(min(sq*coeff/milliPerUnit, int64(limit)))
	default:
		return fixed.MulSat(limit, FractionQ16(m, p))
	}
}

// Fraction is the float64 form of FractionQ16.
func Fraction(m float64, p Params) float64 {
	if !(m > 0) {
		return 0
	}

	rp := math.Pow(m/float64(p.HalfInput), p.Exponent())
	if math.IsInf(rp, 0) || math.IsNaN(rp) {
		return 1
	}
	return rp / (1 + rp)
}

// Output is the float64 form of OutputQ16.
func Output(m float64, p Params) float64 {
	limit := float64(p.MaxOutput)

	switch p.Shape {
	case ShapeQuadratic:
		if !(m > 0) {
			return 0
		}
		coeff := float64(p.CoeffMilli) / milliPerUnit
		return math.Min(coeff*m*m, limit)
	default:
		return limit * Fraction(m, p)
	}
}
