package engine

import (
	"math"

	"github.com/tphakala/go-motion-scaler/internal/curve"
	"github.com/tphakala/go-motion-scaler/internal/fixed"
	"github.com/tphakala/go-motion-scaler/internal/simdops"
)

// Strategy is the numeric back end of a processor.
//
// Type parameter G is the representation of a latched gain. Both strategies
// hand scaled values to the rounding layer as Q16, so the remainder
// discipline is shared.
type Strategy[G any] interface {
	// Name identifies the arithmetic in use.
	Name() string

	// Unity returns a gain of exactly 1.
	Unity() G

	// FrameGain evaluates the curve on the Euclidean magnitude of a frame's
	// accumulated motion and returns output/input. Zero motion yields Unity.
	FrameGain(ax, ay int32) G

	// Scale returns raw * g.
	Scale(raw int32, g G) fixed.Q16

	// ScaleBlock writes raw[i] * g into dst[i] and returns the sum of raw.
	// len(dst) must be at least len(raw).
	ScaleBlock(dst []fixed.Q16, raw []int32, g G) int64

	// Respond maps a single signed delta through the curve by its own
	// magnitude, keeping the sign.
	Respond(raw int32) fixed.Q16
}

// Fixed evaluates the curve in 16.16 fixed point only.
type Fixed struct {
	params curve.Params
}

// NewFixed creates a fixed-point strategy. Params are normalized here.
func NewFixed(params curve.Params) *Fixed {
	return &Fixed{params: params.Normalize()}
}

// Name returns the strategy name.
func (f *Fixed) Name() string {
	return fixedStrategyName
}

// Unity returns 1.0 in Q16.
func (f *Fixed) Unity() fixed.Q16 {
	return fixed.One
}

// FrameGain returns the latched gain for a frame.
func (f *Fixed) FrameGain(ax, ay int32) fixed.Q16 {
	mag := fixed.Hypot(ax, ay)
	if mag == 0 {
		return fixed.One
	}

	out := curve.OutputQ16(mag, f.params)
	if mag == fixed.Max {
		// The magnitude left the Q16 range. The curve saw it saturated;
		// divide by the integer magnitude instead.
		return fixed.Q16(int64(out) / int64(fixed.HypotInt(ax, ay)))
	}

	g := fixed.Div(out, mag)
	if g < 0 {
		return 0
	}
	return g
}

// Scale returns raw * g with saturation.
func (f *Fixed) Scale(raw int32, g fixed.Q16) fixed.Q16 {
	return fixed.MulInt(g, raw)
}

// ScaleBlock scales a block of samples.
func (f *Fixed) ScaleBlock(dst []fixed.Q16, raw []int32, g fixed.Q16) int64 {
	var total int64
	for i, v := range raw {
		dst[i] = f.Scale(v, g)
		total += int64(v)
	}
	return total
}

// Respond maps one delta through the curve.
func (f *Fixed) Respond(raw int32) fixed.Q16 {
	mag := fixed.FromInt(raw)
	if mag < 0 {
		mag = -mag
	}

	out := curve.OutputQ16(mag, f.params)
	if raw < 0 {
		return -out
	}
	return out
}

// Float evaluates the curve in float64 and hands Q16 values to the
// rounding layer. Block scaling goes through simdops.
type Float struct {
	params curve.Params
	ops    *simdops.Ops

	// Reused by ScaleBlock.
	in  []float64
	out []float64
}

// NewFloat creates a floating-point strategy. enableSIMD selects the
// vectorised block path.
func NewFloat(params curve.Params, enableSIMD bool) *Float {
	return &Float{
		params: params.Normalize(),
		ops:    simdops.For(enableSIMD),
		in:     make([]float64, 0, defaultBlockCapacity),
		out:    make([]float64, 0, defaultBlockCapacity),
	}
}

// Name returns the strategy name.
func (f *Float) Name() string {
	return floatStrategyName
}

// Unity returns 1.0.
func (f *Float) Unity() float64 {
	return 1
}

// FrameGain returns the latched gain for a frame.
func (f *Float) FrameGain(ax, ay int32) float64 {
	mag := math.Hypot(float64(ax), float64(ay))
	if mag == 0 {
		return 1
	}

	g := curve.Output(min(mag, maxCurveInput), f.params) / mag
	switch {
	case math.IsNaN(g) || g < 0:
		return 0
	case g > fixed.Max.Float():
		return fixed.Max.Float()
	}
	return g
}

// Scale returns raw * g as Q16.
func (f *Float) Scale(raw int32, g float64) fixed.Q16 {
	return fixed.FromFloat(float64(raw) * g)
}

// ScaleBlock scales a block of samples with the vector table.
func (f *Float) ScaleBlock(dst []fixed.Q16, raw []int32, g float64) int64 {
	n := len(raw)
	if cap(f.in) < n {
		f.in = make([]float64, n)
		f.out = make([]float64, n)
	}
	in := f.in[:n]
	out := f.out[:n]

	for i, v := range raw {
		in[i] = float64(v)
	}
	f.ops.Scale(out, in, g)

	for i := range out {
		dst[i] = fixed.FromFloat(out[i])
	}
	// Integer-valued float64 sums are exact well beyond int32 block totals.
	return int64(f.ops.Sum(in))
}

// Respond maps one delta through the curve.
func (f *Float) Respond(raw int32) fixed.Q16 {
	out := curve.Output(min(math.Abs(float64(raw)), maxCurveInput), f.params)
	if raw < 0 {
		out = -out
	}
	return fixed.FromFloat(out)
}

// SIMDInfo reports the vector table in use.
func (f *Float) SIMDInfo() string {
	return f.ops.Name
}

// Ensure implementations satisfy the interface
var (
	_ Strategy[fixed.Q16] = (*Fixed)(nil)
	_ Strategy[float64]   = (*Float)(nil)
)
