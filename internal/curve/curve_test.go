package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-motion-scaler/internal/fixed"
	"github.com/tphakala/go-motion-scaler/internal/testutil"
)

func sigmoid(maxOut, half, tenths int32) Params {
	return Params{
		Shape:          ShapeSigmoid,
		MaxOutput:      maxOut,
		HalfInput:      half,
		ExponentTenths: tenths,
	}.Normalize()
}

// =============================================================================
// Parameter Tests
// =============================================================================

func TestNormalize(t *testing.T) {
	p := Params{HalfInput: 0, ExponentTenths: -5, MaxOutput: 127, CoeffMilli: -1}.Normalize()
	assert.Equal(t, int32(1), p.HalfInput, "zero half input falls back to 1")
	assert.Equal(t, int32(0), p.ExponentTenths, "negative exponent clamps to 0")
	assert.Equal(t, int32(0), p.CoeffMilli)

	p = Params{HalfInput: -40, MaxOutput: 0}.Normalize()
	assert.Equal(t, int32(1), p.HalfInput)
	assert.Equal(t, int32(1), p.MaxOutput)

	p = Params{HalfInput: 1 << 20, MaxOutput: 1 << 20}.Normalize()
	assert.Equal(t, int32(MaxParam), p.HalfInput)
	assert.Equal(t, int32(MaxParam), p.MaxOutput)
}

func TestExponentParts(t *testing.T) {
	tests := []struct {
		tenths int32
		whole  int
		frac   float64
		e      float64
	}{
		{0, 1, 0, 1},
		{5, 1, 0.5, 1.5},
		{10, 2, 0, 2},
		{13, 2, 0.3, 2.3},
		{25, 3, 0.5, 3.5},
	}

	for _, tt := range tests {
		p := sigmoid(127, 50, tt.tenths)
		whole, frac := p.exponentParts()
		assert.Equal(t, tt.whole, whole, "tenths=%d", tt.tenths)
		assert.InDelta(t, tt.frac, frac, 1e-12, "tenths=%d", tt.tenths)
		assert.InDelta(t, tt.e, p.Exponent(), 1e-12, "tenths=%d", tt.tenths)
	}
}

// =============================================================================
// Sigmoid Tests
// =============================================================================

func TestFractionQ16_HalfPoint(t *testing.T) {
	p := sigmoid(127, 50, 0)

	frac := FractionQ16(fixed.FromInt(50), p)
	assert.Equal(t, fixed.Half, frac, "linear exponent must hit exactly 1/2 at HalfInput")

	out := OutputQ16(fixed.FromInt(50), p)
	assert.InDelta(t, 63.5, out.Float(), 1.0/float64(fixed.One))

	assert.InDelta(t, 0.5, Fraction(50, p), 1e-12)
	assert.InDelta(t, 63.5, Output(50, p), 1e-9)
}

func TestFraction_HalfPointAnyExponent(t *testing.T) {
	// r = 1 gives r^e = 1 for every e.
	for _, tenths := range []int32{0, 5, 10, 17, 30} {
		p := sigmoid(127, 80, tenths)
		assert.InDelta(t, 0.5, FractionQ16(fixed.FromInt(80), p).Float(), testutil.FractionTolerance, "tenths=%d", tenths)
		assert.InDelta(t, 0.5, Fraction(80, p), 1e-12, "tenths=%d", tenths)
	}
}

func TestOutput_EndToEnd(t *testing.T) {
	p := sigmoid(127, 50, 10)

	assert.InDelta(t, 63.5, Output(50, p), 1e-9)
	assert.InDelta(t, 63.5, OutputQ16(fixed.FromInt(50), p).Float(), 1e-3)

	// r = 10, r² = 100, 100/101 of 127.
	want := 127.0 * 100.0 / 101.0
	assert.InDelta(t, want, Output(500, p), 1e-9)
	assert.InDelta(t, want, OutputQ16(fixed.FromInt(500), p).Float(), testutil.CountTolerance)
	assert.GreaterOrEqual(t, int(math.Round(Output(500, p))), 126)
}

func TestFraction_ZeroAndNegative(t *testing.T) {
	p := sigmoid(127, 50, 10)
	assert.Equal(t, fixed.Q16(0), FractionQ16(0, p))
	assert.Equal(t, fixed.Q16(0), FractionQ16(-fixed.One, p))
	assert.Equal(t, 0.0, Fraction(0, p))
	assert.Equal(t, 0.0, Fraction(-3, p))
	assert.Equal(t, 0.0, Fraction(math.NaN(), p))
}

func TestFraction_SaturatedStaysBelowOne(t *testing.T) {
	p := sigmoid(127, 1, 30)

	frac := FractionQ16(fixed.Max, p)
	assert.Less(t, frac, fixed.One, "fixed fraction must stay below 1")
	assert.Greater(t, frac.Float(), 0.999)

	out := OutputQ16(fixed.Max, p)
	assert.LessOrEqual(t, out, fixed.FromInt(127))

	assert.InDelta(t, 1.0, Fraction(math.Inf(1), p), 1e-12, "non-finite power is the asymptote")
	assert.LessOrEqual(t, Output(1e300, p), 127.0)
}

func TestFraction_Monotonic(t *testing.T) {
	for _, tenths := range []int32{0, 5, 10, 15, 20, 35} {
		p := sigmoid(127, 40, tenths)

		var fx, fl []float64
		for m := int32(0); m <= 2000; m++ {
			fx = append(fx, FractionQ16(fixed.FromInt(m), p).Float())
			fl = append(fl, Fraction(float64(m), p))
		}

		testutil.AssertMonotonic(t, fx, "fixed, tenths=%d", tenths)
		testutil.AssertMonotonic(t, fl, "float, tenths=%d", tenths)
		testutil.AssertAllInRange(t, fx, 0, 1)
		testutil.AssertAllInRange(t, fl, 0, 1)
		testutil.AssertNoNaNOrInf(t, fl)
	}
}

func TestOutput_DoublingNeverDecreases(t *testing.T) {
	p := sigmoid(127, 50, 10)
	for m := int32(1); m <= 4096; m *= 2 {
		assert.GreaterOrEqual(t, OutputQ16(fixed.FromInt(2*m), p), OutputQ16(fixed.FromInt(m), p), "m=%d", m)
		assert.GreaterOrEqual(t, Output(float64(2*m), p), Output(float64(m), p), "m=%d", m)
	}
}

func TestFixedAgreesWithFloat(t *testing.T) {
	configs := []Params{
		sigmoid(127, 50, 0),
		sigmoid(127, 50, 10),
		sigmoid(127, 50, 5),
		sigmoid(127, 20, 23),
		sigmoid(1000, 300, 10),
	}

	for _, p := range configs {
		var fx, fl []float64
		for m := int32(0); m <= 3000; m += 7 {
			fx = append(fx, OutputQ16(fixed.FromInt(m), p).Float())
			fl = append(fl, Output(float64(m), p))
		}
		tolerance := testutil.CountTolerance * float64(p.MaxOutput) / 127
		testutil.AssertMaxAbsDiff(t, fl, fx, tolerance, "params %+v", p)
	}
}

// =============================================================================
// Quadratic Tests
// =============================================================================

func TestQuadratic(t *testing.T) {
	p := Params{Shape: ShapeQuadratic, MaxOutput: 127, CoeffMilli: 100}.Normalize()

	// 0.1 * 10² = 10
	assert.InDelta(t, 10.0, Output(10, p), 1e-9)
	assert.InDelta(t, 10.0, OutputQ16(fixed.FromInt(10), p).Float(), 0.01)

	// Clamped at MaxOutput.
	assert.Equal(t, 127.0, Output(1000, p))
	assert.Equal(t, fixed.FromInt(127), OutputQ16(fixed.FromInt(1000), p))
	assert.Equal(t, 127.0, Output(math.Inf(1), p))

	assert.Equal(t, 0.0, Output(0, p))
	assert.Equal(t, fixed.Q16(0), OutputQ16(0, p))
}

func TestQuadratic_Monotonic(t *testing.T) {
	tests := []struct {
		maxOutput, coeffMilli int32
	}{
		{127, 250},
		{127, 2},
		{4000, 1},
		{16383, 7},
	}

	for _, tt := range tests {
		p := Params{Shape: ShapeQuadratic, MaxOutput: tt.maxOutput, CoeffMilli: tt.coeffMilli}.Normalize()

		var fx []float64
		for m := int32(0); m <= 2000; m++ {
			fx = append(fx, OutputQ16(fixed.FromInt(m), p).Float())
		}
		require.NotEmpty(t, fx)
		testutil.AssertMonotonic(t, fx, "params %+v", p)
		testutil.AssertAllInRange(t, fx, 0, float64(tt.maxOutput))
	}
}

func TestQuadratic_FixedMatchesFloat(t *testing.T) {
	tests := []struct {
		name                  string
		maxOutput, coeffMilli int32
	}{
		{"coeff 1 wide clamp", 4000, 1},
		{"coeff 3 wide clamp", 4000, 3},
		{"coeff 5 narrow clamp", 127, 5},
		{"coeff 7 narrow clamp", 127, 7},
		{"coeff 7 full range", 16383, 7},
		{"default coeff wide clamp", 4000, 100},
		{"large coeff", 127, 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{Shape: ShapeQuadratic, MaxOutput: tt.maxOutput, CoeffMilli: tt.coeffMilli}.Normalize()

			var fx, fl []float64
			for m := 0.0; m <= 2000; m += 3.37 {
				q := fixed.FromFloat(m)
				fx = append(fx, OutputQ16(q, p).Float())
				fl = append(fl, Output(q.Float(), p))
			}
			testutil.AssertMaxAbsDiff(t, fl, fx, 1e-3)
		})
	}
}

func TestQuadratic_SaturatedInput(t *testing.T) {
	p := Params{Shape: ShapeQuadratic, MaxOutput: MaxParam, CoeffMilli: 1}.Normalize()
	assert.Equal(t, fixed.FromInt(MaxParam), OutputQ16(fixed.Max, p))

	p.CoeffMilli = 0
	assert.Equal(t, fixed.Q16(0), OutputQ16(fixed.Max, p))
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkOutputQ16(b *testing.B) {
	p := sigmoid(127, 50, 15)
	m := fixed.FromInt(73)
	var sink fixed.Q16
	for b.Loop() {
		sink = OutputQ16(m, p)
	}
	_ = sink
}

func BenchmarkOutputFloat(b *testing.B) {
	p := sigmoid(127, 50, 15)
	var sink float64
	for b.Loop() {
		sink = Output(73, p)
	}
	_ = sink
}
