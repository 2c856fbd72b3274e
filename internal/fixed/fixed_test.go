package fixed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Conversion Tests
// =============================================================================

func TestFromInt(t *testing.T) {
	tests := []struct {
		name string
		in   int32
		want Q16
	}{
		{"zero", 0, 0},
		{"one", 1, One},
		{"negative", -3, -3 * One},
		{"largest exact", 16383, 16383 * One},
		{"positive overflow saturates", 20000, Max},
		{"negative overflow saturates", -20000, Min},
		{"int32 max saturates", math.MaxInt32, Max},
		{"int32 min saturates", math.MinInt32, Min},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromInt(tt.in))
		})
	}
}

func TestFromFloat(t *testing.T) {
	assert.Equal(t, Half, FromFloat(0.5))
	assert.Equal(t, -One-Half, FromFloat(-1.5))
	assert.Equal(t, Max, FromFloat(1e9))
	assert.Equal(t, Min, FromFloat(-1e9))
	assert.Equal(t, Max, FromFloat(math.Inf(1)), "+Inf is fully saturated")
	assert.Equal(t, Min, FromFloat(math.Inf(-1)), "-Inf is fully saturated")
	assert.Equal(t, Max, FromFloat(math.NaN()), "NaN is treated as saturated")

	assert.InDelta(t, 3.14159, FromFloat(3.14159).Float(), 1.0/float64(One))
}

// =============================================================================
// Arithmetic Kernel Tests
// =============================================================================

func TestMulSat(t *testing.T) {
	tests := []struct {
		name string
		a, b Q16
		want Q16
	}{
		{"one times one", One, One, One},
		{"half times half", Half, Half, One / 4},
		{"sign", -2 * One, 3 * One, -6 * One},
		{"zero", 0, Max, 0},
		{"positive overflow", 200 * One, 200 * One, Max},
		{"negative overflow", -200 * One, 200 * One, Min},
		{"max squared", Max, Max, Max},
		{"min times max", Min, Max, Min},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MulSat(tt.a, tt.b))
		})
	}
}

func TestDiv(t *testing.T) {
	assert.Equal(t, Half, Div(One, 2*One))
	assert.Equal(t, -2*One, Div(-4*One, 2*One))
	assert.Equal(t, Q16(0), Div(One, 0), "zero divisor fails closed")
	assert.Equal(t, Q16(0), Div(Max, 0), "zero divisor fails closed")
	assert.Equal(t, Max, Div(Max, 1), "tiny divisor saturates")
	assert.Equal(t, Min, Div(Min, 1), "tiny divisor saturates negative")
	assert.InDelta(t, 1.0/3.0, Div(One, 3*One).Float(), 1.0/float64(One))
}

func TestPowIntSat(t *testing.T) {
	tests := []struct {
		name string
		base Q16
		exp  int
		want Q16
	}{
		{"exp zero", 7 * One, 0, One},
		{"negative exp treated as zero", 7 * One, -2, One},
		{"exp one", 3 * One, 1, 3 * One},
		{"square", 3 * One, 2, 9 * One},
		{"cube", 2 * One, 3, 8 * One},
		{"tenth power", 2 * One, 10, 1024 * One},
		{"fraction", Half, 3, One / 8},
		{"negative odd", -2 * One, 3, -8 * One},
		{"saturates", 10 * One, 6, Max},
		{"saturated base stays saturated", Max, 5, Max},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PowIntSat(tt.base, tt.exp))
		})
	}
}

func TestAddSat(t *testing.T) {
	assert.Equal(t, 3*One, AddSat(One, 2*One))
	assert.Equal(t, Max, AddSat(Max, One))
	assert.Equal(t, Min, AddSat(Min, -One))
	assert.Equal(t, Q16(0), AddSat(Max, Min))
}

func TestAddSat32(t *testing.T) {
	assert.Equal(t, int32(5), AddSat32(2, 3))
	assert.Equal(t, int32(math.MaxInt32), AddSat32(math.MaxInt32, 1))
	assert.Equal(t, int32(math.MinInt32), AddSat32(math.MinInt32, -1))
}

// =============================================================================
// Rounding Tests
// =============================================================================

func TestTruncTowardZero(t *testing.T) {
	tests := []struct {
		in   float64
		want int32
	}{
		{0, 0},
		{0.99, 0},
		{1.0, 1},
		{2.7, 2},
		{-0.99, 0},
		{-2.7, -2},
		{-3.0, -3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FromFloat(tt.in).Trunc(), "Trunc(%v)", tt.in)
	}
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   float64
		want int32
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{1.5, 2},
		{2.4, 2},
		{-0.49, 0},
		{-0.5, -1},
		{-1.5, -2},
		{-2.6, -3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FromFloat(tt.in).Round(), "Round(%v)", tt.in)
	}

	assert.Equal(t, int32(16384), Max.Round(), "rounding at the ceiling must not wrap")
	assert.Equal(t, int32(-16384), Min.Round(), "rounding at the floor must not wrap")
}

// =============================================================================
// Hypot Tests
// =============================================================================

func TestHypot(t *testing.T) {
	tests := []struct {
		name string
		x, y int32
		want float64
	}{
		{"zero", 0, 0, 0},
		{"axis x", 100, 0, 100},
		{"axis y negative", 0, -7, 7},
		{"3-4-5", 3, 4, 5},
		{"diagonal", 1, 1, math.Sqrt2},
		{"large exact", 30000, 40000, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hypot(tt.x, tt.y)
			if tt.want >= Max.Float() {
				assert.Equal(t, Max, got)
				return
			}
			assert.InDelta(t, tt.want, got.Float(), 2.0/float64(One))
		})
	}
}

func TestHypotInt(t *testing.T) {
	tests := []struct {
		name string
		x, y int32
		want uint64
	}{
		{"zero", 0, 0, 0},
		{"3-4-5", 3, 4, 5},
		{"floor", 1, 1, 1},
		{"beyond Q16", 30000, -40000, 50000},
		{"min int", math.MinInt32, 0, 1 << 31},
		{"max both", math.MaxInt32, math.MaxInt32, 3037000498},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HypotInt(tt.x, tt.y))
		})
	}
}

func TestHypotExtremesSaturate(t *testing.T) {
	assert.Equal(t, Max, Hypot(math.MaxInt32, math.MaxInt32))
	assert.Equal(t, Max, Hypot(math.MinInt32, math.MinInt32))
	assert.Equal(t, Max, Hypot(math.MinInt32, 0))
}

func TestISqrt(t *testing.T) {
	for _, n := range []uint64{0, 1, 2, 3, 4, 15, 16, 17, 1 << 40, math.MaxUint64} {
		r := isqrt(n)
		assert.LessOrEqual(t, r*r, n, "isqrt(%d)^2 must not exceed n", n)
		if r < math.MaxUint32 {
			assert.Greater(t, (r+1)*(r+1), n, "isqrt(%d) must be the floor", n)
		}
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkMulSat(b *testing.B) {
	a, c := FromFloat(1.2345), FromFloat(67.89)
	var sink Q16
	for b.Loop() {
		sink = MulSat(a, c)
	}
	_ = sink
}

func BenchmarkHypot(b *testing.B) {
	var sink Q16
	for b.Loop() {
		sink = Hypot(123, -456)
	}
	_ = sink
}

func TestMulInt(t *testing.T) {
	assert.Equal(t, FromInt(15000), MulInt(Half, 30000))
	assert.Equal(t, FromInt(-15000), MulInt(Half, -30000))
	assert.Equal(t, Max, MulInt(One, math.MaxInt32))
	assert.Equal(t, Min, MulInt(One, math.MinInt32))
	assert.Equal(t, MulSat(FromInt(7), FromFloat(1.25)), MulInt(FromFloat(1.25), 7))
}

func TestSquare(t *testing.T) {
	assert.Equal(t, int64(FromInt(200))*200, Square(FromInt(200)))
	assert.Equal(t, int64(FromInt(-3))*3, Square(FromInt(-3)))
	assert.Equal(t, int64(Half)/2, Square(Half))
	assert.Greater(t, Square(Max), int64(Max))
}
