package engine

import (
	"github.com/tphakala/go-motion-scaler/internal/fixed"
)

// Axis identifies one of the two scaled axes.
type Axis uint8

const (
	// AxisX is horizontal relative motion.
	AxisX Axis = iota

	// AxisY is vertical relative motion.
	AxisY
)

// Options holds the settings shared by every processor.
type Options struct {
	// MaxOutput is the symmetric clamp applied to every emitted count.
	MaxOutput int32

	// TrackRemainders selects carry-remainder rounding. When false,
	// each sample is rounded to nearest independently.
	TrackRemainders bool
}

// AxisState carries the rounding remainder of one axis.
// In carry mode |remainder| < 1 count at all times.
type AxisState struct {
	remainder fixed.Q16
}

// Emit converts a scaled Q16 value to an output count using the configured
// rounding discipline, then clamps it to [-MaxOutput, MaxOutput].
//
// In carry mode the fractional part left after truncation toward zero is
// kept and folded into the next call, so the running sum of emitted counts
// tracks the running sum of scaled values to within one count.
func (s *AxisState) Emit(scaled fixed.Q16, opts Options) int32 {
	var out int32
	if opts.TrackRemainders {
		total := fixed.AddSat(scaled, s.remainder)
		out = total.Trunc()
		s.remainder = total - fixed.FromInt(out)
	} else {
		out = scaled.Round()
	}
	return clampCount(out, opts.MaxOutput)
}

// Remainder returns the carried fraction.
func (s *AxisState) Remainder() fixed.Q16 {
	return s.remainder
}

// Reset clears the carried fraction.
func (s *AxisState) Reset() {
	s.remainder = 0
}

func clampCount(v, limit int32) int32 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
