package engine

import (
	"github.com/tphakala/go-motion-scaler/internal/fixed"
)

// Export internal state for testing.
// This file uses the _test.go suffix so it's only included in test builds.

// Accumulators returns the raw motion accumulated in the current frame.
func (l *Latched[G]) Accumulators() (x, y int32) {
	return l.accX, l.accY
}

// Remainders returns the carried rounding remainders.
func (l *Latched[G]) Remainders() (x, y fixed.Q16) {
	return l.x.remainder, l.y.remainder
}

// GainFloat returns the latched gain as a float64 whatever its representation.
func (l *Latched[G]) GainFloat() float64 {
	return gainToFloat(l.gain)
}

// Remainders returns the carried rounding remainders.
func (p *Immediate[G]) Remainders() (x, y fixed.Q16) {
	return p.x.remainder, p.y.remainder
}

func gainToFloat(g any) float64 {
	switch v := g.(type) {
	case fixed.Q16:
		return v.Float()
	case float64:
		return v
	default:
		panic("engine: unsupported gain type")
	}
}
