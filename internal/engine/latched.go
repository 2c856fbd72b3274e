package engine

import (
	"github.com/tphakala/go-motion-scaler/internal/fixed"
)

// Latched scales every sample of frame N by a gain computed from the raw
// motion accumulated during frame N-1. The curve runs once per frame; the
// per-sample path is one multiply, the remainder add and the clamp.
//
// The gain is derived from the vector magnitude of the frame, so diagonal
// motion keeps its direction.
type Latched[G any] struct {
	strategy Strategy[G]
	opts     Options

	gain G
	accX int32
	accY int32
	x    AxisState
	y    AxisState

	block []fixed.Q16
}

// NewLatched creates a frame-latched processor starting at unity gain.
func NewLatched[G any](strategy Strategy[G], opts Options) *Latched[G] {
	return &Latched[G]{
		strategy: strategy,
		opts:     opts,
		gain:     strategy.Unity(),
		block:    make([]fixed.Q16, 0, defaultBlockCapacity),
	}
}

// Motion accumulates the raw delta for the next gain and emits it scaled by
// the currently latched gain.
func (l *Latched[G]) Motion(axis Axis, delta int32) int32 {
	if delta == 0 {
		return 0
	}

	switch axis {
	case AxisX:
		l.accX = fixed.AddSat32(l.accX, delta)
		return l.x.Emit(l.strategy.Scale(delta, l.gain), l.opts)
	case AxisY:
		l.accY = fixed.AddSat32(l.accY, delta)
		return l.y.Emit(l.strategy.Scale(delta, l.gain), l.opts)
	default:
		return delta
	}
}

// MotionBlock is the block form of Motion. All deltas are scaled by the
// same latched gain.
func (l *Latched[G]) MotionBlock(axis Axis, deltas, out []int32) {
	var acc *int32
	var state *AxisState
	switch axis {
	case AxisX:
		acc, state = &l.accX, &l.x
	case AxisY:
		acc, state = &l.accY, &l.y
	default:
		copy(out, deltas)
		return
	}

	n := len(deltas)
	if cap(l.block) < n {
		l.block = make([]fixed.Q16, n)
	}
	scaled := l.block[:n]

	total := l.strategy.ScaleBlock(scaled, deltas, l.gain)
	*acc = fixed.Clamp32(int64(*acc) + total)

	for i, d := range deltas {
		if d == 0 {
			out[i] = 0
			continue
		}
		out[i] = state.Emit(scaled[i], l.opts)
	}
}

// Boundary latches the gain for the next frame from this frame's motion and
// clears the accumulators.
func (l *Latched[G]) Boundary() {
	l.gain = l.strategy.FrameGain(l.accX, l.accY)
	l.accX, l.accY = 0, 0
}

// Reset restores unity gain and clears accumulators and remainders.
func (l *Latched[G]) Reset() {
	l.gain = l.strategy.Unity()
	l.accX, l.accY = 0, 0
	l.x.Reset()
	l.y.Reset()
}
