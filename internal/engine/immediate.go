package engine

// Immediate scales each axis independently from its own delta, evaluating
// the curve on every non-zero sample. Frame boundaries are ignored, which
// makes it usable where the sensor provides no frame sync.
//
// Per-axis scaling is not isotropic: a diagonal move is bent toward the
// dominant axis.
type Immediate[G any] struct {
	strategy Strategy[G]
	opts     Options

	x AxisState
	y AxisState
}

// NewImmediate creates a per-axis immediate processor.
func NewImmediate[G any](strategy Strategy[G], opts Options) *Immediate[G] {
	return &Immediate[G]{
		strategy: strategy,
		opts:     opts,
	}
}

// Motion maps delta through the curve by its own magnitude.
func (p *Immediate[G]) Motion(axis Axis, delta int32) int32 {
	if delta == 0 {
		return 0
	}

	switch axis {
	case AxisX:
		return p.x.Emit(p.strategy.Respond(delta), p.opts)
	case AxisY:
		return p.y.Emit(p.strategy.Respond(delta), p.opts)
	default:
		return delta
	}
}

// MotionBlock applies Motion to each delta in turn.
func (p *Immediate[G]) MotionBlock(axis Axis, deltas, out []int32) {
	for i, d := range deltas {
		out[i] = p.Motion(axis, d)
	}
}

// Boundary is a no-op: nothing is carried between frames.
func (p *Immediate[G]) Boundary() {}

// Reset clears the carried remainders.
func (p *Immediate[G]) Reset() {
	p.x.Reset()
	p.y.Reset()
}
