// Package engine implements the per-axis scaling state and the event-scaling
// protocols that drive it.
//
// A processor is single-writer: Motion, MotionBlock, Boundary and Reset must
// be serialized by the caller. No method blocks, and once scratch buffers
// have grown to the largest block seen, no method allocates.
package engine

import (
	"github.com/tphakala/go-motion-scaler/internal/fixed"
)

// Processor is the event-scaling protocol driven by the public scaler.
type Processor interface {
	// Motion scales one raw delta on axis and returns the output count.
	// A zero delta returns 0 and leaves all state untouched.
	Motion(axis Axis, delta int32) int32

	// MotionBlock scales a run of same-axis deltas within one frame.
	// len(out) must be at least len(deltas).
	MotionBlock(axis Axis, deltas, out []int32)

	// Boundary marks the end of a reporting frame.
	Boundary()

	// Reset restores the initial state.
	Reset()
}

// Ensure implementations satisfy the interface
var (
	_ Processor = (*Latched[float64])(nil)
	_ Processor = (*Latched[fixed.Q16])(nil)
	_ Processor = (*Immediate[float64])(nil)
	_ Processor = (*Immediate[fixed.Q16])(nil)
)
