// Package simdops provides the vector operations used by the floating-point
// block path of the scaler.
//
// Callers pick the SIMD or the scalar table once, at construction time, so
// the per-block call is a single indirect function call.
package simdops

import (
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f64"
)

// Ops is a table of float64 vector operations.
type Ops struct {
	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)

	// Sum returns the sum of all elements.
	Sum func(a []float64) float64

	// Name describes the implementation behind the table.
	Name string
}

var (
	simdOps = Ops{
		Scale: f64.Scale,
		Sum:   f64.Sum,
		Name:  cpu.Info(),
	}
	scalarOps = Ops{
		Scale: scaleScalar,
		Sum:   sumScalar,
		Name:  "scalar",
	}
)

// For returns the SIMD table when enableSIMD is true, otherwise the pure Go
// table.
func For(enableSIMD bool) *Ops {
	if enableSIMD {
		return &simdOps
	}
	return &scalarOps
}

// Info reports the CPU features the SIMD table dispatches on.
func Info() string {
	return cpu.Info()
}

func scaleScalar(dst, a []float64, s float64) {
	n := min(len(dst), len(a))
	for i := range n {
		dst[i] = a[i] * s
	}
}

func sumScalar(a []float64) float64 {
	var total float64
	for _, v := range a {
		total += v
	}
	return total
}
