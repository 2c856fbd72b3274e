// Package scaler provides pointer motion scaling in pure Go.
//
// A scaler sits between a relative-motion sensor and the rest of an input
// pipeline. It rewrites each raw (Δx, Δy) sample through a non-linear
// response curve so that slow movements become finer and fast movements
// cover more ground, without losing sub-count precision to rounding and
// without overflowing its fixed-width arithmetic.
//
// # Features
//
//   - Sigmoid response out = MaxOutput * r^e / (1 + r^e), r = m / HalfInput,
//     with a tunable exponent e = 1 + ExponentTenths/10
//   - Legacy quadratic response out = coeff * m² for older configurations
//   - Saturating 16.16 fixed-point arithmetic, or float64 with a fixed-point
//     remainder overlay
//   - Carry-remainder rounding that keeps the long-run output total exact
//   - Frame-latched isotropic gain, or per-axis immediate scaling
//   - Optional SIMD block path via github.com/tphakala/simd
//
// # Quick Start
//
//	s, err := scaler.NewDefault()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for report := range reports {
//	    dx := s.Handle(scaler.Motion(scaler.AxisX, report.DX))
//	    dy := s.Handle(scaler.Motion(scaler.AxisY, report.DY))
//	    s.Handle(scaler.Boundary())
//	    forward(dx, dy)
//	}
//
// Sensors that flag the last sample of a report instead of sending a
// separate sync can use HandleSample:
//
//	dy := s.HandleSample(scaler.Sample{Axis: scaler.AxisY, Delta: raw, EndOfFrame: true})
//
// # Frame-Latched Gain
//
// In [ModeLatched] the curve is evaluated once per frame, on the Euclidean
// magnitude of the frame's accumulated raw motion. The resulting gain
// out(m)/m is applied to every sample of the next frame, so the per-sample
// path is a single multiply, the remainder add and the clamp. A frame with
// no motion latches a gain of exactly 1.
//
// [ModeImmediate] evaluates the curve on every non-zero sample, per axis,
// and ignores frame boundaries.
//
// # Rounding
//
// With TrackRemainders set, each axis truncates its scaled value toward
// zero and carries the fraction into the next sample. The sum of emitted
// counts then stays within one count of the exact scaled sum for any
// number of samples. Without it, every sample is rounded to nearest on its
// own, which is simpler but drifts for sustained slow motion.
//
// Every output is clamped to [-MaxOutput, MaxOutput]. A zero delta always
// yields zero and leaves all state untouched. Axes other than X and Y pass
// through unchanged.
//
// # Thread Safety
//
// A Scaler is single-writer. It performs no locking; callers feeding one
// scaler from several goroutines must serialize access themselves, or wrap
// it with Synchronized. ScaleTracks scales independent devices in parallel,
// one scaler per device.
package scaler
