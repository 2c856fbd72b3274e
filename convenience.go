package scaler

import (
	"fmt"
)

// DefaultConfig returns the stock configuration: a sigmoid through
// (50, 63.5) with exponent 2, clamped to ±127, frame-latched, fixed point,
// carrying remainders.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		MaxOutput:       DefaultMaxOutput,
		HalfInput:       DefaultHalfInput,
		ExponentTenths:  DefaultExponentTenths,
		TrackRemainders: true,
		Mode:            ModeLatched,
		Arithmetic:      ArithmeticFixed,
		Shape:           ShapeSigmoid,
		ScaleCoeffMilli: DefaultScaleCoeffMilli,
		EnableSIMD:      true,
	}
}

// NewDefault creates a scaler with DefaultConfig.
func NewDefault() (Scaler, error) {
	cfg := DefaultConfig()
	return New(&cfg)
}

// NewImmediate creates a per-axis scaler for sensors that provide no frame
// sync. Each sample is mapped through the curve by its own magnitude.
func NewImmediate(maxOutput, halfInput, exponentTenths int32) (Scaler, error) {
	cfg := DefaultConfig()
	cfg.Mode = ModeImmediate
	cfg.MaxOutput = maxOutput
	cfg.HalfInput = halfInput
	cfg.ExponentTenths = exponentTenths
	return New(&cfg)
}

// NewLegacyQuadratic creates a per-axis scaler using the older
// out = coeff * m² law, coeff = coeffMilli / 1000.
func NewLegacyQuadratic(maxOutput, coeffMilli int32) (Scaler, error) {
	cfg := DefaultConfig()
	cfg.Mode = ModeImmediate
	cfg.Shape = ShapeQuadratic
	cfg.MaxOutput = maxOutput
	cfg.ScaleCoeffMilli = coeffMilli
	return New(&cfg)
}

// ScaleTrace runs a recorded motion trace through a fresh scaler.
// Index i of xs and ys is one report: the X sample, then the Y sample, then
// a frame boundary.
//
// This is a convenience function for offline analysis. For live input use
// New and feed events as they arrive.
func ScaleTrace(config *Config, xs, ys []int32) (outX, outY []int32, err error) {
	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("%w: x has %d samples, y has %d", ErrTraceLength, len(xs), len(ys))
	}

	s, err := New(config)
	if err != nil {
		return nil, nil, err
	}

	outX = make([]int32, len(xs))
	outY = make([]int32, len(ys))
	for i := range xs {
		outX[i] = s.Handle(Motion(AxisX, xs[i]))
		outY[i] = s.HandleSample(Sample{Axis: AxisY, Delta: ys[i], EndOfFrame: true})
	}

	return outX, outY, nil
}
