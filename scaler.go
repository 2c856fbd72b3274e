package scaler

import (
	"errors"
	"fmt"
	"strings"
)

// Scaler is the main interface for pointer motion scaling.
// A Scaler owns its rounding and gain state; it is not safe for concurrent
// use and never blocks.
type Scaler interface {
	// Handle processes one tagged input event.
	// Motion events return the scaled delta for their axis.
	// Boundary events latch the next frame's gain and return 0.
	Handle(ev Event) int32

	// HandleSample processes a motion sample that may carry an end-of-frame
	// flag. It is equivalent to Handle(Motion(...)) followed by
	// Handle(Boundary()) when EndOfFrame is set.
	HandleSample(s Sample) int32

	// ProcessBlock scales a run of same-axis deltas belonging to the current
	// frame and writes the results to out. No boundary may fall inside the
	// run. Returns ErrBufferTooSmall if out is shorter than deltas.
	ProcessBlock(axis Axis, deltas, out []int32) error

	// Reset restores the initial state: zero remainders, zero accumulators
	// and unity gain.
	Reset()

	// Config returns a copy of the normalized configuration.
	Config() Config
}

// Config holds motion scaling configuration.
type Config struct {
	// Enabled turns scaling on. A disabled scaler passes every delta
	// through unchanged.
	Enabled bool

	// MaxOutput is the symmetric bound on every emitted delta and the
	// asymptote of the response curve.
	MaxOutput int32

	// HalfInput is the input magnitude at which the sigmoid curve reaches
	// half of MaxOutput when the exponent is 1.
	// Values <= 0 are treated as 1.
	HalfInput int32

	// ExponentTenths encodes the curve exponent as (e - 1) * 10.
	// Negative values are treated as 0.
	ExponentTenths int32

	// TrackRemainders carries the fractional part of each output into the
	// next one. When false every output is rounded to nearest on its own.
	TrackRemainders bool

	// Mode selects the event-scaling protocol.
	Mode Mode

	// Arithmetic selects fixed-point or floating-point curve evaluation.
	Arithmetic Arithmetic

	// Shape selects the response law.
	Shape Shape

	// ScaleCoeffMilli is the quadratic coefficient in thousandths.
	// Only used by ShapeQuadratic.
	ScaleCoeffMilli int32

	// EnableSIMD allows the vectorised block path of ArithmeticFloat.
	// Set to false to force pure Go implementation.
	EnableSIMD bool
}

// Mode enumerates the event-scaling protocols.
type Mode int

const (
	// ModeLatched computes one isotropic gain per frame from the vector
	// magnitude of the frame's motion and applies it to every sample of the
	// following frame.
	ModeLatched Mode = iota

	// ModeImmediate scales each axis independently from its own delta on
	// every sample. Frame boundaries are ignored.
	ModeImmediate
)

// Arithmetic enumerates the numeric strategies.
type Arithmetic int

const (
	// ArithmeticFixed evaluates everything in saturating 16.16 fixed point.
	ArithmeticFixed Arithmetic = iota

	// ArithmeticFloat evaluates the curve in float64 and tracks remainders
	// in 16.16 fixed point.
	ArithmeticFloat
)

// Shape enumerates the response laws.
type Shape int

const (
	// ShapeSigmoid is out = MaxOutput * r^e / (1 + r^e), r = m / HalfInput.
	ShapeSigmoid Shape = iota

	// ShapeQuadratic is out = ScaleCoeffMilli/1000 * m², clamped to MaxOutput.
	ShapeQuadratic
)

// Common errors returned by the scaler.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid scaler configuration")

	// ErrBufferTooSmall indicates the output buffer is too small.
	ErrBufferTooSmall = errors.New("output buffer too small")

	// ErrTraceLength indicates x and y traces of different lengths.
	ErrTraceLength = errors.New("trace axes differ in length")
)

// Validate checks if the configuration is valid.
// A disabled configuration is always valid.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}

	if c.MaxOutput <= 0 {
		return fmt.Errorf("%w: max output must be positive", ErrInvalidConfig)
	}

	if c.MaxOutput > maxMaxOutput {
		return fmt.Errorf("%w: max output must be at most %d", ErrInvalidConfig, maxMaxOutput)
	}

	if c.Mode != ModeLatched && c.Mode != ModeImmediate {
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidConfig, c.Mode)
	}

	if c.Arithmetic != ArithmeticFixed && c.Arithmetic != ArithmeticFloat {
		return fmt.Errorf("%w: unknown arithmetic %d", ErrInvalidConfig, c.Arithmetic)
	}

	switch c.Shape {
	case ShapeSigmoid:
	case ShapeQuadratic:
		if c.ScaleCoeffMilli < 0 {
			return fmt.Errorf("%w: quadratic coefficient must be non-negative", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown shape %d", ErrInvalidConfig, c.Shape)
	}

	return nil
}

// normalized returns c with degenerate curve parameters replaced by their
// fallbacks.
func (c Config) normalized() Config {
	if c.HalfInput <= 0 {
		c.HalfInput = minHalfInput
	}
	if c.ExponentTenths < 0 {
		c.ExponentTenths = 0
	}
	return c
}

// New creates a new scaler with the specified configuration.
// The protocol and arithmetic are chosen from Mode and Arithmetic.
func New(config *Config) (Scaler, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return newMotionScaler(config.normalized()), nil
}

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeLatched:
		return modeLatchedName
	case ModeImmediate:
		return modeImmediateName
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name as produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case modeLatchedName:
		return ModeLatched, nil
	case modeImmediateName:
		return ModeImmediate, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
	}
}

// String returns the configuration name of the arithmetic.
func (a Arithmetic) String() string {
	switch a {
	case ArithmeticFixed:
		return arithmeticFixedName
	case ArithmeticFloat:
		return arithmeticFloatName
	default:
		return fmt.Sprintf("Arithmetic(%d)", int(a))
	}
}

// ParseArithmetic parses an arithmetic name as produced by Arithmetic.String.
func ParseArithmetic(s string) (Arithmetic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case arithmeticFixedName:
		return ArithmeticFixed, nil
	case arithmeticFloatName:
		return ArithmeticFloat, nil
	default:
		return 0, fmt.Errorf("%w: unknown arithmetic %q", ErrInvalidConfig, s)
	}
}

// String returns the configuration name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeSigmoid:
		return shapeSigmoidName
	case ShapeQuadratic:
		return shapeQuadraticName
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape parses a shape name as produced by Shape.String.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case shapeSigmoidName:
		return ShapeSigmoid, nil
	case shapeQuadraticName:
		return ShapeQuadratic, nil
	default:
		return 0, fmt.Errorf("%w: unknown shape %q", ErrInvalidConfig, s)
	}
}

// Info returns information about the scaler implementation.
type Info struct {
	// Enabled reports whether scaling is active.
	Enabled bool

	// Mode is the event-scaling protocol in use.
	Mode Mode

	// Arithmetic is the numeric strategy in use.
	Arithmetic Arithmetic

	// Shape is the response law in use.
	Shape Shape

	// Strategy names the numeric back end, e.g. "fixed-q16".
	Strategy string

	// SIMDEnabled indicates if SIMD optimizations are active.
	SIMDEnabled bool

	// SIMDType describes the SIMD instruction set in use.
	SIMDType string

	// CPU lists the instruction sets the host offers to the SIMD path,
	// whether or not it is in use.
	CPU string
}

// infoProvider is an optional interface for scalers that can provide detailed info.
type infoProvider interface {
	GetInfo() Info
}

// GetInfo returns information about a scaler.
// If the scaler implements the infoProvider interface, it returns actual values.
// Otherwise, it returns basic info derived from its configuration.
func GetInfo(s Scaler) Info {
	if provider, ok := s.(infoProvider); ok {
		return provider.GetInfo()
	}

	cfg := s.Config()
	return Info{
		Enabled:    cfg.Enabled,
		Mode:       cfg.Mode,
		Arithmetic: cfg.Arithmetic,
		Shape:      cfg.Shape,
		Strategy:   "unknown",
		SIMDType:   simdNone,
	}
}
