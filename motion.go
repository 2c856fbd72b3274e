package scaler

import (
	"fmt"

	"github.com/tphakala/go-motion-scaler/internal/curve"
	"github.com/tphakala/go-motion-scaler/internal/engine"
	"github.com/tphakala/go-motion-scaler/internal/fixed"
	"github.com/tphakala/go-motion-scaler/internal/simdops"
)

// motionScaler is the Scaler returned by New. A nil processor means scaling
// is disabled and every delta passes through.
type motionScaler struct {
	config Config
	proc   engine.Processor
	info   Info
}

// newMotionScaler wires the protocol and arithmetic selected by cfg.
// cfg must be validated and normalized.
func newMotionScaler(cfg Config) *motionScaler {
	s := &motionScaler{
		config: cfg,
		info: Info{
			Enabled:    cfg.Enabled,
			Mode:       cfg.Mode,
			Arithmetic: cfg.Arithmetic,
			Shape:      cfg.Shape,
			Strategy:   disabledStrategy,
			SIMDType:   simdNone,
			CPU:        simdops.Info(),
		},
	}
	if !cfg.Enabled {
		return s
	}

	params := curveParams(cfg)
	opts := engine.Options{
		MaxOutput:       cfg.MaxOutput,
		TrackRemainders: cfg.TrackRemainders,
	}

	switch cfg.Arithmetic {
	case ArithmeticFloat:
		strategy := engine.NewFloat(params, cfg.EnableSIMD)
		s.proc = buildProcessor(cfg.Mode, engine.Strategy[float64](strategy), opts)
		s.info.Strategy = strategy.Name()
		s.info.SIMDEnabled = cfg.EnableSIMD
		if cfg.EnableSIMD {
			s.info.SIMDType = strategy.SIMDInfo()
		}
	default:
		strategy := engine.NewFixed(params)
		s.proc = buildProcessor(cfg.Mode, engine.Strategy[fixed.Q16](strategy), opts)
		s.info.Strategy = strategy.Name()
	}

	return s
}

// buildProcessor selects the event-scaling protocol for a strategy.
func buildProcessor[G any](mode Mode, strategy engine.Strategy[G], opts engine.Options) engine.Processor {
	if mode == ModeImmediate {
		return engine.NewImmediate(strategy, opts)
	}
	return engine.NewLatched(strategy, opts)
}

func curveParams(cfg Config) curve.Params {
	shape := curve.ShapeSigmoid
	if cfg.Shape == ShapeQuadratic {
		shape = curve.ShapeQuadratic
	}
	return curve.Params{
		Shape:          shape,
		MaxOutput:      cfg.MaxOutput,
		HalfInput:      cfg.HalfInput,
		ExponentTenths: cfg.ExponentTenths,
		CoeffMilli:     cfg.ScaleCoeffMilli,
	}
}

// Handle processes one tagged input event.
func (s *motionScaler) Handle(ev Event) int32 {
	switch ev.Kind {
	case EventMotion:
		if s.proc == nil {
			return ev.Delta
		}
		return s.proc.Motion(engine.Axis(ev.Axis), ev.Delta)
	case EventBoundary:
		if s.proc != nil {
			s.proc.Boundary()
		}
		return 0
	default:
		return 0
	}
}

// HandleSample processes a motion sample and, if flagged, the frame
// boundary that follows it.
func (s *motionScaler) HandleSample(sample Sample) int32 {
	out := s.Handle(Motion(sample.Axis, sample.Delta))
	if sample.EndOfFrame {
		s.Handle(Boundary())
	}
	return out
}

// ProcessBlock scales a run of same-axis deltas.
func (s *motionScaler) ProcessBlock(axis Axis, deltas, out []int32) error {
	if len(out) < len(deltas) {
		return fmt.Errorf("%w: need %d, have %d", ErrBufferTooSmall, len(deltas), len(out))
	}
	if len(deltas) == 0 {
		return nil
	}

	if s.proc == nil {
		copy(out, deltas)
		return nil
	}
	s.proc.MotionBlock(engine.Axis(axis), deltas, out)
	return nil
}

// Reset clears all internal state.
func (s *motionScaler) Reset() {
	if s.proc != nil {
		s.proc.Reset()
	}
}

// Config returns a copy of the normalized configuration.
func (s *motionScaler) Config() Config {
	return s.config
}

// GetInfo returns implementation details.
func (s *motionScaler) GetInfo() Info {
	return s.info
}

// Ensure motionScaler satisfies the interfaces
var (
	_ Scaler       = (*motionScaler)(nil)
	_ infoProvider = (*motionScaler)(nil)
)
