// Package analysis measures how a scaler's integer output compares with the
// exact real-valued response it approximates.
package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	scaler "github.com/tphakala/go-motion-scaler"
	"github.com/tphakala/go-motion-scaler/internal/curve"
	"github.com/tphakala/go-motion-scaler/internal/fixed"
)

// Protocol selects how the reference applies the curve.
type Protocol int

const (
	// Latched scales report N by the gain of report N-1's vector magnitude.
	Latched Protocol = iota

	// Immediate maps each axis delta through the curve on its own.
	Immediate
)

// ErrLengthMismatch indicates series of different lengths.
var ErrLengthMismatch = errors.New("series lengths differ")

// Reference computes the exact scaled trace for one report per index:
// X sample, Y sample, then a frame boundary. Nothing is rounded or clamped,
// so the result is what an ideal scaler would emit in total.
func Reference(p curve.Params, proto Protocol, xs, ys []int32) (refX, refY []float64, err error) {
	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("%w: x has %d, y has %d", ErrLengthMismatch, len(xs), len(ys))
	}
	p = p.Normalize()

	refX = make([]float64, len(xs))
	refY = make([]float64, len(ys))

	switch proto {
	case Immediate:
		for i := range xs {
			refX[i] = respond(xs[i], p)
			refY[i] = respond(ys[i], p)
		}
	default:
		gain := 1.0
		for i := range xs {
			x, y := float64(xs[i]), float64(ys[i])
			refX[i] = x * gain
			refY[i] = y * gain

			if m := math.Hypot(x, y); m > 0 {
				gain = curve.Output(m, p) / m
			} else {
				gain = 1
			}
		}
	}

	return refX, refY, nil
}

// ReferenceFor is Reference with the curve and protocol taken from a scaler
// configuration. A disabled configuration references the raw input.
func ReferenceFor(cfg scaler.Config, xs, ys []int32) (refX, refY []float64, err error) {
	if !cfg.Enabled {
		if len(xs) != len(ys) {
			return nil, nil, fmt.Errorf("%w: x has %d, y has %d", ErrLengthMismatch, len(xs), len(ys))
		}
		return toFloat(xs), toFloat(ys), nil
	}

	proto := Latched
	if cfg.Mode == scaler.ModeImmediate {
		proto = Immediate
	}
	return Reference(ParamsFor(cfg), proto, xs, ys)
}

// ParamsFor maps a scaler configuration to curve parameters.
func ParamsFor(cfg scaler.Config) curve.Params {
	shape := curve.ShapeSigmoid
	if cfg.Shape == scaler.ShapeQuadratic {
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

func toFloat(v []int32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

func respond(d int32, p curve.Params) float64 {
	out := curve.Output(math.Abs(float64(d)), p)
	if d < 0 {
		return -out
	}
	return out
}

// DriftReport summarises the difference between emitted counts and an
// exact reference over a whole trace.
type DriftReport struct {
	// Samples is the trace length.
	Samples int

	// EmittedTotal and ReferenceTotal are the summed outputs.
	EmittedTotal   float64
	ReferenceTotal float64

	// Final is EmittedTotal - ReferenceTotal.
	Final float64

	// MaxAbs is the largest absolute running drift at any point.
	MaxAbs float64

	// MeanError and StdDevError describe the per-sample error.
	MeanError   float64
	StdDevError float64
}

// Drift compares emitted counts with reference values sample by sample.
func Drift(emitted []int32, reference []float64) (DriftReport, error) {
	if len(emitted) != len(reference) {
		return DriftReport{}, fmt.Errorf("%w: emitted %d, reference %d", ErrLengthMismatch, len(emitted), len(reference))
	}

	n := len(emitted)
	report := DriftReport{Samples: n}
	if n == 0 {
		return report, nil
	}

	errs := make([]float64, n)
	for i, v := range emitted {
		errs[i] = float64(v) - reference[i]
	}

	running := make([]float64, n)
	floats.CumSum(running, errs)

	report.EmittedTotal = sumInt32(emitted)
	report.ReferenceTotal = floats.Sum(reference)
	report.Final = running[n-1]
	report.MaxAbs = math.Max(floats.Max(running), -floats.Min(running))
	report.MeanError, report.StdDevError = stat.MeanStdDev(errs, nil)
	if n == 1 {
		report.StdDevError = 0
	}

	return report, nil
}

// AgreementReport summarises the difference between two real series.
type AgreementReport struct {
	MaxAbsDiff  float64
	MeanAbsDiff float64
	RMS         float64
}

// Agreement compares two series of the same length, typically the fixed
// and floating-point forms of the curve.
func Agreement(a, b []float64) (AgreementReport, error) {
	if len(a) != len(b) {
		return AgreementReport{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return AgreementReport{}, nil
	}

	diff := make([]float64, len(a))
	floats.SubTo(diff, a, b)

	n := float64(len(a))
	return AgreementReport{
		MaxAbsDiff:  floats.Norm(diff, math.Inf(1)),
		MeanAbsDiff: floats.Norm(diff, 1) / n,
		RMS:         floats.Norm(diff, 2) / math.Sqrt(n),
	}, nil
}

// CurveTable tabulates the response curve in both arithmetic forms.
type CurveTable struct {
	Magnitude []float64
	Fixed     []float64
	Float     []float64
	Diff      []float64
}

// Tabulate evaluates the curve at magnitudes 0, step, 2*step, ... up to and
// including maxMagnitude.
func Tabulate(p curve.Params, maxMagnitude, step float64) (*CurveTable, error) {
	if !(step > 0) || !(maxMagnitude >= 0) {
		return nil, fmt.Errorf("invalid table range: max %v, step %v", maxMagnitude, step)
	}
	p = p.Normalize()

	n := int(math.Floor(maxMagnitude/step)) + 1
	t := &CurveTable{
		Magnitude: make([]float64, n),
		Fixed:     make([]float64, n),
		Float:     make([]float64, n),
		Diff:      make([]float64, n),
	}
	if n == 1 {
		t.Magnitude[0] = 0
	} else {
		floats.Span(t.Magnitude, 0, step*float64(n-1))
	}

	for i, m := range t.Magnitude {
		t.Fixed[i] = curve.OutputQ16(fixed.FromFloat(m), p).Float()
		t.Float[i] = curve.Output(m, p)
	}
	floats.SubTo(t.Diff, t.Fixed, t.Float)

	return t, nil
}

// Agreement compares the two columns of the table.
func (t *CurveTable) Agreement() AgreementReport {
	r, _ := Agreement(t.Fixed, t.Float)
	return r
}

func sumInt32(v []int32) float64 {
	var total int64
	for _, x := range v {
		total += int64(x)
	}
	return float64(total)
}
