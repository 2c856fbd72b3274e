package main

import (
	"fmt"
	"io"
	"log"
	"math"

	scaler "github.com/tphakala/go-motion-scaler"
	"github.com/tphakala/go-motion-scaler/internal/analysis"
	"github.com/tphakala/go-motion-scaler/internal/trace"
)

// axisSummary holds the totals and drift of one axis.
type axisSummary struct {
	In    int64
	Out   int64
	Drift analysis.DriftReport
}

// traceSummary describes one scaled trace.
type traceSummary struct {
	Frames int
	Rate   int
	Scaler string
	X      axisSummary
	Y      axisSummary
}

// runTrace reads inPath, scales it with cfg and writes the result to outPath.
func runTrace(cfg scaler.Config, inPath, outPath string, verbose bool) (*traceSummary, error) {
	in, err := trace.ReadFile(inPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		log.Printf("Input: %d reports at %d Hz, %d-bit", in.Frames(), in.Rate, in.BitDepth)
	}

	out, summary, err := scaleTrace(cfg, in)
	if err != nil {
		return nil, err
	}
	if verbose {
		log.Printf("Scaler: %s", summary.Scaler)
	}

	if err := trace.WriteFile(outPath, out); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}
	if verbose {
		log.Printf("Wrote %s", outPath)
	}

	return summary, nil
}

// scaleTrace runs in through a fresh scaler and measures drift against the
// exact reference.
func scaleTrace(cfg scaler.Config, in *trace.Trace) (*trace.Trace, *traceSummary, error) {
	desc, err := describe(cfg)
	if err != nil {
		return nil, nil, err
	}

	outX, outY, err := scaler.ScaleTrace(&cfg, in.X, in.Y)
	if err != nil {
		return nil, nil, err
	}

	refX, refY, err := analysis.ReferenceFor(cfg, in.X, in.Y)
	if err != nil {
		return nil, nil, err
	}
	driftX, err := analysis.Drift(outX, refX)
	if err != nil {
		return nil, nil, err
	}
	driftY, err := analysis.Drift(outY, refY)
	if err != nil {
		return nil, nil, err
	}

	out := &trace.Trace{
		Rate:     in.Rate,
		BitDepth: in.BitDepth,
		X:        outX,
		Y:        outY,
	}
	summary := &traceSummary{
		Frames: in.Frames(),
		Rate:   in.Rate,
		Scaler: desc,
		X:      axisSummary{In: sum(in.X), Out: sum(outX), Drift: driftX},
		Y:      axisSummary{In: sum(in.Y), Out: sum(outY), Drift: driftY},
	}
	return out, summary, nil
}

// printSummary writes a human-readable report.
func printSummary(w io.Writer, s *traceSummary) {
	fmt.Fprintf(w, "Trace: %d reports at %d Hz\n", s.Frames, s.Rate)
	fmt.Fprintf(w, "Scaler: %s\n", s.Scaler)
	printAxis(w, "X", s.X)
	printAxis(w, "Y", s.Y)
}

func printAxis(w io.Writer, name string, a axisSummary) {
	fmt.Fprintf(w, "  %s: in %d, out %d, exact %.2f\n", name, a.In, a.Out, a.Drift.ReferenceTotal)
	fmt.Fprintf(w, "     drift %+.3f (max |running| %.3f, per-sample mean %+.4f, sd %.4f)\n",
		a.Drift.Final, a.Drift.MaxAbs, a.Drift.MeanError, a.Drift.StdDevError)
}

// synthTrace builds a trace of slow circular motion with periodic fast
// horizontal swipes.
func synthTrace(frames int) *trace.Trace {
	t := &trace.Trace{
		Rate: demoRate,
		X:    make([]int32, frames),
		Y:    make([]int32, frames),
	}

	// Accumulate the ideal path and emit integer steps so no motion is lost.
	var px, py float64
	var ex, ey int32
	for i := range frames {
		if i%demoSwipeEvery < demoSwipeLen {
			t.X[i] = demoFastDelta
			continue
		}
		phase := 2 * math.Pi * float64(i) / demoCirclePer
		px += demoSlowRadius * math.Cos(phase)
		py += demoSlowRadius * math.Sin(phase)

		nx, ny := int32(math.Round(px)), int32(math.Round(py))
		t.X[i], t.Y[i] = nx-ex, ny-ey
		ex, ey = nx, ny
	}
	return t
}

// runDemo scales a synthetic trace with every protocol, arithmetic and
// rounding mode and prints the drift of each.
func runDemo(w io.Writer, base scaler.Config, frames int) error {
	base.Enabled = true
	tr := synthTrace(frames)

	fmt.Fprintf(w, "=== Motion Scaler Demo ===\n")
	fmt.Fprintf(w, "Synthetic trace: %d reports at %d Hz (slow circles, fast swipes)\n\n", tr.Frames(), tr.Rate)
	fmt.Fprintf(w, "%-20s %-9s %8s %10s %9s %8s\n", "scaler", "rounding", "out X", "exact X", "drift X", "drift Y")

	for _, mode := range []scaler.Mode{scaler.ModeLatched, scaler.ModeImmediate} {
		for _, arith := range []scaler.Arithmetic{scaler.ArithmeticFixed, scaler.ArithmeticFloat} {
			for _, track := range []bool{true, false} {
				cfg := base
				cfg.Mode = mode
				cfg.Arithmetic = arith
				cfg.TrackRemainders = track

				_, s, err := scaleTrace(cfg, tr)
				if err != nil {
					return err
				}

				rounding := "carry"
				if !track {
					rounding = "nearest"
				}
				fmt.Fprintf(w, "%-20s %-9s %8d %10.1f %+9.2f %+8.2f\n",
					mode.String()+"/"+arith.String(), rounding,
					s.X.Out, s.X.Drift.ReferenceTotal, s.X.Drift.Final, s.Y.Drift.Final)
			}
		}
	}
	return nil
}

func sum(v []int32) int64 {
	var total int64
	for _, x := range v {
		total += int64(x)
	}
	return total
}
