// Command analyze-curve tabulates the response curve of a scaler
// configuration in fixed and floating point and reports how closely the
// two agree.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sbinet/npyio"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-motion-scaler/internal/analysis"
	"github.com/tphakala/go-motion-scaler/internal/config"
)

const (
	defaultMaxMagnitude = 500.0
	defaultStep         = 5.0
	defaultPrintEvery   = 10 // table rows between printed lines

	tableColumns = 4 // magnitude, fixed, float, diff
)

func main() {
	fs := pflag.NewFlagSet("analyze-curve", pflag.ExitOnError)
	config.RegisterFlags(fs)
	var (
		configPath   = fs.String("config", "", "YAML config file")
		maxMagnitude = fs.Float64("max-magnitude", defaultMaxMagnitude, "largest input magnitude")
		step         = fs.Float64("step", defaultStep, "magnitude step")
		every        = fs.Int("every", defaultPrintEvery, "print every Nth row")
		npyPath      = fs.String("npy", "", "write the full table as an n×4 .npy array")
	)
	_ = fs.Parse(os.Args[1:])

	v := config.New()
	if err := config.BindFlags(v, fs); err != nil {
		log.Fatalf("Failed to bind flags: %v", err)
	}
	cfg, err := config.Load(v, *configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	params := analysis.ParamsFor(cfg)
	table, err := analysis.Tabulate(params, *maxMagnitude, *step)
	if err != nil {
		log.Fatalf("Failed to tabulate curve: %v", err)
	}

	fmt.Println("=== Analyzing Response Curve ===")
	fmt.Printf("  Shape: %s\n", cfg.Shape)
	fmt.Printf("  MaxOutput: %d\n", cfg.MaxOutput)
	fmt.Printf("  HalfInput: %d\n", cfg.HalfInput)
	fmt.Printf("  Exponent: %.1f\n\n", params.Normalize().Exponent())

	printTable(os.Stdout, table, *every)

	if *npyPath != "" {
		if err := writeNPY(*npyPath, table); err != nil {
			log.Fatalf("Failed to write %s: %v", *npyPath, err)
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(table.Magnitude), *npyPath)
	}
}

// printTable writes every nth row and the agreement summary.
func printTable(w io.Writer, t *analysis.CurveTable, every int) {
	if every < 1 {
		every = 1
	}

	fmt.Fprintf(w, "%10s %12s %12s %12s\n", "magnitude", "fixed", "float", "diff")
	last := len(t.Magnitude) - 1
	for i := range t.Magnitude {
		if i%every != 0 && i != last {
			continue
		}
		fmt.Fprintf(w, "%10.2f %12.6f %12.6f %+12.2e\n", t.Magnitude[i], t.Fixed[i], t.Float[i], t.Diff[i])
	}

	a := t.Agreement()
	fmt.Fprintf(w, "\nFixed vs float: max |diff| %.3e, mean |diff| %.3e, rms %.3e\n", a.MaxAbsDiff, a.MeanAbsDiff, a.RMS)
}

// tableMatrix lays the table out as rows of (magnitude, fixed, float, diff).
func tableMatrix(t *analysis.CurveTable) *mat.Dense {
	n := len(t.Magnitude)
	m := mat.NewDense(n, tableColumns, nil)
	m.SetCol(0, t.Magnitude)
	m.SetCol(1, t.Fixed)
	m.SetCol(2, t.Float)
	m.SetCol(3, t.Diff)
	return m
}

// writeNPY saves the table for plotting with NumPy.
func writeNPY(path string, t *analysis.CurveTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := npyio.Write(f, tableMatrix(t)); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode array: %w", err)
	}
	return f.Close()
}
