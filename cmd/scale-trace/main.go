// Command scale-trace runs a recorded motion trace through the scaler and
// reports how far the emitted counts drift from the exact response.
//
// Usage:
//
//	scale-trace [flags] input.wav output.wav
//	scale-trace --demo
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/pflag"

	scaler "github.com/tphakala/go-motion-scaler"
	"github.com/tphakala/go-motion-scaler/internal/config"
	"github.com/tphakala/go-motion-scaler/internal/logging"
)

func main() {
	fs := pflag.NewFlagSet("scale-trace", pflag.ExitOnError)
	config.RegisterFlags(fs)
	var (
		configPath = fs.String("config", "", "YAML config file (default: search /etc, ~/.config, .)")
		logFile    = fs.String("log-file", "", "also log to this file, rotated")
		dumpConfig = fs.Bool("dump-config", false, "print the resolved configuration and exit")
		demo       = fs.Bool("demo", false, "scale a synthetic trace with every mode and arithmetic")
		verbose    = fs.BoolP("verbose", "v", false, "verbose output")
	)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: scale-trace [flags] input.wav output.wav\n\nFlags:\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	closer := logging.Setup(*logFile, logPrefix)
	defer func() { _ = closer.Close() }()

	v := config.New()
	if err := config.BindFlags(v, fs); err != nil {
		log.Fatalf("Failed to bind flags: %v", err)
	}
	cfg, err := config.Load(v, *configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *verbose && v.ConfigFileUsed() != "" {
		log.Printf("Using config file %s", v.ConfigFileUsed())
	}

	if *dumpConfig {
		fmt.Print(spew.Sdump(cfg))
		return
	}

	if *demo {
		if err := runDemo(os.Stdout, cfg, demoFrames); err != nil {
			log.Fatalf("Demo failed: %v", err)
		}
		return
	}

	if fs.NArg() != requiredArgs {
		fs.Usage()
		os.Exit(1)
	}

	summary, err := runTrace(cfg, fs.Arg(0), fs.Arg(1), *verbose)
	if err != nil {
		log.Fatalf("Scaling failed: %v", err)
	}
	printSummary(os.Stdout, summary)
}

// describe formats the active scaler for log lines.
func describe(cfg scaler.Config) (string, error) {
	s, err := scaler.New(&cfg)
	if err != nil {
		return "", err
	}
	info := scaler.GetInfo(s)
	if !info.Enabled {
		return "disabled (pass-through)", nil
	}
	return fmt.Sprintf("mode=%s arithmetic=%s shape=%s strategy=%s simd=%v (%s) cpu=%s",
		info.Mode, info.Arithmetic, info.Shape, info.Strategy, info.SIMDEnabled, info.SIMDType, info.CPU), nil
}
