// Package trace stores recorded pointer motion as PCM WAV files.
//
// A trace is a 2-channel file: channel 0 holds Δx, channel 1 holds Δy and
// the sample rate is the sensor report rate in Hz. Each WAV frame is one
// report, i.e. one X sample, one Y sample and a frame boundary. Storing
// traces as audio lets any WAV tool plot or edit them.
package trace

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Trace is a recorded sequence of motion reports.
type Trace struct {
	// Rate is the report rate in Hz.
	Rate int

	// BitDepth is the PCM sample width. Zero picks 16 bits when every
	// delta fits and 32 bits otherwise.
	BitDepth int

	X []int32
	Y []int32
}

// Errors returned by this package.
var (
	// ErrInvalidTrace indicates a file that is not a usable motion trace.
	ErrInvalidTrace = errors.New("invalid motion trace")

	// ErrSampleRange indicates a delta that does not fit the bit depth.
	ErrSampleRange = errors.New("delta out of range for bit depth")
)

// Frames returns the number of reports in the trace.
func (t *Trace) Frames() int {
	return len(t.X)
}

// Validate checks that the trace can be written.
func (t *Trace) Validate() error {
	if t.Rate <= 0 {
		return fmt.Errorf("%w: rate must be positive", ErrInvalidTrace)
	}
	if len(t.X) != len(t.Y) {
		return fmt.Errorf("%w: x has %d samples, y has %d", ErrInvalidTrace, len(t.X), len(t.Y))
	}
	switch t.BitDepth {
	case 0, bitDepth16, bitDepth24, bitDepth32:
	default:
		return fmt.Errorf("%w: unsupported bit depth %d", ErrInvalidTrace, t.BitDepth)
	}
	return nil
}

// Read decodes a trace from a WAV stream.
func Read(r io.ReadSeeker) (*Trace, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: not a WAV file", ErrInvalidTrace)
	}

	format := decoder.Format()
	if format.NumChannels != traceChannels {
		return nil, fmt.Errorf("%w: need %d channels, have %d", ErrInvalidTrace, traceChannels, format.NumChannels)
	}

	bitDepth := int(decoder.BitDepth)
	switch bitDepth {
	case bitDepth16, bitDepth24, bitDepth32:
	default:
		return nil, fmt.Errorf("%w: unsupported bit depth %d", ErrInvalidTrace, bitDepth)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode PCM data: %w", err)
	}

	frames := len(buf.Data) / traceChannels
	t := &Trace{
		Rate:     format.SampleRate,
		BitDepth: bitDepth,
		X:        make([]int32, frames),
		Y:        make([]int32, frames),
	}
	for i := range frames {
		t.X[i] = int32(buf.Data[i*traceChannels])
		t.Y[i] = int32(buf.Data[i*traceChannels+1])
	}

	return t, nil
}

// ReadFile opens and decodes a trace file.
func ReadFile(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Read(f)
}

// Write encodes t as a 2-channel PCM WAV stream.
func Write(w io.WriteSeeker, t *Trace) error {
	if err := t.Validate(); err != nil {
		return err
	}

	bitDepth := t.BitDepth
	if bitDepth == 0 {
		bitDepth = pickBitDepth(t)
	}
	limit := int64(1)<<(bitDepth-1) - 1

	data := make([]int, 0, len(t.X)*traceChannels)
	for i := range t.X {
		x, y := int64(t.X[i]), int64(t.Y[i])
		if x > limit || x < -limit-1 || y > limit || y < -limit-1 {
			return fmt.Errorf("%w: report %d (%d, %d) at %d bits", ErrSampleRange, i, x, y, bitDepth)
		}
		data = append(data, int(x), int(y))
	}

	encoder := wav.NewEncoder(w, t.Rate, bitDepth, traceChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: traceChannels,
			SampleRate:  t.Rate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := encoder.Write(buf); err != nil {
		_ = encoder.Close()
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return nil
}

// WriteFile creates path and writes t to it.
func WriteFile(path string, t *Trace) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trace: %w", err)
	}

	if err := Write(f, t); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// pickBitDepth returns the narrowest supported depth holding every delta.
func pickBitDepth(t *Trace) int {
	for i := range t.X {
		if outside16(t.X[i]) || outside16(t.Y[i]) {
			return bitDepth32
		}
	}
	return bitDepth16
}

func outside16(v int32) bool {
	return v > math.MaxInt16 || v < math.MinInt16
}
