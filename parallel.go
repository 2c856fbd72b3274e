package scaler

import (
	"fmt"
	"sync"
)

// synchronizedScaler serializes access to a Scaler.
type synchronizedScaler struct {
	mu    sync.Mutex
	inner Scaler
}

// Synchronized wraps s so that it may be shared between goroutines, for
// example when motion and frame boundaries arrive on different event
// sources. Each call holds the lock for its whole duration, so a
// ProcessBlock is never interleaved with a Boundary.
func Synchronized(s Scaler) Scaler {
	if _, ok := s.(*synchronizedScaler); ok {
		return s
	}
	return &synchronizedScaler{inner: s}
}

func (s *synchronizedScaler) Handle(ev Event) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Handle(ev)
}

func (s *synchronizedScaler) HandleSample(sample Sample) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.HandleSample(sample)
}

func (s *synchronizedScaler) ProcessBlock(axis Axis, in, out []int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.ProcessBlock(axis, in, out)
}

func (s *synchronizedScaler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Reset()
}

func (s *synchronizedScaler) Config() Config {
	return s.inner.Config()
}

// GetInfo forwards to the wrapped scaler.
func (s *synchronizedScaler) GetInfo() Info {
	return GetInfo(s.inner)
}

// Track is one device's motion as paired per-report X and Y deltas.
type Track struct {
	X []int32
	Y []int32
}

// ScaleTracks scales several independent devices with the same
// configuration. Each track gets its own scaler; when parallel is true the
// tracks are processed concurrently. The result is identical either way.
func ScaleTracks(config *Config, tracks []Track, parallel bool) ([]Track, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	output := make([]Track, len(tracks))

	if !parallel || len(tracks) <= 1 {
		for i, tr := range tracks {
			x, y, err := ScaleTrace(config, tr.X, tr.Y)
			if err != nil {
				return nil, fmt.Errorf("track %d: %w", i, err)
			}
			output[i] = Track{X: x, Y: y}
		}
		return output, nil
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(tracks))

	for i := range tracks {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			x, y, err := ScaleTrace(config, tracks[idx].X, tracks[idx].Y)
			if err != nil {
				errChan <- fmt.Errorf("track %d: %w", idx, err)
				return
			}
			output[idx] = Track{X: x, Y: y}
		}(i)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}
