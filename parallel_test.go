package scaler

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-motion-scaler/internal/testutil"
)

// randomTracks builds n tracks of mixed slow and fast motion.
func randomTracks(n, length int, seed uint64) []Track {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	tracks := make([]Track, n)
	for i := range tracks {
		tracks[i] = Track{X: make([]int32, length), Y: make([]int32, length)}
		for j := range length {
			tracks[i].X[j] = rng.Int32N(201) - 100
			tracks[i].Y[j] = rng.Int32N(41) - 20
		}
	}
	return tracks
}

// =============================================================================
// Synchronized
// =============================================================================

func TestSynchronized_MatchesInner(t *testing.T) {
	plain := mustNew(t, DefaultConfig())
	wrapped := Synchronized(mustNew(t, DefaultConfig()))

	for _, d := range []int32{3, 40, -60, 0, 15} {
		assert.Equal(t, plain.Handle(Motion(AxisX, d)), wrapped.Handle(Motion(AxisX, d)))
		assert.Equal(t,
			plain.HandleSample(Sample{Axis: AxisY, Delta: d, EndOfFrame: true}),
			wrapped.HandleSample(Sample{Axis: AxisY, Delta: d, EndOfFrame: true}))
	}

	assert.Equal(t, plain.Config(), wrapped.Config())
	assert.Equal(t, GetInfo(plain), GetInfo(wrapped))
}

func TestSynchronized_Idempotent(t *testing.T) {
	s := Synchronized(mustNew(t, DefaultConfig()))
	assert.Same(t, s, Synchronized(s))
}

func TestSynchronized_ConcurrentUse(t *testing.T) {
	cfg := DefaultConfig()
	s := Synchronized(mustNew(t, cfg))

	const workers = 8
	const perWorker = 500

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			out := make([]int32, 4)
			for i := range perWorker {
				d := int32((id*perWorker+i)%200 - 100)
				got := s.Handle(Motion(AxisX, d))
				assert.LessOrEqual(t, got, cfg.MaxOutput)
				assert.GreaterOrEqual(t, got, -cfg.MaxOutput)
				if i%50 == 0 {
					assert.NoError(t, s.ProcessBlock(AxisY, []int32{1, 2, 3, 4}, out))
					s.Handle(Boundary())
				}
			}
		}(w)
	}
	wg.Wait()

	s.Reset()
	fresh := mustNew(t, cfg)
	assert.Equal(t, fresh.Handle(Motion(AxisX, 30)), s.Handle(Motion(AxisX, 30)))
}

// =============================================================================
// ScaleTracks
// =============================================================================

func TestScaleTracks_ParallelMatchesSequential(t *testing.T) {
	for name, cfg := range variants(DefaultConfig()) {
		t.Run(name, func(t *testing.T) {
			tracks := randomTracks(6, 300, 7)

			seq, err := ScaleTracks(&cfg, tracks, false)
			require.NoError(t, err)
			par, err := ScaleTracks(&cfg, tracks, true)
			require.NoError(t, err)

			require.Len(t, par, len(seq))
			for i := range seq {
				assert.Equal(t, seq[i].X, par[i].X, "track %d X", i)
				assert.Equal(t, seq[i].Y, par[i].Y, "track %d Y", i)
			}
		})
	}
}

func TestScaleTracks_MatchesScaleTrace(t *testing.T) {
	cfg := DefaultConfig()
	tracks := randomTracks(3, 100, 11)

	out, err := ScaleTracks(&cfg, tracks, true)
	require.NoError(t, err)

	for i, tr := range tracks {
		x, y, err := ScaleTrace(&cfg, tr.X, tr.Y)
		require.NoError(t, err)
		assert.Equal(t, x, out[i].X)
		assert.Equal(t, y, out[i].Y)
		assert.Equal(t, testutil.Sum32(x), testutil.Sum32(out[i].X))
		testutil.AssertBounded(t, out[i].X, cfg.MaxOutput, "track %d", i)
		testutil.AssertBounded(t, out[i].Y, cfg.MaxOutput, "track %d", i)
	}
}

func TestScaleTracks_Errors(t *testing.T) {
	_, err := ScaleTracks(nil, nil, true)
	require.ErrorIs(t, err, ErrInvalidConfig)

	bad := DefaultConfig()
	bad.MaxOutput = -1
	_, err = ScaleTracks(&bad, randomTracks(2, 10, 1), true)
	require.ErrorIs(t, err, ErrInvalidConfig)

	cfg := DefaultConfig()
	tracks := randomTracks(3, 10, 1)
	tracks[2].Y = tracks[2].Y[:5]
	for _, parallel := range []bool{false, true} {
		_, err = ScaleTracks(&cfg, tracks, parallel)
		require.ErrorIs(t, err, ErrTraceLength)
		assert.Contains(t, err.Error(), "track 2")
	}
}

func TestScaleTracks_Empty(t *testing.T) {
	cfg := DefaultConfig()
	out, err := ScaleTracks(&cfg, nil, true)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func BenchmarkScaleTracks(b *testing.B) {
	cfg := DefaultConfig()
	tracks := randomTracks(8, 2000, 3)

	for _, parallel := range []bool{false, true} {
		name := "sequential"
		if parallel {
			name = "parallel"
		}
		b.Run(name, func(b *testing.B) {
			for b.Loop() {
				_, _ = ScaleTracks(&cfg, tracks, parallel)
			}
		})
	}
}
