package trace

// WAV layout constants
const (
	// traceChannels is Δx and Δy.
	traceChannels = 2

	// wavFormatPCM is the WAVE_FORMAT_PCM format tag.
	wavFormatPCM = 1

	bitDepth16 = 16
	bitDepth24 = 24
	bitDepth32 = 32
)
