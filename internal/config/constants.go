package config

// Setting keys, relative to the "scaler" section.
const (
	KeyEnabled         = "enabled"
	KeyMaxOutput       = "max_output"
	KeyHalfInput       = "half_input"
	KeyExponentTenths  = "exponent_tenths"
	KeyTrackRemainders = "track_remainders"
	KeyMode            = "mode"
	KeyArithmetic      = "arithmetic"
	KeyShape           = "shape"
	KeyScaleCoeffMilli = "scale_coeff_milli"
	KeySIMD            = "simd"
)

// Keys lists every setting.
var Keys = []string{
	KeyEnabled,
	KeyMaxOutput,
	KeyHalfInput,
	KeyExponentTenths,
	KeyTrackRemainders,
	KeyMode,
	KeyArithmetic,
	KeyShape,
	KeyScaleCoeffMilli,
	KeySIMD,
}

const (
	section    = "scaler"
	envPrefix  = "MOTION_SCALER"
	configName = "motion-scaler"
)
