package scaler

// Configuration limits
const (
	// maxMaxOutput is the largest bound representable as a 16.16 count.
	maxMaxOutput = 16383

	minHalfInput = 1
)

// Default configuration values
const (
	DefaultMaxOutput       = 127
	DefaultHalfInput       = 50
	DefaultExponentTenths  = 10
	DefaultScaleCoeffMilli = 100
)

// Names used by String and the Parse functions.
const (
	modeLatchedName   = "latched"
	modeImmediateName = "immediate"

	arithmeticFixedName = "fixed"
	arithmeticFloatName = "float"

	shapeSigmoidName   = "sigmoid"
	shapeQuadraticName = "quadratic"
)

const (
	simdNone         = "none"
	disabledStrategy = "passthrough"
)
