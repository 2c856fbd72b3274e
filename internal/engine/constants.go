package engine

import "github.com/tphakala/go-motion-scaler/internal/fixed"

// Block processing constants
const (
	// defaultBlockCapacity is the initial scratch size for MotionBlock.
	// Scratch grows on demand and is reused afterwards.
	defaultBlockCapacity = 64
)

// Strategy names reported through Name().
const (
	fixedStrategyName = "fixed-q16"
	floatStrategyName = "float64"
)

// maxCurveInput is the largest magnitude the float strategy feeds the
// curve. It matches fixed.Max so both strategies see the same saturated
// input; gains still divide by the true magnitude.
var maxCurveInput = fixed.Max.Float()
