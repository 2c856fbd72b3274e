package main

// Command-line handling
const (
	requiredArgs = 2 // input and output trace
	logPrefix    = "scale-trace: "
)

// Demo trace parameters
const (
	demoFrames     = 2000 // reports in the synthetic trace
	demoRate       = 1000 // Hz
	demoSlowRadius = 2.0  // counts per report while drawing the slow circle
	demoFastDelta  = 90   // counts per report during a swipe
	demoSwipeEvery = 400  // reports between swipes
	demoSwipeLen   = 20   // reports per swipe
	demoCirclePer  = 250  // reports per slow revolution
)
