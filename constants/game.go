package constants

import "time"

// Simulation Loop Timing Constants
const (
	// FrameUpdateInterval is the fixed tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FrameDeltaSeconds is the simulation delta passed to each tick
	FrameDeltaSeconds = 0.016
)

// Speed multiplier adjustment
const (
	// SpeedStep is the per-keypress speed multiplier increment
	SpeedStep = 0.1

	// SpeedMin is the lowest allowed speed multiplier
	SpeedMin = 0.1
)
