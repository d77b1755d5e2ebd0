package constants

import "time"

// Game Loop Timing
const (
	// InitialSpeed is the tick interval at session start
	InitialSpeed = 120 * time.Millisecond

	// MinSpeed is the fastest tick interval the speed ramp reaches
	MinSpeed = 60 * time.Millisecond

	// SpeedStep is subtracted from the tick interval per ball eaten
	SpeedStep = 2 * time.Millisecond

	// ResizeSettleDelay is how long a running session waits after a resize before recomputing geometry
	ResizeSettleDelay = 200 * time.Millisecond
)

// Grid
const (
	// GridDivisor is the number of cells spanning the shorter viewport dimension
	GridDivisor = 25

	// MinCellSize guards downstream divisions on degenerate viewports
	MinCellSize = 1
)
