package constants

// Snake
const (
	// InitialSnakeLength is the number of cells in a freshly started snake
	InitialSnakeLength = 3

	// StartFraction places the initial head at 1/StartFraction of each viewport axis
	StartFraction = 4
)

// Ball Spawning
const (
	// BallSize is the rendered ball edge in pixels, may be smaller than a cell
	BallSize = 15

	// SpawnMaxAttempts is the number of random placements tried before falling back
	SpawnMaxAttempts = 50

	// SpawnFallbackCells is the fallback offset, in cells, from the far corner
	SpawnFallbackCells = 3
)
