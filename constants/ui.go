package constants

// Input
const (
	// SwipeThreshold is the drag distance in pixels that registers as a swipe
	SwipeThreshold = 30
)

// Terminal Mapping
const (
	// PixelsPerColumn maps one terminal column to virtual viewport pixels
	PixelsPerColumn = 10

	// PixelsPerRow maps one terminal row to virtual viewport pixels, rows are roughly twice as tall as columns
	PixelsPerRow = 20

	// StatusBarRows is reserved at the bottom of the terminal for score and state text
	StatusBarRows = 1
)

// Status Text
const (
	TextIdle     = " PRESS ENTER TO START "
	TextRunning  = " RUNNING "
	TextPaused   = " PAUSED - SPACE TO RESUME "
	TextGameOver = " GAME OVER "
)
