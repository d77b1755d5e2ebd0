package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)  // Tokyo Night background
	RgbFieldEdge  = tcell.NewRGBColor(60, 62, 80)  // Outside the play field
	RgbSnakeHead  = tcell.NewRGBColor(50, 255, 50) // Bright Green
	RgbSnakeBody  = tcell.NewRGBColor(0, 170, 0)   // Normal Green
	RgbSnakeDead  = tcell.NewRGBColor(180, 50, 50) // Dark Red
	RgbBall       = tcell.NewRGBColor(255, 80, 80) // Normal Red

	RgbStatusText    = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbStatusBar     = tcell.NewRGBColor(255, 255, 255) // White
	RgbDirectionIdle = tcell.NewRGBColor(120, 120, 120) // Gray arrows
	RgbDirectionOn   = tcell.NewRGBColor(255, 165, 0)   // Orange for the queued heading
	RgbOverlayBg     = tcell.NewRGBColor(0, 0, 0)
	RgbOverlayText   = tcell.NewRGBColor(255, 255, 255)

	// Status bar backgrounds
	RgbPhaseIdleBg     = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbPhaseRunningBg  = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbPhasePausedBg   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbPhaseGameOverBg = tcell.NewRGBColor(200, 50, 50)   // Red
)

// PhaseBackground returns the status bar color for a phase
func PhaseBackground(p engine.Phase) tcell.Color {
	switch p {
	case engine.PhaseRunning:
		return RgbPhaseRunningBg
	case engine.PhasePaused:
		return RgbPhasePausedBg
	case engine.PhaseGameOver:
		return RgbPhaseGameOverBg
	default:
		return RgbPhaseIdleBg
	}
}
