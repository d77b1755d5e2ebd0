// Package geometry derives the play-field grid from the available viewport
package geometry

import (
	"math"

	"github.com/lixenwraith/vi-snake/constants"
)

// Geometry is the grid derived from a viewport
// Width and Height are the raw viewport bounds, not rounded to the grid
type Geometry struct {
	CellSize int
	Width    float64
	Height   float64
}

// Compute derives the grid from a container size using the default divisor
func Compute(width, height float64) Geometry {
	return ComputeWithDivisor(width, height, constants.GridDivisor)
}

// ComputeWithDivisor derives the grid with divisor cells across the shorter dimension
// Degenerate input is clamped: cell size never drops below MinCellSize
func ComputeWithDivisor(width, height float64, divisor int) Geometry {
	if width < 0 || math.IsNaN(width) {
		width = 0
	}
	if height < 0 || math.IsNaN(height) {
		height = 0
	}
	if divisor < 1 {
		divisor = constants.GridDivisor
	}

	cell := int(math.Floor(math.Min(width, height) / float64(divisor)))
	if cell < constants.MinCellSize {
		cell = constants.MinCellSize
	}

	return Geometry{
		CellSize: cell,
		Width:    width,
		Height:   height,
	}
}

// Contains reports whether a cell-sized square at (x, y) lies fully inside the bounds
func (g Geometry) Contains(x, y int) bool {
	fx, fy, c := float64(x), float64(y), float64(g.CellSize)
	return fx >= 0 && fy >= 0 && fx+c <= g.Width && fy+c <= g.Height
}

// Align floors a pixel coordinate to the grid
func (g Geometry) Align(v float64) int {
	c := g.CellSize
	if c < 1 {
		c = 1
	}
	return int(math.Floor(v/float64(c))) * c
}

// Columns returns the number of whole cells across the width
func (g Geometry) Columns() int {
	return int(g.Width) / g.CellSize
}

// Rows returns the number of whole cells down the height
func (g Geometry) Rows() int {
	return int(g.Height) / g.CellSize
}
