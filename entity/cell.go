// Package entity holds the positional data of a session: cells, the snake and the ball
package entity

import "fmt"

// Cell is the top-left pixel coordinate of a grid-aligned square
type Cell struct {
	X, Y int
}

// Step returns the cell one cellSize away along d
func (c Cell) Step(d Direction, cellSize int) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx*cellSize, Y: c.Y + dy*cellSize}
}

// Center returns the centre of a size-wide square anchored at c
func (c Cell) Center(size float64) (float64, float64) {
	return float64(c.X) + size/2, float64(c.Y) + size/2
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Ball is the single feeding target, Size may be smaller than a grid cell
type Ball struct {
	Cell
	Size int
}
