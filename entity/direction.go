package entity

import (
	"fmt"
	"strings"
)

// Direction is a heading on the grid, screen coordinates (Up decreases Y)
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Delta returns the unit offset for one step in this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the 180 degree reverse
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d <= DirLeft
}

// ParseDirection accepts the names produced by String, case-insensitive
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "right":
		return DirRight, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
