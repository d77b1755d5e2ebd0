package constants

import (
	"testing"
	"time"
)

// TestSpeedRampReachesFloor verifies the ramp constants reach MinSpeed in a whole number of steps
func TestSpeedRampReachesFloor(t *testing.T) {
	steps := (InitialSpeed - MinSpeed) / SpeedStep
	if steps <= 0 {
		t.Fatalf("Expected positive step count, got %d", steps)
	}
	if InitialSpeed-steps*SpeedStep != MinSpeed {
		t.Errorf("Ramp does not land on floor: %v - %d*%v != %v", InitialSpeed, steps, SpeedStep, MinSpeed)
	}
	if steps != 30 {
		t.Errorf("Expected 30 balls to reach the floor, got %d", steps)
	}
}

// TestTerminalMappingIsSquareFriendly verifies a terminal cell is twice as tall as it is wide
func TestTerminalMappingIsSquareFriendly(t *testing.T) {
	if PixelsPerRow != 2*PixelsPerColumn {
		t.Errorf("Expected rows twice as tall as columns, got %d/%d", PixelsPerRow, PixelsPerColumn)
	}
	if ResizeSettleDelay <= 0 || ResizeSettleDelay > time.Second {
		t.Errorf("Unexpected settle delay %v", ResizeSettleDelay)
	}
}
