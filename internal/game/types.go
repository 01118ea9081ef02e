package game

import (
	"chosenoffset.com/shooter/internal/arcade"
)

// Camera tracks the viewport position in world coordinates.
type Camera struct {
	X, Y          float64 // top-left corner of the viewport
	Width, Height float64
}

// Follow centers the camera on target, clamped so the viewport stays inside
// bounds.
func (c *Camera) Follow(target arcade.Vec, bounds arcade.Rect) {
	c.X = target.X - c.Width/2
	c.Y = target.Y - c.Height/2

	if c.X > bounds.Right()-c.Width {
		c.X = bounds.Right() - c.Width
	}
	if c.Y > bounds.Bottom()-c.Height {
		c.Y = bounds.Bottom() - c.Height
	}
	if c.X < bounds.X {
		c.X = bounds.X
	}
	if c.Y < bounds.Y {
		c.Y = bounds.Y
	}
}

// ToWorld converts a screen position to world coordinates.
func (c *Camera) ToWorld(x, y int) arcade.Vec {
	return arcade.Vec{X: float64(x) + c.X, Y: float64(y) + c.Y}
}

// Pointer is the active pointer for one frame: the first touch on touch
// screens, the mouse otherwise.
type Pointer struct {
	ScreenX, ScreenY int
	World            arcade.Vec
	Down             bool
}

// Stats counts what happened during a session.
type Stats struct {
	ShotsFired     int
	Hits           int
	MonstersKilled int
	Reaims         int
}
