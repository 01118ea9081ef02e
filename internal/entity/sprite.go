// Package entity holds the game's sprites and the fixed-capacity pools that
// recycle them.
package entity

import (
	"chosenoffset.com/shooter/internal/arcade"
)

// Sprite is a drawable entity with an arcade body.
type Sprite struct {
	Key      string // asset key of the image drawn for this sprite
	Body     *arcade.Body
	Rotation float64 // radians, 0 faces +x
	Health   int
	Alive    bool
	Visible  bool

	// OutOfBoundsKill kills the sprite when its body leaves the world.
	OutOfBoundsKill bool
}

// NewSprite creates a live sprite of the given size centered on (x, y).
func NewSprite(key string, x, y, w, h float64) *Sprite {
	return &Sprite{
		Key:     key,
		Body:    arcade.NewBody(x, y, w, h),
		Alive:   true,
		Visible: true,
	}
}

// ArcadeBody implements arcade.Collider.
func (s *Sprite) ArcadeBody() *arcade.Body {
	return s.Body
}

// Exists implements arcade.Collider. Dead sprites take no part in physics
// or overlap tests.
func (s *Sprite) Exists() bool {
	return s.Alive
}

// Position returns the sprite's center.
func (s *Sprite) Position() arcade.Vec {
	return s.Body.Position
}

// Width returns the sprite's width.
func (s *Sprite) Width() float64 {
	return s.Body.Width
}

// SetAngle sets the rotation from degrees.
func (s *Sprite) SetAngle(deg float64) {
	s.Rotation = arcade.DegToRad(deg)
}

// Kill takes the sprite out of play and hides it. Its slot is kept.
func (s *Sprite) Kill() {
	s.Alive = false
	s.Visible = false
	s.Body.Velocity = arcade.Vec{}
	s.Body.Acceleration = arcade.Vec{}
}

// Reset brings the sprite back into play at (x, y), standing still.
func (s *Sprite) Reset(x, y float64) {
	s.Body.Reset(x, y)
	s.Alive = true
	s.Visible = true
}

// Damage removes amount from the sprite's health and kills it once health
// runs out. Dead sprites take no damage.
func (s *Sprite) Damage(amount int) {
	if !s.Alive {
		return
	}
	s.Health -= amount
	if s.Health <= 0 {
		s.Health = 0
		s.Kill()
	}
}
