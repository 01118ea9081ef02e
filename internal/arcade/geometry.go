// Package arcade implements the small slice of arcade-style physics the game
// needs: axis-aligned bodies with acceleration, drag and a speed cap, world
// bounds handling, and overlap testing between groups of bodies.
package arcade

import "math"

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Scale returns v*s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{r.X + r.W/2, r.Y + r.H/2}
}

// Intersects reports whether r and o share any point, edges included.
// Empty rectangles never intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return !(r.Right() < o.X || r.Bottom() < o.Y || r.X > o.Right() || r.Y > o.Bottom())
}

// Overlaps reports whether r and o share interior area. Touching edges do
// not count.
func (r Rect) Overlaps(o Rect) bool {
	return !(r.Right() <= o.X || r.Bottom() <= o.Y || r.X >= o.Right() || r.Y >= o.Bottom())
}

// AngleBetween returns the angle in radians from a to b.
func AngleBetween(a, b Vec) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// VelocityFromRotation returns a velocity of the given speed along rotation
// (radians).
func VelocityFromRotation(rotation, speed float64) Vec {
	return Vec{math.Cos(rotation) * speed, math.Sin(rotation) * speed}
}

// MoveToward sets the body's velocity to travel toward target at speed and
// returns the angle of travel in radians.
func MoveToward(b *Body, target Vec, speed float64) float64 {
	angle := AngleBetween(b.Position, target)
	b.Velocity = VelocityFromRotation(angle, speed)
	return angle
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
