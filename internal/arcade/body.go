package arcade

// DefaultMaxVelocity caps bodies that never set their own limit.
const DefaultMaxVelocity = 10000

// Body is an axis-aligned physics body anchored at its center.
type Body struct {
	Position     Vec // center
	Width        float64
	Height       float64
	Velocity     Vec
	Acceleration Vec
	Drag         Vec
	MaxVelocity  Vec

	// CollideWorldBounds keeps the body inside the world rectangle.
	CollideWorldBounds bool
	// CheckWorldBounds makes Step report when the body leaves the world.
	CheckWorldBounds bool

	outside bool
}

// NewBody creates a body of the given size centered on (x, y).
func NewBody(x, y, w, h float64) *Body {
	return &Body{
		Position:    Vec{x, y},
		Width:       w,
		Height:      h,
		MaxVelocity: Vec{DefaultMaxVelocity, DefaultMaxVelocity},
	}
}

// Bounds returns the body's bounding rectangle.
func (b *Body) Bounds() Rect {
	return Rect{
		X: b.Position.X - b.Width/2,
		Y: b.Position.Y - b.Height/2,
		W: b.Width,
		H: b.Height,
	}
}

// Reset moves the body to (x, y) and stops it.
func (b *Body) Reset(x, y float64) {
	b.Position = Vec{x, y}
	b.Velocity = Vec{}
	b.Acceleration = Vec{}
	b.outside = false
}

// Step integrates the body over dt seconds against the world rectangle.
// It returns true exactly when the body has just left the world; a body
// must come back before it can leave again. Only bodies with
// CheckWorldBounds set ever report.
func (b *Body) Step(dt float64, world Rect) (exited bool) {
	b.Velocity.X = computeVelocity(b.Velocity.X, b.Acceleration.X, b.Drag.X, b.MaxVelocity.X, dt)
	b.Velocity.Y = computeVelocity(b.Velocity.Y, b.Acceleration.Y, b.Drag.Y, b.MaxVelocity.Y, dt)

	b.Position = b.Position.Add(b.Velocity.Scale(dt))

	if b.CollideWorldBounds {
		b.clampTo(world)
	}

	if !b.CheckWorldBounds {
		return false
	}

	inWorld := world.Intersects(b.Bounds())
	switch {
	case !b.outside && !inWorld:
		b.outside = true
		return true
	case b.outside && inWorld:
		b.outside = false
	}
	return false
}

// computeVelocity applies acceleration, or drag toward zero when not
// accelerating, then caps the result at ±max.
func computeVelocity(v, accel, drag, max, dt float64) float64 {
	switch {
	case accel != 0:
		v += accel * dt
	case drag != 0:
		d := drag * dt
		switch {
		case v-d > 0:
			v -= d
		case v+d < 0:
			v += d
		default:
			v = 0
		}
	}

	if v > max {
		v = max
	} else if v < -max {
		v = -max
	}
	return v
}

func (b *Body) clampTo(world Rect) {
	bounds := b.Bounds()

	if bounds.X < world.X {
		b.Position.X = world.X + b.Width/2
		b.Velocity.X = 0
	} else if bounds.Right() > world.Right() {
		b.Position.X = world.Right() - b.Width/2
		b.Velocity.X = 0
	}

	if bounds.Y < world.Y {
		b.Position.Y = world.Y + b.Height/2
		b.Velocity.Y = 0
	} else if bounds.Bottom() > world.Bottom() {
		b.Position.Y = world.Bottom() - b.Height/2
		b.Velocity.Y = 0
	}
}
