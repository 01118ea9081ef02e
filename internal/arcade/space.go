package arcade

import (
	"math"

	"github.com/solarlune/resolv"
)

// Collider is anything that owns a body and can drop out of play.
type Collider interface {
	ArcadeBody() *Body
	Exists() bool
}

// Space indexes colliders in a uniform grid so overlap tests only compare
// neighbours. Colliders that do not exist are kept registered but pulled out
// of the grid until they come back.
type Space struct {
	space    *resolv.Space
	world    Rect
	cellSize float64
	entries  []*spaceEntry
	byBody  map[*Body]*spaceEntry
}

type spaceEntry struct {
	collider Collider
	object   *resolv.Object
}

// NewSpace creates a space covering world, partitioned into square cells.
// The grid reaches one cell past every edge of the world, so colliders
// straddling an edge are still indexed.
func NewSpace(world Rect, cellSize int) *Space {
	cell := float64(cellSize)
	cols := int(math.Ceil(world.W/cell)) + 2
	rows := int(math.Ceil(world.H/cell)) + 2

	return &Space{
		space:    resolv.NewSpace(cols*cellSize, rows*cellSize, cellSize, cellSize),
		world:    world,
		cellSize: cell,
		byBody:   make(map[*Body]*spaceEntry),
	}
}

// gridBounds maps body bounds into grid space, offset by the padding cell
// and grown by a pixel on every side. Overlaps has the final say.
func (s *Space) gridBounds(b *Body) Rect {
	bounds := b.Bounds()
	return Rect{
		X: bounds.X - s.world.X + s.cellSize - 1,
		Y: bounds.Y - s.world.Y + s.cellSize - 1,
		W: bounds.W + 2,
		H: bounds.H + 2,
	}
}

// Add registers c under tag. Registering the same body twice is a no-op.
func (s *Space) Add(tag string, c Collider) {
	body := c.ArcadeBody()
	if _, ok := s.byBody[body]; ok {
		return
	}

	bounds := s.gridBounds(body)
	obj := resolv.NewObject(bounds.X, bounds.Y, bounds.W, bounds.H, tag)
	obj.Data = c

	e := &spaceEntry{collider: c, object: obj}
	s.entries = append(s.entries, e)
	s.byBody[body] = e
	s.sync(e)
}

// Len returns the number of registered colliders.
func (s *Space) Len() int {
	return len(s.entries)
}

// Clear unregisters every collider.
func (s *Space) Clear() {
	for _, e := range s.entries {
		if e.object.Space != nil {
			s.space.Remove(e.object)
		}
	}
	s.entries = nil
	s.byBody = make(map[*Body]*spaceEntry)
}

// Sync moves every registered collider's grid object to its body's current
// bounds, and drops colliders that no longer exist out of the grid.
func (s *Space) Sync() {
	for _, e := range s.entries {
		s.sync(e)
	}
}

func (s *Space) sync(e *spaceEntry) {
	if !e.collider.Exists() {
		if e.object.Space != nil {
			s.space.Remove(e.object)
		}
		return
	}

	bounds := s.gridBounds(e.collider.ArcadeBody())
	e.object.X = bounds.X
	e.object.Y = bounds.Y
	e.object.W = bounds.W
	e.object.H = bounds.H

	if e.object.Space == nil {
		s.space.Add(e.object)
	} else {
		e.object.Update()
	}
}

// Overlap calls fn for every pair (a, b) where a is one of as, b is a
// collider registered under tagB, and their bounds overlap. Pairs where
// either side stopped existing earlier in the same pass are skipped, so fn
// may kill either collider. The space must have been synced since the
// bodies last moved.
func Overlap[A, B Collider](s *Space, as []A, tagB string, fn func(a A, b B)) int {
	hits := 0
	for _, a := range as {
		if !a.Exists() {
			continue
		}
		e, ok := s.byBody[a.ArcadeBody()]
		if !ok || e.object.Space == nil {
			continue
		}

		collision := e.object.Check(0, 0, tagB)
		if collision == nil {
			continue
		}

		for _, obj := range collision.Objects {
			if !a.Exists() {
				break
			}
			b, ok := obj.Data.(B)
			if !ok || !b.Exists() {
				continue
			}
			if a.ArcadeBody().Bounds().Overlaps(b.ArcadeBody().Bounds()) {
				fn(a, b)
				hits++
			}
		}
	}
	return hits
}
