package entity

import (
	"errors"
	"fmt"
)

// ErrPoolFull is returned when adding to a pool that has no free slot.
var ErrPoolFull = errors.New("entity: pool is full")

// Pool is a fixed-capacity group of sprites. Sprites are recycled between
// alive and dead instead of being reallocated; a slot, once filled, keeps
// its sprite for the lifetime of the pool.
type Pool struct {
	sprites  []*Sprite
	capacity int
}

// NewPool creates an empty pool that holds at most capacity sprites.
func NewPool(capacity int) *Pool {
	return &Pool{
		sprites:  make([]*Sprite, 0, capacity),
		capacity: capacity,
	}
}

// Add places s in the next free slot.
func (p *Pool) Add(s *Sprite) error {
	if len(p.sprites) >= p.capacity {
		return fmt.Errorf("%w (capacity %d)", ErrPoolFull, p.capacity)
	}
	p.sprites = append(p.sprites, s)
	return nil
}

// CreateMultiple fills up to n free slots with dead sprites of the given
// image key and size, and returns how many were created.
func (p *Pool) CreateMultiple(n int, key string, w, h float64) int {
	created := 0
	for i := 0; i < n && len(p.sprites) < p.capacity; i++ {
		s := NewSprite(key, 0, 0, w, h)
		s.Alive = false
		s.Visible = false
		p.sprites = append(p.sprites, s)
		created++
	}
	return created
}

// FirstDead returns the first dead sprite in slot order, or nil when every
// sprite is alive.
func (p *Pool) FirstDead() *Sprite {
	for _, s := range p.sprites {
		if !s.Alive {
			return s
		}
	}
	return nil
}

// ForEach calls fn for every sprite, alive or dead.
func (p *Pool) ForEach(fn func(*Sprite)) {
	for _, s := range p.sprites {
		fn(s)
	}
}

// ForEachAlive calls fn for every live sprite.
func (p *Pool) ForEachAlive(fn func(*Sprite)) {
	for _, s := range p.sprites {
		if s.Alive {
			fn(s)
		}
	}
}

// CountAlive returns the number of live sprites.
func (p *Pool) CountAlive() int {
	n := 0
	for _, s := range p.sprites {
		if s.Alive {
			n++
		}
	}
	return n
}

// Sprites returns the pool's slots. The slice must not be modified.
func (p *Pool) Sprites() []*Sprite {
	return p.sprites
}

// Len returns the number of filled slots.
func (p *Pool) Len() int {
	return len(p.sprites)
}

// Clear empties every slot.
func (p *Pool) Clear() {
	p.sprites = p.sprites[:0]
}
