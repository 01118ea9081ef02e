package game

import (
	"image"
	"math"
	"testing"

	"chosenoffset.com/shooter/internal/arcade"
	"chosenoffset.com/shooter/internal/entity"
	"chosenoffset.com/shooter/internal/render"
)

// placeBullet brings a dead bullet into play, standing still at pos.
func placeBullet(t *testing.T, g *Game, pos arcade.Vec) *entity.Sprite {
	t.Helper()
	b := g.Bullets.FirstDead()
	if b == nil {
		t.Fatal("Expected a dead bullet in the pool")
	}
	b.Reset(pos.X, pos.Y)
	return b
}

func firstMonster(t *testing.T, g *Game) *entity.Sprite {
	t.Helper()
	if g.Monsters.Len() == 0 {
		t.Fatal("Expected at least one monster")
	}
	return g.Monsters.Sprites()[0]
}

func TestNoInputStopsAccelerating(t *testing.T) {
	h := newHarness(t)
	h.game.Player.Body.Acceleration = arcade.Vec{X: 5, Y: 5}

	h.update(t, 1)

	if acc := h.game.Player.Body.Acceleration; acc.X != 0 || acc.Y != 0 {
		t.Errorf("Expected zero acceleration, got (%v, %v)", acc.X, acc.Y)
	}
}

func TestMovementPriority(t *testing.T) {
	h := newHarness(t)
	body := h.game.Player.Body

	h.input.keys[render.KeyLeft] = true
	h.input.keys[render.KeyRight] = true
	h.input.keys[render.KeyDown] = true
	h.update(t, 1)
	if body.Acceleration.X != -500 || body.Acceleration.Y != 0 {
		t.Errorf("Expected left to win with (-500, 0), got (%v, %v)", body.Acceleration.X, body.Acceleration.Y)
	}

	h.input.keys[render.KeyLeft] = false
	h.update(t, 1)
	if body.Acceleration.X != 500 {
		t.Errorf("Expected right to win over down, got x=%v", body.Acceleration.X)
	}

	// One axis per tick: the held-over x acceleration survives a switch to
	// a vertical key.
	h.input.keys[render.KeyRight] = false
	h.input.keys[render.KeyDown] = false
	h.input.keys[render.KeyUp] = true
	h.update(t, 1)
	if body.Acceleration.X != 500 || body.Acceleration.Y != -500 {
		t.Errorf("Expected (500, -500), got (%v, %v)", body.Acceleration.X, body.Acceleration.Y)
	}

	h.input.keys[render.KeyUp] = false
	h.update(t, 1)
	if body.Acceleration.X != 0 || body.Acceleration.Y != 0 {
		t.Errorf("Expected zero acceleration after release, got (%v, %v)", body.Acceleration.X, body.Acceleration.Y)
	}
}

func TestPlayerSpeedIsCapped(t *testing.T) {
	h := newHarness(t)
	h.input.keys[render.KeyRight] = true

	h.update(t, 120)

	if v := h.game.Player.Body.Velocity.X; v != 300 {
		t.Errorf("Expected velocity capped at 300, got %v", v)
	}
}

func TestPlayerFacesPointer(t *testing.T) {
	h := newHarness(t)
	g := h.game
	h.input.cursorX, h.input.cursorY = 100, 50

	h.update(t, 1)

	if g.Pointer.World.X != 588 || g.Pointer.World.Y != 750 {
		t.Errorf("Expected pointer at world (588, 750), got (%v, %v)", g.Pointer.World.X, g.Pointer.World.Y)
	}
	want := arcade.AngleBetween(g.Player.Position(), g.Pointer.World)
	if g.Player.Rotation != want {
		t.Errorf("Expected rotation %v, got %v", want, g.Player.Rotation)
	}
}

func TestTouchActsAsPointer(t *testing.T) {
	h := newHarness(t)
	g := h.game
	h.input.cursorX, h.input.cursorY = 10, 10
	h.input.touches = []image.Point{{X: 600, Y: 300}}

	h.update(t, 1)

	if !g.Pointer.Down {
		t.Error("Expected a touch to hold the pointer down")
	}
	if g.Pointer.World.X != 1088 || g.Pointer.World.Y != 1000 {
		t.Errorf("Expected pointer at world (1088, 1000), got (%v, %v)", g.Pointer.World.X, g.Pointer.World.Y)
	}
	if g.Stats.ShotsFired != 1 {
		t.Errorf("Expected touch to fire once, got %d", g.Stats.ShotsFired)
	}
}

func TestFireLaunchesBulletTowardPointer(t *testing.T) {
	h := newHarness(t)
	g := h.game
	h.input.cursorX, h.input.cursorY = 900, 300
	h.input.mouse = true

	h.update(t, 1)

	if g.Bullets.CountAlive() != 1 {
		t.Fatalf("Expected 1 bullet in flight, got %d", g.Bullets.CountAlive())
	}
	b := g.Bullets.Sprites()[0]
	if pos := b.Position(); pos.X != 1016 || pos.Y != 1000 {
		t.Errorf("Expected bullet at the muzzle (1016, 1000), got (%v, %v)", pos.X, pos.Y)
	}
	if b.Body.Velocity.X != 800 || b.Body.Velocity.Y != 0 {
		t.Errorf("Expected velocity (800, 0), got (%v, %v)", b.Body.Velocity.X, b.Body.Velocity.Y)
	}
	if b.Rotation != g.Player.Rotation {
		t.Errorf("Expected bullet rotation %v, got %v", g.Player.Rotation, b.Rotation)
	}
}

func TestFireCooldown(t *testing.T) {
	h := newHarness(t)
	g := h.game
	h.input.cursorX, h.input.cursorY = 900, 300
	h.input.mouse = true

	h.update(t, 2)

	if g.Stats.ShotsFired != 1 {
		t.Errorf("Expected 1 shot within the cooldown, got %d", g.Stats.ShotsFired)
	}
	if g.Bullets.CountAlive() != 1 {
		t.Errorf("Expected 1 bullet in flight, got %d", g.Bullets.CountAlive())
	}
}

func TestHoldingTriggerForOneSecond(t *testing.T) {
	h := newHarness(t, arcade.Vec{X: 300, Y: 1800})
	g := h.game
	h.input.cursorX, h.input.cursorY = 900, 300
	h.input.mouse = true

	h.update(t, 60)

	if g.Stats.ShotsFired < 6 || g.Stats.ShotsFired > 7 {
		t.Errorf("Expected 6 or 7 shots in one second, got %d", g.Stats.ShotsFired)
	}
	if g.Bullets.CountAlive() != g.Stats.ShotsFired {
		t.Errorf("Expected every shot still in flight, got %d alive of %d", g.Bullets.CountAlive(), g.Stats.ShotsFired)
	}
}

func TestFireWithExhaustedPool(t *testing.T) {
	h := newHarness(t, arcade.Vec{X: 1500, Y: 1500})
	g := h.game
	g.Bullets.ForEach(func(b *entity.Sprite) {
		b.Reset(50, 50)
	})
	h.input.mouse = true

	h.update(t, 1)

	if g.Stats.ShotsFired != 0 {
		t.Errorf("Expected no shot with every bullet in flight, got %d", g.Stats.ShotsFired)
	}
	if g.Bullets.CountAlive() != 20 {
		t.Errorf("Expected 20 bullets alive, got %d", g.Bullets.CountAlive())
	}

	// A dropped shot does not start the cooldown.
	g.Bullets.Sprites()[0].Kill()
	h.update(t, 1)
	if g.Stats.ShotsFired != 1 {
		t.Errorf("Expected a shot once a bullet is free, got %d", g.Stats.ShotsFired)
	}
}

func TestBulletLeavingWorldIsKilled(t *testing.T) {
	h := newHarness(t)
	b := placeBullet(t, h.game, arcade.Vec{X: 1995, Y: 1000})
	b.Body.Velocity = arcade.Vec{X: 800}

	h.update(t, 1)

	if b.Alive {
		t.Error("Expected bullet to die once it left the world")
	}
}

func TestMonstersFlyAlongHeading(t *testing.T) {
	h := newHarness(t, arcade.Vec{X: 1500, Y: 1000})
	m := firstMonster(t, h.game)
	m.Rotation = 0

	h.update(t, 2)

	if m.Body.Velocity.X != 100 || m.Body.Velocity.Y != 0 {
		t.Errorf("Expected velocity (100, 0), got (%v, %v)", m.Body.Velocity.X, m.Body.Velocity.Y)
	}
	if m.Position().X <= 1500 {
		t.Errorf("Expected monster to move right, got x=%v", m.Position().X)
	}
}

func TestMonsterReaimsOnceWhenLeavingWorld(t *testing.T) {
	h := newHarness(t, arcade.Vec{X: 1500, Y: 1000})
	g := h.game
	m := firstMonster(t, g)
	m.Body.Position = arcade.Vec{X: 2015, Y: 1000}
	m.Rotation = 0
	m.Body.Velocity = arcade.Vec{X: 100}

	h.update(t, 1)

	if g.Stats.Reaims != 1 {
		t.Fatalf("Expected 1 re-aim, got %d", g.Stats.Reaims)
	}
	if math.Abs(m.Rotation-math.Pi) > 1e-9 {
		t.Errorf("Expected monster to face the player (pi), got %v", m.Rotation)
	}

	h.update(t, 30)

	if g.Stats.Reaims != 1 {
		t.Errorf("Expected a single re-aim per exit, got %d", g.Stats.Reaims)
	}
	if !m.Alive {
		t.Error("Expected monster to survive leaving the world")
	}
	if m.Position().X >= 2000 {
		t.Errorf("Expected monster back in the world, got x=%v", m.Position().X)
	}
}

func TestBulletHitCostsOneHealth(t *testing.T) {
	h := newHarness(t, arcade.Vec{X: 300, Y: 300})
	g := h.game
	m := firstMonster(t, g)
	b := placeBullet(t, g, m.Position())

	h.update(t, 1)

	if b.Alive {
		t.Error("Expected bullet to die on impact")
	}
	if m.Health != 4 {
		t.Errorf("Expected monster health 4, got %d", m.Health)
	}
	if !m.Alive {
		t.Error("Expected monster to survive one hit")
	}
	if g.Stats.Hits != 1 {
		t.Errorf("Expected 1 hit, got %d", g.Stats.Hits)
	}
}

func TestBulletHitNearWorldEdge(t *testing.T) {
	h := newHarness(t, arcade.Vec{X: 1992, Y: 1000}, arcade.Vec{X: 1000, Y: 1992})
	g := h.game
	right, bottom := g.Monsters.Sprites()[0], g.Monsters.Sprites()[1]
	right.Rotation, bottom.Rotation = math.Pi, -math.Pi/2

	placeBullet(t, g, arcade.Vec{X: 1995, Y: 1000})
	placeBullet(t, g, arcade.Vec{X: 1000, Y: 1995})

	h.update(t, 1)

	if right.Health != 4 {
		t.Errorf("Expected the monster on the right edge at health 4, got %d", right.Health)
	}
	if bottom.Health != 4 {
		t.Errorf("Expected the monster on the bottom edge at health 4, got %d", bottom.Health)
	}
	if g.Bullets.CountAlive() != 0 {
		t.Errorf("Expected both bullets consumed, got %d alive", g.Bullets.CountAlive())
	}
}

func TestMonsterDiesAfterFiveHits(t *testing.T) {
	h := newHarness(t, arcade.Vec{X: 300, Y: 300})
	g := h.game
	m := firstMonster(t, g)

	for i := 1; i <= 5; i++ {
		placeBullet(t, g, m.Position())
		h.update(t, 1)
		if m.Health != 5-i {
			t.Fatalf("Expected health %d after hit %d, got %d", 5-i, i, m.Health)
		}
	}

	if m.Alive || m.Visible {
		t.Error("Expected monster to be dead and hidden at zero health")
	}
	if g.Bullets.CountAlive() != 0 {
		t.Errorf("Expected every bullet consumed, got %d alive", g.Bullets.CountAlive())
	}
	if g.Stats.MonstersKilled != 1 {
		t.Errorf("Expected 1 kill, got %d", g.Stats.MonstersKilled)
	}
	if !g.Cleared() {
		t.Error("Expected the level to be cleared")
	}

	sixth := placeBullet(t, g, m.Position())
	h.update(t, 10)

	if !sixth.Alive {
		t.Error("Expected a bullet to pass through a dead monster")
	}
	if m.Alive || m.Health != 0 {
		t.Errorf("Expected monster to stay dead at 0 health, got alive=%v health=%d", m.Alive, m.Health)
	}
	if g.Stats.Hits != 5 {
		t.Errorf("Expected 5 hits, got %d", g.Stats.Hits)
	}
}

func TestKillingBlowSparesLaterBullets(t *testing.T) {
	h := newHarness(t, arcade.Vec{X: 300, Y: 300})
	g := h.game
	m := firstMonster(t, g)
	m.Health = 1

	first := placeBullet(t, g, m.Position())
	second := placeBullet(t, g, m.Position())

	h.update(t, 1)

	if first.Alive {
		t.Error("Expected the first bullet to die on impact")
	}
	if !second.Alive {
		t.Error("Expected the second bullet to miss the dead monster")
	}
	if m.Alive || m.Health != 0 {
		t.Errorf("Expected monster dead at 0 health, got alive=%v health=%d", m.Alive, m.Health)
	}
}
