package game

import (
	"math"

	"go.uber.org/zap"

	"chosenoffset.com/shooter/internal/arcade"
	"chosenoffset.com/shooter/internal/entity"
	"chosenoffset.com/shooter/internal/render"
)

// Update advances the session by one tick: physics first, then input,
// firing, monster steering and bullet/monster overlap.
func (g *Game) Update() error {
	g.Now += g.tick

	g.stepBodies()

	g.readPointer()
	g.movePlayer()
	g.rotatePlayerToPointer()
	g.fireWhenButtonClicked()
	g.moveMonsters()

	g.Space.Sync()
	arcade.Overlap(g.Space, g.Bullets.Sprites(), tagMonster, g.bulletHitMonster)

	g.Camera.Follow(g.Player.Position(), g.World)
	return nil
}

// stepBodies integrates every live body, then handles the out-of-bounds
// events the step produced.
func (g *Game) stepBodies() {
	dt := g.tick.Seconds()

	g.Player.Body.Step(dt, g.World)

	for _, b := range g.stepPool(g.Bullets, dt) {
		if b.OutOfBoundsKill {
			b.Kill()
		}
	}

	for _, m := range g.stepPool(g.Monsters, dt) {
		g.resetMonster(m)
	}
}

// stepPool steps the live sprites of p and returns the ones that just left
// the world. The returned slice is reused by the next call.
func (g *Game) stepPool(p *entity.Pool, dt float64) []*entity.Sprite {
	g.exited = g.exited[:0]
	p.ForEachAlive(func(s *entity.Sprite) {
		if s.Body.Step(dt, g.World) {
			g.exited = append(g.exited, s)
		}
	})
	return g.exited
}

// resetMonster turns a monster that left the world toward the player.
func (g *Game) resetMonster(m *entity.Sprite) {
	m.Rotation = arcade.AngleBetween(m.Position(), g.Player.Position())
	g.Stats.Reaims++
}

func (g *Game) readPointer() {
	var x, y int
	down := false

	if touches := g.InputMgr.TouchPositions(); len(touches) > 0 {
		x, y = touches[0].X, touches[0].Y
		down = true
	} else {
		x, y = g.InputMgr.GetCursorPosition()
		down = g.InputMgr.IsMouseButtonPressed(render.MouseButtonLeft)
	}

	g.Pointer = Pointer{
		ScreenX: x,
		ScreenY: y,
		World:   g.Camera.ToWorld(x, y),
		Down:    down,
	}
}

// movePlayer accelerates along one axis. Left wins over right, right over
// up, up over down; the other axis keeps its acceleration until no
// direction is held.
func (g *Game) movePlayer() {
	accel := g.Config.Player.Acceleration
	body := g.Player.Body

	switch {
	case g.InputMgr.IsKeyPressed(render.KeyLeft):
		body.Acceleration.X = -accel
	case g.InputMgr.IsKeyPressed(render.KeyRight):
		body.Acceleration.X = accel
	case g.InputMgr.IsKeyPressed(render.KeyUp):
		body.Acceleration.Y = -accel
	case g.InputMgr.IsKeyPressed(render.KeyDown):
		body.Acceleration.Y = accel
	default:
		body.Acceleration = arcade.Vec{}
	}
}

func (g *Game) rotatePlayerToPointer() {
	g.Player.Rotation = arcade.AngleBetween(g.Player.Position(), g.Pointer.World)
}

func (g *Game) fireWhenButtonClicked() {
	if g.Pointer.Down {
		g.fire()
	}
}

// fire launches the first dead bullet from the muzzle toward the pointer.
// With every bullet in flight the shot is dropped.
func (g *Game) fire() {
	if g.Now <= g.NextFire {
		return
	}

	bullet := g.Bullets.FirstDead()
	if bullet == nil {
		return
	}

	length := g.Player.Width() * 0.5
	pos := g.Player.Position()
	x := pos.X + math.Cos(g.Player.Rotation)*length
	y := pos.Y + math.Sin(g.Player.Rotation)*length

	bullet.Reset(x, y)
	bullet.Rotation = g.Player.Rotation
	arcade.MoveToward(bullet.Body, g.Pointer.World, g.Config.Weapon.BulletSpeed)

	g.NextFire = g.Now + g.fireRate
	g.Stats.ShotsFired++
}

// moveMonsters keeps every live monster flying straight along its heading.
func (g *Game) moveMonsters() {
	speed := g.Config.Monsters.Speed
	g.Monsters.ForEachAlive(func(m *entity.Sprite) {
		m.Body.Velocity = arcade.VelocityFromRotation(m.Rotation, speed)
	})
}

func (g *Game) bulletHitMonster(bullet, monster *entity.Sprite) {
	bullet.Kill()
	monster.Damage(1)
	g.Stats.Hits++

	if !monster.Alive {
		g.Stats.MonstersKilled++
		g.Logger.Debug("monster killed",
			zap.Float64("x", monster.Position().X),
			zap.Float64("y", monster.Position().Y),
			zap.Int("remaining", g.Monsters.CountAlive()),
		)
	}
}
