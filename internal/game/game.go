package game

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"chosenoffset.com/shooter/internal/arcade"
	"chosenoffset.com/shooter/internal/assets"
	"chosenoffset.com/shooter/internal/config"
	"chosenoffset.com/shooter/internal/entity"
	"chosenoffset.com/shooter/internal/render"
)

// Overlap tags
const (
	tagBullet  = "bullet"
	tagMonster = "monster"
)

// Game holds all state of one play session. The frame-loop driver owns it
// and calls Setup once, Update every tick, and Teardown at the end.
type Game struct {
	Config   *config.Config
	Logger   *zap.Logger
	Renderer render.Renderer
	InputMgr render.InputManager
	Assets   *assets.Cache
	Rand     *rand.Rand
	Desktop  bool

	World    arcade.Rect
	Space    *arcade.Space
	Player   *entity.Sprite
	Bullets  *entity.Pool
	Monsters *entity.Pool
	Camera   Camera
	Pointer  Pointer

	// Game clock, advanced by one tick per Update.
	Now      time.Duration
	NextFire time.Duration
	Stats    Stats

	tick     time.Duration
	fireRate time.Duration
	exited   []*entity.Sprite
}

// New creates a game session. Nothing is loaded until Setup.
func New(cfg *config.Config, r render.Renderer, input render.InputManager, loader render.ResourceLoader, log *zap.Logger, desktop bool) *Game {
	seed := cfg.Monsters.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		Config:   cfg,
		Logger:   log,
		Renderer: r,
		InputMgr: input,
		Assets:   assets.NewCache(loader),
		Rand:     rand.New(rand.NewSource(seed)),
		Desktop:  desktop,
		tick:     time.Second / time.Duration(cfg.Window.TPS),
		fireRate: time.Duration(cfg.Weapon.FireRateMS) * time.Millisecond,
	}
}

// Setup loads assets and builds the world, the bullet pool, the player and
// the monsters.
func (g *Game) Setup() error {
	g.createWorld()

	if err := g.Assets.LoadGame(g.Config.Assets, g.Desktop); err != nil {
		return fmt.Errorf("failed to load assets: %w", err)
	}

	if err := g.createBullets(); err != nil {
		return err
	}
	if err := g.createPlayer(); err != nil {
		return err
	}
	g.setupCamera()
	if err := g.createMonsters(); err != nil {
		return err
	}

	g.Logger.Info("game ready",
		zap.Float64("world_width", g.World.W),
		zap.Float64("world_height", g.World.H),
		zap.Int("bullets", g.Bullets.Len()),
		zap.Int("monsters", g.Monsters.Len()),
		zap.Bool("desktop", g.Desktop),
	)
	return nil
}

// Teardown releases assets and empties the pools.
func (g *Game) Teardown() {
	g.Logger.Info("game over",
		zap.Duration("played", g.Now),
		zap.Int("shots_fired", g.Stats.ShotsFired),
		zap.Int("hits", g.Stats.Hits),
		zap.Int("monsters_killed", g.Stats.MonstersKilled),
	)

	if g.Space != nil {
		g.Space.Clear()
	}
	if g.Bullets != nil {
		g.Bullets.Clear()
	}
	if g.Monsters != nil {
		g.Monsters.Clear()
	}
	g.Assets.Dispose()
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Config.Window.Width, g.Config.Window.Height
}

// Cleared reports whether every monster is dead.
func (g *Game) Cleared() bool {
	return g.Monsters != nil && g.Monsters.Len() > 0 && g.Monsters.CountAlive() == 0
}

func (g *Game) createWorld() {
	g.World = arcade.Rect{X: 0, Y: 0, W: g.Config.World.Width, H: g.Config.World.Height}
	g.Space = arcade.NewSpace(g.World, g.Config.World.CellSize)
}

func (g *Game) createBullets() error {
	w, h, err := g.Assets.ImageSize(assets.KeyBullet)
	if err != nil {
		return err
	}

	g.Bullets = entity.NewPool(g.Config.Weapon.PoolSize)
	g.Bullets.CreateMultiple(g.Config.Weapon.PoolSize, assets.KeyBullet, w, h)
	g.Bullets.ForEach(func(b *entity.Sprite) {
		b.OutOfBoundsKill = true
		b.Body.CheckWorldBounds = true
		g.Space.Add(tagBullet, b)
	})
	return nil
}

func (g *Game) createPlayer() error {
	w, h, err := g.Assets.ImageSize(assets.KeyPlayer)
	if err != nil {
		return err
	}

	center := g.World.Center()
	g.Player = entity.NewSprite(assets.KeyPlayer, center.X, center.Y, w, h)

	maxSpeed := g.Config.Player.MaxSpeed
	drag := g.Config.Player.Drag
	g.Player.Body.MaxVelocity = arcade.Vec{X: maxSpeed, Y: maxSpeed}
	g.Player.Body.Drag = arcade.Vec{X: drag, Y: drag}
	g.Player.Body.CollideWorldBounds = true
	return nil
}

func (g *Game) setupCamera() {
	g.Camera.Width = float64(g.Config.Window.Width)
	g.Camera.Height = float64(g.Config.Window.Height)
	g.Camera.Follow(g.Player.Position(), g.World)
}

func (g *Game) createMonsters() error {
	w, h, err := g.Assets.ImageSize(assets.KeyMonster)
	if err != nil {
		return err
	}

	tm, err := g.Assets.Tilemap(assets.KeyTilemap)
	if err != nil {
		return err
	}

	spawns, err := tm.SpawnsFromObjects(g.Config.Monsters.Layer, g.Config.Monsters.TypeID)
	if err != nil {
		return fmt.Errorf("failed to read monster spawns: %w", err)
	}

	g.Monsters = entity.NewPool(len(spawns))
	for _, spawn := range spawns {
		m := entity.NewSprite(assets.KeyMonster, spawn.X, spawn.Y, w, h)
		m.Health = g.Config.Monsters.Health
		m.SetAngle(g.randomAngle())
		m.Body.CheckWorldBounds = true

		if err := g.Monsters.Add(m); err != nil {
			return err
		}
		g.Space.Add(tagMonster, m)
	}

	if len(spawns) == 0 {
		g.Logger.Warn("no monster spawns found",
			zap.String("layer", g.Config.Monsters.Layer),
			zap.Uint32("type_id", g.Config.Monsters.TypeID),
		)
	}
	return nil
}

// randomAngle returns a whole number of degrees in [-180, 180].
func (g *Game) randomAngle() float64 {
	return float64(g.Rand.Intn(361) - 180)
}
