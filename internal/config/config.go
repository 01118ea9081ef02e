// Package config holds the tunable rules of the shooter. Values are loaded
// from a YAML file layered over built-in defaults, so a file only needs the
// fields it changes.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every setting of a game session
type Config struct {
	Window   WindowConfig  `yaml:"window"`
	World    WorldConfig   `yaml:"world"`
	Player   PlayerConfig  `yaml:"player"`
	Weapon   WeaponConfig  `yaml:"weapon"`
	Monsters MonsterConfig `yaml:"monsters"`
	Assets   AssetConfig   `yaml:"assets"`
	Log      LogConfig     `yaml:"log"`
}

// WindowConfig defines the window and logical screen
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"` // Update calls per second
}

// WorldConfig defines the playfield
type WorldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	CellSize int     `yaml:"cell_size"` // Overlap grid cell size in pixels
}

// PlayerConfig defines player movement
type PlayerConfig struct {
	Acceleration float64 `yaml:"acceleration"` // px/s²
	MaxSpeed     float64 `yaml:"max_speed"`    // px/s per axis
	Drag         float64 `yaml:"drag"`         // px/s² while not accelerating
}

// WeaponConfig defines firing
type WeaponConfig struct {
	FireRateMS  int     `yaml:"fire_rate_ms"` // Minimum time between shots
	PoolSize    int     `yaml:"pool_size"`    // Bullets in flight at most
	BulletSpeed float64 `yaml:"bullet_speed"` // px/s
}

// MonsterConfig defines monster spawning and behavior
type MonsterConfig struct {
	Speed  float64 `yaml:"speed"`   // px/s
	Health int     `yaml:"health"`  // Hits to kill
	Layer  string  `yaml:"layer"`   // Tilemap object layer holding spawns
	TypeID uint32  `yaml:"type_id"` // Tile id of spawn objects in that layer
	Seed   int64   `yaml:"seed"`    // Heading RNG seed, 0 picks one at random
}

// AssetConfig maps asset keys to files
type AssetConfig struct {
	Background      string `yaml:"background"`
	Player          string `yaml:"player"`
	Bullet          string `yaml:"bullet"`
	Monster         string `yaml:"monster"`
	JoystickBase    string `yaml:"joystick_base"`
	JoystickSegment string `yaml:"joystick_segment"`
	JoystickKnob    string `yaml:"joystick_knob"`
	Tilemap         string `yaml:"tilemap"`
}

// LogConfig configures the logger
type LogConfig struct {
	Level       string `yaml:"level"`  // debug, info, warn, error
	Format      string `yaml:"format"` // console or json
	Development bool   `yaml:"development"`
}

// Default returns the stock game rules
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 600,
			Title:  "Shooter",
			TPS:    60,
		},
		World: WorldConfig{
			Width:    2000,
			Height:   2000,
			CellSize: 32,
		},
		Player: PlayerConfig{
			Acceleration: 500,
			MaxSpeed:     300,
			Drag:         600,
		},
		Weapon: WeaponConfig{
			FireRateMS:  150,
			PoolSize:    20,
			BulletSpeed: 800,
		},
		Monsters: MonsterConfig{
			Speed:  100,
			Health: 5,
			Layer:  "monsters",
			TypeID: 37,
		},
		Assets: AssetConfig{
			Background:      "assets/bg.png",
			Player:          "assets/player.png",
			Bullet:          "assets/bullet.png",
			Monster:         "assets/monster.png",
			JoystickBase:    "assets/transparentDark05.png",
			JoystickSegment: "assets/transparentDark09.png",
			JoystickKnob:    "assets/transparentDark49.png",
			Tilemap:         "assets/tiles.json",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads config from a YAML file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every rule is usable
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("invalid tps: %d", c.Window.TPS)
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("invalid world size: %vx%v", c.World.Width, c.World.Height)
	}
	if c.World.CellSize <= 0 {
		return fmt.Errorf("invalid cell size: %d", c.World.CellSize)
	}
	if c.Player.MaxSpeed <= 0 || c.Player.Acceleration < 0 || c.Player.Drag < 0 {
		return fmt.Errorf("invalid player movement: accel %v, max speed %v, drag %v",
			c.Player.Acceleration, c.Player.MaxSpeed, c.Player.Drag)
	}
	if c.Weapon.FireRateMS < 0 {
		return fmt.Errorf("invalid fire rate: %dms", c.Weapon.FireRateMS)
	}
	if c.Weapon.PoolSize <= 0 {
		return fmt.Errorf("invalid bullet pool size: %d", c.Weapon.PoolSize)
	}
	if c.Weapon.BulletSpeed <= 0 {
		return fmt.Errorf("invalid bullet speed: %v", c.Weapon.BulletSpeed)
	}
	if c.Monsters.Health <= 0 {
		return fmt.Errorf("invalid monster health: %d", c.Monsters.Health)
	}
	if c.Monsters.Layer == "" {
		return fmt.Errorf("monster layer is required")
	}
	return nil
}
