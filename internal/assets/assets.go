// Package assets loads images and tilemaps once and hands them out by key.
package assets

import (
	"errors"
	"fmt"

	"chosenoffset.com/shooter/internal/config"
	"chosenoffset.com/shooter/internal/render"
	"chosenoffset.com/shooter/internal/world/tilemap"
)

// Asset keys
const (
	KeyBackground      = "bg"
	KeyPlayer          = "player"
	KeyBullet          = "bullet"
	KeyMonster         = "monster"
	KeyJoystickBase    = "joystick_base"
	KeyJoystickSegment = "joystick_segment"
	KeyJoystickKnob    = "joystick_knob"
	KeyTilemap         = "tilemap"
)

// ErrUnknownKey is returned when asking for an asset that was never loaded.
var ErrUnknownKey = errors.New("assets: unknown key")

// Cache holds loaded assets by key
type Cache struct {
	loader   render.ResourceLoader
	images   map[string]render.Image
	tilemaps map[string]*tilemap.Map
}

// NewCache creates an empty cache that loads images through loader
func NewCache(loader render.ResourceLoader) *Cache {
	return &Cache{
		loader:   loader,
		images:   make(map[string]render.Image),
		tilemaps: make(map[string]*tilemap.Map),
	}
}

// LoadImage loads the image at path and stores it under key. Loading a key
// twice keeps the first image.
func (c *Cache) LoadImage(key, path string) error {
	if _, ok := c.images[key]; ok {
		return nil
	}

	img, err := c.loader.LoadImage(path)
	if err != nil {
		return fmt.Errorf("failed to load image %s from %s: %w", key, path, err)
	}

	c.images[key] = img
	return nil
}

// LoadTilemap loads the Tiled map at path and stores it under key.
func (c *Cache) LoadTilemap(key, path string) error {
	if _, ok := c.tilemaps[key]; ok {
		return nil
	}

	m, err := tilemap.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load tilemap %s: %w", key, err)
	}

	c.tilemaps[key] = m
	return nil
}

// Image returns the image stored under key.
func (c *Cache) Image(key string) (render.Image, error) {
	img, ok := c.images[key]
	if !ok {
		return nil, fmt.Errorf("%w: image %s", ErrUnknownKey, key)
	}
	return img, nil
}

// Tilemap returns the tilemap stored under key.
func (c *Cache) Tilemap(key string) (*tilemap.Map, error) {
	m, ok := c.tilemaps[key]
	if !ok {
		return nil, fmt.Errorf("%w: tilemap %s", ErrUnknownKey, key)
	}
	return m, nil
}

// ImageSize returns the size of the image stored under key.
func (c *Cache) ImageSize(key string) (width, height float64, err error) {
	img, err := c.Image(key)
	if err != nil {
		return 0, 0, err
	}
	w, h := img.Size()
	return float64(w), float64(h), nil
}

// Dispose releases every image and forgets every asset.
func (c *Cache) Dispose() {
	for _, img := range c.images {
		img.Dispose()
	}
	c.images = make(map[string]render.Image)
	c.tilemaps = make(map[string]*tilemap.Map)
}

// LoadGame loads everything the game needs. The joystick skins are only
// loaded on touch targets.
func (c *Cache) LoadGame(paths config.AssetConfig, desktop bool) error {
	images := []struct{ key, path string }{
		{KeyBackground, paths.Background},
		{KeyPlayer, paths.Player},
		{KeyBullet, paths.Bullet},
		{KeyMonster, paths.Monster},
	}
	if !desktop {
		images = append(images,
			struct{ key, path string }{KeyJoystickBase, paths.JoystickBase},
			struct{ key, path string }{KeyJoystickSegment, paths.JoystickSegment},
			struct{ key, path string }{KeyJoystickKnob, paths.JoystickKnob},
		)
	}

	for _, img := range images {
		if err := c.LoadImage(img.key, img.path); err != nil {
			return err
		}
	}

	return c.LoadTilemap(KeyTilemap, paths.Tilemap)
}
