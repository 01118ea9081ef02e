// Package tilemap loads levels saved in the Tiled JSON map format and pulls
// spawn points out of their object layers.
package tilemap

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrLayerNotFound is returned when a map has no object layer with the
// requested name.
var ErrLayerNotFound = errors.New("tilemap: object layer not found")

// gidMask strips Tiled's flip flags from a global tile id.
const gidMask = 0x1FFFFFFF

// Object is a single entry of an object layer.
type Object struct {
	ID      int     `json:"id"`
	GID     uint32  `json:"gid"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Visible bool    `json:"visible"`
}

// TileID returns the object's tile id with flip flags cleared.
func (o Object) TileID() uint32 {
	return o.GID & gidMask
}

// Layer is a tile or object layer.
type Layer struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"` // "tilelayer" or "objectgroup"
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Data    []uint32 `json:"data"`
	Objects []Object `json:"objects"`
	Visible bool     `json:"visible"`
}

// Tileset references the images tiles are cut from.
type Tileset struct {
	FirstGID    uint32 `json:"firstgid"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	TileWidth   int    `json:"tilewidth"`
	TileHeight  int    `json:"tileheight"`
	TileCount   int    `json:"tilecount"`
	Columns     int    `json:"columns"`
	ImageWidth  int    `json:"imagewidth"`
	ImageHeight int    `json:"imageheight"`
}

// Map is a loaded Tiled map.
type Map struct {
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	TileWidth   int       `json:"tilewidth"`
	TileHeight  int       `json:"tileheight"`
	Orientation string    `json:"orientation"`
	Layers      []Layer   `json:"layers"`
	Tilesets    []Tileset `json:"tilesets"`
}

// Spawn is a position taken from an object layer. X and Y are the center
// of the object.
type Spawn struct {
	X, Y float64
}

// Load reads and validates a Tiled JSON map.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tilemap %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load tilemap %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a Tiled JSON map.
func Parse(data []byte) (*Map, error) {
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse tilemap: %w", err)
	}

	if err := validateMap(&m); err != nil {
		return nil, fmt.Errorf("invalid tilemap: %w", err)
	}

	return &m, nil
}

func validateMap(m *Map) error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", m.Width, m.Height)
	}

	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return fmt.Errorf("invalid tile size: %dx%d", m.TileWidth, m.TileHeight)
	}

	if m.Orientation != "" && m.Orientation != "orthogonal" {
		return fmt.Errorf("unsupported orientation: %s", m.Orientation)
	}

	for _, layer := range m.Layers {
		if layer.Type == "tilelayer" && len(layer.Data) != layer.Width*layer.Height {
			return fmt.Errorf("layer %s data length mismatch: expected %d, got %d",
				layer.Name, layer.Width*layer.Height, len(layer.Data))
		}
	}

	return nil
}

// ObjectLayer returns the object layer with the given name.
func (m *Map) ObjectLayer(name string) (*Layer, error) {
	for i := range m.Layers {
		layer := &m.Layers[i]
		if layer.Type == "objectgroup" && layer.Name == name {
			return layer, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrLayerNotFound, name)
}

// SpawnsFromObjects returns one spawn per object in the named layer whose
// tile id equals gid, in layer order. Tile objects are anchored at their
// bottom-left corner; objects without a size fall back to the tile size.
func (m *Map) SpawnsFromObjects(layerName string, gid uint32) ([]Spawn, error) {
	layer, err := m.ObjectLayer(layerName)
	if err != nil {
		return nil, err
	}

	var spawns []Spawn
	for _, obj := range layer.Objects {
		if obj.TileID() != gid {
			continue
		}

		w, h := obj.Width, obj.Height
		if w <= 0 {
			w = float64(m.TileWidth)
		}
		if h <= 0 {
			h = float64(m.TileHeight)
		}

		spawns = append(spawns, Spawn{X: obj.X + w/2, Y: obj.Y - h/2})
	}

	return spawns, nil
}
