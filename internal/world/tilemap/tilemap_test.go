package tilemap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testMapJSON = `{
	"width": 4,
	"height": 4,
	"tilewidth": 32,
	"tileheight": 32,
	"orientation": "orthogonal",
	"layers": [
		{
			"name": "ground",
			"type": "tilelayer",
			"width": 4,
			"height": 4,
			"data": [1,1,1,1, 1,1,1,1, 1,1,1,1, 1,1,1,1],
			"visible": true
		},
		{
			"name": "monsters",
			"type": "objectgroup",
			"visible": true,
			"objects": [
				{"id": 1, "gid": 37, "x": 100, "y": 200, "width": 32, "height": 32, "visible": true},
				{"id": 2, "gid": 12, "x": 300, "y": 300, "width": 32, "height": 32, "visible": true},
				{"id": 3, "gid": 2147483685, "x": 500, "y": 600, "visible": true}
			]
		}
	],
	"tilesets": [
		{"firstgid": 1, "name": "tiles", "image": "tiles.png", "tilewidth": 32, "tileheight": 32, "tilecount": 64, "columns": 8}
	]
}`

func TestParseMap(t *testing.T) {
	m, err := Parse([]byte(testMapJSON))
	if err != nil {
		t.Fatalf("Failed to parse map: %v", err)
	}

	if m.Width != 4 || m.Height != 4 {
		t.Errorf("Expected 4x4 map, got %dx%d", m.Width, m.Height)
	}
	if m.TileWidth != 32 || m.TileHeight != 32 {
		t.Errorf("Expected 32x32 tiles, got %dx%d", m.TileWidth, m.TileHeight)
	}
	if len(m.Layers) != 2 {
		t.Fatalf("Expected 2 layers, got %d", len(m.Layers))
	}
	if len(m.Tilesets) != 1 || m.Tilesets[0].Image != "tiles.png" {
		t.Errorf("Unexpected tilesets: %+v", m.Tilesets)
	}
}

func TestSpawnsFromObjects(t *testing.T) {
	m, err := Parse([]byte(testMapJSON))
	if err != nil {
		t.Fatalf("Failed to parse map: %v", err)
	}

	spawns, err := m.SpawnsFromObjects("monsters", 37)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// The flipped object (gid with the horizontal flip flag) still counts.
	if len(spawns) != 2 {
		t.Fatalf("Expected 2 spawns, got %d", len(spawns))
	}

	if spawns[0].X != 116 || spawns[0].Y != 184 {
		t.Errorf("Expected first spawn at (116, 184), got (%v, %v)", spawns[0].X, spawns[0].Y)
	}
	// No size given: falls back to the 32px tile.
	if spawns[1].X != 516 || spawns[1].Y != 584 {
		t.Errorf("Expected second spawn at (516, 584), got (%v, %v)", spawns[1].X, spawns[1].Y)
	}
}

func TestSpawnsFromMissingLayer(t *testing.T) {
	m, err := Parse([]byte(testMapJSON))
	if err != nil {
		t.Fatalf("Failed to parse map: %v", err)
	}

	_, err = m.SpawnsFromObjects("ground", 37)
	if !errors.Is(err, ErrLayerNotFound) {
		t.Errorf("Expected ErrLayerNotFound for a tile layer, got %v", err)
	}
}

func TestParseRejectsInvalidMaps(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"bad json", `{`},
		{"zero size", `{"width": 0, "height": 4, "tilewidth": 32, "tileheight": 32}`},
		{"zero tile", `{"width": 4, "height": 4, "tilewidth": 0, "tileheight": 32}`},
		{"isometric", `{"width": 4, "height": 4, "tilewidth": 32, "tileheight": 32, "orientation": "isometric"}`},
		{"short layer", `{"width": 2, "height": 2, "tilewidth": 32, "tileheight": 32,
			"layers": [{"name": "g", "type": "tilelayer", "width": 2, "height": 2, "data": [1]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.json)); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiles.json")
	if err := os.WriteFile(path, []byte(testMapJSON), 0o644); err != nil {
		t.Fatalf("Failed to write map: %v", err)
	}

	if _, err := Load(path); err != nil {
		t.Fatalf("Failed to load map: %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
