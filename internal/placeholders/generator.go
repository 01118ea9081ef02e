// Package placeholders draws stand-in art and a sample level so the game
// runs without the real asset pack.
package placeholders

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/colornames"

	"chosenoffset.com/shooter/internal/world/tilemap"
)

// TileSize is the standard size for placeholder tiles
const TileSize = 32

// Palette defines the colors of every placeholder
var Palette = struct {
	Floor        color.RGBA
	FloorPattern color.RGBA
	Player       color.RGBA
	Bullet       color.RGBA
	Monster      color.RGBA
	Outline      color.RGBA
	Joystick     color.RGBA
}{
	Floor:        colornames.Darkslategray,
	FloorPattern: colornames.Darkolivegreen,
	Player:       colornames.Limegreen,
	Bullet:       colornames.Gold,
	Monster:      colornames.Crimson,
	Outline:      colornames.Whitesmoke,
	Joystick:     color.RGBA{0, 0, 0, 96},
}

// File names written by GenerateAndSave, matching the default config.
const (
	BackgroundFile      = "bg.png"
	PlayerFile          = "player.png"
	BulletFile          = "bullet.png"
	MonsterFile         = "monster.png"
	JoystickBaseFile    = "transparentDark05.png"
	JoystickSegmentFile = "transparentDark09.png"
	JoystickKnobFile    = "transparentDark49.png"
	TilemapFile         = "tiles.json"
)

// CreateSolidTile creates a simple solid-colored image
func CreateSolidTile(size int, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateGridTile creates a floor tile with grid lines along its top and left
// edges, so tiling it draws a grid.
func CreateGridTile(size int, baseColor, lineColor color.RGBA) *image.RGBA {
	img := CreateSolidTile(size, baseColor)
	for i := 0; i < size; i++ {
		img.Set(i, 0, lineColor)
		img.Set(0, i, lineColor)
	}
	return img
}

// CreateCircle creates a circular sprite of the given diameter
func CreateCircle(size int, fillColor, outlineColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	center := float64(size-1) / 2
	radius := float64(size)/2 - 1

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-center, float64(y)-center)
			if d <= radius-1 {
				img.Set(x, y, fillColor)
			} else if d <= radius {
				img.Set(x, y, outlineColor)
			}
		}
	}

	return img
}

// CreateRing creates a hollow circle of the given diameter and thickness
func CreateRing(size, thickness int, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	center := float64(size-1) / 2
	outer := float64(size) / 2
	inner := outer - float64(thickness)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-center, float64(y)-center)
			if d <= outer && d >= inner {
				img.Set(x, y, col)
			}
		}
	}

	return img
}

// CreateArrow creates a triangle pointing along +x, the direction a sprite
// faces at rotation zero.
func CreateArrow(size int, fillColor, outlineColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2

	for y := 0; y < size; y++ {
		// Width of the triangle at this row, widest at the back edge.
		reach := float64(size) * (1 - math.Abs(float64(y)+0.5-half)/half)
		for x := 0; x < size; x++ {
			fx := float64(x) + 0.5
			switch {
			case fx > reach:
				continue
			case x == 0 || fx > reach-1.5 || y == 0 || y == size-1:
				img.Set(x, y, outlineColor)
			default:
				img.Set(x, y, fillColor)
			}
		}
	}

	return img
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// SampleMap builds a Tiled map covering worldSize pixels whose "monsters"
// object layer holds count monster spawns of tile id gid, placed on a ring
// around the center.
func SampleMap(worldSize, count int, gid uint32) *tilemap.Map {
	tiles := worldSize / TileSize

	objects := make([]tilemap.Object, 0, count)
	center := float64(worldSize) / 2
	radius := float64(worldSize) * 0.35
	for i := 0; i < count; i++ {
		a := 2 * math.Pi * float64(i) / float64(count)
		cx := math.Round(center + math.Cos(a)*radius)
		cy := math.Round(center + math.Sin(a)*radius)

		// Tile objects sit on their bottom-left corner.
		objects = append(objects, tilemap.Object{
			ID:      i + 1,
			GID:     gid,
			X:       cx - TileSize/2,
			Y:       cy + TileSize/2,
			Width:   TileSize,
			Height:  TileSize,
			Visible: true,
		})
	}

	return &tilemap.Map{
		Width:       tiles,
		Height:      tiles,
		TileWidth:   TileSize,
		TileHeight:  TileSize,
		Orientation: "orthogonal",
		Layers: []tilemap.Layer{
			{Name: "monsters", Type: "objectgroup", Objects: objects, Visible: true},
		},
		Tilesets: []tilemap.Tileset{
			{
				FirstGID:    1,
				Name:        "placeholders",
				Image:       BackgroundFile,
				TileWidth:   TileSize,
				TileHeight:  TileSize,
				TileCount:   64,
				Columns:     8,
				ImageWidth:  8 * TileSize,
				ImageHeight: 8 * TileSize,
			},
		},
	}
}

// GenerateAndSave writes every placeholder image and a sample map into dir.
func GenerateAndSave(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	images := []struct {
		name string
		img  image.Image
	}{
		{BackgroundFile, CreateGridTile(64, Palette.Floor, Palette.FloorPattern)},
		{PlayerFile, CreateArrow(TileSize, Palette.Player, Darken(Palette.Player, 0.5))},
		{BulletFile, CreateCircle(8, Palette.Bullet, Darken(Palette.Bullet, 0.6))},
		{MonsterFile, CreateCircle(TileSize, Palette.Monster, Palette.Outline)},
		{JoystickBaseFile, CreateRing(128, 6, Palette.Joystick)},
		{JoystickSegmentFile, CreateCircle(16, Palette.Joystick, Palette.Joystick)},
		{JoystickKnobFile, CreateCircle(48, Palette.Joystick, Palette.Outline)},
	}

	written := make([]string, 0, len(images)+1)
	for _, entry := range images {
		path := filepath.Join(dir, entry.name)
		if err := SavePNG(entry.img, path); err != nil {
			return written, fmt.Errorf("failed to save %s: %w", path, err)
		}
		written = append(written, path)
	}

	data, err := json.MarshalIndent(SampleMap(2000, 12, 37), "", "  ")
	if err != nil {
		return written, fmt.Errorf("failed to encode sample map: %w", err)
	}
	path := filepath.Join(dir, TilemapFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return written, fmt.Errorf("failed to save %s: %w", path, err)
	}

	return append(written, path), nil
}
