package game

import (
	"fmt"
	"math"

	"golang.org/x/image/colornames"

	"chosenoffset.com/shooter/internal/assets"
	"chosenoffset.com/shooter/internal/entity"
	"chosenoffset.com/shooter/internal/render"
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(colornames.Black)

	g.drawBackground(screen)
	g.drawPool(screen, g.Monsters)
	g.drawPool(screen, g.Bullets)
	g.drawSprite(screen, g.Player)
	g.drawCrosshair(screen)
	g.drawHUD(screen)
}

// drawBackground tiles the background image over the visible part of the
// world.
func (g *Game) drawBackground(screen render.Image) {
	bg, err := g.Assets.Image(assets.KeyBackground)
	if err != nil {
		return
	}

	w, h := bg.Size()
	if w <= 0 || h <= 0 {
		return
	}
	tw, th := float64(w), float64(h)

	startX := -math.Mod(g.Camera.X-g.World.X, tw)
	startY := -math.Mod(g.Camera.Y-g.World.Y, th)

	for y := startY; y < g.Camera.Height; y += th {
		for x := startX; x < g.Camera.Width; x += tw {
			opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
			opts.GeoM.Translate(x, y)
			screen.DrawImage(bg, opts)
		}
	}
}

func (g *Game) drawPool(screen render.Image, p *entity.Pool) {
	if p == nil {
		return
	}
	p.ForEachAlive(func(s *entity.Sprite) {
		g.drawSprite(screen, s)
	})
}

// drawSprite draws s rotated about its center. Sprites outside the viewport
// are culled.
func (g *Game) drawSprite(screen render.Image, s *entity.Sprite) {
	if s == nil || !s.Visible {
		return
	}

	img, err := g.Assets.Image(s.Key)
	if err != nil {
		return
	}

	w, h := img.Size()
	pos := s.Position()
	sx := pos.X - g.Camera.X
	sy := pos.Y - g.Camera.Y

	// Bounding radius covers any rotation.
	r := math.Hypot(float64(w), float64(h)) / 2
	if sx+r < 0 || sy+r < 0 || sx-r > g.Camera.Width || sy-r > g.Camera.Height {
		return
	}

	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	opts.GeoM.Rotate(s.Rotation)
	opts.GeoM.Translate(sx, sy)
	screen.DrawImage(img, opts)
}

func (g *Game) drawCrosshair(screen render.Image) {
	if !g.Desktop {
		return
	}
	x, y := float32(g.Pointer.ScreenX), float32(g.Pointer.ScreenY)
	g.Renderer.StrokeCircle(screen, x, y, 8, 1.5, colornames.Orangered)
	g.Renderer.FillCircle(screen, x, y, 1.5, colornames.Orangered)
}

func (g *Game) drawHUD(screen render.Image) {
	alive, total := 0, 0
	if g.Monsters != nil {
		alive, total = g.Monsters.CountAlive(), g.Monsters.Len()
	}

	g.Renderer.DrawText(screen, fmt.Sprintf("Monsters %d/%d  Shots %d  Hits %d",
		alive, total, g.Stats.ShotsFired, g.Stats.Hits), 8, 8)

	if g.Cleared() {
		msg := "All monsters down. Press SPACE to play again."
		tw, _ := g.Renderer.MeasureText(msg)
		g.Renderer.DrawText(screen, msg, (g.Config.Window.Width-tw)/2, g.Config.Window.Height/2)
	}
}
