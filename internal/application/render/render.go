// Package render draws a playthrough onto a 2D surface.
//
// The renderer owns no canvas. It issues draw calls against a Surface and
// reads whatever state the world holds at the moment, with no interpolation.
package render

import (
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/younwookim/pollo/internal/application/system"
	"github.com/younwookim/pollo/internal/application/world"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/ecs"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// Surface is a 2D drawing context with a canvas-style transform stack.
// Translate and Scale apply in the current local coordinates.
// Images are addressed by their asset path; unknown images are skipped.
type Surface interface {
	ClearRect(x, y, w, h float64)
	DrawImage(image string, x, y, w, h float64)
	Save()
	Restore()
	Translate(x, y float64)
	Scale(x, y float64)
	FillText(text string, x, y float64)
	StrokeRect(x, y, w, h float64)
}

// Renderer draws one frame of a world
type Renderer struct {
	bars   config.StatusBarsConfig
	width  float64
	height float64

	// Debug frames every collidable hit box
	Debug bool
}

// NewRenderer creates a renderer for a screen of the given size
func NewRenderer(bars config.StatusBarsConfig, width, height float64) *Renderer {
	return &Renderer{bars: bars, width: width, height: height}
}

// Draw renders a frame: scenery in camera space, status bars in screen space,
// then the character, enemies, collectibles and projectiles in camera space.
// A stopped world only clears the surface.
func (r *Renderer) Draw(s Surface, w *world.World) {
	s.ClearRect(0, 0, r.width, r.height)
	if w.Stopped() {
		return
	}
	entities := w.Context().Entities

	s.Translate(w.CameraX, 0)
	r.drawAll(s, entities, entities.Backgrounds())
	r.drawAll(s, entities, entities.Clouds())
	s.Translate(-w.CameraX, 0)

	r.drawStatusBars(s, w)

	s.Translate(w.CameraX, 0)
	r.drawEntity(s, entities, entities.Character())
	r.drawAll(s, entities, entities.Enemies())
	r.drawAll(s, entities, kindOf(entities, entities.Collectibles(), entity.KindCoin))
	r.drawAll(s, entities, kindOf(entities, entities.Collectibles(), entity.KindBottle))
	r.drawAll(s, entities, entities.Projectiles())
	s.Translate(-w.CameraX, 0)
}

func kindOf(entities *ecs.World, ids []donburi.Entity, kind entity.Kind) []donburi.Entity {
	out := make([]donburi.Entity, 0, len(ids))
	for _, id := range ids {
		if entry := entities.Entry(id); entry != nil && *ecs.Kind.Get(entry) == kind {
			out = append(out, id)
		}
	}
	return out
}

func (r *Renderer) drawAll(s Surface, entities *ecs.World, ids []donburi.Entity) {
	for _, id := range ids {
		r.drawEntity(s, entities, id)
	}
}

func (r *Renderer) drawEntity(s Surface, entities *ecs.World, id donburi.Entity) {
	entry := entities.Entry(id)
	if entry == nil {
		return
	}
	body := *ecs.Body.Get(entry)
	DrawBody(s, body, ecs.Sprite.Get(entry).Image)

	if r.Debug && *ecs.Kind.Get(entry) != entity.KindBackground && *ecs.Kind.Get(entry) != entity.KindCloud {
		b := body.Bounds()
		s.StrokeRect(b.Left, b.Top, b.Width(), b.Height())
	}
}

// DrawBody draws an image over a body's visual box. A mirrored body is drawn
// through a flipped transform around its own width; the body itself is not touched.
func DrawBody(s Surface, b entity.Body, image string) {
	if !b.Mirrored {
		s.DrawImage(image, b.X, b.Y, b.Width, b.Height)
		return
	}
	s.Save()
	s.Translate(b.Width, 0)
	s.Scale(-1, 1)
	s.DrawImage(image, -b.X, b.Y, b.Width, b.Height)
	s.Restore()
}

func (r *Renderer) drawStatusBars(s Surface, w *world.World) {
	health := w.HealthBar
	s.DrawImage(health.Image(), health.X, health.Y, health.Width, health.Height)

	r.drawCounter(s, w.CoinBar, r.bars.Coin)
	r.drawCounter(s, w.BottleBar, r.bars.Bottle)

	if w.BossShown {
		r.drawBossBar(s, w.BossBar)
	}
}

func (r *Renderer) drawCounter(s Surface, bar entity.StatusBar, c config.CounterConfig) {
	s.DrawImage(bar.Icon, bar.X, bar.Y, bar.Width, bar.Height)
	s.FillText(fmt.Sprintf("x %d", bar.Count), bar.X+c.TextX, bar.Y+c.TextY)
}

// drawBossBar draws the boss bar mirrored, so it drains toward its icon.
func (r *Renderer) drawBossBar(s Surface, bar entity.StatusBar) {
	boss := r.bars.Boss
	s.Save()
	s.Scale(-1, 1)
	x := -bar.X - bar.Width
	s.DrawImage(boss.Empty, x, bar.Y, bar.Width, bar.Height)
	s.DrawImage(boss.Fill, x, bar.Y, entity.BossFill(bar.Width, bar.Energy, bar.MaxEnergy), bar.Height)
	s.Restore()
	s.DrawImage(bar.Icon, bar.X+bar.Width-boss.IconInset, bar.Y, boss.IconSize, boss.IconSize)
}

// DrawButtons frames the touch buttons with their labels
func DrawButtons(s Surface, buttons []system.TouchButton) {
	for _, b := range buttons {
		x, y := float64(b.Rect.Min.X), float64(b.Rect.Min.Y)
		w, h := float64(b.Rect.Dx()), float64(b.Rect.Dy())
		s.StrokeRect(x, y, w, h)
		s.FillText(b.Label, x+w/2-4, y+h/2+4)
	}
}
