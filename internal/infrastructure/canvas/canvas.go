// Package canvas implements a canvas-style drawing surface on top of an ebiten image.
package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based drawing
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// ImageSource resolves an asset path to an image, nil when unavailable
type ImageSource interface {
	Image(path string) *ebiten.Image
}

var (
	textColor   = color.White
	strokeColor = color.RGBA{R: 255, G: 64, B: 64, A: 255}
)

// Canvas draws through a transform stack. Translate and Scale apply in
// local coordinates, before the transforms already in place.
type Canvas struct {
	dst    *ebiten.Image
	images ImageSource
	face   font.Face

	geom  ebiten.GeoM
	stack []ebiten.GeoM
	alpha float64
}

// New creates a canvas with a text face of the given size
func New(images ImageSource, fontSize float64) (*Canvas, error) {
	face, err := NewFace(fontSize)
	if err != nil {
		return nil, err
	}
	return &Canvas{images: images, face: face, alpha: 1}, nil
}

// NewFace parses the bundled Go Regular font at the given size
func NewFace(size float64) (font.Face, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(ttf, &truetype.Options{Size: size}), nil
}

// Begin targets dst and resets the transform for a new frame
func (c *Canvas) Begin(dst *ebiten.Image) {
	c.dst = dst
	c.geom.Reset()
	c.stack = c.stack[:0]
	c.alpha = 1
}

// SetAlpha sets the opacity of the images drawn after it, clamped to [0, 1]
func (c *Canvas) SetAlpha(a float64) {
	c.alpha = max(0, min(1, a))
}

// Transform returns the current transform
func (c *Canvas) Transform() ebiten.GeoM {
	return c.geom
}

// ClearRect clears the pixels under the rect, mapped through the current transform.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	if c.dst == nil {
		return
	}
	bounds := c.dst.Bounds()
	r := c.pixelRect(x, y, w, h).Intersect(bounds)
	switch {
	case r.Empty():
	case r == bounds:
		c.dst.Clear()
	default:
		c.dst.SubImage(r).(*ebiten.Image).Clear()
	}
}

// pixelRect returns the smallest pixel rect covering the transformed rect.
// The transform only ever translates and scales, so two corners suffice.
func (c *Canvas) pixelRect(x, y, w, h float64) image.Rectangle {
	x0, y0 := c.geom.Apply(x, y)
	x1, y1 := c.geom.Apply(x+w, y+h)
	return image.Rect(
		int(math.Floor(min(x0, x1))),
		int(math.Floor(min(y0, y1))),
		int(math.Ceil(max(x0, x1))),
		int(math.Ceil(max(y0, y1))),
	)
}

func (c *Canvas) DrawImage(path string, x, y, w, h float64) {
	if c.dst == nil || c.images == nil {
		return
	}
	img := c.images.Image(path)
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(c.geom)
	op.Filter = ebiten.FilterLinear
	op.ColorScale.ScaleAlpha(float32(c.alpha))
	c.dst.DrawImage(img, op)
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.geom)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.geom = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(x, y float64) {
	var t ebiten.GeoM
	t.Translate(x, y)
	t.Concat(c.geom)
	c.geom = t
}

func (c *Canvas) Scale(x, y float64) {
	var s ebiten.GeoM
	s.Scale(x, y)
	s.Concat(c.geom)
	c.geom = s
}

// FillText draws text with its baseline at (x, y)
func (c *Canvas) FillText(s string, x, y float64) {
	if c.dst == nil || c.face == nil {
		return
	}
	px, py := c.geom.Apply(x, y)
	text.Draw(c.dst, s, c.face, int(px), int(py), textColor)
}

func (c *Canvas) StrokeRect(x, y, w, h float64) {
	if c.dst == nil {
		return
	}
	x1, y1 := c.geom.Apply(x, y)
	x2, y2 := c.geom.Apply(x+w, y+h)
	vector.StrokeRect(c.dst, float32(min(x1, x2)), float32(min(y1, y2)),
		float32(abs(x2-x1)), float32(abs(y2-y1)), 2, strokeColor, false)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
