package entity

// Offset shrinks the visual box of an entity to its hit box.
type Offset struct {
	Top    float64
	Left   float64
	Right  float64
	Bottom float64
}

// Rect is an axis-aligned box in world coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent of the rect
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rect
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Overlaps reports whether both spans of r intersect those of o.
// Touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Right > o.Left &&
		r.Left < o.Right &&
		r.Bottom > o.Top &&
		r.Top < o.Bottom
}

// Body is the positional and visual state shared by every drawn entity.
// Y grows downward, as on the canvas.
type Body struct {
	X, Y          float64
	Width, Height float64
	Mirrored      bool
	Offset        Offset
}

// Bounds returns the hit box in world coordinates.
// A mirrored body swaps its left and right offsets.
func (b Body) Bounds() Rect {
	left, right := b.Offset.Left, b.Offset.Right
	if b.Mirrored {
		left, right = right, left
	}
	return Rect{
		Left:   b.X + left,
		Top:    b.Y + b.Offset.Top,
		Right:  b.X + b.Width - right,
		Bottom: b.Y + b.Height - b.Offset.Bottom,
	}
}

// Extent returns the visual box in world coordinates
func (b Body) Extent() Rect {
	return Rect{Left: b.X, Top: b.Y, Right: b.X + b.Width, Bottom: b.Y + b.Height}
}

// CenterX returns the horizontal center of the visual box
func (b Body) CenterX() float64 {
	return b.X + b.Width/2
}

// Collides reports whether the hit boxes of a and b overlap.
func Collides(a, b Body) bool {
	return a.Bounds().Overlaps(b.Bounds())
}

// LandedOnTop reports whether mover, with vertical speed vy, lands on the upper part of target.
// depth is the fraction of the target's height, measured from its top, that still counts as "on top".
// The test uses the visual boxes, not the hit boxes.
func LandedOnTop(mover Body, vy float64, target Body, depth float64) bool {
	centerX := mover.CenterX()
	bottom := mover.Y + mover.Height
	return centerX > target.X &&
		centerX < target.X+target.Width &&
		bottom >= target.Y &&
		bottom <= target.Y+target.Height*depth &&
		vy <= 0
}
