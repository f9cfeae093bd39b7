package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultKeyMap binds keyboard keys to intents
var DefaultKeyMap = map[ebiten.Key]Intent{
	ebiten.KeyArrowLeft:  IntentLeft,
	ebiten.KeyArrowRight: IntentRight,
	ebiten.KeyArrowUp:    IntentUp,
	ebiten.KeyArrowDown:  IntentDown,
	ebiten.KeySpace:      IntentJump,
	ebiten.KeyD:          IntentThrow,
}

// TouchButton is an on-screen button bound to an intent
type TouchButton struct {
	Intent Intent
	Label  string
	Rect   image.Rectangle
}

// InputSystem maps keyboard and touch input onto intents
type InputSystem struct {
	keys      map[ebiten.Key]Intent
	buttons   []TouchButton
	touchSeen bool
}

// NewInputSystem creates an input system with the four touch buttons along the bottom edge
func NewInputSystem(screenW, screenH int) *InputSystem {
	const size = 64
	const margin = 16
	y := screenH - size - margin
	return &InputSystem{
		keys: DefaultKeyMap,
		buttons: []TouchButton{
			{Intent: IntentLeft, Label: "<", Rect: image.Rect(margin, y, margin+size, y+size)},
			{Intent: IntentRight, Label: ">", Rect: image.Rect(2*margin+size, y, 2*margin+2*size, y+size)},
			{Intent: IntentJump, Label: "^", Rect: image.Rect(screenW-2*margin-2*size, y, screenW-2*margin-size, y+size)},
			{Intent: IntentThrow, Label: "o", Rect: image.Rect(screenW-margin-size, y, screenW-margin, y+size)},
		},
	}
}

// Buttons returns the touch buttons
func (s *InputSystem) Buttons() []TouchButton {
	return s.buttons
}

// TouchSeen reports whether a touch was ever registered, so the buttons need drawing
func (s *InputSystem) TouchSeen() bool {
	return s.touchSeen
}

// Apply sets every intent from a key state function and the active touch points.
// An intent is held while any bound key is down or any touch lies on its button;
// lifting the finger releases it.
func (s *InputSystem) Apply(intents *Intents, keyDown func(ebiten.Key) bool, touches []image.Point) {
	var held [intentCount]bool
	for key, intent := range s.keys {
		if keyDown(key) {
			held[intent] = true
		}
	}
	if len(touches) > 0 {
		s.touchSeen = true
	}
	for _, p := range touches {
		for _, b := range s.buttons {
			if p.In(b.Rect) {
				held[b.Intent] = true
			}
		}
	}
	for i := Intent(0); i < intentCount; i++ {
		intents.Set(i, held[i])
	}
}
