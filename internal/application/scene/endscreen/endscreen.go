// Package endscreen provides the win and lose screens.
package endscreen

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/younwookim/pollo/internal/application/scene"
	"github.com/younwookim/pollo/internal/application/state"
	"github.com/younwookim/pollo/internal/application/world"
)

const fadeIn = 0.6 // seconds

// EndScreen fades in the outcome image. Enter or a tap restarts with a
// fresh level, Escape returns to the start screen.
type EndScreen struct {
	env     *scene.Env
	outcome world.Outcome
	image   string
	fade    *gween.Tween
	alpha   float32
	done    bool
}

// New creates the end screen of a playthrough
func New(env *scene.Env, outcome world.Outcome, image string) *EndScreen {
	return &EndScreen{
		env:     env,
		outcome: outcome,
		image:   image,
		fade:    gween.New(0, 1, fadeIn, ease.OutQuad),
	}
}

// Alpha returns the current opacity of the outcome image
func (e *EndScreen) Alpha() float32 {
	return e.alpha
}

func (e *EndScreen) Update(dt time.Duration) (scene.Scene, error) {
	if !e.done {
		e.alpha, e.done = e.fade.Update(float32(dt.Seconds()))
	}

	in := e.env.Input
	switch {
	case in.JustPressed(ebiten.KeyEscape):
		return e.env.Menu(), nil
	case in.JustPressed(ebiten.KeyEnter) || in.JustPressed(ebiten.KeySpace) || in.JustTouched():
		return e.env.Playing()
	case in.JustPressed(ebiten.KeyM):
		e.env.ToggleMute()
	}
	return nil, nil
}

func (e *EndScreen) Draw(screen *ebiten.Image) {
	s := e.env.Surface
	w, h := float64(e.env.Width()), float64(e.env.Height())
	s.Begin(screen)
	s.ClearRect(0, 0, w, h)
	s.SetAlpha(float64(e.alpha))
	s.DrawImage(e.image, 0, 0, w, h)
	s.SetAlpha(1)
	if e.done {
		s.FillText("ENTER: play again   ESC: menu", w/2-200, h-30)
	}
}

func (e *EndScreen) OnEnter() {
	e.env.Log.Info("end screen", "outcome", e.outcome)
}

func (e *EndScreen) OnExit() {
	e.env.Sound.StopAll()
}

func (e *EndScreen) State() state.GameState {
	if e.outcome == world.OutcomeWon {
		return state.StateWon
	}
	return state.StateLost
}
