// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pollo/internal/application/render"
	"github.com/younwookim/pollo/internal/application/scene"
	"github.com/younwookim/pollo/internal/application/state"
	"github.com/younwookim/pollo/internal/application/system"
	"github.com/younwookim/pollo/internal/application/world"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

type ending struct {
	outcome world.Outcome
	image   string
}

// Playing is the main gameplay scene. It owns one playthrough: a fresh
// World is built for every Playing, and leaving the scene stops it.
type Playing struct {
	env      *scene.Env
	world    *world.World
	intents  *system.Intents
	input    *system.InputSystem
	renderer *render.Renderer
	ended    *ending
}

// New builds a new playthrough of the environment's level
func New(env *scene.Env) (*Playing, error) {
	ctx := world.NewContext(env.Config, env.Level, env.Sound, env.Log, env.Rng())
	intents := &system.Intents{}
	w, err := world.New(ctx, env.Level, intents)
	if err != nil {
		return nil, fmt.Errorf("build level %s: %w", env.Level.ID, err)
	}

	renderer := render.NewRenderer(env.Config.Entities.StatusBars, float64(env.Width()), float64(env.Height()))
	renderer.Debug = env.Debug

	p := &Playing{
		env:      env,
		world:    w,
		intents:  intents,
		input:    system.NewInputSystem(env.Width(), env.Height()),
		renderer: renderer,
	}
	w.OnEnd = func(outcome world.Outcome, image string) {
		p.ended = &ending{outcome: outcome, image: image}
	}
	return p, nil
}

// World returns the running playthrough
func (p *Playing) World() *world.World {
	return p.world
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt time.Duration) (scene.Scene, error) {
	in := p.env.Input
	if in.JustPressed(ebiten.KeyEscape) {
		return p.env.Menu(), nil
	}
	if in.JustPressed(ebiten.KeyM) {
		p.env.ToggleMute()
		p.playMusic()
	}

	p.input.Apply(p.intents, in.Pressed, in.Touches())
	p.world.Update(dt)

	if p.ended != nil {
		return p.env.End(p.ended.outcome, p.ended.image), nil
	}
	return nil, nil
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	s := p.env.Surface
	s.Begin(screen)
	p.renderer.Draw(s, p.world)
	if p.input.TouchSeen() {
		render.DrawButtons(s, p.input.Buttons())
	}
}

// OnEnter starts the playthrough's cadences and the background music
func (p *Playing) OnEnter() {
	p.world.Run()
	p.playMusic()
}

// OnExit tears the playthrough down
func (p *Playing) OnExit() {
	p.world.Stop()
	p.env.Sound.Stop(config.SoundBackgroundMusic)
	p.env.Sound.Stop(config.SoundWalking)
	p.env.Sound.Stop(config.SoundSnoring)
}

func (p *Playing) State() state.GameState {
	return state.StatePlaying
}

func (p *Playing) playMusic() {
	if p.world.Stopped() || p.env.Sound.IsPlaying(config.SoundBackgroundMusic) {
		return
	}
	p.env.Sound.Play(config.SoundBackgroundMusic, p.env.Config.Audio.Volume(config.SoundBackgroundMusic))
}
