// Package scene defines the Scene interface for game screens and the
// environment the screens share.
//
// Each game screen (menu, playing, end screen) implements the Scene interface
// to handle its own update logic and rendering.
package scene

import (
	"image"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/pollo/internal/application/render"
	"github.com/younwookim/pollo/internal/application/state"
	"github.com/younwookim/pollo/internal/application/system"
	"github.com/younwookim/pollo/internal/application/world"
	"github.com/younwookim/pollo/internal/infrastructure/config"
	"github.com/younwookim/pollo/internal/infrastructure/prefs"
)

// Scene represents a game screen (menu, playing, end screen)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the frame time (typically 1/60 s).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt time.Duration) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()

	// State names the screen for logging and tests.
	State() state.GameState
}

// Input is the per-frame input state the scenes read
type Input interface {
	JustPressed(key ebiten.Key) bool
	Pressed(key ebiten.Key) bool
	JustTouched() bool
	Touches() []image.Point
}

// Sound is the mixer as seen by the scenes
type Sound interface {
	system.SoundPlayer
	SetMuted(muted bool)
	Muted() bool
}

// Surface is a render surface that can target a screen image
type Surface interface {
	render.Surface
	Begin(dst *ebiten.Image)
	SetAlpha(a float64)
}

// Env carries the process-wide collaborators every scene shares.
// Scene constructors are wired in by the caller, so the screens never import each other.
type Env struct {
	Config  *config.GameConfig
	Level   *config.LevelConfig
	Sound   Sound
	Surface Surface
	Input   Input
	Prefs   *prefs.Prefs
	Log     *log.Logger
	Debug   bool

	// Seed returns the seed of the next playthrough
	Seed func() int64

	Menu    func() Scene
	Playing func() (Scene, error)
	End     func(outcome world.Outcome, image string) Scene
}

// Width returns the logical screen width
func (e *Env) Width() int {
	return e.Config.Physics.Display.ScreenWidth
}

// Height returns the logical screen height
func (e *Env) Height() int {
	return e.Config.Physics.Display.ScreenHeight
}

// Rng creates the random source of a new playthrough
func (e *Env) Rng() *rand.Rand {
	seed := time.Now().UnixNano()
	if e.Seed != nil {
		seed = e.Seed()
	}
	return rand.New(rand.NewSource(seed))
}

// ToggleMute flips the mute flag and persists it
func (e *Env) ToggleMute() {
	muted := !e.Sound.Muted()
	e.Sound.SetMuted(muted)
	e.Log.Debug("mute toggled", "muted", muted)
	if e.Prefs == nil {
		return
	}
	if err := e.Prefs.Save(prefs.Settings{Muted: muted}); err != nil {
		e.Log.Warn("could not save settings", "error", err)
	}
}

// EbitenInput reads input from ebiten
type EbitenInput struct {
	ids []ebiten.TouchID
}

func (in *EbitenInput) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (in *EbitenInput) Pressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (in *EbitenInput) JustTouched() bool {
	in.ids = inpututil.AppendJustPressedTouchIDs(in.ids[:0])
	return len(in.ids) > 0
}

func (in *EbitenInput) Touches() []image.Point {
	in.ids = ebiten.AppendTouchIDs(in.ids[:0])
	out := make([]image.Point, 0, len(in.ids))
	for _, id := range in.ids {
		x, y := ebiten.TouchPosition(id)
		out = append(out, image.Pt(x, y))
	}
	return out
}
