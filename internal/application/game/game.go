// Package game runs the ebiten loop and switches between scenes.
package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pollo/internal/application/scene"
	"github.com/younwookim/pollo/internal/application/state"
)

// Game is the ebiten.Game of the window. It forwards every frame to the
// active scene and performs the scene switch the scene asks for.
type Game struct {
	scene    scene.Scene
	width    int
	height   int
	frame    time.Duration
	switches int
	log      *log.Logger
}

// New enters the first scene and returns the game. logger may be nil.
func New(first scene.Scene, width, height int, logger *log.Logger) *Game {
	g := &Game{
		scene:  first,
		width:  width,
		height: height,
		frame:  time.Second / 60,
		log:    logger,
	}
	first.OnEnter()
	return g
}

// Update advances the active scene by one frame.
func (g *Game) Update() error {
	next, err := g.scene.Update(g.frame)
	if err != nil {
		return err
	}
	if next != nil {
		g.switchTo(next)
	}
	return nil
}

func (g *Game) switchTo(next scene.Scene) {
	from := g.scene.State()
	g.scene.OnExit()
	g.scene = next
	g.switches++
	next.OnEnter()

	if g.log == nil {
		return
	}
	to := next.State()
	g.log.Debug("scene", "from", from, "to", to)
	if to.Ended() {
		g.log.Info("playthrough over", "outcome", to)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the logical screen fixed whatever the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// State returns the state of the active scene
func (g *Game) State() state.GameState {
	return g.scene.State()
}

// Switches returns how many scene switches happened so far
func (g *Game) Switches() int {
	return g.switches
}

// SetDT overrides the frame time handed to scenes.
func (g *Game) SetDT(dt time.Duration) {
	g.frame = dt
}
