// Package menu provides the start screen.
package menu

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pollo/internal/application/scene"
	"github.com/younwookim/pollo/internal/application/state"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// Menu shows the start screen and plays the intro music until the player starts.
type Menu struct {
	env *scene.Env
}

// New creates the start screen
func New(env *scene.Env) *Menu {
	return &Menu{env: env}
}

// Update starts a playthrough on Enter, Space or a tap. M toggles the sound.
func (m *Menu) Update(_ time.Duration) (scene.Scene, error) {
	in := m.env.Input
	if in.JustPressed(ebiten.KeyM) {
		m.env.ToggleMute()
		m.playMusic()
	}
	if in.JustPressed(ebiten.KeyEnter) || in.JustPressed(ebiten.KeySpace) || in.JustTouched() {
		return m.env.Playing()
	}
	return nil, nil
}

func (m *Menu) Draw(screen *ebiten.Image) {
	s := m.env.Surface
	w, h := float64(m.env.Width()), float64(m.env.Height())
	s.Begin(screen)
	s.ClearRect(0, 0, w, h)
	s.DrawImage(m.env.Config.Entities.EndScreens.Start, 0, 0, w, h)
	s.FillText("Press ENTER to start", w/2-130, h-60)
	if m.env.Sound.Muted() {
		s.FillText("M: sound on", w/2-70, h-20)
	} else {
		s.FillText("M: sound off", w/2-70, h-20)
	}
}

func (m *Menu) OnEnter() {
	m.playMusic()
}

func (m *Menu) OnExit() {
	m.env.Sound.Stop(config.SoundIntroMusic)
}

func (m *Menu) State() state.GameState {
	return state.StateMenu
}

func (m *Menu) playMusic() {
	if m.env.Sound.IsPlaying(config.SoundIntroMusic) {
		return
	}
	m.env.Sound.Play(config.SoundIntroMusic, m.env.Config.Audio.Volume(config.SoundIntroMusic))
}
