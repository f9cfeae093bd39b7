// Package scenetest provides fakes for driving scenes without a window.
package scenetest

import (
	"bytes"
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pollo/internal/application/scene"
	"github.com/younwookim/pollo/internal/infrastructure/config"
	"github.com/younwookim/pollo/internal/infrastructure/prefs"
)

// Input is a scripted input state. Just-pressed keys and taps last one frame.
type Input struct {
	Held    map[ebiten.Key]bool
	Tapped  bool
	Points  []image.Point
	pressed map[ebiten.Key]bool
}

// NewInput creates an idle input
func NewInput() *Input {
	return &Input{Held: map[ebiten.Key]bool{}, pressed: map[ebiten.Key]bool{}}
}

// Press marks a key as just pressed for the next frame
func (in *Input) Press(key ebiten.Key) {
	in.pressed[key] = true
}

// Frame clears the one-frame state
func (in *Input) Frame() {
	in.pressed = map[ebiten.Key]bool{}
	in.Tapped = false
}

func (in *Input) JustPressed(key ebiten.Key) bool { return in.pressed[key] }
func (in *Input) Pressed(key ebiten.Key) bool     { return in.Held[key] || in.pressed[key] }
func (in *Input) JustTouched() bool               { return in.Tapped }
func (in *Input) Touches() []image.Point          { return in.Points }

// Sound records what was played
type Sound struct {
	Played  []config.SoundID
	Playing map[config.SoundID]bool
	muted   bool
}

// NewSound creates a silent recorder
func NewSound() *Sound {
	return &Sound{Playing: map[config.SoundID]bool{}}
}

func (s *Sound) Play(id config.SoundID, _ float64) {
	if s.muted {
		return
	}
	s.Played = append(s.Played, id)
	s.Playing[id] = true
}

func (s *Sound) Stop(id config.SoundID)           { delete(s.Playing, id) }
func (s *Sound) IsPlaying(id config.SoundID) bool { return s.Playing[id] }
func (s *Sound) StopAll()                         { s.Playing = map[config.SoundID]bool{} }

func (s *Sound) SetMuted(muted bool) {
	s.muted = muted
	if muted {
		s.StopAll()
	}
}

func (s *Sound) Muted() bool { return s.muted }

// Count returns how often a sound was played
func (s *Sound) Count(id config.SoundID) int {
	n := 0
	for _, p := range s.Played {
		if p == id {
			n++
		}
	}
	return n
}

// Surface records the images and texts drawn, ignoring transforms
type Surface struct {
	Images []string
	Texts  []string
	Alpha  float64
	Frames int
}

func (s *Surface) Begin(*ebiten.Image) {
	s.Images, s.Texts = nil, nil
	s.Alpha = 1
	s.Frames++
}

func (s *Surface) SetAlpha(a float64)                         { s.Alpha = a }
func (s *Surface) ClearRect(x, y, w, h float64)               {}
func (s *Surface) DrawImage(image string, x, y, w, h float64) { s.Images = append(s.Images, image) }
func (s *Surface) Save()                                      {}
func (s *Surface) Restore()                                   {}
func (s *Surface) Translate(x, y float64)                     {}
func (s *Surface) Scale(x, y float64)                         {}
func (s *Surface) FillText(text string, x, y float64)         { s.Texts = append(s.Texts, text) }
func (s *Surface) StrokeRect(x, y, w, h float64)              {}

// Store is an in-memory settings store
type Store struct {
	Items map[string][]byte
}

func (m *Store) LoadItem(key string) ([]byte, error) { return m.Items[key], nil }

func (m *Store) SaveItem(key string, data []byte) error {
	m.Items[key] = data
	return nil
}

// Env bundles an environment with its fakes
type Env struct {
	*scene.Env
	Input   *Input
	Sound   *Sound
	Surface *Surface
	Store   *Store
}

// NewEnv creates an environment over the embedded defaults and level1,
// with a fixed seed and no scene constructors wired.
func NewEnv() *Env {
	cfg := config.MustLoadDefaults()
	content, err := config.NewDefaultLoader().LoadLevel("level1")
	if err != nil {
		panic(err)
	}
	e := &Env{
		Input:   NewInput(),
		Sound:   NewSound(),
		Surface: &Surface{},
		Store:   &Store{Items: map[string][]byte{}},
	}
	e.Env = &scene.Env{
		Config:  cfg,
		Level:   content,
		Sound:   e.Sound,
		Surface: e.Surface,
		Input:   e.Input,
		Prefs:   prefs.New(e.Store),
		Log:     log.New(&bytes.Buffer{}),
		Seed:    func() int64 { return 7 },
	}
	return e
}
