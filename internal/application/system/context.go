package system

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/younwookim/pollo/internal/application/schedule"
	"github.com/younwookim/pollo/internal/ecs"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// SoundPlayer is the audio collaborator of the simulation.
// Play is fire-and-forget.
type SoundPlayer interface {
	Play(id config.SoundID, volume float64)
	Stop(id config.SoundID)
	IsPlaying(id config.SoundID) bool
	StopAll()
}

// Context carries everything one playthrough shares between its systems.
// It is built per playthrough and dropped with it.
type Context struct {
	Entities *ecs.World
	Clock    *schedule.Scheduler
	Sound    SoundPlayer
	Config   *config.GameConfig
	Log      *log.Logger
	Rng      *rand.Rand
}

// NewContext creates a context. A nil sound player or logger is replaced by a silent one.
func NewContext(entities *ecs.World, clock *schedule.Scheduler, sound SoundPlayer, cfg *config.GameConfig, logger *log.Logger, rng *rand.Rand) *Context {
	if sound == nil {
		sound = silence{}
	}
	if logger == nil {
		logger = log.New(nopWriter{})
	}
	return &Context{
		Entities: entities,
		Clock:    clock,
		Sound:    sound,
		Config:   cfg,
		Log:      logger,
		Rng:      rng,
	}
}

// Play plays a sound at its configured volume
func (c *Context) Play(id config.SoundID) {
	if id == "" {
		return
	}
	c.Sound.Play(id, c.Config.Audio.Volume(id))
}

// PlayOnce starts a looping-style sound unless it is already playing
func (c *Context) PlayOnce(id config.SoundID) {
	if c.Sound.IsPlaying(id) {
		return
	}
	c.Play(id)
}

type silence struct{}

func (silence) Play(config.SoundID, float64)  {}
func (silence) Stop(config.SoundID)           {}
func (silence) IsPlaying(config.SoundID) bool { return false }
func (silence) StopAll()                      {}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
