package system

import (
	"math/rand"
	"testing"
	"time"

	"github.com/yohamta/donburi"
	"github.com/younwookim/pollo/internal/application/schedule"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/ecs"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

const ms = time.Millisecond

// fakeSound records every call of the simulation to its audio collaborator
type fakeSound struct {
	played  []config.SoundID
	stopped []config.SoundID
	playing map[config.SoundID]bool
}

func newFakeSound() *fakeSound {
	return &fakeSound{playing: make(map[config.SoundID]bool)}
}

func (f *fakeSound) Play(id config.SoundID, _ float64) {
	f.played = append(f.played, id)
	f.playing[id] = true
}

func (f *fakeSound) Stop(id config.SoundID) {
	f.stopped = append(f.stopped, id)
	delete(f.playing, id)
}

func (f *fakeSound) IsPlaying(id config.SoundID) bool {
	return f.playing[id]
}

func (f *fakeSound) StopAll() {
	f.playing = make(map[config.SoundID]bool)
}

func (f *fakeSound) count(id config.SoundID) int {
	n := 0
	for _, p := range f.played {
		if p == id {
			n++
		}
	}
	return n
}

func newTestContext(t *testing.T) (*Context, *fakeSound) {
	t.Helper()
	sound := newFakeSound()
	entities := ecs.NewWorld(ecs.NewSpace(4000, 2000, 1000, 1000, 64))
	ctx := NewContext(entities, schedule.New(), sound, config.MustLoadDefaults(), nil, rand.New(rand.NewSource(1)))
	return ctx, sound
}

// spawnCharacter places the character standing on the ground at x
func spawnCharacter(ctx *Context, x float64) donburi.Entity {
	c := ctx.Config.Entities.Character
	h := entity.NewHealth(c.Energy)
	return ctx.Entities.CreateCharacter(ecs.Spawn{
		Body:    entity.Body{X: x, Y: c.GroundY, Width: c.Size.Width, Height: c.Size.Height, Offset: c.Offset.Box()},
		Sprite:  entity.NewAnimation(c.Image, c.Animations),
		Physics: &entity.Physics{Speed: c.Speed, Acceleration: c.Acceleration, GroundY: c.GroundY, Gravity: true},
		Health:  &h,
	})
}

func spawnChicken(ctx *Context, x float64) donburi.Entity {
	c := ctx.Config.Entities.Chicken
	h := entity.NewHealth(c.Energy)
	return ctx.Entities.CreateEnemy(entity.KindChicken, ecs.Spawn{
		Body:    entity.Body{X: x, Y: c.Y, Width: c.Size.Width, Height: c.Size.Height, Offset: c.Offset.Box()},
		Sprite:  entity.NewAnimation(c.Image, c.Animations),
		Physics: &entity.Physics{Speed: 0.5},
		Health:  &h,
	})
}

func spawnChick(ctx *Context, x float64) donburi.Entity {
	c := ctx.Config.Entities.Chick
	h := entity.NewHealth(c.Energy)
	return ctx.Entities.CreateEnemy(entity.KindChick, ecs.Spawn{
		Body:    entity.Body{X: x, Y: c.Y, Width: c.Size.Width, Height: c.Size.Height, Offset: c.Offset.Box()},
		Sprite:  entity.NewAnimation(c.Image, c.Animations),
		Physics: &entity.Physics{Speed: 0.5, Acceleration: c.Acceleration, GroundY: c.GroundY, Gravity: true},
		Health:  &h,
	})
}

func spawnEndboss(ctx *Context, x float64) donburi.Entity {
	c := ctx.Config.Entities.Endboss
	h := entity.NewHealth(c.Energy)
	return ctx.Entities.CreateEndboss(ecs.Spawn{
		Body:    entity.Body{X: x, Y: c.Y, Width: c.Size.Width, Height: c.Size.Height, Offset: c.Offset.Box()},
		Sprite:  entity.NewAnimation(c.Image, c.Animations),
		Physics: &entity.Physics{Speed: 1},
		Health:  &h,
	}, entity.NewEndbossState())
}

func spawnItem(ctx *Context, kind entity.Kind, x, y float64) donburi.Entity {
	c := ctx.Config.Entities.Coin
	if kind == entity.KindBottle {
		c = ctx.Config.Entities.Bottle
	}
	return ctx.Entities.CreateCollectible(kind, ecs.Spawn{
		Body:   entity.Body{X: x, Y: y, Width: c.Size.Width, Height: c.Size.Height, Offset: c.Offset.Box()},
		Sprite: entity.NewAnimation(c.Image, c.Animations),
	})
}

func body(ctx *Context, id donburi.Entity) *entity.Body {
	return ecs.Body.Get(ctx.Entities.Entry(id))
}

func health(ctx *Context, id donburi.Entity) *entity.Health {
	return ecs.Health.Get(ctx.Entities.Entry(id))
}
