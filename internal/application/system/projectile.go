package system

import (
	"github.com/yohamta/donburi"
	"github.com/younwookim/pollo/internal/application/schedule"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/ecs"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// ProjectileSystem throws bottles and owns their motion, rotation and splash timers.
type ProjectileSystem struct {
	ctx    *Context
	timers map[donburi.Entity][]schedule.Handle
}

// NewProjectileSystem creates a new projectile system
func NewProjectileSystem(ctx *Context) *ProjectileSystem {
	return &ProjectileSystem{
		ctx:    ctx,
		timers: make(map[donburi.Entity][]schedule.Handle),
	}
}

// Throw spawns a bottle next to a character at (x, y) facing the given way.
func (s *ProjectileSystem) Throw(x, y float64, mirrored bool) donburi.Entity {
	cfg := s.ctx.Config.Entities.Projectile
	timing := s.ctx.Config.Physics.Timing

	offsetX := cfg.SpawnOffsetX
	if mirrored {
		offsetX = cfg.MirroredSpawn
	}
	id := s.ctx.Entities.CreateProjectile(ecs.Spawn{
		Body: entity.Body{
			X:        x + offsetX,
			Y:        y + cfg.SpawnOffsetY,
			Width:    cfg.Size.Width,
			Height:   cfg.Size.Height,
			Mirrored: mirrored,
			Offset:   cfg.Offset.Box(),
		},
		Sprite: entity.NewAnimation(cfg.Image, cfg.Animations),
		Physics: &entity.Physics{
			SpeedY:         cfg.LaunchSpeed,
			Acceleration:   cfg.Acceleration,
			Gravity:        true,
			AlwaysAirborne: true,
		},
	}, entity.NewProjectile(mirrored))
	s.ctx.Play(config.SoundThrow)

	step := s.ctx.Clock.Every(timing.ProjectileStep, func() { s.step(id) })
	rotation := s.ctx.Clock.Every(timing.ProjectileRotation, func() {
		if entry := s.ctx.Entities.Entry(id); entry != nil && !ecs.Projectile.Get(entry).Broken {
			ecs.Sprite.Get(entry).Play(animRotation)
		}
	})
	s.timers[id] = []schedule.Handle{step, rotation}
	return id
}

func (s *ProjectileSystem) step(id donburi.Entity) {
	entry := s.ctx.Entities.Entry(id)
	if entry == nil {
		s.Remove(id)
		return
	}
	body := ecs.Body.Get(entry)
	if body.Y > s.ctx.Config.Entities.Projectile.CullY {
		s.Remove(id)
		return
	}
	ecs.Projectile.Get(entry).Step(body, s.ctx.Config.Entities.Projectile.Step)
	s.ctx.Entities.SyncBounds(entry)
}

// Burst breaks a bottle: motion stops, the splash plays and the bottle
// leaves the level once the splash is over. Returns false if it already burst.
func (s *ProjectileSystem) Burst(id donburi.Entity) bool {
	entry := s.ctx.Entities.Entry(id)
	if entry == nil || !ecs.Projectile.Get(entry).Burst() {
		return false
	}
	ecs.Physics.Get(entry).Halt()
	s.cancel(id)
	s.ctx.Play(config.SoundBreak)

	timing := s.ctx.Config.Physics.Timing
	anim := ecs.Sprite.Get(entry)
	anim.Rewind()
	splash := s.ctx.Clock.Every(timing.SplashFrame, func() {
		if e := s.ctx.Entities.Entry(id); e != nil {
			ecs.Sprite.Get(e).Play(animSplash)
		}
	})
	remove := s.ctx.Clock.After(timing.SplashDuration, func() { s.Remove(id) })
	s.timers[id] = []schedule.Handle{splash, remove}
	return true
}

// Remove cancels a projectile's timers and drops it from the level
func (s *ProjectileSystem) Remove(id donburi.Entity) {
	s.cancel(id)
	delete(s.timers, id)
	s.ctx.Entities.DestroyEntity(id)
}

// Timers returns the number of projectiles with live timers
func (s *ProjectileSystem) Timers() int {
	return len(s.timers)
}

func (s *ProjectileSystem) cancel(id donburi.Entity) {
	for _, h := range s.timers[id] {
		s.ctx.Clock.Cancel(h)
	}
	s.timers[id] = nil
}
