package system

import (
	"github.com/yohamta/donburi"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/ecs"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// EnemySystem drives chickens, chicks and the endboss
type EnemySystem struct {
	ctx *Context
}

// NewEnemySystem creates a new enemy system
func NewEnemySystem(ctx *Context) *EnemySystem {
	return &EnemySystem{ctx: ctx}
}

// Move walks chickens and chicks left and patrols the boss. Defeated enemies stand still.
func (s *EnemySystem) Move() {
	boss := s.ctx.Config.Entities.Endboss
	for _, id := range s.ctx.Entities.Enemies() {
		entry := s.ctx.Entities.Entry(id)
		if entry == nil || ecs.Health.Get(entry).Defeated {
			continue
		}
		body := ecs.Body.Get(entry)
		phys := ecs.Physics.Get(entry)
		if entry.HasComponent(ecs.Endboss) {
			ecs.Endboss.Get(entry).Patrol(body, phys.Speed, boss.PatrolMinX, boss.PatrolMaxX)
		} else {
			body.X -= phys.Speed
		}
		s.ctx.Entities.SyncBounds(entry)
	}
}

// AnimateWalkers advances the walk cycle of chickens and chicks
func (s *EnemySystem) AnimateWalkers() {
	for _, id := range s.ctx.Entities.Enemies() {
		entry := s.ctx.Entities.Entry(id)
		if entry == nil || entry.HasComponent(ecs.Endboss) || ecs.Health.Get(entry).Defeated {
			continue
		}
		ecs.Sprite.Get(entry).Play(animWalking)
	}
}

// RollJumps lets every live chick jump with its configured chance
func (s *EnemySystem) RollJumps() {
	chick := s.ctx.Config.Entities.Chick
	for _, id := range s.ctx.Entities.Enemies() {
		entry := s.ctx.Entities.Entry(id)
		if entry == nil || *ecs.Kind.Get(entry) != entity.KindChick || ecs.Health.Get(entry).Defeated {
			continue
		}
		if s.ctx.Rng.Float64() < chick.JumpChance {
			ecs.Physics.Get(entry).Jump(chick.JumpSpeed)
		}
	}
}

// AnimateEndboss advances the boss animation by priority (dead, hurt, alert, walking)
// and fires the alert the first time the character passes the trigger line.
func (s *EnemySystem) AnimateEndboss() {
	cfg := s.ctx.Config.Entities.Endboss
	now := s.ctx.Clock.Now()

	var characterX float64
	hero := s.ctx.Entities.Entry(s.ctx.Entities.Character())
	if hero != nil {
		characterX = ecs.Body.Get(hero).X
	}

	for _, id := range s.ctx.Entities.Enemies() {
		entry := s.ctx.Entities.Entry(id)
		if entry == nil || !entry.HasComponent(ecs.Endboss) {
			continue
		}
		state := ecs.Endboss.Get(entry)
		health := ecs.Health.Get(entry)
		anim := ecs.Sprite.Get(entry)

		switch {
		case health.Defeated:
			anim.Play(animDead)
		case health.IsHurt(now, s.ctx.Config.Physics.Combat.HurtWindow):
			anim.Play(animHurt)
		case state.Alert:
			anim.Play(animAlert)
			state.StepAlert(anim.Len(animAlert))
		default:
			anim.Play(animWalking)
		}

		if hero != nil && state.TriggerAlert(characterX, cfg.AlertTriggerX) {
			s.ctx.Play(cfg.AlertSound)
			s.ctx.Log.Debug("endboss alerted", "characterX", characterX)
		}
	}
}

// Hit applies one hit to an enemy. Returns true if the hit was accepted.
func (s *EnemySystem) Hit(id donburi.Entity) bool {
	entry := s.ctx.Entities.Entry(id)
	if entry == nil {
		return false
	}
	combat := s.ctx.Config.Physics.Combat
	if !ecs.Health.Get(entry).Hit(s.ctx.Clock.Now(), combat.HitDamage, combat.HitDebounce) {
		return false
	}
	if entry.HasComponent(ecs.Endboss) {
		s.ctx.Play(s.ctx.Config.Entities.Endboss.HurtSound)
	}
	return true
}

// Defeat plays an enemy's death once and removes it from the level after the removal delay.
// Returns false if the enemy was already defeated or is gone.
func (s *EnemySystem) Defeat(id donburi.Entity) bool {
	entry := s.ctx.Entities.Entry(id)
	if entry == nil || !ecs.Health.Get(entry).Defeat() {
		return false
	}
	ecs.Physics.Get(entry).Speed = 0

	kind := *ecs.Kind.Get(entry)
	anim := ecs.Sprite.Get(entry)
	var sound config.SoundID
	switch kind {
	case entity.KindChicken:
		anim.Show(s.ctx.Config.Entities.Chicken.DeathImage)
		sound = s.ctx.Config.Entities.Chicken.DeathSound
	case entity.KindChick:
		anim.Show(s.ctx.Config.Entities.Chick.DeathImage)
		sound = s.ctx.Config.Entities.Chick.DeathSound
	case entity.KindEndboss:
		anim.Rewind()
		anim.Play(animDead)
		sound = s.ctx.Config.Entities.Endboss.DeathSound
	}
	s.ctx.Play(sound)
	s.ctx.Log.Debug("enemy defeated", "kind", kind)

	s.ctx.Clock.After(s.ctx.Config.Physics.Timing.DefeatRemoval, func() {
		s.ctx.Entities.DestroyEntity(id)
	})
	return true
}
