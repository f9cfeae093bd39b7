package system

import (
	"github.com/yohamta/donburi"
	"github.com/younwookim/pollo/internal/application/schedule"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/ecs"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

const (
	animIdle     = "idle"
	animLongIdle = "longIdle"
	animWalking  = "walking"
	animJumping  = "jumping"
	animHurt     = "hurt"
	animDead     = "dead"
	animAlert    = "alert"
	animSpin     = "spin"
	animRotation = "rotation"
	animSplash   = "splash"
)

// CharacterSystem turns intents into movement, jumps, idle escalation
// and the character's animation and sounds.
type CharacterSystem struct {
	ctx       *Context
	intents   *Intents
	levelEndX float64

	idleTimer     schedule.Handle
	longIdleTimer schedule.Handle
}

// NewCharacterSystem creates a new character system
func NewCharacterSystem(ctx *Context, intents *Intents, levelEndX float64) *CharacterSystem {
	return &CharacterSystem{
		ctx:       ctx,
		intents:   intents,
		levelEndX: levelEndX,
	}
}

func (s *CharacterSystem) entry() *donburi.Entry {
	return s.ctx.Entities.Entry(s.ctx.Entities.Character())
}

// Move applies this tick's intents. It returns true if the character moved,
// jumped or threw.
func (s *CharacterSystem) Move() bool {
	entry := s.entry()
	if entry == nil {
		return false
	}
	state := ecs.Character.Get(entry)
	body := ecs.Body.Get(entry)
	phys := ecs.Physics.Get(entry)
	health := ecs.Health.Get(entry)

	state.MovingRight = s.intents.Pressed(IntentRight) && body.X < s.levelEndX
	if state.MovingRight {
		body.X += phys.Speed
		body.Mirrored = false
	}
	state.MovingLeft = s.intents.Pressed(IntentLeft) && body.X > 0
	if state.MovingLeft {
		body.X -= phys.Speed
		body.Mirrored = true
	}

	jumped := false
	if s.intents.Pressed(IntentJump) && !phys.Airborne(body) {
		s.Jump()
		jumped = true
	}
	state.Throwing = s.intents.Pressed(IntentThrow) && !health.IsDead()

	s.ctx.Entities.SyncBounds(entry)

	moved := state.Moving() || jumped
	if moved {
		s.ResetIdle()
	}
	return moved
}

// Jump launches the character unless it is still rising.
// It also serves as the bounce after a stomp.
func (s *CharacterSystem) Jump() {
	entry := s.entry()
	if entry == nil {
		return
	}
	phys := ecs.Physics.Get(entry)
	if !phys.Jump(s.ctx.Config.Entities.Character.JumpSpeed) {
		return
	}
	ecs.Sprite.Get(entry).Rewind()
	s.ctx.Play(config.SoundJump)
}

// ResetIdle clears both idle flags and restarts the escalation timers.
func (s *CharacterSystem) ResetIdle() {
	entry := s.entry()
	if entry == nil {
		return
	}
	ecs.Character.Get(entry).Wake()
	s.ctx.Sound.Stop(config.SoundSnoring)

	clock := s.ctx.Clock
	timing := s.ctx.Config.Physics.Timing
	clock.Cancel(s.idleTimer)
	clock.Cancel(s.longIdleTimer)
	s.idleTimer = clock.After(timing.Idle, func() {
		if e := s.entry(); e != nil {
			ecs.Character.Get(e).Idle = true
		}
		s.longIdleTimer = clock.After(timing.LongIdle, func() {
			e := s.entry()
			if e == nil {
				return
			}
			state := ecs.Character.Get(e)
			if state.Idle && !state.MovingLeft && !state.MovingRight {
				state.LongIdle = true
			}
		})
	})
}

// Animate picks one animation family by priority and advances it one frame:
// dead, hurt, airborne, walking, then idle or long idle.
func (s *CharacterSystem) Animate() {
	entry := s.entry()
	if entry == nil {
		return
	}
	state := ecs.Character.Get(entry)
	body := ecs.Body.Get(entry)
	phys := ecs.Physics.Get(entry)
	health := ecs.Health.Get(entry)
	anim := ecs.Sprite.Get(entry)
	now := s.ctx.Clock.Now()

	switch {
	case health.IsDead():
		if !health.Defeat() {
			return
		}
		if n := anim.Len(animDead); n > 0 {
			anim.Show(anim.Sequences[animDead][n-1])
		}
		s.ctx.Sound.Stop(config.SoundWalking)
		s.ctx.Play(config.SoundCharacterDie)
	case health.IsHurt(now, s.ctx.Config.Physics.Combat.HurtWindow):
		anim.Play(animHurt)
	case phys.Airborne(body):
		entity.HoldJumpFrame(anim, anim.Len(animJumping), phys.Rising())
		anim.Play(animJumping)
	case s.intents.Pressed(IntentLeft) || s.intents.Pressed(IntentRight):
		anim.Play(animWalking)
		s.ctx.PlayOnce(config.SoundWalking)
	default:
		if state.LongIdle {
			anim.Play(animLongIdle)
			s.ctx.PlayOnce(config.SoundSnoring)
		} else {
			anim.Play(animIdle)
		}
		s.ctx.Sound.Stop(config.SoundWalking)
	}
}
