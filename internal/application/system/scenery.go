package system

import "github.com/younwookim/pollo/internal/ecs"

// ScenerySystem drifts clouds and spins coins
type ScenerySystem struct {
	ctx *Context
}

// NewScenerySystem creates a new scenery system
func NewScenerySystem(ctx *Context) *ScenerySystem {
	return &ScenerySystem{ctx: ctx}
}

// Drift moves every cloud left by its speed
func (s *ScenerySystem) Drift() {
	for _, id := range s.ctx.Entities.Clouds() {
		entry := s.ctx.Entities.Entry(id)
		if entry == nil {
			continue
		}
		ecs.Body.Get(entry).X -= ecs.Physics.Get(entry).Speed
	}
}

// SpinCoins advances the coin animation
func (s *ScenerySystem) SpinCoins() {
	for _, id := range s.ctx.Entities.Collectibles() {
		entry := s.ctx.Entities.Entry(id)
		if entry == nil {
			continue
		}
		ecs.Sprite.Get(entry).Play(animSpin)
	}
}
