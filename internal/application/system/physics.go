package system

import (
	"github.com/younwookim/pollo/internal/ecs"
)

// PhysicsSystem applies gravity to every entity subject to it
type PhysicsSystem struct {
	ctx *Context
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(ctx *Context) *PhysicsSystem {
	return &PhysicsSystem{ctx: ctx}
}

// Update performs one gravity step
func (s *PhysicsSystem) Update() {
	for _, id := range s.ctx.Entities.Movers() {
		entry := s.ctx.Entities.Entry(id)
		if entry == nil {
			continue
		}
		phys := ecs.Physics.Get(entry)
		if !phys.Gravity {
			continue
		}
		phys.ApplyGravity(ecs.Body.Get(entry))
		s.ctx.Entities.SyncBounds(entry)
	}
}
