package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/pollo/internal/ecs"
)

func TestPhysicsSystem_Update(t *testing.T) {
	ctx, _ := newTestContext(t)
	s := NewPhysicsSystem(ctx)
	hero := spawnCharacter(ctx, 100)
	chicken := spawnChicken(ctx, 500)
	chick := spawnChick(ctx, 600)

	phys := ecs.Physics.Get(ctx.Entities.Entry(hero))
	phys.SpeedY = 30
	s.Update()
	assert.Equal(t, 115.0, body(ctx, hero).Y)
	assert.Equal(t, 27.0, phys.SpeedY)

	assert.Equal(t, 365.0, body(ctx, chicken).Y, "chickens have no gravity")
	assert.Equal(t, 375.0, body(ctx, chick).Y, "grounded bodies rest")

	for i := 0; i < 100; i++ {
		s.Update()
	}
	assert.Equal(t, 145.0, body(ctx, hero).Y)
	assert.Zero(t, phys.SpeedY)
}
