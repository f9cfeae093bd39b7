package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndbossState_PatrolOscillates(t *testing.T) {
	s := NewEndbossState()
	b := &Body{X: 2500}

	minX, maxX := b.X, b.X
	for i := 0; i < 2000; i++ {
		s.Patrol(b, 1.5, 2000, 2500)
		if b.X < minX {
			minX = b.X
		}
		if b.X > maxX {
			maxX = b.X
		}
	}
	assert.GreaterOrEqual(t, minX, 2000-1.5)
	assert.LessOrEqual(t, maxX, 2500+1.5)
	assert.Less(t, minX, 2001.0, "reached the left turn")
}

func TestEndbossState_TurnPoints(t *testing.T) {
	s := NewEndbossState()
	b := &Body{X: 2000}
	s.Patrol(b, 1, 2000, 2500)
	assert.False(t, s.MovingLeft)
	assert.Equal(t, 2001.0, b.X)

	b.X = 2500
	s.Patrol(b, 1, 2000, 2500)
	assert.True(t, s.MovingLeft)
	assert.Equal(t, 2499.0, b.X)
}

func TestEndbossState_AlertFiresOnce(t *testing.T) {
	s := NewEndbossState()

	assert.False(t, s.TriggerAlert(1700, 1700), "must exceed the trigger")
	assert.True(t, s.TriggerAlert(1701, 1700))
	assert.True(t, s.Alert)
	assert.False(t, s.TriggerAlert(1800, 1700), "latched")

	for i := 0; i < 7; i++ {
		s.StepAlert(8)
		assert.True(t, s.Alert)
	}
	s.StepAlert(8)
	assert.False(t, s.Alert, "cleared after the full sequence")
	assert.Equal(t, 0, s.AlertCounter)
	assert.True(t, s.FirstContact)
}

func TestProjectile(t *testing.T) {
	p := NewProjectile(true)
	b := &Body{X: 100}

	p.Step(b, 10)
	assert.Equal(t, 90.0, b.X)

	assert.True(t, p.RegisterHit())
	assert.False(t, p.RegisterHit(), "only one hit per projectile")

	assert.True(t, p.Burst())
	assert.False(t, p.Burst())
	p.Step(b, 10)
	assert.Equal(t, 90.0, b.X, "broken projectiles stay put")
}

func TestKind(t *testing.T) {
	tests := []struct {
		name        string
		kind        Kind
		enemy       bool
		collectible bool
	}{
		{"Character", KindCharacter, false, false},
		{"Chicken", KindChicken, true, false},
		{"Chick", KindChick, true, false},
		{"Endboss", KindEndboss, true, false},
		{"Coin", KindCoin, false, true},
		{"Bottle", KindBottle, false, true},
		{"Cloud", KindCloud, false, false},
		{"Projectile", KindProjectile, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.enemy, tt.kind.IsEnemy())
			assert.Equal(t, tt.collectible, tt.kind.IsCollectible())
		})
	}
	assert.Equal(t, "Unknown", Kind(99).String())

	k, ok := ParseKind("endboss")
	assert.True(t, ok)
	assert.Equal(t, KindEndboss, k)
	_, ok = ParseKind("rooster")
	assert.False(t, ok)
}
