package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name        string
		want        Kind
		ok          bool
		enemy       bool
		collectible bool
	}{
		{"character", KindCharacter, true, false, false},
		{"chicken", KindChicken, true, true, false},
		{"chick", KindChick, true, true, false},
		{"endboss", KindEndboss, true, true, false},
		{"coin", KindCoin, true, false, true},
		{"bottle", KindBottle, true, false, true},
		{"cloud", KindCloud, true, false, false},
		{"background", KindBackground, true, false, false},
		{"projectile", KindProjectile, true, false, false},
		{"Chicken", 0, false, false, false},
		{"rooster", 0, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseKind(tt.name)
			assert.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.enemy, got.IsEnemy())
			assert.Equal(t, tt.collectible, got.IsCollectible())
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Endboss", KindEndboss.String())
	assert.Equal(t, "Projectile", KindProjectile.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}
