package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const ms = time.Millisecond

func TestHealth_HitDebounce(t *testing.T) {
	tests := []struct {
		name       string
		hits       []time.Duration
		wantEnergy int
	}{
		{"single hit", []time.Duration{0}, 98},
		{"two hits within window", []time.Duration{0, 99 * ms}, 98},
		{"two hits at window", []time.Duration{0, 100 * ms}, 96},
		{"first hit at 50ms is accepted", []time.Duration{50 * ms}, 98},
		{"burst of frames", []time.Duration{0, 16 * ms, 33 * ms, 50 * ms, 66 * ms, 83 * ms}, 98},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealth(100)
			for _, at := range tt.hits {
				h.Hit(at, 2, 100*ms)
			}
			assert.Equal(t, tt.wantEnergy, h.Energy)
		})
	}
}

func TestHealth_NeverNegative(t *testing.T) {
	h := NewHealth(3)
	for i := 0; i < 5; i++ {
		h.Hit(time.Duration(i)*time.Second, 2, 100*ms)
		assert.GreaterOrEqual(t, h.Energy, 0)
	}
	assert.Equal(t, 0, h.Energy)
	assert.True(t, h.IsDead())
	assert.False(t, h.Hit(10*time.Second, 2, 100*ms), "dead entities take no more hits")
}

func TestHealth_IsHurt(t *testing.T) {
	h := NewHealth(100)
	assert.False(t, h.IsHurt(0, time.Second), "never hit")

	h.Hit(2*time.Second, 2, 100*ms)
	assert.True(t, h.IsHurt(2*time.Second, time.Second))
	assert.True(t, h.IsHurt(2999*ms, time.Second))
	assert.False(t, h.IsHurt(3*time.Second, time.Second))
}

func TestHealth_DefeatLatch(t *testing.T) {
	h := NewHealth(2)
	h.Hit(0, 2, 100*ms)

	assert.True(t, h.Defeat())
	assert.False(t, h.Defeat())
	assert.True(t, h.Defeated)
}

func TestHealth_Percentage(t *testing.T) {
	h := NewHealth(100)
	h.Hit(0, 2, 100*ms)
	assert.Equal(t, 98.0, h.Percentage())

	empty := Health{}
	assert.Equal(t, 0.0, empty.Percentage())
}
