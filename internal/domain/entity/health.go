package entity

import "time"

// Health is the damage state of a damageable entity.
// Energy never drops below zero and Defeated is a one-way latch.
type Health struct {
	Energy   int
	Max      int
	LastHit  time.Duration
	Defeated bool

	struck bool
}

// NewHealth creates a full health pool
func NewHealth(energy int) Health {
	return Health{Energy: energy, Max: energy}
}

// Hit applies damage at time now unless the previous accepted hit is less than debounce ago.
// Returns true if the hit was accepted.
func (h *Health) Hit(now time.Duration, damage int, debounce time.Duration) bool {
	if h.IsDead() {
		return false
	}
	if h.struck && now-h.LastHit < debounce {
		return false
	}
	h.Energy -= damage
	if h.Energy < 0 {
		h.Energy = 0
	}
	h.LastHit = now
	h.struck = true
	return true
}

// IsDead reports whether energy is exhausted
func (h *Health) IsDead() bool {
	return h.Energy == 0
}

// IsHurt reports whether the last accepted hit is less than window ago
func (h *Health) IsHurt(now, window time.Duration) bool {
	return h.struck && now-h.LastHit < window
}

// Defeat sets the Defeated latch. Returns true only on the first call.
func (h *Health) Defeat() bool {
	if h.Defeated {
		return false
	}
	h.Defeated = true
	return true
}

// Percentage returns the remaining energy in percent of Max
func (h *Health) Percentage() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Energy) * 100 / float64(h.Max)
}
