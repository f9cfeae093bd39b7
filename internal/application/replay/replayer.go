// Package replay drives a playthrough from a plan of timed intents,
// without a window or a player.
package replay

import (
	"time"

	"github.com/younwookim/pollo/internal/application/system"
	"github.com/younwookim/pollo/internal/application/world"
)

// Replayer handles intent playback from a plan
type Replayer struct {
	plan Plan
	next int
}

// NewReplayer creates a new replayer from a plan.
// The plan must be valid.
func NewReplayer(plan Plan) *Replayer {
	return &Replayer{plan: plan}
}

// Apply sets intents from every step due at or before now. Returns whether any step applied.
func (r *Replayer) Apply(now time.Duration, intents *system.Intents) bool {
	applied := false
	for r.next < len(r.plan.Steps) && r.plan.Steps[r.next].At <= now {
		intents.Reset()
		for _, name := range r.plan.Steps[r.next].Hold {
			if i, err := system.ParseIntent(name); err == nil {
				intents.Set(i, true)
			}
		}
		r.next++
		applied = true
	}
	return applied
}

// Done reports whether every step was applied
func (r *Replayer) Done() bool {
	return r.next >= len(r.plan.Steps)
}

// Reset rewinds the replayer to the first step
func (r *Replayer) Reset() {
	r.next = 0
}

// Result summarizes a simulated playthrough
type Result struct {
	Ended   bool
	Outcome world.Outcome
	Elapsed time.Duration
	Coins   int
	Bottles int
	Health  float64
}

// Simulate runs a world frame by frame until it ends or the plan's duration
// passes. The world must not be running yet.
func Simulate(w *world.World, plan Plan, frame time.Duration) Result {
	if frame <= 0 {
		frame = time.Second / 60
	}
	var res Result
	prev := w.OnEnd
	w.OnEnd = func(outcome world.Outcome, image string) {
		res.Ended = true
		res.Outcome = outcome
		if prev != nil {
			prev(outcome, image)
		}
	}

	r := NewReplayer(plan)
	clock := w.Context().Clock
	w.Run()
	for !res.Ended && clock.Now() < plan.Duration {
		r.Apply(clock.Now(), w.Intents())
		w.Update(frame)
	}

	res.Elapsed = clock.Now()
	res.Coins = w.CoinBar.Count
	res.Bottles = w.BottleBar.Count
	res.Health = w.HealthBar.Percentage
	w.Stop()
	return res
}
