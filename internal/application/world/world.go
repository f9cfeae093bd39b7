// Package world provides the aggregate that runs one playthrough.
//
// A World owns the level's entities, the status bars, the camera and the
// end-of-game latch. Every cadence it needs is registered with the
// playthrough's scheduler in Run, and the game loop drives it by advancing
// that scheduler.
package world

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/younwookim/pollo/internal/application/level"
	"github.com/younwookim/pollo/internal/application/schedule"
	"github.com/younwookim/pollo/internal/application/system"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/ecs"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// Outcome is how a playthrough ended
type Outcome int

const (
	OutcomeLost Outcome = iota
	OutcomeWon
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "Lost"
	case OutcomeWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// World is one playthrough
type World struct {
	ctx     *system.Context
	level   *level.Level
	intents *system.Intents

	character   *system.CharacterSystem
	physics     *system.PhysicsSystem
	enemies     *system.EnemySystem
	scenery     *system.ScenerySystem
	projectiles *system.ProjectileSystem
	combat      *system.CombatSystem

	HealthBar  entity.StatusBar
	CoinBar    entity.StatusBar
	BottleBar  entity.StatusBar
	BossBar    entity.StatusBar
	BossShown  bool
	CameraX    float64
	throwReady bool

	// Stomps and BottleHits count enemy hits by kind of attack.
	Stomps     int
	BottleHits int

	hurtSounded   bool
	lastHurtSound time.Duration

	ending  bool
	stopped bool

	// OnEnd is called once when the playthrough ends, with the end screen image.
	OnEnd func(outcome Outcome, image string)
}

const (
	spaceMargin = 1000
	spaceCell   = 64
)

// NewContext creates the context of one playthrough with a fresh scheduler
// and a broad phase wide enough for the level plus a margin on every side.
func NewContext(cfg *config.GameConfig, content *config.LevelConfig, sound system.SoundPlayer, logger *log.Logger, rng *rand.Rand) *system.Context {
	space := ecs.NewSpace(content.EndX+2*spaceMargin, 2*spaceMargin, spaceMargin, spaceMargin, spaceCell)
	return system.NewContext(ecs.NewWorld(space), schedule.New(), sound, cfg, logger, rng)
}

// New builds the level into the context's registry and wires the systems.
func New(ctx *system.Context, content *config.LevelConfig, intents *system.Intents) (*World, error) {
	lvl, err := level.Build(ctx.Entities, ctx.Config.Entities, content, ctx.Rng)
	if err != nil {
		return nil, err
	}

	bars := ctx.Config.Entities.StatusBars
	w := &World{
		ctx:         ctx,
		level:       lvl,
		intents:     intents,
		character:   system.NewCharacterSystem(ctx, intents, lvl.EndX),
		physics:     system.NewPhysicsSystem(ctx),
		enemies:     system.NewEnemySystem(ctx),
		scenery:     system.NewScenerySystem(ctx),
		projectiles: system.NewProjectileSystem(ctx),
		HealthBar: entity.StatusBar{
			Kind:       entity.BarHealth,
			X:          bars.Health.X,
			Y:          bars.Health.Y,
			Width:      bars.Health.Size.Width,
			Height:     bars.Health.Size.Height,
			Percentage: 100,
			Frames:     bars.Health.Frames,
		},
		CoinBar:   counterBar(entity.BarCoin, bars.Coin),
		BottleBar: counterBar(entity.BarBottle, bars.Bottle),
		BossBar: entity.StatusBar{
			Kind:      entity.BarBoss,
			X:         bars.Boss.X,
			Y:         bars.Boss.Y,
			Width:     bars.Boss.Size.Width,
			Height:    bars.Boss.Size.Height,
			Energy:    bars.Boss.MaxEnergy,
			MaxEnergy: bars.Boss.MaxEnergy,
			Icon:      bars.Boss.Icon,
		},
		throwReady: true,
	}
	w.combat = system.NewCombatSystem(ctx, w.character, w.enemies, w.projectiles)
	w.combat.OnCollect = w.collect
	w.combat.OnCharacterHit = w.characterHit
	w.combat.OnEnemyStomped = w.stomped
	w.combat.OnProjectileHit = w.bottleHit
	w.updateCamera()
	return w, nil
}

func counterBar(kind entity.BarKind, c config.CounterConfig) entity.StatusBar {
	return entity.StatusBar{
		Kind:   kind,
		X:      c.X,
		Y:      c.Y,
		Width:  c.IconSize,
		Height: c.IconSize,
		Icon:   c.Icon,
	}
}

// Context returns the playthrough context
func (w *World) Context() *system.Context {
	return w.ctx
}

// Level returns the level of the playthrough
func (w *World) Level() *level.Level {
	return w.level
}

// Intents returns the intents the character reads
func (w *World) Intents() *system.Intents {
	return w.intents
}

// Stopped reports whether the playthrough ended
func (w *World) Stopped() bool {
	return w.stopped
}

// Run registers every cadence of the playthrough with its scheduler and
// arms the character's idle timers.
func (w *World) Run() {
	clock := w.ctx.Clock
	timing := w.ctx.Config.Physics.Timing

	clock.Every(timing.TickPeriod(), func() {
		w.character.Move()
		w.updateCamera()
		w.enemies.Move()
		w.scenery.Drift()
	})
	clock.Every(timing.TickPeriod(), w.Tick)
	clock.Every(timing.PhysicsPeriod(), w.physics.Update)
	clock.Every(timing.CharacterAnimation, w.character.Animate)
	clock.Every(timing.EnemyAnimation, w.enemies.AnimateWalkers)
	clock.Every(timing.ChickJump, w.enemies.RollJumps)
	clock.Every(timing.EndbossAnimation, w.enemies.AnimateEndboss)
	clock.Every(timing.CoinAnimation, w.scenery.SpinCoins)
	w.character.ResetIdle()

	w.ctx.Log.Debug("world running", "level", w.level.ID, "entities", w.ctx.Entities.Len())
}

// Update advances the playthrough by dt
func (w *World) Update(dt time.Duration) {
	w.ctx.Clock.Advance(dt)
}

// Tick runs the orchestration step: collisions, throwing, then the end check.
func (w *World) Tick() {
	if w.stopped {
		return
	}
	w.combat.Update()
	w.checkThrow()
	w.updateBossBar()
	w.checkEnd()
}

func (w *World) hero() (entity.Body, *entity.Health, bool) {
	entry := w.ctx.Entities.Entry(w.ctx.Entities.Character())
	if entry == nil {
		return entity.Body{}, nil, false
	}
	return *ecs.Body.Get(entry), ecs.Health.Get(entry), true
}

func (w *World) updateCamera() {
	if b, _, ok := w.hero(); ok {
		w.CameraX = -b.X + w.ctx.Config.Physics.Camera.OffsetX
	}
}

func (w *World) collect(kind entity.Kind) {
	switch kind {
	case entity.KindCoin:
		w.CoinBar.Count++
	case entity.KindBottle:
		w.BottleBar.Count++
	}
}

func (w *World) stomped(kind entity.Kind) {
	w.Stomps++
	w.ctx.Log.Debug("stomp", "enemy", kind, "stomps", w.Stomps)
}

func (w *World) bottleHit(enemy donburi.Entity) {
	w.BottleHits++
	if e := w.ctx.Entities.Entry(enemy); e != nil {
		w.ctx.Log.Debug("bottle hit", "enemy", *ecs.Kind.Get(e), "energy", ecs.Health.Get(e).Energy)
	}
}

// characterHit refreshes the health bar and plays the hurt sound at most once per cooldown.
func (w *World) characterHit() {
	_, h, ok := w.hero()
	if !ok {
		return
	}
	w.HealthBar.SetPercentage(h.Percentage())

	now := w.ctx.Clock.Now()
	timing := w.ctx.Config.Physics.Timing
	if !h.IsHurt(now, w.ctx.Config.Physics.Combat.HurtWindow) {
		return
	}
	if w.hurtSounded && now-w.lastHurtSound < timing.HurtSoundCooldown {
		return
	}
	w.ctx.Play(config.SoundHurt)
	w.hurtSounded = true
	w.lastHurtSound = now
}

func (w *World) checkThrow() {
	if !w.intents.Pressed(system.IntentThrow) || w.BottleBar.Count <= 0 || !w.throwReady {
		return
	}
	b, h, ok := w.hero()
	if !ok || h.IsDead() {
		return
	}
	w.throwReady = false
	w.projectiles.Throw(b.X, b.Y, b.Mirrored)
	w.BottleBar.Count--
	w.ctx.Clock.After(w.ctx.Config.Physics.Timing.ThrowCooldown, func() {
		w.throwReady = true
	})
}

func (w *World) updateBossBar() {
	entry := w.ctx.Entities.Entry(w.level.Endboss)
	if entry == nil {
		return
	}
	w.BossBar.Energy = ecs.Health.Get(entry).Energy
	if ecs.Endboss.Get(entry).FirstContact {
		w.BossShown = true
	}
}

// checkEnd arms the end of the playthrough the first tick the character or the boss is dead.
func (w *World) checkEnd() {
	if w.ending {
		return
	}
	screens := w.ctx.Config.Entities.EndScreens

	if _, h, ok := w.hero(); ok && h.IsDead() {
		w.arm(OutcomeLost, screens.Lose, config.SoundGameOver)
		return
	}
	for _, id := range w.ctx.Entities.Enemies() {
		entry := w.ctx.Entities.Entry(id)
		if entry != nil && *ecs.Kind.Get(entry) == entity.KindEndboss && ecs.Health.Get(entry).IsDead() {
			w.arm(OutcomeWon, screens.Win, config.SoundWinner)
			return
		}
	}
}

func (w *World) arm(outcome Outcome, image string, sound config.SoundID) {
	w.ending = true
	w.ctx.Log.Debug("playthrough ending", "outcome", outcome)
	w.ctx.Clock.After(w.ctx.Config.Physics.Timing.EndDelay, func() {
		w.end(outcome, image, sound)
	})
}

func (w *World) end(outcome Outcome, image string, sound config.SoundID) {
	w.ctx.Sound.StopAll()
	w.ctx.Play(sound)
	w.Stop()
	w.ctx.Log.Info("playthrough ended", "outcome", outcome, "coins", w.CoinBar.Count)
	if w.OnEnd != nil {
		w.OnEnd(outcome, image)
	}
}

// Stop tears the playthrough down: every timer is canceled and every entity removed.
// Stopping twice is a no-op.
func (w *World) Stop() {
	if w.stopped {
		return
	}
	w.stopped = true
	w.ctx.Clock.Stop()
	w.ctx.Entities.Clear()
}
