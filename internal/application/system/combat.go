package system

import (
	"github.com/yohamta/donburi"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/ecs"
)

// CombatSystem resolves the collision pass of a tick: character against
// enemies, character against collectibles and projectiles against enemies.
type CombatSystem struct {
	ctx         *Context
	character   *CharacterSystem
	enemies     *EnemySystem
	projectiles *ProjectileSystem

	// Event callbacks
	OnCollect       func(kind entity.Kind)
	OnCharacterHit  func()
	OnEnemyStomped  func(kind entity.Kind)
	OnProjectileHit func(enemy donburi.Entity)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(ctx *Context, character *CharacterSystem, enemies *EnemySystem, projectiles *ProjectileSystem) *CombatSystem {
	return &CombatSystem{
		ctx:         ctx,
		character:   character,
		enemies:     enemies,
		projectiles: projectiles,
	}
}

// Update runs one collision pass
func (s *CombatSystem) Update() {
	s.checkEnemyCollisions()
	s.checkItemCollisions()
	s.checkProjectileCollisions()
}

// candidates returns the ids of a snapshot that the broad phase places near id, in snapshot order.
func (s *CombatSystem) candidates(id donburi.Entity, tag string, snapshot []donburi.Entity) []donburi.Entity {
	near := s.ctx.Entities.Near(id, tag)
	if len(near) == 0 {
		return nil
	}
	set := make(map[donburi.Entity]struct{}, len(near))
	for _, n := range near {
		set[n] = struct{}{}
	}
	out := make([]donburi.Entity, 0, len(near))
	for _, other := range snapshot {
		if _, ok := set[other]; ok {
			out = append(out, other)
		}
	}
	return out
}

// checkEnemyCollisions decides stomp or side damage per overlapping enemy.
// Defeated enemies waiting for removal are ignored.
func (s *CombatSystem) checkEnemyCollisions() {
	hero := s.ctx.Entities.Entry(s.ctx.Entities.Character())
	if hero == nil {
		return
	}
	combat := s.ctx.Config.Physics.Combat

	for _, id := range s.candidates(hero.Entity(), ecs.SpaceEnemy, s.ctx.Entities.Enemies()) {
		enemy := s.ctx.Entities.Entry(id)
		if enemy == nil || ecs.Health.Get(enemy).Defeated {
			continue
		}
		body := *ecs.Body.Get(hero)
		target := *ecs.Body.Get(enemy)

		if entity.LandedOnTop(body, ecs.Physics.Get(hero).SpeedY, target, combat.StompDepth) {
			s.character.Jump()
			s.enemies.Hit(id)
			if ecs.Health.Get(enemy).IsDead() {
				s.enemies.Defeat(id)
			}
			if s.OnEnemyStomped != nil {
				s.OnEnemyStomped(*ecs.Kind.Get(enemy))
			}
		} else if entity.Collides(body, target) {
			ecs.Health.Get(hero).Hit(s.ctx.Clock.Now(), combat.HitDamage, combat.HitDebounce)
			if s.OnCharacterHit != nil {
				s.OnCharacterHit()
			}
		}
	}
}

// checkItemCollisions picks up every coin and bottle the character touches
func (s *CombatSystem) checkItemCollisions() {
	hero := s.ctx.Entities.Entry(s.ctx.Entities.Character())
	if hero == nil {
		return
	}
	for _, id := range s.candidates(hero.Entity(), ecs.SpaceCollectible, s.ctx.Entities.Collectibles()) {
		item := s.ctx.Entities.Entry(id)
		if item == nil || !entity.Collides(*ecs.Body.Get(hero), *ecs.Body.Get(item)) {
			continue
		}
		kind := *ecs.Kind.Get(item)
		s.ctx.Entities.DestroyEntity(id)

		switch kind {
		case entity.KindCoin:
			s.ctx.Play(s.ctx.Config.Entities.Coin.Sound)
		case entity.KindBottle:
			s.ctx.Play(s.ctx.Config.Entities.Bottle.Sound)
		}
		if s.OnCollect != nil {
			s.OnCollect(kind)
		}
	}
}

// checkProjectileCollisions lets every unspent bottle hit the enemies it overlaps.
// A bottle registers at most one hit and bursts on it.
func (s *CombatSystem) checkProjectileCollisions() {
	for _, pid := range s.ctx.Entities.Projectiles() {
		bottle := s.ctx.Entities.Entry(pid)
		if bottle == nil || ecs.Projectile.Get(bottle).HasHit {
			continue
		}
		for _, id := range s.candidates(pid, ecs.SpaceEnemy, s.ctx.Entities.Enemies()) {
			enemy := s.ctx.Entities.Entry(id)
			if enemy == nil || !entity.Collides(*ecs.Body.Get(bottle), *ecs.Body.Get(enemy)) {
				continue
			}
			if !ecs.Projectile.Get(bottle).RegisterHit() {
				break
			}
			s.enemies.Hit(id)
			s.projectiles.Burst(pid)
			if s.OnProjectileHit != nil {
				s.OnProjectileHit(id)
			}

			enemyID := id
			s.ctx.Clock.After(s.ctx.Config.Physics.Timing.ProjectileDefeat, func() {
				if e := s.ctx.Entities.Entry(enemyID); e != nil && ecs.Health.Get(e).IsDead() {
					s.enemies.Defeat(enemyID)
				}
			})
			break
		}
	}
}
