package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/younwookim/pollo/internal/domain/entity"
)

// Spawn holds the components of a new entity. Nil parts are left out.
type Spawn struct {
	Body    entity.Body
	Sprite  entity.Animation
	Physics *entity.Physics
	Health  *entity.Health
}

// World holds every live entity of one playthrough and keeps the
// collision space in sync with it.
type World struct {
	world     donburi.World
	space     *Space
	character donburi.Entity
}

// NewWorld creates a new empty world
func NewWorld(space *Space) *World {
	return &World{
		world: donburi.NewWorld(),
		space: space,
	}
}

// Space returns the collision broad phase
func (w *World) Space() *Space {
	return w.space
}

// Exists reports whether the entity is still alive
func (w *World) Exists(id donburi.Entity) bool {
	return id != 0 && w.world.Valid(id)
}

// Entry returns the entry of a live entity, nil if it was removed
func (w *World) Entry(id donburi.Entity) *donburi.Entry {
	if !w.Exists(id) {
		return nil
	}
	return w.world.Entry(id)
}

// DestroyEntity removes an entity and its collision object.
// Removing an unknown entity is a no-op.
func (w *World) DestroyEntity(id donburi.Entity) {
	if !w.Exists(id) {
		return
	}
	w.space.Remove(id)
	w.world.Remove(id)
}

// Character returns the player character entity
func (w *World) Character() donburi.Entity {
	return w.character
}

// CreateCharacter creates the player character
func (w *World) CreateCharacter(s Spawn) donburi.Entity {
	id := w.create(entity.KindCharacter, s, TagCharacter, Character)
	w.character = id
	w.space.Add(id, broad(s.Body), SpaceCharacter)
	return id
}

// CreateEnemy creates a chicken or chick
func (w *World) CreateEnemy(kind entity.Kind, s Spawn) donburi.Entity {
	id := w.create(kind, s, TagEnemy)
	w.space.Add(id, broad(s.Body), SpaceEnemy)
	return id
}

// CreateEndboss creates the boss with its patrol state
func (w *World) CreateEndboss(s Spawn, state entity.EndbossState) donburi.Entity {
	id := w.create(entity.KindEndboss, s, TagEnemy, Endboss)
	Endboss.SetValue(w.world.Entry(id), state)
	w.space.Add(id, broad(s.Body), SpaceEnemy)
	return id
}

// CreateCollectible creates a coin or bottle
func (w *World) CreateCollectible(kind entity.Kind, s Spawn) donburi.Entity {
	id := w.create(kind, s, TagCollectible)
	w.space.Add(id, broad(s.Body), SpaceCollectible)
	return id
}

// CreateCloud creates a drifting cloud
func (w *World) CreateCloud(s Spawn) donburi.Entity {
	return w.create(entity.KindCloud, s, TagCloud)
}

// CreateBackground creates a static background layer
func (w *World) CreateBackground(s Spawn) donburi.Entity {
	return w.create(entity.KindBackground, s, TagBackground)
}

// CreateProjectile creates a thrown bottle
func (w *World) CreateProjectile(s Spawn, p entity.Projectile) donburi.Entity {
	id := w.create(entity.KindProjectile, s, TagProjectile, Projectile)
	Projectile.SetValue(w.world.Entry(id), p)
	w.space.Add(id, broad(s.Body), SpaceProjectile)
	return id
}

func (w *World) create(kind entity.Kind, s Spawn, extra ...donburi.IComponentType) donburi.Entity {
	components := []donburi.IComponentType{Kind, Body, Sprite}
	if s.Physics != nil {
		components = append(components, Physics)
	}
	if s.Health != nil {
		components = append(components, Health)
	}
	components = append(components, extra...)

	id := w.world.Create(components...)
	entry := w.world.Entry(id)
	Kind.SetValue(entry, kind)
	Body.SetValue(entry, s.Body)
	Sprite.SetValue(entry, s.Sprite)
	if s.Physics != nil {
		Physics.SetValue(entry, *s.Physics)
	}
	if s.Health != nil {
		Health.SetValue(entry, *s.Health)
	}
	return id
}

// SyncBounds pushes an entity's current box into the collision space
func (w *World) SyncBounds(entry *donburi.Entry) {
	w.space.Sync(entry.Entity(), broad(*Body.Get(entry)))
}

// broad is the box an entity occupies in the broad phase: its visual box grown
// by one unit, so touching boxes and the landed-on-top test still find each other.
func broad(b entity.Body) entity.Rect {
	r := b.Extent()
	return entity.Rect{Left: r.Left - 1, Top: r.Top - 1, Right: r.Right + 1, Bottom: r.Bottom + 1}
}

// Near returns live entities with the given space tag sharing a grid cell with id
func (w *World) Near(id donburi.Entity, tag string) []donburi.Entity {
	near := w.space.Near(id, tag)
	out := near[:0]
	for _, other := range near {
		if w.Exists(other) {
			out = append(out, other)
		}
	}
	return out
}

// Enemies returns a snapshot of the live enemies
func (w *World) Enemies() []donburi.Entity {
	return w.collect(TagEnemy)
}

// Collectibles returns a snapshot of the live coins and bottles
func (w *World) Collectibles() []donburi.Entity {
	return w.collect(TagCollectible)
}

// Projectiles returns a snapshot of the live projectiles
func (w *World) Projectiles() []donburi.Entity {
	return w.collect(TagProjectile)
}

// Clouds returns a snapshot of the clouds
func (w *World) Clouds() []donburi.Entity {
	return w.collect(TagCloud)
}

// Backgrounds returns a snapshot of the background layers in creation order
func (w *World) Backgrounds() []donburi.Entity {
	return w.collect(TagBackground)
}

// Movers returns a snapshot of every entity with a physics component
func (w *World) Movers() []donburi.Entity {
	return w.collect(Physics)
}

// CountKind returns the number of live entities of a kind
func (w *World) CountKind(kind entity.Kind) int {
	n := 0
	Kind.Each(w.world, func(entry *donburi.Entry) {
		if *Kind.Get(entry) == kind {
			n++
		}
	})
	return n
}

// Len returns the number of live entities
func (w *World) Len() int {
	return w.world.Len()
}

// Clear removes every entity, the character included.
func (w *World) Clear() {
	for _, id := range w.collect(Kind) {
		w.world.Remove(id)
	}
	w.space.Clear()
	w.character = 0
}

// collect snapshots the entities of a component so callers may remove
// entities while walking the result.
func (w *World) collect(c donburi.IComponentType) []donburi.Entity {
	var ids []donburi.Entity
	donburi.NewQuery(filter.Contains(c)).Each(w.world, func(entry *donburi.Entry) {
		ids = append(ids, entry.Entity())
	})
	return ids
}
