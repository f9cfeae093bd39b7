package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/younwookim/pollo/internal/domain/entity"
)

// Component types. Every drawn entity carries Kind, Body and Sprite;
// the rest depend on the variant.
var (
	Kind       = donburi.NewComponentType[entity.Kind]()
	Body       = donburi.NewComponentType[entity.Body]()
	Sprite     = donburi.NewComponentType[entity.Animation]()
	Physics    = donburi.NewComponentType[entity.Physics]()
	Health     = donburi.NewComponentType[entity.Health]()
	Character  = donburi.NewComponentType[entity.CharacterState]()
	Endboss    = donburi.NewComponentType[entity.EndbossState]()
	Projectile = donburi.NewComponentType[entity.Projectile]()
)

// Tags group entities by their role in the level.
var (
	TagCharacter   = donburi.NewTag().SetName("Character")
	TagEnemy       = donburi.NewTag().SetName("Enemy")
	TagCollectible = donburi.NewTag().SetName("Collectible")
	TagCloud       = donburi.NewTag().SetName("Cloud")
	TagBackground  = donburi.NewTag().SetName("Background")
	TagProjectile  = donburi.NewTag().SetName("Projectile")
)

// Broad-phase tags in the collision space.
const (
	SpaceCharacter   = "character"
	SpaceEnemy       = "enemy"
	SpaceCollectible = "collectible"
	SpaceProjectile  = "projectile"
)
