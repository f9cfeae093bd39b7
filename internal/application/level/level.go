// Package level builds the entities of a level from its content config.
package level

import (
	"fmt"
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/ecs"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// Level is one playthrough's content: the spawned entities live in the
// registry, the Level keeps what the world needs to find again.
type Level struct {
	ID        string
	EndX      float64
	Character donburi.Entity
	Endboss   donburi.Entity
}

// Build spawns the character and every entity of the level into w.
// Random spawn positions and speeds are drawn from rng.
func Build(w *ecs.World, cfg *config.EntitiesConfig, content *config.LevelConfig, rng *rand.Rand) (*Level, error) {
	lvl := &Level{
		ID:   content.ID,
		EndX: content.EndX,
	}
	lvl.Character = spawnCharacter(w, cfg.Character)

	for _, name := range content.Enemies {
		kind, ok := entity.ParseKind(name)
		if !ok || !kind.IsEnemy() {
			return nil, fmt.Errorf("level %s: unknown enemy %q", content.ID, name)
		}
		switch kind {
		case entity.KindChicken:
			spawnEnemy(w, kind, cfg.Chicken, rng)
		case entity.KindChick:
			spawnEnemy(w, kind, cfg.Chick, rng)
		case entity.KindEndboss:
			lvl.Endboss = spawnEndboss(w, cfg.Endboss, rng)
		}
	}

	for i := 0; i < content.Clouds; i++ {
		spawnCloud(w, cfg.Cloud, rng)
	}
	for _, column := range content.Background.Columns {
		for _, image := range content.Background.LayerSet(column) {
			w.CreateBackground(ecs.Spawn{
				Body: entity.Body{
					X:      float64(column) * content.Background.Stride,
					Width:  cfg.Background.Width,
					Height: cfg.Background.Height,
				},
				Sprite: entity.NewAnimation(image, nil),
			})
		}
	}
	for i := 0; i < content.Coins; i++ {
		spawnItem(w, entity.KindCoin, cfg.Coin, rng)
	}
	for i := 0; i < content.Bottles; i++ {
		spawnItem(w, entity.KindBottle, cfg.Bottle, rng)
	}
	return lvl, nil
}

func spawnCharacter(w *ecs.World, c config.CharacterConfig) donburi.Entity {
	health := entity.NewHealth(c.Energy)
	return w.CreateCharacter(ecs.Spawn{
		Body: entity.Body{
			X:      c.X,
			Y:      c.Y,
			Width:  c.Size.Width,
			Height: c.Size.Height,
			Offset: c.Offset.Box(),
		},
		Sprite: entity.NewAnimation(c.Image, c.Animations),
		Physics: &entity.Physics{
			Speed:        c.Speed,
			Acceleration: c.Acceleration,
			GroundY:      c.GroundY,
			Gravity:      true,
		},
		Health: &health,
	})
}

func spawnEnemy(w *ecs.World, kind entity.Kind, c config.EnemyConfig, rng *rand.Rand) donburi.Entity {
	health := entity.NewHealth(c.Energy)
	return w.CreateEnemy(kind, ecs.Spawn{
		Body: entity.Body{
			X:      c.X.Sample(rng),
			Y:      c.Y,
			Width:  c.Size.Width,
			Height: c.Size.Height,
			Offset: c.Offset.Box(),
		},
		Sprite: entity.NewAnimation(c.Image, c.Animations),
		Physics: &entity.Physics{
			Speed:        c.Speed.Sample(rng),
			Acceleration: c.Acceleration,
			GroundY:      c.GroundY,
			Gravity:      c.Gravity,
		},
		Health: &health,
	})
}

func spawnEndboss(w *ecs.World, c config.EndbossConfig, rng *rand.Rand) donburi.Entity {
	health := entity.NewHealth(c.Energy)
	return w.CreateEndboss(ecs.Spawn{
		Body: entity.Body{
			X:      c.X,
			Y:      c.Y,
			Width:  c.Size.Width,
			Height: c.Size.Height,
			Offset: c.Offset.Box(),
		},
		Sprite:  entity.NewAnimation(c.Image, c.Animations),
		Physics: &entity.Physics{Speed: c.Speed.Sample(rng)},
		Health:  &health,
	}, entity.NewEndbossState())
}

func spawnCloud(w *ecs.World, c config.CloudConfig, rng *rand.Rand) donburi.Entity {
	return w.CreateCloud(ecs.Spawn{
		Body: entity.Body{
			X:      c.X.Sample(rng),
			Y:      c.Y,
			Width:  c.Size.Width,
			Height: c.Size.Height,
		},
		Sprite:  entity.NewAnimation(c.Image, nil),
		Physics: &entity.Physics{Speed: c.Speed.Sample(rng)},
	})
}

func spawnItem(w *ecs.World, kind entity.Kind, c config.ItemConfig, rng *rand.Rand) donburi.Entity {
	return w.CreateCollectible(kind, ecs.Spawn{
		Body: entity.Body{
			X:      c.X.Sample(rng),
			Y:      c.Y.Sample(rng),
			Width:  c.Size.Width,
			Height: c.Size.Height,
			Offset: c.Offset.Box(),
		},
		Sprite: entity.NewAnimation(c.Image, c.Animations),
	})
}
