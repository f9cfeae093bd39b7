package config

import (
	"math/rand"

	"github.com/younwookim/pollo/internal/domain/entity"
)

// EntitiesConfig is the root config for entities.yaml
type EntitiesConfig struct {
	Character  CharacterConfig  `yaml:"character"`
	Chicken    EnemyConfig      `yaml:"chicken"`
	Chick      EnemyConfig      `yaml:"chick"`
	Endboss    EndbossConfig    `yaml:"endboss"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Coin       ItemConfig       `yaml:"coin"`
	Bottle     ItemConfig       `yaml:"bottle"`
	Cloud      CloudConfig      `yaml:"cloud"`
	Background SizeConfig       `yaml:"background"`
	StatusBars StatusBarsConfig `yaml:"statusBars"`
	EndScreens EndScreensConfig `yaml:"endScreens"`
}

type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type OffsetConfig struct {
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// Range is a randomized spawn value in [Min, Min+Span).
type Range struct {
	Min  float64 `yaml:"min"`
	Span float64 `yaml:"span"`
}

// Sample draws a value from the range
func (r Range) Sample(rng *rand.Rand) float64 {
	if r.Span == 0 {
		return r.Min
	}
	return r.Min + rng.Float64()*r.Span
}

// Animations maps a sequence name to its ordered image paths.
type Animations map[string][]string

type CharacterConfig struct {
	X            float64      `yaml:"x"`
	Y            float64      `yaml:"y"`
	Size         SizeConfig   `yaml:"size"`
	Offset       OffsetConfig `yaml:"offset"`
	Speed        float64      `yaml:"speed"`
	GroundY      float64      `yaml:"groundY"`
	Acceleration float64      `yaml:"acceleration"`
	JumpSpeed    float64      `yaml:"jumpSpeed"`
	Energy       int          `yaml:"energy"`
	Image        string       `yaml:"image"`
	Animations   Animations   `yaml:"animations"`
}

type EnemyConfig struct {
	X            Range        `yaml:"x"`
	Y            float64      `yaml:"y"`
	Size         SizeConfig   `yaml:"size"`
	Offset       OffsetConfig `yaml:"offset"`
	Speed        Range        `yaml:"speed"`
	Energy       int          `yaml:"energy"`
	Gravity      bool         `yaml:"gravity"`
	GroundY      float64      `yaml:"groundY"`
	Acceleration float64      `yaml:"acceleration"`
	JumpSpeed    float64      `yaml:"jumpSpeed"`
	JumpChance   float64      `yaml:"jumpChance"`
	Image        string       `yaml:"image"`
	DeathImage   string       `yaml:"deathImage"`
	DeathSound   SoundID      `yaml:"deathSound"`
	Animations   Animations   `yaml:"animations"`
}

type EndbossConfig struct {
	X             float64      `yaml:"x"`
	Y             float64      `yaml:"y"`
	Size          SizeConfig   `yaml:"size"`
	Offset        OffsetConfig `yaml:"offset"`
	Speed         Range        `yaml:"speed"`
	Energy        int          `yaml:"energy"`
	PatrolMinX    float64      `yaml:"patrolMinX"`
	PatrolMaxX    float64      `yaml:"patrolMaxX"`
	AlertTriggerX float64      `yaml:"alertTriggerX"`
	Image         string       `yaml:"image"`
	DeathSound    SoundID      `yaml:"deathSound"`
	HurtSound     SoundID      `yaml:"hurtSound"`
	AlertSound    SoundID      `yaml:"alertSound"`
	Animations    Animations   `yaml:"animations"`
}

type ProjectileConfig struct {
	Size          SizeConfig   `yaml:"size"`
	Offset        OffsetConfig `yaml:"offset"`
	LaunchSpeed   float64      `yaml:"launchSpeed"`
	Acceleration  float64      `yaml:"acceleration"`
	Step          float64      `yaml:"step"`
	SpawnOffsetX  float64      `yaml:"spawnOffsetX"`
	MirroredSpawn float64      `yaml:"mirroredSpawnOffsetX"`
	SpawnOffsetY  float64      `yaml:"spawnOffsetY"`
	CullY         float64      `yaml:"cullY"`
	Image         string       `yaml:"image"`
	Animations    Animations   `yaml:"animations"`
}

type ItemConfig struct {
	X          Range        `yaml:"x"`
	Y          Range        `yaml:"y"`
	Size       SizeConfig   `yaml:"size"`
	Offset     OffsetConfig `yaml:"offset"`
	Image      string       `yaml:"image"`
	Animations Animations   `yaml:"animations"`
	Sound      SoundID      `yaml:"sound"`
}

type CloudConfig struct {
	X     Range      `yaml:"x"`
	Y     float64    `yaml:"y"`
	Size  SizeConfig `yaml:"size"`
	Speed Range      `yaml:"speed"`
	Image string     `yaml:"image"`
}

type StatusBarsConfig struct {
	Health   HealthBarConfig `yaml:"health"`
	Coin     CounterConfig   `yaml:"coin"`
	Bottle   CounterConfig   `yaml:"bottle"`
	Boss     BossBarConfig   `yaml:"boss"`
	FontSize float64         `yaml:"fontSize"`
}

type HealthBarConfig struct {
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Size   SizeConfig `yaml:"size"`
	Frames []string   `yaml:"frames"`
}

type CounterConfig struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	IconSize float64 `yaml:"iconSize"`
	TextX    float64 `yaml:"textX"`
	TextY    float64 `yaml:"textY"`
	Icon     string  `yaml:"icon"`
}

type BossBarConfig struct {
	X         float64    `yaml:"x"`
	Y         float64    `yaml:"y"`
	Size      SizeConfig `yaml:"size"`
	MaxEnergy int        `yaml:"maxEnergy"`
	Empty     string     `yaml:"empty"`
	Fill      string     `yaml:"fill"`
	Icon      string     `yaml:"icon"`
	IconSize  float64    `yaml:"iconSize"`
	IconInset float64    `yaml:"iconInset"`
}

type EndScreensConfig struct {
	Start string `yaml:"start"`
	Win  string `yaml:"win"`
	Lose string `yaml:"lose"`
}

// Box converts the offset into the domain hit box offset
func (o OffsetConfig) Box() entity.Offset {
	return entity.Offset{Top: o.Top, Left: o.Left, Right: o.Right, Bottom: o.Bottom}
}
