package config

import "time"

// PhysicsConfig is the root config for physics.yaml
type PhysicsConfig struct {
	Display DisplayConfig `yaml:"display"`
	Timing  TimingConfig  `yaml:"timing"`
	Combat  CombatConfig  `yaml:"combat"`
	Camera  CameraConfig  `yaml:"camera"`
}

type DisplayConfig struct {
	Title        string  `yaml:"title"`
	ScreenWidth  int     `yaml:"screenWidth"`
	ScreenHeight int     `yaml:"screenHeight"`
	Scale        float64 `yaml:"scale"`
	TPS          int     `yaml:"tps"`
}

// TimingConfig holds every cadence and delay of the simulation.
type TimingConfig struct {
	TickHz    int `yaml:"tickHz"`
	PhysicsHz int `yaml:"physicsHz"`

	CharacterAnimation time.Duration `yaml:"characterAnimation"`
	EnemyAnimation     time.Duration `yaml:"enemyAnimation"`
	EndbossAnimation   time.Duration `yaml:"endbossAnimation"`
	CoinAnimation      time.Duration `yaml:"coinAnimation"`
	ChickJump          time.Duration `yaml:"chickJump"`

	ProjectileStep     time.Duration `yaml:"projectileStep"`
	ProjectileRotation time.Duration `yaml:"projectileRotation"`
	SplashFrame        time.Duration `yaml:"splashFrame"`
	SplashDuration     time.Duration `yaml:"splashDuration"`

	Idle              time.Duration `yaml:"idle"`
	LongIdle          time.Duration `yaml:"longIdle"`
	ThrowCooldown     time.Duration `yaml:"throwCooldown"`
	HurtSoundCooldown time.Duration `yaml:"hurtSoundCooldown"`
	DefeatRemoval     time.Duration `yaml:"defeatRemoval"`
	ProjectileDefeat  time.Duration `yaml:"projectileDefeat"`
	EndDelay          time.Duration `yaml:"endDelay"`
}

// TickPeriod returns the period of the world tick
func (t TimingConfig) TickPeriod() time.Duration {
	return hz(t.TickHz)
}

// PhysicsPeriod returns the period of the gravity step
func (t TimingConfig) PhysicsPeriod() time.Duration {
	return hz(t.PhysicsHz)
}

func hz(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

type CombatConfig struct {
	HitDamage   int           `yaml:"hitDamage"`
	HitDebounce time.Duration `yaml:"hitDebounce"`
	HurtWindow  time.Duration `yaml:"hurtWindow"`
	StompDepth  float64       `yaml:"stompDepth"`
}

type CameraConfig struct {
	OffsetX float64 `yaml:"offsetX"`
}
