package config

// SoundID names a registered sound.
type SoundID string

const (
	SoundJump            SoundID = "jump"
	SoundWalking         SoundID = "walking"
	SoundHurt            SoundID = "hurt"
	SoundSnoring         SoundID = "snoring"
	SoundCharacterDie    SoundID = "die"
	SoundChickenDie      SoundID = "chickenDie"
	SoundChickDie        SoundID = "chickDie"
	SoundEndbossDie      SoundID = "endbossDie"
	SoundEndbossHurt     SoundID = "endbossHurt"
	SoundEndbossAlert    SoundID = "endbossAlert"
	SoundThrow           SoundID = "throw"
	SoundBreak           SoundID = "break"
	SoundCollectCoin     SoundID = "collectCoin"
	SoundCollectBottle   SoundID = "collectBottle"
	SoundGameOver        SoundID = "gameOver"
	SoundWinner          SoundID = "winner"
	SoundIntroMusic      SoundID = "introMusic"
	SoundBackgroundMusic SoundID = "backgroundMusic"
)

// AudioConfig is the root config for audio.yaml
type AudioConfig struct {
	SampleRate int                     `yaml:"sampleRate"`
	Sounds     map[SoundID]SoundConfig `yaml:"sounds"`
}

type SoundConfig struct {
	Path   string  `yaml:"path"`
	Volume float64 `yaml:"volume"`
	Loop   bool    `yaml:"loop"`
}

// Volume returns the configured volume of a sound, 0 if unknown
func (a *AudioConfig) Volume(id SoundID) float64 {
	return a.Sounds[id].Volume
}
