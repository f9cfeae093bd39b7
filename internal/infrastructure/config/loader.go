package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults
var defaultsFS embed.FS

const (
	physicsFile  = "physics.yaml"
	entitiesFile = "entities.yaml"
	audioFile    = "audio.yaml"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
	Audio    *AudioConfig
}

// Defaults returns the embedded default configuration tree
func Defaults() fs.FS {
	sub, err := fs.Sub(defaultsFS, "defaults")
	if err != nil {
		panic(err)
	}
	return sub
}

// Loader loads game configuration from YAML files using fs.FS interface.
// Every file is decoded on top of its embedded default, so an override
// directory only needs the keys it changes.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// NewDefaultLoader creates a loader that only reads the embedded defaults
func NewDefaultLoader() *Loader {
	return &Loader{}
}

// LoadPhysics loads physics.yaml
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	var cfg PhysicsConfig
	if err := l.load(physicsFile, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEntities loads entities.yaml
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	var cfg EntitiesConfig
	if err := l.load(entitiesFile, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAudio loads audio.yaml
func (l *Loader) LoadAudio() (*AudioConfig, error) {
	var cfg AudioConfig
	if err := l.load(audioFile, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLevel loads a level YAML file
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	path := "levels/" + name + ".yaml"

	var cfg LevelConfig
	found, err := decodeFile(Defaults(), path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}
	if l.fsys != nil {
		custom, err := decodeFile(l.fsys, path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
		}
		found = found || custom
	}
	if !found {
		return nil, fmt.Errorf("failed to read level %s: %w", name, fs.ErrNotExist)
	}
	if cfg.ID == "" {
		cfg.ID = name
	}

	return &cfg, nil
}

// LoadAll loads all base configurations (physics, entities, audio)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	audio, err := l.LoadAudio()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Entities: entities,
		Audio:    audio,
	}, nil
}

func (l *Loader) load(name string, out any) error {
	if _, err := decodeFile(Defaults(), name, out); err != nil {
		return fmt.Errorf("failed to parse default %s: %w", name, err)
	}
	if l.fsys == nil {
		return nil
	}
	if _, err := decodeFile(l.fsys, name, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// decodeFile decodes name from fsys into out. A missing file is not an error.
func decodeFile(fsys fs.FS, name string, out any) (bool, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

// MustLoadDefaults returns the embedded configuration.
// It panics if the embedded files do not decode.
func MustLoadDefaults() *GameConfig {
	cfg, err := NewDefaultLoader().LoadAll()
	if err != nil {
		panic(err)
	}
	return cfg
}
