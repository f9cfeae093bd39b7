package replay

import (
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/younwookim/pollo/internal/application/system"
	"gopkg.in/yaml.v3"
)

// Step changes the held intents at a point of simulated time.
// Every intent not listed in Hold is released.
type Step struct {
	At   time.Duration `yaml:"at"`
	Hold []string      `yaml:"hold"`
}

// Plan contains all data needed to drive a playthrough without a player
type Plan struct {
	Seed     int64         `yaml:"seed"`
	Level    string        `yaml:"level"`
	Duration time.Duration `yaml:"duration"`
	Steps    []Step        `yaml:"steps"`
}

// LoadPlan loads a plan from a file
func LoadPlan(filename string) (*Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan %s: %w", filename, err)
	}
	return decodePlan(data, filename)
}

// LoadPlanFS loads a plan from fsys
func LoadPlanFS(fsys fs.FS, name string) (*Plan, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan %s: %w", name, err)
	}
	return decodePlan(data, name)
}

func decodePlan(data []byte, name string) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode plan %s: %w", name, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan %s: %w", name, err)
	}
	return &p, nil
}

// Validate checks that steps are in time order and name known intents
func (p *Plan) Validate() error {
	var last time.Duration
	for i, s := range p.Steps {
		if s.At < last {
			return fmt.Errorf("step %d at %s comes before %s", i, s.At, last)
		}
		last = s.At
		for _, name := range s.Hold {
			if _, err := system.ParseIntent(name); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		}
	}
	return nil
}
