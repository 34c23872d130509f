package config

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// tuningFile is the subset of configuration a tuning file may override.
// Fields missing from the file keep their current values.
type tuningFile struct {
	Movement MovementConfig `yaml:"movement"`
	Dash     DashConfig     `yaml:"dash"`
	Combat   CombatConfig   `yaml:"combat"`
}

// LoadTuning overlays the YAML file at path onto the current Movement, Dash
// and Combat values. Nothing changes when the file fails to parse.
func LoadTuning(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}

	t := tuningFile{Movement: Movement, Dash: Dash, Combat: Combat}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := t.validate(); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}

	Movement, Dash, Combat = t.Movement, t.Dash, t.Combat
	return nil
}

var (
	ErrNonPositiveHealth = errors.New("health must be positive")
	ErrNegativeDuration  = errors.New("durations must not be negative")
)

func (t *tuningFile) validate() error {
	if t.Combat.PlayerHealth <= 0 || t.Combat.EnemyHealth <= 0 {
		return ErrNonPositiveHealth
	}
	if t.Dash.Duration < 0 || t.Dash.LandingDuration < 0 || t.Dash.Cooldown < 0 || t.Combat.AttackLifetime < 0 {
		return ErrNegativeDuration
	}
	return nil
}
