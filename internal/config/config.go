// Package config loads the Blockfall ruleset from YAML files and environment
// variables and maps it onto the engine's configuration.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"gopkg.in/yaml.v3"
)

// Config is the complete ruleset plus front-end tuning.
type Config struct {
	Field      FieldConfig   `yaml:"field"`
	Timing     TimingConfig  `yaml:"timing"`
	Scoring    ScoringConfig `yaml:"scoring"`
	StartLevel int           `yaml:"start_level" env:"BLOCKFALL_START_LEVEL"`
	Input      InputConfig   `yaml:"input"`
}

// FieldConfig is the playfield size.
type FieldConfig struct {
	Width  int `yaml:"width" env:"BLOCKFALL_FIELD_WIDTH"`
	Height int `yaml:"height" env:"BLOCKFALL_FIELD_HEIGHT"`
}

// TimingConfig holds drop and repeat intervals in milliseconds.
type TimingConfig struct {
	BaseDropMS      int     `yaml:"base_drop_ms" env:"BLOCKFALL_TIMING_BASE_DROP_MS"`
	LevelMultiplier float64 `yaml:"level_multiplier" env:"BLOCKFALL_TIMING_LEVEL_MULTIPLIER"`
	SoftDropMS      int     `yaml:"soft_drop_ms" env:"BLOCKFALL_TIMING_SOFT_DROP_MS"`
	MoveRepeatMS    int     `yaml:"move_repeat_ms" env:"BLOCKFALL_TIMING_MOVE_REPEAT_MS"`
}

// ScoringConfig holds the scoring and leveling constants.
type ScoringConfig struct {
	LineScore     int     `yaml:"line_score" env:"BLOCKFALL_SCORING_LINE_SCORE"`
	MultiLineBase float64 `yaml:"multi_line_base" env:"BLOCKFALL_SCORING_MULTI_LINE_BASE"`
	LevelBonus    float64 `yaml:"level_bonus" env:"BLOCKFALL_SCORING_LEVEL_BONUS"`
	LinesPerLevel int     `yaml:"lines_per_level" env:"BLOCKFALL_SCORING_LINES_PER_LEVEL"`
}

// InputConfig tunes the terminal front end.
type InputConfig struct {
	// HoldReleaseMS is how long after the last key repeat a held key counts as released.
	HoldReleaseMS int `yaml:"hold_release_ms" env:"BLOCKFALL_INPUT_HOLD_RELEASE_MS"`
}

// Rules returns the engine scoring rules.
func (c Config) Rules() engine.Rules {
	return engine.Rules{
		LineScore:     c.Scoring.LineScore,
		MultiLineBase: c.Scoring.MultiLineBase,
		LevelBonus:    c.Scoring.LevelBonus,
		LinesPerLevel: c.Scoring.LinesPerLevel,
	}
}

// EngineTiming returns the engine timing.
func (c Config) EngineTiming() engine.Timing {
	return engine.Timing{
		BaseDrop:        ms(c.Timing.BaseDropMS),
		LevelMultiplier: c.Timing.LevelMultiplier,
		SoftDrop:        ms(c.Timing.SoftDropMS),
		MoveRepeat:      ms(c.Timing.MoveRepeatMS),
	}
}

// Session returns an engine session configuration for the given seed.
func (c Config) Session(seed int64) engine.Config {
	return engine.Config{
		Width:      c.Field.Width,
		Height:     c.Field.Height,
		StartLevel: c.StartLevel,
		Rules:      c.Rules(),
		Timing:     c.EngineTiming(),
		Seed:       seed,
	}
}

// HoldRelease returns the held-key release timeout.
func (c Config) HoldRelease() time.Duration {
	return ms(c.Input.HoldReleaseMS)
}

// Validate reports the first setting the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Field.Width < 4:
		return fmt.Errorf("config: field.width must be at least 4, got %d", c.Field.Width)
	case c.Field.Height < 4:
		return fmt.Errorf("config: field.height must be at least 4, got %d", c.Field.Height)
	case c.StartLevel < 1:
		return fmt.Errorf("config: start_level must be at least 1, got %d", c.StartLevel)
	case c.Timing.BaseDropMS <= 0:
		return fmt.Errorf("config: timing.base_drop_ms must be positive, got %d", c.Timing.BaseDropMS)
	case c.Timing.SoftDropMS <= 0:
		return fmt.Errorf("config: timing.soft_drop_ms must be positive, got %d", c.Timing.SoftDropMS)
	case c.Timing.MoveRepeatMS <= 0:
		return fmt.Errorf("config: timing.move_repeat_ms must be positive, got %d", c.Timing.MoveRepeatMS)
	case c.Timing.LevelMultiplier < 0 || c.Timing.LevelMultiplier >= 1:
		return fmt.Errorf("config: timing.level_multiplier must be in [0, 1), got %g", c.Timing.LevelMultiplier)
	case c.Scoring.LineScore <= 0:
		return fmt.Errorf("config: scoring.line_score must be positive, got %d", c.Scoring.LineScore)
	case c.Scoring.MultiLineBase < 1:
		return fmt.Errorf("config: scoring.multi_line_base must be at least 1, got %g", c.Scoring.MultiLineBase)
	case c.Scoring.LevelBonus < 0:
		return fmt.Errorf("config: scoring.level_bonus must not be negative, got %g", c.Scoring.LevelBonus)
	case c.Scoring.LinesPerLevel <= 0:
		return fmt.Errorf("config: scoring.lines_per_level must be positive, got %d", c.Scoring.LinesPerLevel)
	case c.Input.HoldReleaseMS < 0:
		return fmt.Errorf("config: input.hold_release_ms must not be negative, got %d", c.Input.HoldReleaseMS)
	}
	return nil
}

// Marshal renders the effective configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Parse decodes a YAML document on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, nil
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
