package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded defaults, used when no file can be read.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			BaseDropMS:      1000,
			LevelMultiplier: 0.1,
			SoftDropMS:      100,
			MoveRepeatMS:    100,
		},
		Scoring: ScoringConfig{
			LineScore:     10,
			MultiLineBase: 3,
			LevelBonus:    0.5,
			LinesPerLevel: 10,
		},
		StartLevel: 1,
		Input: InputConfig{
			HoldReleaseMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
