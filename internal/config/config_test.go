package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestDefaultsMapToEngineDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, engine.DefaultRules(), cfg.Rules())
	assert.Equal(t, engine.DefaultTiming(), cfg.EngineTiming())
	assert.Equal(t, 150*time.Millisecond, cfg.HoldRelease())

	sc := cfg.Session(42)
	assert.Equal(t, int64(42), sc.Seed)
	assert.Equal(t, engine.DefaultWidth, sc.Width)
	assert.Equal(t, engine.DefaultHeight, sc.Height)
	assert.Equal(t, 1, sc.StartLevel)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadSearchOrder(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "configs", fileName), "start_level: 4\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.StartLevel)
	assert.Equal(t, 10, cfg.Field.Width, "unset fields keep defaults")

	home := os.Getenv("HOME")
	writeFile(t, filepath.Join(home, ".blockfall", "configs", fileName), "start_level: 7\n")

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.StartLevel, "user config wins over ./configs")
}

func TestLoadCustomPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "field:\n  width: 12\n  height: 24\nscoring:\n  lines_per_level: 5\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Field.Width)
	assert.Equal(t, 24, cfg.Field.Height)
	assert.Equal(t, 5, cfg.Scoring.LinesPerLevel)
	assert.Equal(t, 10, cfg.Scoring.LineScore)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "field: [1, 2\n")
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "timing:\n  level_multiplier: 1.5\n")
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "level_multiplier")
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("BLOCKFALL_START_LEVEL", "3")
	t.Setenv("BLOCKFALL_TIMING_BASE_DROP_MS", "800")
	t.Setenv("BLOCKFALL_SCORING_LEVEL_BONUS", "0.25")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.StartLevel)
	assert.Equal(t, 800, cfg.Timing.BaseDropMS)
	assert.InDelta(t, 0.25, cfg.Scoring.LevelBonus, 1e-9)
	assert.Equal(t, 100, cfg.Timing.SoftDropMS, "unset variables leave values alone")
}

func TestEnvOverrideRejectsGarbage(t *testing.T) {
	isolate(t)
	t.Setenv("BLOCKFALL_FIELD_WIDTH", "wide")

	_, err := Load("")
	assert.ErrorContains(t, err, "parse env")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"narrow field", func(c *Config) { c.Field.Width = 3 }},
		{"short field", func(c *Config) { c.Field.Height = 0 }},
		{"start level", func(c *Config) { c.StartLevel = 0 }},
		{"base drop", func(c *Config) { c.Timing.BaseDropMS = 0 }},
		{"soft drop", func(c *Config) { c.Timing.SoftDropMS = -1 }},
		{"move repeat", func(c *Config) { c.Timing.MoveRepeatMS = 0 }},
		{"multiplier", func(c *Config) { c.Timing.LevelMultiplier = 1 }},
		{"negative multiplier", func(c *Config) { c.Timing.LevelMultiplier = -0.1 }},
		{"line score", func(c *Config) { c.Scoring.LineScore = 0 }},
		{"multi line base", func(c *Config) { c.Scoring.MultiLineBase = 0.5 }},
		{"level bonus", func(c *Config) { c.Scoring.LevelBonus = -1 }},
		{"lines per level", func(c *Config) { c.Scoring.LinesPerLevel = 0 }},
		{"hold release", func(c *Config) { c.Input.HoldReleaseMS = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartLevel = 9
	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "start_level: 9")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name  string
		level int
	}{
		{"easy", 1},
		{"normal", 5},
		{"hard", 10},
	}
	for _, tt := range tests {
		p, err := ParsePreset(tt.name)
		require.NoError(t, err)
		cfg := DefaultConfig()
		ApplyPreset(&cfg, p)
		assert.Equal(t, tt.level, cfg.StartLevel, tt.name)
	}

	_, err := ParsePreset("fixed")
	assert.Error(t, err)
}
