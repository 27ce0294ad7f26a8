package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreDelta(t *testing.T) {
	r := DefaultRules()
	tests := []struct {
		lines, level int
		want         int
	}{
		{1, 1, 10},
		{2, 1, 30},
		{3, 1, 90},
		{4, 1, 270},
		{1, 2, 15},
		{4, 3, 540},
		{3, 3, 180},
		{1, 0, 10},
		{0, 5, 0},
		{-1, 1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.ScoreDelta(tt.lines, tt.level), "lines=%d level=%d", tt.lines, tt.level)
	}
}

func TestLevelGain(t *testing.T) {
	r := DefaultRules()
	tests := []struct {
		prev, total int
		want        int
	}{
		{8, 11, 1},
		{0, 9, 0},
		{9, 10, 1},
		{10, 19, 0},
		{5, 35, 3},
		{11, 8, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.LevelGain(tt.prev, tt.total), "prev=%d total=%d", tt.prev, tt.total)
	}
}

func TestLevelGainDisabled(t *testing.T) {
	r := DefaultRules()
	r.LinesPerLevel = 0
	assert.Equal(t, 0, r.LevelGain(0, 100))
}
