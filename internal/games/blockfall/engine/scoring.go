package engine

import "math"

// Rules holds the scoring and leveling constants.
type Rules struct {
	LineScore     int     // points for a single line at level 1
	MultiLineBase float64 // growth factor per extra simultaneous line
	LevelBonus    float64 // extra fraction of score per level above 1
	LinesPerLevel int     // lines needed per level-up
}

// DefaultRules returns the standard rules.
func DefaultRules() Rules {
	return Rules{
		LineScore:     10,
		MultiLineBase: 3,
		LevelBonus:    0.5,
		LinesPerLevel: 10,
	}
}

// ScoreDelta returns the points awarded for clearing lines at once at a level:
//
//	round(LineScore × MultiLineBase^(lines−1) × (1 + (level−1) × LevelBonus))
func (r Rules) ScoreDelta(lines, level int) int {
	if lines <= 0 {
		return 0
	}
	if level < 1 {
		level = 1
	}
	base := float64(r.LineScore) * math.Pow(r.MultiLineBase, float64(lines-1))
	return int(math.Round(base * (1 + float64(level-1)*r.LevelBonus)))
}

// LevelGain returns how many level boundaries were crossed going from
// prevTotal to total cleared lines. It is never negative.
func (r Rules) LevelGain(prevTotal, total int) int {
	if r.LinesPerLevel <= 0 {
		return 0
	}
	gain := total/r.LinesPerLevel - prevTotal/r.LinesPerLevel
	return max(0, gain)
}
