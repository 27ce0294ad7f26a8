package blockfall

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// ReplayResult compares a re-simulated run with what was stored.
type ReplayResult struct {
	Score    int
	Lines    int
	Level    int
	GameOver bool
	Match    bool
}

// Replay re-simulates a stored run headlessly with its own ruleset and seed.
func Replay(run *storage.Run, logger *log.Logger) (ReplayResult, error) {
	if run == nil {
		return ReplayResult{}, errors.New("blockfall: replay: nil run")
	}
	cfg := config.DefaultConfig()
	if run.Ruleset != "" {
		parsed, err := config.Parse([]byte(run.Ruleset))
		if err != nil {
			return ReplayResult{}, fmt.Errorf("blockfall: replay %s: %w", run.ID, err)
		}
		cfg = parsed
	}
	if err := cfg.Validate(); err != nil {
		return ReplayResult{}, fmt.Errorf("blockfall: replay %s: %w", run.ID, err)
	}

	g := New(cfg, logger)
	g.Reset(core.RuntimeConfig{TickRate: run.TickRate, Seed: run.Seed})

	next := 0
	frame := core.NewInputFrame()
	for step := 0; step < run.Steps; step++ {
		frame.Clear()
		for next < len(run.Frames) && run.Frames[next].Step == step {
			for _, name := range run.Frames[next].Actions {
				a, ok := core.ParseAction(name)
				if !ok {
					return ReplayResult{}, fmt.Errorf("blockfall: replay %s: unknown action %q at step %d", run.ID, name, step)
				}
				frame.Set(a)
			}
			next++
		}
		g.Step(frame)
	}

	st := g.State()
	res := ReplayResult{
		Score:    st.Score,
		Lines:    st.Lines,
		Level:    st.Level,
		GameOver: st.GameOver,
	}
	res.Match = res.GameOver && res.Score == run.Score && res.Lines == run.Lines && res.Level == run.Level
	return res, nil
}
