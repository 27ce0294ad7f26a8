package blockfall

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// eventLogger forwards engine events to the structured logger.
// Piece rests are too frequent to be worth a line.
type eventLogger struct {
	engine.NopListener
	logger *log.Logger
}

func (l eventLogger) OnPieceSpawned(shape, next engine.Kind) {
	l.logger.Debug("piece spawned", "shape", shape, "next", next)
}

func (l eventLogger) OnLinesCleared(count int) {
	l.logger.Debug("lines cleared", "count", count)
}

func (l eventLogger) OnScoreChanged(total int) {
	l.logger.Debug("score changed", "score", total)
}

func (l eventLogger) OnLevelChanged(level int) {
	l.logger.Debug("level changed", "level", level)
}

func (l eventLogger) OnGameOver(finalScore int) {
	l.logger.Info("game over", "score", finalScore)
}

func (l eventLogger) OnPausedChanged(paused bool) {
	l.logger.Debug("pause toggled", "paused", paused)
}
