package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stacktris/pkg/core/piece"
)

// engineLogHooks writes engine events to a logger.
type engineLogHooks struct {
	logger *log.Logger
}

func (h engineLogHooks) OnSpawn(color uint8, x, y int) {
	h.logger.Debug("spawn", "piece", piece.Kind(color), "x", x, "y", y)
}

func (h engineLogHooks) OnLock(color uint8, linesCleared, points int) {
	if linesCleared == 0 {
		h.logger.Debug("lock", "piece", piece.Kind(color))
		return
	}
	h.logger.Info("lines cleared", "piece", piece.Kind(color), "lines", linesCleared, "points", points)
}

func (h engineLogHooks) OnGameOver(score, clearedLines int) {
	h.logger.Info("game over", "score", score, "lines", clearedLines)
}

// sessionLogHooks writes session boundaries to a logger.
type sessionLogHooks struct {
	logger *log.Logger
}

func (h sessionLogHooks) OnSessionStart(_ context.Context, id string, width, height int) {
	h.logger.Debug("session started", "session", id, "width", width, "height", height)
}

func (h sessionLogHooks) OnSessionEnd(_ context.Context, id string, score, clearedLines int, gameOver bool, duration time.Duration) {
	h.logger.Debug("session ended",
		"session", id,
		"score", score,
		"lines", clearedLines,
		"game_over", gameOver,
		"duration", duration.Round(time.Millisecond),
	)
}
