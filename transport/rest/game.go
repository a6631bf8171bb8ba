package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/rung-backend/internal/apperror"
	"github.com/rocketscienceinc/rung-backend/internal/entity"
)

type gameSource interface {
	Game(ctx context.Context) (*entity.Game, error)
}

type GameHandler interface {
	StateHandler(w http.ResponseWriter, r *http.Request)
}

type gameHandler struct {
	logger     *slog.Logger
	gameSource gameSource
}

func NewGameHandler(logger *slog.Logger, gameSource gameSource) GameHandler {
	return &gameHandler{
		logger:     logger.With("component", "rest"),
		gameSource: gameSource,
	}
}

// StateHandler - returns a snapshot of the live game, 404 when none is running.
func (that *gameHandler) StateHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "StateHandler")

	game, err := that.gameSource.Game(r.Context())
	if errors.Is(err, apperror.ErrGameIsNotStarted) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error("failed to get game", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(game); err != nil {
		log.Error("failed to encode game", "error", err)
	}
}
