package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/rung-backend/internal/apperror"
	"github.com/rocketscienceinc/rung-backend/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetCurrent(ctx context.Context) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameController interface {
	StartGame(id string, playerCount int, variant entity.RuleVariant) (*entity.Game, error)
	ChooseTrump(game *entity.Game, suit entity.Suit) error
	PlayCard(game *entity.Game, seat, cardIndex int) (*entity.TrickResult, error)
	AdvanceToNextTrick(game *entity.Game) error
	LegalPlays(game *entity.Game, seat int) []int
}

// Listener receives events after a command succeeds. It must not call back into the GameManager.
type Listener func(event entity.Event)

// GameManager owns the single live game session. Commands run one at a time; each works on a copy
// of the session that replaces the live one only after it has been stored, so a rejected command
// leaves nothing behind.
type GameManager struct {
	logger     *slog.Logger
	gameRepo   gameRepo
	controller gameController

	mu   sync.Mutex
	game *entity.Game

	listenersMu sync.RWMutex
	listeners   map[int]Listener
	nextID      int
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, controller gameController) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:   gameRepo,
		controller: controller,

		listeners: make(map[int]Listener),
	}
}

// Subscribe - registers a listener and returns the function that removes it.
func (that *GameManager) Subscribe(listener Listener) func() {
	that.listenersMu.Lock()
	defer that.listenersMu.Unlock()

	id := that.nextID
	that.nextID++
	that.listeners[id] = listener

	return func() {
		that.listenersMu.Lock()
		defer that.listenersMu.Unlock()
		delete(that.listeners, id)
	}
}

// Resume - makes the stored session live again, e.g. after a restart.
func (that *GameManager) Resume(ctx context.Context) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.gameRepo.GetCurrent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current game: %w", err)
	}

	that.game = game
	that.logger.Info("game resumed", "gameID", game.ID, "status", game.Status)

	return game.Clone(), nil
}

// StartGame - replaces the live session with a freshly dealt one.
func (that *GameManager) StartGame(ctx context.Context, playerCount int, variant entity.RuleVariant) (*entity.Game, error) {
	log := that.logger.With("method", "StartGame")

	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.controller.StartGame(uuid.NewString(), playerCount, variant)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	if previous := that.game; previous != nil {
		that.deleteGame(ctx, previous)
	}

	that.game = game
	log.Info("game started", "gameID", game.ID, "players", playerCount, "variant", variant)

	snapshot := game.Clone()
	that.publish(entity.Event{Type: entity.EventState, Game: snapshot})

	return snapshot, nil
}

func (that *GameManager) ChooseTrump(ctx context.Context, suit entity.Suit) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.apply(ctx, func(game *entity.Game) error {
		return that.controller.ChooseTrump(game, suit)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to choose trump: %w", err)
	}

	that.logger.Info("trump chosen", "gameID", game.ID, "trump", suit.Name())
	that.publish(entity.Event{Type: entity.EventState, Game: game})

	return game, nil
}

// PlayCard - returns the trick result too when the play completed a trick.
func (that *GameManager) PlayCard(ctx context.Context, seat, cardIndex int) (*entity.Game, *entity.TrickResult, error) {
	log := that.logger.With("method", "PlayCard")

	that.mu.Lock()
	defer that.mu.Unlock()

	var result *entity.TrickResult
	game, err := that.apply(ctx, func(game *entity.Game) error {
		var playErr error
		result, playErr = that.controller.PlayCard(game, seat, cardIndex)
		return playErr
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to play card: %w", err)
	}

	if result == nil {
		that.publish(entity.Event{Type: entity.EventState, Game: game})
		return game, nil, nil
	}

	log.Info("trick complete", "gameID", game.ID, "trick", result.Number, "winner", result.Winner, "delta", result.ScoreDelta)
	that.publish(entity.Event{Type: entity.EventTrick, Game: game, Trick: result})

	if game.IsFinished() {
		that.deleteGame(ctx, game)
		log.Info("game over", "gameID", game.ID, "scores", game.Score.TeamScores)
		that.publish(entity.Event{Type: entity.EventOver, Game: game, Trick: result})
	}

	return game, result, nil
}

// AdvanceToNextTrick - called by the presentation layer once it is done showing the completed trick.
func (that *GameManager) AdvanceToNextTrick(ctx context.Context) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.apply(ctx, that.controller.AdvanceToNextTrick)
	if err != nil {
		return nil, fmt.Errorf("failed to advance to next trick: %w", err)
	}

	that.publish(entity.Event{Type: entity.EventState, Game: game})

	return game, nil
}

// Game - snapshot of the live session.
func (that *GameManager) Game(_ context.Context) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return nil, apperror.ErrGameIsNotStarted
	}

	return that.game.Clone(), nil
}

func (that *GameManager) LegalPlays(_ context.Context, seat int) ([]int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return nil, apperror.ErrGameIsNotStarted
	}

	return that.controller.LegalPlays(that.game, seat), nil
}

// apply runs command on a copy of the live game and swaps it in once it is stored.
func (that *GameManager) apply(ctx context.Context, command func(game *entity.Game) error) (*entity.Game, error) {
	if that.game == nil {
		return nil, apperror.ErrGameIsNotStarted
	}

	game := that.game.Clone()
	if err := command(game); err != nil {
		return nil, err
	}

	if !game.IsFinished() {
		if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to update game: %w", err)
		}
	}

	that.game = game

	return game.Clone(), nil
}

func (that *GameManager) deleteGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "deleteGame", "gameID", game.ID)

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil && !errors.Is(err, apperror.ErrNotFound) {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Debug("game deleted")
}

func (that *GameManager) publish(event entity.Event) {
	that.listenersMu.RLock()
	defer that.listenersMu.RUnlock()

	for _, listener := range that.listeners {
		listener(event)
	}
}
