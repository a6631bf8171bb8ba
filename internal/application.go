package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/rung-backend/internal/apperror"
	"github.com/rocketscienceinc/rung-backend/internal/config"
	"github.com/rocketscienceinc/rung-backend/internal/entity"
	"github.com/rocketscienceinc/rung-backend/internal/repository"
	"github.com/rocketscienceinc/rung-backend/internal/repository/storage"
	"github.com/rocketscienceinc/rung-backend/internal/rung"
	"github.com/rocketscienceinc/rung-backend/internal/usecase"
	"github.com/rocketscienceinc/rung-backend/transport/rest"
	"github.com/rocketscienceinc/rung-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	err := conf.Game.Validate(rung.SupportedPlayerCount, func(variant string) bool {
		return entity.RuleVariant(variant).IsValid()
	})
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(redisStorage.Connection, conf.Game.SessionTTL)
	gameController := rung.NewGameController(nil, rung.AnyOf(rung.HandsEmpty, rung.ScoreReached(conf.Game.WinningScore)))
	gameUseCase := usecase.NewGameManager(logger, gameRepo, gameController)

	if _, err = gameUseCase.Resume(ctx); err != nil && !errors.Is(err, apperror.ErrNotFound) {
		log.Warn("could not resume stored game", "error", err)
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, gameUseCase)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameUseCase, websocket.Defaults{
			PlayerCount: conf.Game.PlayerCount,
			RuleVariant: entity.RuleVariant(conf.Game.RuleVariant),
		})
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
