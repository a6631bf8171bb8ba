package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coder/websocket"

	"github.com/rocketscienceinc/rung-backend/internal/apperror"
	"github.com/rocketscienceinc/rung-backend/internal/entity"
)

var (
	errBadRequest       = errors.New("bad request")
	errUnsupportedFrame = fmt.Errorf("%w: only text frames are supported", errBadRequest)
	errMalformedMessage = fmt.Errorf("%w: malformed message", errBadRequest)
	errUnknownAction    = fmt.Errorf("%w: unknown action", errBadRequest)
)

func (that *Server) handleStart(ctx context.Context, _ *websocket.Conn, payload json.RawMessage) error {
	log := that.logger.With("method", "handleStart")

	req := StartPayload{}
	if err := decodePayload(payload, &req); err != nil {
		return err
	}

	if req.PlayerCount == 0 {
		req.PlayerCount = that.defaults.PlayerCount
	}

	variant := entity.RuleVariant(req.RuleVariant)
	if variant == "" {
		variant = that.defaults.RuleVariant
	}

	game, err := that.gameUseCase.StartGame(ctx, req.PlayerCount, variant)
	if err != nil {
		return err
	}

	log.Info("game started", "gameID", game.ID)

	return nil
}

func (that *Server) handleTrump(ctx context.Context, _ *websocket.Conn, payload json.RawMessage) error {
	var req TrumpPayload
	if err := decodePayload(payload, &req); err != nil {
		return err
	}

	suit, ok := entity.ParseSuit(req.Suit)
	if !ok {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownSuit, req.Suit)
	}

	_, err := that.gameUseCase.ChooseTrump(ctx, suit)

	return err
}

func (that *Server) handlePlay(ctx context.Context, _ *websocket.Conn, payload json.RawMessage) error {
	var req PlayPayload
	if err := decodePayload(payload, &req); err != nil {
		return err
	}

	_, _, err := that.gameUseCase.PlayCard(ctx, req.Seat, req.CardIndex)

	return err
}

func (that *Server) handleAdvance(ctx context.Context, _ *websocket.Conn, _ json.RawMessage) error {
	_, err := that.gameUseCase.AdvanceToNextTrick(ctx)

	return err
}

// handleState - answers only the requesting connection, with the legal plays of the seat to act.
func (that *Server) handleState(ctx context.Context, conn *websocket.Conn, _ json.RawMessage) error {
	game, err := that.gameUseCase.Game(ctx)
	if err != nil {
		return err
	}

	legalPlays, err := that.gameUseCase.LegalPlays(ctx, game.CurrentSeat)
	if err != nil {
		return err
	}

	resp := ResponsePayload{
		Game:       game,
		Trick:      game.LastTrick,
		LegalPlays: legalPlays,
	}

	return that.sendMessage(ctx, conn, actionState, resp)
}

func decodePayload(payload json.RawMessage, target any) error {
	if len(payload) == 0 {
		return nil
	}

	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("%w: %w", errMalformedMessage, err)
	}

	return nil
}
