package websocket

import (
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/rung-backend/internal/apperror"
	"github.com/rocketscienceinc/rung-backend/internal/entity"
)

const (
	actionStart   = "game:start"
	actionTrump   = "game:trump"
	actionPlay    = "game:play"
	actionAdvance = "game:advance"
	actionState   = "game:state"
	actionTrick   = "game:trick"
	actionOver    = "game:over"
	actionError   = "error"
)

// Message is the envelope of every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type StartPayload struct {
	PlayerCount int    `json:"player_count,omitempty"`
	RuleVariant string `json:"rule_variant,omitempty"`
}

// TrumpPayload - suit accepts a name ("hearts") or a symbol ("♥").
type TrumpPayload struct {
	Suit string `json:"suit"`
}

type PlayPayload struct {
	Seat      int `json:"seat"`
	CardIndex int `json:"card_index"`
}

type ResponsePayload struct {
	Game       *entity.Game        `json:"game,omitempty"`
	Trick      *entity.TrickResult `json:"trick,omitempty"`
	LegalPlays []int               `json:"legal_plays,omitempty"`
	Winner     string              `json:"winner,omitempty"`
}

type ErrorPayload struct {
	Action string `json:"action,omitempty"`
	Kind   string `json:"kind"`
	Error  string `json:"error"`
}

func newMessage(action string, payload any) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Message{Action: action, Payload: data}, nil
}

// eventMessage - maps a game event to the frame broadcast to every connection.
func eventMessage(event entity.Event) (*Message, error) {
	payload := ResponsePayload{
		Game:  event.Game,
		Trick: event.Trick,
	}

	switch event.Type {
	case entity.EventTrick:
		return newMessage(actionTrick, payload)
	case entity.EventOver:
		if team := event.Game.LeadingTeam(); team >= 0 {
			payload.Winner = entity.TeamName(team)
		}
		return newMessage(actionOver, payload)
	default:
		return newMessage(actionState, payload)
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, errBadRequest):
		return "bad_request"
	case errors.Is(err, apperror.ErrOutOfTurn):
		return "out_of_turn"
	case errors.Is(err, apperror.ErrIllegalPlay):
		return "illegal_play"
	case errors.Is(err, apperror.ErrInvalidConfiguration):
		return "invalid_configuration"
	default:
		return "internal"
	}
}
