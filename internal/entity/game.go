package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/rung-backend/internal/apperror"
)

const (
	StatusChoosingTrump = "choosing_trump"
	StatusOngoing       = "ongoing"
	StatusTrickComplete = "trick_complete"
	StatusFinished      = "finished"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the state of one game session. Hands are indexed by seat.
type Game struct {
	ID           string       `json:"id"`
	PlayerCount  int          `json:"player_count"`
	Hands        [][]Card     `json:"hands"`
	Undealt      []Card       `json:"undealt,omitempty"`
	Trump        *Suit        `json:"trump,omitempty"`
	CurrentSeat  int          `json:"current_seat"`
	Trick        Trick        `json:"trick"`
	Score        ScoreState   `json:"score"`
	Status       string       `json:"status"`
	TricksPlayed int          `json:"tricks_played"`
	LastTrick    *TrickResult `json:"last_trick,omitempty"`
}

func (that *Game) RuleVariant() RuleVariant {
	return that.Score.RuleVariant
}

// Leader returns the seat that led, or leads, the current trick.
func (that *Game) Leader() int {
	return that.Trick.Leader
}

func (that *Game) IsChoosingTrump() bool {
	return that.Status == StatusChoosingTrump
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsTrickComplete() bool {
	return that.Status == StatusTrickComplete
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

// ConfirmOngoingState - returns the reason a card cannot be played right now, if any.
func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsChoosingTrump():
		return apperror.ErrTrumpNotChosen
	case that.IsTrickComplete():
		return apperror.ErrTrickComplete
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// HandsEmpty reports whether every seat has played out its hand.
func (that *Game) HandsEmpty() bool {
	for _, hand := range that.Hands {
		if len(hand) > 0 {
			return false
		}
	}
	return true
}

// LeadingTeam returns the team with the higher score, or -1 on a tie.
func (that *Game) LeadingTeam() int {
	scores := that.Score.TeamScores
	switch {
	case scores[0] > scores[1]:
		return 0
	case scores[1] > scores[0]:
		return 1
	default:
		return -1
	}
}

// Clone returns a deep copy that shares no memory with the original.
func (that *Game) Clone() *Game {
	clone := *that

	clone.Hands = make([][]Card, len(that.Hands))
	for seat, hand := range that.Hands {
		clone.Hands[seat] = append([]Card{}, hand...)
	}

	if that.Undealt != nil {
		clone.Undealt = append([]Card{}, that.Undealt...)
	}

	if that.Trump != nil {
		trump := *that.Trump
		clone.Trump = &trump
	}

	clone.Trick = cloneTrick(that.Trick)

	if that.Score.PreviousTrickCard != nil {
		card := *that.Score.PreviousTrickCard
		clone.Score.PreviousTrickCard = &card
	}

	if that.LastTrick != nil {
		last := *that.LastTrick
		last.Plays = append([]Play{}, that.LastTrick.Plays...)
		clone.LastTrick = &last
	}

	return &clone
}

func cloneTrick(trick Trick) Trick {
	clone := trick
	clone.Plays = append([]Play{}, trick.Plays...)
	if trick.LeadSuit != nil {
		suit := *trick.LeadSuit
		clone.LeadSuit = &suit
	}
	return clone
}
