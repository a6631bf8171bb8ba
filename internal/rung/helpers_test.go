package rung

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/rung-backend/internal/entity"
)

func card(rank entity.Rank, suit entity.Suit) entity.Card {
	return entity.Card{Suit: suit, Rank: rank}
}

func seededRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1024))
}

// newOngoingGame builds a game past trump selection with fixed hands; seat 0 leads.
func newOngoingGame(hands [][]entity.Card, trump entity.Suit, variant entity.RuleVariant) *entity.Game {
	return &entity.Game{
		ID:          "test",
		PlayerCount: len(hands),
		Hands:       hands,
		Trump:       &trump,
		CurrentSeat: 0,
		Trick:       entity.NewTrick(0),
		Score:       entity.NewScoreState(variant),
		Status:      entity.StatusOngoing,
	}
}
