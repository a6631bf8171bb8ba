package rung

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/rung-backend/internal/apperror"
	"github.com/rocketscienceinc/rung-backend/internal/entity"
)

const (
	StandardDeckSize = 52

	SmallTable = 4
	LargeTable = 8
)

// SupportedPlayerCount reports whether a table of n seats can be dealt.
func SupportedPlayerCount(n int) bool {
	return n == SmallTable || n == LargeTable
}

// BuildDeck returns one ordered 52-card set for 4 players and two concatenated sets for 8.
func BuildDeck(playerCount int) ([]entity.Card, error) {
	if !SupportedPlayerCount(playerCount) {
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnsupportedPlayerCount, playerCount)
	}

	sets := 1
	if playerCount == LargeTable {
		sets = 2
	}

	deck := make([]entity.Card, 0, sets*StandardDeckSize)
	for range sets {
		for _, suit := range entity.Suits {
			for _, rank := range entity.Ranks {
				deck = append(deck, entity.Card{Suit: suit, Rank: rank})
			}
		}
	}

	return deck, nil
}

// Shuffle returns a uniformly permuted copy of deck using Fisher-Yates.
func Shuffle(deck []entity.Card, rng *rand.Rand) []entity.Card {
	out := make([]entity.Card, len(deck))
	copy(out, deck)

	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}
