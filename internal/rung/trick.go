package rung

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/rung-backend/internal/apperror"
	"github.com/rocketscienceinc/rung-backend/internal/entity"
)

var (
	ErrEmptyTrick     = errors.New("trick has no plays")
	ErrNoEligibleCard = errors.New("no card can win the trick")
)

// validatePlay - checks that the card at cardIndex may be played into trick.
func validatePlay(hand []entity.Card, trick *entity.Trick, cardIndex int) (entity.Card, error) {
	if cardIndex < 0 || cardIndex >= len(hand) {
		return entity.Card{}, fmt.Errorf("%w: %d", apperror.ErrInvalidCardIndex, cardIndex)
	}

	card := hand[cardIndex]
	if trick.IsEmpty() || trick.LeadSuit == nil {
		return card, nil
	}

	lead := *trick.LeadSuit
	if card.Suit != lead && entity.HasSuit(hand, lead) {
		return entity.Card{}, fmt.Errorf("%w: %s led, got %s", apperror.ErrMustFollowSuit, lead, card)
	}

	return card, nil
}

// LegalPlays returns the indices of the cards in hand that may be played into trick.
func LegalPlays(hand []entity.Card, trick *entity.Trick) []int {
	indices := make([]int, 0, len(hand))
	for i := range hand {
		if _, err := validatePlay(hand, trick, i); err == nil {
			indices = append(indices, i)
		}
	}
	return indices
}

// ResolveWinner picks the winning play. If any trump was played the highest trump wins,
// otherwise the highest card of the lead suit. Other suits never win. On equal ranks the
// earlier play wins.
func ResolveWinner(plays []entity.Play, leadSuit entity.Suit, trump *entity.Suit) (entity.Play, error) {
	if len(plays) == 0 {
		return entity.Play{}, ErrEmptyTrick
	}

	eligible := leadSuit
	if trump != nil && trumpPlayed(plays, *trump) {
		eligible = *trump
	}

	best := -1
	for i, play := range plays {
		if play.Card.Suit != eligible {
			continue
		}
		if best == -1 || play.Card.Outranks(plays[best].Card) {
			best = i
		}
	}

	// the leader's card always matches the lead suit
	if best == -1 {
		return entity.Play{}, fmt.Errorf("%w: no %s played", ErrNoEligibleCard, eligible)
	}

	return plays[best], nil
}

func trumpPlayed(plays []entity.Play, trump entity.Suit) bool {
	for _, play := range plays {
		if play.Card.Suit == trump {
			return true
		}
	}
	return false
}

func removeCard(hand []entity.Card, index int) []entity.Card {
	out := make([]entity.Card, 0, len(hand)-1)
	out = append(out, hand[:index]...)
	return append(out, hand[index+1:]...)
}
