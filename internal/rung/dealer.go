package rung

import (
	"fmt"

	"github.com/rocketscienceinc/rung-backend/internal/apperror"
	"github.com/rocketscienceinc/rung-backend/internal/entity"
)

// Deal splits deck round-robin: seat i gets the cards at indices i, i+n, i+2n, ...
// Every seat gets len(deck)/n cards. The remainder is returned undealt and never reaches a hand.
func Deal(deck []entity.Card, playerCount int) ([][]entity.Card, []entity.Card, error) {
	if playerCount <= 0 {
		return nil, nil, fmt.Errorf("%w: %d", apperror.ErrUnsupportedPlayerCount, playerCount)
	}

	perSeat := len(deck) / playerCount
	dealt := perSeat * playerCount

	hands := make([][]entity.Card, playerCount)
	for seat := range hands {
		hands[seat] = make([]entity.Card, 0, perSeat)
	}

	for i := range dealt {
		seat := i % playerCount
		hands[seat] = append(hands[seat], deck[i])
	}

	undealt := append([]entity.Card(nil), deck[dealt:]...)

	return hands, undealt, nil
}
