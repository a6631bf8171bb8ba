package entity

import (
	"fmt"
	"strings"
)

// Suit represents a card suit.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck order.
var Suits = [...]Suit{Spades, Hearts, Diamonds, Clubs}

var suitSymbols = [...]string{"♠", "♥", "♦", "♣"}

var suitNames = [...]string{"spades", "hearts", "diamonds", "clubs"}

func (s Suit) IsValid() bool {
	return s >= Spades && s <= Clubs
}

func (s Suit) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitSymbols[s]
}

// Name returns the lower-case english name of the suit.
func (s Suit) Name() string {
	if !s.IsValid() {
		return ""
	}
	return suitNames[s]
}

// ParseSuit accepts either a suit name ("hearts") or its symbol ("♥").
func ParseSuit(value string) (Suit, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, s := range Suits {
		if value == suitNames[s] || value == suitSymbols[s] {
			return s, true
		}
	}
	return 0, false
}

// Rank represents a card rank. The numeric order is the strength order: 2 < 3 < ... < K < A.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from the lowest to the highest.
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) IsValid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r.IsValid() {
		return fmt.Sprintf("%d", int(r))
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

// Card is an immutable playing card.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Outranks reports whether c ranks strictly higher than other, regardless of suit.
func (c Card) Outranks(other Card) bool {
	return c.Rank > other.Rank
}

// HasSuit reports whether any card of the given suit is in cards.
func HasSuit(cards []Card, suit Suit) bool {
	for _, c := range cards {
		if c.Suit == suit {
			return true
		}
	}
	return false
}
