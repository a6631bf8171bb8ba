package entity

// Play is a single card played by a seat.
type Play struct {
	Seat int  `json:"seat"`
	Card Card `json:"card"`
}

// Trick holds the plays of one round, in play order.
type Trick struct {
	Leader   int    `json:"leader"`
	LeadSuit *Suit  `json:"lead_suit,omitempty"`
	Plays    []Play `json:"plays"`
}

func NewTrick(leader int) Trick {
	return Trick{Leader: leader, Plays: []Play{}}
}

// AddPlay appends a play; the first play fixes the lead suit.
func (that *Trick) AddPlay(seat int, card Card) {
	if len(that.Plays) == 0 {
		suit := card.Suit
		that.LeadSuit = &suit
	}
	that.Plays = append(that.Plays, Play{Seat: seat, Card: card})
}

func (that *Trick) IsEmpty() bool {
	return len(that.Plays) == 0
}

func (that *Trick) IsComplete(playerCount int) bool {
	return len(that.Plays) >= playerCount
}
