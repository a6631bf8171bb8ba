package entity

const (
	EventState = "state"
	EventTrick = "trick"
	EventOver  = "over"
)

// TrickResult is emitted once per completed trick.
type TrickResult struct {
	Number      int            `json:"number"`
	Winner      int            `json:"winner"`
	WinningCard Card           `json:"winning_card"`
	ScoreDelta  [TeamCount]int `json:"score_delta"`
	Plays       []Play         `json:"plays"`
}

// Scored reports whether the trick changed any team score.
func (that *TrickResult) Scored() bool {
	for _, delta := range that.ScoreDelta {
		if delta != 0 {
			return true
		}
	}
	return false
}

// Event is a notification for the presentation layer.
type Event struct {
	Type  string       `json:"type"`
	Game  *Game        `json:"game"`
	Trick *TrickResult `json:"trick,omitempty"`
}
