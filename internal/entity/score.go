package entity

// RuleVariant selects the scoring rules for a whole game.
type RuleVariant string

const (
	RuleSingle    RuleVariant = "single"
	RuleDouble    RuleVariant = "double"
	RuleDoubleAce RuleVariant = "double-ace"
)

func (v RuleVariant) IsValid() bool {
	switch v {
	case RuleSingle, RuleDouble, RuleDoubleAce:
		return true
	}
	return false
}

// HasControl reports whether the variant tracks control across tricks.
func (v RuleVariant) HasControl() bool {
	return v == RuleDouble || v == RuleDoubleAce
}

const (
	TeamCount = 2

	// NoSeat marks an unset seat reference.
	NoSeat = -1
)

// Team returns the team of a seat: even seats play for team 0, odd seats for team 1.
func Team(seat int) int {
	return seat % TeamCount
}

// TeamName is the display label of a team.
func TeamName(team int) string {
	if team == 0 {
		return "Team A"
	}
	return "Team B"
}

// ScoreState is the scoring state carried across tricks.
type ScoreState struct {
	TeamScores          [TeamCount]int `json:"team_scores"`
	RuleVariant         RuleVariant    `json:"rule_variant"`
	ControlPlayer       int            `json:"control_player"`
	PreviousTrickWinner int            `json:"previous_trick_winner"`
	PreviousTrickCard   *Card          `json:"previous_trick_card,omitempty"`
	NoScoreTrickCount   int            `json:"no_score_trick_count"`
}

func NewScoreState(variant RuleVariant) ScoreState {
	return ScoreState{
		RuleVariant:         variant,
		ControlPlayer:       NoSeat,
		PreviousTrickWinner: NoSeat,
	}
}

func (that *ScoreState) HasControl() bool {
	return that.ControlPlayer != NoSeat
}
