package rung

import "github.com/rocketscienceinc/rung-backend/internal/entity"

// ForcedAwardThreshold is the no-score trick count that forces the backlog to be paid out.
const ForcedAwardThreshold = 6

// ScoreTrick feeds one completed trick into the scoring state and returns the per-team delta.
//
// Single: the winner's team gets one point.
//
// Double and double-ace: a seat that wins two tricks in a row takes control and its team
// gets the backlog plus two. While in control every further trick it wins is worth one point;
// losing a trick loses control. After six no-score tricks the backlog plus one goes to the
// winner of the sixth. In double-ace two consecutive tricks won with aces never grant control.
func ScoreTrick(state *entity.ScoreState, winner int, card entity.Card) [entity.TeamCount]int {
	var delta [entity.TeamCount]int
	team := entity.Team(winner)

	if !state.RuleVariant.HasControl() {
		state.TeamScores[team]++
		delta[team] = 1
		return delta
	}

	var award int
	if state.HasControl() {
		award = scoreUnderControl(state, winner, card)
	} else {
		award = scoreWithoutControl(state, winner, card)
	}

	if award == 0 && state.NoScoreTrickCount >= ForcedAwardThreshold {
		award = state.NoScoreTrickCount + 1
		state.ControlPlayer = entity.NoSeat
	}

	if award > 0 {
		state.TeamScores[team] += award
		delta[team] = award
		clearTracking(state)
	}

	return delta
}

func scoreWithoutControl(state *entity.ScoreState, winner int, card entity.Card) int {
	if state.PreviousTrickWinner == winner {
		if acesVoidControl(state, card) {
			recordWinner(state, winner, card)
			return 0
		}

		state.ControlPlayer = winner
		return state.NoScoreTrickCount + 2
	}

	if state.PreviousTrickWinner != entity.NoSeat {
		state.NoScoreTrickCount++
	}
	recordWinner(state, winner, card)

	return 0
}

func scoreUnderControl(state *entity.ScoreState, winner int, card entity.Card) int {
	recordWinner(state, winner, card)

	if winner == state.ControlPlayer {
		return 1
	}

	state.ControlPlayer = entity.NoSeat
	state.NoScoreTrickCount++

	return 0
}

func acesVoidControl(state *entity.ScoreState, card entity.Card) bool {
	if state.RuleVariant != entity.RuleDoubleAce || state.PreviousTrickCard == nil {
		return false
	}
	return state.PreviousTrickCard.Rank == entity.Ace && card.Rank == entity.Ace
}

func recordWinner(state *entity.ScoreState, winner int, card entity.Card) {
	state.PreviousTrickWinner = winner
	state.PreviousTrickCard = &card
}

// clearTracking resets the repeat detection after a score. Control, if held, is kept.
func clearTracking(state *entity.ScoreState) {
	state.PreviousTrickWinner = entity.NoSeat
	state.PreviousTrickCard = nil
	state.NoScoreTrickCount = 0
}
