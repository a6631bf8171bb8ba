package rung

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/rung-backend/internal/entity"
)

func TestScoreTrick_Single(t *testing.T) {
	// Given: a single variant score
	state := entity.NewScoreState(entity.RuleSingle)

	// When: K tricks are won by different seats
	winners := []int{0, 1, 2, 3, 4, 5, 6}
	for _, seat := range winners {
		delta := ScoreTrick(&state, seat, card(entity.Five, entity.Clubs))
		assert.Equal(t, 1, delta[entity.Team(seat)])
	}

	// Then: every trick is worth exactly one point to the winner's team
	assert.Equal(t, len(winners), state.TeamScores[0]+state.TeamScores[1])
	assert.Equal(t, [2]int{4, 3}, state.TeamScores)
	assert.False(t, state.HasControl())
}

func TestScoreTrick_Double(t *testing.T) {
	t.Run("Two in a row grants control, control pays one, losing it counts as no-score", func(t *testing.T) {
		// Given: a double variant score
		state := entity.NewScoreState(entity.RuleDouble)

		// When: seat 0 wins tricks 1 and 2
		delta := ScoreTrick(&state, 0, card(entity.King, entity.Spades))
		assert.Equal(t, [2]int{0, 0}, delta)
		delta = ScoreTrick(&state, 0, card(entity.Queen, entity.Hearts))

		// Then: team 0 gets 2 and seat 0 holds control
		assert.Equal(t, [2]int{2, 0}, delta)
		assert.Equal(t, 0, state.ControlPlayer)
		assert.Equal(t, entity.NoSeat, state.PreviousTrickWinner)
		assert.Nil(t, state.PreviousTrickCard)

		// When: seat 0 wins trick 3
		delta = ScoreTrick(&state, 0, card(entity.Ten, entity.Clubs))

		// Then: one more point, control kept
		assert.Equal(t, [2]int{1, 0}, delta)
		assert.Equal(t, 3, state.TeamScores[0])
		assert.Equal(t, 0, state.ControlPlayer)

		// When: seat 1 wins trick 4
		delta = ScoreTrick(&state, 1, card(entity.Jack, entity.Diamonds))

		// Then: control is cleared and the trick is a no-score trick
		assert.Equal(t, [2]int{0, 0}, delta)
		assert.False(t, state.HasControl())
		assert.Equal(t, 1, state.NoScoreTrickCount)
		assert.Equal(t, 1, state.PreviousTrickWinner)
		assert.Equal(t, [2]int{3, 0}, state.TeamScores)
	})

	t.Run("Control grant pays the backlog", func(t *testing.T) {
		// Given: three different winners, leaving a backlog of two
		state := entity.NewScoreState(entity.RuleDouble)
		ScoreTrick(&state, 0, card(entity.Two, entity.Spades))
		ScoreTrick(&state, 1, card(entity.Three, entity.Spades))
		ScoreTrick(&state, 2, card(entity.Four, entity.Spades))
		require.Equal(t, 2, state.NoScoreTrickCount)

		// When: seat 2 wins again
		delta := ScoreTrick(&state, 2, card(entity.Five, entity.Spades))

		// Then: team 0 gets backlog + 2
		assert.Equal(t, [2]int{4, 0}, delta)
		assert.Equal(t, 0, state.NoScoreTrickCount)
		assert.Equal(t, 2, state.ControlPlayer)
	})

	t.Run("Teammates winning in turn do not grant control", func(t *testing.T) {
		state := entity.NewScoreState(entity.RuleDouble)

		ScoreTrick(&state, 0, card(entity.Two, entity.Spades))
		delta := ScoreTrick(&state, 2, card(entity.Three, entity.Spades))

		assert.Equal(t, [2]int{0, 0}, delta)
		assert.False(t, state.HasControl())
		assert.Equal(t, 1, state.NoScoreTrickCount)
	})

	t.Run("Two ace wins in a row still grant control", func(t *testing.T) {
		state := entity.NewScoreState(entity.RuleDouble)

		ScoreTrick(&state, 1, card(entity.Ace, entity.Spades))
		delta := ScoreTrick(&state, 1, card(entity.Ace, entity.Hearts))

		assert.Equal(t, [2]int{0, 2}, delta)
		assert.Equal(t, 1, state.ControlPlayer)
	})

	t.Run("Six no-score tricks force the award", func(t *testing.T) {
		// Given: a double variant score
		state := entity.NewScoreState(entity.RuleDouble)

		// When: winners alternate so no seat repeats; the first trick starts the count
		seats := []int{0, 1, 0, 1, 0, 1}
		for i, seat := range seats {
			delta := ScoreTrick(&state, seat, card(entity.Nine, entity.Clubs))
			assert.Equal(t, [2]int{0, 0}, delta)
			assert.Equal(t, i, state.NoScoreTrickCount)
		}
		delta := ScoreTrick(&state, 0, card(entity.Nine, entity.Clubs))

		// Then: the sixth no-score trick pays 7 to the winner's team and resets everything
		assert.Equal(t, [2]int{7, 0}, delta)
		assert.Equal(t, 0, state.NoScoreTrickCount)
		assert.False(t, state.HasControl())
		assert.Equal(t, entity.NoSeat, state.PreviousTrickWinner)
		assert.Nil(t, state.PreviousTrickCard)
	})

	t.Run("Losing control counts towards the forced award", func(t *testing.T) {
		// Given: seat 3 holds control
		state := entity.NewScoreState(entity.RuleDouble)
		ScoreTrick(&state, 3, card(entity.Two, entity.Clubs))
		ScoreTrick(&state, 3, card(entity.Three, entity.Clubs))
		require.Equal(t, 3, state.ControlPlayer)

		// When: control is lost and five more distinct winners follow
		for _, seat := range []int{0, 1, 2, 1, 2} {
			ScoreTrick(&state, seat, card(entity.Four, entity.Clubs))
		}
		require.Equal(t, 5, state.NoScoreTrickCount)
		delta := ScoreTrick(&state, 0, card(entity.Five, entity.Clubs))

		// Then: the sixth no-score trick pays 7 to team 0
		assert.Equal(t, [2]int{7, 0}, delta)
		assert.Equal(t, [2]int{7, 2}, state.TeamScores)
	})
}

func TestScoreTrick_DoubleAce(t *testing.T) {
	t.Run("Two ace wins in a row by the same seat never grant control", func(t *testing.T) {
		// Given: a double-ace variant score
		state := entity.NewScoreState(entity.RuleDoubleAce)

		// When: seat 0 wins two tricks in a row, both with aces
		ScoreTrick(&state, 0, card(entity.Ace, entity.Spades))
		delta := ScoreTrick(&state, 0, card(entity.Ace, entity.Hearts))

		// Then: no control, no points, and the bookkeeping holds the newer ace
		assert.Equal(t, [2]int{0, 0}, delta)
		assert.False(t, state.HasControl())
		assert.Equal(t, 0, state.PreviousTrickWinner)
		require.NotNil(t, state.PreviousTrickCard)
		assert.Equal(t, card(entity.Ace, entity.Hearts), *state.PreviousTrickCard)
		assert.Equal(t, 0, state.NoScoreTrickCount)
		assert.Equal(t, [2]int{0, 0}, state.TeamScores)
	})

	t.Run("A following non-ace win grants control", func(t *testing.T) {
		state := entity.NewScoreState(entity.RuleDoubleAce)
		ScoreTrick(&state, 0, card(entity.Ace, entity.Spades))
		ScoreTrick(&state, 0, card(entity.Ace, entity.Hearts))

		delta := ScoreTrick(&state, 0, card(entity.King, entity.Hearts))

		assert.Equal(t, [2]int{2, 0}, delta)
		assert.Equal(t, 0, state.ControlPlayer)
	})

	t.Run("Only one ace does not void control", func(t *testing.T) {
		state := entity.NewScoreState(entity.RuleDoubleAce)
		ScoreTrick(&state, 1, card(entity.Ace, entity.Spades))

		delta := ScoreTrick(&state, 1, card(entity.Seven, entity.Hearts))

		assert.Equal(t, [2]int{0, 2}, delta)
		assert.Equal(t, 1, state.ControlPlayer)
	})
}
