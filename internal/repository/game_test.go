package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/rung-backend/internal/apperror"
	"github.com/rocketscienceinc/rung-backend/internal/entity"
	"github.com/rocketscienceinc/rung-backend/testing/suite"
)

func newTestGame(id string) *entity.Game {
	trump := entity.Hearts
	lead := entity.Spades
	previous := entity.Card{Suit: entity.Clubs, Rank: entity.Ace}

	score := entity.NewScoreState(entity.RuleDoubleAce)
	score.TeamScores = [2]int{3, 1}
	score.PreviousTrickWinner = 2
	score.PreviousTrickCard = &previous

	return &entity.Game{
		ID:          id,
		PlayerCount: 4,
		Hands: [][]entity.Card{
			{{Suit: entity.Spades, Rank: entity.Two}},
			{{Suit: entity.Hearts, Rank: entity.King}},
			{},
			{{Suit: entity.Diamonds, Rank: entity.Ten}},
		},
		Trump:       &trump,
		CurrentSeat: 3,
		Trick: entity.Trick{
			Leader:   2,
			LeadSuit: &lead,
			Plays:    []entity.Play{{Seat: 2, Card: entity.Card{Suit: entity.Spades, Rank: entity.Queen}}},
		},
		Score:        score,
		Status:       entity.StatusOngoing,
		TricksPlayed: 12,
	}
}

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage.Connection, time.Hour)

	// Given: a game in progress
	game := newTestGame("123")

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and the game expires eventually
	require.NoError(t, err)
	ttl, err := st.Storage.Connection.TTL(ctx, "game:123").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage.Connection, 0)

		// Given: a stored game
		game := newTestGame("123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		require.Equal(t, game, retrievedGame)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage.Connection, 0)

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
		require.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Nil(t, retrievedGame)
	})
}

func TestGameRepository_GetCurrent(t *testing.T) {
	t.Run("Returns the last saved game", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage.Connection, 0)

		// Given: two games saved one after the other
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newTestGame("first")))
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newTestGame("second")))

		// When: the current game is requested
		current, err := gameRepo.GetCurrent(ctx)

		// Then: the second one is returned
		require.NoError(t, err)
		assert.Equal(t, "second", current.ID)
	})

	t.Run("No current game", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage.Connection, 0)

		_, err := gameRepo.GetCurrent(ctx)

		require.ErrorIs(t, err, ErrGameNotFound)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage.Connection, 0)

		// Given: a stored game
		game := newTestGame("123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: DeleteByID is called with existing ID
		err := gameRepo.DeleteByID(ctx, game.ID)

		// Then: no error should be returned, the game and the current marker are gone
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, ErrGameNotFound)

		_, err = gameRepo.GetCurrent(ctx)
		require.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("DeleteByID_KeepsOtherCurrent", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage.Connection, 0)

		// Given: an old game and a newer current one
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newTestGame("old")))
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newTestGame("new")))

		// When: the old game is deleted
		require.NoError(t, gameRepo.DeleteByID(ctx, "old"))

		// Then: the newer game is still current
		current, err := gameRepo.GetCurrent(ctx)
		require.NoError(t, err)
		assert.Equal(t, "new", current.ID)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage.Connection, 0)

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
	})
}
