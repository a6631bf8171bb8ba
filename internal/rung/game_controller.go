package rung

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/rung-backend/internal/apperror"
	"github.com/rocketscienceinc/rung-backend/internal/entity"
)

// StopCondition decides, after each completed trick, whether the game is over.
type StopCondition func(game *entity.Game) bool

// HandsEmpty ends the game once every card has been played.
func HandsEmpty(game *entity.Game) bool {
	return game.HandsEmpty()
}

// ScoreReached ends the game once a team has at least target points. A target of zero never fires.
func ScoreReached(target int) StopCondition {
	return func(game *entity.Game) bool {
		if target <= 0 {
			return false
		}
		for _, score := range game.Score.TeamScores {
			if score >= target {
				return true
			}
		}
		return false
	}
}

func AnyOf(conditions ...StopCondition) StopCondition {
	return func(game *entity.Game) bool {
		for _, condition := range conditions {
			if condition(game) {
				return true
			}
		}
		return false
	}
}

// GameController applies the rules to a game. It is not safe for concurrent use.
type GameController struct {
	rng  *rand.Rand
	stop StopCondition
}

// NewGameController - rng may be nil for a randomly seeded source, stop may be nil for HandsEmpty.
func NewGameController(rng *rand.Rand, stop StopCondition) *GameController {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // card shuffling
	}

	if stop == nil {
		stop = HandsEmpty
	}

	return &GameController{
		rng:  rng,
		stop: stop,
	}
}

// StartGame - builds, shuffles and deals a fresh deck. Seat 0 leads and picks trump.
func (that *GameController) StartGame(id string, playerCount int, variant entity.RuleVariant) (*entity.Game, error) {
	if !variant.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownRuleVariant, variant)
	}

	deck, err := BuildDeck(playerCount)
	if err != nil {
		return nil, fmt.Errorf("failed to build deck: %w", err)
	}

	hands, undealt, err := Deal(Shuffle(deck, that.rng), playerCount)
	if err != nil {
		return nil, fmt.Errorf("failed to deal: %w", err)
	}

	return &entity.Game{
		ID:          id,
		PlayerCount: playerCount,
		Hands:       hands,
		Undealt:     undealt,
		CurrentSeat: 0,
		Trick:       entity.NewTrick(0),
		Score:       entity.NewScoreState(variant),
		Status:      entity.StatusChoosingTrump,
	}, nil
}

// ChooseTrump - fixes the trump suit; allowed once, before the first card.
func (that *GameController) ChooseTrump(game *entity.Game, suit entity.Suit) error {
	if game == nil {
		return apperror.ErrGameIsNotStarted
	}

	if game.Trump != nil || !game.IsChoosingTrump() {
		return apperror.ErrTrumpAlreadyChosen
	}

	if !suit.IsValid() {
		return fmt.Errorf("%w: %d", apperror.ErrUnknownSuit, suit)
	}

	game.Trump = &suit
	game.Status = entity.StatusOngoing

	return nil
}

// PlayCard - plays the card at cardIndex from seat's hand. When the play completes the trick the
// winner is resolved, the score updated and the result returned; otherwise the result is nil.
func (that *GameController) PlayCard(game *entity.Game, seat, cardIndex int) (*entity.TrickResult, error) {
	if game == nil {
		return nil, apperror.ErrGameIsNotStarted
	}

	if err := game.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	if seat != game.CurrentSeat {
		return nil, fmt.Errorf("%w: seat %d, seat %d to act", apperror.ErrNotYourTurn, seat, game.CurrentSeat)
	}

	card, err := validatePlay(game.Hands[seat], &game.Trick, cardIndex)
	if err != nil {
		return nil, err
	}

	game.Hands[seat] = removeCard(game.Hands[seat], cardIndex)
	game.Trick.AddPlay(seat, card)

	if !game.Trick.IsComplete(game.PlayerCount) {
		game.CurrentSeat = (seat + 1) % game.PlayerCount
		return nil, nil
	}

	return that.completeTrick(game)
}

func (that *GameController) completeTrick(game *entity.Game) (*entity.TrickResult, error) {
	winner, err := ResolveWinner(game.Trick.Plays, *game.Trick.LeadSuit, game.Trump)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve trick: %w", err)
	}

	delta := ScoreTrick(&game.Score, winner.Seat, winner.Card)
	game.TricksPlayed++

	result := &entity.TrickResult{
		Number:      game.TricksPlayed,
		Winner:      winner.Seat,
		WinningCard: winner.Card,
		ScoreDelta:  delta,
		Plays:       append([]entity.Play{}, game.Trick.Plays...),
	}

	game.LastTrick = result
	game.CurrentSeat = winner.Seat
	game.Status = entity.StatusTrickComplete

	if that.stop(game) {
		game.Status = entity.StatusFinished
	}

	return result, nil
}

// AdvanceToNextTrick - clears the completed trick; its winner leads the next one.
// Rejected when no trick is waiting, so calling it twice never skips a trick.
func (that *GameController) AdvanceToNextTrick(game *entity.Game) error {
	if game == nil {
		return apperror.ErrGameIsNotStarted
	}

	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !game.IsTrickComplete() || game.LastTrick == nil {
		return apperror.ErrNoTrickToAdvance
	}

	leader := game.LastTrick.Winner
	game.Trick = entity.NewTrick(leader)
	game.CurrentSeat = leader
	game.Status = entity.StatusOngoing

	return nil
}

// LegalPlays - indices of the cards the acting seat may play; empty for any other seat.
func (that *GameController) LegalPlays(game *entity.Game, seat int) []int {
	if game == nil || !game.IsOngoing() || seat != game.CurrentSeat {
		return []int{}
	}
	return LegalPlays(game.Hands[seat], &game.Trick)
}
