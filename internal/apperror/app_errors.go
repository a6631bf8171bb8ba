package apperror

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// Categories. Every rejected command matches exactly one of them with errors.Is.
var (
	ErrOutOfTurn            = errors.New("out of turn")
	ErrIllegalPlay          = errors.New("illegal play")
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

var (
	ErrUnsupportedPlayerCount = fmt.Errorf("%w: unsupported player count", ErrInvalidConfiguration)
	ErrUnknownRuleVariant     = fmt.Errorf("%w: unknown rule variant", ErrInvalidConfiguration)
	ErrUnknownSuit            = fmt.Errorf("%w: unknown suit", ErrInvalidConfiguration)
	ErrTrumpAlreadyChosen     = fmt.Errorf("%w: trump already chosen", ErrInvalidConfiguration)
	ErrTrumpNotChosen         = fmt.Errorf("%w: trump is not chosen", ErrInvalidConfiguration)
	ErrGameIsNotStarted       = fmt.Errorf("%w: game is not started", ErrInvalidConfiguration)
	ErrGameFinished           = fmt.Errorf("%w: game is already finished", ErrInvalidConfiguration)
	ErrNoTrickToAdvance       = fmt.Errorf("%w: no completed trick to advance from", ErrInvalidConfiguration)

	ErrMustFollowSuit   = fmt.Errorf("%w: must follow the lead suit", ErrIllegalPlay)
	ErrInvalidCardIndex = fmt.Errorf("%w: invalid card index", ErrIllegalPlay)

	ErrNotYourTurn   = fmt.Errorf("%w: it's not your turn", ErrOutOfTurn)
	ErrTrickComplete = fmt.Errorf("%w: trick is complete, waiting for the next one", ErrOutOfTurn)
)
