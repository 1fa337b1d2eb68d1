package game

import "errors"

// Controller errors. Every failed action wraps one of these and leaves the
// round state untouched; callers surface the message and let the user retry.
var (
	// ErrInvalidInput is returned for non-positive or non-numeric table
	// parameters (bankroll, max bet, ante, player count).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoEligiblePlayers is returned when no player can cover the ante,
	// in which case the round does not start.
	ErrNoEligiblePlayers = errors.New("no eligible players")

	// ErrRoundInProgress is returned when a round start arrives while the
	// current round still has unsettled players. End the round first.
	ErrRoundInProgress = errors.New("round already in progress")

	// ErrNotYourTurn is returned when a bet arrives for a player other
	// than the one at the active index.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrNotAwaitingBet is returned when the target player has already
	// been settled this round.
	ErrNotAwaitingBet = errors.New("player is not awaiting a bet")

	// ErrInvalidBet is returned for bets that are not a number, negative,
	// over the table maximum, or over the player's bankroll.
	ErrInvalidBet = errors.New("invalid bet")
)
