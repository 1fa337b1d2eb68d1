package game

import (
	"github.com/lox/thirtytwo/cards"
)

// Outcome is the result tag recorded on a settled player
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
	OutcomePush Outcome = "push"
	// OutcomeNoAnte marks a player who could not cover the ante and sat
	// the round out.
	OutcomeNoAnte Outcome = "no_ante"
)

// String returns a human-readable form of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "Win"
	case OutcomeLose:
		return "Lose"
	case OutcomePush:
		return "Push"
	case OutcomeNoAnte:
		return "Cannot cover ante"
	default:
		return "Pending"
	}
}

// Player represents a seat in the round. IDs are 0-based array positions,
// stable for the round.
type Player struct {
	ID       int
	Name     string
	Bankroll float64
	Hand     []cards.Card

	AntePaid    float64
	Bet         float64
	AwaitingBet bool
	Settled     bool
	Outcome     Outcome
	Payout      float64
	Total       int

	// RevealAll is a presentation flag: until the player has bet, only
	// their first card is face up.
	RevealAll bool
}

// FirstCard returns the face-up card shown before betting
func (p *Player) FirstCard() cards.Card {
	if len(p.Hand) == 0 {
		return cards.Card{}
	}
	return p.Hand[0]
}
