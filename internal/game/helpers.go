package game

import (
	"github.com/thoas/go-funk"
)

// UnsettledPlayers returns the players still waiting for a turn
func (t *Table) UnsettledPlayers() []*Player {
	return funk.Filter(t.Players, func(p *Player) bool {
		return !p.Settled
	}).([]*Player)
}

// SettledPlayers returns the players whose round is over
func (t *Table) SettledPlayers() []*Player {
	return funk.Filter(t.Players, func(p *Player) bool {
		return p.Settled
	}).([]*Player)
}

// Winners returns the players who won this round
func (t *Table) Winners() []*Player {
	return funk.Filter(t.Players, func(p *Player) bool {
		return p.Outcome == OutcomeWin
	}).([]*Player)
}

// TotalPayouts sums the payouts made this round
func (t *Table) TotalPayouts() float64 {
	payouts := funk.Map(t.Players, func(p *Player) float64 {
		return p.Payout
	}).([]float64)
	return funk.Sum(payouts)
}
