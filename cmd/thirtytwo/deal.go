package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/thirtytwo/internal/display"
	"github.com/lox/thirtytwo/internal/game"
)

// DealCmd plays a single round non-interactively with scripted bets,
// useful for replaying a seed from a simulation
type DealCmd struct {
	Players  []string  `short:"p" help:"Player names (1-5)" default:"Player 1"`
	MaxBet   float64   `default:"50" help:"Maximum bet amount"`
	Bankroll float64   `default:"100" help:"Starting bankroll per player"`
	Ante     float64   `help:"Ante amount; defaults to 10% of max bet"`
	Seed     int64     `required:"" help:"RNG seed for the shuffle"`
	Jokers   bool      `help:"Play the 54-card variant: any joker pays 3x"`
	Bets     []float64 `short:"b" help:"Bets in seat order; missing entries push"`
}

// Run deals and settles the round
func (c *DealCmd) Run() error {
	logger := log.New(os.Stderr)
	logger.SetLevel(log.WarnLevel)

	table, err := game.NewTable(game.TableConfig{
		MaxBet:   c.MaxBet,
		Bankroll: c.Bankroll,
		Ante:     c.Ante,
		Seed:     &c.Seed,
		Jokers:   c.Jokers,
		Names:    c.Players,
	}, logger)
	if err != nil {
		return err
	}
	if err := table.StartRound(); err != nil {
		return err
	}

	renderer := display.NewRenderer()
	for table.RoundActive {
		p := table.ActivePlayer()
		bet := 0.0
		if p.ID < len(c.Bets) {
			bet = c.Bets[p.ID]
		}

		fmt.Printf("%s shows %s and bets %s\n", p.Name, renderer.Card(p.FirstCard()), game.FormatMoney(bet))
		ev, err := table.PlaceBet(p.ID, bet)
		if err != nil {
			return err
		}
		fmt.Println(renderer.OutcomeBanner(*ev))
	}

	fmt.Println()
	fmt.Println(renderer.Summary(table))
	return nil
}
