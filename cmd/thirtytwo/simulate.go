package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/thirtytwo/internal/simulator"
)

// SimulateCmd measures the house edge under a fixed bet policy
type SimulateCmd struct {
	Rounds   int     `default:"10000" help:"Number of rounds to simulate"`
	Players  int     `default:"1" help:"Players per round (1-5)"`
	MaxBet   float64 `default:"50" help:"Maximum bet amount"`
	Bankroll float64 `default:"100" help:"Starting bankroll per player"`
	Bet      string  `default:"max" help:"Bet policy: max, half or push"`
	Jokers   bool    `help:"Play the 54-card variant: any joker pays 3x"`
	Seed     int64   `default:"0" help:"Base RNG seed (0 for random)"`
	Workers  int     `default:"0" help:"Worker goroutines (0 for one per CPU)"`
	Verbose  bool    `help:"Verbose logging"`
}

// Run executes the simulation
func (c *SimulateCmd) Run() error {
	logger := log.New(os.Stderr)
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	policy, err := simulator.PolicyNamed(c.Bet)
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	sim := simulator.New(simulator.Config{
		Rounds:   c.Rounds,
		Players:  c.Players,
		MaxBet:   c.MaxBet,
		Bankroll: c.Bankroll,
		Policy:   policy,
		Jokers:   c.Jokers,
		Seed:     seed,
		Workers:  workers,
		Logger:   logger,
	})

	start := time.Now()
	stats, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Simulated %d rounds (%q policy, seed %d) in %s\n\n",
		stats.Rounds, c.Bet, seed, time.Since(start).Round(time.Millisecond))
	fmt.Print(stats.Summary())
	return nil
}
