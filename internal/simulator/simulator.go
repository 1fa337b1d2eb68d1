// Package simulator plays large numbers of seeded rounds to measure the
// house edge under simple bet policies. Rounds are independent, so they run
// across a worker pool; each round derives its own seed from the base seed
// and is individually replayable.
package simulator

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/thirtytwo/internal/game"
)

// Policy decides the bet for a player once their first card is showing
type Policy func(p *game.Player, maxBet float64) float64

// PolicyNamed returns a built-in policy by name
func PolicyNamed(name string) (Policy, error) {
	switch name {
	case "max":
		return func(p *game.Player, maxBet float64) float64 {
			return min(maxBet, p.Bankroll)
		}, nil
	case "half":
		return func(p *game.Player, maxBet float64) float64 {
			return min(maxBet/2, p.Bankroll)
		}, nil
	case "push":
		return func(*game.Player, float64) float64 {
			return 0
		}, nil
	default:
		return nil, fmt.Errorf("unknown bet policy %q (want max, half or push)", name)
	}
}

// Config holds configuration for running simulations
type Config struct {
	Rounds   int
	Players  int
	MaxBet   float64
	Bankroll float64
	Policy   Policy
	Jokers   bool
	Seed     int64
	Workers  int
	Logger   *log.Logger
}

// Simulator runs betting-round simulations
type Simulator struct {
	cfg Config
}

// New creates a new simulator with the given configuration
func New(cfg Config) *Simulator {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.Players <= 0 {
		cfg.Players = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Simulator{cfg: cfg}
}

// Run executes the simulation and returns aggregate statistics
func (s *Simulator) Run(ctx context.Context) (*Statistics, error) {
	g, ctx := errgroup.WithContext(ctx)

	jobs := make(chan int)
	results := make(chan RoundResult, s.cfg.Workers)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < s.cfg.Rounds; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < s.cfg.Workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				// Independent seed per round so any single round can
				// be replayed with the deal subcommand
				res, err := s.playRound(s.cfg.Seed + int64(i))
				if err != nil {
					return fmt.Errorf("round %d: %w", i, err)
				}
				select {
				case results <- res:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	done := make(chan struct{})
	stats := &Statistics{}
	go func() {
		defer close(done)
		for res := range results {
			stats.Add(res)
		}
	}()

	err := g.Wait()
	close(results)
	<-done
	if err != nil {
		return nil, err
	}

	s.cfg.Logger.Info("simulation complete",
		"rounds", stats.Rounds,
		"mean_house_profit", stats.Mean(),
		"net_house", stats.NetHouse)
	return stats, nil
}

func (s *Simulator) playRound(seed int64) (RoundResult, error) {
	names := make([]string, s.cfg.Players)
	for i := range names {
		names[i] = fmt.Sprintf("Sim %d", i+1)
	}

	tbl, err := game.NewTable(game.TableConfig{
		MaxBet:   s.cfg.MaxBet,
		Bankroll: s.cfg.Bankroll,
		Seed:     &seed,
		Jokers:   s.cfg.Jokers,
		Names:    names,
	}, s.cfg.Logger)
	if err != nil {
		return RoundResult{}, err
	}
	if err := tbl.StartRound(); err != nil {
		return RoundResult{}, err
	}

	for tbl.RoundActive {
		p := tbl.ActivePlayer()
		if _, err := tbl.PlaceBet(p.ID, s.cfg.Policy(p, tbl.MaxBet)); err != nil {
			return RoundResult{}, err
		}
	}

	res := RoundResult{
		Seed:        seed,
		HouseProfit: tbl.HouseRoundProfit,
		Payouts:     tbl.TotalPayouts(),
	}
	for _, p := range tbl.Players {
		switch p.Outcome {
		case game.OutcomeWin:
			res.Wins++
		case game.OutcomeLose:
			res.Losses++
		case game.OutcomePush:
			res.Pushes++
		}
	}
	return res, nil
}
