package simulator

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPolicy(t *testing.T, name string) Policy {
	t.Helper()
	p, err := PolicyNamed(name)
	require.NoError(t, err)
	return p
}

func TestPolicyNamed(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"max", "half", "push"} {
		_, err := PolicyNamed(name)
		assert.NoError(t, err)
	}
	_, err := PolicyNamed("martingale")
	assert.Error(t, err)
}

func TestPushPolicyLeavesOnlyAntes(t *testing.T) {
	t.Parallel()
	sim := New(Config{
		Rounds:   50,
		Players:  2,
		MaxBet:   50,
		Bankroll: 100,
		Policy:   mustPolicy(t, "push"),
		Seed:     1,
		Workers:  4,
		Logger:   log.Default(),
	})

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 50, stats.Rounds)
	assert.Equal(t, 100, stats.Pushes)
	assert.Zero(t, stats.Wins)
	assert.Zero(t, stats.Losses)
	// Two antes of $5 per round, nothing else
	assert.InDelta(t, 50*2*5.0, stats.NetHouse, 1e-9)
	assert.InDelta(t, 10.0, stats.Mean(), 1e-9)
	assert.Zero(t, stats.Variance())
}

func TestSimulationIsReproducible(t *testing.T) {
	t.Parallel()
	cfg := Config{
		Rounds:   200,
		Players:  3,
		MaxBet:   50,
		Bankroll: 100,
		Policy:   mustPolicy(t, "max"),
		Seed:     4242,
		Workers:  8,
		Logger:   log.Default(),
	}

	a, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	b, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.Rounds, b.Rounds)
	assert.Equal(t, a.Wins, b.Wins)
	assert.Equal(t, a.Losses, b.Losses)
	assert.Equal(t, a.Pushes, b.Pushes)
	// Float accumulation order varies between worker schedules
	assert.InDelta(t, a.NetHouse, b.NetHouse, 1e-6)
}

func TestEveryBetIsSettled(t *testing.T) {
	t.Parallel()
	stats, err := New(Config{
		Rounds:   100,
		Players:  4,
		MaxBet:   50,
		Bankroll: 100,
		Policy:   mustPolicy(t, "half"),
		Seed:     7,
		Workers:  4,
		Logger:   log.Default(),
	}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 100*4, stats.Wins+stats.Losses+stats.Pushes)
	assert.Positive(t, stats.StdDev(), "house profit should vary between rounds")
}

func TestCancelledContextStopsRun(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{
		Rounds:   100000,
		MaxBet:   50,
		Bankroll: 100,
		Policy:   mustPolicy(t, "push"),
		Seed:     1,
		Logger:   log.Default(),
	}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatisticsSummary(t *testing.T) {
	t.Parallel()
	var s Statistics
	s.Add(RoundResult{HouseProfit: 25, Wins: 0, Losses: 1})
	s.Add(RoundResult{HouseProfit: -15, Wins: 1, Losses: 0, Payouts: 40})

	assert.Equal(t, 2, s.Rounds)
	assert.InDelta(t, 5.0, s.Mean(), 1e-9)
	assert.InDelta(t, 0.5, s.WinRate(), 1e-9)
	assert.Contains(t, s.Summary(), "Net house profit:  $10.00")
	assert.Contains(t, s.Summary(), "Rounds:            2")
}
