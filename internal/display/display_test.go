package display

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/thirtytwo/cards"
	"github.com/lox/thirtytwo/internal/game"
)

func testTable(t *testing.T) *game.Table {
	t.Helper()
	s := int64(1)
	tbl, err := game.NewTable(game.TableConfig{
		Bankroll: 100,
		MaxBet:   50,
		Seed:     &s,
		Names:    []string{"Alice", "Bob"},
	}, log.Default())
	require.NoError(t, err)
	require.NoError(t, tbl.StartRound())
	return tbl
}

func TestTableViewShowsPlayersAndLedger(t *testing.T) {
	tbl := testTable(t)
	out := NewRenderer().Table(tbl)

	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "Max bet $50.00")
	assert.Contains(t, out, "Ante $5.00")
	assert.Contains(t, out, "House: $10.00 this round")
	assert.Contains(t, out, "2 still to act")
	assert.Contains(t, out, "[##]", "unrevealed cards stay face down")
}

func TestHandRevealProgression(t *testing.T) {
	tbl := testTable(t)
	r := NewRenderer()
	p := tbl.Players[0]

	// Active player shows only the first card
	line := r.PlayerLine(tbl, p)
	assert.Contains(t, line, p.FirstCard().String())
	assert.Contains(t, line, "[##]")

	p.Hand = []cards.Card{
		cards.NewCard(cards.Spades, cards.Ace),
		cards.NewCard(cards.Hearts, cards.King),
		cards.NewCard(cards.Diamonds, cards.Ten),
		cards.NewCard(cards.Clubs, cards.Four),
	}
	_, err := tbl.PlaceBet(0, 10)
	require.NoError(t, err)

	line = r.PlayerLine(tbl, p)
	assert.NotContains(t, line, "[##]", "all cards revealed after betting")
	assert.Contains(t, line, "Win")
}

func TestOutcomeBanners(t *testing.T) {
	r := NewRenderer()

	win := game.OutcomeEvent{PlayerName: "Alice", Outcome: game.OutcomeWin, Total: 35, Payout: 40, Multiplier: 2}
	assert.Contains(t, r.OutcomeBanner(win), "Score 35 pays $40.00")

	joker := game.OutcomeEvent{PlayerName: "Alice", Outcome: game.OutcomeWin, Payout: 30, Multiplier: 3}
	assert.Contains(t, r.OutcomeBanner(joker), "Joker!")

	lose := game.OutcomeEvent{PlayerName: "Bob", Outcome: game.OutcomeLose, Total: 28}
	assert.Contains(t, r.OutcomeBanner(lose), "Score 28 below 32")

	push := game.OutcomeEvent{PlayerName: "Bob", Outcome: game.OutcomePush}
	assert.Contains(t, r.OutcomeBanner(push), "No bet placed")
}

func TestSummaryListsEveryPlayer(t *testing.T) {
	tbl := testTable(t)
	_, err := tbl.PlaceBet(0, 0)
	require.NoError(t, err)
	_, err = tbl.PlaceBet(1, 0)
	require.NoError(t, err)

	out := NewRenderer().Summary(tbl)
	assert.Contains(t, out, "Round summary")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "Ante $5.00")
	assert.Contains(t, out, "0 of 2 players won", "both players pushed")
}
