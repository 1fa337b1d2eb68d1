// Package display renders game state with lipgloss. Everything here is
// read-only over the controller's state.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/thirtytwo/cards"
	"github.com/lox/thirtytwo/internal/game"
)

// Styles contains all styling for game rendering
type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	FaceDown  lipgloss.Style
	Active    lipgloss.Style
	Win       lipgloss.Style
	Lose      lipgloss.Style
	Push      lipgloss.Style
	Money     lipgloss.Style
	Muted     lipgloss.Style
}

// DefaultStyles returns the default rendering styles
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		RedCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		FaceDown: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Active: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Win: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Lose: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Push: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Money: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Renderer renders game state for the terminal
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer matched to the terminal's color support
func NewRenderer() *Renderer {
	lipgloss.SetColorProfile(termenv.ColorProfile())
	return &Renderer{styles: DefaultStyles()}
}

// Card renders a single face-up card
func (r *Renderer) Card(c cards.Card) string {
	if c.IsRed() {
		return r.styles.RedCard.Render(c.String())
	}
	return r.styles.BlackCard.Render(c.String())
}

// FaceDown renders a hidden card
func (r *Renderer) FaceDown() string {
	return r.styles.FaceDown.Render("[##]")
}

// Hand renders a player's hand: the first card is face up once their turn
// has come around, the rest stay hidden until they have bet.
func (r *Renderer) Hand(p *game.Player, turnReached bool) string {
	parts := make([]string, 0, len(p.Hand))
	for i, c := range p.Hand {
		switch {
		case p.RevealAll, i == 0 && turnReached:
			parts = append(parts, r.Card(c))
		default:
			parts = append(parts, r.FaceDown())
		}
	}
	return strings.Join(parts, " ")
}

// PlayerLine renders one player's row in the table view
func (r *Renderer) PlayerLine(t *game.Table, p *game.Player) string {
	marker := "  "
	name := p.Name
	if p.AwaitingBet {
		marker = r.styles.Active.Render("▶ ")
		name = r.styles.Active.Render(name)
	}

	turnReached := p.AwaitingBet || p.Settled && p.Outcome != game.OutcomeNoAnte
	line := fmt.Sprintf("%s%-20s %s  %s", marker, name,
		r.Hand(p, turnReached),
		r.styles.Money.Render(game.FormatMoney(p.Bankroll)))

	if p.Settled {
		line += "  " + r.outcomeTag(p.Outcome)
	}
	return line
}

func (r *Renderer) outcomeTag(o game.Outcome) string {
	switch o {
	case game.OutcomeWin:
		return r.styles.Win.Render(o.String())
	case game.OutcomeLose:
		return r.styles.Lose.Render(o.String())
	case game.OutcomePush:
		return r.styles.Push.Render(o.String())
	case game.OutcomeNoAnte:
		return r.styles.Muted.Render(o.String())
	default:
		return r.styles.Muted.Render(o.String())
	}
}

// Table renders the whole table: header, player rows, house ledger footer
func (r *Renderer) Table(t *game.Table) string {
	var b strings.Builder
	b.WriteString(r.styles.Header.Render(fmt.Sprintf("Max bet %s · Ante %s",
		game.FormatMoney(t.MaxBet), game.FormatMoney(t.Ante))))
	b.WriteString("\n\n")
	for _, p := range t.Players {
		b.WriteString(r.PlayerLine(t, p))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.HouseLine(t))
	if t.RoundActive {
		b.WriteString("\n")
		b.WriteString(r.styles.Muted.Render(fmt.Sprintf("%d still to act", len(t.UnsettledPlayers()))))
	}
	return b.String()
}

// HouseLine renders the house-profit footer
func (r *Renderer) HouseLine(t *game.Table) string {
	return r.styles.Muted.Render(fmt.Sprintf("House: %s this round · %s all time",
		game.FormatMoney(t.HouseRoundProfit), game.FormatMoney(t.HouseTotalProfit)))
}

// OutcomeBanner renders the settlement banner for a single bet
func (r *Renderer) OutcomeBanner(ev game.OutcomeEvent) string {
	switch ev.Outcome {
	case game.OutcomeWin:
		if ev.Multiplier == 3 {
			return r.styles.Win.Render(fmt.Sprintf("%s: Joker! Wins %s (3x bet).", ev.PlayerName, game.FormatMoney(ev.Payout)))
		}
		return r.styles.Win.Render(fmt.Sprintf("%s: Win! Score %d pays %s (2x bet).", ev.PlayerName, ev.Total, game.FormatMoney(ev.Payout)))
	case game.OutcomeLose:
		return r.styles.Lose.Render(fmt.Sprintf("%s: Lose. Score %d below %d.", ev.PlayerName, ev.Total, game.WinningTotal))
	case game.OutcomePush:
		return r.styles.Push.Render(fmt.Sprintf("%s: No bet placed; ante stays with the house.", ev.PlayerName))
	default:
		return ""
	}
}

// Summary renders the end-of-round summary, one line per player
func (r *Renderer) Summary(t *game.Table) string {
	var b strings.Builder
	b.WriteString(r.styles.Header.Render("Round summary"))
	b.WriteString("\n")
	for _, p := range t.Players {
		b.WriteString(fmt.Sprintf("- %s: %s | Bet %s | Ante %s | Payout %s | Bankroll %s\n",
			p.Name, r.outcomeTag(p.Outcome),
			game.FormatMoney(p.Bet), game.FormatMoney(p.AntePaid),
			game.FormatMoney(p.Payout), game.FormatMoney(p.Bankroll)))
	}
	if settled := t.SettledPlayers(); len(settled) > 0 {
		b.WriteString(r.styles.Muted.Render(fmt.Sprintf("%d of %d players won", len(t.Winners()), len(settled))))
		b.WriteString("\n")
	}
	b.WriteString(r.HouseLine(t))
	return b.String()
}
