// Package tui is the interactive bubbletea front-end for a table. It reads
// controller state and issues bets; all rules live in internal/game.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/thirtytwo/internal/cue"
	"github.com/lox/thirtytwo/internal/display"
	"github.com/lox/thirtytwo/internal/game"
)

type phase int

const (
	phaseBetting phase = iota
	phaseBanner
	phaseSummary
)

// command is a parsed line from the bet input
type command struct {
	kind   commandKind
	amount float64
}

type commandKind int

const (
	commandBet commandKind = iota
	commandEnd
	commandQuit
	commandInvalid
)

// bannerElapsedMsg moves the display on after a settlement banner
type bannerElapsedMsg struct{}

// Model is the bubbletea model for a table
type Model struct {
	table    *game.Table
	cues     *cue.Scheduler
	renderer *display.Renderer
	logger   *log.Logger

	betInput textinput.Model
	phase    phase
	banner   string
	status   string
	width    int
	quitting bool
}

// NewModel creates a TUI over an already-started round
func NewModel(table *game.Table, cues *cue.Scheduler, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("bet amount (0 or empty to push, max %s) · end · quit", game.FormatMoney(table.MaxBet))
	ti.Focus()
	ti.CharLimit = 16
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	return &Model{
		table:    table,
		cues:     cues,
		renderer: display.NewRenderer(),
		logger:   logger.WithPrefix("tui"),
		betInput: ti,
		phase:    phaseBetting,
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case bannerElapsedMsg:
		if m.table.RoundActive {
			m.phase = phaseBetting
			m.banner = ""
			m.betInput.Reset()
			return m, textinput.Blink
		}
		m.phase = phaseSummary
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m.quit()
		case tea.KeyEnter:
			return m.handleEnter()
		}
		if m.phase == phaseSummary {
			if msg.String() == "n" {
				return m.nextRound()
			}
			return m.quit()
		}
	}

	if m.phase == phaseBetting {
		var cmd tea.Cmd
		m.betInput, cmd = m.betInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.phase == phaseSummary {
		return m.nextRound()
	}
	if m.phase != phaseBetting {
		return m, nil
	}

	c := parseCommand(m.betInput.Value())
	switch c.kind {
	case commandQuit:
		return m.quit()

	case commandEnd:
		m.table.EndRound()
		// Stale cues must not fire into the summary
		m.cues.Clear()
		m.phase = phaseSummary
		m.status = ""
		return m, nil

	case commandInvalid:
		m.status = "Please enter a number."
		return m, nil
	}

	ev, err := m.table.PlaceBet(m.table.ActiveIndex, c.amount)
	if err != nil {
		m.status = err.Error()
		m.betInput.Reset()
		return m, nil
	}

	m.status = ""
	m.banner = m.renderer.OutcomeBanner(*ev)
	m.phase = phaseBanner
	m.betInput.Reset()
	return m, m.scheduleReveal()
}

// scheduleReveal arms the summary-reveal timer on the cue scheduler and
// returns a command that delivers the elapsed message once it fires. A
// cleared scheduler swallows the reveal along with any pending tones.
func (m *Model) scheduleReveal() tea.Cmd {
	revealed := make(chan struct{})
	m.cues.RevealSummary(cue.SummaryDelay, func() {
		close(revealed)
	})
	return func() tea.Msg {
		<-revealed
		return bannerElapsedMsg{}
	}
}

// nextRound starts a fresh round from the summary screen
func (m *Model) nextRound() (tea.Model, tea.Cmd) {
	if err := m.table.StartRound(); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.phase = phaseBetting
	m.banner = ""
	m.status = ""
	m.betInput.Reset()
	return m, textinput.Blink
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.cues.Clear()
	return m, tea.Quit
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4")).
		Padding(0, 1).
		Bold(true).
		Render(" ♠ ♥ 32+ ♦ ♣ ")
	b.WriteString(title)
	b.WriteString("\n\n")

	if m.phase == phaseSummary {
		b.WriteString(m.renderer.Summary(m.table))
		b.WriteString("\n\nPress n or enter for another round, any other key to exit.\n")
		if m.status != "" {
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF6B6B")).
				Render(m.status))
			b.WriteString("\n")
		}
		return b.String()
	}

	b.WriteString(m.renderer.Table(m.table))
	b.WriteString("\n\n")

	if m.banner != "" {
		b.WriteString(m.banner)
		b.WriteString("\n")
	}

	if m.phase == phaseBetting {
		if p := m.table.ActivePlayer(); p != nil {
			b.WriteString(fmt.Sprintf("%s, your first card is %s.\n",
				p.Name, p.FirstCard()))
		}
		b.WriteString(m.betInput.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Render(m.status))
		b.WriteString("\n")
	}
	return b.String()
}

// parseCommand interprets a line of bet input. An empty line or explicit
// "push" is a zero bet.
func parseCommand(raw string) command {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "", "push", "p":
		return command{kind: commandBet, amount: 0}
	case "end", "e":
		return command{kind: commandEnd}
	case "quit", "q", "exit":
		return command{kind: commandQuit}
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return command{kind: commandInvalid}
	}
	return command{kind: commandBet, amount: amount}
}
