package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/thirtytwo/internal/config"
	"github.com/lox/thirtytwo/internal/cue"
	"github.com/lox/thirtytwo/internal/display"
	"github.com/lox/thirtytwo/internal/game"
	"github.com/lox/thirtytwo/internal/tui"
)

// PlayCmd runs the interactive table
type PlayCmd struct {
	Config   string   `short:"c" help:"Path to HCL config file" default:"thirtytwo.hcl"`
	Players  []string `short:"p" help:"Player names (1-5), e.g. -p Alice -p Bob"`
	MaxBet   float64  `help:"Maximum bet amount"`
	Bankroll float64  `help:"Starting bankroll per player"`
	Ante     float64  `help:"Ante amount; defaults to 10% of max bet"`
	Seed     int64    `help:"RNG seed for a reproducible shuffle (0 for random)"`
	Jokers   bool     `help:"Play the 54-card variant: any joker pays 3x"`
	Mute     bool     `help:"Disable the terminal bell on game events"`
}

// Run starts the interactive game
func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	c.applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Log to a file so the TUI stays clean
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	level, err := log.ParseLevel(cfg.UI.LogLevel)
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})

	var sink game.CueSink = cue.NewBellSink(os.Stdout)
	if !cfg.UI.Sound {
		sink = cue.Discard{}
	}
	cues := cue.NewScheduler(quartz.NewReal(), sink, logger)

	table, err := game.NewTable(cfg.TableConfig(), logger, game.WithCueSink(cues))
	if err != nil {
		return err
	}
	if err := table.StartRound(); err != nil {
		if errors.Is(err, game.ErrNoEligiblePlayers) {
			return fmt.Errorf("round not started: %w", err)
		}
		return err
	}

	model := tui.NewModel(table, cues, logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	// Leave the round summary on the terminal after the alt screen closes
	fmt.Println(display.NewRenderer().Summary(table))
	return nil
}

func (c *PlayCmd) applyFlags(cfg *config.Config) {
	if len(c.Players) > 0 {
		cfg.Players = c.Players
	}
	if c.MaxBet > 0 {
		cfg.Table.MaxBet = c.MaxBet
	}
	if c.Bankroll > 0 {
		cfg.Table.Bankroll = c.Bankroll
	}
	if c.Ante > 0 {
		cfg.Table.Ante = c.Ante
	}
	if c.Seed != 0 {
		cfg.Table.Seed = &c.Seed
	}
	if c.Jokers {
		cfg.Table.Jokers = true
	}
	if c.Mute {
		cfg.UI.Sound = false
	}
}
