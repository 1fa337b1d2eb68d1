// Package config loads table configuration from an optional HCL file.
// CLI flags override anything set here.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/thirtytwo/internal/game"
)

// Config represents the complete game configuration
type Config struct {
	Table   TableSettings `hcl:"table,block"`
	Players []string      `hcl:"players,optional"`
	UI      UISettings    `hcl:"ui,block"`
}

// TableSettings contains the money parameters of the table
type TableSettings struct {
	MaxBet   float64 `hcl:"max_bet,optional"`
	Bankroll float64 `hcl:"bankroll,optional"`
	Ante     float64 `hcl:"ante,optional"` // 0 derives 10% of max_bet
	Jokers   bool    `hcl:"jokers,optional"`
	Seed     *int64  `hcl:"seed,optional"`
}

// UISettings contains presentation settings
type UISettings struct {
	Sound    bool   `hcl:"sound,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// Default returns the default game configuration
func Default() *Config {
	return &Config{
		Table: TableSettings{
			MaxBet:   50,
			Bankroll: 200,
		},
		Players: []string{"Player 1"},
		UI: UISettings{
			Sound:    true,
			LogLevel: "warn",
			LogFile:  "thirtytwo.log",
		},
	}
}

// Load loads configuration from an HCL file. A missing file is not an
// error; it returns the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := Default()
	if cfg.Table.MaxBet == 0 {
		cfg.Table.MaxBet = defaults.Table.MaxBet
	}
	if cfg.Table.Bankroll == 0 {
		cfg.Table.Bankroll = defaults.Table.Bankroll
	}
	if len(cfg.Players) == 0 {
		cfg.Players = defaults.Players
	}
	if cfg.UI.LogLevel == "" {
		cfg.UI.LogLevel = defaults.UI.LogLevel
	}
	if cfg.UI.LogFile == "" {
		cfg.UI.LogFile = defaults.UI.LogFile
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Table.MaxBet <= 0 {
		return fmt.Errorf("max_bet must be positive, got %v", c.Table.MaxBet)
	}
	if c.Table.Bankroll <= 0 {
		return fmt.Errorf("bankroll must be positive, got %v", c.Table.Bankroll)
	}
	if c.Table.Ante < 0 {
		return fmt.Errorf("ante cannot be negative, got %v", c.Table.Ante)
	}
	if len(c.Players) == 0 || len(c.Players) > game.MaxPlayers {
		return fmt.Errorf("between 1 and %d players required, got %d", game.MaxPlayers, len(c.Players))
	}
	switch c.UI.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.UI.LogLevel)
	}
	return nil
}

// TableConfig converts the file settings into a controller configuration
func (c *Config) TableConfig() game.TableConfig {
	return game.TableConfig{
		MaxBet:   c.Table.MaxBet,
		Bankroll: c.Table.Bankroll,
		Ante:     c.Table.Ante,
		Seed:     c.Table.Seed,
		Jokers:   c.Table.Jokers,
		Names:    c.Players,
	}
}
