package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`

	Play     PlayCmd     `cmd:"" default:"withargs" help:"Play rounds of 32+ at the terminal"`
	Simulate SimulateCmd `cmd:"" help:"Estimate the house edge over many seeded rounds"`
	Deal     DealCmd     `cmd:"" help:"Deal and settle a single round non-interactively"`
}

func main() {
	// Optional .env for local overrides; missing file is fine
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("thirtytwo"),
		kong.Description("The 32+ betting card game: four cards, score 32 or better to double your bet"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
