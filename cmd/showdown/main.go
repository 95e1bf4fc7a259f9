package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Verbose bool             `help:"Enable debug logging"`

	Classify ClassifyCmd `cmd:"" help:"Classify the best five-card combination in a card group"`
	Compare  CompareCmd  `cmd:"" help:"Classify two card groups and report their order"`
	Odds     OddsCmd     `cmd:"" help:"Estimate showdown equity by Monte Carlo simulation"`
	Scenario ScenarioCmd `cmd:"" help:"Run a showdown scenario file and rank its seats"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("showdown"),
		kong.Description("Texas Hold'em combination detection and ranking"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
