package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version   kong.VersionFlag `short:"v" help:"Show version"`
	RPS       RPSCmd           `cmd:"" name:"rps" help:"Play Rock-Paper-Scissors (with optional Lizard/Spock)"`
	TwentyOne TwentyOneCmd     `cmd:"" name:"twentyone" help:"Play Twenty-One against humans and robots"`
	Simulate  SimulateCmd      `cmd:"" help:"Play CPU-only tournaments in bulk and report statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("parlour"),
		kong.Description("Terminal parlour games: Rock-Paper-Scissors and Twenty-One"),
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
