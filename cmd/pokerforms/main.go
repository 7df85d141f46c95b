package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version     kong.VersionFlag `short:"v" help:"Show version"`
	Generate    GenerateCmd      `cmd:"" default:"withargs" help:"Generate one random scenario"`
	Batch       BatchCmd         `cmd:"" help:"Generate many scenarios and export them as a PHH session"`
	Stats       StatsCmd         `cmd:"" help:"Check the generator's distribution over many trials"`
	Form        FormCmd          `cmd:"" help:"Open the interactive scenario form"`
	Layout      LayoutCmd        `cmd:"" help:"Show the table layout for a button seat"`
	HandHistory HandHistoryCmd   `cmd:"hand-history" help:"Work with exported PHH session files"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerforms"),
		kong.Description("Random pot-limit Omaha hand scenarios for study forms"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
