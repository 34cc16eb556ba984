package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"1" help:"Play a game in the terminal"`
	Deals   DealsCmd         `cmd:"" help:"Deal many boards and report how playable they are"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("thyme"),
		kong.Description("A solitaire card game played on a three by three grid"),
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
