package main

import (
	"github.com/alecthomas/kong"

	"github.com/pescuma/stignore-agent/lib/agent"
	"github.com/pescuma/stignore-agent/lib/consoles"
)

var cli struct {
	Config string `short:"c" default:"config.yml" help:"Config file with the base folder and the monitored content types." type:"path"`

	Serve    ServeCmd    `cmd:"" default:"1" help:"Start the HTTP API."`
	Discover DiscoverCmd `cmd:"" help:"List the monitored content types."`
	Listing  ListingCmd  `cmd:"" help:"List the folders of a content type with their sizes."`

	Stignore struct {
		Show   StignoreShowCmd   `cmd:"" default:"1" help:"Show the entries of a content type .stignore file."`
		Add    StignoreAddCmd    `cmd:"" help:"Add entries to a content type .stignore file."`
		Remove StignoreRemoveCmd `cmd:"" help:"Remove entries from a content type .stignore file."`
	} `cmd:""`

	Flush FlushCmd `cmd:"" help:"Show the folders that would be deleted by a flush, and delete them with --yes."`
}

type context struct {
	agent *agent.Agent
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	a, err := agent.NewFromFile(consoles.NewStdOutConsole(), cli.Config)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&context{
		agent: a,
	})
	ctx.FatalIfErrorf(err)
}
