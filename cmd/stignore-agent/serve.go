package main

import (
	"github.com/pescuma/stignore-agent/lib/server"
)

type ServeCmd struct {
	Port uint `help:"Port to listen to. Overrides the config file."`
}

func (c *ServeCmd) Run(ctx *context) error {
	port := c.Port
	if port == 0 {
		port = ctx.agent.Port()
	}

	return server.Run(ctx.agent, &server.Options{
		Port: port,
	})
}
