package config

import (
	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/middleware"
	"github.com/keshon/svcs/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "config" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "config [name]" }
func (c *Command) Brief() string     { return "Get and set a username." }
func (c *Command) Help() string {
	return `Show the username commits are recorded under, or set it.

Usage:
  config          print the current username
  config <name>   set the username`
}
func (c *Command) Subcommands() []command.Command { return nil }

func (c *Command) Run(ctx *command.Context) (repo.Result, error) {
	return ctx.Repo.Username(ctx.Arg())
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithRepository(),
			middleware.WithDebugArgsPrint(),
		),
	)
}
