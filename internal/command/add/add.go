package add

import (
	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/middleware"
	"github.com/keshon/svcs/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "add" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "add [path]" }
func (c *Command) Brief() string     { return "Add a file to the index." }
func (c *Command) Help() string {
	return `Track a file so that it is included in every following commit.

Usage:
  add          list tracked files
  add <path>   start tracking <path> (relative to the working tree)

Paths matched by .svcsignore and the repository directory itself are refused.`
}
func (c *Command) Subcommands() []command.Command { return nil }

func (c *Command) Run(ctx *command.Context) (repo.Result, error) {
	return ctx.Repo.Add(ctx.Arg())
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
