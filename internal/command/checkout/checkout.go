package checkout

import (
	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/middleware"
	"github.com/keshon/svcs/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "checkout" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "checkout <commit-id>" }
func (c *Command) Brief() string     { return "Restore a file." }
func (c *Command) Help() string {
	return `Write the files of a commit back into the working tree.

Usage:
  checkout <commit-id>

Files the commit does not contain are left untouched.`
}
func (c *Command) Subcommands() []command.Command { return nil }

func (c *Command) Run(ctx *command.Context) (repo.Result, error) {
	return ctx.Repo.Checkout(ctx.Arg())
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
