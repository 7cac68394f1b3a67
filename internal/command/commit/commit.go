package commit

import (
	"strings"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/middleware"
	"github.com/keshon/svcs/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "commit" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "commit <message>" }
func (c *Command) Brief() string     { return "Save changes." }
func (c *Command) Help() string {
	return `Snapshot every tracked file if any of them changed since the last commit.

Usage:
  commit <message>

All arguments are joined into one message, so quoting is optional.
Line breaks in the message are folded into spaces. A lone --help or -h
shows this text instead of committing.`
}
func (c *Command) Subcommands() []command.Command { return nil }

func (c *Command) Run(ctx *command.Context) (repo.Result, error) {
	return ctx.Repo.Commit(strings.Join(ctx.Args, " "))
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
