package help

import (
	"fmt"
	"strings"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/middleware"
	"github.com/keshon/svcs/internal/repo"
)

// listed is the order of the help page.
var listed = []string{"config", "add", "log", "commit", "checkout"}

type Command struct{}

func (c *Command) Name() string      { return "help" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "help [command]" }
func (c *Command) Brief() string     { return "Show help for commands." }
func (c *Command) Help() string {
	return `Display help information for commands.

Usage:
  help          list all commands
  help <name>   show detailed help for a specific command`
}
func (c *Command) Subcommands() []command.Command { return nil }

func (c *Command) Run(ctx *command.Context) (repo.Result, error) {
	if name := ctx.Arg(); name != "" {
		return commandHelp(strings.ToLower(name)), nil
	}
	return repo.Result{Kind: repo.OK, Text: Page()}, nil
}

// Page renders the command list.
func Page() string {
	var b strings.Builder
	b.WriteString("These are SVCS commands:")
	for _, name := range listed {
		brief := "-"
		if cmd, ok := command.GetCommand(name); ok {
			brief = cmd.Brief()
		}
		fmt.Fprintf(&b, "\n%-11s%s", name, brief)
	}
	return b.String()
}

func commandHelp(name string) repo.Result {
	cmd, ok := command.GetCommand(name)
	if !ok {
		return command.Unknown(name)
	}
	text := cmd.Help()
	if usage := cmd.Usage(); usage != "" && !strings.Contains(text, "Usage:") {
		text = "Usage: " + usage + "\n\n" + text
	}
	return repo.Result{Kind: repo.OK, Text: text}
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDebugArgsPrint(),
		),
	)
}
