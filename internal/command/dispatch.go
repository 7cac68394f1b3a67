package command

import (
	"fmt"

	"github.com/keshon/svcs/internal/repo"
	"github.com/keshon/svcs/internal/ui"
)

// HelpCommand is the name run when no verb is given.
const HelpCommand = "help"

// Unknown is the result for a verb no command answers to.
func Unknown(verb string) repo.Result {
	return repo.Result{Kind: repo.NotFound, Text: fmt.Sprintf("'%s' is not a SVCS command.", verb)}
}

// Execute runs cmd once. Errors never escape: they become an IoFailure
// result so the caller can keep going.
func Execute(env *Env, cmd Command, args []string) repo.Result {
	ctx := &Context{Args: args, Env: env}
	res, err := cmd.Run(ctx)
	if err != nil {
		env.logger().Error("command failed", "command", cmd.Name(), "error", err)
		return repo.Failure(err)
	}
	return res
}

// Dispatch resolves args[0] against the registered commands and runs it.
// No args, --help and -h run the help command.
func Dispatch(env *Env, args []string) repo.Result {
	if len(args) == 0 {
		args = []string{HelpCommand}
	}
	if args[0] == "--help" || args[0] == "-h" {
		args = append([]string{HelpCommand}, args[1:]...)
	}
	node, rest, err := ResolveCommand(args)
	if err != nil {
		return Unknown(args[0])
	}
	if node.Cmd.Name() != HelpCommand && HelpRequested(rest) {
		return Dispatch(env, []string{HelpCommand, node.Cmd.Name()})
	}
	return Execute(env, node.Cmd, rest)
}

// HelpRequested reports whether args are a lone --help or -h.
func HelpRequested(args []string) bool {
	return len(args) == 1 && (args[0] == "--help" || args[0] == "-h")
}

// Print writes res to the environment's output.
func Print(env *Env, res repo.Result) {
	if err := ui.Print(env.Out, res); err != nil {
		env.logger().Error("write result", "error", err)
	}
}
