package middleware

import (
	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/repo"
)

// WithDebugArgsPrint logs the command and its arguments at debug level.
func WithDebugArgsPrint() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) (repo.Result, error) {
				if ctx.Env != nil && ctx.Env.Log != nil {
					ctx.Env.Log.Debug("run", "command", cmd.Name(), "args", ctx.Args)
				}
				return cmd.Run(ctx)
			},
		}
	}
}
