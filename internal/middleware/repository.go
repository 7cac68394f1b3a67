package middleware

import (
	"fmt"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/repo"
)

// WithRepository opens the repository before the command runs and hands it
// over through the context.
func WithRepository() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) (repo.Result, error) {
				if ctx.Repo == nil {
					if ctx.Env == nil {
						return repo.Result{}, fmt.Errorf("no environment for %s", cmd.Name())
					}
					r, err := ctx.Env.Repository()
					if err != nil {
						return repo.Result{}, fmt.Errorf("open repository: %w", err)
					}
					ctx.Repo = r
				}
				return cmd.Run(ctx)
			},
		}
	}
}
