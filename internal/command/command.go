package command

import (
	"github.com/keshon/svcs/internal/repo"
)

// Command represents a cli command
type Command interface {
	Name() string
	Aliases() []string
	Usage() string
	Brief() string
	Help() string
	Subcommands() []Command
	Run(ctx *Context) (repo.Result, error)
}

// Context represents a cli context
type Context struct {
	Args []string
	Env  *Env

	// Repo is set by the repository middleware.
	Repo *repo.Repository
}

// Arg returns the first argument or "".
func (c *Context) Arg() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}
