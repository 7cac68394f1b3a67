package command

import (
	"io"
	"log/slog"
	"sync"

	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/logger"
	"github.com/keshon/svcs/internal/repo"
)

// Env is what every command run in one process shares.
type Env struct {
	Settings config.Settings
	Log      *slog.Logger
	Out      io.Writer
	Err      io.Writer

	// FS defaults to the real filesystem.
	FS fs.FS

	once sync.Once
	repo *repo.Repository
	err  error
}

// NewEnv builds an Env writing results to out and logs to errOut.
func NewEnv(s config.Settings, out, errOut io.Writer) *Env {
	return &Env{
		Settings: s,
		Log:      logger.NewWithOutput(s.Verbose, errOut),
		Out:      out,
		Err:      errOut,
	}
}

func (e *Env) logger() *slog.Logger {
	if e.Log == nil {
		e.Log = logger.Discard()
	}
	return e.Log
}

// Repository opens the configured repository on first use.
func (e *Env) Repository() (*repo.Repository, error) {
	e.once.Do(func() {
		opts := &repo.Options{FS: e.FS, Log: e.logger()}
		if e.Settings.Progress {
			opts.Progress = e.Err
		}
		e.repo, e.err = repo.NewRepository(e.Settings.Repo(), opts)
	})
	return e.repo, e.err
}
