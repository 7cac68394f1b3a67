package file

import (
	"io"
	"log/slog"

	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/logger"
)

// FileContext works on the working tree and the tracked-file index.
type FileContext struct {
	Config *config.RepoConfig
	FS     fs.FS
	Log    *slog.Logger

	// Progress receives a progress bar while restoring; nil disables it.
	Progress io.Writer
}

func NewFileContext(cfg *config.RepoConfig, fsys fs.FS, log *slog.Logger) *FileContext {
	if log == nil {
		log = logger.Discard()
	}
	return &FileContext{Config: cfg, FS: fsys, Log: log}
}
