package snapshot

import (
	"io"
	"log/slog"

	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/logger"
)

// SnapshotContext manages the per-commit copies under commits/.
type SnapshotContext struct {
	Config *config.RepoConfig
	FS     fs.FS
	Log    *slog.Logger

	// Progress receives a progress bar while copying; nil disables it.
	Progress io.Writer
}

func NewSnapshotContext(cfg *config.RepoConfig, fsys fs.FS, log *slog.Logger) *SnapshotContext {
	if log == nil {
		log = logger.Discard()
	}
	return &SnapshotContext{Config: cfg, FS: fsys, Log: log}
}
