package store

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/repo/store/file"
	"github.com/keshon/svcs/internal/repo/store/snapshot"
)

// StoreContext is the high-level store abstraction that unifies all subsystems.
type StoreContext struct {
	Config      *config.RepoConfig
	FileCtx     *file.FileContext
	SnapshotCtx *snapshot.SnapshotContext
}

// NewStoreOptions allows optional dependency injection.
type NewStoreOptions struct {
	FS          fs.FS
	Log         *slog.Logger
	Progress    io.Writer
	FileCtx     *file.FileContext
	SnapshotCtx *snapshot.SnapshotContext
}

// NewStore creates a store with optional dependencies.
func NewStore(cfg *config.RepoConfig, opts *NewStoreOptions) (*StoreContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil RepoConfig provided")
	}
	if opts == nil {
		opts = &NewStoreOptions{}
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = fs.NewOSFS()
	}

	fileCtx := opts.FileCtx
	if fileCtx == nil {
		fileCtx = file.NewFileContext(cfg, fsys, opts.Log)
		fileCtx.Progress = opts.Progress
	}

	snapshotCtx := opts.SnapshotCtx
	if snapshotCtx == nil {
		snapshotCtx = snapshot.NewSnapshotContext(cfg, fsys, opts.Log)
		snapshotCtx.Progress = opts.Progress
	}

	if !isStoreExists(cfg, fsys) {
		if err := createStoreStructure(cfg, fsys); err != nil {
			return nil, err
		}
	}

	return &StoreContext{
		Config:      cfg,
		FileCtx:     fileCtx,
		SnapshotCtx: snapshotCtx,
	}, nil
}

// createStoreStructure builds required dirs via injected FS
func createStoreStructure(cfg *config.RepoConfig, fsys fs.FS) error {
	dirs := []string{
		cfg.RepoRoot,
		cfg.CommitsDir(),
	}
	for _, d := range dirs {
		if err := fsys.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("create store dir %q: %w", d, err)
		}
	}
	return nil
}

func isStoreExists(cfg *config.RepoConfig, fsys fs.FS) bool {
	return fsys.IsDir(cfg.CommitsDir())
}
