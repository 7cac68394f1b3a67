package repo

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/logger"
	"github.com/keshon/svcs/internal/repo/meta"
	"github.com/keshon/svcs/internal/repo/store"
)

// Repository is an opened repository: its layout, the filesystem it lives
// on and the meta and store layers built over them.
type Repository struct {
	Config *config.RepoConfig
	FS     fs.FS
	Meta   *meta.MetaContext
	Store  *store.StoreContext
	Log    *slog.Logger

	now func() time.Time
}

// Options customise NewRepository. The zero value opens the repository on
// the real filesystem with logging discarded.
type Options struct {
	FS       fs.FS
	Log      *slog.Logger
	Progress io.Writer
	Now      func() time.Time
}

// NewRepository opens the repository described by cfg, creating its
// directories if they are missing. No file is written until a command
// changes state.
func NewRepository(cfg *config.RepoConfig, opts *Options) (*Repository, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil RepoConfig provided")
	}
	if opts == nil {
		opts = &Options{}
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = fs.NewOSFS()
	}
	log := opts.Log
	if log == nil {
		log = logger.Discard()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m, err := meta.NewMeta(cfg, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to init meta: %w", err)
	}

	s, err := store.NewStore(cfg, &store.NewStoreOptions{
		FS:       fsys,
		Log:      log,
		Progress: opts.Progress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	log.Debug("repository opened", "root", cfg.RepoRoot, "work_tree", cfg.WorkingTreeDir)

	return &Repository{
		Config: cfg,
		FS:     fsys,
		Meta:   m,
		Store:  s,
		Log:    log,
		now:    now,
	}, nil
}

// NewRepositoryByPath opens a repository on the real filesystem.
func NewRepositoryByPath(workTree, repoDir string) (*Repository, error) {
	return NewRepository(config.NewRepoConfig(workTree, repoDir), nil)
}
