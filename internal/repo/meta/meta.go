package meta

import (
	"fmt"

	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"
)

// MetaContext owns the small text files of a repository: the username,
// the commit log and, derived from it, HEAD.
type MetaContext struct {
	Config *config.RepoConfig
	FS     fs.FS
}

// NewMeta ensures the repository root exists and returns a context over it.
// Files are created lazily by the first write.
func NewMeta(cfg *config.RepoConfig, fsys fs.FS) (*MetaContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil RepoConfig provided")
	}
	if fsys == nil {
		fsys = fs.NewOSFS()
	}

	if !IsMetaExists(cfg, fsys) {
		if err := fsys.MkdirAll(cfg.RepoRoot, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create dir %q: %w", cfg.RepoRoot, err)
		}
	}

	return &MetaContext{Config: cfg, FS: fsys}, nil
}

// IsMetaExists checks if the repository root is already in place.
func IsMetaExists(cfg *config.RepoConfig, fsys fs.FS) bool {
	return fsys.IsDir(cfg.RepoRoot)
}

// readOptional returns the file content, or nil when the file was never written.
func (mc *MetaContext) readOptional(path string) ([]byte, error) {
	data, err := mc.FS.ReadFile(path)
	if err != nil {
		if mc.FS.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}
