package snapshot

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/keshon/svcs/internal/config"
	svcsErrors "github.com/keshon/svcs/internal/errors"
	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/progress"
	"github.com/keshon/svcs/internal/util"
)

// ValidID reports whether id can name a published snapshot: a single path
// element that is not a staging directory.
func ValidID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	if strings.ContainsAny(id, `/\`) || !filepath.IsLocal(id) {
		return false
	}
	return !strings.HasPrefix(id, config.StagingPrefix)
}

// Exists reports whether a published snapshot with id is present.
func (sc *SnapshotContext) Exists(id string) bool {
	return ValidID(id) && sc.FS.IsDir(sc.Config.SnapshotDir(id))
}

// Create copies the tracked files into commits/<id>. Files are staged in a
// temp directory and published with a single rename; on failure nothing is
// left under commits/.
func (sc *SnapshotContext) Create(id string, files []string) error {
	if !ValidID(id) {
		return fmt.Errorf("invalid snapshot id %q", id)
	}
	final := sc.Config.SnapshotDir(id)
	if sc.FS.Exists(final) {
		return fmt.Errorf("create %s: %w", id, svcsErrors.ErrSnapshotExists)
	}

	commits := sc.Config.CommitsDir()
	if err := sc.FS.MkdirAll(commits, 0o755); err != nil {
		return svcsErrors.NewIOError("mkdir", commits, err)
	}

	stage := filepath.Join(commits, config.StagingPrefix+id)
	_ = sc.FS.RemoveAll(stage)
	if err := sc.FS.MkdirAll(stage, 0o755); err != nil {
		return svcsErrors.NewIOError("mkdir", stage, err)
	}

	if err := sc.copyInto(stage, files, id); err != nil {
		_ = sc.FS.RemoveAll(stage)
		return err
	}

	if err := sc.FS.Rename(stage, final); err != nil {
		_ = sc.FS.RemoveAll(stage)
		return svcsErrors.NewIOError("publish", final, err)
	}
	sc.Log.Debug("snapshot published", "id", id, "files", len(files))
	return nil
}

func (sc *SnapshotContext) copyInto(stage string, files []string, id string) error {
	bar := progress.NewProgress(len(files), fmt.Sprintf("Snapshot %s", id), sc.Progress)
	defer bar.Finish()

	for _, rel := range files {
		src := sc.Config.WorkPath(rel)
		dst := filepath.Join(stage, filepath.FromSlash(rel))
		if err := util.CopyFile(sc.FS, src, dst); err != nil {
			return svcsErrors.NewIOError("copy", rel, err)
		}
		bar.Increment()
	}
	return nil
}

// Discard removes a published snapshot. It is only used to roll back a
// commit whose log record could not be written.
func (sc *SnapshotContext) Discard(id string) error {
	if !ValidID(id) {
		return fmt.Errorf("invalid snapshot id %q", id)
	}
	return sc.FS.RemoveAll(sc.Config.SnapshotDir(id))
}

// Files lists the regular files of a snapshot, relative and slash-separated.
func (sc *SnapshotContext) Files(id string) ([]string, error) {
	dir := sc.Config.SnapshotDir(id)
	var files []string
	err := fs.WalkFiles(sc.FS, dir, func(rel string) error {
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, svcsErrors.NewIOError("list", dir, err)
	}
	return files, nil
}

// Path returns where rel is stored inside snapshot id.
func (sc *SnapshotContext) Path(id, rel string) string {
	return filepath.Join(sc.Config.SnapshotDir(id), filepath.FromSlash(rel))
}
