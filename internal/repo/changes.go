package repo

import (
	mapset "github.com/deckarep/golang-set/v2"

	svcsErrors "github.com/keshon/svcs/internal/errors"
	"github.com/keshon/svcs/internal/repo/meta"
	"github.com/keshon/svcs/internal/repo/store/snapshot"
)

// HasChanges compares the tracked files with the snapshot HEAD points at.
// Without commits everything counts as changed. A tracked file that can no
// longer be read is an error, not a change.
func (r *Repository) HasChanges(head meta.Head, tracked []string) (bool, error) {
	if head.NoCommits() {
		r.Log.Debug("no commits yet, treating as changed")
		return true, nil
	}

	snaps := r.Store.SnapshotCtx
	stored, err := snaps.Files(head.LastID)
	if err != nil {
		return false, err
	}
	if len(stored) != len(tracked) {
		r.Log.Debug("file count differs", "snapshot", len(stored), "tracked", len(tracked))
		return true, nil
	}

	inSnapshot := mapset.NewThreadUnsafeSet(stored...)
	for _, rel := range tracked {
		if !inSnapshot.Contains(rel) {
			r.Log.Debug("not in snapshot", "path", rel)
			return true, nil
		}

		work, err := r.FS.Stat(r.Config.WorkPath(rel))
		if err != nil {
			return false, svcsErrors.NewIOError("stat", rel, err)
		}
		old, err := r.FS.Stat(snaps.Path(head.LastID, rel))
		if err != nil {
			return false, svcsErrors.NewIOError("stat", snaps.Path(head.LastID, rel), err)
		}
		if work.Size() != old.Size() {
			r.Log.Debug("size differs", "path", rel)
			return true, nil
		}
	}

	current, err := snapshot.DigestFiles(r.FS, tracked, r.Config.WorkPath)
	if err != nil {
		return false, err
	}
	previous, err := snapshot.DigestFiles(r.FS, tracked, func(rel string) string {
		return snaps.Path(head.LastID, rel)
	})
	if err != nil {
		return false, err
	}

	for _, rel := range tracked {
		if current[rel] != previous[rel] {
			r.Log.Debug("content differs", "path", rel)
			return true, nil
		}
	}
	return false, nil
}
