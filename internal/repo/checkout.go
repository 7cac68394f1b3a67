package repo

import (
	"strings"

	"github.com/keshon/svcs/internal/repo/store/snapshot"
)

// Checkout writes every file of snapshot id back into the working tree.
// Files the snapshot does not contain are left as they are.
func (r *Repository) Checkout(id string) (Result, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return result(MissingArgument, msgNoCommitID), nil
	}

	snaps := r.Store.SnapshotCtx
	if !snapshot.ValidID(id) || !snaps.Exists(id) {
		r.Log.Debug("no such snapshot", "id", id)
		return result(NotFound, msgNoSuchCommit), nil
	}

	files, err := snaps.Files(id)
	if err != nil {
		return Result{}, err
	}
	if err := r.Store.FileCtx.RestoreFilesToWorkingTree(r.Config.SnapshotDir(id), files, id); err != nil {
		return Result{}, err
	}
	return result(OK, msgSwitched, id), nil
}
