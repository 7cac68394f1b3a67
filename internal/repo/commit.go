package repo

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/keshon/svcs/internal/repo/meta"
	"github.com/keshon/svcs/internal/repo/store/snapshot"
)

// Commit snapshots the tracked files if they changed since HEAD and
// prepends a record to the log. The snapshot is published before the log
// is written; if either step fails nothing is left behind.
func (r *Repository) Commit(message string) (Result, error) {
	message = foldLines(message)
	if message == "" {
		return result(MissingArgument, msgNoMessage), nil
	}

	author, err := r.Meta.GetUsername()
	if err != nil {
		return Result{}, err
	}
	if author == "" {
		return result(Unconfigured, msgWhoAreYou), nil
	}

	snaps := r.Store.SnapshotCtx
	if n, err := snaps.CleanupTemp(); err != nil {
		r.Log.Warn("could not remove stale staging dirs", "error", err)
	} else if n > 0 {
		r.Log.Debug("removed stale staging dirs", "count", n)
	}

	tracked, err := r.Store.FileCtx.LoadIndex()
	if err != nil {
		return Result{}, err
	}
	head, err := r.Meta.GetHead()
	if err != nil {
		return Result{}, err
	}

	changed, err := r.HasChanges(head, tracked)
	if err != nil {
		return Result{}, err
	}
	if !changed {
		return result(NoOp, msgNothing), nil
	}

	id, err := r.newCommitID(author, message, tracked)
	if err != nil {
		return Result{}, err
	}

	if err := snaps.Create(id, tracked); err != nil {
		return Result{}, err
	}

	rec := meta.Record{ID: id, Author: author, Message: message}
	if err := r.Meta.PrependRecord(rec); err != nil {
		if derr := snaps.Discard(id); derr != nil {
			r.Log.Error("could not roll back snapshot", "id", id, "error", derr)
		}
		return Result{}, err
	}

	r.Log.Debug("committed", "id", id, "parent", head.String(), "files", len(tracked))
	return result(OK, msgCommitted), nil
}

// foldLines trims s and joins its lines with single spaces. The log and
// config.txt keep one value per line.
func foldLines(s string) string {
	lines := strings.FieldsFunc(s, func(c rune) bool { return c == '\n' || c == '\r' })
	parts := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, " ")
}

// newCommitID derives a 32-character id from the clock, the author, the
// message and the tracked content. It is regenerated on the rare clash with
// an existing snapshot.
func (r *Repository) newCommitID(author, message string, tracked []string) (string, error) {
	digests, err := snapshot.DigestFiles(r.FS, tracked, r.Config.WorkPath)
	if err != nil {
		return "", err
	}
	content := snapshot.HashDigests(digests).Bytes()

	for attempt := uint64(0); ; attempt++ {
		buf := make([]byte, 0, 16+len(author)+len(message)+len(content)+2)
		buf = binary.BigEndian.AppendUint64(buf, uint64(r.now().UnixNano()))
		buf = binary.BigEndian.AppendUint64(buf, attempt)
		buf = append(buf, author...)
		buf = append(buf, 0)
		buf = append(buf, message...)
		buf = append(buf, 0)
		buf = append(buf, content[:]...)

		sum := xxh3.Hash128(buf).Bytes()
		id := hex.EncodeToString(sum[:])
		if !r.Store.SnapshotCtx.Exists(id) {
			return id, nil
		}
		r.Log.Debug("commit id clash, regenerating", "id", id)
	}
}
