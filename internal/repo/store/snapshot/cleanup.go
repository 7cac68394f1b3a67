package snapshot

import (
	"path/filepath"
	"strings"

	"github.com/keshon/svcs/internal/config"
)

// CleanupTemp removes staging directories left behind by an interrupted
// commit. It returns how many were removed.
func (sc *SnapshotContext) CleanupTemp() (int, error) {
	root := sc.Config.CommitsDir()
	entries, err := sc.FS.ReadDir(root)
	if err != nil {
		if sc.FS.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), config.StagingPrefix) {
			continue
		}
		p := filepath.Join(root, e.Name())
		if err := sc.FS.RemoveAll(p); err != nil {
			return removed, err
		}
		sc.Log.Debug("removed stale staging dir", "path", p)
		removed++
	}
	return removed, nil
}
