package file

import (
	"fmt"
	"path/filepath"

	svcsErrors "github.com/keshon/svcs/internal/errors"
	"github.com/keshon/svcs/internal/progress"
	"github.com/keshon/svcs/internal/util"
)

// RestoreFilesToWorkingTree copies each snapshot file (paths relative to
// srcDir) over its working-tree counterpart. Files not listed are left alone.
func (fc *FileContext) RestoreFilesToWorkingTree(srcDir string, files []string, label string) error {
	bar := progress.NewProgress(len(files), fmt.Sprintf("Restoring %s", label), fc.Progress)
	defer bar.Finish()

	for _, rel := range files {
		src := filepath.Join(srcDir, filepath.FromSlash(rel))
		dst := fc.Config.WorkPath(rel)
		if err := util.CopyFile(fc.FS, src, dst); err != nil {
			return svcsErrors.NewIOError("restore", rel, err)
		}
		fc.Log.Debug("restored", "path", rel, "from", label)
		bar.Increment()
	}
	return nil
}
