package file

import (
	"path/filepath"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	svcsErrors "github.com/keshon/svcs/internal/errors"
	"github.com/keshon/svcs/internal/util"
)

// AddOutcome tells how AppendIndex treated a path.
type AddOutcome int

const (
	Tracked AddOutcome = iota
	AlreadyTracked
	Ignored
	NotFound
)

func (o AddOutcome) String() string {
	switch o {
	case Tracked:
		return "tracked"
	case AlreadyTracked:
		return "already tracked"
	case Ignored:
		return "ignored"
	case NotFound:
		return "not found"
	}
	return "unknown"
}

// CleanPath turns user input into an index entry: slash-separated and
// relative to the working tree. ok is false for empty or escaping paths.
func CleanPath(p string) (clean string, ok bool) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", false
	}
	p = filepath.Clean(filepath.FromSlash(p))
	if p == "." || !filepath.IsLocal(p) {
		return "", false
	}
	return filepath.ToSlash(p), true
}

// LoadIndex returns tracked paths in insertion order. Repeated lines in an
// older index are collapsed, the first occurrence wins.
func (fc *FileContext) LoadIndex() ([]string, error) {
	path := fc.Config.IndexFile()
	data, err := fc.FS.ReadFile(path)
	if err != nil {
		if fc.FS.IsNotExist(err) {
			return nil, nil
		}
		return nil, svcsErrors.NewIOError("read", path, err)
	}

	seen := mapset.NewThreadUnsafeSet[string]()
	var paths []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || seen.Contains(line) {
			continue
		}
		seen.Add(line)
		paths = append(paths, line)
	}
	return paths, nil
}

// AppendIndex adds p to the end of the index. The returned path is the
// cleaned form of p.
func (fc *FileContext) AppendIndex(p string) (AddOutcome, string, error) {
	clean, ok := CleanPath(p)
	if !ok {
		return NotFound, p, nil
	}

	ignore, err := NewIgnore(fc.FS, fc.Config)
	if err != nil {
		return NotFound, clean, err
	}
	if ignore.Match(clean) {
		fc.Log.Debug("refusing ignored path", "path", clean)
		return Ignored, clean, nil
	}

	fi, err := fc.FS.Stat(fc.Config.WorkPath(clean))
	if err != nil {
		if fc.FS.IsNotExist(err) {
			return NotFound, clean, nil
		}
		return NotFound, clean, svcsErrors.NewIOError("stat", clean, err)
	}
	if !fi.Mode().IsRegular() {
		return NotFound, clean, nil
	}

	tracked, err := fc.LoadIndex()
	if err != nil {
		return NotFound, clean, err
	}
	if mapset.NewThreadUnsafeSet(tracked...).Contains(clean) {
		return AlreadyTracked, clean, nil
	}

	indexPath := fc.Config.IndexFile()
	old, err := fc.FS.ReadFile(indexPath)
	if err != nil && !fc.FS.IsNotExist(err) {
		return NotFound, clean, svcsErrors.NewIOError("read", indexPath, err)
	}
	content := string(old)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += clean + "\n"

	if err := util.WriteFileAtomic(fc.FS, indexPath, []byte(content), 0o644); err != nil {
		return NotFound, clean, svcsErrors.NewIOError("write", indexPath, err)
	}
	fc.Log.Debug("tracked", "path", clean, "count", len(tracked)+1)
	return Tracked, clean, nil
}
