package fs

import (
	"path"
	"path/filepath"
)

// WalkFiles calls fn for every regular file below root, in lexical order.
// The path passed to fn is relative to root and slash-separated.
func WalkFiles(fsys FS, root string, fn func(rel string) error) error {
	return walk(fsys, root, "", fn)
}

func walk(fsys FS, root, rel string, fn func(rel string) error) error {
	entries, err := fsys.ReadDir(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return err
	}
	for _, e := range entries {
		child := path.Join(rel, e.Name())
		if e.IsDir() {
			if err := walk(fsys, root, child, fn); err != nil {
				return err
			}
			continue
		}
		if !e.Type().IsRegular() {
			continue
		}
		if err := fn(child); err != nil {
			return err
		}
	}
	return nil
}
