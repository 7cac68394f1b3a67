package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/keshon/svcs/internal/fs"
)

// WriteFileAtomic replaces path with data through a temp file in the same
// directory, so readers see either the old or the new content. The result
// has permission bits perm.
func WriteFileAtomic(fsys fs.FS, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmpFile, tmpPath, err := fsys.CreateTempFile(dir, ".svcs-tmp-*")
	if err != nil {
		return err
	}
	renamed := false
	defer func() {
		if !renamed {
			_ = fsys.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := fsys.Chmod(tmpPath, perm.Perm()); err != nil {
		return err
	}

	if err := fsys.Rename(tmpPath, path); err != nil {
		return err
	}
	renamed = true
	return nil
}

// CopyFile copies src to dst byte for byte, creating dst's parent
// directories. dst is replaced atomically and gets src's permission bits.
func CopyFile(fsys fs.FS, src, dst string) error {
	fi, err := fsys.Stat(src)
	if err != nil {
		return err
	}

	r, err := fsys.OpenReaderAt(src)
	if err != nil {
		return err
	}
	defer r.Close()

	// an empty mapping refuses ReadAt, even for zero bytes
	data := make([]byte, r.Len())
	if len(data) > 0 {
		if _, err := r.ReadAt(data, 0); err != nil && err != io.EOF {
			return fmt.Errorf("read %s: %w", src, err)
		}
	}

	if err := fsys.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return WriteFileAtomic(fsys, dst, data, fi.Mode().Perm())
}

// SortedKeys returns the keys of a map sorted alphabetically.
func SortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WorkerCount returns the number of workers for concurrent operations.
func WorkerCount() int {
	return runtime.NumCPU()
}

// Parallel runs fn concurrently for each item in inputs, limited by workerLimit.
// It returns the first error reported, after every started call has finished.
func Parallel[T any](inputs []T, workerLimit int, fn func(T) error) error {
	if len(inputs) == 0 {
		return nil
	}
	if workerLimit < 1 {
		workerLimit = 1
	}

	sem := make(chan struct{}, workerLimit)
	errCh := make(chan error, len(inputs))
	var wg sync.WaitGroup

	for _, in := range inputs {
		sem <- struct{}{}
		wg.Add(1)
		go func(x T) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := fn(x); err != nil {
				errCh <- err
			}
		}(in)
	}

	wg.Wait()
	close(errCh)

	for err := range errCh {
		return err
	}
	return nil
}
