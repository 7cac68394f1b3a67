package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// MemoryFS is a pure in-memory filesystem for tests or lightweight storage.
type MemoryFS struct {
	files map[string][]byte
	dirs  map[string]struct{}
	modes map[string]os.FileMode
	seq   int
}

func NewMemoryFS() *MemoryFS {
	f := &MemoryFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]struct{}),
		modes: make(map[string]os.FileMode),
	}
	f.dirs["/"] = struct{}{}
	f.dirs["."] = struct{}{}
	return f
}

// normalize paths
func clean(p string) string {
	if p == "" {
		return "."
	}
	return filepath.ToSlash(filepath.Clean(p))
}

func (f *MemoryFS) ensureDirExists(p string) error {
	p = clean(p)
	if _, ok := f.dirs[p]; !ok {
		return fs.ErrNotExist
	}
	return nil
}

// under reports whether p lies strictly inside dir.
func under(p, dir string) bool {
	if dir == "." {
		return p != "." && !strings.HasPrefix(p, "/")
	}
	if dir == "/" {
		return p != "/" && strings.HasPrefix(p, "/")
	}
	return strings.HasPrefix(p, dir+"/")
}

// FS Interface Implementation

func (f *MemoryFS) OpenReaderAt(p string) (ReaderAt, error) {
	p = clean(p)
	data, ok := f.files[p]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return &memReaderAt{Reader: bytes.NewReader(data), size: len(data)}, nil
}

type memReaderAt struct {
	*bytes.Reader
	size int
}

func (m *memReaderAt) Len() int     { return m.size }
func (m *memReaderAt) Close() error { return nil }

func (f *MemoryFS) ReadFile(p string) ([]byte, error) {
	p = clean(p)
	data, ok := f.files[p]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return append([]byte(nil), data...), nil
}

func (f *MemoryFS) WriteFile(p string, data []byte, perm os.FileMode) error {
	p = clean(p)
	dir := path.Dir(p)
	if err := f.ensureDirExists(dir); err != nil {
		return fmt.Errorf("write: dir %q does not exist", dir)
	}
	if _, ok := f.dirs[p]; ok {
		return fmt.Errorf("write %q: is a directory", p)
	}
	if _, ok := f.files[p]; !ok {
		f.modes[p] = perm.Perm()
	}
	f.files[p] = append([]byte(nil), data...)
	return nil
}

func (f *MemoryFS) MkdirAll(p string, perm os.FileMode) error {
	p = clean(p)
	cur := ""
	if strings.HasPrefix(p, "/") {
		cur = "/"
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == "" || seg == "." {
			continue
		}
		cur = path.Join(cur, seg)
		if _, ok := f.files[cur]; ok {
			return fmt.Errorf("mkdir %q: not a directory", cur)
		}
		f.dirs[cur] = struct{}{}
	}
	return nil
}

// Chmod sets the permission bits of a file. Directories keep 0755.
func (f *MemoryFS) Chmod(p string, mode os.FileMode) error {
	p = clean(p)
	if _, ok := f.files[p]; ok {
		f.modes[p] = mode.Perm()
		return nil
	}
	if _, ok := f.dirs[p]; ok {
		return nil
	}
	return fs.ErrNotExist
}

func (f *MemoryFS) mode(p string) os.FileMode {
	if m, ok := f.modes[p]; ok {
		return m
	}
	return 0o644
}

func (f *MemoryFS) nextName(pattern string) string {
	f.seq++
	n := strconv.Itoa(f.seq)
	if i := strings.LastIndex(pattern, "*"); i >= 0 {
		return pattern[:i] + n + pattern[i+1:]
	}
	return pattern + n
}

func (f *MemoryFS) Remove(p string) error {
	p = clean(p)
	if _, ok := f.files[p]; ok {
		delete(f.files, p)
		delete(f.modes, p)
		return nil
	}
	if _, ok := f.dirs[p]; ok {
		if f.hasChildren(p) {
			return fmt.Errorf("remove %q: directory not empty", p)
		}
		delete(f.dirs, p)
		return nil
	}
	return fs.ErrNotExist
}

func (f *MemoryFS) RemoveAll(p string) error {
	p = clean(p)
	delete(f.files, p)
	delete(f.modes, p)
	delete(f.dirs, p)
	for fp := range f.files {
		if under(fp, p) {
			delete(f.files, fp)
			delete(f.modes, fp)
		}
	}
	for dp := range f.dirs {
		if under(dp, p) {
			delete(f.dirs, dp)
		}
	}
	return nil
}

func (f *MemoryFS) hasChildren(dir string) bool {
	for fp := range f.files {
		if under(fp, dir) {
			return true
		}
	}
	for dp := range f.dirs {
		if under(dp, dir) {
			return true
		}
	}
	return false
}

func (f *MemoryFS) Rename(oldp, newp string) error {
	oldp, newp = clean(oldp), clean(newp)
	if f.ensureDirExists(path.Dir(newp)) != nil {
		return fs.ErrNotExist
	}

	// file rename
	if data, ok := f.files[oldp]; ok {
		if _, isDir := f.dirs[newp]; isDir {
			return fmt.Errorf("rename %q: target is a directory", newp)
		}
		delete(f.files, oldp)
		f.files[newp] = data
		f.modes[newp] = f.mode(oldp)
		delete(f.modes, oldp)
		return nil
	}

	// dir rename moves the whole subtree
	if _, ok := f.dirs[oldp]; ok {
		if f.Exists(newp) {
			return fmt.Errorf("rename %q: %w", newp, fs.ErrExist)
		}
		moved := make(map[string][]byte)
		for fp, data := range f.files {
			if under(fp, oldp) {
				moved[fp] = data
			}
		}
		for fp, data := range moved {
			dst := newp + strings.TrimPrefix(fp, oldp)
			f.modes[dst] = f.mode(fp)
			delete(f.files, fp)
			delete(f.modes, fp)
			f.files[dst] = data
		}
		var subdirs []string
		for dp := range f.dirs {
			if under(dp, oldp) {
				subdirs = append(subdirs, dp)
			}
		}
		for _, dp := range subdirs {
			delete(f.dirs, dp)
			f.dirs[newp+strings.TrimPrefix(dp, oldp)] = struct{}{}
		}
		delete(f.dirs, oldp)
		f.dirs[newp] = struct{}{}
		return nil
	}

	return fs.ErrNotExist
}

func (f *MemoryFS) Stat(p string) (os.FileInfo, error) {
	p = clean(p)
	if data, ok := f.files[p]; ok {
		return &fakeInfo{name: path.Base(p), size: int64(len(data)), mode: f.mode(p)}, nil
	}
	if _, ok := f.dirs[p]; ok {
		return &fakeInfo{name: path.Base(p), dir: true}, nil
	}
	return nil, fs.ErrNotExist
}

// ReadDir lists direct children sorted by name, like os.ReadDir.
func (f *MemoryFS) ReadDir(p string) ([]os.DirEntry, error) {
	p = clean(p)
	if _, ok := f.dirs[p]; !ok {
		return nil, fs.ErrNotExist
	}

	prefix := p + "/"
	switch p {
	case ".":
		prefix = ""
	case "/":
		prefix = "/"
	}

	seen := map[string]bool{}
	var out []os.DirEntry
	collect := func(full string, isDir bool) {
		if prefix == "" && strings.HasPrefix(full, "/") || !strings.HasPrefix(full, prefix) || full == p {
			return
		}
		rest := strings.TrimPrefix(full, prefix)
		name, _, nested := strings.Cut(rest, "/")
		if name == "" || name == "." || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, fakeDirEntry{name: name, isDir: isDir || nested, size: int64(len(f.files[full]))})
	}

	for dp := range f.dirs {
		collect(dp, true)
	}
	for fp := range f.files {
		collect(fp, false)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

func (f *MemoryFS) CreateTempFile(dir, pattern string) (io.WriteCloser, string, error) {
	if err := f.ensureDirExists(clean(dir)); err != nil {
		return nil, "", err
	}

	tmpName := path.Join(clean(dir), f.nextName(pattern))
	buf := &bytes.Buffer{}

	wc := &memWriteCloser{
		buf: buf,
		onClose: func() {
			f.files[tmpName] = buf.Bytes()
			f.modes[tmpName] = 0o600
		},
	}
	return wc, tmpName, nil
}

type memWriteCloser struct {
	buf     *bytes.Buffer
	onClose func()
}

func (m *memWriteCloser) Write(p []byte) (int, error) { return m.buf.Write(p) }
func (m *memWriteCloser) Close() error {
	if m.onClose != nil {
		m.onClose()
	}
	return nil
}

func (f *MemoryFS) IsNotExist(err error) bool { return errors.Is(err, fs.ErrNotExist) }
func (f *MemoryFS) IsDir(p string) bool       { _, ok := f.dirs[clean(p)]; return ok }
func (f *MemoryFS) Exists(p string) bool {
	p = clean(p)
	_, f1 := f.files[p]
	_, d1 := f.dirs[p]
	return f1 || d1
}

// Helpers

type fakeInfo struct {
	name string
	size int64
	mode fs.FileMode
	dir  bool
}

func (f *fakeInfo) Name() string { return f.name }
func (f *fakeInfo) Size() int64  { return f.size }
func (f *fakeInfo) Mode() fs.FileMode {
	if f.dir {
		return fs.ModeDir | 0o755
	}
	if f.mode == 0 {
		return 0o644
	}
	return f.mode
}
func (f *fakeInfo) ModTime() time.Time { return time.Time{} }
func (f *fakeInfo) IsDir() bool        { return f.dir }
func (f *fakeInfo) Sys() interface{}   { return nil }

type fakeDirEntry struct {
	name  string
	isDir bool
	size  int64
}

func (d fakeDirEntry) Name() string { return d.name }
func (d fakeDirEntry) IsDir() bool  { return d.isDir }
func (d fakeDirEntry) Type() fs.FileMode {
	if d.isDir {
		return fs.ModeDir
	}
	return 0
}
func (d fakeDirEntry) Info() (os.FileInfo, error) {
	return &fakeInfo{name: d.name, dir: d.isDir, size: d.size}, nil
}
