package fs_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/keshon/svcs/internal/fs"
)

func collect(t *testing.T, fsys fs.FS, root string) []string {
	t.Helper()
	var got []string
	err := fs.WalkFiles(fsys, root, func(rel string) error {
		got = append(got, rel)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return got
}

func TestWalkFiles_Memory(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("snap/docs/img", 0o755)
	m.MkdirAll("snap/empty", 0o755)
	m.WriteFile("snap/b.txt", []byte("b"), 0o644)
	m.WriteFile("snap/a.txt", []byte("a"), 0o644)
	m.WriteFile("snap/docs/readme.md", []byte("r"), 0o644)
	m.WriteFile("snap/docs/img/logo.png", []byte("p"), 0o644)

	got := collect(t, m, "snap")
	want := []string{"a.txt", "b.txt", "docs/img/logo.png", "docs/readme.md"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestWalkFiles_OS(t *testing.T) {
	root := t.TempDir()
	os.MkdirAll(filepath.Join(root, "sub"), 0o755)
	os.WriteFile(filepath.Join(root, "top.txt"), []byte("t"), 0o644)
	os.WriteFile(filepath.Join(root, "sub", "inner.txt"), []byte("i"), 0o644)

	got := collect(t, fs.NewOSFS(), root)
	want := []string{"sub/inner.txt", "top.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestWalkFiles_MissingRoot(t *testing.T) {
	m := fs.NewMemoryFS()
	err := fs.WalkFiles(m, "nope", func(string) error { return nil })
	if !m.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
