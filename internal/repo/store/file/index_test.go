package file_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/repo/store/file"
)

func newFileContext(t *testing.T) (*file.FileContext, *fs.MemoryFS) {
	t.Helper()
	mem := fs.NewMemoryFS()
	require.NoError(t, mem.MkdirAll("vcs", 0o755))
	return file.NewFileContext(config.NewRepoConfig(".", "vcs"), mem, nil), mem
}

func TestCleanPath(t *testing.T) {
	cases := map[string]struct {
		want string
		ok   bool
	}{
		"a.txt":          {"a.txt", true},
		"./a.txt":        {"a.txt", true},
		"docs//b.txt":    {"docs/b.txt", true},
		"docs/../c.txt":  {"c.txt", true},
		"":               {"", false},
		"   ":            {"", false},
		".":              {"", false},
		"../outside.txt": {"", false},
		"/etc/passwd":    {"", false},
	}
	for in, tc := range cases {
		got, ok := file.CleanPath(in)
		assert.Equal(t, tc.ok, ok, in)
		assert.Equal(t, tc.want, got, in)
	}
}

func TestLoadIndex_Empty(t *testing.T) {
	fc, mem := newFileContext(t)

	paths, err := fc.LoadIndex()
	require.NoError(t, err)
	assert.Empty(t, paths)

	require.NoError(t, mem.WriteFile("vcs/index.txt", nil, 0o644))
	paths, err = fc.LoadIndex()
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestLoadIndex_CollapsesLegacyDuplicates(t *testing.T) {
	fc, mem := newFileContext(t)
	require.NoError(t, mem.WriteFile("vcs/index.txt", []byte("b.txt\na.txt\nb.txt\r\n\na.txt"), 0o644))

	paths, err := fc.LoadIndex()
	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt", "a.txt"}, paths)
}

func TestAppendIndex_Outcomes(t *testing.T) {
	fc, mem := newFileContext(t)
	require.NoError(t, mem.WriteFile("a.txt", []byte("A"), 0o644))
	require.NoError(t, mem.MkdirAll("docs", 0o755))
	require.NoError(t, mem.WriteFile("docs/b.txt", []byte("B"), 0o644))
	require.NoError(t, mem.WriteFile(".svcsignore", []byte("*.log\n"), 0o644))
	require.NoError(t, mem.WriteFile("run.log", []byte("x"), 0o644))

	cases := []struct {
		in   string
		want file.AddOutcome
		path string
	}{
		{"a.txt", file.Tracked, "a.txt"},
		{"./docs/b.txt", file.Tracked, "docs/b.txt"},
		{"a.txt", file.AlreadyTracked, "a.txt"},
		{"docs/../a.txt", file.AlreadyTracked, "a.txt"},
		{"ghost.txt", file.NotFound, "ghost.txt"},
		{"docs", file.NotFound, "docs"},
		{"../x.txt", file.NotFound, "../x.txt"},
		{"run.log", file.Ignored, "run.log"},
		{"vcs/index.txt", file.Ignored, "vcs/index.txt"},
	}
	for _, tc := range cases {
		got, path, err := fc.AppendIndex(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, tc.path, path, tc.in)
	}

	data, err := mem.ReadFile("vcs/index.txt")
	require.NoError(t, err)
	assert.Equal(t, "a.txt\ndocs/b.txt\n", string(data))
}

func TestAppendIndex_OnlyGrows(t *testing.T) {
	fc, mem := newFileContext(t)
	names := []string{"c.txt", "a.txt", "b.txt"}
	for _, n := range names {
		require.NoError(t, mem.WriteFile(n, []byte(n), 0o644))
	}

	prev := []string{}
	for _, n := range names {
		_, _, err := fc.AppendIndex(n)
		require.NoError(t, err)

		cur, err := fc.LoadIndex()
		require.NoError(t, err)
		require.Len(t, cur, len(prev)+1)
		assert.Equal(t, prev, cur[:len(prev)])
		prev = cur
	}
	assert.Equal(t, names, prev)
}

func TestAddOutcome_String(t *testing.T) {
	assert.Equal(t, "already tracked", file.AlreadyTracked.String())
	assert.Equal(t, "unknown", file.AddOutcome(42).String())
}
