package repo_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/repo"
)

// faultyFS is a MemoryFS that fails selected writes.
type faultyFS struct {
	*fs.MemoryFS
	failCreateTemp func(dir string) bool
	failRename     func(oldPath, newPath string) bool
}

var errInjected = errors.New("injected failure")

func (f *faultyFS) CreateTempFile(dir, pattern string) (io.WriteCloser, string, error) {
	if f.failCreateTemp != nil && f.failCreateTemp(dir) {
		return nil, "", errInjected
	}
	return f.MemoryFS.CreateTempFile(dir, pattern)
}

func (f *faultyFS) Rename(oldPath, newPath string) error {
	if f.failRename != nil && f.failRename(oldPath, newPath) {
		return errInjected
	}
	return f.MemoryFS.Rename(oldPath, newPath)
}

// ticking returns a clock that advances one nanosecond per call.
func ticking() func() time.Time {
	t := time.Unix(1700000000, 0)
	return func() time.Time {
		t = t.Add(time.Nanosecond)
		return t
	}
}

func openOn(t *testing.T, fsys fs.FS) *repo.Repository {
	t.Helper()
	r, err := repo.NewRepository(config.NewRepoConfig(".", "vcs"), &repo.Options{FS: fsys, Now: ticking()})
	require.NoError(t, err)
	return r
}

func newRepo(t *testing.T) (*repo.Repository, *fs.MemoryFS) {
	t.Helper()
	mem := fs.NewMemoryFS()
	return openOn(t, mem), mem
}

func write(t *testing.T, mem *fs.MemoryFS, path, content string) {
	t.Helper()
	if i := strings.LastIndex(path, "/"); i > 0 {
		require.NoError(t, mem.MkdirAll(path[:i], 0o755))
	}
	require.NoError(t, mem.WriteFile(path, []byte(content), 0o644))
}

func read(t *testing.T, mem *fs.MemoryFS, path string) string {
	t.Helper()
	data, err := mem.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func expect(t *testing.T, kind repo.Kind, text string) func(repo.Result, error) {
	return func(res repo.Result, err error) {
		t.Helper()
		require.NoError(t, err)
		assert.Equal(t, kind, res.Kind, res.Text)
		assert.Equal(t, text, res.Message())
	}
}

func snapshotIDs(t *testing.T, mem *fs.MemoryFS) []string {
	t.Helper()
	entries, err := mem.ReadDir("vcs/commits")
	require.NoError(t, err)
	var ids []string
	for _, e := range entries {
		ids = append(ids, e.Name())
	}
	return ids
}

func TestNewRepository_Bootstrap(t *testing.T) {
	_, mem := newRepo(t)
	assert.True(t, mem.IsDir("vcs"))
	assert.True(t, mem.IsDir("vcs/commits"))
	assert.False(t, mem.Exists("vcs/log.txt"), "no file is written on open")

	_, err := repo.NewRepository(nil, nil)
	assert.Error(t, err)
}

func TestScenario_EndToEnd(t *testing.T) {
	r, mem := newRepo(t)

	// 1
	expect(t, repo.Unconfigured, "Please, tell me who you are.")(r.Username(""))
	expect(t, repo.OK, "The username is mike.")(r.Username("mike"))
	expect(t, repo.OK, "The username is mike.")(r.Username(""))

	// 2
	expect(t, repo.MissingArgument, "Add a file to the index.")(r.Add(""))
	write(t, mem, "a.txt", "original")
	expect(t, repo.OK, "The file 'a.txt' is tracked.")(r.Add("a.txt"))
	expect(t, repo.OK, "Tracked files:\na.txt")(r.Add(""))

	// 3
	expect(t, repo.NoOp, "No commits yet.")(r.History())
	expect(t, repo.MissingArgument, "Message was not passed.")(r.Commit(""))
	expect(t, repo.OK, "Changes are committed.")(r.Commit("initial"))
	require.Len(t, snapshotIDs(t, mem), 1)
	initial := snapshotIDs(t, mem)[0]

	// 4
	expect(t, repo.NoOp, "Nothing to commit.")(r.Commit("initial"))
	require.Len(t, snapshotIDs(t, mem), 1)

	// 5
	write(t, mem, "a.txt", "edited!!")
	expect(t, repo.OK, "Changes are committed.")(r.Commit("second"))

	records, err := r.Meta.Records()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "second", records[0].Message)
	assert.Equal(t, "initial", records[1].Message)
	assert.Equal(t, initial, records[1].ID)
	assert.Equal(t, "mike", records[0].Author)

	res, err := r.History()
	require.NoError(t, err)
	assert.Equal(t, repo.OK, res.Kind)
	assert.True(t, strings.HasPrefix(res.Text, "commit "+records[0].ID+"\nAuthor: mike\nsecond\n\ncommit "+initial))

	// 6
	expect(t, repo.OK, "Switched to commit "+initial+".")(r.Checkout(initial))
	assert.Equal(t, "original", read(t, mem, "a.txt"))
}

func TestAdd_Outcomes(t *testing.T) {
	r, mem := newRepo(t)
	write(t, mem, "a.txt", "A")
	write(t, mem, ".svcsignore", "*.log\n")
	write(t, mem, "x.log", "L")

	expect(t, repo.OK, "The file 'a.txt' is tracked.")(r.Add("./a.txt"))
	expect(t, repo.NoOp, "The file 'a.txt' is already tracked.")(r.Add("a.txt"))
	expect(t, repo.NotFound, "Can't find 'nope.txt'.")(r.Add("nope.txt"))
	expect(t, repo.NotFound, "Can't find '../a.txt'.")(r.Add("../a.txt"))
	expect(t, repo.NoOp, "The file 'x.log' is ignored.")(r.Add("x.log"))
	expect(t, repo.NoOp, "The file 'vcs/log.txt' is ignored.")(r.Add("vcs/log.txt"))
}

func TestUsername_FoldsLineBreaks(t *testing.T) {
	r, mem := newRepo(t)

	expect(t, repo.OK, "The username is ann.")(r.Username("  \r\nann\n"))
	expect(t, repo.OK, "The username is mike evil.")(r.Username("mike\nevil"))
	expect(t, repo.OK, "The username is mike evil.")(r.Username(""))
	assert.Equal(t, "mike evil", read(t, mem, "vcs/config.txt"))

	write(t, mem, "a.txt", "a")
	expect(t, repo.OK, "The file 'a.txt' is tracked.")(r.Add("a.txt"))
	expect(t, repo.OK, "Changes are committed.")(r.Commit("first"))

	records, err := r.Meta.Records()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "mike evil", records[0].Author)
}

func TestCommit_RequiresUsername(t *testing.T) {
	r, mem := newRepo(t)
	write(t, mem, "a.txt", "A")
	_, err := r.Add("a.txt")
	require.NoError(t, err)

	expect(t, repo.Unconfigured, "Please, tell me who you are.")(r.Commit("msg"))
	assert.False(t, mem.Exists("vcs/log.txt"))
}

func TestCommit_FoldsMessageLines(t *testing.T) {
	r, mem := newRepo(t)
	write(t, mem, "a.txt", "A")
	_, _ = r.Username("mike")
	_, _ = r.Add("a.txt")

	expect(t, repo.MissingArgument, "Message was not passed.")(r.Commit("  \n \r\n "))
	expect(t, repo.OK, "Changes are committed.")(r.Commit("  first line\r\nsecond line \n"))

	records, err := r.Meta.Records()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "first line second line", records[0].Message)
}

func TestCommit_FirstCommitAlwaysSucceeds(t *testing.T) {
	r, mem := newRepo(t)
	_, _ = r.Username("mike")

	expect(t, repo.OK, "Changes are committed.")(r.Commit("empty"))
	expect(t, repo.NoOp, "Nothing to commit.")(r.Commit("still empty"))
	assert.Len(t, snapshotIDs(t, mem), 1)
}

func TestCommit_DetectsEveryKindOfChange(t *testing.T) {
	r, mem := newRepo(t)
	_, _ = r.Username("mike")
	write(t, mem, "a.txt", "abc")
	write(t, mem, "docs/b.txt", "B")
	_, _ = r.Add("a.txt")
	expect(t, repo.OK, "Changes are committed.")(r.Commit("one"))

	// newly tracked file changes the count
	_, _ = r.Add("docs/b.txt")
	expect(t, repo.OK, "Changes are committed.")(r.Commit("two"))

	// same size, different bytes
	write(t, mem, "a.txt", "abd")
	expect(t, repo.OK, "Changes are committed.")(r.Commit("three"))

	// size change
	write(t, mem, "docs/b.txt", "BBBB")
	expect(t, repo.OK, "Changes are committed.")(r.Commit("four"))

	expect(t, repo.NoOp, "Nothing to commit.")(r.Commit("five"))

	records, err := r.Meta.Records()
	require.NoError(t, err)
	require.Len(t, records, 4)

	ids := snapshotIDs(t, mem)
	require.Len(t, ids, 4)
	for _, rec := range records {
		assert.Contains(t, ids, rec.ID)
		assert.Len(t, rec.ID, 32)
	}
	assert.Equal(t, []string{"four", "three", "two", "one"},
		[]string{records[0].Message, records[1].Message, records[2].Message, records[3].Message})

	head, err := r.Meta.GetHead()
	require.NoError(t, err)
	assert.Equal(t, "BBBB", read(t, mem, "vcs/commits/"+head.LastID+"/docs/b.txt"))
}

func TestCommit_NoChangesRightAfterCommit(t *testing.T) {
	r, mem := newRepo(t)
	_, _ = r.Username("mike")
	write(t, mem, "a.txt", "A")
	_, _ = r.Add("a.txt")
	expect(t, repo.OK, "Changes are committed.")(r.Commit("one"))

	tracked, err := r.Store.FileCtx.LoadIndex()
	require.NoError(t, err)
	head, err := r.Meta.GetHead()
	require.NoError(t, err)

	changed, err := r.HasChanges(head, tracked)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestCommit_MissingTrackedFileIsFailure(t *testing.T) {
	r, mem := newRepo(t)
	_, _ = r.Username("mike")
	write(t, mem, "a.txt", "A")
	_, _ = r.Add("a.txt")
	expect(t, repo.OK, "Changes are committed.")(r.Commit("one"))

	require.NoError(t, mem.Remove("a.txt"))
	_, err := r.Commit("two")
	require.Error(t, err)
	assert.Equal(t, repo.IoFailure, repo.Failure(err).Kind)
	assert.True(t, strings.HasPrefix(repo.Failure(err).Message(), "Error: "))

	records, _ := r.Meta.Records()
	assert.Len(t, records, 1)
}

func TestCommit_CopyFailureLeavesNothing(t *testing.T) {
	mem := fs.NewMemoryFS()
	faulty := &faultyFS{MemoryFS: mem}
	r := openOn(t, faulty)

	_, _ = r.Username("mike")
	write(t, mem, "a.txt", "A")
	write(t, mem, "docs/b.txt", "B")
	_, _ = r.Add("a.txt")
	_, _ = r.Add("docs/b.txt")

	faulty.failCreateTemp = func(dir string) bool { return strings.HasSuffix(dir, "docs") && strings.Contains(dir, ".tmp-") }
	_, err := r.Commit("broken")
	require.ErrorIs(t, err, errInjected)

	assert.Empty(t, snapshotIDs(t, mem))
	assert.False(t, mem.Exists("vcs/log.txt"))

	faulty.failCreateTemp = nil
	expect(t, repo.OK, "Changes are committed.")(r.Commit("fixed"))
	assert.Len(t, snapshotIDs(t, mem), 1)
}

func TestCommit_LogFailureRollsBackSnapshot(t *testing.T) {
	mem := fs.NewMemoryFS()
	faulty := &faultyFS{MemoryFS: mem}
	r := openOn(t, faulty)

	_, _ = r.Username("mike")
	write(t, mem, "a.txt", "A")
	_, _ = r.Add("a.txt")

	faulty.failRename = func(_, newPath string) bool { return strings.HasSuffix(newPath, "log.txt") }
	_, err := r.Commit("broken")
	require.ErrorIs(t, err, errInjected)

	assert.Empty(t, snapshotIDs(t, mem))
	head, err := r.Meta.GetHead()
	require.NoError(t, err)
	assert.True(t, head.NoCommits())
}

func TestCommit_RemovesStaleStaging(t *testing.T) {
	r, mem := newRepo(t)
	_, _ = r.Username("mike")
	write(t, mem, "a.txt", "A")
	_, _ = r.Add("a.txt")
	write(t, mem, "vcs/commits/.tmp-leftover/a.txt", "half")

	expect(t, repo.OK, "Changes are committed.")(r.Commit("one"))
	ids := snapshotIDs(t, mem)
	require.Len(t, ids, 1)
	assert.False(t, strings.HasPrefix(ids[0], ".tmp-"))
}

func TestCheckout_Outcomes(t *testing.T) {
	r, mem := newRepo(t)
	_, _ = r.Username("mike")
	write(t, mem, "a.txt", "v1")
	write(t, mem, "docs/b.txt", "b1")
	_, _ = r.Add("a.txt")
	_, _ = r.Add("docs/b.txt")
	expect(t, repo.OK, "Changes are committed.")(r.Commit("one"))
	first := snapshotIDs(t, mem)[0]

	write(t, mem, "a.txt", "v2")
	require.NoError(t, mem.RemoveAll("docs"))
	write(t, mem, "untracked.txt", "mine")
	logBefore := read(t, mem, "vcs/log.txt")

	expect(t, repo.MissingArgument, "Commit id was not passed.")(r.Checkout(" "))
	for _, bad := range []string{"deadbeef", "../vcs", ".tmp-" + first, "commits/" + first} {
		expect(t, repo.NotFound, "Commit does not exist.")(r.Checkout(bad))
	}
	assert.Equal(t, "v2", read(t, mem, "a.txt"))

	expect(t, repo.OK, "Switched to commit "+first+".")(r.Checkout(first))
	assert.Equal(t, "v1", read(t, mem, "a.txt"))
	assert.Equal(t, "b1", read(t, mem, "docs/b.txt"))
	assert.Equal(t, "mine", read(t, mem, "untracked.txt"))
	assert.Equal(t, logBefore, read(t, mem, "vcs/log.txt"))
}

func TestResultKind_String(t *testing.T) {
	assert.Equal(t, "i/o failure", repo.IoFailure.String())
	assert.Equal(t, "Kind(99)", repo.Kind(99).String())
	assert.Equal(t, "no-op: Nothing to commit.", repo.Result{Kind: repo.NoOp, Text: "Nothing to commit."}.String())
}
