package config

import (
	"path/filepath"
	"testing"
)

func TestNewRepoConfig_Defaults(t *testing.T) {
	c := NewRepoConfig("", "")

	if c.RepoRoot != "vcs" {
		t.Fatalf("RepoRoot = %q, want vcs", c.RepoRoot)
	}
	if got := c.IndexFile(); got != filepath.Join("vcs", "index.txt") {
		t.Errorf("IndexFile = %q", got)
	}
	if got := c.SnapshotDir("abc"); got != filepath.Join("vcs", "commits", "abc") {
		t.Errorf("SnapshotDir = %q", got)
	}
	if got := c.IgnoreFile(); got != ".svcsignore" {
		t.Errorf("IgnoreFile = %q", got)
	}
	if got := c.RepoDirName(); got != "vcs" {
		t.Errorf("RepoDirName = %q", got)
	}
}

func TestNewRepoConfig_WorkTree(t *testing.T) {
	work := t.TempDir()
	c := NewRepoConfig(work, "store")

	if c.RepoRoot != filepath.Join(work, "store") {
		t.Fatalf("RepoRoot = %q", c.RepoRoot)
	}
	if got := c.WorkPath("docs/a.txt"); got != filepath.Join(work, "docs", "a.txt") {
		t.Errorf("WorkPath = %q", got)
	}
	if got := c.RepoDirName(); got != "store" {
		t.Errorf("RepoDirName = %q", got)
	}
}

func TestNewRepoConfig_OutsideWorkTree(t *testing.T) {
	work := t.TempDir()
	repo := t.TempDir()
	c := NewRepoConfig(work, repo)

	if c.RepoRoot != filepath.Clean(repo) {
		t.Fatalf("RepoRoot = %q", c.RepoRoot)
	}
	if got := c.RepoDirName(); got != "" {
		t.Errorf("RepoDirName = %q, want empty", got)
	}
}
