package config

import (
	"path/filepath"
)

// RepoConfig resolves every on-disk location of one repository.
type RepoConfig struct {
	WorkingTreeDir string
	RepoRoot       string
}

// NewRepoConfig builds the layout for a working tree. A relative repoDir is
// placed inside the working tree.
func NewRepoConfig(workTree, repoDir string) *RepoConfig {
	if workTree == "" {
		workTree = DefaultWorkTree
	}
	if repoDir == "" {
		repoDir = RepoDir
	}
	root := repoDir
	if !filepath.IsAbs(root) {
		root = filepath.Join(workTree, repoDir)
	}
	return &RepoConfig{
		WorkingTreeDir: filepath.Clean(workTree),
		RepoRoot:       filepath.Clean(root),
	}
}

func (c *RepoConfig) ConfigFile() string { return filepath.Join(c.RepoRoot, ConfigFile) }
func (c *RepoConfig) IndexFile() string  { return filepath.Join(c.RepoRoot, IndexFile) }
func (c *RepoConfig) LogFile() string    { return filepath.Join(c.RepoRoot, LogFile) }
func (c *RepoConfig) CommitsDir() string { return filepath.Join(c.RepoRoot, CommitsDir) }

// SnapshotDir is the directory holding the copies for commitID.
func (c *RepoConfig) SnapshotDir(commitID string) string {
	return filepath.Join(c.CommitsDir(), commitID)
}

// IgnoreFile lives in the working tree, next to the tracked files.
func (c *RepoConfig) IgnoreFile() string {
	return filepath.Join(c.WorkingTreeDir, IgnoreFile)
}

// WorkPath maps a tracked slash-separated path into the working tree.
func (c *RepoConfig) WorkPath(rel string) string {
	return filepath.Join(c.WorkingTreeDir, filepath.FromSlash(rel))
}

// RepoDirName is the repository directory relative to the working tree,
// or "" when it lives elsewhere.
func (c *RepoConfig) RepoDirName() string {
	rel, err := filepath.Rel(c.WorkingTreeDir, c.RepoRoot)
	if err != nil || !filepath.IsLocal(rel) {
		return ""
	}
	return filepath.ToSlash(rel)
}
