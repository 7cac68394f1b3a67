package config

const (
	RepoDir    = "vcs"
	CommitsDir = "commits"
	ConfigFile = "config.txt"
	IndexFile  = "index.txt"
	LogFile    = "log.txt"

	IgnoreFile = ".svcsignore"
)

// StagingPrefix marks snapshot directories that are still being written.
const StagingPrefix = ".tmp-"

const (
	DefaultWorkTree = "."
	SettingsName    = ".svcs"
	EnvPrefix       = "SVCS"
)
