package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Settings are the process-level knobs. They never touch the repository
// files themselves.
type Settings struct {
	RepoDir  string `mapstructure:"repo_dir"`
	WorkTree string `mapstructure:"work_tree"`
	Verbose  bool   `mapstructure:"verbose"`
	Progress bool   `mapstructure:"progress"`
}

// DefaultSettings values
var DefaultSettings = Settings{
	RepoDir:  RepoDir,
	WorkTree: DefaultWorkTree,
	Verbose:  false,
	Progress: false,
}

// Repo returns the repository layout the settings point at.
func (s Settings) Repo() *RepoConfig {
	return NewRepoConfig(s.WorkTree, s.RepoDir)
}

// InitFlags registers the persistent flags every subcommand inherits.
func InitFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to a settings file (YAML, JSON or TOML).")
	flags.String("repo-dir", DefaultSettings.RepoDir, "Repository directory, relative to the working tree.")
	flags.String("work-tree", DefaultSettings.WorkTree, "Working tree the tracked paths are relative to.")
	flags.BoolP("verbose", "v", DefaultSettings.Verbose, "Log debug output to stderr.")
	flags.Bool("progress", DefaultSettings.Progress, "Show a progress bar while copying snapshots.")
}

// LoadSettings merges defaults, the settings file, SVCS_* environment
// variables and command-line flags, in increasing precedence.
func LoadSettings(rootCmd *cobra.Command) (Settings, error) {
	v := viper.New()

	v.SetDefault("repo_dir", DefaultSettings.RepoDir)
	v.SetDefault("work_tree", DefaultSettings.WorkTree)
	v.SetDefault("verbose", DefaultSettings.Verbose)
	v.SetDefault("progress", DefaultSettings.Progress)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read settings %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName(SettingsName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("read settings: %w", err)
			}
		}
	}

	flags := rootCmd.PersistentFlags()
	for key, name := range map[string]string{
		"repo_dir":  "repo-dir",
		"work_tree": "work-tree",
		"verbose":   "verbose",
		"progress":  "progress",
	} {
		if f := flags.Lookup(name); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}
