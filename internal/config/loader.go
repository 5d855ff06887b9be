package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const configFileName = "config.yaml"

// Load loads and merges configuration from global and project sources.
// The project root is explicit so no component depends on the process
// working directory.
func Load(projectRoot string) (*Config, error) {
	cfg := DefaultConfig()

	root, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	// Load global config first
	if globalPath := GlobalConfigPath(); globalPath != "" {
		if err := loadFile(globalPath, cfg); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load %s: %w", globalPath, err)
		}
	}

	// Load project config (overrides global)
	projectPath := ProjectConfigPath(root, cfg.Housekeeping.Dir)
	if err := loadFile(projectPath, cfg); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load %s: %w", projectPath, err)
	}

	cfg.Project.Root = root

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// Validate rejects settings the pipeline cannot act on
func (c *Config) Validate() error {
	switch c.Layout.Mode {
	case LayoutAuto, LayoutXCC, LayoutConventional:
	default:
		return fmt.Errorf("invalid layout mode '%s': must be '%s', '%s' or '%s'",
			c.Layout.Mode, LayoutAuto, LayoutXCC, LayoutConventional)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level '%s': must be 'debug', 'info', 'warn' or 'error'", c.Log.Level)
	}
	if c.Housekeeping.Dir == "" {
		return fmt.Errorf("housekeeping.dir must not be empty")
	}
	if c.Project.StatusFile == "" {
		return fmt.Errorf("project.status_file must not be empty")
	}
	if c.Git.LogLimit <= 0 {
		return fmt.Errorf("git.log_limit must be positive, got %d", c.Git.LogLimit)
	}
	return nil
}

// HousekeepingPath returns the absolute artifact directory
func (c *Config) HousekeepingPath() string {
	return filepath.Join(c.Project.Root, c.Housekeeping.Dir)
}

// StatusPath returns the absolute path of the status document
func (c *Config) StatusPath() string {
	return filepath.Join(c.Project.Root, c.Project.StatusFile)
}

// CommandsPath returns the absolute path of the root-level commands copy
func (c *Config) CommandsPath() string {
	return filepath.Join(c.Project.Root, c.Housekeeping.CommandsFile)
}

// GlobalConfigPath returns the path to the global config file, or "" when
// there is no home directory
func GlobalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".housekeeping", configFileName)
}

// ProjectConfigPath returns the path to the project config file
func ProjectConfigPath(projectRoot, housekeepingDir string) string {
	return filepath.Join(projectRoot, housekeepingDir, configFileName)
}
