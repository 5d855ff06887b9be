package config

// Config represents the full clear-resume configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Project-specific settings
	Project ProjectConfig `yaml:"project" mapstructure:"project"`

	// Where artifacts are written
	Housekeeping HousekeepingConfig `yaml:"housekeeping" mapstructure:"housekeeping"`

	// Task and decision directory conventions
	Layout LayoutConfig `yaml:"layout" mapstructure:"layout"`

	// Version-control capture
	Git GitConfig `yaml:"git" mapstructure:"git"`

	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// ProjectConfig locates the project and its status document
type ProjectConfig struct {
	// Root is resolved by the CLI and never read from a config file.
	Root       string `yaml:"-" mapstructure:"-"`
	StatusFile string `yaml:"status_file" mapstructure:"status_file"`
}

// HousekeepingConfig configures the artifact directory
type HousekeepingConfig struct {
	Dir          string `yaml:"dir" mapstructure:"dir"`
	CommandsFile string `yaml:"commands_file" mapstructure:"commands_file"`
}

// Layout modes
const (
	LayoutAuto         = "auto"
	LayoutXCC          = "xcc"
	LayoutConventional = "conventional"
)

// LayoutConfig selects between the alternate-directory layout and the
// conventional tasks/ + adrs/ layout
type LayoutConfig struct {
	Mode      string `yaml:"mode" mapstructure:"mode"`
	AltDir    string `yaml:"alt_dir" mapstructure:"alt_dir"`
	TaskGlob  string `yaml:"task_glob" mapstructure:"task_glob"`
	ADRGlob   string `yaml:"adr_glob" mapstructure:"adr_glob"`
	SourceDir string `yaml:"source_dir" mapstructure:"source_dir"`
}

// GitConfig configures the git subprocess
type GitConfig struct {
	Binary   string `yaml:"binary" mapstructure:"binary"`
	LogLimit int    `yaml:"log_limit" mapstructure:"log_limit"`
}

// LogConfig configures diagnostic logging
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}
