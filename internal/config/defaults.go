package config

import (
	"os"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Project: ProjectConfig{
			StatusFile: "CLAUDE.md",
		},
		Housekeeping: HousekeepingConfig{
			Dir:          ".housekeeping",
			CommandsFile: "RESUME_COMMANDS.txt",
		},
		Layout: LayoutConfig{
			Mode:      LayoutAuto,
			AltDir:    "!xcc",
			TaskGlob:  "*.md",
			ADRGlob:   "*.md",
			SourceDir: "src",
		},
		Git: GitConfig{
			Binary:   "git",
			LogLimit: 10,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// WriteDefault writes the default configuration to a file
func WriteDefault(path string) error {
	content := `# clear-resume configuration
version: "1"

project:
  # Status document read for "## Current Status" and updated in place
  status_file: CLAUDE.md

housekeeping:
  # Snapshots, resume documents and QUICK_RESUME.md live here
  dir: .housekeeping
  # Copy of the resume commands written to the project root
  commands_file: RESUME_COMMANDS.txt

layout:
  # auto: use alt_dir/tasks and alt_dir/adrs when alt_dir exists
  # xcc: always use alt_dir; conventional: always use tasks/ and adrs/
  mode: auto
  alt_dir: "!xcc"
  task_glob: "*.md"
  adr_glob: "*.md"
  source_dir: src

git:
  binary: git
  log_limit: 10

log:
  level: warn  # debug, info, warn, error
`
	return os.WriteFile(path, []byte(content), 0644)
}
