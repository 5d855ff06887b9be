package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Onegaishimas/xcc-lattice/internal/config"
	"github.com/Onegaishimas/xcc-lattice/internal/logger"
)

func newConfigCmd(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage clear-resume configuration",
	}

	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Show merged configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "# Merged configuration (global + project)")
			fmt.Fprintf(out, "# Project root: %s\n", cfg.Project.Root)
			fmt.Fprint(out, string(data))
			return nil
		},
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show configuration file paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Global:  %s\n", config.GlobalConfigPath())
			fmt.Fprintf(out, "Project: %s\n", config.ProjectConfigPath(cfg.Project.Root, cfg.Housekeeping.Dir))
			return nil
		},
	}

	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, opts)
		},
	}
	configInitCmd.Flags().Bool("global", false, "Write the global config instead of the project config")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	return configCmd
}

func runConfigInit(cmd *cobra.Command, opts *options) error {
	global, _ := cmd.Flags().GetBool("global")
	force, _ := cmd.Flags().GetBool("force")

	var path string
	if global {
		path = config.GlobalConfigPath()
		if path == "" {
			return fmt.Errorf("cannot determine home directory")
		}
	} else {
		cfg, err := loadConfig(opts)
		if err != nil {
			return err
		}
		path = config.ProjectConfigPath(cfg.Project.Root, cfg.Housekeeping.Dir)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config already exists: %s (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	logger.Infof("wrote default config to %s", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
