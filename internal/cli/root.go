package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Onegaishimas/xcc-lattice/internal/config"
	"github.com/Onegaishimas/xcc-lattice/internal/logger"
	"github.com/Onegaishimas/xcc-lattice/internal/ui"
)

// options holds the persistent flags shared by every command
type options struct {
	verbose    bool
	projectDir string
}

// NewRootCommand builds the command tree
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "clear-resume [context...]",
		Short: "Capture session context and print resume commands",
		Long: `clear-resume captures the current project context (status document, task list
and git working tree), saves a timestamped snapshot and resume document under
.housekeeping/, and prints commands that restore continuity after the
assistant's context is cleared.

Any arguments are echoed back as additional context.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapture(cmd, opts, args)
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				logger.Configure(logger.LevelDebug)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVarP(&opts.projectDir, "project-dir", "C", "", "Project root (default: current directory)")

	rootCmd.AddCommand(newCommandsCmd(opts))
	rootCmd.AddCommand(newHistoryCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd(version))

	rootCmd.Version = version
	return rootCmd
}

// Execute runs the root command and reports a failure on stdout
func Execute(ctx context.Context, version string) error {
	rootCmd := NewRootCommand(version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(rootCmd.OutOrStdout(), ui.ErrorStyle.Render("❌ Error: "+err.Error()))
		return err
	}
	return nil
}

// loadConfig resolves the project root and loads its configuration. The
// configured log level applies unless --verbose was given.
func loadConfig(opts *options) (*config.Config, error) {
	root := opts.projectDir
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		root = cwd
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open project directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project directory is not a directory: %s", root)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if !opts.verbose {
		logger.Configure(logger.LogLevel(cfg.Log.Level))
	}
	logger.Debugf("project root %s", cfg.Project.Root)
	return cfg, nil
}
