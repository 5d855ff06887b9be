package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Onegaishimas/xcc-lattice/internal/housekeeping"
	"github.com/Onegaishimas/xcc-lattice/internal/logger"
	"github.com/Onegaishimas/xcc-lattice/internal/ui"
)

func newHistoryCmd(opts *options) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved session snapshots",
	}

	historyListCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(cmd, opts)
		},
	}
	historyListCmd.Flags().Int("limit", 10, "Number of sessions to show (0 for all)")

	historyShowCmd := &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show the resume document for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryShow(cmd, opts, args[0])
		},
	}
	historyShowCmd.Flags().Bool("raw", false, "Print markdown without rendering")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	return historyCmd
}

func runHistoryList(cmd *cobra.Command, opts *options) error {
	limit, _ := cmd.Flags().GetInt("limit")
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	infos, err := housekeeping.NewStore(cfg).List(limit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(infos) == 0 {
		fmt.Fprintln(out, ui.WarningStyle.Render("No session history found."))
		return nil
	}

	fmt.Fprintf(out, "Recent Sessions (%d):\n\n", len(infos))
	for _, info := range infos {
		fmt.Fprintf(out, "  %s  %s  %s\n",
			info.Timestamp.Format("2006-01-02 15:04"),
			ui.KeyStyle.Render(info.SessionID),
			ui.MutedStyle.Render(fmt.Sprintf("%d next steps", info.NextSteps)))
		if info.Summary != "" {
			fmt.Fprintf(out, "    %s\n", strings.TrimSpace(info.Summary))
		}
		fmt.Fprintln(out)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, opts *options, sessionID string) error {
	raw, _ := cmd.Flags().GetBool("raw")

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(housekeeping.NewStore(cfg).ResumePath(sessionID))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("session not found: %s", sessionID)
		}
		return err
	}

	if raw {
		fmt.Fprint(cmd.OutOrStdout(), string(content))
		return nil
	}

	rendered, err := ui.RenderMarkdown(string(content), 100)
	if err != nil {
		logger.Debugf("markdown rendering failed: %v", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
