package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Onegaishimas/xcc-lattice/internal/checkpoint"
	"github.com/Onegaishimas/xcc-lattice/internal/git"
	"github.com/Onegaishimas/xcc-lattice/internal/ui"
)

func runCapture(cmd *cobra.Command, opts *options, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, ui.BannerStyle.Render("🚀 Intelligent Context Clear & Resume"))
	fmt.Fprintln(out, ui.BannerStyle.Render(strings.Repeat("=", 37)))

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "🧠 Performing intelligent context clear...")

	pipeline := checkpoint.New(cfg, git.NewShellExecutor(cfg.Git.Binary))
	result, err := pipeline.Capture(cmd.Context())
	if err != nil {
		return err
	}

	printReport(out, result, pipeline.QuickResumeRef())

	if len(args) > 0 {
		fmt.Fprintf(out, "\n📝 Additional context: %s\n", strings.Join(args, " "))
	}
	return nil
}

func printReport(out io.Writer, result *checkpoint.Result, quickResumeRef string) {
	b := result.Briefing
	fmt.Fprintf(out, "📍 Detected: %s\n", b.DetectedPhase)
	fmt.Fprintf(out, "📝 Summary: %s\n", b.Summary)
	fmt.Fprintf(out, "📋 Next Steps: %d items\n", len(b.NextSteps))

	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.SuccessStyle.Render("✅ Context intelligently captured!"))
	fmt.Fprintf(out, "📸 Session: %s\n", ui.KeyStyle.Render(result.SessionID))
	fmt.Fprintf(out, "📚 Archive: %s\n", result.TranscriptPath)
	fmt.Fprintf(out, "🚀 Resume: %s\n", result.ResumePath)

	// The commands block stays unstyled so it copies cleanly
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Rule("="))
	fmt.Fprintln(out, "🎯 COPY-PASTE THESE COMMANDS TO RESUME:")
	fmt.Fprintln(out, ui.Rule("="))
	fmt.Fprintln(out, result.Commands)
	fmt.Fprintln(out, ui.Rule("="))

	fmt.Fprintf(out, "\n💡 Quick resume file: %s\n", quickResumeRef)
	fmt.Fprintln(out, "\n🧹 You can now safely use /clear - everything is preserved!")
	fmt.Fprintf(out, "📄 Commands also saved to: %s\n", result.CommandsPath)
}
