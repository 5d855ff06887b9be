// Package resume builds the copy-paste commands that restart a cleared
// assistant session.
package resume

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Onegaishimas/xcc-lattice/internal/config"
	"github.com/Onegaishimas/xcc-lattice/internal/facts"
	"github.com/Onegaishimas/xcc-lattice/internal/housekeeping"
	"github.com/Onegaishimas/xcc-lattice/internal/logger"
)

// Emitter renders resume commands for one project
type Emitter struct {
	root         string
	statusFile   string
	layout       facts.Layout
	taskGlob     string
	adrGlob      string
	sourceDir    string
	store        *housekeeping.Store
	commandsPath string
	log          zerolog.Logger
}

// NewEmitter creates an Emitter for the configured project
func NewEmitter(cfg *config.Config, store *housekeeping.Store) *Emitter {
	return &Emitter{
		root:         cfg.Project.Root,
		statusFile:   filepath.ToSlash(cfg.Project.StatusFile),
		layout:       facts.ResolveLayout(cfg.Project.Root, cfg.Layout),
		taskGlob:     cfg.Layout.TaskGlob,
		adrGlob:      cfg.Layout.ADRGlob,
		sourceDir:    cfg.Layout.SourceDir,
		store:        store,
		commandsPath: cfg.CommandsPath(),
		log:          logger.WithField("component", "resume"),
	}
}

// Layout returns the directory convention the commands refer to
func (e *Emitter) Layout() facts.Layout {
	return e.layout
}

// BuildCommands returns the resume commands for a session
func (e *Emitter) BuildCommands(sessionID string) string {
	commands := []string{
		fmt.Sprintf("# 🚀 INSTANT RESUME - Session %s", sessionID),
		"",
		"# 1. Load core project context",
		"@" + e.statusFile,
	}

	if ref := e.firstDocumentRef(e.layout.TasksDir, e.taskGlob); ref != "" {
		commands = append(commands, ref)
	}
	if ref := e.firstDocumentRef(e.layout.ADRDir, e.adrGlob); ref != "" {
		commands = append(commands, ref)
	}

	commands = append(commands,
		"",
		"# 2. Load session resume script",
		e.store.Ref(housekeeping.ResumeFileName(sessionID)),
		"",
		"# 3. Check current status",
		e.listCommand(),
		"git status",
		"",
		"# 4. Quick project overview",
		"/compact",
		"",
		"# ✅ READY TO CONTINUE!",
	)

	return strings.Join(commands, "\n")
}

// WriteCommandsFile saves the commands at the project root
func (e *Emitter) WriteCommandsFile(commands string) (string, error) {
	if err := os.WriteFile(e.commandsPath, []byte(commands), 0644); err != nil {
		return "", fmt.Errorf("failed to write commands file: %w", err)
	}
	return e.commandsPath, nil
}

// firstDocumentRef returns "@<dir>/<first match>" or "" when the
// directory is missing or has no matching document.
func (e *Emitter) firstDocumentRef(rel, pattern string) string {
	dir := filepath.Join(e.root, filepath.FromSlash(rel))
	name, err := facts.FirstDocument(dir, pattern)
	if err != nil {
		e.log.Warn().Err(err).Str("dir", dir).Msg("skipping document reference")
		return ""
	}
	if name == "" {
		return ""
	}
	return "@" + rel + "/" + name
}

func (e *Emitter) listCommand() string {
	if e.sourceDir != "" {
		if info, err := os.Stat(filepath.Join(e.root, e.sourceDir)); err == nil && info.IsDir() {
			return fmt.Sprintf("ls -la %s/", e.sourceDir)
		}
	}
	return "ls -la"
}
