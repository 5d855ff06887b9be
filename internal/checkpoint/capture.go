// Package checkpoint runs the capture pipeline: read facts, synthesize a
// briefing, persist the snapshot and emit resume commands.
package checkpoint

import (
	"context"
	"fmt"
	"time"

	"github.com/Onegaishimas/xcc-lattice/internal/briefing"
	"github.com/Onegaishimas/xcc-lattice/internal/config"
	"github.com/Onegaishimas/xcc-lattice/internal/facts"
	"github.com/Onegaishimas/xcc-lattice/internal/git"
	"github.com/Onegaishimas/xcc-lattice/internal/housekeeping"
	"github.com/Onegaishimas/xcc-lattice/internal/logger"
	"github.com/Onegaishimas/xcc-lattice/internal/resume"
)

// Result describes the artifacts of one capture
type Result struct {
	SessionID       string
	Briefing        briefing.Briefing
	Snapshot        *housekeeping.Snapshot
	Layout          facts.Layout
	SnapshotPath    string
	TranscriptPath  string
	ResumePath      string
	QuickResumePath string
	CommandsPath    string
	Commands        string
}

// Pipeline wires the capture stages for one project
type Pipeline struct {
	cfg     *config.Config
	reader  *facts.Reader
	store   *housekeeping.Store
	emitter *resume.Emitter

	// Now is the capture clock; it defaults to time.Now
	Now func() time.Time
}

// New creates a Pipeline that queries git through exec
func New(cfg *config.Config, exec git.Executor) *Pipeline {
	store := housekeeping.NewStore(cfg)
	return &Pipeline{
		cfg:     cfg,
		reader:  facts.NewReader(cfg, exec),
		store:   store,
		emitter: resume.NewEmitter(cfg, store),
		Now:     time.Now,
	}
}

// Capture runs the pipeline with the configured git binary
func Capture(ctx context.Context, cfg *config.Config) (*Result, error) {
	return New(cfg, git.NewShellExecutor(cfg.Git.Binary)).Capture(ctx)
}

// Capture reads the project once, then writes every artifact. Reading
// never fails; the first write failure aborts the run.
func (p *Pipeline) Capture(ctx context.Context) (*Result, error) {
	now := p.Now()
	log := logger.WithField("root", p.cfg.Project.Root)

	f := p.reader.Read(ctx)
	if f.Git.Error != "" {
		log.Debug().Str("error", f.Git.Error).Msg("git state unavailable")
	}

	synth := &briefing.Synthesizer{Now: func() time.Time { return now }}
	b := synth.Synthesize(f)

	snap := housekeeping.NewSnapshot(now, b, f)
	result := &Result{
		SessionID: snap.SessionID,
		Briefing:  b,
		Snapshot:  snap,
		Layout:    p.emitter.Layout(),
	}

	var err error
	if result.SnapshotPath, err = p.store.SaveSnapshot(snap); err != nil {
		return nil, err
	}
	if result.TranscriptPath, err = p.store.WriteTranscript(snap.SessionID, now); err != nil {
		return nil, err
	}
	if result.ResumePath, err = p.store.WriteResume(snap); err != nil {
		return nil, err
	}
	if err := p.store.UpdateStatusDocument(p.cfg.StatusPath(), snap, now); err != nil {
		return nil, err
	}

	result.Commands = p.emitter.BuildCommands(snap.SessionID)
	if result.QuickResumePath, err = p.store.WriteQuickResume(result.Commands); err != nil {
		return nil, err
	}
	if result.CommandsPath, err = p.emitter.WriteCommandsFile(result.Commands); err != nil {
		return nil, err
	}

	log.Info().
		Str("session", snap.SessionID).
		Str("run", snap.RunID).
		Str("layout", result.Layout.Mode).
		Msg("context captured")

	return result, nil
}

// QuickResumeRef is the "@" reference users paste to reload the latest commands
func (p *Pipeline) QuickResumeRef() string {
	return p.store.Ref(housekeeping.QuickResumeFile)
}

// CommandsFor rebuilds the resume commands for an earlier session. The
// session must have a saved snapshot.
func CommandsFor(cfg *config.Config, sessionID string) (string, error) {
	store := housekeeping.NewStore(cfg)
	if _, err := store.Load(sessionID); err != nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	return resume.NewEmitter(cfg, store).BuildCommands(sessionID), nil
}
