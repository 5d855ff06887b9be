package housekeeping

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Onegaishimas/xcc-lattice/internal/config"
	"github.com/Onegaishimas/xcc-lattice/internal/facts"
)

// QuickResumeFile is overwritten on every capture with the latest commands
const QuickResumeFile = "QUICK_RESUME.md"

// Store writes capture artifacts into the housekeeping directory
type Store struct {
	dir        string // absolute directory
	rel        string // directory as referenced from the project root
	statusFile string
	layout     facts.Layout
}

// NewStore creates a Store for the configured project
func NewStore(cfg *config.Config) *Store {
	return &Store{
		dir:        cfg.HousekeepingPath(),
		rel:        filepath.ToSlash(cfg.Housekeeping.Dir),
		statusFile: filepath.ToSlash(cfg.Project.StatusFile),
		layout:     facts.ResolveLayout(cfg.Project.Root, cfg.Layout),
	}
}

// SnapshotPath returns the snapshot file for a session
func (s *Store) SnapshotPath(sessionID string) string {
	return filepath.Join(s.dir, SnapshotFileName(sessionID))
}

// ResumePath returns the resume document for a session
func (s *Store) ResumePath(sessionID string) string {
	return filepath.Join(s.dir, ResumeFileName(sessionID))
}

// TranscriptPath returns the transcript placeholder for a session
func (s *Store) TranscriptPath(sessionID string) string {
	return filepath.Join(s.dir, TranscriptFileName(sessionID))
}

// Ref returns a project-relative "@" reference to a housekeeping file
func (s *Store) Ref(name string) string {
	return "@" + s.rel + "/" + name
}

// SnapshotFileName names the snapshot record for a session
func SnapshotFileName(sessionID string) string {
	return fmt.Sprintf("snapshot_%s.json", sessionID)
}

// ResumeFileName names the resume document for a session
func ResumeFileName(sessionID string) string {
	return fmt.Sprintf("resume_%s.md", sessionID)
}

// TranscriptFileName names the transcript placeholder for a session
func TranscriptFileName(sessionID string) string {
	return fmt.Sprintf("transcript_%s.md", sessionID)
}

func (s *Store) ensureDir() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create housekeeping directory: %w", err)
	}
	return nil
}

func (s *Store) write(path, content string) (string, error) {
	if err := s.ensureDir(); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return path, nil
}

// SaveSnapshot writes the snapshot as indented JSON, replacing any
// snapshot with the same session identifier
func (s *Store) SaveSnapshot(snap *Snapshot) (string, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return s.write(s.SnapshotPath(snap.SessionID), string(data))
}

// WriteResume renders the human-readable resume document
func (s *Store) WriteResume(snap *Snapshot) (string, error) {
	return s.write(s.ResumePath(snap.SessionID), s.RenderResume(snap))
}

// RenderResume returns the resume document for a snapshot
func (s *Store) RenderResume(snap *Snapshot) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Resume Session %s\n\n", snap.SessionID))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", snap.Timestamp.Format(time.RFC3339)))

	sb.WriteString("## Context Summary\n")
	sb.WriteString(snap.ContextSummary + "\n\n")

	sb.WriteString("## Next Steps\n")
	for _, step := range snap.NextSteps {
		sb.WriteString(fmt.Sprintf("- %s\n", step))
	}
	sb.WriteString("\n")

	sb.WriteString("## Notes\n")
	sb.WriteString(snap.Notes + "\n\n")

	sb.WriteString("## Git State\n")
	sb.WriteString(fmt.Sprintf("- Modified files: %d\n", len(snap.GitState.StatusFiles)))
	sb.WriteString(fmt.Sprintf("- Recent commits: %d\n\n", len(snap.GitState.RecentCommits)))

	sb.WriteString("## Task Progress\n")
	sb.WriteString(fmt.Sprintf("- Completed: %d\n", len(snap.TaskData.Completed)))
	sb.WriteString(fmt.Sprintf("- Pending: %d\n\n", len(snap.TaskData.Pending)))

	sb.WriteString("## Quick Actions\n")
	sb.WriteString("1. Check git status: `git status`\n")
	sb.WriteString(fmt.Sprintf("2. Review pending tasks: `@%s/`\n", s.layout.TasksDir))
	sb.WriteString(fmt.Sprintf("3. Continue from: %s\n\n", snap.ContextSummary))

	sb.WriteString("## Files to Load\n")
	sb.WriteString(fmt.Sprintf("- `@%s` - Project memory\n", s.statusFile))
	sb.WriteString(fmt.Sprintf("- `@%s/` - Current tasks\n", s.layout.TasksDir))
	sb.WriteString(fmt.Sprintf("- `@%s/` - Architecture decisions\n", s.layout.ADRDir))

	return sb.String()
}

// WriteTranscript writes the transcript archive placeholder
func (s *Store) WriteTranscript(sessionID string, now time.Time) (string, error) {
	content := fmt.Sprintf(`# Session Transcript Archive - %s

Generated: %s

Full transcript archiving is not implemented.
To archive a session transcript you would need to:
1. Locate the assistant's transcript files for this session
2. Copy the current session into this directory
3. Parse and format it for future reference
`, sessionID, now.Format(time.RFC3339))

	return s.write(s.TranscriptPath(sessionID), content)
}

// WriteQuickResume overwrites QUICK_RESUME.md with the resume commands
func (s *Store) WriteQuickResume(commands string) (string, error) {
	return s.write(filepath.Join(s.dir, QuickResumeFile), commands)
}

// SnapshotInfo is a listing entry for a saved snapshot
type SnapshotInfo struct {
	SessionID string
	Timestamp time.Time
	Summary   string
	NextSteps int
	Path      string
}

// List returns saved snapshots, newest first. limit <= 0 means all.
// A missing housekeeping directory yields an empty list.
func (s *Store) List(limit int) ([]SnapshotInfo, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "snapshot_*.json"))
	if err != nil {
		return nil, err
	}

	var infos []SnapshotInfo
	for _, path := range paths {
		snap, err := readSnapshot(path)
		if err != nil {
			// Skip snapshots that cannot be parsed
			continue
		}
		infos = append(infos, SnapshotInfo{
			SessionID: snap.SessionID,
			Timestamp: snap.Timestamp,
			Summary:   snap.ContextSummary,
			NextSteps: len(snap.NextSteps),
			Path:      path,
		})
	}

	// Session identifiers sort chronologically
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].SessionID > infos[j].SessionID
	})

	if limit > 0 && len(infos) > limit {
		infos = infos[:limit]
	}
	return infos, nil
}

// Load reads a saved snapshot by session identifier
func (s *Store) Load(sessionID string) (*Snapshot, error) {
	snap, err := readSnapshot(s.SnapshotPath(sessionID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("session not found: %s", sessionID)
		}
		return nil, err
	}
	return snap, nil
}

func readSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot %s: %w", filepath.Base(path), err)
	}
	return &snap, nil
}
