package housekeeping

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Onegaishimas/xcc-lattice/internal/briefing"
	"github.com/Onegaishimas/xcc-lattice/internal/config"
	"github.com/Onegaishimas/xcc-lattice/internal/facts"
	"github.com/Onegaishimas/xcc-lattice/internal/testutil"
)

var captureTime = time.Date(2026, 10, 19, 14, 5, 9, 0, time.Local)

func sampleSnapshot(at time.Time) *Snapshot {
	b := briefing.Briefing{
		Summary:   "Working on Build auth. Next: Task 3, write tests",
		NextSteps: []string{"Task 3, write tests", "second", "third"},
		Notes:     "Auto-context clear at 14:05. Progress: 1 tasks done, 2 pending.",
	}
	f := facts.Facts{
		Status: facts.StatusFacts{"Phase": "Build auth"},
		Tasks: facts.TaskFacts{
			Completed: []string{"- [x] done thing"},
			Pending:   []string{"- [ ] todo A", "- [ ] todo B"},
		},
		Git: facts.GitFacts{StatusFiles: []string{" M file1.py"}},
	}
	return NewSnapshot(at, b, f)
}

func TestNewSnapshot(t *testing.T) {
	snap := NewSnapshot(captureTime, briefing.Briefing{}, facts.Facts{})

	assert.Equal(t, "20261019_140509", snap.SessionID)
	assert.NotEmpty(t, snap.RunID)
	assert.Equal(t, captureTime, snap.Timestamp)

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")
	assert.Contains(t, string(data), `"completed_tasks":[]`)
	assert.Contains(t, string(data), `"current_status":{}`)
}

func TestNewSnapshotRunIDsDiffer(t *testing.T) {
	a := NewSnapshot(captureTime, briefing.Briefing{}, facts.Facts{})
	b := NewSnapshot(captureTime, briefing.Briefing{}, facts.Facts{})

	assert.Equal(t, a.SessionID, b.SessionID)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	store := NewStore(env.Config())
	snap := sampleSnapshot(captureTime)

	path, err := store.SaveSnapshot(snap)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(env.ProjectDir, ".housekeeping", "snapshot_20261019_140509.json"), path)

	loaded, err := store.Load(snap.SessionID)
	require.NoError(t, err)
	assert.Equal(t, snap.SessionID, loaded.SessionID)
	assert.Equal(t, snap.RunID, loaded.RunID)
	assert.Equal(t, snap.NextSteps, loaded.NextSteps)
	assert.Equal(t, snap.TaskData, loaded.TaskData)
	assert.Equal(t, "Build auth", loaded.ClaudeData.CurrentStatus["Phase"])
	assert.True(t, snap.Timestamp.Equal(loaded.Timestamp))
}

func TestSaveSnapshotOverwrites(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	store := NewStore(env.Config())

	first := sampleSnapshot(captureTime)
	second := NewSnapshot(captureTime, briefing.Briefing{Summary: "later"}, facts.Facts{})

	_, err := store.SaveSnapshot(first)
	require.NoError(t, err)
	_, err = store.SaveSnapshot(second)
	require.NoError(t, err)

	loaded, err := store.Load(first.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "later", loaded.ContextSummary)
}

func TestLoadMissingSnapshot(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	store := NewStore(env.Config())

	_, err := store.Load("19990101_000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session not found")
}

func TestListNewestFirst(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	store := NewStore(env.Config())

	for i := 0; i < 3; i++ {
		_, err := store.SaveSnapshot(sampleSnapshot(captureTime.Add(time.Duration(i) * time.Minute)))
		require.NoError(t, err)
	}
	env.CreateFile(".housekeeping/snapshot_broken.json", "{not json")

	infos, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, "20261019_140709", infos[0].SessionID)
	assert.Equal(t, "20261019_140509", infos[2].SessionID)
	assert.Equal(t, 3, infos[0].NextSteps)

	limited, err := store.List(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestListWithoutDirectory(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	store := NewStore(env.Config())

	infos, err := store.List(10)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestWriteResume(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	store := NewStore(env.Config())
	snap := sampleSnapshot(captureTime)

	path, err := store.WriteResume(snap)
	require.NoError(t, err)
	assert.Equal(t, store.ResumePath(snap.SessionID), path)

	content := env.ReadFile(".housekeeping/resume_20261019_140509.md")
	assert.True(t, strings.HasPrefix(content, "# Resume Session 20261019_140509\n"))
	for _, want := range []string{
		"## Context Summary\nWorking on Build auth. Next: Task 3, write tests\n",
		"## Next Steps\n- Task 3, write tests\n- second\n- third\n",
		"- Modified files: 1\n- Recent commits: 0\n",
		"- Completed: 1\n- Pending: 2\n",
		"2. Review pending tasks: `@tasks/`",
		"- `@CLAUDE.md` - Project memory",
		"- `@tasks/` - Current tasks",
		"- `@adrs/` - Architecture decisions",
	} {
		assert.Contains(t, content, want)
	}
}

func TestRenderResumeFollowsLayout(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	snap := sampleSnapshot(captureTime)

	cfg := env.Config()
	cfg.Layout.Mode = config.LayoutConventional
	cfg.Project.StatusFile = "NOTES.md"
	env.CreateDir("!xcc")

	content := NewStore(cfg).RenderResume(snap)

	assert.Contains(t, content, "- `@NOTES.md` - Project memory\n")
	assert.Contains(t, content, "- `@tasks/` - Current tasks\n")
	assert.Contains(t, content, "- `@adrs/` - Architecture decisions\n")
	assert.NotContains(t, content, "!xcc")
	assert.NotContains(t, content, "CLAUDE.md")

	// Auto mode picks up the alternate directory
	alt := NewStore(env.Config()).RenderResume(snap)
	assert.Contains(t, alt, "2. Review pending tasks: `@!xcc/tasks/`\n")
	assert.Contains(t, alt, "- `@!xcc/adrs/` - Architecture decisions\n")
}

func TestWriteTranscriptAndQuickResume(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	store := NewStore(env.Config())

	_, err := store.WriteTranscript("20261019_140509", captureTime)
	require.NoError(t, err)
	assert.Contains(t, env.ReadFile(".housekeeping/transcript_20261019_140509.md"),
		"# Session Transcript Archive - 20261019_140509")

	_, err = store.WriteQuickResume("first")
	require.NoError(t, err)
	_, err = store.WriteQuickResume("second")
	require.NoError(t, err)
	assert.Equal(t, "second", env.ReadFile(".housekeeping/QUICK_RESUME.md"))
}

func TestUpdateStatusDocument(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	store := NewStore(env.Config())
	path := env.CreateFile("CLAUDE.md", testutil.SampleStatusDocument)
	snap := sampleSnapshot(captureTime)

	require.NoError(t, store.UpdateStatusDocument(path, snap, captureTime))

	content := env.ReadFile("CLAUDE.md")
	assert.True(t, strings.HasPrefix(content, "# Project Memory\n\nIntro text that must survive updates.\n\n## Current Status\n"))
	assert.True(t, strings.HasSuffix(content, "## Architecture\nKeep this section intact.\n"))
	assert.Contains(t, content, "- **Last Session:** 2026-10-19 14:05 - Intelligent context clear (Session 20261019_140509)")
	assert.Contains(t, content, "- **Next Steps:** Task 3, write tests | second\n")
	assert.Contains(t, content, "- **Active Document:** Resume from @.housekeeping/resume_20261019_140509.md")
	assert.Contains(t, content, "- **Last Transcript Save:** @.housekeeping/transcript_20261019_140509.md")
	assert.Contains(t, content, "- **Quick Resume:** @.housekeeping/QUICK_RESUME.md")
	assert.NotContains(t, content, "Build auth")
	assert.NotContains(t, content, "never")
	assert.Equal(t, 1, strings.Count(content, facts.HousekeepingStatusHeading))

	// The regenerated Phase reads back through the status parser
	status := facts.ParseStatus(content)
	assert.Equal(t, "Context cleared and preserved", status[facts.FieldPhase])
	assert.Equal(t, "Cleared and archived", status["Context Health"])
}

func TestUpdateStatusDocumentInsertsHousekeeping(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	store := NewStore(env.Config())
	path := env.CreateFile("CLAUDE.md", "# Memory\n\n## Current Status\n- **Phase:** x\n\n## Notes\nkeep\n")

	require.NoError(t, store.UpdateStatusDocument(path, sampleSnapshot(captureTime), captureTime))

	content := env.ReadFile("CLAUDE.md")
	current := strings.Index(content, facts.CurrentStatusHeading)
	hk := strings.Index(content, facts.HousekeepingStatusHeading)
	notes := strings.Index(content, "## Notes")
	assert.True(t, current < hk && hk < notes, "sections out of order:\n%s", content)
	assert.True(t, strings.HasSuffix(content, "## Notes\nkeep\n"))
}

func TestRewriteStatusKeepsTopLevelSections(t *testing.T) {
	store := &Store{rel: ".housekeeping"}
	content := "## Current Status\n- **Phase:** X\n\n# Appendix\nKeep me.\n\n## Housekeeping Status\n- old\n"

	got := store.RewriteStatus(content, sampleSnapshot(captureTime), captureTime)

	assert.Contains(t, got, "\n# Appendix\nKeep me.\n\n## Housekeeping Status\n")
	assert.NotContains(t, got, "- old")
	assert.Equal(t, 1, strings.Count(got, facts.HousekeepingStatusHeading))
	assert.Equal(t, "Context cleared and preserved", facts.ParseStatus(got)[facts.FieldPhase])
}

func TestUpdateStatusDocumentIsRepeatable(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	store := NewStore(env.Config())
	path := env.CreateFile("CLAUDE.md", testutil.SampleStatusDocument)
	snap := sampleSnapshot(captureTime)

	require.NoError(t, store.UpdateStatusDocument(path, snap, captureTime))
	once := env.ReadFile("CLAUDE.md")
	require.NoError(t, store.UpdateStatusDocument(path, snap, captureTime))

	assert.Equal(t, once, env.ReadFile("CLAUDE.md"))
}

func TestUpdateStatusDocumentMissing(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	store := NewStore(env.Config())
	path := filepath.Join(env.ProjectDir, "CLAUDE.md")

	require.NoError(t, store.UpdateStatusDocument(path, sampleSnapshot(captureTime), captureTime))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRewriteStatusWithoutManagedSections(t *testing.T) {
	store := &Store{rel: ".housekeeping"}
	content := "# Memory\n\n## Other\ntext\n"

	assert.Equal(t, content, store.RewriteStatus(content, sampleSnapshot(captureTime), captureTime))
}
