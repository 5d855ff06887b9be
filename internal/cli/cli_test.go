package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Onegaishimas/xcc-lattice/internal/testutil"
)

var sessionIDPattern = regexp.MustCompile(`📸 Session: (\d{8}_\d{6})`)

// run executes the command tree against the test project
func run(t *testing.T, env *testutil.TestEnv, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCommand("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"-C", env.ProjectDir}, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func captureSession(t *testing.T, env *testutil.TestEnv) string {
	t.Helper()

	out, err := run(t, env)
	require.NoError(t, err)

	m := sessionIDPattern.FindStringSubmatch(out)
	require.Len(t, m, 2, "no session in output:\n%s", out)
	return m[1]
}

func TestCaptureReport(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	env.CreateFile("CLAUDE.md", testutil.SampleStatusDocument)
	env.CreateFile("tasks/001_tasks.md", testutil.SampleTaskDocument)

	out, err := run(t, env, "fixing", "login", "--", "--dry")
	require.NoError(t, err)

	assert.Contains(t, out, "🚀 Intelligent Context Clear & Resume")
	assert.Contains(t, out, "📍 Detected: Build auth")
	assert.Contains(t, out, "📋 Next Steps: 1 items")
	assert.Contains(t, out, "✅ Context intelligently captured!")
	assert.Contains(t, out, "🎯 COPY-PASTE THESE COMMANDS TO RESUME:")
	assert.Contains(t, out, "@CLAUDE.md\n@tasks/001_tasks.md\n")
	assert.Contains(t, out, "# ✅ READY TO CONTINUE!")
	assert.Contains(t, out, "💡 Quick resume file: @.housekeeping/QUICK_RESUME.md")
	assert.Contains(t, out, "📄 Commands also saved to: "+filepath.Join(env.ProjectDir, "RESUME_COMMANDS.txt"))
	assert.Contains(t, out, "📝 Additional context: fixing login --dry")

	assert.True(t, env.FileExists("RESUME_COMMANDS.txt"))
	assert.True(t, env.FileExists(".housekeeping/QUICK_RESUME.md"))
}

func TestCaptureEmptyProject(t *testing.T) {
	env := testutil.SetupTestEnv(t)

	out, err := run(t, env)
	require.NoError(t, err)

	assert.Contains(t, out, "📍 Detected: Unknown phase")
	assert.Contains(t, out, "📝 Summary: Working on Unknown phase. Next: Unknown next steps")
	assert.NotContains(t, out, "Additional context")
}

func TestCaptureMissingProjectDir(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	env.ProjectDir = filepath.Join(env.ProjectDir, "missing")

	_, err := run(t, env)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open project directory")
}

func TestCommandsReprint(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	sessionID := captureSession(t, env)

	out, err := run(t, env, "commands", sessionID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# 🚀 INSTANT RESUME - Session "+sessionID+"\n"))
	assert.Equal(t, env.ReadFile("RESUME_COMMANDS.txt")+"\n", out)

	_, err = run(t, env, "commands", "19990101_000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session not found")
}

func TestHistoryListEmpty(t *testing.T) {
	env := testutil.SetupTestEnv(t)

	out, err := run(t, env, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No session history found.")
}

func TestHistoryListAndShow(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	env.CreateFile("CLAUDE.md", testutil.SampleStatusDocument)
	sessionID := captureSession(t, env)

	out, err := run(t, env, "history", "list", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Recent Sessions (1):")
	assert.Contains(t, out, sessionID)
	assert.Contains(t, out, "Working on Build auth")

	raw, err := run(t, env, "history", "show", sessionID, "--raw")
	require.NoError(t, err)
	assert.Equal(t, env.ReadFile(".housekeeping/resume_"+sessionID+".md"), raw)

	rendered, err := run(t, env, "history", "show", sessionID)
	require.NoError(t, err)
	assert.Contains(t, rendered, "Context Summary")

	_, err = run(t, env, "history", "show", "19990101_000000")
	require.Error(t, err)
}

func TestConfigInitShowAndPath(t *testing.T) {
	env := testutil.SetupTestEnv(t)

	out, err := run(t, env, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(".housekeeping", "config.yaml"))
	assert.True(t, env.FileExists(".housekeeping/config.yaml"))

	_, err = run(t, env, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = run(t, env, "config", "init", "--force")
	require.NoError(t, err)

	env.CreateFile(".housekeeping/config.yaml", "layout:\n  mode: conventional\n")
	out, err = run(t, env, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "mode: conventional")
	assert.Contains(t, out, "status_file: CLAUDE.md")

	out, err = run(t, env, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, "Global:  "+filepath.Join(env.Home, ".housekeeping", "config.yaml"))
	assert.Contains(t, out, "Project: "+filepath.Join(env.ProjectDir, ".housekeeping", "config.yaml"))
}

func TestConfigInitGlobal(t *testing.T) {
	env := testutil.SetupTestEnv(t)

	_, err := run(t, env, "config", "init", "--global")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(env.Home, ".housekeeping", "config.yaml"))
}

func TestInvalidConfigFails(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	env.CreateFile(".housekeeping/config.yaml", "layout:\n  mode: sideways\n")

	_, err := run(t, env)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestVersion(t *testing.T) {
	env := testutil.SetupTestEnv(t)

	out, err := run(t, env, "version")
	require.NoError(t, err)
	assert.Equal(t, "clear-resume test\n", out)
}
