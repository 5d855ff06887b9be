package testutil

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// SampleStatusDocument is a CLAUDE.md with both managed sections
const SampleStatusDocument = `# Project Memory

Intro text that must survive updates.

## Current Status
- **Phase:** Build auth
- **Next Steps:** Task 3, write tests
- **Context Health:** Good

## Housekeeping Status
- **Last Checkpoint:** never

## Architecture
Keep this section intact.
`

// SampleTaskDocument has one completed and two pending items
const SampleTaskDocument = `# Tasks

- [x] done thing
- [ ] todo A
Some prose that is not a task.
- [ ] todo B
`

// InitRepo creates a git repository in the project directory with one
// commit per entry in commits (file name -> content), using go-git.
func (e *TestEnv) InitRepo(commits ...map[string]string) *gogit.Repository {
	e.t.Helper()

	repo, err := gogit.PlainInit(e.ProjectDir, false)
	if err != nil {
		e.t.Fatalf("Failed to init repository: %v", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		e.t.Fatalf("Failed to get worktree: %v", err)
	}

	for i, files := range commits {
		for name, content := range files {
			e.CreateFile(name, content)
			if _, err := wt.Add(name); err != nil {
				e.t.Fatalf("Failed to add %s: %v", name, err)
			}
		}
		_, err := wt.Commit("commit "+strings.Repeat("I", i+1), &gogit.CommitOptions{
			Author: &object.Signature{
				Name:  "Test User",
				Email: "test@example.com",
				When:  time.Now(),
			},
		})
		if err != nil {
			e.t.Fatalf("Failed to commit: %v", err)
		}
	}

	return repo
}

// RequireGit skips the test when the git binary is not installed.
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

// FakeGit is an executor that returns canned output per subcommand
type FakeGit struct {
	Outputs map[string]string
	Errors  map[string]error
	Calls   [][]string
}

// Execute returns the canned output for args[0]
func (f *FakeGit) Execute(_ context.Context, _ string, args ...string) ([]byte, error) {
	f.Calls = append(f.Calls, args)
	if len(args) == 0 {
		return nil, nil
	}
	if err := f.Errors[args[0]]; err != nil {
		return nil, err
	}
	return []byte(f.Outputs[args[0]]), nil
}
