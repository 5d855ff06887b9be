// Package git runs the git CLI for read-only working-tree queries.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Executor abstracts git command execution
type Executor interface {
	// Execute runs git with args in dir and returns stdout
	Execute(ctx context.Context, dir string, args ...string) ([]byte, error)
}

// ShellExecutor implements Executor using the git binary
type ShellExecutor struct {
	binary string
}

// NewShellExecutor creates a shell-based executor. An empty binary means "git".
func NewShellExecutor(binary string) *ShellExecutor {
	if binary == "" {
		binary = "git"
	}
	return &ShellExecutor{binary: binary}
}

// Execute runs a git command in the specified directory. No timeout is
// applied; only ctx cancellation stops it.
func (e *ShellExecutor) Execute(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, e.binary, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
		}
		return nil, fmt.Errorf("git %s failed: %w: %s", strings.Join(args, " "), err, msg)
	}

	return stdout.Bytes(), nil
}

// Lines splits command output into lines. Trailing carriage returns and
// blank lines are dropped; leading whitespace is kept because porcelain
// status codes may begin with a space.
func Lines(out []byte) []string {
	lines := []string{}
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
