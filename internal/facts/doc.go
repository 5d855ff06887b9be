// Package facts reads the project context a resume is built from.
//
// Three sources are read, each degrading to its empty form when absent or
// unreadable:
//
//   - Status document: the "## Current Status" section of CLAUDE.md,
//     written as "- **Key:** value" or "Key: value" lines.
//
//   - Task document: the first markdown file (by sorted name) in the
//     tasks directory. "- [ ]" lines are pending, "- [x]" lines completed.
//
//   - Git state: "git status --porcelain" and "git log --oneline -10" run
//     in the project root.
//
// The Reader never returns an error. Git failures are recorded in
// GitFacts.Error so they can be shown alongside the empty data.
package facts
