package facts

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Onegaishimas/xcc-lattice/internal/config"
)

// Checkbox markers recognised in task documents
const (
	pendingMarker   = "- [ ]"
	completedMarker = "- [x]"
	// GitHub renders both cases as checked
	completedMarkerUpper = "- [X]"
)

// ParseTasks collects checkbox lines. A line with a pending marker is
// pending even if it also contains a completed marker.
func ParseTasks(content string) TaskFacts {
	tasks := EmptyTasks()

	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.Contains(line, pendingMarker):
			tasks.Pending = append(tasks.Pending, strings.TrimSpace(line))
		case strings.Contains(line, completedMarker), strings.Contains(line, completedMarkerUpper):
			tasks.Completed = append(tasks.Completed, strings.TrimSpace(line))
		}
	}

	return tasks
}

// TasksDir returns the project-relative tasks directory to read, or ""
// when none exists. In auto mode a missing alternate tasks directory falls
// back to the conventional one.
func (r *Reader) TasksDir() string {
	candidates := []string{r.layout.TasksDir}
	if r.layoutCfg.Mode == config.LayoutAuto && r.layout.Mode == config.LayoutXCC {
		candidates = append(candidates, ConventionalLayout().TasksDir)
	}
	for _, rel := range candidates {
		if isDir(filepath.Join(r.root, filepath.FromSlash(rel))) {
			return rel
		}
	}
	return ""
}

// ReadTasks reads the first task document. Missing directories, missing
// documents and read failures all yield empty sequences.
func (r *Reader) ReadTasks() TaskFacts {
	rel := r.TasksDir()
	if rel == "" {
		r.log.Debug().Msg("no tasks directory")
		return EmptyTasks()
	}

	dir := filepath.Join(r.root, filepath.FromSlash(rel))
	name, err := FirstDocument(dir, r.layoutCfg.TaskGlob)
	if err != nil {
		r.log.Warn().Err(err).Str("dir", dir).Msg("task documents unreadable")
		return EmptyTasks()
	}
	if name == "" {
		return EmptyTasks()
	}

	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		r.log.Warn().Err(err).Str("file", name).Msg("task document unreadable")
		return EmptyTasks()
	}

	tasks := ParseTasks(string(content))
	tasks.Source = path.Join(rel, name)
	return tasks
}
