package facts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"

	"github.com/Onegaishimas/xcc-lattice/internal/config"
)

// Layout is a resolved task/decision directory convention. Paths are
// relative to the project root and use forward slashes.
type Layout struct {
	Mode     string
	TasksDir string
	ADRDir   string
}

// ConventionalLayout is the tasks/ + adrs/ convention
func ConventionalLayout() Layout {
	return Layout{Mode: config.LayoutConventional, TasksDir: "tasks", ADRDir: "adrs"}
}

// AltLayout nests tasks and decisions under an alternate top-level directory
func AltLayout(altDir string) Layout {
	return Layout{Mode: config.LayoutXCC, TasksDir: altDir + "/tasks", ADRDir: altDir + "/adrs"}
}

// ResolveLayout picks the layout for a project. In auto mode the alternate
// layout wins when its top-level directory exists.
func ResolveLayout(root string, lc config.LayoutConfig) Layout {
	switch lc.Mode {
	case config.LayoutXCC:
		return AltLayout(lc.AltDir)
	case config.LayoutConventional:
		return ConventionalLayout()
	}
	if lc.AltDir != "" && isDir(filepath.Join(root, lc.AltDir)) {
		return AltLayout(lc.AltDir)
	}
	return ConventionalLayout()
}

// FirstDocument returns the lexicographically first regular file in dir
// whose name matches pattern, or "" when there is none or dir is missing.
func FirstDocument(dir, pattern string) (string, error) {
	matches, err := Documents(dir, pattern)
	if err != nil || len(matches) == 0 {
		return "", err
	}
	return matches[0], nil
}

// Documents returns the sorted names of regular files in dir matching pattern
func Documents(dir, pattern string) ([]string, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid document pattern %q: %w", pattern, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !g.Match(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
