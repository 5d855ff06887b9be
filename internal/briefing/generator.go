package briefing

import (
	"fmt"
	"strings"
	"time"

	"github.com/Onegaishimas/xcc-lattice/internal/facts"
	"github.com/Onegaishimas/xcc-lattice/internal/logger"
)

const (
	unknownPhase     = "Unknown phase"
	unknownNextSteps = "Unknown next steps"

	maxRecentFiles  = 5
	summaryFiles    = 3
	fallbackPending = 3
)

// Briefing holds the synthesized context for one capture
type Briefing struct {
	Summary       string
	NextSteps     []string
	Notes         string
	DetectedPhase string
	RecentFiles   []string
}

// Synthesizer builds briefings. Now defaults to time.Now.
type Synthesizer struct {
	Now func() time.Time
}

// NewSynthesizer creates a Synthesizer using the wall clock
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{Now: time.Now}
}

// Synthesize merges facts into a briefing. It never fails.
func (s *Synthesizer) Synthesize(f facts.Facts) (b Briefing) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warnf("briefing synthesis failed: %v", r)
			b = s.degraded(fmt.Errorf("%v", r))
		}
	}()

	now := s.now()

	phase, ok := f.Status[facts.FieldPhase]
	if !ok {
		phase = unknownPhase
	}
	nextStepsText, ok := f.Status[facts.FieldNextSteps]
	if !ok {
		nextStepsText = unknownNextSteps
	}

	recent := RecentFiles(f.Git.StatusFiles)

	summary := fmt.Sprintf("Working on %s. Next: %s", phase, nextStepsText)
	if len(recent) > 0 {
		summary += fmt.Sprintf(". Recently modified: %s", strings.Join(head(recent, summaryFiles), ", "))
	}

	steps := []string{}
	if text, ok := f.Status[facts.FieldNextSteps]; ok {
		steps = ParseNextSteps(text)
	}
	if len(steps) == 0 && len(f.Tasks.Pending) > 0 {
		steps = append(steps, head(f.Tasks.Pending, fallbackPending)...)
	}

	return Briefing{
		Summary:   summary,
		NextSteps: steps,
		Notes: fmt.Sprintf("Auto-context clear at %s. Progress: %d tasks done, %d pending.",
			now.Format("15:04"), len(f.Tasks.Completed), len(f.Tasks.Pending)),
		DetectedPhase: phase,
		RecentFiles:   recent,
	}
}

// degraded is the briefing used when synthesis panics
func (s *Synthesizer) degraded(cause error) Briefing {
	// The clock may be what failed
	now := time.Now()
	return Briefing{
		Summary:       fmt.Sprintf("Context clear checkpoint - %s", now.Format("15:04")),
		NextSteps:     []string{"Continue current work"},
		Notes:         fmt.Sprintf("Auto-detected context (error: %s)", cause),
		DetectedPhase: "Unknown",
		RecentFiles:   []string{},
	}
}

func (s *Synthesizer) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// RecentFiles derives file names from the first porcelain status lines.
// Lines shorter than 3 bytes are skipped; the name starts at offset 3.
func RecentFiles(statusLines []string) []string {
	files := []string{}
	for _, line := range head(statusLines, maxRecentFiles) {
		if len(line) < 3 {
			continue
		}
		files = append(files, line[3:])
	}
	return files
}

// ParseNextSteps splits a Next Steps status value into steps. A value that
// mentions a Task is kept whole.
func ParseNextSteps(text string) []string {
	if strings.Contains(text, "Task") {
		return []string{text}
	}

	steps := []string{}
	for _, part := range strings.Split(text, ",") {
		if part = strings.TrimSpace(part); part != "" {
			steps = append(steps, part)
		}
	}
	return steps
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
