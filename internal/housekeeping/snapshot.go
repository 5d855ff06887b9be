package housekeeping

import (
	"time"

	"github.com/google/uuid"

	"github.com/Onegaishimas/xcc-lattice/internal/briefing"
	"github.com/Onegaishimas/xcc-lattice/internal/facts"
)

// SessionIDLayout formats capture time into a session identifier
const SessionIDLayout = "20060102_150405"

// Snapshot is the persisted record of one capture. It is built once and
// never modified.
type Snapshot struct {
	SessionID string `json:"session_id"`
	// RunID tells apart captures that share a session identifier
	RunID          string          `json:"run_id"`
	Timestamp      time.Time       `json:"timestamp"`
	ContextSummary string          `json:"context_summary"`
	NextSteps      []string        `json:"next_steps"`
	Notes          string          `json:"notes"`
	GitState       facts.GitFacts  `json:"git_state"`
	TaskData       facts.TaskFacts `json:"task_data"`
	ClaudeData     ClaudeData      `json:"claude_data"`
}

// ClaudeData holds what was read from the status document
type ClaudeData struct {
	CurrentStatus facts.StatusFacts `json:"current_status"`
}

// NewSnapshot builds a snapshot from a briefing and the facts it was
// synthesized from.
func NewSnapshot(now time.Time, b briefing.Briefing, f facts.Facts) *Snapshot {
	s := &Snapshot{
		SessionID:      now.Format(SessionIDLayout),
		RunID:          uuid.New().String(),
		Timestamp:      now,
		ContextSummary: b.Summary,
		NextSteps:      b.NextSteps,
		Notes:          b.Notes,
		GitState:       f.Git,
		TaskData:       f.Tasks,
		ClaudeData:     ClaudeData{CurrentStatus: f.Status},
	}

	// Empty sequences are written as [] rather than null
	if s.NextSteps == nil {
		s.NextSteps = []string{}
	}
	if s.GitState.StatusFiles == nil {
		s.GitState.StatusFiles = []string{}
	}
	if s.GitState.RecentCommits == nil {
		s.GitState.RecentCommits = []string{}
	}
	if s.TaskData.Pending == nil {
		s.TaskData.Pending = []string{}
	}
	if s.TaskData.Completed == nil {
		s.TaskData.Completed = []string{}
	}
	if s.ClaudeData.CurrentStatus == nil {
		s.ClaudeData.CurrentStatus = facts.StatusFacts{}
	}

	return s
}
