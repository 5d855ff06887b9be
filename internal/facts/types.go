package facts

// StatusFacts maps status field names (e.g. "Phase", "Next Steps") to values
type StatusFacts map[string]string

// Status field names read by the synthesizer
const (
	FieldPhase     = "Phase"
	FieldNextSteps = "Next Steps"
)

// TaskFacts holds checkbox items from the task document, in document order
type TaskFacts struct {
	Completed []string `json:"completed_tasks"`
	Pending   []string `json:"pending_tasks"`
	// Source is the project-relative path of the document read
	Source string `json:"source,omitempty"`
}

// GitFacts holds working-tree status lines and recent commit summaries
type GitFacts struct {
	StatusFiles   []string `json:"status_files"`
	RecentCommits []string `json:"recent_commits"`
	Error         string   `json:"error,omitempty"`
}

// Facts is everything captured from the project for one run
type Facts struct {
	Status StatusFacts
	Tasks  TaskFacts
	Git    GitFacts
}

// EmptyTasks returns TaskFacts with non-nil empty sequences
func EmptyTasks() TaskFacts {
	return TaskFacts{Completed: []string{}, Pending: []string{}}
}

// EmptyGit returns GitFacts with non-nil empty sequences
func EmptyGit() GitFacts {
	return GitFacts{StatusFiles: []string{}, RecentCommits: []string{}}
}
