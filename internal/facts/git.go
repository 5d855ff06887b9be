package facts

import (
	"context"
	"strconv"

	"github.com/Onegaishimas/xcc-lattice/internal/git"
)

// ReadGit captures porcelain status and recent commits. Any failure yields
// empty sequences with Error set; it never propagates.
func (r *Reader) ReadGit(ctx context.Context) GitFacts {
	state := EmptyGit()

	status, err := r.git.Execute(ctx, r.root, "status", "--porcelain")
	if err != nil {
		r.log.Debug().Err(err).Msg("git status unavailable")
		state.Error = err.Error()
		return state
	}

	commits, err := r.git.Execute(ctx, r.root, "log", "--oneline", "-"+strconv.Itoa(r.logLimit))
	if err != nil {
		r.log.Debug().Err(err).Msg("git log unavailable")
		state.Error = err.Error()
		return state
	}

	state.StatusFiles = git.Lines(status)
	state.RecentCommits = git.Lines(commits)
	return state
}
