package facts

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Onegaishimas/xcc-lattice/internal/config"
	"github.com/Onegaishimas/xcc-lattice/internal/git"
	"github.com/Onegaishimas/xcc-lattice/internal/logger"
)

// Reader extracts facts from one project
type Reader struct {
	root       string
	statusPath string
	layoutCfg  config.LayoutConfig
	layout     Layout
	logLimit   int
	git        git.Executor
	log        zerolog.Logger
}

// NewReader creates a Reader for cfg.Project.Root using exec for git
func NewReader(cfg *config.Config, exec git.Executor) *Reader {
	return &Reader{
		root:       cfg.Project.Root,
		statusPath: cfg.StatusPath(),
		layoutCfg:  cfg.Layout,
		layout:     ResolveLayout(cfg.Project.Root, cfg.Layout),
		logLimit:   cfg.Git.LogLimit,
		git:        exec,
		log:        logger.WithField("component", "reader"),
	}
}

// Read captures all three fact bundles
func (r *Reader) Read(ctx context.Context) Facts {
	f := Facts{
		Status: r.ReadStatus(),
		Tasks:  r.ReadTasks(),
		Git:    r.ReadGit(ctx),
	}
	r.log.Debug().
		Int("status_fields", len(f.Status)).
		Int("pending", len(f.Tasks.Pending)).
		Int("completed", len(f.Tasks.Completed)).
		Int("changed_files", len(f.Git.StatusFiles)).
		Msg("facts captured")
	return f
}
