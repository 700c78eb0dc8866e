package job

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"postdeck/internal/service"
	"postdeck/internal/state"
)

// StatusRefreshJob periodically re-pulls posts and social accounts for
// the selected project so the containers track server-side lifecycle
// changes (posts getting published, account tokens aging out). Run from
// a cron schedule by the watch command.
type StatusRefreshJob struct {
	pf service.PlatformService
	ps service.PostService
	pr *state.ProjectStore
	po *state.PostStore
	so *state.SocialStore
}

func NewStatusRefreshJob(
	pf service.PlatformService,
	ps service.PostService,
	pr *state.ProjectStore,
	po *state.PostStore,
	so *state.SocialStore) *StatusRefreshJob {
	return &StatusRefreshJob{
		pf: pf,
		ps: ps,
		pr: pr,
		po: po,
		so: so,
	}
}

func (j *StatusRefreshJob) Refresh() {
	ctx := context.Background()

	project := j.pr.Current()
	if project == nil {
		slog.Info("no project selected, skipping refresh")
		return
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		seq := j.po.Begin()
		posts, err := j.ps.List(ctx, project.ID)
		if err != nil {
			slog.Info("Unable to refresh posts")
			j.po.Fail(seq, err)
			return
		}
		j.po.ApplyList(seq, posts)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		seq := j.so.Begin()
		accounts, err := j.pf.List(ctx, project.ID)
		if err != nil {
			slog.Info("Unable to refresh social accounts")
			j.so.Fail(seq, err)
			return
		}
		j.so.ApplyList(seq, accounts)
		j.so.RefreshStatuses(time.Now())
	}()

	wg.Wait()
}
