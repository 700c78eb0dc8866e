package cli

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron"

	job "postdeck/internal/jobs"
	"postdeck/internal/models"
)

func (a *App) cmdWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	every := fs.String("every", "00h05m00s", "refresh interval")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := a.requireProject(""); err != nil {
		return err
	}

	refreshJob := job.NewStatusRefreshJob(a.platform, a.posts, a.projectStore, a.postStore, a.socialStore)
	refreshJob.Refresh()
	a.printWatchSummary()

	c := cron.New()
	if err := c.AddFunc("@every "+*every, func() {
		refreshJob.Refresh()
		a.printWatchSummary()
	}); err != nil {
		return err
	}
	c.Start()
	defer c.Stop()

	fmt.Fprintf(a.stdout, "watching, refreshing every %s (ctrl-c to stop)\n", *every)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	fmt.Fprintln(a.stdout, "\nstopped")
	return nil
}

func (a *App) printWatchSummary() {
	counts := a.postStore.CountByStatus()
	expiring := 0
	for _, acc := range a.socialStore.Accounts() {
		if acc.Status != models.AccountStatusActive {
			expiring++
		}
	}
	fmt.Fprintf(a.stdout, "posts: %d scheduled, %d posted, %d failed; accounts needing attention: %d\n",
		counts[models.PostStatusScheduled], counts[models.PostStatusPosted],
		counts[models.PostStatusFailed], expiring)
}
