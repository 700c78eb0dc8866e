package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"postdeck/internal/models"
	"postdeck/internal/transfer"
)

func (a *App) cmdPosts(args []string) error {
	if len(args) == 0 {
		return a.postsList(nil)
	}
	switch args[0] {
	case "list":
		return a.postsList(args[1:])
	case "compose":
		return a.postsCompose(args[1:])
	default:
		return fmt.Errorf("unknown posts subcommand: %s", args[0])
	}
}

func (a *App) postsList(args []string) error {
	fs := flag.NewFlagSet("posts list", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	status := fs.String("status", "", "filter by lifecycle status (draft|scheduled|posted|failed)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	project, err := a.requireProject("")
	if err != nil {
		return err
	}

	seq := a.postStore.Begin()
	posts, err := a.posts.List(context.Background(), project.ID)
	if err != nil {
		a.postStore.Fail(seq, err)
		return err
	}
	a.postStore.ApplyList(seq, posts)

	w := a.table()
	fmt.Fprintln(w, "ID\tSTATUS\tSCHEDULED\tPLATFORMS\tCONTENT")
	for _, p := range a.postStore.FilterByStatus(*status) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Status, formatTime(p.ScheduledAt),
			strings.Join(p.Platforms, ","), truncate(p.Content, 48))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	counts := a.postStore.CountByStatus()
	fmt.Fprintf(a.stdout, "\n%d scheduled, %d posted, %d failed, %d draft\n",
		counts[models.PostStatusScheduled], counts[models.PostStatusPosted],
		counts[models.PostStatusFailed], counts[models.PostStatusDraft])
	return nil
}

func (a *App) postsCompose(args []string) error {
	fs := flag.NewFlagSet("posts compose", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	content := fs.String("content", "", "post text")
	platforms := fs.String("platforms", "", "comma-separated target platforms")
	schedule := fs.String("schedule", "", "RFC 3339 time to post at (empty = publish now)")
	recurrence := fs.String("recurrence", models.RecurrenceNone, "repeat cadence (none|daily|weekly|monthly)")
	mediaPaths := fs.String("media", "", "comma-separated files to attach")
	prompt := fs.String("ai-prompt", "", "generate the content from this prompt instead")
	provider := fs.String("ai-provider", "openai", "AI provider for -ai-prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	project, err := a.requireProject("")
	if err != nil {
		return err
	}

	ctx := context.Background()
	a.composer.Open(project.ID)

	if *prompt != "" {
		a.composer.SetPrompt(*prompt)
		seq := a.aiStore.Begin()
		result, err := a.ai.GenerateText(ctx, *prompt, *provider)
		if err != nil {
			a.aiStore.Fail(seq, err)
			return err
		}
		a.aiStore.ApplyText(seq, result)
		a.composer.ApplyAIContent(result.Content)
		fmt.Fprintf(a.stdout, "generated content:\n%s\n\n", result.Content)
	} else {
		a.composer.SetContent(*content)
	}

	for _, p := range splitList(*platforms) {
		if err := a.composer.TogglePlatform(p); err != nil {
			return err
		}
	}

	if *schedule != "" {
		at, err := time.Parse(time.RFC3339, *schedule)
		if err != nil {
			return fmt.Errorf("invalid schedule time: %w", err)
		}
		a.composer.SetScheduledAt(&at)
	}

	if err := a.composer.SetRecurrence(*recurrence); err != nil {
		return err
	}

	if paths := splitList(*mediaPaths); len(paths) > 0 {
		files := make([]*transfer.UploadFile, 0, len(paths))
		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			files = append(files, &transfer.UploadFile{
				Name:      filepath.Base(path),
				Data:      data,
				ProjectID: project.ID,
			})
		}
		for _, uploadErr := range a.composer.UploadMedia(ctx, files) {
			if uploadErr != nil {
				fmt.Fprintf(a.stderr, "warning: %v\n", uploadErr)
			}
		}
	}

	var post *models.Post
	seq := a.postStore.Begin()
	if *schedule != "" {
		post, err = a.composer.Schedule(ctx)
	} else {
		post, err = a.composer.PublishNow(ctx)
	}
	if err != nil {
		a.postStore.Fail(seq, err)
		return err
	}
	a.postStore.ApplyCreate(seq, post)

	if post.ScheduledAt != nil {
		fmt.Fprintf(a.stdout, "post %s scheduled for %s\n", post.ID, formatTime(post.ScheduledAt))
	} else {
		fmt.Fprintf(a.stdout, "post %s submitted\n", post.ID)
	}
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
