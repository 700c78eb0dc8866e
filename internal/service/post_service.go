package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"postdeck/internal/api"
	"postdeck/internal/models"
	"postdeck/internal/transfer"
)

type PostService interface {
	List(ctx context.Context, projectID string) ([]*models.Post, error)
	Create(ctx context.Context, pc *transfer.PostCreation) (*models.Post, error)
}

type postService struct {
	c *api.Client
}

func NewPostService(c *api.Client) PostService {
	return &postService{
		c: c,
	}
}

func (s *postService) List(ctx context.Context, projectID string) ([]*models.Post, error) {
	if projectID == "" {
		err := errors.New("projectId is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	var posts []*models.Post
	path := "posts?projectId=" + url.QueryEscape(projectID)
	if err := s.c.Do(ctx, http.MethodGet, path, nil, true, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *postService) Create(ctx context.Context, pc *transfer.PostCreation) (*models.Post, error) {
	// Guard runs before any network call; a bad draft never leaves the client.
	if err := ValidateDraft(pc); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	var post models.Post
	if err := s.c.Do(ctx, http.MethodPost, "posts", pc, true, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// ValidateDraft enforces the submission invariants: non-empty trimmed
// content, at least one known platform, a scheduled time whenever the
// draft asks to be scheduled for later, and a next run whenever a
// recurrence is set.
func ValidateDraft(pc *transfer.PostCreation) error {
	if pc == nil {
		return api.NewError(api.KindInvalidDraft, "draft is nil")
	}
	if strings.TrimSpace(pc.Content) == "" {
		return api.NewError(api.KindInvalidDraft, "content cannot be empty")
	}
	if len(pc.Platforms) == 0 {
		return api.NewError(api.KindInvalidDraft, "select at least one platform")
	}
	for _, p := range pc.Platforms {
		if !models.IsValidPlatform(p) {
			return api.NewError(api.KindInvalidDraft, "unknown platform: "+p)
		}
	}
	// A nil scheduledAt with status "scheduled" is valid on the wire: that
	// is how publish-now travels, and the server posts it immediately. The
	// schedule-for-later path enforces a timestamp before it gets here.
	if pc.Recurrence != "" && pc.Recurrence != models.RecurrenceNone && pc.NextRunAt == nil {
		return api.NewError(api.KindInvalidDraft, "recurring drafts need a next run time")
	}
	return nil
}
