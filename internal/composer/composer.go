// Package composer holds the in-memory model of a single post being
// drafted: content, media, target platforms, scheduling and recurrence.
// The draft is ephemeral view-model state; it only touches the network
// when media is uploaded or the draft is submitted.
package composer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"postdeck/internal/api"
	"postdeck/internal/models"
	"postdeck/internal/service"
	"postdeck/internal/transfer"
)

type State string

const (
	StateEmpty        State = "empty"
	StateEditing      State = "editing"
	StateSubmitting   State = "submitting"
	StateSubmittedOk  State = "submitted_ok"
	StateSubmitFailed State = "submit_failed"
)

// MediaItem is one attached file in selection order. URL is set when the
// upload resolves, Err when it fails; neither affects sibling items.
type MediaItem struct {
	ID        string
	FileName  string
	URL       string
	Err       error
	Uploading bool
}

// Draft is the working copy of a not-yet-submitted post plus transient
// UI-only fields (the AI prompt).
type Draft struct {
	ProjectID   string
	Content     string
	Media       []MediaItem
	Platforms   []string
	ScheduledAt *time.Time
	Recurrence  string
	NextRunAt   *time.Time
	Prompt      string
}

const defaultUploadConcurrency = 4

type Composer struct {
	posts service.PostService
	media service.MediaService

	uploadLimit int
	now         func() time.Time

	mu      sync.Mutex
	state   State
	draft   Draft
	lastErr error
}

func New(posts service.PostService, media service.MediaService) *Composer {
	return &Composer{
		posts:       posts,
		media:       media,
		uploadLimit: defaultUploadConcurrency,
		now:         time.Now,
		state:       StateEmpty,
		draft:       emptyDraft(""),
	}
}

func emptyDraft(projectID string) Draft {
	return Draft{
		ProjectID:  projectID,
		Recurrence: models.RecurrenceNone,
	}
}

// Open starts a fresh draft for a project, discarding any previous one.
func (c *Composer) Open(projectID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = emptyDraft(projectID)
	c.state = StateEmpty
	c.lastErr = nil
}

func (c *Composer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastError returns the retained submission or validation error. It
// survives the return to editing so the user sees why the submit failed.
func (c *Composer) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Draft returns a copy of the working draft.
func (c *Composer) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draftCopyLocked()
}

func (c *Composer) draftCopyLocked() Draft {
	d := c.draft
	d.Media = make([]MediaItem, len(c.draft.Media))
	copy(d.Media, c.draft.Media)
	d.Platforms = make([]string, len(c.draft.Platforms))
	copy(d.Platforms, c.draft.Platforms)
	return d
}

// editLocked marks any field mutation: the draft leaves Empty (or a
// settled submit state) and is being edited again.
func (c *Composer) editLocked() {
	if c.state != StateSubmitting {
		c.state = StateEditing
	}
}

func (c *Composer) SetContent(content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editLocked()
	c.draft.Content = content
}

func (c *Composer) SetPrompt(prompt string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Prompt = prompt
}

// ApplyAIContent replaces the draft content with a generated result.
func (c *Composer) ApplyAIContent(content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editLocked()
	c.draft.Content = content
}

// TogglePlatform adds the platform to the target set, or removes it when
// already present.
func (c *Composer) TogglePlatform(platform string) error {
	if !models.IsValidPlatform(platform) {
		return fmt.Errorf("unknown platform: %s", platform)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editLocked()
	for i, p := range c.draft.Platforms {
		if p == platform {
			c.draft.Platforms = append(c.draft.Platforms[:i], c.draft.Platforms[i+1:]...)
			return nil
		}
	}
	c.draft.Platforms = append(c.draft.Platforms, platform)
	return nil
}

// SetScheduledAt sets or clears the one-shot schedule time. While a
// recurrence is active the next run follows the schedule anchor.
func (c *Composer) SetScheduledAt(t *time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editLocked()
	c.draft.ScheduledAt = t
	if c.draft.Recurrence != models.RecurrenceNone && t != nil {
		c.draft.NextRunAt = t
	}
}

// SetRecurrence switches the repeat cadence. Anything but "none" anchors
// the next run at the scheduled time, or now when none is set; "none"
// clears the next run and re-enables one-shot scheduling.
func (c *Composer) SetRecurrence(rule string) error {
	switch rule {
	case models.RecurrenceNone, models.RecurrenceDaily, models.RecurrenceWeekly, models.RecurrenceMonthly:
	default:
		return fmt.Errorf("unknown recurrence rule: %s", rule)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.editLocked()
	c.draft.Recurrence = rule
	if rule == models.RecurrenceNone {
		c.draft.NextRunAt = nil
		return nil
	}
	if c.draft.ScheduledAt != nil {
		c.draft.NextRunAt = c.draft.ScheduledAt
	} else {
		next := c.now()
		c.draft.NextRunAt = &next
	}
	return nil
}

// UploadMedia uploads the selected files concurrently and independently.
// Each item lands in the media list up front, in selection order, and is
// filled in as its upload resolves; a slow upload never blocks a faster
// sibling and a failed one rolls nothing back. The returned slice is
// indexed like files, nil for successes.
func (c *Composer) UploadMedia(ctx context.Context, files []*transfer.UploadFile) []error {
	if len(files) == 0 {
		return nil
	}

	ids := make([]string, len(files))
	c.mu.Lock()
	c.editLocked()
	for i, f := range files {
		id, err := gonanoid.New()
		if err != nil {
			id = fmt.Sprintf("media-%d-%d", c.now().UnixNano(), i)
		}
		ids[i] = id
		c.draft.Media = append(c.draft.Media, MediaItem{ID: id, FileName: f.Name, Uploading: true})
	}
	c.mu.Unlock()

	errs := make([]error, len(files))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, c.uploadLimit)

	for i, f := range files {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(i int, f *transfer.UploadFile) {
			defer wg.Done()
			defer func() { <-semaphore }()

			resp, err := c.media.Upload(ctx, f)

			c.mu.Lock()
			defer c.mu.Unlock()
			item := c.findMediaLocked(ids[i])
			if item == nil {
				// Removed while in flight; nobody is interested anymore.
				return
			}
			item.Uploading = false
			if err != nil {
				slog.Info(fmt.Sprintf("upload failed for %s: %v", f.Name, err))
				item.Err = err
				errs[i] = fmt.Errorf("upload failed for %s: %w", f.Name, err)
				return
			}
			item.URL = resp.Location()
		}(i, f)
	}

	wg.Wait()
	return errs
}

func (c *Composer) findMediaLocked(id string) *MediaItem {
	for i := range c.draft.Media {
		if c.draft.Media[i].ID == id {
			return &c.draft.Media[i]
		}
	}
	return nil
}

// RemoveMedia drops an attached item from the draft.
func (c *Composer) RemoveMedia(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editLocked()
	for i := range c.draft.Media {
		if c.draft.Media[i].ID == id {
			c.draft.Media = append(c.draft.Media[:i], c.draft.Media[i+1:]...)
			return
		}
	}
}

// MediaURLs returns the resolved upload references in selection order.
// Failed and still-uploading items are skipped.
func (c *Composer) MediaURLs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mediaURLsLocked()
}

func (c *Composer) mediaURLsLocked() []string {
	urls := make([]string, 0, len(c.draft.Media))
	for _, item := range c.draft.Media {
		if item.URL != "" {
			urls = append(urls, item.URL)
		}
	}
	return urls
}

// UploadErrors returns the recorded per-file upload failures, in
// selection order.
func (c *Composer) UploadErrors() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var errs []error
	for _, item := range c.draft.Media {
		if item.Err != nil {
			errs = append(errs, fmt.Errorf("upload failed for %s: %w", item.FileName, item.Err))
		}
	}
	return errs
}

// PublishNow submits the draft for immediate posting. The server treats a
// scheduled post without a timestamp as due now.
func (c *Composer) PublishNow(ctx context.Context) (*models.Post, error) {
	return c.submit(ctx, false)
}

// Schedule submits the draft for its scheduled time, which must be set.
func (c *Composer) Schedule(ctx context.Context) (*models.Post, error) {
	return c.submit(ctx, true)
}

func (c *Composer) submit(ctx context.Context, requireSchedule bool) (*models.Post, error) {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return nil, api.NewError(api.KindUnknownFailure, "a submission is already in flight")
	}

	pc := c.buildCreationLocked()
	if err := c.validateLocked(pc, requireSchedule); err != nil {
		c.lastErr = err
		c.state = StateSubmitFailed
		c.mu.Unlock()
		return nil, err
	}

	c.state = StateSubmitting
	c.lastErr = nil
	projectID := c.draft.ProjectID
	c.mu.Unlock()

	post, err := c.posts.Create(ctx, pc)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		// Fields stay as they are so the user can retry without retyping.
		c.state = StateSubmitFailed
		c.lastErr = err
		return nil, err
	}

	c.draft = emptyDraft(projectID)
	c.state = StateEmpty
	return post, nil
}

func (c *Composer) buildCreationLocked() *transfer.PostCreation {
	platforms := make([]string, len(c.draft.Platforms))
	copy(platforms, c.draft.Platforms)
	return &transfer.PostCreation{
		ProjectID:   c.draft.ProjectID,
		Content:     c.draft.Content,
		MediaURLs:   c.mediaURLsLocked(),
		Platforms:   platforms,
		Status:      models.PostStatusScheduled,
		ScheduledAt: c.draft.ScheduledAt,
		Recurrence:  c.draft.Recurrence,
		NextRunAt:   c.draft.NextRunAt,
	}
}

func (c *Composer) validateLocked(pc *transfer.PostCreation, requireSchedule bool) error {
	if strings.TrimSpace(pc.Content) == "" {
		return api.NewError(api.KindInvalidDraft, "content cannot be empty")
	}
	if len(pc.Platforms) == 0 {
		return api.NewError(api.KindInvalidDraft, "select at least one platform")
	}
	if requireSchedule && pc.ScheduledAt == nil {
		return api.NewError(api.KindInvalidDraft, "set a schedule time first")
	}
	return service.ValidateDraft(pc)
}
