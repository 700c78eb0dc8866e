package models

import "time"

type Post struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	Content     string     `json:"content"`
	MediaURLs   []string   `json:"mediaUrls"`
	Platforms   []string   `json:"platforms"`
	Status      string     `json:"status"` // draft, scheduled, posted, failed
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	Recurrence  string     `json:"recurrence,omitempty"`
	NextRunAt   *time.Time `json:"nextRunAt,omitempty"`
	Error       string     `json:"error,omitempty"`
	PostedAt    *time.Time `json:"postedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPosted    = "posted"
	PostStatusFailed    = "failed"
)

const (
	RecurrenceNone    = "none"
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
)
