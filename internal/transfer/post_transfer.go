package transfer

import "time"

// PostCreation is the wire form of a submitted draft. Recurrence and
// NextRunAt travel together: the server's recurrence engine only reads
// NextRunAt when Recurrence is set to something other than "none".
type PostCreation struct {
	ProjectID   string     `json:"projectId"`
	Content     string     `json:"content"`
	MediaURLs   []string   `json:"mediaUrls"`
	Platforms   []string   `json:"platforms"`
	Status      string     `json:"status"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	Recurrence  string     `json:"recurrence,omitempty"`
	NextRunAt   *time.Time `json:"nextRunAt,omitempty"`
}
