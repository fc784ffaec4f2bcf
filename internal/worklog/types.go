package worklog

import (
	"fmt"

	"jira-worklog/internal/model"
	"jira-worklog/pkg/datemath"
)

// Status is the lifecycle state of a single log entry:
// pending -> valid|invalid -> (valid only) submitted|failed.
type Status string

const (
	StatusPending   Status = "pending"
	StatusValid     Status = "valid"
	StatusInvalid   Status = "invalid"
	StatusSubmitted Status = "submitted"
	StatusFailed    Status = "failed"
)

// Reasons attached to invalid entries.
const (
	ReasonBadDuration = "bad_duration"
	ReasonBadDate     = "bad_date"
	ReasonNotFound    = "not_found"
)

// Draft is raw user input for one work-log entry. Exactly one of IssueKey
// (issue picked from a fetched list) or Summary (bulk file) identifies the
// issue.
type Draft struct {
	IssueKey string
	Summary  string
	Duration string
	Date     string
	Layout   datemath.Layout
	Line     int // source line for bulk drafts, 0 otherwise
}

// Entry is one pending or processed work-log record.
type Entry struct {
	IssueKey  string `json:"issue_key"`
	Summary   string `json:"summary,omitempty"`
	Duration  string `json:"duration"`   // canonical text once valid
	StartedAt string `json:"started_at"` // tracker timestamp once valid
	Status    Status `json:"status"`
	Reason    string `json:"reason,omitempty"`
	Message   string `json:"message,omitempty"`
	Line      int    `json:"line,omitempty"`
}

// StatusText renders the status with its reason, e.g. "invalid:bad_date".
func (e Entry) StatusText() string {
	switch e.Status {
	case StatusInvalid, StatusFailed:
		return fmt.Sprintf("%s:%s", e.Status, e.Reason)
	}
	return string(e.Status)
}

// Label returns the best human identifier of the entry's issue.
func (e Entry) Label() string {
	if e.IssueKey != "" {
		return e.IssueKey
	}
	return e.Summary
}

// Batch is an ordered set of independently processed entries.
type Batch struct {
	ID      string  `json:"id"`
	DryRun  bool    `json:"dry_run"`
	Entries []Entry `json:"entries"`
}

// BatchSummary counts entries per status.
type BatchSummary struct {
	Valid     int `json:"valid"`
	Invalid   int `json:"invalid"`
	Submitted int `json:"submitted"`
	Failed    int `json:"failed"`
}

// Summary counts the batch entries per status.
func (b Batch) Summary() BatchSummary {
	var s BatchSummary
	for _, e := range b.Entries {
		switch e.Status {
		case StatusValid:
			s.Valid++
		case StatusInvalid:
			s.Invalid++
		case StatusSubmitted:
			s.Submitted++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}

// PreviewInput is the input for a dry run.
type PreviewInput struct {
	Drafts []Draft
	Index  *Index // optional; required for drafts resolved by summary
}

// LogWorkInput logs one duration/date against one or more issues picked
// from a fetched list.
type LogWorkInput struct {
	IssueKeys []string
	Duration  string
	Date      string
	Layout    datemath.Layout
	DryRun    bool
}

// UploadInput is the bulk file path.
type UploadInput struct {
	Content []byte
	DryRun  bool
}

// LineError is a bulk file line that could not be parsed.
type LineError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// UploadOutput is the result of a bulk upload.
type UploadOutput struct {
	Batch      Batch       `json:"batch"`
	LineErrors []LineError `json:"line_errors"`
}

// Sort fields and orders accepted by ListIssues.
const (
	SortBySummary = "summary"
	SortByKey     = "key"
	OrderAsc      = "asc"
	OrderDesc     = "desc"
)

// ListIssuesInput controls filtering and sorting of assigned issues.
type ListIssuesInput struct {
	Filter    string // case-insensitive substring of the summary
	SortBy    string // summary (default) or key
	SortOrder string // desc (default) or asc
}

// ListIssuesOutput is the filtered and sorted issue list.
type ListIssuesOutput struct {
	Issues []model.Issue
	Total  int // issues fetched before filtering
}
