package worklog

import "errors"

// Domain-specific errors for the worklog package.
var (
	ErrNoIssuesSelected = errors.New("no issues selected")
	ErrEmptyUpload      = errors.New("uploaded file is empty")
	ErrNoDrafts         = errors.New("no entries to preview")
	ErrFetchIssues      = errors.New("failed to fetch tasks")
)
