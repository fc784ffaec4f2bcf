package worklog

import (
	"context"
)

// UseCase is the work-log submission pipeline shared by every shell.
type UseCase interface {
	// Validate turns one draft into a valid or invalid entry. index may be
	// nil when the draft carries an issue key.
	Validate(ctx context.Context, draft Draft, index *Index) Entry

	// Submit performs exactly one tracker call per valid entry.
	Submit(ctx context.Context, batch Batch) Batch

	// Preview validates every draft without submitting anything.
	Preview(ctx context.Context, input PreviewInput) (Batch, error)

	// LogWork validates and, unless DryRun, submits one duration against
	// the selected issues.
	LogWork(ctx context.Context, input LogWorkInput) (Batch, error)

	// Upload processes a bulk file.
	Upload(ctx context.Context, input UploadInput) (UploadOutput, error)

	// ListIssues fetches, filters and sorts the issues assigned to the
	// current user.
	ListIssues(ctx context.Context, input ListIssuesInput) (ListIssuesOutput, error)
}
