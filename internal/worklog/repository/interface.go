package repository

import (
	"context"

	"jira-worklog/internal/model"
)

// TrackerRepository is the issue tracker data access used by the pipeline.
type TrackerRepository interface {
	// SearchAssignedIssues returns the issues assigned to the credential
	// holder, most recently updated first.
	SearchAssignedIssues(ctx context.Context, opt SearchOptions) ([]model.Issue, error)

	// CreateWorklog records one work log. Any non-creation response is an
	// *UpstreamError.
	CreateWorklog(ctx context.Context, opt CreateWorklogOptions) error
}
