package usecase

import (
	"context"
	"fmt"

	"jira-worklog/internal/worklog"
	"jira-worklog/internal/worklog/repository"
)

// Preview validates every draft and never calls the tracker's work-log
// endpoint. Without an index, one is fetched only when some draft is
// identified by summary.
func (uc *implUseCase) Preview(ctx context.Context, input worklog.PreviewInput) (worklog.Batch, error) {
	if len(input.Drafts) == 0 {
		return worklog.Batch{}, worklog.ErrNoDrafts
	}

	idx := input.Index
	if idx == nil && needsIndex(input.Drafts) {
		issues, err := uc.repo.SearchAssignedIssues(ctx, repository.SearchOptions{MaxResults: uc.maxResults})
		if err != nil {
			uc.l.Errorf(ctx, "Preview: repo.SearchAssignedIssues: %v", err)
			return worklog.Batch{}, fmt.Errorf("%w: %w", worklog.ErrFetchIssues, err)
		}
		idx = worklog.BuildIndex(issues)
	}

	return uc.validateAll(ctx, input.Drafts, idx), nil
}

func needsIndex(drafts []worklog.Draft) bool {
	for _, d := range drafts {
		if d.IssueKey == "" {
			return true
		}
	}
	return false
}

func (uc *implUseCase) validateAll(ctx context.Context, drafts []worklog.Draft, idx *worklog.Index) worklog.Batch {
	b := worklog.Batch{
		ID:      uc.newID(),
		DryRun:  true,
		Entries: make([]worklog.Entry, 0, len(drafts)),
	}
	for _, d := range drafts {
		b.Entries = append(b.Entries, uc.Validate(ctx, d, idx))
	}
	return b
}
