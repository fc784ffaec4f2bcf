package usecase

import (
	"context"

	"jira-worklog/internal/worklog"
	"jira-worklog/internal/worklog/repository"
)

// LogWork logs one duration against every selected issue.
func (uc *implUseCase) LogWork(ctx context.Context, input worklog.LogWorkInput) (worklog.Batch, error) {
	if len(input.IssueKeys) == 0 {
		return worklog.Batch{}, worklog.ErrNoIssuesSelected
	}

	// Summaries are only labels here; a failed lookup does not block logging.
	var idx *worklog.Index
	issues, err := uc.repo.SearchAssignedIssues(ctx, repository.SearchOptions{MaxResults: uc.maxResults})
	if err != nil {
		uc.l.Warnf(ctx, "LogWork: summary lookup failed, continuing with keys only: %v", err)
	} else {
		idx = worklog.BuildIndex(issues)
	}

	drafts := make([]worklog.Draft, 0, len(input.IssueKeys))
	for _, key := range input.IssueKeys {
		drafts = append(drafts, worklog.Draft{
			IssueKey: key,
			Duration: input.Duration,
			Date:     input.Date,
			Layout:   input.Layout,
		})
	}

	batch := uc.validateAll(ctx, drafts, idx)
	if input.DryRun {
		return batch, nil
	}
	return uc.Submit(ctx, batch), nil
}
