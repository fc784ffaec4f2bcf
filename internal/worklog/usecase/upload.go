package usecase

import (
	"bytes"
	"context"
	"fmt"

	"jira-worklog/internal/worklog"
	"jira-worklog/internal/worklog/repository"
	"jira-worklog/pkg/bulkfile"
	"jira-worklog/pkg/datemath"
)

// Upload processes a bulk file. Malformed lines are reported and skipped;
// records are matched to issues by exact summary.
func (uc *implUseCase) Upload(ctx context.Context, input worklog.UploadInput) (worklog.UploadOutput, error) {
	if len(bytes.TrimSpace(input.Content)) == 0 {
		return worklog.UploadOutput{}, worklog.ErrEmptyUpload
	}

	parsed, err := bulkfile.Read(bytes.NewReader(input.Content))
	if err != nil {
		return worklog.UploadOutput{}, err
	}

	var out worklog.UploadOutput
	for _, le := range parsed.Errors {
		out.LineErrors = append(out.LineErrors, worklog.LineError{Line: le.Line, Message: le.Error()})
	}

	issues, err := uc.repo.SearchAssignedIssues(ctx, repository.SearchOptions{MaxResults: uc.maxResults})
	if err != nil {
		uc.l.Errorf(ctx, "Upload: repo.SearchAssignedIssues: %v", err)
		return out, fmt.Errorf("%w: %w", worklog.ErrFetchIssues, err)
	}
	idx := worklog.BuildIndex(issues)

	drafts := make([]worklog.Draft, 0, len(parsed.Records))
	for _, r := range parsed.Records {
		drafts = append(drafts, worklog.Draft{
			Summary:  r.Summary,
			Duration: r.Duration,
			Date:     r.Date,
			Layout:   datemath.LayoutDateTime,
			Line:     r.Line,
		})
	}

	batch := uc.validateAll(ctx, drafts, idx)
	if !input.DryRun {
		batch = uc.Submit(ctx, batch)
	}
	out.Batch = batch

	uc.l.Infof(ctx, "Upload: %d records, %d malformed lines, dry_run=%t", len(parsed.Records), len(out.LineErrors), input.DryRun)
	return out, nil
}
