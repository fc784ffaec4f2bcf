package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"jira-worklog/internal/model"
	"jira-worklog/internal/worklog"
	"jira-worklog/internal/worklog/repository"
)

// ListIssues fetches the assigned issues, filters them by summary and sorts
// them.
func (uc *implUseCase) ListIssues(ctx context.Context, input worklog.ListIssuesInput) (worklog.ListIssuesOutput, error) {
	issues, err := uc.repo.SearchAssignedIssues(ctx, repository.SearchOptions{MaxResults: uc.maxResults})
	if err != nil {
		uc.l.Errorf(ctx, "ListIssues: repo.SearchAssignedIssues: %v", err)
		return worklog.ListIssuesOutput{}, fmt.Errorf("%w: %w", worklog.ErrFetchIssues, err)
	}

	out := worklog.ListIssuesOutput{Total: len(issues)}
	filter := strings.ToLower(input.Filter)
	for _, is := range issues {
		if filter == "" || strings.Contains(strings.ToLower(is.Summary), filter) {
			out.Issues = append(out.Issues, is)
		}
	}

	sortIssues(out.Issues, input.SortBy, input.SortOrder)
	return out, nil
}

// sortIssues sorts by lower-cased summary (default) or by key. Empty order
// means descending; any value other than "desc" sorts ascending.
func sortIssues(issues []model.Issue, sortBy, order string) {
	if sortBy == "" {
		sortBy = worklog.SortBySummary
	}
	if order == "" {
		order = worklog.OrderDesc
	}

	cmp := func(a, b model.Issue) int {
		if sortBy == worklog.SortBySummary {
			return strings.Compare(strings.ToLower(a.Summary), strings.ToLower(b.Summary))
		}
		return strings.Compare(a.Key, b.Key)
	}
	if order == worklog.OrderDesc {
		asc := cmp
		cmp = func(a, b model.Issue) int { return asc(b, a) }
	}
	slices.SortStableFunc(issues, cmp)
}
