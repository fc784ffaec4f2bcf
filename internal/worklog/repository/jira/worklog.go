package jira

import (
	"context"
	"time"

	"jira-worklog/internal/model"
	"jira-worklog/internal/worklog/repository"
	pkgLog "jira-worklog/pkg/log"
)

// updatedLayout is the timestamp layout of the "updated" issue field.
const updatedLayout = "2006-01-02T15:04:05.000-0700"

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a new Jira tracker repository.
func New(client *Client, l pkgLog.Logger) repository.TrackerRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) SearchAssignedIssues(ctx context.Context, opt repository.SearchOptions) ([]model.Issue, error) {
	resp, err := r.client.Search(ctx, AssignedJQL, opt.MaxResults)
	if err != nil {
		r.l.Errorf(ctx, "jira repository: search assigned issues: %v", err)
		return nil, err
	}

	issues := make([]model.Issue, 0, len(resp.Issues))
	for _, is := range resp.Issues {
		issues = append(issues, toIssue(is))
	}
	r.l.Debugf(ctx, "jira repository: fetched %d assigned issues (total %d)", len(issues), resp.Total)
	return issues, nil
}

func (r *implRepository) CreateWorklog(ctx context.Context, opt repository.CreateWorklogOptions) error {
	err := r.client.AddWorklog(ctx, opt.IssueKey, WorklogRequest{
		Started:   opt.Started,
		TimeSpent: opt.TimeSpent,
	})
	if err != nil {
		r.l.Warnf(ctx, "jira repository: worklog on %s failed: %v", opt.IssueKey, err)
		return err
	}
	return nil
}

// toIssue converts a Jira API issue to the internal model.Issue.
func toIssue(is Issue) model.Issue {
	out := model.Issue{
		Key:     is.Key,
		Summary: is.Fields.Summary,
		Status:  is.Fields.Status.Name,
	}
	if is.Fields.Updated != "" {
		if t, err := time.Parse(updatedLayout, is.Fields.Updated); err == nil {
			out.Updated = t
		}
	}
	return out
}
