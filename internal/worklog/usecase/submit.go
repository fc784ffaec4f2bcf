package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"jira-worklog/internal/worklog"
	"jira-worklog/internal/worklog/repository"
)

// Submit sends every valid entry to the tracker exactly once. Entries are
// independent: a failure never stops the others and nothing is retried.
// Each worker writes only its own slot, so input order is kept.
func (uc *implUseCase) Submit(ctx context.Context, batch worklog.Batch) worklog.Batch {
	out := worklog.Batch{
		ID:      batch.ID,
		Entries: make([]worklog.Entry, len(batch.Entries)),
	}
	if out.ID == "" {
		out.ID = uc.newID()
	}
	copy(out.Entries, batch.Entries)

	var g errgroup.Group
	g.SetLimit(uc.workers)
	for i := range out.Entries {
		if out.Entries[i].Status != worklog.StatusValid {
			continue
		}
		g.Go(func() error {
			out.Entries[i] = uc.submitOne(ctx, out.Entries[i])
			return nil
		})
	}
	_ = g.Wait()

	s := out.Summary()
	uc.l.Infof(ctx, "batch %s: submitted=%d failed=%d invalid=%d", out.ID, s.Submitted, s.Failed, s.Invalid)
	return out
}

func (uc *implUseCase) submitOne(ctx context.Context, e worklog.Entry) worklog.Entry {
	err := uc.repo.CreateWorklog(ctx, repository.CreateWorklogOptions{
		IssueKey:  e.IssueKey,
		TimeSpent: e.Duration,
		Started:   e.StartedAt,
	})
	if err == nil {
		e.Status = worklog.StatusSubmitted
		e.Message = fmt.Sprintf("Successfully logged %s on %s", e.Duration, e.IssueKey)
		return e
	}

	var upErr *repository.UpstreamError
	if errors.As(err, &upErr) {
		e.Reason = upErr.Error()
	} else {
		e.Reason = err.Error()
	}
	e.Status = worklog.StatusFailed
	e.Message = fmt.Sprintf("Failed to log work: %s", e.Reason)
	return e
}
