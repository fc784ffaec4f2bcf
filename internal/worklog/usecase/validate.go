package usecase

import (
	"context"
	"fmt"

	"jira-worklog/internal/worklog"
	"jira-worklog/pkg/datemath"
	"jira-worklog/pkg/duration"
)

// Validate checks duration, then date, then issue resolution. The first
// failure decides the reason.
func (uc *implUseCase) Validate(ctx context.Context, d worklog.Draft, idx *worklog.Index) worklog.Entry {
	e := worklog.Entry{
		IssueKey: d.IssueKey,
		Summary:  d.Summary,
		Duration: d.Duration,
		Status:   worklog.StatusPending,
		Line:     d.Line,
	}

	dur, err := duration.Parse(d.Duration)
	if err != nil {
		return invalid(e, worklog.ReasonBadDuration,
			fmt.Sprintf("Invalid duration %q for %s. Use e.g. 1h30m, 2h or 45m.", d.Duration, e.Label()))
	}

	layout := d.Layout
	if layout == "" {
		layout = datemath.LayoutDateTime
	}
	started, err := uc.dates.Normalize(d.Date, layout)
	if err != nil {
		return invalid(e, worklog.ReasonBadDate,
			fmt.Sprintf("Invalid date format for task %s. Use %s.", e.Label(), layout.Hint()))
	}

	switch {
	case d.IssueKey != "":
		// Picked from a fetched list: the key is trusted, the index only
		// supplies a label.
		if is, ok := idx.Resolve(d); ok {
			e.Summary = is.Summary
		}
	default:
		is, ok := idx.Resolve(d)
		if !ok {
			return invalid(e, worklog.ReasonNotFound, fmt.Sprintf("Task not found: %s", d.Summary))
		}
		e.IssueKey = is.Key
	}

	e.Duration = dur.String()
	e.StartedAt = started
	e.Status = worklog.StatusValid
	return e
}

func invalid(e worklog.Entry, reason, msg string) worklog.Entry {
	e.Status = worklog.StatusInvalid
	e.Reason = reason
	e.Message = msg
	return e
}
