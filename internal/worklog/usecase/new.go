package usecase

import (
	"github.com/google/uuid"

	"jira-worklog/internal/worklog"
	"jira-worklog/internal/worklog/repository"
	"jira-worklog/pkg/datemath"
	pkgLog "jira-worklog/pkg/log"
)

// Options tunes the pipeline.
type Options struct {
	SubmitWorkers int // concurrent tracker calls per batch; <= 0 means 1
	MaxResults    int // assigned issues page size; 0 means the client default
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.TrackerRepository
	dates      *datemath.Normalizer
	workers    int
	maxResults int
	newID      func() string
}

// New creates a new worklog UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.TrackerRepository,
	dates *datemath.Normalizer,
	opts Options,
) worklog.UseCase {
	workers := opts.SubmitWorkers
	if workers <= 0 {
		workers = 1
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		dates:      dates,
		workers:    workers,
		maxResults: opts.MaxResults,
		newID:      uuid.NewString,
	}
}
