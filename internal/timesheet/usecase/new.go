package usecase

import (
	"jira-worklog/internal/timesheet"
	"jira-worklog/internal/timesheet/repository"
	pkgLog "jira-worklog/pkg/log"
)

// Defaults used when Options leaves a field empty.
const (
	DefaultSource     = "BSP-G2_Daily_Tracker.xlsx"
	DefaultSheet      = "Daily"
	DefaultDateColumn = "Days"
)

// Options holds the tracker defaults.
type Options struct {
	Source     string
	Sheet      string
	DateColumn string
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.SheetRepository
	source     string
	sheet      string
	dateColumn string
}

// New creates a new timesheet UseCase instance.
func New(l pkgLog.Logger, repo repository.SheetRepository, opts Options) timesheet.UseCase {
	uc := &implUseCase{
		l:          l,
		repo:       repo,
		source:     opts.Source,
		sheet:      opts.Sheet,
		dateColumn: opts.DateColumn,
	}
	if uc.source == "" {
		uc.source = DefaultSource
	}
	if uc.sheet == "" {
		uc.sheet = DefaultSheet
	}
	if uc.dateColumn == "" {
		uc.dateColumn = DefaultDateColumn
	}
	return uc
}
