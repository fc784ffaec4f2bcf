package http

import (
	"jira-worklog/internal/timesheet"
	"jira-worklog/pkg/log"
)

type handler struct {
	l  log.Logger
	uc timesheet.UseCase
}

// New creates a new HTTP handler for the timesheet domain.
func New(l log.Logger, uc timesheet.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
