package http

import (
	"jira-worklog/internal/worklog"
	"jira-worklog/pkg/datemath"
	"jira-worklog/pkg/log"
)

// MaxUploadBytes bounds the bulk file size accepted by the upload routes.
const MaxUploadBytes = 1 << 20

type handler struct {
	l     log.Logger
	uc    worklog.UseCase
	dates *datemath.Normalizer
}

// New creates a new HTTP handler for the worklog domain.
func New(l log.Logger, uc worklog.UseCase, dates *datemath.Normalizer) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
	}
}
