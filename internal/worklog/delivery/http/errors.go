package http

import (
	"errors"
	"net/http"
	"strings"

	"jira-worklog/internal/worklog"
	pkgErrors "jira-worklog/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, worklog.ErrNoIssuesSelected),
		errors.Is(err, worklog.ErrNoDrafts),
		errors.Is(err, worklog.ErrEmptyUpload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, worklog.ErrFetchIssues):
		return pkgErrors.Wrapf(http.StatusBadGateway, "Failed to fetch tasks: %s", upstreamText(err))
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// upstreamText is the tracker's status and body without the sentinel prefix.
func upstreamText(err error) string {
	return strings.TrimPrefix(err.Error(), worklog.ErrFetchIssues.Error()+": ")
}
