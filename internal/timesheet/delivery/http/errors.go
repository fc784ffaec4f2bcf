package http

import (
	"errors"
	"net/http"

	"jira-worklog/internal/timesheet"
	pkgErrors "jira-worklog/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, timesheet.ErrEmptyName):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, timesheet.ErrReadTracker),
		errors.Is(err, timesheet.ErrNoHeaderRow):
		return pkgErrors.Wrapf(http.StatusBadGateway, "%s", err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
