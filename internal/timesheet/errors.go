package timesheet

import "errors"

// Domain-specific errors for the timesheet package.
var (
	ErrEmptyName   = errors.New("column name is empty")
	ErrReadTracker = errors.New("failed to read tracker")
	ErrNoHeaderRow = errors.New("sheet has no header row")
)
