package timesheet

import "context"

// UseCase reads single cells from the spreadsheet time tracker.
type UseCase interface {
	// Lookup returns the value for a name on a date, or a typed outcome
	// describing why there is none.
	Lookup(ctx context.Context, input LookupInput) (LookupOutput, error)
}
