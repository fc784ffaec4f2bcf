package timesheet

// Outcome is the typed result of a lookup. Only I/O failures are errors.
type Outcome string

const (
	OutcomeFound          Outcome = "found"
	OutcomeNotFound       Outcome = "not_found"
	OutcomeColumnNotFound Outcome = "column_not_found"
	OutcomeInvalidDate    Outcome = "invalid_date"
)

// LookupInput selects one cell: the row whose date column matches Date and
// the column named Name. Empty Source and Sheet use the configured defaults.
type LookupInput struct {
	Date   string // D/M/YYYY
	Name   string // column header, e.g. a person's name
	Source string // file path (excel) or spreadsheet id (gsheets)
	Sheet  string
}

// LookupOutput is the result of a lookup.
type LookupOutput struct {
	Outcome Outcome `json:"outcome"`
	Value   string  `json:"value,omitempty"`
	Message string  `json:"message"`
	Date    string  `json:"date"`
	Name    string  `json:"name"`
	Sheet   string  `json:"sheet"`
}
