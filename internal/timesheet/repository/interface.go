package repository

import "context"

// SheetRepository loads one sheet of the tracker as raw cell text.
type SheetRepository interface {
	ReadSheet(ctx context.Context, opt ReadSheetOptions) (Table, error)
}

// ReadSheetOptions identifies the sheet to read.
type ReadSheetOptions struct {
	Source string // file path or spreadsheet id, depending on the backend
	Sheet  string // sheet (tab) name
}

// Table is a sheet split into its header row and data rows. Date cells hold
// spreadsheet serial numbers when the backend can provide them. Rows may be
// shorter than the header when trailing cells are empty.
type Table struct {
	Header []string
	Rows   [][]string
}
