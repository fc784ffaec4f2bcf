package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"jira-worklog/internal/timesheet/repository"
	pkgLog "jira-worklog/pkg/log"
)

type implRepository struct {
	l pkgLog.Logger
}

// New creates a repository that reads local .xlsx workbooks. The source of
// each read is a file path.
func New(l pkgLog.Logger) repository.SheetRepository {
	return &implRepository{l: l}
}

func (r *implRepository) ReadSheet(ctx context.Context, opt repository.ReadSheetOptions) (repository.Table, error) {
	f, err := excelize.OpenFile(opt.Source)
	if err != nil {
		return repository.Table{}, fmt.Errorf("failed to open workbook %q: %w", opt.Source, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			r.l.Warnf(ctx, "excel repository: close %s: %v", opt.Source, cerr)
		}
	}()

	// Raw values keep date cells as serial numbers instead of display text.
	rows, err := f.GetRows(opt.Sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return repository.Table{}, fmt.Errorf("failed to read sheet %q: %w", opt.Sheet, err)
	}
	if len(rows) == 0 {
		return repository.Table{}, nil
	}

	r.l.Debugf(ctx, "excel repository: read %d rows from %s/%s", len(rows)-1, opt.Source, opt.Sheet)
	return repository.Table{Header: rows[0], Rows: rows[1:]}, nil
}
