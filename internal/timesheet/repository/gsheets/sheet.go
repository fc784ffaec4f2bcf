package gsheets

import (
	"context"
	"fmt"
	"strconv"

	"jira-worklog/internal/timesheet/repository"
	pkgLog "jira-worklog/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a repository backed by Google Sheets. The source of each read
// is a spreadsheet id.
func New(client *Client, l pkgLog.Logger) repository.SheetRepository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) ReadSheet(ctx context.Context, opt repository.ReadSheetOptions) (repository.Table, error) {
	values, err := r.client.GetValues(ctx, opt.Source, opt.Sheet)
	if err != nil {
		return repository.Table{}, err
	}
	if len(values) == 0 {
		return repository.Table{}, nil
	}

	table := repository.Table{
		Header: toStrings(values[0]),
		Rows:   make([][]string, 0, len(values)-1),
	}
	for _, row := range values[1:] {
		table.Rows = append(table.Rows, toStrings(row))
	}

	r.l.Debugf(ctx, "gsheets repository: read %d rows from %s/%s", len(table.Rows), opt.Source, opt.Sheet)
	return table, nil
}

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		switch val := v.(type) {
		case nil:
		case string:
			out[i] = val
		case float64:
			out[i] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			out[i] = strconv.FormatBool(val)
		default:
			out[i] = fmt.Sprint(val)
		}
	}
	return out
}
