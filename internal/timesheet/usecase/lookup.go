package usecase

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"jira-worklog/internal/timesheet"
	"jira-worklog/internal/timesheet/repository"
	"jira-worklog/pkg/datemath"
)

// dateCellLayouts are the text forms accepted in the date column when the
// cell is not a serial number.
var dateCellLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	datemath.DayFirstLayout,
	"2/1/2006 15:04:05",
}

func (uc *implUseCase) Lookup(ctx context.Context, input timesheet.LookupInput) (timesheet.LookupOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return timesheet.LookupOutput{}, timesheet.ErrEmptyName
	}

	out := timesheet.LookupOutput{
		Date:  input.Date,
		Name:  input.Name,
		Sheet: input.Sheet,
	}
	if out.Sheet == "" {
		out.Sheet = uc.sheet
	}
	source := input.Source
	if source == "" {
		source = uc.source
	}

	day, err := datemath.ParseDayFirst(strings.TrimSpace(input.Date))
	if err != nil {
		out.Outcome = timesheet.OutcomeInvalidDate
		out.Message = "Invalid date format. Use DD/MM/YYYY."
		return out, nil
	}

	table, err := uc.repo.ReadSheet(ctx, repository.ReadSheetOptions{Source: source, Sheet: out.Sheet})
	if err != nil {
		uc.l.Errorf(ctx, "Lookup: repo.ReadSheet %s/%s: %v", source, out.Sheet, err)
		return timesheet.LookupOutput{}, fmt.Errorf("%w: %w", timesheet.ErrReadTracker, err)
	}
	if len(table.Header) == 0 {
		return timesheet.LookupOutput{}, timesheet.ErrNoHeaderRow
	}

	nameIdx := slices.Index(table.Header, input.Name)
	if nameIdx < 0 {
		out.Outcome = timesheet.OutcomeColumnNotFound
		out.Message = fmt.Sprintf("No column named '%s' in sheet '%s'.", input.Name, out.Sheet)
		return out, nil
	}
	dateIdx := slices.Index(table.Header, uc.dateColumn)
	if dateIdx < 0 {
		out.Outcome = timesheet.OutcomeColumnNotFound
		out.Message = fmt.Sprintf("No column named '%s' in sheet '%s'.", uc.dateColumn, out.Sheet)
		return out, nil
	}

	for _, row := range table.Rows {
		cellDay, ok := parseDateCell(cell(row, dateIdx))
		if !ok || !datemath.SameDay(cellDay, day) {
			continue
		}
		out.Outcome = timesheet.OutcomeFound
		out.Value = cell(row, nameIdx)
		out.Message = out.Value
		return out, nil
	}

	out.Outcome = timesheet.OutcomeNotFound
	out.Message = fmt.Sprintf("No entry found for date %s.", input.Date)
	return out, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// parseDateCell reads a spreadsheet serial number or a text date. Cells that
// are neither are skipped, like blank separator rows.
func parseDateCell(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		return t, err == nil
	}
	for _, layout := range dateCellLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
