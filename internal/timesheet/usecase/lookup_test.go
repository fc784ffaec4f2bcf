package usecase_test

import (
	"context"
	"errors"
	"testing"

	"jira-worklog/internal/timesheet"
	"jira-worklog/internal/timesheet/repository"
	"jira-worklog/internal/timesheet/usecase"
	pkgLog "jira-worklog/pkg/log"
)

type mockSheetRepo struct {
	table repository.Table
	err   error
	calls int
	last  repository.ReadSheetOptions
}

func (m *mockSheetRepo) ReadSheet(ctx context.Context, opt repository.ReadSheetOptions) (repository.Table, error) {
	m.calls++
	m.last = opt
	return m.table, m.err
}

func newTracker() *mockSheetRepo {
	return &mockSheetRepo{table: repository.Table{
		Header: []string{"Days", "Pedro Serrano", "Ana Lima"},
		Rows: [][]string{
			{"", "separator"},
			{"45355", "4h", "6h"},
			{"45356", "8h"},
			{"2024-03-07", "7h", "1h"},
			{"08/03/2024", "5h", "2h"},
		},
	}}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		input   timesheet.LookupInput
		outcome timesheet.Outcome
		value   string
		message string
	}{
		{
			name:    "Serial date",
			input:   timesheet.LookupInput{Date: "05/03/2024", Name: "Pedro Serrano"},
			outcome: timesheet.OutcomeFound,
			value:   "8h",
			message: "8h",
		},
		{
			name:    "Single digit day and month",
			input:   timesheet.LookupInput{Date: "4/3/2024", Name: "Ana Lima"},
			outcome: timesheet.OutcomeFound,
			value:   "6h",
		},
		{
			name:    "Short row yields empty value",
			input:   timesheet.LookupInput{Date: "05/03/2024", Name: "Ana Lima"},
			outcome: timesheet.OutcomeFound,
			value:   "",
		},
		{
			name:    "ISO text date",
			input:   timesheet.LookupInput{Date: "07/03/2024", Name: "Pedro Serrano"},
			outcome: timesheet.OutcomeFound,
			value:   "7h",
		},
		{
			name:    "Day first text date",
			input:   timesheet.LookupInput{Date: "08/03/2024", Name: "Ana Lima"},
			outcome: timesheet.OutcomeFound,
			value:   "2h",
		},
		{
			name:    "Invalid date",
			input:   timesheet.LookupInput{Date: "2024-03-05", Name: "Pedro Serrano"},
			outcome: timesheet.OutcomeInvalidDate,
			message: "Invalid date format. Use DD/MM/YYYY.",
		},
		{
			name:    "Unknown column",
			input:   timesheet.LookupInput{Date: "05/03/2024", Name: "Nobody"},
			outcome: timesheet.OutcomeColumnNotFound,
			message: "No column named 'Nobody' in sheet 'Daily'.",
		},
		{
			name:    "No row for date",
			input:   timesheet.LookupInput{Date: "01/01/2023", Name: "Pedro Serrano"},
			outcome: timesheet.OutcomeNotFound,
			message: "No entry found for date 01/01/2023.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.New(pkgLog.NewNop(), newTracker(), usecase.Options{})
			out, err := uc.Lookup(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Outcome != tt.outcome {
				t.Fatalf("outcome = %q, want %q (%s)", out.Outcome, tt.outcome, out.Message)
			}
			if out.Value != tt.value {
				t.Errorf("value = %q, want %q", out.Value, tt.value)
			}
			if tt.message != "" && out.Message != tt.message {
				t.Errorf("message = %q, want %q", out.Message, tt.message)
			}
		})
	}
}

func TestLookupDefaultsAndOverrides(t *testing.T) {
	repo := newTracker()
	uc := usecase.New(pkgLog.NewNop(), repo, usecase.Options{})

	if _, err := uc.Lookup(context.Background(), timesheet.LookupInput{Date: "05/03/2024", Name: "Ana Lima"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.last.Source != usecase.DefaultSource || repo.last.Sheet != usecase.DefaultSheet {
		t.Errorf("defaults not applied: %+v", repo.last)
	}

	_, _ = uc.Lookup(context.Background(), timesheet.LookupInput{Date: "05/03/2024", Name: "Ana Lima", Source: "other.xlsx", Sheet: "Weekly"})
	if repo.last.Source != "other.xlsx" || repo.last.Sheet != "Weekly" {
		t.Errorf("overrides not applied: %+v", repo.last)
	}
}

func TestLookupInvalidDateSkipsRead(t *testing.T) {
	repo := newTracker()
	uc := usecase.New(pkgLog.NewNop(), repo, usecase.Options{})
	_, _ = uc.Lookup(context.Background(), timesheet.LookupInput{Date: "nope", Name: "Ana Lima"})
	if repo.calls != 0 {
		t.Errorf("tracker read %d times for an invalid date", repo.calls)
	}
}

func TestLookupMissingDateColumn(t *testing.T) {
	repo := newTracker()
	uc := usecase.New(pkgLog.NewNop(), repo, usecase.Options{DateColumn: "Date"})
	out, err := uc.Lookup(context.Background(), timesheet.LookupInput{Date: "05/03/2024", Name: "Ana Lima"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Outcome != timesheet.OutcomeColumnNotFound || out.Message != "No column named 'Date' in sheet 'Daily'." {
		t.Errorf("unexpected output: %+v", out)
	}
}

func TestLookupErrors(t *testing.T) {
	t.Run("Read Failure", func(t *testing.T) {
		repo := &mockSheetRepo{err: errors.New("no such file")}
		uc := usecase.New(pkgLog.NewNop(), repo, usecase.Options{})
		_, err := uc.Lookup(context.Background(), timesheet.LookupInput{Date: "05/03/2024", Name: "x"})
		if !errors.Is(err, timesheet.ErrReadTracker) {
			t.Errorf("expected ErrReadTracker, got %v", err)
		}
	})

	t.Run("Empty Name", func(t *testing.T) {
		uc := usecase.New(pkgLog.NewNop(), newTracker(), usecase.Options{})
		_, err := uc.Lookup(context.Background(), timesheet.LookupInput{Date: "05/03/2024"})
		if !errors.Is(err, timesheet.ErrEmptyName) {
			t.Errorf("expected ErrEmptyName, got %v", err)
		}
	})

	t.Run("Empty Sheet", func(t *testing.T) {
		uc := usecase.New(pkgLog.NewNop(), &mockSheetRepo{}, usecase.Options{})
		_, err := uc.Lookup(context.Background(), timesheet.LookupInput{Date: "05/03/2024", Name: "x"})
		if !errors.Is(err, timesheet.ErrNoHeaderRow) {
			t.Errorf("expected ErrNoHeaderRow, got %v", err)
		}
	})
}
