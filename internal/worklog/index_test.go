package worklog_test

import (
	"testing"

	"jira-worklog/internal/model"
	"jira-worklog/internal/worklog"
)

func TestBuildIndex(t *testing.T) {
	issues := []model.Issue{
		{Key: "K1", Summary: "Fix bug"},
		{Key: "K2", Summary: "Fix bug"},
		{Key: "K3", Summary: "Write docs"},
	}

	tests := []struct {
		name    string
		draft   worklog.Draft
		wantKey string
		wantOK  bool
	}{
		{"By key", worklog.Draft{IssueKey: "K1"}, "K1", true},
		{"Duplicate summary resolves to last fetched", worklog.Draft{Summary: "Fix bug"}, "K2", true},
		{"Unique summary", worklog.Draft{Summary: "Write docs"}, "K3", true},
		{"Unknown summary", worklog.Draft{Summary: "fix bug"}, "", false},
		{"Unknown key", worklog.Draft{IssueKey: "K9"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Rebuild every time: the choice must not depend on map iteration.
			for i := 0; i < 20; i++ {
				idx := worklog.BuildIndex(issues)
				got, ok := idx.Resolve(tt.draft)
				if ok != tt.wantOK || got.Key != tt.wantKey {
					t.Fatalf("Resolve(%+v) = %q, %v; want %q, %v", tt.draft, got.Key, ok, tt.wantKey, tt.wantOK)
				}
			}
		})
	}
}

func TestNilIndexResolve(t *testing.T) {
	var idx *worklog.Index
	if _, ok := idx.Resolve(worklog.Draft{Summary: "x"}); ok {
		t.Fatalf("nil index must not resolve")
	}
}

func TestEntryStatusText(t *testing.T) {
	tests := []struct {
		entry worklog.Entry
		want  string
	}{
		{worklog.Entry{Status: worklog.StatusValid}, "valid"},
		{worklog.Entry{Status: worklog.StatusSubmitted}, "submitted"},
		{worklog.Entry{Status: worklog.StatusInvalid, Reason: worklog.ReasonBadDuration}, "invalid:bad_duration"},
		{worklog.Entry{Status: worklog.StatusFailed, Reason: "400 bad request"}, "failed:400 bad request"},
	}
	for _, tt := range tests {
		if got := tt.entry.StatusText(); got != tt.want {
			t.Errorf("StatusText() = %q, want %q", got, tt.want)
		}
	}
}

func TestBatchSummary(t *testing.T) {
	b := worklog.Batch{Entries: []worklog.Entry{
		{Status: worklog.StatusSubmitted},
		{Status: worklog.StatusSubmitted},
		{Status: worklog.StatusFailed},
		{Status: worklog.StatusInvalid},
	}}
	s := b.Summary()
	if s.Submitted != 2 || s.Failed != 1 || s.Invalid != 1 || s.Valid != 0 {
		t.Errorf("Summary() = %+v", s)
	}
}
