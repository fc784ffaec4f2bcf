package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"jira-worklog/internal/worklog"
	"jira-worklog/internal/worklog/repository"
)

func TestSubmitSkipsInvalidEntries(t *testing.T) {
	repo := &mockTracker{}
	uc := newUseCase(t, repo, 1)
	ctx := context.Background()

	drafts := []worklog.Draft{
		{IssueKey: "K1", Duration: "1h", Date: "2024-03-05 09:30"},
		{IssueKey: "K2", Duration: "abc", Date: "2024-03-05 09:30"},
		{IssueKey: "K3", Duration: "30m", Date: "2024-03-05 09:30"},
	}
	preview, err := uc.Preview(ctx, worklog.PreviewInput{Drafts: drafts})
	if err != nil {
		t.Fatalf("Preview() error: %v", err)
	}
	if got := []string{preview.Entries[0].StatusText(), preview.Entries[1].StatusText(), preview.Entries[2].StatusText()}; got[0] != "valid" || got[1] != "invalid:bad_duration" || got[2] != "valid" {
		t.Fatalf("unexpected validation: %v", got)
	}

	res := uc.Submit(ctx, preview)

	if n := repo.createCalls(); n != 2 {
		t.Fatalf("CreateWorklog called %d times, want 2", n)
	}
	if repo.created[0].IssueKey != "K1" || repo.created[1].IssueKey != "K3" {
		t.Errorf("unexpected calls: %+v", repo.created)
	}
	if res.Entries[1] != preview.Entries[1] {
		t.Errorf("invalid entry was modified: %+v", res.Entries[1])
	}
	if res.Entries[0].Status != worklog.StatusSubmitted || res.Entries[2].Status != worklog.StatusSubmitted {
		t.Errorf("valid entries not submitted: %+v", res.Entries)
	}
	if res.Entries[0].Message != "Successfully logged 1h on K1" {
		t.Errorf("unexpected message: %q", res.Entries[0].Message)
	}
	if res.DryRun {
		t.Errorf("submitted batch must not be marked dry run")
	}
	if res.ID != preview.ID {
		t.Errorf("batch id changed: %q -> %q", preview.ID, res.ID)
	}
}

func TestSubmitPartialFailure(t *testing.T) {
	repo := &mockTracker{failKeys: map[string]error{
		"K2": &repository.UpstreamError{StatusCode: 400, Body: `{"errorMessages":["bad"]}`},
	}}
	uc := newUseCase(t, repo, 1)

	res := uc.Submit(context.Background(), worklog.Batch{Entries: []worklog.Entry{validEntry("K1"), validEntry("K2")}})

	if res.ID == "" {
		t.Errorf("expected a generated batch id")
	}
	if res.Entries[0].Status != worklog.StatusSubmitted {
		t.Errorf("entry 1 = %s, want submitted", res.Entries[0].StatusText())
	}
	if got := res.Entries[1].StatusText(); got != `failed:400 {"errorMessages":["bad"]}` {
		t.Errorf("entry 2 = %q", got)
	}
	if got := res.Entries[1].Message; got != `Failed to log work: 400 {"errorMessages":["bad"]}` {
		t.Errorf("entry 2 message = %q", got)
	}
	if s := res.Summary(); s.Submitted != 1 || s.Failed != 1 {
		t.Errorf("summary = %+v", s)
	}
}

func TestSubmitTransportError(t *testing.T) {
	repo := &mockTracker{failKeys: map[string]error{"K1": errors.New("dial tcp: connection refused")}}
	uc := newUseCase(t, repo, 1)

	res := uc.Submit(context.Background(), worklog.Batch{Entries: []worklog.Entry{validEntry("K1")}})
	if got := res.Entries[0].StatusText(); got != "failed:dial tcp: connection refused" {
		t.Errorf("status = %q", got)
	}
}

func TestSubmitDoesNotMutateInput(t *testing.T) {
	repo := &mockTracker{}
	uc := newUseCase(t, repo, 1)
	in := worklog.Batch{Entries: []worklog.Entry{validEntry("K1")}}

	uc.Submit(context.Background(), in)
	if in.Entries[0].Status != worklog.StatusValid {
		t.Errorf("input batch was mutated: %+v", in.Entries[0])
	}
}

func TestSubmitWorkerPoolPreservesOrder(t *testing.T) {
	failKeys := map[string]error{}
	var entries []worklog.Entry
	for i := 0; i < 20; i++ {
		key := fmt.Sprintf("K%d", i)
		if i%3 == 0 {
			failKeys[key] = &repository.UpstreamError{StatusCode: 500, Body: key}
		}
		e := validEntry(key)
		if i%5 == 0 {
			e.Status = worklog.StatusInvalid
			e.Reason = worklog.ReasonBadDate
		}
		entries = append(entries, e)
	}
	repo := &mockTracker{failKeys: failKeys}
	uc := newUseCase(t, repo, 4)

	res := uc.Submit(context.Background(), worklog.Batch{Entries: entries})

	want := 0
	for i, e := range res.Entries {
		key := fmt.Sprintf("K%d", i)
		if e.IssueKey != key {
			t.Fatalf("entry %d has key %q", i, e.IssueKey)
		}
		switch {
		case i%5 == 0:
			if e.Status != worklog.StatusInvalid {
				t.Errorf("entry %d should stay invalid, got %s", i, e.StatusText())
			}
		case i%3 == 0:
			want++
			if e.StatusText() != "failed:500 "+key {
				t.Errorf("entry %d = %s", i, e.StatusText())
			}
		default:
			want++
			if e.Status != worklog.StatusSubmitted {
				t.Errorf("entry %d = %s", i, e.StatusText())
			}
		}
	}
	if n := repo.createCalls(); n != want {
		t.Errorf("CreateWorklog called %d times, want %d", n, want)
	}
}
