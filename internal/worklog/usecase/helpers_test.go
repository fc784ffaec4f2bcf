package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"jira-worklog/internal/model"
	"jira-worklog/internal/worklog"
	"jira-worklog/internal/worklog/repository"
	"jira-worklog/internal/worklog/usecase"
	"jira-worklog/pkg/datemath"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockTracker records every call. failKeys maps an issue key to the error
// CreateWorklog returns for it.
type mockTracker struct {
	mu          sync.Mutex
	issues      []model.Issue
	searchErr   error
	failKeys    map[string]error
	searchCalls int
	created     []repository.CreateWorklogOptions
}

func (m *mockTracker) SearchAssignedIssues(ctx context.Context, opt repository.SearchOptions) ([]model.Issue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchCalls++
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return append([]model.Issue(nil), m.issues...), nil
}

func (m *mockTracker) CreateWorklog(ctx context.Context, opt repository.CreateWorklogOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, opt)
	if err, ok := m.failKeys[opt.IssueKey]; ok {
		return err
	}
	return nil
}

func (m *mockTracker) createCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.created)
}

var fixedNow = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T, repo *mockTracker, workers int) worklog.UseCase {
	t.Helper()
	dates, err := datemath.NewNormalizer("UTC")
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}
	dates = dates.WithClock(func() time.Time { return fixedNow })
	return usecase.New(&mockLogger{}, repo, dates, usecase.Options{SubmitWorkers: workers})
}

func validEntry(key string) worklog.Entry {
	return worklog.Entry{
		IssueKey:  key,
		Duration:  "1h",
		StartedAt: "2024-03-05T09:30:00.000+0000",
		Status:    worklog.StatusValid,
	}
}
