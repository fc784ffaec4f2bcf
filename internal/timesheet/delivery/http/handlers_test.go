package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jira-worklog/internal/middleware"
	"jira-worklog/internal/timesheet"
	"jira-worklog/internal/web"
	"jira-worklog/pkg/log"
)

type mockUseCase struct {
	out   timesheet.LookupOutput
	err   error
	calls []timesheet.LookupInput
}

func (m *mockUseCase) Lookup(ctx context.Context, in timesheet.LookupInput) (timesheet.LookupOutput, error) {
	m.calls = append(m.calls, in)
	return m.out, m.err
}

func newTestRouter(uc timesheet.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	h := New(log.NewNop(), uc)
	RegisterWebRoutes(r, h)
	RegisterRoutes(r.Group("/api/v1"), h, middleware.New(log.NewNop(), middleware.Config{}))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		uc         *mockUseCase
		wantStatus int
		wantCalls  int
	}{
		{
			name:       "Found",
			query:      "?date=1/5/2024&name=Pedro",
			uc:         &mockUseCase{out: timesheet.LookupOutput{Outcome: timesheet.OutcomeFound, Value: "8", Message: "8"}},
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
		{
			name:       "MissingName",
			query:      "?date=1/5/2024",
			uc:         &mockUseCase{},
			wantStatus: http.StatusBadRequest,
			wantCalls:  0,
		},
		{
			name:       "ReadFailure",
			query:      "?date=1/5/2024&name=Pedro",
			uc:         &mockUseCase{err: fmt.Errorf("%w: open: no such file", timesheet.ErrReadTracker)},
			wantStatus: http.StatusBadGateway,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(newTestRouter(tt.uc), "/api/v1/timesheet/lookup"+tt.query)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if len(tt.uc.calls) != tt.wantCalls {
				t.Errorf("calls = %d, want %d", len(tt.uc.calls), tt.wantCalls)
			}
		})
	}

	t.Run("Body", func(t *testing.T) {
		uc := &mockUseCase{out: timesheet.LookupOutput{Outcome: timesheet.OutcomeNotFound, Message: "No entry found for date 2/5/2024."}}
		w := get(newTestRouter(uc), "/api/v1/timesheet/lookup?date=2/5/2024&name=Pedro&sheet=Weekly")
		var resp struct {
			Data timesheet.LookupOutput `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Data.Outcome != timesheet.OutcomeNotFound {
			t.Errorf("outcome = %q", resp.Data.Outcome)
		}
		if uc.calls[0].Sheet != "Weekly" {
			t.Errorf("sheet = %q", uc.calls[0].Sheet)
		}
	})
}

func TestPage(t *testing.T) {
	t.Run("EmptyForm", func(t *testing.T) {
		uc := &mockUseCase{}
		w := get(newTestRouter(uc), "/timesheet")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if len(uc.calls) != 0 {
			t.Errorf("calls = %d", len(uc.calls))
		}
	})

	t.Run("Result", func(t *testing.T) {
		uc := &mockUseCase{out: timesheet.LookupOutput{
			Outcome: timesheet.OutcomeColumnNotFound,
			Message: "No column named 'Ana' in sheet 'Daily'.",
			Name:    "Ana",
			Date:    "1/5/2024",
		}}
		w := get(newTestRouter(uc), "/timesheet?date=1/5/2024&name=Ana")
		if !strings.Contains(w.Body.String(), "No column named &#39;Ana&#39; in sheet &#39;Daily&#39;.") {
			t.Errorf("body = %s", w.Body.String())
		}
	})
}
