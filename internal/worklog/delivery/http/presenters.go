package http

import (
	"jira-worklog/internal/model"
	"jira-worklog/internal/worklog"
	"jira-worklog/pkg/datemath"
	"jira-worklog/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Filter    string `form:"filter"`
	SortBy    string `form:"sort_by"    binding:"omitempty,oneof=summary key"`
	SortOrder string `form:"sort_order"`
}

func (r listReq) toInput() worklog.ListIssuesInput {
	return worklog.ListIssuesInput{
		Filter:    r.Filter,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
	}
}

type draftReq struct {
	IssueKey string `json:"issue_key"`
	Summary  string `json:"summary"`
	Duration string `json:"duration"`
	Date     string `json:"date"`
}

type worklogsReq struct {
	Layout  string     `json:"layout"` // datetime (default) or timedate
	Entries []draftReq `json:"entries" binding:"required,min=1"`
}

func (r worklogsReq) toDrafts(layout datemath.Layout) []worklog.Draft {
	drafts := make([]worklog.Draft, 0, len(r.Entries))
	for _, e := range r.Entries {
		drafts = append(drafts, worklog.Draft{
			IssueKey: e.IssueKey,
			Summary:  e.Summary,
			Duration: e.Duration,
			Date:     e.Date,
			Layout:   layout,
		})
	}
	return drafts
}

// logTimeForm is the single log form.
type logTimeForm struct {
	TimeSpent string `form:"time_spent"`
	DateInput string `form:"date_input"`
}

// logMultipleForm drives the select -> form -> preview -> confirm flow.
type logMultipleForm struct {
	Selected  []string `form:"selected_tasks"`
	TimeSpent string   `form:"time_spent"`
	DateInput string   `form:"date_input"`
	Preview   string   `form:"preview"`
	Confirm   string   `form:"confirm"`
}

// --- Response DTOs ---

type issueResp struct {
	Key     string     `json:"key"`
	Summary string     `json:"summary"`
	Status  string     `json:"status,omitempty"`
	Updated *response.DateTime `json:"updated,omitempty"`
}

func newIssueResp(is model.Issue) issueResp {
	r := issueResp{Key: is.Key, Summary: is.Summary, Status: is.Status}
	if !is.Updated.IsZero() {
		u := response.DateTime(is.Updated)
		r.Updated = &u
	}
	return r
}

type listResp struct {
	Issues []issueResp `json:"issues"`
	Count  int         `json:"count"`
	Total  int         `json:"total"`
}

func (h *handler) newListResp(out worklog.ListIssuesOutput) listResp {
	issues := make([]issueResp, len(out.Issues))
	for i, is := range out.Issues {
		issues[i] = newIssueResp(is)
	}
	return listResp{Issues: issues, Count: len(issues), Total: out.Total}
}

type batchResp struct {
	Batch   worklog.Batch        `json:"batch"`
	Summary worklog.BatchSummary `json:"summary"`
}

func (h *handler) newBatchResp(b worklog.Batch) batchResp {
	return batchResp{Batch: b, Summary: b.Summary()}
}

type uploadResp struct {
	batchResp
	LineErrors []worklog.LineError `json:"line_errors"`
}

func (h *handler) newUploadResp(out worklog.UploadOutput) uploadResp {
	lineErrors := out.LineErrors
	if lineErrors == nil {
		lineErrors = []worklog.LineError{}
	}
	return uploadResp{batchResp: h.newBatchResp(out.Batch), LineErrors: lineErrors}
}
