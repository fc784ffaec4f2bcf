package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jira-worklog/internal/model"
	"jira-worklog/internal/web"
	"jira-worklog/internal/worklog"
	"jira-worklog/pkg/datemath"
)

// Index renders the issue list. Issues are only fetched when asked for with
// fetch=1 or when a filter is given.
func (h *handler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	req, _ := h.processListReq(c)
	if req.SortBy == "" {
		req.SortBy = worklog.SortBySummary
	}
	if req.SortOrder == "" {
		req.SortOrder = worklog.OrderDesc
	}

	page := web.IndexPage{
		Page:      web.Page{Title: "Assigned issues"},
		Filter:    req.Filter,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}

	if c.Query("fetch") == "1" || req.Filter != "" {
		out, err := h.uc.ListIssues(ctx, req.toInput())
		if err != nil {
			h.l.Errorf(ctx, "uc.ListIssues: %v", err)
			page.AddFlash("danger", h.mapError(err).Error())
		} else {
			page.Issues = out.Issues
		}
	}

	c.HTML(http.StatusOK, web.PageIndex, page)
}

// LogTimeForm renders the single issue form.
func (h *handler) LogTimeForm(c *gin.Context) {
	c.HTML(http.StatusOK, web.PageLogTime, web.LogTimePage{
		Page:     web.Page{Title: "Log time on " + c.Param("key")},
		IssueKey: c.Param("key"),
		DateHint: datemath.LayoutDateTime.Hint(),
	})
}

// LogTime logs one entry. Invalid input re-renders the form.
func (h *handler) LogTime(c *gin.Context) {
	ctx := c.Request.Context()
	key := c.Param("key")

	var form logTimeForm
	_ = c.ShouldBind(&form)

	page := web.LogTimePage{
		Page:      web.Page{Title: "Log time on " + key},
		IssueKey:  key,
		TimeSpent: form.TimeSpent,
		DateInput: form.DateInput,
		DateHint:  datemath.LayoutDateTime.Hint(),
	}

	batch, err := h.uc.LogWork(ctx, worklog.LogWorkInput{
		IssueKeys: []string{key},
		Duration:  form.TimeSpent,
		Date:      form.DateInput,
		Layout:    datemath.LayoutDateTime,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.LogWork: %v", err)
		page.AddFlash("danger", h.mapError(err).Error())
		c.HTML(http.StatusBadRequest, web.PageLogTime, page)
		return
	}

	if batch.Summary().Invalid > 0 {
		page.FlashEntries(batch.Entries)
		c.HTML(http.StatusBadRequest, web.PageLogTime, page)
		return
	}

	h.renderResults(c, batch)
}

// LogMultiple drives the multi-issue flow: select, fill in the form,
// preview (dry run), confirm.
func (h *handler) LogMultiple(c *gin.Context) {
	ctx := c.Request.Context()

	var form logMultipleForm
	_ = c.ShouldBind(&form)

	if len(form.Selected) == 0 {
		page := web.IndexPage{
			Page:      web.Page{Title: "Assigned issues"},
			SortBy:    worklog.SortBySummary,
			SortOrder: worklog.OrderDesc,
		}
		page.AddFlash("danger", "No tasks selected.")
		c.HTML(http.StatusBadRequest, web.PageIndex, page)
		return
	}

	page := web.LogMultiplePage{
		Page:      web.Page{Title: "Log time on selected issues"},
		Selected:  h.selectedIssues(ctx, form.Selected),
		TimeSpent: form.TimeSpent,
		DateInput: form.DateInput,
		DateHint:  datemath.LayoutTimeDate.Hint(),
	}

	input := worklog.LogWorkInput{
		IssueKeys: form.Selected,
		Duration:  form.TimeSpent,
		Date:      form.DateInput,
		Layout:    datemath.LayoutTimeDate,
	}

	switch {
	case form.Confirm != "":
		batch, err := h.uc.LogWork(ctx, input)
		if err != nil {
			h.l.Errorf(ctx, "uc.LogWork: %v", err)
			page.AddFlash("danger", h.mapError(err).Error())
			c.HTML(http.StatusBadRequest, web.PageLogMultiple, page)
			return
		}
		if batch.Summary().Invalid > 0 {
			batch.DryRun = true
			page.Preview = &batch
			page.FlashEntries(batch.Entries)
			c.HTML(http.StatusBadRequest, web.PageLogMultiple, page)
			return
		}
		h.renderResults(c, batch)
		return

	case form.Preview != "" || form.TimeSpent != "":
		input.DryRun = true
		batch, err := h.uc.LogWork(ctx, input)
		if err != nil {
			h.l.Errorf(ctx, "uc.LogWork: %v", err)
			page.AddFlash("danger", h.mapError(err).Error())
			break
		}
		page.Preview = &batch

	default:
		page.DateInput = h.dates.Now(datemath.LayoutTimeDate)
	}

	c.HTML(http.StatusOK, web.PageLogMultiple, page)
}

// UploadForm renders the bulk upload form.
func (h *handler) UploadForm(c *gin.Context) {
	c.HTML(http.StatusOK, web.PageUpload, web.UploadPage{
		Page:     web.Page{Title: "Upload file"},
		DateHint: datemath.LayoutDateTime.Hint(),
	})
}

// Upload processes a bulk file and renders per-line results.
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	page := web.UploadPage{
		Page:     web.Page{Title: "Upload file"},
		DateHint: datemath.LayoutDateTime.Hint(),
	}

	input, err := h.processUploadReq(c)
	if err != nil {
		if errors.Is(err, errMissingFile) {
			page.AddFlash("danger", "No file selected.")
		} else {
			page.AddFlash("danger", err.Error())
		}
		c.HTML(http.StatusBadRequest, web.PageUpload, page)
		return
	}

	out, err := h.uc.Upload(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Upload: %v", err)
		page.AddFlash("danger", h.mapError(err).Error())
		c.HTML(http.StatusBadRequest, web.PageUpload, page)
		return
	}

	for _, le := range out.LineErrors {
		page.AddFlash("danger", le.Message)
	}
	page.FlashEntries(out.Batch.Entries)
	if s := out.Batch.Summary(); s.Valid+s.Submitted+s.Failed == 0 {
		page.AddFlash("info", "No valid tasks to process.")
	}
	page.Batch = &out.Batch

	c.HTML(http.StatusOK, web.PageUpload, page)
}

func (h *handler) renderResults(c *gin.Context, batch worklog.Batch) {
	page := web.ResultsPage{
		Page:  web.Page{Title: "Results"},
		Batch: &batch,
	}
	page.FlashEntries(batch.Entries)
	c.HTML(http.StatusOK, web.PageResults, page)
}

// selectedIssues labels the selected keys with their summaries. A failed
// lookup leaves the summaries empty.
func (h *handler) selectedIssues(ctx context.Context, keys []string) []model.Issue {
	summaries := map[string]model.Issue{}
	if out, err := h.uc.ListIssues(ctx, worklog.ListIssuesInput{}); err != nil {
		h.l.Warnf(ctx, "selectedIssues: uc.ListIssues: %v", err)
	} else {
		for _, is := range out.Issues {
			summaries[is.Key] = is
		}
	}

	selected := make([]model.Issue, 0, len(keys))
	for _, k := range keys {
		is, ok := summaries[k]
		if !ok {
			is = model.Issue{Key: k}
		}
		selected = append(selected, is)
	}
	return selected
}
