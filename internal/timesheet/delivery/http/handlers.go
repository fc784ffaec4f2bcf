package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jira-worklog/internal/timesheet"
	"jira-worklog/internal/web"
	"jira-worklog/pkg/response"
)

// Lookup godoc
// @Summary     Look up a timesheet cell
// @Description Returns the value in the named column on the row whose Days cell matches date.
// @Description Missing columns, missing dates and bad input dates are outcomes, not errors.
// @Tags        Timesheet
// @Produce     json
// @Param       date   query string true  "Day first, D/M/YYYY"
// @Param       name   query string true  "Column header"
// @Param       sheet  query string false "Sheet name (default from config)"
// @Param       source query string false "File path or spreadsheet id (default from config)"
// @Success     200 {object} timesheet.LookupOutput
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Tracker read failed"
// @Router      /api/v1/timesheet/lookup [GET]
func (h *handler) Lookup(c *gin.Context) {
	ctx := c.Request.Context()

	var req lookupReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Lookup(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Lookup: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, out)
}

// Page renders the lookup form and, once submitted, its result.
func (h *handler) Page(c *gin.Context) {
	ctx := c.Request.Context()

	var req lookupReq
	_ = c.ShouldBindQuery(&req)

	page := web.TimesheetPage{
		Page:  web.Page{Title: "Timesheet"},
		Date:  req.Date,
		Name:  req.Name,
		Sheet: req.Sheet,
	}

	if req.Date == "" && req.Name == "" {
		c.HTML(http.StatusOK, web.PageTimesheet, page)
		return
	}

	out, err := h.uc.Lookup(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Lookup: %v", err)
		page.AddFlash("danger", h.mapError(err).Error())
		c.HTML(http.StatusOK, web.PageTimesheet, page)
		return
	}

	kind := "info"
	if out.Outcome != timesheet.OutcomeFound {
		kind = "danger"
	}
	page.AddFlash(kind, out.Message)
	page.Result = &out
	c.HTML(http.StatusOK, web.PageTimesheet, page)
}
