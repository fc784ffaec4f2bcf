package http

import (
	"github.com/gin-gonic/gin"

	"jira-worklog/pkg/response"
)

// ListIssues godoc
// @Summary     List assigned issues
// @Description Returns the issues assigned to the current user, filtered by summary and sorted.
// @Tags        Worklog
// @Produce     json
// @Param       filter     query string false "Case-insensitive summary filter"
// @Param       sort_by    query string false "summary (default) or key"
// @Param       sort_order query string false "desc (default) or asc"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Tracker request failed"
// @Router      /api/v1/issues [GET]
func (h *handler) ListIssues(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListIssues(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListIssues: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// PreviewWorklogs godoc
// @Summary     Dry-run work logs
// @Description Validates entries exactly as a submission would, without calling the tracker.
// @Tags        Worklog
// @Accept      json
// @Produce     json
// @Param       body body worklogsReq true "Entries"
// @Success     200 {object} batchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Tracker request failed"
// @Router      /api/v1/worklogs/preview [POST]
func (h *handler) PreviewWorklogs(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processWorklogsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	batch, err := h.uc.Preview(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBatchResp(batch))
}

// CreateWorklogs godoc
// @Summary     Log work
// @Description Validates entries and submits every valid one. Per-entry failures are reported in the batch.
// @Tags        Worklog
// @Accept      json
// @Produce     json
// @Param       body body worklogsReq true "Entries"
// @Success     200 {object} batchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Tracker request failed"
// @Router      /api/v1/worklogs [POST]
func (h *handler) CreateWorklogs(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processWorklogsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	batch, err := h.uc.Preview(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBatchResp(h.uc.Submit(ctx, batch)))
}

// UploadWorklogs godoc
// @Summary     Bulk log work from a file
// @Description Each line is "task summary,duration,YYYY-MM-DD HH:MM". Malformed lines are reported and skipped.
// @Tags        Worklog
// @Accept      multipart/form-data
// @Produce     json
// @Param       file    formData file   true  "Bulk file"
// @Param       dry_run formData string false "1 to preview only"
// @Success     200 {object} uploadResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Tracker request failed"
// @Router      /api/v1/worklogs/upload [POST]
func (h *handler) UploadWorklogs(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUploadReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Upload(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Upload: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUploadResp(output))
}
