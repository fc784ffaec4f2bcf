package http

import (
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"jira-worklog/internal/worklog"
	"jira-worklog/pkg/datemath"
)

var errMissingFile = errors.New("no file selected")

// processListReq binds the list issues query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processWorklogsReq binds the JSON drafts and resolves the date layout.
func (h *handler) processWorklogsReq(c *gin.Context) (worklog.PreviewInput, error) {
	var req worklogsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return worklog.PreviewInput{}, err
	}

	layout := datemath.LayoutDateTime
	if req.Layout != "" {
		l, err := datemath.ParseLayout(req.Layout)
		if err != nil {
			return worklog.PreviewInput{}, err
		}
		layout = l
	}
	return worklog.PreviewInput{Drafts: req.toDrafts(layout)}, nil
}

// processUploadReq reads the multipart "file" field and the dry_run flag.
func (h *handler) processUploadReq(c *gin.Context) (worklog.UploadInput, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return worklog.UploadInput{}, errMissingFile
	}
	if fh.Size > MaxUploadBytes {
		return worklog.UploadInput{}, fmt.Errorf("file too large: %d bytes (max %d)", fh.Size, MaxUploadBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return worklog.UploadInput{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes))
	if err != nil {
		return worklog.UploadInput{}, fmt.Errorf("read upload: %w", err)
	}

	return worklog.UploadInput{
		Content: content,
		DryRun:  isChecked(c.PostForm("dry_run")),
	}, nil
}

func isChecked(v string) bool {
	switch v {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
