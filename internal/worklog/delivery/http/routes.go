package http

import (
	"jira-worklog/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterWebRoutes maps the browser UI pages.
func RegisterWebRoutes(r gin.IRouter, h *handler, mw middleware.Middleware) {
	r.GET("/", h.Index)
	r.GET("/log/:key", h.LogTimeForm)
	r.POST("/log/:key", mw.RateLimit(), h.LogTime)
	r.POST("/log-multiple", mw.RateLimit(), h.LogMultiple)
	r.GET("/upload", h.UploadForm)
	r.POST("/upload", mw.RateLimit(), h.Upload)
}

// RegisterRoutes maps the JSON API under rg (e.g. /api/v1).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/issues", mw.RateLimit(), h.ListIssues)

	worklogs := rg.Group("/worklogs", mw.RateLimit())
	{
		worklogs.POST("", h.CreateWorklogs)
		worklogs.POST("/preview", h.PreviewWorklogs)
		worklogs.POST("/upload", h.UploadWorklogs)
	}
}
