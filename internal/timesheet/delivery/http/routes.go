package http

import (
	"jira-worklog/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterWebRoutes maps the lookup page.
func RegisterWebRoutes(r gin.IRouter, h *handler) {
	r.GET("/timesheet", h.Page)
}

// RegisterRoutes maps the JSON lookup under rg (e.g. /api/v1).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/timesheet/lookup", mw.RateLimit(), h.Lookup)
}
