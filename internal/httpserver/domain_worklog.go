package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"jira-worklog/internal/middleware"
	worklogHTTP "jira-worklog/internal/worklog/delivery/http"
)

// setupWorklogDomain registers the issue list, log forms, upload and the
// worklog JSON API.
func (srv HTTPServer) setupWorklogDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := worklogHTTP.New(srv.l, srv.worklogUC, srv.dates)

	worklogHTTP.RegisterWebRoutes(srv.gin, h, mw)
	worklogHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Worklog domain registered")
	return nil
}
