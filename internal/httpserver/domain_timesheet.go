package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"jira-worklog/internal/middleware"
	timesheetHTTP "jira-worklog/internal/timesheet/delivery/http"
)

func (srv HTTPServer) setupTimesheetDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := timesheetHTTP.New(srv.l, srv.timesheetUC)

	timesheetHTTP.RegisterWebRoutes(srv.gin, h)
	timesheetHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Timesheet domain registered")
	return nil
}
