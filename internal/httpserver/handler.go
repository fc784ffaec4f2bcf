package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"jira-worklog/internal/middleware"
	"jira-worklog/internal/model"
	"jira-worklog/internal/web"
	"jira-worklog/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, middleware.Config{RateLimitPerMin: srv.rateLimitPerMin})

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.CustomRecovery(srv.recoverPanic), mw.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

// recoverPanic logs the panic and answers with the standard 500 body.
func (srv HTTPServer) recoverPanic(c *gin.Context, recovered any) {
	srv.l.Errorf(c.Request.Context(), "httpserver.recoverPanic: %v", recovered)
	response.InternalError(c, fmt.Errorf("panic: %v", recovered))
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the browser pages and the /api/v1 group.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	srv.gin.SetHTMLTemplate(web.Templates())
	api := srv.gin.Group("/api/v1")

	if err := srv.setupWorklogDomain(ctx, api, mw); err != nil {
		return err
	}

	if srv.timesheetUC != nil {
		if err := srv.setupTimesheetDomain(ctx, api, mw); err != nil {
			return err
		}
	} else {
		srv.l.Infof(ctx, "Timesheet not configured, skipping /timesheet routes")
	}

	return nil
}
