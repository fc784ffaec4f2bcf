package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"jira-worklog/internal/timesheet"
	"jira-worklog/internal/worklog"
	"jira-worklog/pkg/datemath"
	"jira-worklog/pkg/log"
)

// DefaultShutdownTimeout bounds the graceful drain of in-flight requests.
const DefaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	rateLimitPerMin int
	shutdownTimeout time.Duration

	// Worklog domain
	worklogUC worklog.UseCase
	dates     *datemath.Normalizer

	// Timesheet domain (optional)
	timesheetUC timesheet.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int
	ShutdownTimeout time.Duration

	// Worklog domain
	WorklogUC worklog.UseCase
	Dates     *datemath.Normalizer

	// Timesheet domain; nil disables /timesheet.
	TimesheetUC timesheet.UseCase
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		shutdownTimeout: cfg.ShutdownTimeout,
		worklogUC:       cfg.WorklogUC,
		dates:           cfg.Dates,
		timesheetUC:     cfg.TimesheetUC,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = DefaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.worklogUC == nil {
		return errors.New("worklog usecase is required")
	}
	if srv.dates == nil {
		return errors.New("date normalizer is required")
	}
	return nil
}
