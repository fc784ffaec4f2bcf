package app

import (
	"context"
	"fmt"

	"jira-worklog/config"
	"jira-worklog/internal/timesheet"
	"jira-worklog/internal/timesheet/repository"
	"jira-worklog/internal/timesheet/repository/excel"
	"jira-worklog/internal/timesheet/repository/gsheets"
	timesheetUC "jira-worklog/internal/timesheet/usecase"
	"jira-worklog/internal/worklog"
	"jira-worklog/internal/worklog/repository/jira"
	worklogUC "jira-worklog/internal/worklog/usecase"
	"jira-worklog/pkg/credential"
	"jira-worklog/pkg/datemath"
	"jira-worklog/pkg/log"
)

// App is the set of use cases every shell drives.
type App struct {
	Dates     *datemath.Normalizer
	Worklog   worklog.UseCase
	Timesheet timesheet.UseCase // nil when no tracker is configured
}

// NewLogger builds the zap logger from config. outputPaths, when given,
// replace the configured ones.
func NewLogger(cfg config.LoggerConfig, outputPaths ...string) log.Logger {
	paths := cfg.OutputPaths
	if len(outputPaths) > 0 {
		paths = outputPaths
	}
	return log.Init(log.ZapConfig{
		Level:        cfg.Level,
		Mode:         cfg.Mode,
		Encoding:     cfg.Encoding,
		ColorEnabled: cfg.ColorEnabled,
		OutputPaths:  paths,
	})
}

// New wires the tracker client and the use cases.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	dates, err := datemath.NewNormalizer(cfg.Jira.Timezone)
	if err != nil {
		return nil, fmt.Errorf("datemath.NewNormalizer: %w", err)
	}

	creds, err := credential.Static(cfg.Jira.PAT)
	if err != nil {
		return nil, fmt.Errorf("credential.Static: %w", err)
	}

	client := jira.NewClient(cfg.Jira.URL, creds, jira.ClientOptions{
		Timeout:           cfg.Jira.Timeout,
		RequestsPerSecond: cfg.Jira.RequestsPerSecond,
		MaxResults:        cfg.Jira.MaxResults,
	})
	repo := jira.New(client, l)

	a := &App{
		Dates: dates,
		Worklog: worklogUC.New(l, repo, dates, worklogUC.Options{
			SubmitWorkers: cfg.Jira.SubmitWorkers,
			MaxResults:    cfg.Jira.MaxResults,
		}),
	}
	l.Infof(ctx, "Jira: %s (workers=%d)", cfg.Jira.URL, cfg.Jira.SubmitWorkers)

	sheets, source, err := newSheetRepository(ctx, cfg.Tracker, l)
	if err != nil {
		l.Warnf(ctx, "Timesheet not available (optional): %v", err)
		return a, nil
	}
	if sheets == nil {
		return a, nil
	}

	a.Timesheet = timesheetUC.New(l, sheets, timesheetUC.Options{
		Source:     source,
		Sheet:      cfg.Tracker.SheetName,
		DateColumn: cfg.Tracker.DateColumn,
	})
	l.Infof(ctx, "Timesheet: %s %s", cfg.Tracker.Source, source)

	return a, nil
}

func newSheetRepository(ctx context.Context, cfg config.TrackerConfig, l log.Logger) (repository.SheetRepository, string, error) {
	switch cfg.Source {
	case config.TrackerSourceExcel:
		return excel.New(l), cfg.FilePath, nil
	case config.TrackerSourceGSheets:
		client, err := gsheets.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath, cfg.TokenPath)
		if err != nil {
			return nil, "", err
		}
		return gsheets.New(client, l), cfg.SpreadsheetID, nil
	default:
		return nil, "", nil
	}
}
