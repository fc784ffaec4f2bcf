package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"jira-worklog/config"
	"jira-worklog/internal/app"
	"jira-worklog/internal/worklog/delivery/tui"
)

// defaultLogPath keeps log lines off the terminal the UI draws on.
const defaultLogPath = "worklog-tui.log"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	logPath := os.Getenv("WORKLOG_TUI_LOG")
	if logPath == "" {
		logPath = defaultLogPath
	}
	logger := app.NewLogger(cfg.Logger, logPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize:", err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.New(ctx, logger, a.Worklog, a.Dates), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
