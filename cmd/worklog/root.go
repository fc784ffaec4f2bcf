package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jira-worklog/config"
	"jira-worklog/internal/app"
)

var (
	configPath string
	verbose    bool

	// application is built once per invocation by the root pre-run. Tests
	// set it directly.
	application *app.App
)

var rootCmd = &cobra.Command{
	Use:   "worklog",
	Short: "Log work on Jira issues from the command line",
	Long: `worklog lists the Jira issues assigned to you and records work-log entries
against them, one issue at a time, several at once, or from a bulk file.
It can also read a single cell from the spreadsheet time tracker.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: config.yaml in ./config, . or /etc/worklog)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at the configured level instead of warn")

	rootCmd.AddCommand(issuesCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(lookupCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	if application != nil {
		return nil
	}

	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}

	lc := cfg.Logger
	if !verbose {
		lc.Level = "warn"
	}
	application, err = app.New(ctxOf(cmd), cfg, app.NewLogger(lc, "stderr"))
	return err
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
