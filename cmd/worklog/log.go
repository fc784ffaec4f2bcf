package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"jira-worklog/internal/worklog"
	"jira-worklog/pkg/datemath"
)

var (
	logTimeSpent string
	logDate      string
	logLayout    string
	logDryRun    bool
)

var logCmd = &cobra.Command{
	Use:   "log ISSUE-KEY...",
	Short: "Log the same duration on one or more issues",
	Example: `  worklog log ABC-1 --time 1h30m --date "2024-05-01 09:00"
  worklog log ABC-1 ABC-2 --time 30m --layout timedate --date "09:00 01-05-2024" --dry-run`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVarP(&logTimeSpent, "time", "t", "", "time spent, e.g. 1h30m, 2h or 45m")
	logCmd.Flags().StringVarP(&logDate, "date", "d", "", "start time (default: now)")
	logCmd.Flags().StringVar(&logLayout, "layout", "datetime", "date layout: datetime (YYYY-MM-DD HH:MM) or timedate (HH:MM DD-MM-YYYY)")
	logCmd.Flags().BoolVar(&logDryRun, "dry-run", false, "validate and print without sending anything")
	_ = logCmd.MarkFlagRequired("time")
}

func runLog(cmd *cobra.Command, args []string) error {
	layout, err := datemath.ParseLayout(logLayout)
	if err != nil {
		return err
	}

	batch, err := application.Worklog.LogWork(ctxOf(cmd), worklog.LogWorkInput{
		IssueKeys: args,
		Duration:  logTimeSpent,
		Date:      logDate,
		Layout:    layout,
		DryRun:    logDryRun,
	})
	if err != nil {
		return errors.New(errorText(err))
	}

	printBatch(cmd.OutOrStdout(), batch)
	return batchErr(batch)
}

// printBatch prints one status line per entry, then the counts.
func printBatch(w io.Writer, b worklog.Batch) {
	if b.DryRun {
		fmt.Fprintln(w, "Dry run: nothing was sent.")
	}
	for _, e := range b.Entries {
		msg := e.Message
		if msg == "" {
			msg = e.Label() + " " + e.Duration + " at " + e.StartedAt
		}
		prefix := ""
		if e.Line > 0 {
			prefix = fmt.Sprintf("line %d: ", e.Line)
		}
		fmt.Fprintf(w, "%-24s %s%s\n", e.StatusText(), prefix, msg)
	}
	s := b.Summary()
	fmt.Fprintf(w, "valid %d, invalid %d, submitted %d, failed %d\n", s.Valid, s.Invalid, s.Submitted, s.Failed)
}

// batchErr turns invalid or failed entries into a non-zero exit.
func batchErr(b worklog.Batch) error {
	s := b.Summary()
	if s.Invalid+s.Failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d entries were not logged", s.Invalid+s.Failed, len(b.Entries))
}

func errorText(err error) string {
	switch {
	case errors.Is(err, worklog.ErrNoIssuesSelected):
		return "No tasks selected."
	case errors.Is(err, worklog.ErrFetchIssues):
		return "Failed to fetch tasks: " + strings.TrimPrefix(err.Error(), worklog.ErrFetchIssues.Error()+": ")
	default:
		return err.Error()
	}
}
