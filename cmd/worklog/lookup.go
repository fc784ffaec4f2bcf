package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"jira-worklog/internal/timesheet"
)

var (
	lookupDate   string
	lookupName   string
	lookupSheet  string
	lookupSource string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Read one cell from the spreadsheet time tracker",
	Example: `  worklog lookup --date 1/5/2024 --name "Pedro Serrano"`,
	Args:    cobra.NoArgs,
	RunE:    runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&lookupDate, "date", "", "day first date, D/M/YYYY")
	lookupCmd.Flags().StringVar(&lookupName, "name", "", "column header to read")
	lookupCmd.Flags().StringVar(&lookupSheet, "sheet", "", "sheet name (default from config)")
	lookupCmd.Flags().StringVar(&lookupSource, "source", "", "file path or spreadsheet id (default from config)")
	_ = lookupCmd.MarkFlagRequired("date")
	_ = lookupCmd.MarkFlagRequired("name")
}

func runLookup(cmd *cobra.Command, args []string) error {
	if application.Timesheet == nil {
		return errors.New("no time tracker configured (tracker.source)")
	}

	out, err := application.Timesheet.Lookup(ctxOf(cmd), timesheet.LookupInput{
		Date:   lookupDate,
		Name:   lookupName,
		Sheet:  lookupSheet,
		Source: lookupSource,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Entry for %s on %s:\n%s\n", out.Name, out.Date, out.Message)
	if out.Outcome != timesheet.OutcomeFound {
		return fmt.Errorf("lookup: %s", out.Outcome)
	}
	return nil
}
