package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jira-worklog/internal/worklog"
)

var uploadDryRun bool

var uploadCmd = &cobra.Command{
	Use:   "upload FILE",
	Short: "Log work from a bulk file",
	Long: `Each line of FILE is "task summary,duration,YYYY-MM-DD HH:MM".
An empty date means now. Malformed lines are reported and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().BoolVar(&uploadDryRun, "dry-run", false, "validate and print without sending anything")
}

func runUpload(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	out, err := application.Worklog.Upload(ctxOf(cmd), worklog.UploadInput{
		Content: content,
		DryRun:  uploadDryRun,
	})
	if err != nil {
		return errors.New(errorText(err))
	}

	w := cmd.OutOrStdout()
	for _, le := range out.LineErrors {
		fmt.Fprintf(w, "line %d: %s\n", le.Line, le.Message)
	}
	if len(out.Batch.Entries) == 0 {
		fmt.Fprintln(w, "No valid tasks to process.")
		return nil
	}

	printBatch(w, out.Batch)
	return batchErr(out.Batch)
}
