package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"jira-worklog/internal/model"
	"jira-worklog/internal/worklog"
)

var (
	issuesFilter string
	issuesSortBy string
	issuesOrder  string
)

var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "List the issues assigned to you",
	Args:  cobra.NoArgs,
	RunE:  runIssues,
}

func init() {
	issuesCmd.Flags().StringVarP(&issuesFilter, "filter", "f", "", "only issues whose summary contains this text")
	issuesCmd.Flags().StringVar(&issuesSortBy, "sort-by", worklog.SortBySummary, "summary or key")
	issuesCmd.Flags().StringVar(&issuesOrder, "order", worklog.OrderDesc, "asc or desc")
}

func runIssues(cmd *cobra.Command, args []string) error {
	if issuesSortBy != worklog.SortBySummary && issuesSortBy != worklog.SortByKey {
		return fmt.Errorf("--sort-by must be %s or %s", worklog.SortBySummary, worklog.SortByKey)
	}

	out, err := application.Worklog.ListIssues(ctxOf(cmd), worklog.ListIssuesInput{
		Filter:    issuesFilter,
		SortBy:    issuesSortBy,
		SortOrder: issuesOrder,
	})
	if err != nil {
		return errors.New(errorText(err))
	}

	printIssues(cmd.OutOrStdout(), out.Issues)
	return nil
}

func printIssues(w io.Writer, issues []model.Issue) {
	if len(issues) == 0 {
		fmt.Fprintln(w, "No issues found.")
		return
	}

	rows := make([][]string, 0, len(issues))
	for _, is := range issues {
		rows = append(rows, []string{is.Key, is.Summary, is.Status})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("KEY", "SUMMARY", "STATUS").
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}
