package web

import (
	"jira-worklog/internal/model"
	"jira-worklog/internal/timesheet"
	"jira-worklog/internal/worklog"
)

// Page carries the fields every template reads.
type Page struct {
	Title   string
	Flashes []Flash
}

// AddFlash appends a status message.
func (p *Page) AddFlash(kind, msg string) {
	p.Flashes = append(p.Flashes, Flash{Kind: kind, Message: msg})
}

// FlashEntries turns batch entries into status messages, in order.
func (p *Page) FlashEntries(entries []worklog.Entry) {
	for _, e := range entries {
		kind := "danger"
		switch e.Status {
		case worklog.StatusSubmitted:
			kind = "success"
		case worklog.StatusValid:
			kind = "info"
		}
		msg := e.Message
		if msg == "" {
			msg = e.Label() + ": " + e.StatusText()
		}
		p.AddFlash(kind, msg)
	}
}

type IndexPage struct {
	Page
	Issues    []model.Issue
	Filter    string
	SortBy    string
	SortOrder string
}

type LogTimePage struct {
	Page
	IssueKey  string
	TimeSpent string
	DateInput string
	DateHint  string
}

type LogMultiplePage struct {
	Page
	Selected  []model.Issue
	TimeSpent string
	DateInput string
	DateHint  string
	Preview   *worklog.Batch
}

type UploadPage struct {
	Page
	DateHint string
	Batch    *worklog.Batch
}

type ResultsPage struct {
	Page
	Batch *worklog.Batch
}

type TimesheetPage struct {
	Page
	Date   string
	Name   string
	Sheet  string
	Result *timesheet.LookupOutput
}
