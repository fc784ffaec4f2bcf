package http

import "jira-worklog/internal/timesheet"

type lookupReq struct {
	Date   string `form:"date"   binding:"required"`
	Name   string `form:"name"   binding:"required"`
	Sheet  string `form:"sheet"`
	Source string `form:"source"`
}

func (r lookupReq) toInput() timesheet.LookupInput {
	return timesheet.LookupInput{
		Date:   r.Date,
		Name:   r.Name,
		Sheet:  r.Sheet,
		Source: r.Source,
	}
}
