package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"jira-worklog/internal/worklog"
	"jira-worklog/pkg/datemath"
)

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQ) {
		return m, tea.Quit
	}
	if m.loading {
		return m, nil
	}

	switch m.mode {
	case modeFilter:
		return m.handleFilterKey(msg)
	case modeForm:
		return m.handleFormKey(msg)
	case modePreview:
		return m.handlePreviewKey(msg)
	case modeResults:
		return m.handleResultsKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.issues)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(m.issues) {
			m.toggle(m.issues[m.cursor].Key)
		}
	case key.Matches(msg, m.keys.Filter):
		m.mode = modeFilter
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.Sort):
		if m.sortBy == worklog.SortBySummary {
			m.sortBy = worklog.SortByKey
		} else {
			m.sortBy = worklog.SortBySummary
		}
		return m, m.refresh()
	case key.Matches(msg, m.keys.Order):
		if m.sortOrder == worklog.OrderDesc {
			m.sortOrder = worklog.OrderAsc
		} else {
			m.sortOrder = worklog.OrderDesc
		}
		return m, m.refresh()
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refresh()
	case key.Matches(msg, m.keys.Enter):
		if len(m.picked) == 0 {
			m.setError("No tasks selected.")
			return m, nil
		}
		m.mode = modeForm
		m.status = ""
		m.duration.SetValue("")
		m.date.SetValue(m.dates.Now(datemath.LayoutTimeDate))
		m.focus = 0
		m.date.Blur()
		return m, m.duration.Focus()
	}
	return m, nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		m.mode = modeList
		m.filter.Blur()
		m.cursor = 0
		return m, m.refresh()
	case key.Matches(msg, m.keys.Back):
		m.mode = modeList
		m.filter.Blur()
		m.filter.SetValue("")
		return m, m.refresh()
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = modeList
		m.status = ""
		return m, nil
	case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev):
		m.focus = 1 - m.focus
		if m.focus == 0 {
			m.date.Blur()
			return m, m.duration.Focus()
		}
		m.duration.Blur()
		return m, m.date.Focus()
	case key.Matches(msg, m.keys.Preview):
		return m, m.logWork(true)
	case key.Matches(msg, m.keys.Enter):
		return m, m.logWork(false)
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.duration, cmd = m.duration.Update(msg)
	} else {
		m.date, cmd = m.date.Update(msg)
	}
	return m, cmd
}

func (m *Model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = modeForm
		m.status = ""
	case key.Matches(msg, m.keys.Enter):
		if m.batch == nil || m.batch.Summary().Invalid > 0 {
			m.setError("Fix the invalid entries before confirming.")
			return m, nil
		}
		return m, m.logWork(false)
	}
	return m, nil
}

func (m *Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Enter):
		m.mode = modeList
		m.batch = nil
		m.status = ""
		return m, m.refresh()
	}
	return m, nil
}
