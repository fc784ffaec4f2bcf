package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jira-worklog/internal/worklog"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("69")).
			Width(12)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("82"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Jira Worklog"))
	b.WriteString("\n\n")

	switch m.mode {
	case modeForm:
		b.WriteString(m.formView())
	case modePreview, modeResults:
		b.WriteString(m.batchView())
	default:
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	if m.loading {
		b.WriteString(dimStyle.Render("Working…"))
		b.WriteString("\n")
	} else if m.status != "" {
		style := okStyle
		if m.statusErr {
			style = errStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.ShortHelpView(m.keys.forMode(m.mode)))
	return b.String()
}

func (m *Model) listView() string {
	var b strings.Builder

	if m.mode == modeFilter || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("sorted by %s, %s · %d selected", m.sortBy, m.sortOrder, len(m.picked))))
	b.WriteString("\n\n")

	if len(m.issues) == 0 {
		b.WriteString(dimStyle.Render("No issues."))
		b.WriteString("\n")
		return b.String()
	}

	for i, is := range m.issues {
		mark := "[ ]"
		if m.isPicked(is.Key) {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s %s", mark, keyStyle.Render(is.Key), is.Summary)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) formView() string {
	var issues strings.Builder
	for _, k := range m.picked {
		issues.WriteString(keyStyle.Render(k))
		issues.WriteString(m.summaryOf(k))
		issues.WriteString("\n")
	}

	form := m.duration.View() + "\n" + m.date.View() + "\n" +
		dimStyle.Render("date format: "+m.date.Placeholder)

	return boxStyle.Render(strings.TrimRight(issues.String(), "\n")) + "\n\n" + form + "\n"
}

func (m *Model) batchView() string {
	if m.batch == nil {
		return ""
	}

	var b strings.Builder
	if m.batch.DryRun {
		b.WriteString(titleStyle.Render("Dry run"))
	} else {
		b.WriteString(titleStyle.Render("Results"))
	}
	b.WriteString("\n")

	for _, e := range m.batch.Entries {
		style := okStyle
		switch e.Status {
		case worklog.StatusInvalid, worklog.StatusFailed:
			style = errStyle
		case worklog.StatusValid:
			style = dimStyle
		}
		line := fmt.Sprintf("%s %-8s %-28s %s", keyStyle.Render(e.IssueKey), e.Duration, e.StartedAt, e.StatusText())
		b.WriteString(style.Render(line))
		b.WriteString("\n")
		if e.Message != "" {
			b.WriteString(dimStyle.Render("  " + e.Message))
			b.WriteString("\n")
		}
	}

	s := m.batch.Summary()
	b.WriteString(dimStyle.Render(fmt.Sprintf("valid %d · invalid %d · submitted %d · failed %d", s.Valid, s.Invalid, s.Submitted, s.Failed)))
	b.WriteString("\n")
	return b.String()
}
