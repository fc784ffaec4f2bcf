package tui

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jira-worklog/internal/model"
	"jira-worklog/internal/worklog"
	"jira-worklog/pkg/datemath"
	"jira-worklog/pkg/log"
)

type mode int

const (
	modeList mode = iota
	modeFilter
	modeForm
	modePreview
	modeResults
)

type issuesMsg struct {
	issues []model.Issue
	err    error
}

type batchMsg struct {
	batch  worklog.Batch
	dryRun bool
	err    error
}

// Model is the terminal shell: list, select, fill in one duration and
// date, preview, confirm.
type Model struct {
	ctx   context.Context
	l     log.Logger
	uc    worklog.UseCase
	dates *datemath.Normalizer

	mode mode
	keys keyMap
	help help.Model

	issues    []model.Issue
	cursor    int
	picked    []string
	filter    textinput.Model
	sortBy    string
	sortOrder string
	loading   bool

	duration textinput.Model
	date     textinput.Model
	focus    int

	batch     *worklog.Batch
	status    string
	statusErr bool
}

// New creates the model. ctx bounds every tracker call it makes.
func New(ctx context.Context, l log.Logger, uc worklog.UseCase, dates *datemath.Normalizer) *Model {
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "summary contains…"

	duration := textinput.New()
	duration.Prompt = "Time spent: "
	duration.Placeholder = "1h30m"
	duration.CharLimit = 16

	date := textinput.New()
	date.Prompt = "Started:    "
	date.Placeholder = datemath.LayoutTimeDate.Hint()
	date.CharLimit = 32

	return &Model{
		ctx:       ctx,
		l:         l,
		uc:        uc,
		dates:     dates,
		keys:      newKeyMap(),
		help:      help.New(),
		filter:    filter,
		sortBy:    worklog.SortBySummary,
		sortOrder: worklog.OrderDesc,
		duration:  duration,
		date:      date,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.refresh()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case issuesMsg:
		m.loading = false
		if msg.err != nil {
			m.l.Errorf(m.ctx, "tui: uc.ListIssues: %v", msg.err)
			m.setError(errorText(msg.err))
			return m, nil
		}
		m.issues = msg.issues
		if m.cursor >= len(m.issues) {
			m.cursor = max(0, len(m.issues)-1)
		}
		return m, nil

	case batchMsg:
		return m.handleBatch(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleBatch(msg batchMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.l.Errorf(m.ctx, "tui: uc.LogWork: %v", msg.err)
		m.setError(errorText(msg.err))
		return m, nil
	}

	b := msg.batch
	s := b.Summary()
	switch {
	case msg.dryRun:
		m.mode = modePreview
		m.setInfo("Dry run: nothing was sent.")
	case s.Invalid > 0:
		b.DryRun = true
		m.mode = modePreview
		m.setError("Fix the invalid entries before confirming.")
	default:
		m.mode = modeResults
		m.picked = nil
		if s.Failed > 0 {
			m.setError("Some entries failed.")
		} else {
			m.setInfo("Done.")
		}
	}
	m.batch = &b
	return m, nil
}

func (m *Model) refresh() tea.Cmd {
	m.loading = true
	uc, ctx := m.uc, m.ctx
	in := worklog.ListIssuesInput{
		Filter:    m.filter.Value(),
		SortBy:    m.sortBy,
		SortOrder: m.sortOrder,
	}
	return func() tea.Msg {
		out, err := uc.ListIssues(ctx, in)
		return issuesMsg{issues: out.Issues, err: err}
	}
}

func (m *Model) logWork(dryRun bool) tea.Cmd {
	m.loading = true
	uc, ctx := m.uc, m.ctx
	in := worklog.LogWorkInput{
		IssueKeys: slices.Clone(m.picked),
		Duration:  m.duration.Value(),
		Date:      m.date.Value(),
		Layout:    datemath.LayoutTimeDate,
		DryRun:    dryRun,
	}
	return func() tea.Msg {
		b, err := uc.LogWork(ctx, in)
		return batchMsg{batch: b, dryRun: dryRun, err: err}
	}
}

func (m *Model) toggle(key string) {
	if i := slices.Index(m.picked, key); i >= 0 {
		m.picked = slices.Delete(m.picked, i, i+1)
		return
	}
	m.picked = append(m.picked, key)
}

func (m *Model) isPicked(key string) bool {
	return slices.Contains(m.picked, key)
}

func (m *Model) summaryOf(key string) string {
	for _, is := range m.issues {
		if is.Key == key {
			return is.Summary
		}
	}
	return ""
}

func (m *Model) setError(msg string) { m.status, m.statusErr = msg, true }
func (m *Model) setInfo(msg string)  { m.status, m.statusErr = msg, false }

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
