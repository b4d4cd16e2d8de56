package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/termtracker/internal/cli/formatter"
	"github.com/alexanderramin/termtracker/internal/domain"
	"github.com/alexanderramin/termtracker/internal/tracker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func runTUI(app *App) error {
	_, err := tea.NewProgram(newTrackerModel(app), tea.WithAltScreen()).Run()
	return err
}

// computeDoneMsg reports that a Compute call returned. The tracker already
// holds the outcome; the message only triggers a redraw.
type computeDoneMsg struct {
	err error
}

// trackerModel is the bubbletea Model for the grade-entry screen.
type trackerModel struct {
	app   *App
	input textinput.Model
	keys  trackerKeyMap
	help  help.Model

	form     *huh.Form
	formKind formKind
	values   *formValues

	// hint is transient feedback for the last add attempt.
	hint     string
	width    int
	quitting bool
}

func newTrackerModel(app *App) *trackerModel {
	ti := textinput.New()
	ti.Placeholder = "Enter grade (A, B+, etc.)"
	ti.CharLimit = 8
	ti.ShowSuggestions = true
	ti.SetSuggestions(domain.GradeStrings())
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))
	ti.SetValue(app.Tracker.Pending())
	ti.Focus()

	return &trackerModel{
		app:    app,
		input:  ti,
		keys:   defaultTrackerKeyMap(),
		help:   help.New(),
		values: &formValues{},
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m *trackerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *trackerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = max(10, msg.Width/3)
		return m, nil

	case computeDoneMsg:
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := m.handleKey(keyMsg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.app.Tracker.SetPendingGrade(m.input.Value())
	return m, cmd
}

func (m *trackerModel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	t := m.app.Tracker

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, m.keys.PrevTerm):
		m.stepTerm(-1)
		return true, nil

	case key.Matches(msg, m.keys.NextTerm):
		m.stepTerm(1)
		return true, nil

	case key.Matches(msg, m.keys.PickTerm):
		m.values.term = t.Selected()
		return true, m.openForm(formPickTerm, termPickerForm(m.values, t.Records()))

	case key.Matches(msg, m.keys.AddGrade):
		m.addGrade()
		return true, nil

	case key.Matches(msg, m.keys.MarkOffTerm):
		t.MarkOffTerm()
		m.hint = fmt.Sprintf("%s marked off-term", t.Selected())
		return true, nil

	case key.Matches(msg, m.keys.ClearTerm):
		t.ClearTerm()
		m.hint = fmt.Sprintf("%s cleared", t.Selected())
		return true, nil

	case key.Matches(msg, m.keys.Compute):
		m.hint = ""
		return true, m.computeCmd()

	case key.Matches(msg, m.keys.ClearAll):
		m.values.confirm = false
		return true, m.openForm(formConfirmClearAll, clearAllForm(m.values))
	}
	return false, nil
}

func (m *trackerModel) stepTerm(delta int) {
	n := len(domain.TermCatalog)
	i := domain.TermIndex(m.app.Tracker.Selected())
	next := domain.TermCatalog[((i+delta)%n+n)%n]
	_ = m.app.Tracker.SelectTerm(next)
	m.hint = ""
}

func (m *trackerModel) addGrade() {
	t := m.app.Tracker
	t.SetPendingGrade(m.input.Value())
	res := t.AddGrade()
	switch res {
	case tracker.Added, tracker.AddedReplacedOffTerm:
		m.input.SetValue(t.Pending())
		m.hint = ""
		if res == tracker.AddedReplacedOffTerm {
			m.hint = fmt.Sprintf("%s is no longer off-term", t.Selected())
		}
	case tracker.RejectedEmpty:
		m.hint = ""
	case tracker.RejectedUnknownGrade:
		m.hint = fmt.Sprintf("%q is not a grade; use %s", strings.TrimSpace(m.input.Value()), strings.Join(domain.GradeStrings(), " "))
	}
}

func (m *trackerModel) computeCmd() tea.Cmd {
	svc := m.app.Service
	return func() tea.Msg {
		_, err := svc.Compute(context.Background())
		return computeDoneMsg{err: err}
	}
}

func (m *trackerModel) openForm(kind formKind, form *huh.Form) tea.Cmd {
	m.form = form
	m.formKind = kind
	m.input.Blur()
	return form.Init()
}

func (m *trackerModel) closeForm() tea.Cmd {
	m.form = nil
	m.formKind = formNone
	return m.input.Focus()
}

func (m *trackerModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return m, m.closeForm()
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.applyForm()
		return m, tea.Batch(cmd, m.closeForm())
	case huh.StateAborted:
		return m, m.closeForm()
	}
	return m, cmd
}

// applyForm commits the values of the form that just completed.
func (m *trackerModel) applyForm() {
	t := m.app.Tracker
	switch m.formKind {
	case formPickTerm:
		if err := t.SelectTerm(m.values.term); err == nil {
			m.hint = ""
		}
	case formConfirmClearAll:
		if m.values.confirm {
			t.ClearAll()
			m.hint = "All data cleared"
		}
	}
}

// ── rendering ────────────────────────────────────────────────────────────────

func (m *trackerModel) View() string {
	if m.quitting {
		return ""
	}
	if m.form != nil {
		return "\n" + m.form.View() + "\n"
	}

	t := m.app.Tracker
	var b strings.Builder

	b.WriteString(formatter.Header("Term Tracker"))
	b.WriteString("\n\n")

	selected := t.Selected()
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		formatter.Bold("Selected Term:"),
		formatter.StyleHeader.Render(selected),
		formatter.Dim(fmt.Sprintf("(%d/%d)", domain.TermIndex(selected)+1, len(domain.TermCatalog)))))
	v, ok := t.Term(selected)
	b.WriteString(formatter.FormatTermValue(v, ok))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.hint != "" {
		b.WriteString(formatter.Dim(m.hint))
	}
	b.WriteString("\n")

	records := t.Records()
	if len(records) > 0 {
		b.WriteString("\n")
		b.WriteString(formatter.FormatRecords(records))
	}

	if t.InFlight() {
		b.WriteString("\n" + formatter.Dim("Calculating GPA…") + "\n")
	}
	if msg := t.Error(); msg != "" {
		b.WriteString("\n" + formatter.FormatError(msg) + "\n")
	}
	if res := t.Result(); res != nil {
		b.WriteString("\n" + formatter.FormatSummary(res) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	if m.app.Endpoint != "" {
		b.WriteString("\n" + formatter.Dim("scorer: "+m.app.Endpoint))
	}
	b.WriteString("\n")
	return b.String()
}
