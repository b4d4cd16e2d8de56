package cli

import (
	"github.com/alexanderramin/termtracker/internal/cli/formatter"
	"github.com/alexanderramin/termtracker/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// trackerHuhTheme matches huh forms to the formatter palette.
func trackerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// formKind identifies which overlay form is open.
type formKind int

const (
	formNone formKind = iota
	formPickTerm
	formConfirmClearAll
)

// formValues holds form-bound values. It lives behind a pointer so huh
// fields keep writing to the same place across model updates.
type formValues struct {
	term    string
	confirm bool
}

// termPickerForm offers the term catalog, marking terms that already hold data.
func termPickerForm(values *formValues, records domain.TermRecords) *huh.Form {
	opts := make([]huh.Option[string], len(domain.TermCatalog))
	for i, label := range domain.TermCatalog {
		text := label
		if v, ok := records[label]; ok {
			text = label + "  " + formatter.Dim(v.String())
		}
		opts[i] = huh.NewOption(text, label)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select Term").
				Options(opts...).
				Height(10).
				Value(&values.term),
		),
	).WithTheme(trackerHuhTheme()).WithShowHelp(false)
}

// clearAllForm asks before dropping every recorded term.
func clearAllForm(values *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Clear all data?").
				Description("Removes every recorded term and the current GPA result.").
				Affirmative("Clear").
				Negative("Keep").
				Value(&values.confirm),
		),
	).WithTheme(trackerHuhTheme()).WithShowHelp(false)
}
