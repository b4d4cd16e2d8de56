package cli

import "github.com/charmbracelet/bubbles/key"

// trackerKeyMap lists every TUI action. Grade entry owns plain letters, so
// actions sit on arrows and ctrl chords.
type trackerKeyMap struct {
	PrevTerm    key.Binding
	NextTerm    key.Binding
	PickTerm    key.Binding
	AddGrade    key.Binding
	MarkOffTerm key.Binding
	ClearTerm   key.Binding
	Compute     key.Binding
	ClearAll    key.Binding
	Quit        key.Binding
}

func defaultTrackerKeyMap() trackerKeyMap {
	return trackerKeyMap{
		PrevTerm:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev term")),
		NextTerm:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next term")),
		PickTerm:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "pick term")),
		AddGrade:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add grade")),
		MarkOffTerm: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "off-term")),
		ClearTerm:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear term")),
		Compute:     key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "calculate GPA")),
		ClearAll:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "clear all")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k trackerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddGrade, k.PrevTerm, k.NextTerm, k.PickTerm, k.MarkOffTerm, k.ClearTerm, k.Compute, k.ClearAll, k.Quit}
}

func (k trackerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevTerm, k.NextTerm, k.PickTerm},
		{k.AddGrade, k.MarkOffTerm, k.ClearTerm},
		{k.Compute, k.ClearAll, k.Quit},
	}
}
