package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/termtracker/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// GradeStyle colors a letter grade by its band.
func GradeStyle(g domain.Grade) lipgloss.Style {
	switch {
	case strings.HasPrefix(string(g), "A"):
		return StyleGreen
	case strings.HasPrefix(string(g), "B"):
		return StyleBlue
	case strings.HasPrefix(string(g), "C"):
		return StyleYellow
	default:
		return StyleRed
	}
}

// GPAStyle colors a GPA value. Non-numeric values render in the plain
// foreground color.
func GPAStyle(g domain.GPA) lipgloss.Style {
	f, err := g.Float()
	if err != nil {
		return StyleFg
	}
	switch {
	case f >= 3.5:
		return StyleGreen
	case f >= 3.0:
		return StyleBlue
	case f >= 2.0:
		return StyleYellow
	default:
		return StyleRed
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
