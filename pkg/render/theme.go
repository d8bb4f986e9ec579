package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/privacytests/ptreport/pkg/table"
)

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name  string
	Title lipgloss.Style
	Good  lipgloss.Style
	Bad   lipgloss.Style
	NA    lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style
	Icons ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Good    string
	Bad     string
	NA      string
	Missing string
	Failed  string // suffix when every trial failed to run
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:  "default",
		Title: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true), // blue
		Good:  lipgloss.NewStyle().Foreground(lipgloss.Color("34")),            // green
		Bad:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),           // red
		NA:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),           // orange
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("242")),           // gray
		Bold:  lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Good:    "✓",
			Bad:     "✗",
			NA:      "–",
			Missing: " ",
			Failed:  "⚠",
		},
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name:  "orca",
		Title: lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true), // pale blue
		Good:  lipgloss.NewStyle().Foreground(lipgloss.Color("108")),           // sage green
		Bad:   lipgloss.NewStyle().Foreground(lipgloss.Color("167")),           // muted red
		NA:    lipgloss.NewStyle().Foreground(lipgloss.Color("179")),           // muted gold
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),           // lighter gray
		Bold:  lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Good:    "✓",
			Bad:     "✗",
			NA:      "·",
			Missing: " ",
			Failed:  "!",
		},
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme() Theme {
	return Theme{
		Name:  "mono",
		Title: lipgloss.NewStyle().Bold(true),
		Good:  lipgloss.NewStyle(),
		Bad:   lipgloss.NewStyle(),
		NA:    lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle(),
		Bold:  lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Good:    "+",
			Bad:     "x",
			NA:      "-",
			Missing: " ",
			Failed:  "!",
		},
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}

// Cell returns the icon and style for a table cell.
func (t Theme) Cell(c table.Cell) (string, lipgloss.Style) {
	if !c.Present {
		return t.Icons.Missing, t.Muted
	}
	icon, style := t.Icons.Good, t.Good
	switch c.State {
	case table.StateBad:
		icon, style = t.Icons.Bad, t.Bad
	case table.StateNA:
		icon, style = t.Icons.NA, t.NA
	}
	if c.TestFailed {
		icon += t.Icons.Failed
	}
	return icon, style
}
