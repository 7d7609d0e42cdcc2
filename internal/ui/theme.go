package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Border                                        lipgloss.Border
	BorderColor, OverColor, SelectedColor         lipgloss.TerminalColor
	SymPlaced, SymUnplaced, SymCarry              string
}

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:          "classic",
		Title:         lipgloss.NewStyle().Bold(true),
		Muted:         lipgloss.NewStyle().Faint(true),
		Accent:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Border:        lipgloss.NormalBorder(),
		BorderColor:   lipgloss.Color("8"),
		OverColor:     lipgloss.Color("12"),
		SelectedColor: lipgloss.Color("214"),
		SymPlaced:     "✔", SymUnplaced: "•", SymCarry: "✋",
	}
}

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:          "neon",
			Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Border:        lipgloss.RoundedBorder(),
			BorderColor:   lipgloss.Color("5"),
			OverColor:     lipgloss.Color("14"),
			SelectedColor: lipgloss.Color("13"),
			SymPlaced:     "◼", SymUnplaced: "◻", SymCarry: "✋",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain, Pending: plain,
			Border:        asciiBorder,
			BorderColor:   lipgloss.NoColor{},
			OverColor:     lipgloss.NoColor{},
			SelectedColor: lipgloss.NoColor{},
			SymPlaced:     "x", SymUnplaced: "-", SymCarry: "*",
		}
	default:
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }
