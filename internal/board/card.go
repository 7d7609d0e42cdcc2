package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/dropboard/internal/dnd"
	"github.com/Makepad-fr/dropboard/internal/model"
	"github.com/Makepad-fr/dropboard/internal/ui"
)

// Card is one draggable item. It only describes itself; drops are the zone's job.
type Card struct {
	Item model.Item
}

func (c Card) Source(r dnd.Rect) dnd.Source[model.Item] {
	return dnd.Source[model.Item]{ID: c.Item.ID, Kind: taskKind, Rect: r, Payload: c.Item}
}

// Render draws the card cardHeight rows tall and exactly width cells wide.
func (c Card) Render(width int, dragging, selected bool) string {
	th := ui.Current()
	text := strings.ReplaceAll(c.Item.Text, "\n", " ")
	text = ansi.Truncate(text, max(width-4, 1), "…")

	st := lipgloss.NewStyle().
		Border(th.Border).
		BorderForeground(th.BorderColor).
		Padding(0, 1).
		Width(width - 2)
	switch {
	case dragging:
		st = st.Faint(true).BorderForeground(th.OverColor)
	case selected:
		st = st.Bold(true).BorderForeground(th.SelectedColor)
	}
	return st.Render(text)
}
