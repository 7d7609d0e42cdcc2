package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/dropboard/internal/dnd"
	"github.com/Makepad-fr/dropboard/internal/model"
	"github.com/Makepad-fr/dropboard/internal/registry"
	"github.com/Makepad-fr/dropboard/internal/ui"
)

// taskKind is the only thing cards carry and zones accept.
const taskKind dnd.Kind = "task"

var ErrNoRegistry = errors.New("zone requires an item registry")

// Zone shows the items at one status and turns drops into registry moves.
type Zone struct {
	Status string
	reg    *registry.Registry
}

func NewZone(reg *registry.Registry, status string) (Zone, error) {
	if reg == nil {
		return Zone{}, fmt.Errorf("zone %q: %w", status, ErrNoRegistry)
	}
	return Zone{Status: status, reg: reg}, nil
}

func (z Zone) Items() []model.Item { return z.reg.ByStatus(z.Status) }

// Drop places item in this zone, at the end of the list.
func (z Zone) Drop(item model.Item) { z.reg.Move(item, z.Status) }

func (z Zone) Target(r dnd.Rect) dnd.Target {
	return dnd.Target{ID: z.Status, Accept: taskKind, Rect: r}
}

// zoneView is what render needs beyond the geometry.
type zoneView struct {
	over, focused bool
	selectedID    string
	isDragging    func(id string) bool
}

func (b zoneBox) render(v zoneView) string {
	th := ui.Current()
	inner := b.rect.W - 4

	title := b.zone.Status
	titleStyle := th.Title
	if v.focused {
		title = "› " + title
		titleStyle = titleStyle.Foreground(th.SelectedColor)
	}
	title = fmt.Sprintf("%s (%d)", title, len(b.cards)+b.hidden)

	hint := "Drop Here"
	if v.over {
		hint = "Release to drop"
	}

	lines := []string{
		titleStyle.Render(ansi.Truncate(title, inner, "…")),
		th.Muted.Render(ansi.Truncate(hint, inner, "…")),
		"",
	}
	for _, c := range b.cards {
		card := Card{Item: c.item}
		lines = append(lines, card.Render(c.rect.W, v.isDragging(c.item.ID), c.item.ID == v.selectedID))
	}
	if b.hidden > 0 {
		lines = append(lines, th.Muted.Render(ansi.Truncate(fmt.Sprintf("+%d more", b.hidden), inner, "…")))
	}

	border := th.BorderColor
	if v.over {
		border = th.OverColor
	}
	st := lipgloss.NewStyle().
		Border(th.Border).
		BorderForeground(border).
		Padding(0, 1).
		Width(b.rect.W - 2).
		Height(b.rect.H - 2)
	return st.Render(strings.Join(lines, "\n"))
}
