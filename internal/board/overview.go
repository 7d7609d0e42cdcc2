package board

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/dropboard/internal/model"
	"github.com/Makepad-fr/dropboard/internal/ui"
)

// overviewItem adapts a registry Item to bubbles/list.Item
type overviewItem struct {
	item   model.Item
	placed bool // status matches one of the board's zones
}

func (i overviewItem) FilterValue() string { return i.item.Text + " " + i.item.Status }

// Custom delegate to control how items render (single line)
type overviewDelegate struct{}

func (d overviewDelegate) Height() int                               { return 1 }
func (d overviewDelegate) Spacing() int                              { return 0 }
func (d overviewDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d overviewDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	it, ok := li.(overviewItem)
	if !ok {
		return
	}
	th := ui.Current()

	sym := th.Success.Render(th.SymPlaced)
	status := th.Muted.Render(it.item.Status)
	if !it.placed {
		sym = th.Pending.Render(th.SymUnplaced)
		status = th.Pending.Render(it.item.Status + " (no zone)")
	}

	prefix := "  "
	if index == m.Index() {
		prefix = lipgloss.NewStyle().Bold(true).Reverse(true).Render("> ")
	}
	fmt.Fprintf(w, "%s%2d. %s %s  %s", prefix, index+1, sym, it.item.Text, status)
}

func newOverview() list.Model {
	l := list.New(nil, overviewDelegate{}, 0, 0)
	l.Title = "All items, in board order"
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.KeyMap.Quit.SetEnabled(false)
	return l
}

// overviewItems lists the registry in its own order.
func (m Model) overviewItems() []list.Item {
	out := make([]list.Item, 0, m.reg.Len())
	for _, it := range m.reg.Items() {
		_, placed := m.zoneByStatus(it.Status)
		out = append(out, overviewItem{item: it, placed: placed})
	}
	return out
}
