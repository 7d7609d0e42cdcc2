package board

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/dropboard/internal/dnd"
	"github.com/Makepad-fr/dropboard/internal/model"
	"github.com/Makepad-fr/dropboard/internal/registry"
	"github.com/Makepad-fr/dropboard/internal/ui"
)

// Options tune the interactive board.
type Options struct {
	Title     string
	Mouse     bool // drag with the mouse; needs the alt screen for coordinates to line up
	AltScreen bool
}

// Model is the Bubble Tea model for the board. The registry is shared
// with the caller; the model holds no item state of its own.
type Model struct {
	reg   *registry.Registry
	zones []Zone
	drag  *dnd.Manager[model.Item]
	keys  keyMap
	help  help.Model
	opts  Options

	width, height int
	boxes         []zoneBox

	// keyboard cursor
	zoneIdx, cardIdx int
	carrying         bool

	// inline "move to status" prompt
	prompting bool
	promptFor model.Item
	ti        textinput.Model
	promptErr string

	overview bool
	list     list.Model

	status string
	moves  int
}

// New builds a board with one zone per status, left to right.
func New(reg *registry.Registry, statuses []string, opts Options) (Model, error) {
	if len(statuses) == 0 {
		return Model{}, errors.New("board: no zones")
	}
	zones := make([]Zone, 0, len(statuses))
	for _, s := range statuses {
		z, err := NewZone(reg, s)
		if err != nil {
			return Model{}, fmt.Errorf("board: %w", err)
		}
		zones = append(zones, z)
	}
	if opts.Title == "" {
		opts.Title = "Drop board"
	}

	m := Model{
		reg:    reg,
		zones:  zones,
		drag:   dnd.New[model.Item](),
		keys:   defaultKeys(),
		help:   help.New(),
		opts:   opts,
		width:  80,
		height: 24,
		list:   newOverview(),
	}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "status, e.g. today"
	m.ti.CharLimit = 64
	m.resize()
	m.relayout()
	return m, nil
}

// Run starts the board and blocks until the user quits.
func Run(reg *registry.Registry, statuses []string, opts Options) error {
	m, err := New(reg, statuses, opts)
	if err != nil {
		return err
	}
	var po []tea.ProgramOption
	if opts.AltScreen {
		po = append(po, tea.WithAltScreen())
	}
	if opts.Mouse {
		po = append(po, tea.WithMouseCellMotion())
	}
	final, err := tea.NewProgram(m, po...).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		log.Printf("session over: %d moves, %d items", fm.moves, fm.reg.Len())
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		m.relayout()
		return m, nil
	}

	if m.prompting {
		return m.updatePrompt(msg)
	}
	if m.overview {
		return m.updateOverview(msg)
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		if !m.opts.Mouse || m.carrying {
			return m, nil
		}
		if d, ok := m.drag.HandleMouse(msg); ok {
			m.applyDrop(d)
		} else if src, dragging := m.drag.Dragging(); dragging {
			m.focusItem(src.ID)
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		if m.carrying {
			m.drag.Cancel()
			m.carrying = false
			m.status = "put it back"
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		step := 1
		if key.Matches(msg, m.keys.Left) {
			step = -1
		}
		m.zoneIdx = clamp(m.zoneIdx+step, 0, len(m.zones)-1)
		if m.carrying {
			m.drag.Hover(m.zones[m.zoneIdx].Status)
		} else {
			m.cardIdx = clamp(m.cardIdx, 0, len(m.boxes[m.zoneIdx].cards)-1)
		}

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		if m.carrying {
			return m, nil
		}
		step := 1
		if key.Matches(msg, m.keys.Up) {
			step = -1
		}
		m.cardIdx = clamp(m.cardIdx+step, 0, len(m.boxes[m.zoneIdx].cards)-1)

	case key.Matches(msg, m.keys.Grab):
		if m.carrying {
			m.carrying = false
			if d, ok := m.drag.Commit(); ok {
				m.applyDrop(d)
			} else {
				m.status = "put it back"
			}
			return m, nil
		}
		it, ok := m.selected()
		if !ok {
			m.status = "nothing to pick up here"
			return m, nil
		}
		if m.drag.Begin(it.ID) {
			m.drag.Hover(m.zones[m.zoneIdx].Status)
			m.carrying = true
			m.status = fmt.Sprintf("carrying %s: pick a zone, space to drop", it.Text)
		}

	case key.Matches(msg, m.keys.Move):
		if m.carrying {
			return m, nil
		}
		it, ok := m.selected()
		if !ok {
			m.status = "no card selected"
			return m, nil
		}
		return m.openPrompt(it)

	case key.Matches(msg, m.keys.Overview):
		if m.carrying {
			return m, nil
		}
		m.overview = true
		cmd := m.list.SetItems(m.overviewItems())
		return m, cmd
	}
	return m, nil
}

func (m Model) updateOverview(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(km, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(km, m.keys.Overview), key.Matches(km, m.keys.Cancel) && m.list.FilterState() == list.Unfiltered:
			m.overview = false
			return m, nil
		case key.Matches(km, m.keys.Move):
			if oi, ok := m.list.SelectedItem().(overviewItem); ok {
				return m.openPrompt(oi.item)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) openPrompt(it model.Item) (tea.Model, tea.Cmd) {
	m.prompting = true
	m.promptFor = it
	m.promptErr = ""
	m.ti.SetValue("")
	cmd := m.ti.Focus()
	m.relayout()
	return m, cmd
}

func (m Model) closePrompt() Model {
	m.prompting = false
	m.ti.SetValue("")
	m.ti.Blur()
	m.relayout()
	return m
}

func (m Model) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			status := strings.TrimSpace(m.ti.Value())
			if status == "" {
				m.promptErr = "Status cannot be empty"
				return m, nil
			}
			m = m.closePrompt()
			m.moveTo(m.promptFor, status)
			var cmd tea.Cmd
			if m.overview {
				cmd = m.list.SetItems(m.overviewItems())
			}
			return m, cmd
		case "esc", "ctrl+c":
			return m.closePrompt(), nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) applyDrop(d dnd.Drop[model.Item]) {
	z, ok := m.zoneByStatus(d.Target)
	if !ok {
		return
	}
	z.Drop(d.Payload)
	m.afterMove(d.Payload, z.Status)
}

// moveTo places item at any status. Known statuses go through their zone;
// the rest land in the registry with no zone to show them.
func (m *Model) moveTo(item model.Item, status string) {
	if z, ok := m.zoneByStatus(status); ok {
		z.Drop(item)
	} else {
		m.reg.Move(item, status)
	}
	m.afterMove(item, status)
}

func (m *Model) afterMove(item model.Item, status string) {
	m.moves++
	log.Printf("move %s: %s -> %s", item.ID, item.Status, status)
	m.status = fmt.Sprintf("moved %s to %s", item.Text, status)
	if _, ok := m.zoneByStatus(status); !ok {
		m.status += " (no zone shows it; press o to find it)"
	}
	m.relayout()
	m.focusItem(item.ID)
}

// relayout recomputes geometry and re-registers every card and zone
// with the drag manager.
func (m *Model) relayout() {
	footer := footerHeight
	if m.prompting {
		footer = 1 + promptHeight
	}
	m.boxes = computeLayout(m.width, m.height, footer, m.zones)

	var sources []dnd.Source[model.Item]
	targets := make([]dnd.Target, 0, len(m.boxes))
	for _, b := range m.boxes {
		targets = append(targets, b.zone.Target(b.rect))
		for _, c := range b.cards {
			sources = append(sources, Card{Item: c.item}.Source(c.rect))
		}
	}
	m.drag.Register(sources, targets)

	m.zoneIdx = clamp(m.zoneIdx, 0, len(m.boxes)-1)
	m.cardIdx = clamp(m.cardIdx, 0, len(m.boxes[m.zoneIdx].cards)-1)
}

func (m *Model) resize() {
	m.help.Width = m.width
	m.ti.Width = max(m.width-8, 10)
	m.list.SetSize(max(m.width-4, 10), max(m.height-3, 5))
}

func (m *Model) focusItem(id string) {
	for zi, b := range m.boxes {
		for ci, c := range b.cards {
			if c.item.ID == id {
				m.zoneIdx, m.cardIdx = zi, ci
				return
			}
		}
	}
}

func (m Model) selected() (model.Item, bool) {
	cards := m.boxes[m.zoneIdx].cards
	if m.cardIdx < 0 || m.cardIdx >= len(cards) {
		return model.Item{}, false
	}
	return cards[m.cardIdx].item, true
}

func (m Model) zoneByStatus(status string) (Zone, bool) {
	for _, z := range m.zones {
		if z.Status == status {
			return z, true
		}
	}
	return Zone{}, false
}

func (m Model) View() string {
	if m.overview {
		content := ui.PanelStyle().Render(m.list.View())
		if m.prompting {
			return content + "\n" + m.promptView()
		}
		return content + "\n" + m.statusLine()
	}

	selectedID := ""
	if it, ok := m.selected(); ok {
		selectedID = it.ID
	}
	parts := make([]string, 0, 2*len(m.boxes))
	for i, b := range m.boxes {
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", zoneGap))
		}
		parts = append(parts, b.render(zoneView{
			over:       m.drag.IsOver(b.zone.Status),
			focused:    i == m.zoneIdx,
			selectedID: selectedID,
			isDragging: m.drag.IsDragging,
		}))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	footer := m.statusLine() + "\n" + m.help.View(m.keys)
	if m.prompting {
		footer = m.statusLine() + "\n" + m.promptView()
	}
	return m.header() + "\n\n" + row + "\n" + footer
}

func (m Model) header() string {
	th := ui.Current()
	placed := 0
	var counts []string
	for _, b := range m.boxes {
		n := len(b.cards) + b.hidden
		placed += n
		counts = append(counts, fmt.Sprintf("%s %d", th.Accent.Render(b.zone.Status), n))
	}
	total := m.reg.Len()
	unplaced := th.Muted.Render(fmt.Sprintf("unplaced %d", total-placed))
	if total-placed > 0 {
		unplaced = th.Pending.Render(fmt.Sprintf("%s unplaced %d", th.SymUnplaced, total-placed))
	}
	line := fmt.Sprintf("%s   %s  %s  %s",
		th.Title.Render(m.opts.Title),
		strings.Join(counts, "  "),
		unplaced,
		th.Muted.Render(ui.ProgressBar(placed, total, 10)),
	)
	return ansi.Truncate(line, m.width, "…")
}

func (m Model) statusLine() string {
	th := ui.Current()
	s := m.status
	if m.carrying {
		if src, ok := m.drag.Dragging(); ok {
			s = fmt.Sprintf("%s carrying %s", th.SymCarry, src.Payload.Text)
			if !m.drag.IsOver(m.zones[m.zoneIdx].Status) {
				s += " (this zone does not accept it)"
			} else {
				s += " → " + m.zones[m.zoneIdx].Status
			}
		}
	}
	return ansi.Truncate(th.Muted.Render(s), m.width, "…")
}

func (m Model) promptView() string {
	th := ui.Current()
	bar := lipgloss.NewStyle().
		Border(th.Border).
		BorderForeground(th.BorderColor).
		Padding(0, 1).
		Width(max(m.width-2, 10))
	title := fmt.Sprintf("Move %s to status", m.promptFor.Text)
	if m.promptErr != "" {
		title += " - " + th.Error.Render(m.promptErr)
	}
	return bar.Render(ansi.Truncate(title, max(m.width-4, 8), "…") + "\n" + m.ti.View())
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
