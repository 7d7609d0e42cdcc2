package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/dropboard/internal/board"
	"github.com/Makepad-fr/dropboard/internal/config"
	"github.com/Makepad-fr/dropboard/internal/model"
	"github.com/Makepad-fr/dropboard/internal/registry"
	"github.com/Makepad-fr/dropboard/internal/store/jsonstore"
	"github.com/Makepad-fr/dropboard/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group  bool // ls grouped by zone
	Config config.Config
	Out    io.Writer // defaults to stdout
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if opt.Out == nil {
		opt.Out = os.Stdout
	}
	if len(args) == 0 {
		PrintHelp(opt.Out)
		return 2
	}
	cmd, a := args[0], args[1:]
	if len(a) > 0 {
		ui.Fail(fmt.Sprintf("usage: dropboard %s (takes no arguments)", cmd))
		return 2
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "board":
		return doBoard(opt)

	case "ls":
		return doList(opt)

	case "seed":
		return doSeed(opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp(os.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `dropboard - drag tasks between days

Usage:
  dropboard [flags] [subcommand]

Subcommands:
  board              Interactive board (default)
  ls                 Print the starting board
  seed               Print the starting items as JSON

Flags:
  -group             ls: group items by zone
  -seed <file>       Start from a JSON seed file instead of the built-in items
  -theme <name>      classic, neon or mono
  -no-mouse          Keyboard only
  -color, -no-color  Force colors on or off
  -config <file>     Config file (default ~/.config/dropboard/config.toml)

Board keys:
  ←/→ zone  ↑/↓ card  space pick up/drop  esc cancel  m move to…  o all items  q quit

Examples:
  dropboard
  dropboard -group ls
  dropboard seed > my-seed.json && dropboard -seed my-seed.json
`)
}

// -------------- subcommand impls ----------------

func loadSeed(cfg config.Config) ([]model.Item, error) {
	if cfg.Board.SeedFile == "" {
		return registry.DefaultSeed(), nil
	}
	items, err := jsonstore.Load(cfg.Board.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", cfg.Board.SeedFile, err)
	}
	return items, nil
}

func doBoard(opt Options) int {
	cfg := opt.Config
	seed, err := loadSeed(cfg)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}

	// the alt screen owns the terminal; logs go to a file or nowhere
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "dropboard")
		if err != nil {
			ui.Fail("log: " + err.Error())
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	reg := registry.New(seed)
	log.Printf("board start: %d items, zones %v", reg.Len(), cfg.Board.Zones)
	err = board.Run(reg, cfg.Board.Zones, board.Options{
		Mouse:     cfg.UI.Mouse && cfg.UI.AltScreen,
		AltScreen: cfg.UI.AltScreen,
	})
	if err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doList(opt Options) int {
	seed, err := loadSeed(opt.Config)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	reg := registry.New(seed)
	zones := opt.Config.Board.Zones
	th := ui.Current()

	placed := 0
	for _, z := range zones {
		placed += len(reg.ByStatus(z))
	}
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		th.Title.Render("Board"),
		th.Success.Render(th.SymPlaced), placed,
		th.Pending.Render(th.SymUnplaced), reg.Len()-placed,
		th.Accent.Render("Total"), reg.Len(),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, th.Muted.Render(ui.ProgressBar(placed, reg.Len(), 28)))
	lines = append(lines, "")

	if opt.Group {
		lines = append(lines, groupLines(reg, zones)...)
	} else {
		lines = append(lines, flatLines(reg.Items(), zones)...)
	}
	lines = append(lines, "")
	lines = append(lines, th.Muted.Render("Tip: run `dropboard` to drag items between zones"))
	ui.Panel(opt.Out, lines)
	return 0
}

func doSeed(opt Options) int {
	seed, err := loadSeed(opt.Config)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	// normalised through the registry, so duplicate ids are already collapsed
	if err := jsonstore.Encode(opt.Out, registry.New(seed).Items()); err != nil {
		ui.Fail("seed: " + err.Error())
		return 1
	}
	return 0
}

// -------------- rendering helpers --------------

func isZone(status string, zones []string) bool {
	for _, z := range zones {
		if z == status {
			return true
		}
	}
	return false
}

func flatLines(items []model.Item, zones []string) []string {
	th := ui.Current()
	if len(items) == 0 {
		return []string{th.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		sym, status := th.Success.Render(th.SymPlaced), th.Muted.Render(it.Status)
		if !isZone(it.Status, zones) {
			sym, status = th.Pending.Render(th.SymUnplaced), th.Pending.Render(it.Status+" (no zone)")
		}
		text := ansi.Truncate(it.Text, 80, "...")
		out = append(out, fmt.Sprintf("%s %s %s  %s", th.Muted.Render(idx), sym, text, status))
	}
	return out
}

func groupLines(reg *registry.Registry, zones []string) []string {
	th := ui.Current()
	var lines []string
	for i, z := range zones {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, th.Accent.Render(z))
		items := reg.ByStatus(z)
		if len(items) == 0 {
			lines = append(lines, th.Muted.Render("(none)"))
			continue
		}
		lines = append(lines, flatLines(items, zones)...)
	}

	var unplaced []model.Item
	for _, it := range reg.Items() {
		if !isZone(it.Status, zones) {
			unplaced = append(unplaced, it)
		}
	}
	if len(unplaced) > 0 {
		lines = append(lines, "", th.Pending.Render("Unplaced"))
		lines = append(lines, flatLines(unplaced, zones)...)
	}
	return lines
}
