package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Makepad-fr/dropboard/internal/cli"
	"github.com/Makepad-fr/dropboard/internal/config"
	"github.com/Makepad-fr/dropboard/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	groupByZone := flag.Bool("group", false, "ls: group output by zone")
	seedFile := flag.String("seed", "", "JSON seed file to start from")
	theme := flag.String("theme", "", "color theme: classic, neon or mono")
	noMouse := flag.Bool("no-mouse", false, "disable mouse drag and drop")
	forceColor := flag.Bool("color", false, "force colors")
	noColor := flag.Bool("no-color", false, "disable colors")
	cfgPath := flag.String("config", "", "config file")
	flag.Parse()

	if *cfgPath != "" {
		os.Setenv("DROPBOARD_CONFIG", *cfgPath)
	}
	cfg, err := config.Load()
	if err != nil {
		ui.Fail("config: " + err.Error())
		os.Exit(1)
	}
	if *seedFile != "" {
		cfg.Board.SeedFile = *seedFile
	}
	if *theme != "" {
		cfg.UI.Theme = *theme
	}
	if *noMouse {
		cfg.UI.Mouse = false
	}
	if err := cfg.Validate(); err != nil {
		ui.Fail("config: " + err.Error())
		os.Exit(2)
	}
	ui.SetTheme(cfg.UI.Theme)
	ui.SetColorForcing(*forceColor, *noColor)

	// No subcommand means the interactive board.
	args := flag.Args()
	if len(args) == 0 {
		args = []string{"board"}
	}

	code := cli.Run(args, cli.Options{
		Group:  *groupByZone,
		Config: cfg,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
