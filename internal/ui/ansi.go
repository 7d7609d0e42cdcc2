package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	symCheck = "✔"
	symCross = "✖"
)

// SetColorForcing overrides terminal detection for plain CLI output.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

func OK(w io.Writer, msg string) { fmt.Fprintln(w, current.Success.Render(symCheck+" "+msg)) }
func Fail(msg string)             { fmt.Fprintln(os.Stderr, current.Error.Render(symCross+" "+msg)) }
