package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestProgressBar(t *testing.T) {
	require.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	require.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1))
	require.Equal(t, "██████████ 100%", ProgressBar(3, 3, 10))
}

func TestPanelFramesEveryLine(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	var buf bytes.Buffer
	Panel(&buf, []string{"today", "tomorrow"})
	out := strings.Split(strings.TrimRight(ansi.Strip(buf.String()), "\n"), "\n")

	require.Len(t, out, 4)
	require.True(t, strings.HasPrefix(out[0], "+-"))
	require.Equal(t, "| today    |", out[1])
	require.Equal(t, "| tomorrow |", out[2])
	require.True(t, strings.HasSuffix(out[3], "-+"))
}

func TestSetThemeFallsBackToClassic(t *testing.T) {
	SetTheme("neon")
	require.Equal(t, "neon", Current().Name)
	SetTheme("no-such-theme")
	require.Equal(t, "classic", Current().Name)
}

func TestOKWritesMessage(t *testing.T) {
	var buf bytes.Buffer
	OK(&buf, "saved")
	require.Equal(t, "✔ saved\n", ansi.Strip(buf.String()))
}
