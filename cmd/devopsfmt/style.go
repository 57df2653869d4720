package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/Hamed-Ayodeji/devopsfmt/internal/config"
)

// headerStyle returns a bold style for table headers, or nil when color is
// off for out.
func headerStyle(mode string, out io.Writer) func(string) string {
	switch mode {
	case config.ColorAlways:
	case config.ColorAuto:
		f, ok := out.(*os.File)
		if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return nil
		}
	default:
		return nil
	}
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(termenv.ANSI)
	style := r.NewStyle().Bold(true)
	return func(s string) string { return style.Render(s) }
}
