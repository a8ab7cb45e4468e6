package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/codegauge/codegauge/internal/types"
)

// ConsoleRenderer writes a styled, human-readable view of scan results.
type ConsoleRenderer struct {
	colorize bool

	header lipgloss.Style
	good   lipgloss.Style
	warn   lipgloss.Style
	bad    lipgloss.Style
	muted  lipgloss.Style
}

// NewConsoleRenderer creates a renderer. Color is enabled only when stdout
// is a terminal.
func NewConsoleRenderer() *ConsoleRenderer {
	return NewConsoleRendererWithColor(isatty.IsTerminal(os.Stdout.Fd()))
}

// NewConsoleRendererWithColor creates a renderer with explicit color control.
func NewConsoleRendererWithColor(colorize bool) *ConsoleRenderer {
	r := &ConsoleRenderer{colorize: colorize}
	if colorize {
		r.header = lipgloss.NewStyle().Bold(true)
		r.good = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))   // green
		r.warn = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))   // yellow
		r.bad = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))     // red
		r.muted = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))   // gray
	}
	return r
}

// Render writes one file's scan result.
func (r *ConsoleRenderer) Render(w io.Writer, filename string, result types.ScanResult) {
	fmt.Fprintf(w, "%s %s\n", r.header.Render(filename), r.muted.Render("["+result.Language+"]"))

	fmt.Fprintf(w, "  quality %s  performance %s  best-practices %s  maintainability %s\n",
		r.score(result.Quality),
		r.score(result.Performance),
		r.score(result.BestPractices),
		r.score(result.Maintainability))
	fmt.Fprintf(w, "  complexity: %s  maintainability: %s\n",
		result.ComplexityTier, result.MaintainabilityTier)

	for _, issue := range result.IssuesFound {
		fmt.Fprintf(w, "  %s %s\n", r.bad.Render("✗"), issue)
	}
	for _, practice := range result.BestPracticeNotes {
		fmt.Fprintf(w, "  %s %s\n", r.good.Render("✓"), practice)
	}
	for _, suggestion := range result.Suggestions {
		fmt.Fprintf(w, "  %s %s\n", r.muted.Render("→"), suggestion)
	}
	fmt.Fprintln(w)
}

// score renders a sub-score with severity coloring.
func (r *ConsoleRenderer) score(n int) string {
	s := fmt.Sprintf("%d", n)
	switch {
	case n >= 80:
		return r.good.Render(s)
	case n >= 50:
		return r.warn.Render(s)
	default:
		return r.bad.Render(s)
	}
}
