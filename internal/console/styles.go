package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ccff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ff88"))
)

// Banner announces the equation being solved.
func Banner(w io.Writer, equation string) {
	fmt.Fprintln(w, Title.Render(fmt.Sprintf("Solving the equation %s using Euler's method and Midpoint method.", equation)))
}

// Saved reports where the chart was written.
func Saved(w io.Writer, path string) {
	fmt.Fprintln(w, Success.Render(fmt.Sprintf("Result has been saved to %s", path)))
}
