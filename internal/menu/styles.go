package menu

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles are bound to a renderer for the output writer, so pipes and
// non-terminal writers get plain text.
type styles struct {
	header  lipgloss.Style
	heading lipgloss.Style
	warn    lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		heading: r.NewStyle().Bold(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
