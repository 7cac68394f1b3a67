// Package ui holds the terminal styles used to print command results.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keshon/svcs/internal/repo"
)

// Styles are bound to one output. Colour is dropped when that output is not
// a terminal.
type Styles struct {
	Green  lipgloss.Style
	Yellow lipgloss.Style
	Red    lipgloss.Style
	Info   lipgloss.Style
}

func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Green:  r.NewStyle().Foreground(lipgloss.Color("10")),
		Yellow: r.NewStyle().Foreground(lipgloss.Color("11")),
		Red:    r.NewStyle().Foreground(lipgloss.Color("9")),
		Info:   r.NewStyle().Foreground(lipgloss.Color("14")),
	}
}

// For picks the style of a result kind.
func (s Styles) For(k repo.Kind) lipgloss.Style {
	switch k {
	case repo.OK:
		return s.Green
	case repo.NoOp, repo.MissingArgument:
		return s.Yellow
	case repo.NotFound, repo.Unconfigured, repo.IoFailure:
		return s.Red
	}
	return s.Info
}

// Print writes res followed by a newline. Lines are styled one by one so
// lipgloss does not pad a block to its widest line.
func Print(w io.Writer, res repo.Result) error {
	style := NewStyles(w).For(res.Kind)
	lines := strings.Split(res.Message(), "\n")
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
