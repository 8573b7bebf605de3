package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	panel    lipgloss.Style
	stats    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	active   lipgloss.Style
	muted    lipgloss.Style
	key      lipgloss.Style
	success  lipgloss.Style
	warning  lipgloss.Style
	errStyle lipgloss.Style
	p1       lipgloss.Style
	p2       lipgloss.Style
	input    lipgloss.Style
	graph    lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		stats: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Border).
			Padding(0, 2).
			Width(52),
		label:    lipgloss.NewStyle().Foreground(t.Muted).Width(22),
		value:    lipgloss.NewStyle().Foreground(t.Text),
		active:   lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		muted:    lipgloss.NewStyle().Foreground(t.Muted),
		key:      lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		success:  lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		warning:  lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		errStyle: lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		p1:       lipgloss.NewStyle().Foreground(t.Particle1).Bold(true),
		p2:       lipgloss.NewStyle().Foreground(t.Particle2).Bold(true),
		input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Border).
			Width(46),
		graph: lipgloss.NewStyle().Foreground(t.Accent),
	}
}

// ProgressBar renders a bar of width cells filled to percent (0..1).
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// keyHints renders "key desc" pairs separated by two spaces.
func (s styles) keyHints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(s.key.Render(pairs[i]))
		b.WriteString(s.muted.Render(" " + pairs[i+1]))
	}
	return b.String()
}
