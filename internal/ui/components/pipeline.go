package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Stage is one hop rendered by Pipeline
type Stage struct {
	Kind  string
	Label string
	Items []string
}

// Pipeline renders a data flow as stacked boxes joined by arrows
type Pipeline struct {
	Stages  []Stage
	Width   int
	Palette Palette
}

// NewPipeline creates a pipeline for stages
func NewPipeline(stages []Stage, width int) *Pipeline {
	return &Pipeline{Stages: stages, Width: width, Palette: DefaultPalette()}
}

// Render renders the pipeline, or a muted note when there are no stages
func (p *Pipeline) Render() string {
	mutedStyle := lipgloss.NewStyle().Foreground(p.Palette.Muted)
	if len(p.Stages) == 0 {
		return mutedStyle.Italic(true).Render("No lineage recorded for this object.")
	}

	kindStyle := lipgloss.NewStyle().Foreground(p.Palette.Muted).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(p.Palette.Primary).Bold(true)
	itemStyle := lipgloss.NewStyle().Foreground(p.Palette.Secondary)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Palette.Border).
		Padding(0, 1)
	if p.Width > 4 {
		boxStyle = boxStyle.Width(p.Width - 4)
	}
	arrow := lipgloss.NewStyle().Foreground(p.Palette.Info).Render("    │\n    ▼")

	blocks := make([]string, 0, len(p.Stages)*2)
	for i, s := range p.Stages {
		lines := []string{kindStyle.Render(strings.ToUpper(s.Kind)), labelStyle.Render(s.Label)}
		for _, it := range s.Items {
			lines = append(lines, itemStyle.Render("• "+it))
		}
		blocks = append(blocks, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
		if i < len(p.Stages)-1 {
			blocks = append(blocks, arrow)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
