package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// QualityBar draws a labelled 0..100 score as a horizontal bar
type QualityBar struct {
	Label      string
	Score      int
	Width      int
	LabelWidth int
	Palette    Palette
}

// NewQualityBar creates a bar for label at score
func NewQualityBar(label string, score, width int) *QualityBar {
	return &QualityBar{
		Label:   label,
		Score:   score,
		Width:   width,
		Palette: DefaultPalette(),
	}
}

// Grade returns the semantic level for the score
func (q *QualityBar) Grade() string {
	switch {
	case q.Score >= 90:
		return "success"
	case q.Score >= 80:
		return "warning"
	default:
		return "error"
	}
}

// Render renders the bar. Scores are clamped into 0..100.
func (q *QualityBar) Render() string {
	score := max(0, min(q.Score, 100))
	width := max(q.Width, 1)
	filled := width * score / 100

	fillStyle := lipgloss.NewStyle().Foreground(q.Palette.Level(q.Grade()))
	emptyStyle := lipgloss.NewStyle().Foreground(q.Palette.Muted)

	bar := fillStyle.Render(strings.Repeat("█", filled)) + emptyStyle.Render(strings.Repeat("░", width-filled))

	label := q.Label
	if q.LabelWidth > 0 {
		label = lipgloss.NewStyle().Width(q.LabelWidth).Render(label)
	}
	return fmt.Sprintf("%s %s %3d%%", label, bar, score)
}
