package components

import (
	"github.com/charmbracelet/lipgloss"
)

// StatsCard represents a headline number with its trend
type StatsCard struct {
	Title  string
	Value  string
	Change string
	// Status is "success", "warning", "error" or "info"
	Status  string
	Icon    string
	Width   int
	Palette Palette
}

// NewStatsCard creates a new stats card
func NewStatsCard(title, value, change string) *StatsCard {
	return &StatsCard{
		Title:   title,
		Value:   value,
		Change:  change,
		Status:  "info",
		Width:   22,
		Palette: DefaultPalette(),
	}
}

// SetStatus sets the status color of the card
func (s *StatsCard) SetStatus(status string) *StatsCard {
	s.Status = status
	return s
}

// SetIcon sets the icon for the card
func (s *StatsCard) SetIcon(icon string) *StatsCard {
	s.Icon = icon
	return s
}

// TrendStatus maps a trend word to a card status. For issue counters a
// falling trend is good news, so callers pass inverted for those.
func TrendStatus(trend string, inverted bool) string {
	switch trend {
	case "up":
		if inverted {
			return "error"
		}
		return "success"
	case "down":
		if inverted {
			return "success"
		}
		return "error"
	default:
		return "info"
	}
}

// Render renders the stats card
func (s *StatsCard) Render() string {
	titleStyle := lipgloss.NewStyle().Foreground(s.Palette.Muted)
	valueStyle := lipgloss.NewStyle().Foreground(s.Palette.Primary).Bold(true)
	changeStyle := lipgloss.NewStyle().Foreground(s.Palette.Level(s.Status))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Palette.Border).
		Padding(0, 1).
		Width(s.Width)

	title := titleStyle.Render(s.Title)
	if s.Icon != "" {
		title = s.Icon + " " + title
	}

	return boxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		valueStyle.Render(s.Value),
		changeStyle.Render(s.Change),
	))
}

// StatsDashboard lays out cards in rows
type StatsDashboard struct {
	cards     []*StatsCard
	columns   int
	cardWidth int
}

// NewStatsDashboard creates a new stats dashboard
func NewStatsDashboard(columns int) *StatsDashboard {
	if columns < 1 {
		columns = 1
	}
	return &StatsDashboard{
		columns:   columns,
		cardWidth: 22,
	}
}

// AddCard adds a stats card to the dashboard
func (d *StatsDashboard) AddCard(card *StatsCard) {
	card.Width = d.cardWidth
	d.cards = append(d.cards, card)
}

// SetCardWidth sets the width of every card
func (d *StatsDashboard) SetCardWidth(width int) {
	d.cardWidth = width
	for _, card := range d.cards {
		card.Width = width
	}
}

// Render renders the stats dashboard
func (d *StatsDashboard) Render() string {
	if len(d.cards) == 0 {
		return ""
	}

	var rows []string
	for i := 0; i < len(d.cards); i += d.columns {
		end := min(i+d.columns, len(d.cards))
		rowCards := make([]string, 0, end-i)
		for j := i; j < end; j++ {
			rowCards = append(rowCards, d.cards[j].Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rowCards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
