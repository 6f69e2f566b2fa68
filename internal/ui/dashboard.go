package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/datagov/internal/catalog"
	"github.com/yildizm/datagov/internal/emoji"
	"github.com/yildizm/datagov/internal/ui/components"
)

// dashboardView is the overview: headline stats, quality bars and the
// stewardship activity feed
type dashboardView struct {
	staticView
	data   catalog.Dashboard
	styles *Styles
}

func newDashboardView(env viewEnv) *dashboardView {
	return &dashboardView{data: env.catalog.Dashboard, styles: env.styles}
}

func (v *dashboardView) Update(msg tea.Msg) tea.Cmd {
	return nil
}

func (v *dashboardView) Render(width, height int) string {
	s := v.styles
	title := s.Header.Render(emoji.GetEmoji("dashboard") + " Governance Overview")

	columns := max(1, min(len(v.data.Stats), width/24))
	stats := components.NewStatsDashboard(columns)
	for _, st := range v.data.Stats {
		card := components.NewStatsCard(st.Title, st.Value, st.Change).
			SetStatus(components.TrendStatus(st.Trend, st.Title == "Data Issues"))
		card.Palette = s.palette()
		stats.AddCard(card)
	}

	barWidth := max(10, min(40, width-30))
	bars := make([]string, 0, len(v.data.Quality))
	for _, q := range v.data.Quality {
		bar := components.NewQualityBar(q.Domain, q.Score, barWidth)
		bar.LabelWidth = 12
		bar.Palette = s.palette()
		bars = append(bars, bar.Render())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		stats.Render(),
		"",
		s.section(emoji.GetEmoji("quality")+" Data Quality by Domain", bars...),
		"",
		s.section(emoji.GetEmoji("activity")+" Recent Activity", v.renderActivity()...),
	)
}

func (v *dashboardView) renderActivity() []string {
	if len(v.data.Activity) == 0 {
		return []string{v.styles.Muted.Render("No recent activity")}
	}
	lines := make([]string, 0, len(v.data.Activity))
	for _, a := range v.data.Activity {
		lines = append(lines, fmt.Sprintf("%s  %s  %s  %s",
			v.styles.Body.Bold(true).Render(a.Action),
			v.styles.Info.Render(a.Asset),
			v.styles.Muted.Render(a.User+", "+a.When),
			v.styles.Status(a.Status),
		))
	}
	return lines
}
