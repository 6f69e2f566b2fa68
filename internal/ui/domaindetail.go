package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/datagov/internal/catalog"
	"github.com/yildizm/datagov/internal/emoji"
	"github.com/yildizm/datagov/internal/ui/components"
)

// domainDetailView shows one domain's assets, open tickets and
// prioritized requests. Only CDM assets drill further.
type domainDetailView struct {
	staticView
	id     string
	domain catalog.Domain
	found  bool
	tabs   *components.Tabs
	assets *components.List
	styles *Styles
}

func newDomainDetailView(env viewEnv, id string) *domainDetailView {
	d, found := env.catalog.Domain(id)

	tabs := components.NewTabs(
		[2]string{"assets", "Assets"},
		[2]string{"open-issues", "Open Issues"},
		[2]string{"prioritized-requests", "Prioritized Requests"},
	)
	tabs.Palette = env.styles.palette()

	assets := components.NewList("", "NAME", "TYPE", "SYSTEM", "STATUS")
	assets.Empty = "No assets registered for this domain."
	assets.Focused = true
	assets.Palette = env.styles.palette()
	items := make([]components.ListItem, 0, len(d.Assets))
	for _, a := range d.Assets {
		status := ""
		if a.Selectable() {
			status = "info"
		}
		items = append(items, components.ListItem{
			ID:      a.ID,
			Columns: []string{a.Name, a.Type, a.System, a.Status},
			Status:  status,
		})
	}
	assets.SetItems(items)

	return &domainDetailView{
		id:     id,
		domain: d,
		found:  found,
		tabs:   tabs,
		assets: assets,
		styles: env.styles,
	}
}

func (v *domainDetailView) Keys() []key.Binding {
	return []key.Binding{keys.NextTab, keys.Up, keys.Down, keys.Select, keys.Back}
}

func (v *domainDetailView) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(km, keys.Back) {
		return emit(backMsg{})
	}
	if !v.found {
		return nil
	}
	if v.tabs.HandleKey(km.String()) {
		return nil
	}
	if v.tabs.Current() != "assets" {
		return nil
	}
	switch {
	case key.Matches(km, keys.Up):
		v.assets.MoveUp()
	case key.Matches(km, keys.Down):
		v.assets.MoveDown()
	case key.Matches(km, keys.Select):
		return v.openAsset()
	}
	return nil
}

// openAsset selects the object detail for a CDM asset; other types are inert
func (v *domainDetailView) openAsset() tea.Cmd {
	i := v.assets.Selected
	if i < 0 || i >= len(v.domain.Assets) {
		return nil
	}
	a := v.domain.Assets[i]
	if !a.Selectable() {
		return nil
	}
	return emit(selectObjectMsg{id: a.ID})
}

func (v *domainDetailView) Render(width, height int) string {
	s := v.styles
	if !v.found {
		return s.notFound("Domain not found", fmt.Sprintf("No domain is registered under %q.", v.id))
	}
	d := v.domain

	header := lipgloss.JoinVertical(lipgloss.Left,
		s.Header.Render(emoji.GetEmoji("domain")+" "+d.Name),
		s.Muted.Render(d.Description),
		s.Body.Render(emoji.GetEmoji("steward")+" "+d.Steward.Name+"  ")+s.Info.Render(d.Steward.Email),
	)

	stats := components.NewStatsDashboard(4)
	for _, c := range []*components.StatsCard{
		components.NewStatsCard("Datasets", strconv.Itoa(d.Datasets), "registered"),
		components.NewStatsCard("CDM Objects", strconv.Itoa(d.CdmObjects), "certified"),
		components.NewStatsCard("Open Issues", strconv.Itoa(d.Issues), "to triage").SetStatus(issueStatus(d.Issues)),
		components.NewStatsCard("Quality", strconv.Itoa(d.Quality)+"%", "score").SetStatus(qualityStatus(d.Quality)),
	} {
		c.Palette = s.palette()
		stats.AddCard(c)
	}
	stats.SetCardWidth(max(14, min(22, width/4-1)))

	v.assets.SetSize(width, max(4, height-16))

	var panel string
	switch v.tabs.Current() {
	case "open-issues":
		panel = v.renderTickets(width)
	case "prioritized-requests":
		panel = v.renderRequests(width)
	default:
		panel = v.assets.Render()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", stats.Render(), "", v.tabs.Render(), "", panel)
}

func (v *domainDetailView) renderTickets(width int) string {
	list := components.NewList("", "ID", "TITLE", "REQUESTER", "SLA", "STATUS", "PRIORITY", "OPENED")
	list.Empty = "No open issues."
	list.Palette = v.styles.palette()
	list.SetSize(width, 12)
	items := make([]components.ListItem, 0, len(v.domain.Tickets))
	for _, t := range v.domain.Tickets {
		items = append(items, components.ListItem{
			ID:      t.ID,
			Columns: []string{t.ID, t.Title, t.Requester, t.SLA, t.Status, t.Priority, t.Opened},
		})
	}
	list.SetItems(items)
	return list.Render()
}

func (v *domainDetailView) renderRequests(width int) string {
	list := components.NewList("", "RANK", "ID", "TITLE", "OWNER", "STATUS")
	list.Empty = "No prioritized requests."
	list.Palette = v.styles.palette()
	list.SetSize(width, 12)
	items := make([]components.ListItem, 0, len(v.domain.Requests))
	for _, r := range v.domain.Requests {
		items = append(items, components.ListItem{
			ID:      r.ID,
			Columns: []string{"#" + strconv.Itoa(r.Priority), r.ID, r.Title, r.Owner, r.Status},
		})
	}
	list.SetItems(items)
	return list.Render()
}

func issueStatus(n int) string {
	switch {
	case n == 0:
		return "success"
	case n < 5:
		return "warning"
	default:
		return "error"
	}
}

func qualityStatus(score int) string {
	switch {
	case score >= 90:
		return "success"
	case score >= 80:
		return "warning"
	default:
		return "error"
	}
}
