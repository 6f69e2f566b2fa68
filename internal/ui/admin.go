package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/datagov/internal/catalog"
	"github.com/yildizm/datagov/internal/emoji"
	"github.com/yildizm/datagov/internal/ui/components"
)

// adminView is the read-only admin console
type adminView struct {
	staticView
	admin   catalog.Admin
	domains []catalog.Domain
	tabs    *components.Tabs
	styles  *Styles
}

func newAdminView(env viewEnv) *adminView {
	tabs := components.NewTabs(
		[2]string{"assets", "Asset Registry"},
		[2]string{"domains", "Domains"},
		[2]string{"users", "Users & Roles"},
	)
	tabs.Palette = env.styles.palette()
	return &adminView{
		admin:   env.catalog.Admin,
		domains: env.catalog.Domains,
		tabs:    tabs,
		styles:  env.styles,
	}
}

func (v *adminView) Keys() []key.Binding {
	return []key.Binding{keys.NextTab, keys.Back}
}

func (v *adminView) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(km, keys.Back) {
		return emit(backMsg{})
	}
	v.tabs.HandleKey(km.String())
	return nil
}

func (v *adminView) Render(width, height int) string {
	s := v.styles

	var table *components.List
	switch v.tabs.Current() {
	case "domains":
		table = components.NewList("", "DOMAIN", "STEWARD", "DATASETS", "QUALITY")
		items := make([]components.ListItem, 0, len(v.domains))
		for _, d := range v.domains {
			items = append(items, components.ListItem{
				ID:      d.ID,
				Columns: []string{d.Name, d.Steward.Name, strconv.Itoa(d.Datasets), strconv.Itoa(d.Quality) + "%"},
			})
		}
		table.SetItems(items)
	case "users":
		table = components.NewList("", "USER", "ROLE")
		items := make([]components.ListItem, 0, len(v.admin.Users))
		for _, u := range v.admin.Users {
			items = append(items, components.ListItem{ID: u.Name, Columns: []string{u.Name, u.Role}})
		}
		table.SetItems(items)
	default:
		table = components.NewList("", "ASSET", "OWNER", "UPDATED", "STATUS")
		items := make([]components.ListItem, 0, len(v.admin.Registry))
		for _, r := range v.admin.Registry {
			items = append(items, components.ListItem{
				ID:      r.Name,
				Columns: []string{r.Name, r.Owner, r.UpdatedAt, r.Status},
			})
		}
		table.SetItems(items)
	}
	table.Empty = "Nothing registered."
	table.Palette = s.palette()
	table.SetSize(width, max(4, height-14))

	health := make([][2]string, 0, len(v.admin.Health))
	for _, h := range v.admin.Health {
		health = append(health, [2]string{h.Name, h.Value})
	}

	parts := []string{
		s.Header.Render(emoji.GetEmoji("admin") + " Admin Console"),
		"",
	}
	if v.admin.Alert != "" {
		parts = append(parts, s.Warning.Render(emoji.GetEmoji("warning")+" "+v.admin.Alert), "")
	}
	parts = append(parts,
		v.tabs.Render(),
		"",
		table.Render(),
		"",
		s.section("System Health", s.kv(20, health...)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
