package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/datagov/internal/emoji"
	"github.com/yildizm/datagov/internal/router"
)

type sidebarItem struct {
	label string
	icon  string
	view  router.View
}

var (
	mainItems = []sidebarItem{
		{"Dashboard", "dashboard", router.ViewDashboard},
		{"Search", "search", router.ViewSearch},
		{"CDM Objects", "cdm", router.ViewCdmList},
		{"Domains", "domain", router.ViewDomainList},
		{"Data Lineage", "lineage", router.ViewLineage},
		{"Governance Council", "council", router.ViewCouncil},
	}
	configItems = []sidebarItem{
		{"Admin Console", "admin", router.ViewAdmin},
		{"Settings", "settings", router.ViewSettings},
	}
)

const (
	sidebarWidth          = 26
	sidebarMinimizedWidth = 8
)

// sidebar owns only its cursor. The minimize flag lives in the router.
type sidebar struct {
	cursor int
	items  []sidebarItem
	styles *Styles
}

func newSidebar(styles *Styles) *sidebar {
	items := make([]sidebarItem, 0, len(mainItems)+len(configItems))
	items = append(items, mainItems...)
	items = append(items, configItems...)
	return &sidebar{items: items, styles: styles}
}

// Update moves the cursor; enter emits a navigateMsg for the item under it
func (s *sidebar) Update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(msg, keys.Down):
		if s.cursor < len(s.items)-1 {
			s.cursor++
		}
	case key.Matches(msg, keys.Select):
		return emit(navigateMsg{view: s.items[s.cursor].view})
	}
	return nil
}

// Width is the rendered width for the given collapse state
func (s *sidebar) Width(minimized bool) int {
	if minimized {
		return sidebarMinimizedWidth
	}
	return sidebarWidth
}

// Render draws the sidebar. Minimized, only the glyphs are shown.
func (s *sidebar) Render(current router.Screen, minimized, focused bool, height int) string {
	active := highlightedView(current)

	var lines []string
	if !minimized {
		lines = append(lines, s.styles.Title.Render("Data Governance"), s.styles.Muted.Render("Hub"), "")
	} else {
		lines = append(lines, s.styles.Title.Render("DG"), "", "")
	}

	for i, it := range s.items {
		if i == len(mainItems) {
			lines = append(lines, "")
			if !minimized {
				lines = append(lines, s.styles.Muted.Bold(true).Render("CONFIGURATION"))
			}
		}
		lines = append(lines, s.renderItem(it, i, it.view == active, focused, minimized))
	}

	style := s.styles.Sidebar
	if focused {
		style = s.styles.SidebarFocused
	}
	return style.
		Width(s.Width(minimized) - 1).
		Height(max(height, 1)).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (s *sidebar) renderItem(it sidebarItem, i int, active, focused, minimized bool) string {
	prefix := "  "
	if focused && i == s.cursor {
		prefix = "▶ "
	}
	text := emoji.GetEmoji(it.icon)
	if !minimized {
		text += " " + it.label
	}

	switch {
	case focused && i == s.cursor:
		return s.styles.Selected.Render(prefix + text)
	case active:
		return lipgloss.NewStyle().Foreground(s.styles.Theme.Primary).Bold(true).Render(prefix + text)
	default:
		return s.styles.Body.Render(prefix + text)
	}
}

// highlightedView is the sidebar entry a screen belongs to
func highlightedView(s router.Screen) router.View {
	switch s.(type) {
	case router.ObjectDetailScreen:
		return router.ViewCdmList
	case router.DomainDetailScreen:
		return router.ViewDomainList
	case router.PolicyDetailScreen, router.CharterScreen:
		return router.ViewCouncil
	default:
		return s.View()
	}
}
