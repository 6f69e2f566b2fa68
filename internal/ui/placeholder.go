package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/datagov/internal/emoji"
)

const roadmapNote = "This module is currently being built based on the governance roadmap."

// placeholderView stands in for screens that are not built yet
type placeholderView struct {
	staticView
	title  string
	styles *Styles
}

func newPlaceholderView(env viewEnv, title string) *placeholderView {
	return &placeholderView{title: title, styles: env.styles}
}

func (v *placeholderView) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, keys.Back) {
		return emit(backMsg{})
	}
	return nil
}

func (v *placeholderView) Render(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		v.styles.Header.Render(emoji.GetEmoji("settings")+" "+v.title+" view coming soon"),
		"",
		v.styles.Muted.Render(roadmapNote),
	)
	return lipgloss.Place(width, max(height, 1), lipgloss.Center, lipgloss.Center, v.styles.Box.Render(content))
}
