package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/datagov/internal/emoji"
	"github.com/yildizm/datagov/internal/ui/components"
)

var scrollKey = key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑↓/pgup/pgdn", "scroll"))

// charterView shows the governance charter markdown in a scrollable viewport
type charterView struct {
	staticView
	doc    *components.Markdown
	styles *Styles
}

func newCharterView(env viewEnv) *charterView {
	return &charterView{
		doc:    components.NewMarkdown(env.catalog.Charter, 80, 20, markdownStyle()),
		styles: env.styles,
	}
}

func (v *charterView) Keys() []key.Binding {
	return []key.Binding{scrollKey, keys.Back}
}

func (v *charterView) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, keys.Back) {
		return emit(backMsg{})
	}
	return v.doc.Update(msg)
}

func (v *charterView) Render(width, height int) string {
	v.doc.SetSize(width, max(3, height-3))
	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Header.Render(emoji.GetEmoji("charter")+" Governance Charter"),
		v.doc.View(),
		v.styles.Muted.Render(fmt.Sprintf("%3.0f%%", v.doc.ScrollPercent()*100)),
	)
}
