package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// RenderMarkdown renders source through glamour. On renderer failure the
// raw source is returned so content is never lost.
func RenderMarkdown(source string, width int, style string) string {
	if style == "" {
		style = styles.DarkStyle
	}
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return source
	}
	out, err := r.Render(source)
	if err != nil {
		return source
	}
	return strings.TrimRight(out, "\n")
}

// Markdown is a scrollable glamour document
type Markdown struct {
	Style    string
	source   string
	width    int
	viewport viewport.Model
}

// NewMarkdown creates a viewer for source
func NewMarkdown(source string, width, height int, style string) *Markdown {
	m := &Markdown{Style: style, source: source, viewport: viewport.New(width, height)}
	m.render(width)
	return m
}

// SetSize resizes the viewport and re-wraps when the width changed
func (m *Markdown) SetSize(width, height int) {
	m.viewport.Height = max(height, 1)
	if width != m.width {
		m.viewport.Width = width
		m.render(width)
	}
}

// SetContent swaps the document
func (m *Markdown) SetContent(source string) {
	m.source = source
	m.render(m.width)
}

// Update forwards scroll keys to the viewport
func (m *Markdown) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// ScrollPercent reports how far the document is scrolled
func (m *Markdown) ScrollPercent() float64 {
	return m.viewport.ScrollPercent()
}

// View renders the visible window
func (m *Markdown) View() string {
	return m.viewport.View()
}

func (m *Markdown) render(width int) {
	m.width = width
	m.viewport.SetContent(RenderMarkdown(m.source, width-2, m.Style))
}
