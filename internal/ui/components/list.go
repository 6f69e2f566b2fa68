package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ListItem is one row of a list
type ListItem struct {
	ID      string
	Columns []string
	// Status colors the row when it is not selected
	Status string
}

// List is a navigable table. Filtering happens upstream; the list only
// shows what it is given and keeps the cursor in range.
type List struct {
	Title    string
	Headers  []string
	Items    []ListItem
	Selected int
	Focused  bool
	Width    int
	Height   int
	// Empty is shown instead of rows when there are no items
	Empty   string
	Palette Palette
}

// NewList creates a new list component
func NewList(title string, headers ...string) *List {
	return &List{
		Title:   title,
		Headers: headers,
		Width:   80,
		Height:  12,
		Palette: DefaultPalette(),
	}
}

// SetItems replaces the rows and resets the cursor
func (l *List) SetItems(items []ListItem) {
	l.Items = items
	l.Selected = 0
}

// SetSize sets the render area
func (l *List) SetSize(width, height int) {
	l.Width = width
	l.Height = height
}

// GetSelectedItem returns the row under the cursor, or nil when empty
func (l *List) GetSelectedItem() *ListItem {
	if l.Selected < 0 || l.Selected >= len(l.Items) {
		return nil
	}
	return &l.Items[l.Selected]
}

// MoveUp moves selection up
func (l *List) MoveUp() {
	if l.Selected > 0 {
		l.Selected--
	}
}

// MoveDown moves selection down
func (l *List) MoveDown() {
	if l.Selected < len(l.Items)-1 {
		l.Selected++
	}
}

// Render renders the list
func (l *List) Render() string {
	headerStyle := lipgloss.NewStyle().Foreground(l.Palette.Primary).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(l.Palette.Muted)

	var content []string
	if l.Title != "" {
		content = append(content, headerStyle.Render(l.Title), "")
	}

	if len(l.Items) == 0 {
		content = append(content, mutedStyle.Italic(true).Render(l.Empty))
		return lipgloss.JoinVertical(lipgloss.Left, content...)
	}

	widths := l.columnWidths()
	if len(l.Headers) > 0 {
		content = append(content, mutedStyle.Bold(true).Render("  "+l.joinColumns(l.Headers, widths)))
	}

	maxVisible := l.Height - len(content) - 2
	if maxVisible < 1 {
		maxVisible = 1
	}
	start := 0
	if l.Selected >= maxVisible {
		start = l.Selected - maxVisible + 1
	}
	end := min(start+maxVisible, len(l.Items))

	for i := start; i < end; i++ {
		content = append(content, l.renderItem(&l.Items[i], widths, i == l.Selected))
	}

	if len(l.Items) > maxVisible {
		content = append(content, "", mutedStyle.Render(fmt.Sprintf("(%d-%d of %d)", start+1, end, len(l.Items))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, content...)
}

func (l *List) renderItem(item *ListItem, widths []int, selected bool) string {
	line := l.joinColumns(item.Columns, widths)
	if selected && l.Focused {
		return lipgloss.NewStyle().
			Background(l.Palette.Selected).
			Foreground(l.Palette.Primary).
			Bold(true).
			Render("▶ " + line)
	}
	style := lipgloss.NewStyle().Foreground(l.Palette.Secondary)
	if item.Status != "" {
		style = style.Foreground(l.Palette.Level(item.Status))
	}
	return style.Render("  " + line)
}

// columnWidths sizes each column to its widest cell
func (l *List) columnWidths() []int {
	n := len(l.Headers)
	for _, it := range l.Items {
		n = max(n, len(it.Columns))
	}
	widths := make([]int, n)
	measure := func(cells []string) {
		for i, c := range cells {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}
	measure(l.Headers)
	for _, it := range l.Items {
		measure(it.Columns)
	}
	return widths
}

func (l *List) joinColumns(cells []string, widths []int) string {
	parts := make([]string, 0, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i == len(widths)-1 {
			parts = append(parts, cell)
			continue
		}
		parts = append(parts, cell+strings.Repeat(" ", w-lipgloss.Width(cell)))
	}
	return strings.Join(parts, "  ")
}
