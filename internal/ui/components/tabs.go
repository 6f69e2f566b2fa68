package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tabs is a row of named panels with exactly one active
type Tabs struct {
	Keys    []string
	Labels  []string
	Active  int
	Palette Palette
}

// NewTabs creates tabs from key/label pairs
func NewTabs(pairs ...[2]string) *Tabs {
	t := &Tabs{Palette: DefaultPalette()}
	for _, p := range pairs {
		t.Keys = append(t.Keys, p[0])
		t.Labels = append(t.Labels, p[1])
	}
	return t
}

// Current returns the active tab key
func (t *Tabs) Current() string {
	if len(t.Keys) == 0 {
		return ""
	}
	return t.Keys[t.Active]
}

// Next activates the following tab, wrapping around
func (t *Tabs) Next() {
	if len(t.Keys) > 0 {
		t.Active = (t.Active + 1) % len(t.Keys)
	}
}

// Prev activates the preceding tab, wrapping around
func (t *Tabs) Prev() {
	if len(t.Keys) > 0 {
		t.Active = (t.Active - 1 + len(t.Keys)) % len(t.Keys)
	}
}

// Select activates the tab with key, reporting whether it exists
func (t *Tabs) Select(key string) bool {
	for i, k := range t.Keys {
		if k == key {
			t.Active = i
			return true
		}
	}
	return false
}

// HandleKey applies tab, shift+tab and the digits 1..n. It reports whether
// the key was consumed.
func (t *Tabs) HandleKey(key string) bool {
	switch key {
	case "tab":
		t.Next()
		return true
	case "shift+tab":
		t.Prev()
		return true
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		i := int(key[0] - '1')
		if i < len(t.Keys) {
			t.Active = i
			return true
		}
	}
	return false
}

// Render draws the tab bar
func (t *Tabs) Render() string {
	active := lipgloss.NewStyle().Foreground(t.Palette.Primary).Bold(true).Underline(true).Padding(0, 1)
	inactive := lipgloss.NewStyle().Foreground(t.Palette.Muted).Padding(0, 1)

	parts := make([]string, len(t.Labels))
	for i, label := range t.Labels {
		text := fmt.Sprintf("%d %s", i+1, label)
		if i == t.Active {
			parts[i] = active.Render(text)
		} else {
			parts[i] = inactive.Render(text)
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	rule := lipgloss.NewStyle().Foreground(t.Palette.Border).Render(strings.Repeat("─", lipgloss.Width(bar)))
	return lipgloss.JoinVertical(lipgloss.Left, bar, rule)
}
