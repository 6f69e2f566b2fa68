package components

import "github.com/charmbracelet/lipgloss"

// Palette carries the theme colors components draw with. Components cannot
// import the ui package, so the caller hands its theme down.
type Palette struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Selected  lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
	Info      lipgloss.AdaptiveColor
}

// DefaultPalette mirrors the default dashboard theme
func DefaultPalette() Palette {
	return Palette{
		Primary:   lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#3B82F6"},
		Secondary: lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
		Muted:     lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
		Border:    lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"},
		Selected:  lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1E3A8A"},
		Success:   lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"},
		Warning:   lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"},
		Error:     lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"},
		Info:      lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#06B6D4"},
	}
}

// Level picks a semantic color for "success", "warning", "error" or "info"
func (p Palette) Level(level string) lipgloss.AdaptiveColor {
	switch level {
	case "success":
		return p.Success
	case "warning":
		return p.Warning
	case "error":
		return p.Error
	case "info":
		return p.Info
	default:
		return p.Secondary
	}
}
