package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/datagov/internal/catalog"
)

// Theme represents a color theme for the dashboard
type Theme struct {
	Name string

	// Primary colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	// Semantic colors
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	// UI colors
	Border     lipgloss.AdaptiveColor
	Background lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Highlight  lipgloss.AdaptiveColor

	// Certification tiers
	Gold   lipgloss.AdaptiveColor
	Silver lipgloss.AdaptiveColor
	Bronze lipgloss.AdaptiveColor

	// Special colors
	Assistant lipgloss.AdaptiveColor
	Quality   lipgloss.AdaptiveColor
	Selected  lipgloss.AdaptiveColor
}

// buildTheme creates a theme with the given colors
func buildTheme(name string, primary, secondary, accent, success, warning, errorColor, info, border, background, foreground, muted, highlight, gold, silver, bronze, assistant, quality, selected [2]string) Theme {
	c := func(pair [2]string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: pair[0], Dark: pair[1]}
	}
	return Theme{
		Name:       name,
		Primary:    c(primary),
		Secondary:  c(secondary),
		Accent:     c(accent),
		Success:    c(success),
		Warning:    c(warning),
		Error:      c(errorColor),
		Info:       c(info),
		Border:     c(border),
		Background: c(background),
		Foreground: c(foreground),
		Muted:      c(muted),
		Highlight:  c(highlight),
		Gold:       c(gold),
		Silver:     c(silver),
		Bronze:     c(bronze),
		Assistant:  c(assistant),
		Quality:    c(quality),
		Selected:   c(selected),
	}
}

// Available themes
var (
	DefaultTheme = buildTheme("default",
		[2]string{"#1E40AF", "#3B82F6"}, [2]string{"#6B7280", "#9CA3AF"}, [2]string{"#4F46E5", "#818CF8"},
		[2]string{"#059669", "#10B981"}, [2]string{"#D97706", "#F59E0B"}, [2]string{"#DC2626", "#EF4444"},
		[2]string{"#0891B2", "#06B6D4"}, [2]string{"#D1D5DB", "#374151"}, [2]string{"#FFFFFF", "#111827"},
		[2]string{"#111827", "#F9FAFB"}, [2]string{"#6B7280", "#9CA3AF"}, [2]string{"#FEF3C7", "#1F2937"},
		[2]string{"#B45309", "#FBBF24"}, [2]string{"#475569", "#CBD5E1"}, [2]string{"#9A3412", "#FB923C"},
		[2]string{"#4F46E5", "#A5B4FC"}, [2]string{"#059669", "#10B981"}, [2]string{"#DBEAFE", "#1E3A8A"})

	HighContrastTheme = buildTheme("high-contrast",
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#666666", "#BBBBBB"}, [2]string{"#000080", "#8080FF"},
		[2]string{"#006600", "#00FF00"}, [2]string{"#CC6600", "#FFAA00"}, [2]string{"#CC0000", "#FF4444"},
		[2]string{"#0066CC", "#4499FF"}, [2]string{"#000000", "#FFFFFF"}, [2]string{"#FFFFFF", "#000000"},
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#666666", "#BBBBBB"}, [2]string{"#FFFF00", "#444444"},
		[2]string{"#996600", "#FFD700"}, [2]string{"#444444", "#DDDDDD"}, [2]string{"#993300", "#FF8844"},
		[2]string{"#800080", "#FF80FF"}, [2]string{"#006600", "#00FF00"}, [2]string{"#CCCCCC", "#333333"})

	MinimalTheme = buildTheme("minimal",
		[2]string{"#2D3748", "#E2E8F0"}, [2]string{"#718096", "#A0AEC0"}, [2]string{"#4A5568", "#CBD5E0"},
		[2]string{"#2F855A", "#68D391"}, [2]string{"#C05621", "#F6AD55"}, [2]string{"#C53030", "#FC8181"},
		[2]string{"#2B6CB0", "#63B3ED"}, [2]string{"#E2E8F0", "#2D3748"}, [2]string{"#FFFFFF", "#1A202C"},
		[2]string{"#2D3748", "#F7FAFC"}, [2]string{"#A0AEC0", "#718096"}, [2]string{"#F7FAFC", "#2D3748"},
		[2]string{"#744210", "#F6E05E"}, [2]string{"#4A5568", "#E2E8F0"}, [2]string{"#7B341E", "#F6AD55"},
		[2]string{"#553C9A", "#B794F6"}, [2]string{"#2F855A", "#68D391"}, [2]string{"#EDF2F7", "#2D3748"})
)

// Current active theme
var currentTheme = DefaultTheme

// GetTheme returns the current active theme
func GetTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme
func SetTheme(theme *Theme) {
	currentTheme = *theme
}

// SetThemeByName sets the theme by name
func SetThemeByName(name string) bool {
	switch name {
	case "default":
		SetTheme(&DefaultTheme)
		return true
	case "high-contrast":
		SetTheme(&HighContrastTheme)
		return true
	case "minimal":
		SetTheme(&MinimalTheme)
		return true
	default:
		return false
	}
}

// IsColorDisabled checks if colors should be disabled
func IsColorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// GetAvailableThemes returns list of available theme names
func GetAvailableThemes() []string {
	return []string{"default", "high-contrast", "minimal"}
}

// CertificationColor maps a certification tier to its badge color
func (t *Theme) CertificationColor(c catalog.Certification) lipgloss.AdaptiveColor {
	switch c {
	case catalog.CertGold:
		return t.Gold
	case catalog.CertSilver:
		return t.Silver
	case catalog.CertBronze:
		return t.Bronze
	default:
		return t.Muted
	}
}

// StatusColor maps the free-form status strings used across the catalog
// (ticket states, heatmap health, policy compliance) onto semantic colors.
func (t *Theme) StatusColor(status string) lipgloss.AdaptiveColor {
	switch status {
	case "Healthy", "Compliant", "Active", "Connected", "Published", "Gold", "Validated", "Approved":
		return t.Success
	case "Warning", "Review Needed", "Review", "Pending", "Waiting", "Staging", "In Review", "Planning":
		return t.Warning
	case "Critical", "Open", "Revision", "Failed":
		return t.Error
	case "Building", "New":
		return t.Info
	default:
		return t.Secondary
	}
}

// QualityColor grades a 0..100 quality score
func (t *Theme) QualityColor(score int) lipgloss.AdaptiveColor {
	switch {
	case score >= 90:
		return t.Success
	case score >= 80:
		return t.Warning
	default:
		return t.Error
	}
}

// GetStyles builds the common styles for the current theme
func GetStyles() *Styles {
	theme := GetTheme()

	return &Styles{
		Theme: theme,

		// Base styles
		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subheader: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		// Status styles
		Success: lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(theme.Info),

		// Interactive styles
		Selected: lipgloss.NewStyle().
			Background(theme.Selected).
			Foreground(theme.Primary).
			Bold(true),

		// Layout styles
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(theme.Accent).
			Padding(1, 2),

		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(theme.Border).
			Padding(0, 1),

		SidebarFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		// Tab styles
		TabActive: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Underline(true).
			Bold(true).
			Padding(0, 1),

		TabInactive: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		// Special styles
		Assistant: lipgloss.NewStyle().
			Foreground(theme.Assistant).
			Bold(true),

		Highlight: lipgloss.NewStyle().
			Background(theme.Highlight).
			Foreground(theme.Primary),
	}
}

// Styles contains all the styled components
type Styles struct {
	Theme Theme

	// Base styles
	Title     lipgloss.Style
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Body      lipgloss.Style
	Muted     lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// Interactive styles
	Selected lipgloss.Style

	// Layout styles
	Box            lipgloss.Style
	Overlay        lipgloss.Style
	Sidebar        lipgloss.Style
	SidebarFocused lipgloss.Style

	// Tab styles
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Special styles
	Assistant lipgloss.Style
	Highlight lipgloss.Style
}

// Status renders text in the semantic color of status
func (s *Styles) Status(status string) string {
	return lipgloss.NewStyle().Foreground(s.Theme.StatusColor(status)).Render(status)
}

// Certification renders a certification badge
func (s *Styles) Certification(c catalog.Certification) string {
	return lipgloss.NewStyle().
		Foreground(s.Theme.CertificationColor(c)).
		Bold(true).
		Render("[" + string(c) + "]")
}
