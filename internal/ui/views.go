package ui

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/datagov/internal/catalog"
	"github.com/yildizm/datagov/internal/monitor"
	"github.com/yildizm/datagov/internal/router"
	"github.com/yildizm/datagov/internal/ui/components"
)

// Answerer produces the assistant's reply for the object detail view. It
// never fails; errors surface as a fixed fallback string.
type Answerer interface {
	Answer(ctx context.Context, question, askContext string) string
}

// screenModel is the view model mounted for the router's current screen.
// A new one is built on every mount and torn down when the screen changes.
type screenModel interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	Render(width, height int) string
	// CapturesText reports whether printable keys belong to a text field
	CapturesText() bool
	Keys() []key.Binding
	Teardown()
}

// viewEnv is what a screen model is built from
type viewEnv struct {
	catalog  *catalog.Catalog
	styles   *Styles
	answerer Answerer
	metrics  *monitor.Collector
	instance uint64
}

// mountScreen builds the model for s
func mountScreen(s router.Screen, env viewEnv) screenModel {
	switch s := s.(type) {
	case router.DashboardScreen:
		return newDashboardView(env)
	case router.SearchScreen, router.CdmListScreen:
		return newCdmListView(env)
	case router.DomainListScreen:
		return newDomainListView(env)
	case router.ObjectDetailScreen:
		return newObjectDetailView(env, s.ObjectID)
	case router.DomainDetailScreen:
		return newDomainDetailView(env, s.DomainID)
	case router.PolicyDetailScreen:
		return newPolicyDetailView(env, s.PolicyID)
	case router.CouncilScreen:
		return newCouncilView(env)
	case router.CharterScreen:
		return newCharterView(env)
	case router.AdminScreen:
		return newAdminView(env)
	default:
		return newPlaceholderView(env, s.Title())
	}
}

// staticView supplies the no-op parts of screenModel
type staticView struct{}

func (staticView) Init() tea.Cmd       { return nil }
func (staticView) CapturesText() bool  { return false }
func (staticView) Teardown()           {}
func (staticView) Keys() []key.Binding { return []key.Binding{keys.Back} }

// palette hands the theme to the components package
func (s *Styles) palette() components.Palette {
	t := s.Theme
	return components.Palette{
		Primary:   t.Primary,
		Secondary: t.Secondary,
		Muted:     t.Muted,
		Border:    t.Border,
		Selected:  t.Selected,
		Success:   t.Success,
		Warning:   t.Warning,
		Error:     t.Error,
		Info:      t.Info,
	}
}

var (
	mdStyleOnce sync.Once
	mdStyle     string
)

// markdownStyle picks the glamour style for the terminal, once per process
func markdownStyle() string {
	mdStyleOnce.Do(func() {
		switch {
		case IsColorDisabled():
			mdStyle = styles.NoTTYStyle
		case lipgloss.HasDarkBackground():
			mdStyle = styles.DarkStyle
		default:
			mdStyle = styles.LightStyle
		}
	})
	return mdStyle
}

// section renders a titled block
func (s *Styles) section(title string, body ...string) string {
	parts := append([]string{s.Subheader.Render(title)}, body...)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// notFound renders the empty detail shown for an unknown id
func (s *Styles) notFound(title, hint string) string {
	return s.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.Error.Render(title),
		"",
		s.Muted.Render(hint),
	))
}

// kv renders aligned "label  value" rows
func (s *Styles) kv(width int, pairs ...[2]string) string {
	rows := make([]string, 0, len(pairs))
	for _, p := range pairs {
		label := s.Muted.Width(width).Render(p[0])
		rows = append(rows, label+s.Body.Render(p[1]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
