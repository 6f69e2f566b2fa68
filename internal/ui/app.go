package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/datagov/internal/catalog"
	"github.com/yildizm/datagov/internal/emoji"
	"github.com/yildizm/datagov/internal/logger"
	"github.com/yildizm/datagov/internal/monitor"
	"github.com/yildizm/datagov/internal/router"
)

type focusArea int

const (
	focusContent focusArea = iota
	focusSidebar
)

// Options configures the dashboard model
type Options struct {
	Catalog  *catalog.Catalog
	Answerer Answerer
	// Provider names the assistant backend in the header
	Provider         string
	Metrics          *monitor.Collector
	Logger           *logger.Logger
	StartView        router.View
	SidebarMinimized bool
	User             string
	Role             string
}

// Model is the root dashboard model. It owns the router and mounts one
// screen model for the router's current screen.
type Model struct {
	width    int
	height   int
	ready    bool
	quitting bool

	router   *router.Router
	catalog  *catalog.Catalog
	answerer Answerer
	provider string
	metrics  *monitor.Collector
	log      *logger.Logger
	styles   *Styles
	help     help.Model

	sidebar  *sidebar
	active   screenModel
	instance uint64
	focus    focusArea

	user   string
	role   string
	status string
}

// NewModel creates the dashboard model on the configured start view
func NewModel(opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = logger.New("ui")
	}
	start := opts.StartView
	if start == "" {
		start = router.ViewDashboard
	}

	styles := GetStyles()
	r := router.New(start)
	r.SetSidebarMinimized(opts.SidebarMinimized)

	m := &Model{
		router:   r,
		catalog:  opts.Catalog,
		answerer: opts.Answerer,
		provider: opts.Provider,
		metrics:  opts.Metrics,
		log:      log,
		styles:   styles,
		help:     help.New(),
		sidebar:  newSidebar(styles),
		user:     opts.User,
		role:     opts.Role,
	}
	m.mount()
	return m
}

// Router exposes navigation state
func (m *Model) Router() *router.Router {
	return m.router
}

// Init initializes the dashboard
func (m *Model) Init() tea.Cmd {
	return m.active.Init()
}

// Shutdown tears down the mounted screen, cancelling any in-flight ask.
// It is safe to call more than once.
func (m *Model) Shutdown() {
	if m.active != nil {
		m.active.Teardown()
	}
}

// Update handles messages and navigation
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case navigateMsg:
		return m, m.navigate(m.router.SetView(msg.view))
	case selectObjectMsg:
		return m, m.navigate(m.router.SelectObject(msg.id))
	case selectDomainMsg:
		return m, m.navigate(m.router.SelectDomain(msg.id))
	case selectPolicyMsg:
		return m, m.navigate(m.router.SelectPolicy(msg.id))
	case openCharterMsg:
		return m, m.navigate(m.router.OpenCharter())
	case backMsg:
		return m, m.navigate(m.router.Back())
	case askResultMsg:
		return m.handleAskResult(msg)
	case catalogReloadedMsg:
		return m.handleCatalogReloaded(msg)
	}

	return m, m.active.Update(msg)
}

func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.ready = true
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.ForceQuit) {
		return m.quit()
	}
	if key.Matches(msg, keys.FocusSidebar) {
		m.toggleFocus()
		return m, nil
	}

	if m.focus == focusSidebar {
		switch {
		case key.Matches(msg, keys.Quit):
			return m.quit()
		case key.Matches(msg, keys.ToggleSidebar):
			m.router.ToggleSidebar()
			return m, nil
		case key.Matches(msg, keys.Back), key.Matches(msg, keys.NextTab):
			m.focus = focusContent
			return m, nil
		}
		return m, m.sidebar.Update(msg)
	}

	if !m.active.CapturesText() {
		switch {
		case key.Matches(msg, keys.Quit):
			return m.quit()
		case key.Matches(msg, keys.ToggleSidebar):
			m.router.ToggleSidebar()
			return m, nil
		}
	}
	return m, m.active.Update(msg)
}

func (m *Model) toggleFocus() {
	if m.focus == focusSidebar {
		m.focus = focusContent
	} else {
		m.focus = focusSidebar
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.Shutdown()
	return m, tea.Quit
}

// handleAskResult routes a finished ask to the object detail that started
// it. Results for a view that is gone are dropped.
func (m *Model) handleAskResult(msg askResultMsg) (tea.Model, tea.Cmd) {
	od, ok := m.active.(*objectDetailView)
	if !ok || od.instance != msg.instance {
		m.log.Debug("dropping ask result for unmounted view %d", msg.instance)
		return m, nil
	}
	return m, od.Update(msg)
}

func (m *Model) handleCatalogReloaded(msg catalogReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.catalog == nil {
		return m, nil
	}
	start := time.Now()
	m.catalog = msg.catalog
	if m.metrics != nil {
		m.metrics.SetCatalogSize(m.catalog.Counts())
	}
	m.status = emoji.GetEmoji("reload") + " Catalog reloaded from " + m.catalog.Source
	m.log.InfoWithFields("catalog swapped", []logger.Field{
		logger.F("source", m.catalog.Source),
		logger.F("screen", string(m.router.Current().View())),
	})
	cmd := m.mount()
	if m.metrics != nil {
		m.metrics.Observe(monitor.OperationReload, time.Since(start), nil)
	}
	return m, cmd
}

// navigate applies a router transition: it logs and counts it and remounts
// the screen model when the screen changed
func (m *Model) navigate(t router.Transition) tea.Cmd {
	start := time.Now()
	m.log.DebugWithFields("navigate", []logger.Field{
		logger.F("from", string(t.From.View())),
		logger.F("to", string(t.To.View())),
		logger.F("cause", string(t.Cause)),
	})

	var cmd tea.Cmd
	if t.Changed() {
		cmd = m.mount()
	}
	m.focus = focusContent
	m.status = ""

	if m.metrics != nil {
		m.metrics.RecordNavigation(string(t.To.View()), string(t.Cause))
		m.metrics.Observe(monitor.OperationNavigate, time.Since(start), nil)
	}
	return cmd
}

// mount tears down the current screen model and builds a fresh one
func (m *Model) mount() tea.Cmd {
	if m.active != nil {
		m.active.Teardown()
	}
	m.instance++
	m.active = mountScreen(m.router.Current(), viewEnv{
		catalog:  m.catalog,
		styles:   m.styles,
		answerer: m.answerer,
		metrics:  m.metrics,
		instance: m.instance,
	})
	return m.active.Init()
}

// View renders the dashboard
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	start := time.Now()

	header := m.renderHeader()
	footer := m.renderFooter()
	bodyHeight := max(1, m.height-lipgloss.Height(header)-lipgloss.Height(footer))

	minimized := m.router.SidebarMinimized()
	side := m.sidebar.Render(m.router.Current(), minimized, m.focus == focusSidebar, bodyHeight)
	contentWidth := max(20, m.width-lipgloss.Width(side)-2)

	content := lipgloss.NewStyle().
		Padding(0, 1).
		Width(contentWidth).
		MaxHeight(bodyHeight).
		Render(m.active.Render(contentWidth-2, bodyHeight))

	out := lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, side, content),
		footer,
	)

	if m.metrics != nil {
		m.metrics.Observe(monitor.OperationRender, time.Since(start), nil)
	}
	return out
}

func (m *Model) renderHeader() string {
	s := m.styles
	title := s.Title.Render("Data Governance Hub") + s.Muted.Render(" · "+m.router.Current().Title())

	api := s.Success.Render(emoji.GetEmoji("online") + " API Online")
	if m.answerer == nil {
		api = s.Warning.Render(emoji.GetEmoji("warning") + " Assistant offline")
	} else if m.provider != "" {
		api += s.Muted.Render(" (" + m.provider + ")")
	}
	right := s.Body.Render(m.user) + s.Muted.Render(", "+m.role) + "  " + api

	gap := max(1, m.width-lipgloss.Width(title)-lipgloss.Width(right))
	line := title + lipgloss.NewStyle().Width(gap).Render("") + right

	rule := lipgloss.NewStyle().Foreground(s.Theme.Border).Render(strings.Repeat("─", max(m.width, 0)))
	return lipgloss.JoinVertical(lipgloss.Left, line, rule)
}

func (m *Model) renderFooter() string {
	bindings := append([]key.Binding{}, m.active.Keys()...)
	if m.focus == focusSidebar {
		bindings = []key.Binding{keys.Up, keys.Down, keys.Select, keys.ToggleSidebar, keys.Back}
	} else if !m.active.CapturesText() {
		bindings = append(bindings, keys.FocusSidebar, keys.ToggleSidebar, keys.Quit)
	}

	line := m.help.ShortHelpView(bindings)
	if m.status != "" {
		line = m.styles.Info.Render(m.status) + "  " + line
	}
	return line
}
