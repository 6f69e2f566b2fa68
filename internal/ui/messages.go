package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/datagov/internal/catalog"
	"github.com/yildizm/datagov/internal/router"
)

// navigateMsg is emitted by the sidebar
type navigateMsg struct {
	view router.View
}

type selectObjectMsg struct {
	id string
}

type selectDomainMsg struct {
	id string
}

type selectPolicyMsg struct {
	id string
}

type openCharterMsg struct{}

type backMsg struct{}

// askResultMsg carries a finished ask back to the view that started it.
// instance identifies the mounted view, gen the ask within that view.
type askResultMsg struct {
	instance uint64
	gen      uint64
	answer   string
}

type catalogReloadedMsg struct {
	catalog *catalog.Catalog
}

// CatalogReloaded wraps a freshly loaded catalog for program.Send
func CatalogReloaded(c *catalog.Catalog) tea.Msg {
	return catalogReloadedMsg{catalog: c}
}

// emit returns a command that yields msg
func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
