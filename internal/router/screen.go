// Package router models which dashboard screen is active.
//
// A Screen is a closed set of variants. Detail variants carry the id they
// drill into, so a screen can never hold an id that belongs to another view.
package router

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// View is the key used by the sidebar and the config to name a screen
type View string

const (
	ViewDashboard    View = "dashboard"
	ViewSearch       View = "search"
	ViewCdmList      View = "cdm-list"
	ViewDomainList   View = "domains-list"
	ViewLineage      View = "lineage"
	ViewCouncil      View = "council"
	ViewCharter      View = "charter"
	ViewAdmin        View = "admin"
	ViewSettings     View = "settings"
	ViewObjectDetail View = "detail"
	ViewDomainDetail View = "domain-detail"
	ViewPolicyDetail View = "policy-detail"
)

// Screen is the active screen. Only types in this package implement it.
type Screen interface {
	View() View
	Title() string
	isScreen()
}

type (
	DashboardScreen  struct{}
	SearchScreen     struct{}
	CdmListScreen    struct{}
	DomainListScreen struct{}
	CouncilScreen    struct{}
	CharterScreen    struct{}
	AdminScreen      struct{}

	ObjectDetailScreen struct{ ObjectID string }
	DomainDetailScreen struct{ DomainID string }
	PolicyDetailScreen struct{ PolicyID string }

	// PlaceholderScreen stands in for any view that has no screen yet
	PlaceholderScreen struct{ Key View }
)

func (DashboardScreen) View() View    { return ViewDashboard }
func (SearchScreen) View() View       { return ViewSearch }
func (CdmListScreen) View() View      { return ViewCdmList }
func (DomainListScreen) View() View   { return ViewDomainList }
func (CouncilScreen) View() View      { return ViewCouncil }
func (CharterScreen) View() View      { return ViewCharter }
func (AdminScreen) View() View        { return ViewAdmin }
func (ObjectDetailScreen) View() View { return ViewObjectDetail }
func (DomainDetailScreen) View() View { return ViewDomainDetail }
func (PolicyDetailScreen) View() View { return ViewPolicyDetail }
func (s PlaceholderScreen) View() View {
	return s.Key
}

func (DashboardScreen) Title() string    { return "Dashboard" }
func (SearchScreen) Title() string       { return "Search" }
func (CdmListScreen) Title() string      { return "CDM Registry" }
func (DomainListScreen) Title() string   { return "Domains" }
func (CouncilScreen) Title() string      { return "Governance Council" }
func (CharterScreen) Title() string      { return "Governance Charter" }
func (AdminScreen) Title() string        { return "Admin Console" }
func (ObjectDetailScreen) Title() string { return "CDM Object" }
func (DomainDetailScreen) Title() string { return "Domain" }
func (PolicyDetailScreen) Title() string { return "Policy" }

// Title capitalises the view key and turns its first dash into a space,
// e.g. "quality-rules" becomes "Quality rules"
func (s PlaceholderScreen) Title() string {
	k := strings.Replace(string(s.Key), "-", " ", 1)
	if k == "" {
		return "Unknown"
	}
	r, size := utf8.DecodeRuneInString(k)
	return string(unicode.ToUpper(r)) + k[size:]
}

func (DashboardScreen) isScreen()    {}
func (SearchScreen) isScreen()       {}
func (CdmListScreen) isScreen()      {}
func (DomainListScreen) isScreen()   {}
func (CouncilScreen) isScreen()      {}
func (CharterScreen) isScreen()      {}
func (AdminScreen) isScreen()        {}
func (ObjectDetailScreen) isScreen() {}
func (DomainDetailScreen) isScreen() {}
func (PolicyDetailScreen) isScreen() {}
func (PlaceholderScreen) isScreen()  {}

// ScreenFor maps a view key to its screen. Detail keys yield a detail
// screen with no id, which renders as not found. Unknown keys yield a
// placeholder, so the mapping is total.
func ScreenFor(v View) Screen {
	switch v {
	case ViewDashboard, ViewSettings:
		return DashboardScreen{}
	case ViewSearch:
		return SearchScreen{}
	case ViewCdmList:
		return CdmListScreen{}
	case ViewDomainList:
		return DomainListScreen{}
	case ViewCouncil:
		return CouncilScreen{}
	case ViewCharter:
		return CharterScreen{}
	case ViewAdmin:
		return AdminScreen{}
	case ViewObjectDetail:
		return ObjectDetailScreen{}
	case ViewDomainDetail:
		return DomainDetailScreen{}
	case ViewPolicyDetail:
		return PolicyDetailScreen{}
	default:
		return PlaceholderScreen{Key: v}
	}
}
