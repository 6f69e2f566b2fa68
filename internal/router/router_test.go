package router

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNewStartsOnView(t *testing.T) {
	tests := []struct {
		start View
		want  Screen
	}{
		{ViewDashboard, DashboardScreen{}},
		{ViewCdmList, CdmListScreen{}},
		{ViewSettings, DashboardScreen{}},
		{"", PlaceholderScreen{}},
		{"lineage", PlaceholderScreen{Key: ViewLineage}},
	}
	for _, tt := range tests {
		t.Run(string(tt.start), func(t *testing.T) {
			r := New(tt.start)
			if r.Current() != tt.want {
				t.Errorf("New(%q).Current() = %#v, want %#v", tt.start, r.Current(), tt.want)
			}
		})
	}
}

func TestSelectThenNavigate(t *testing.T) {
	r := New(ViewCdmList)

	tr := r.SelectObject("cdm-002")
	if tr.Cause != CauseSelect || tr.From != (CdmListScreen{}) {
		t.Errorf("unexpected transition %#v", tr)
	}
	id, ok := r.SelectedObjectID()
	if !ok || id != "cdm-002" {
		t.Fatalf("SelectedObjectID() = %q, %v; want cdm-002, true", id, ok)
	}
	if _, ok := r.SelectedDomainID(); ok {
		t.Error("domain id must be unset on object detail")
	}
	if _, ok := r.SelectedPolicyID(); ok {
		t.Error("policy id must be unset on object detail")
	}

	// toggling the sidebar is not navigation
	r.ToggleSidebar()
	if id, _ := r.SelectedObjectID(); id != "cdm-002" {
		t.Errorf("object id changed by sidebar toggle: %q", id)
	}

	r.SetView(ViewDomainList)
	if _, ok := r.SelectedObjectID(); ok {
		t.Error("object id survived sidebar navigation")
	}
}

func TestSelectUnknownIDIsAccepted(t *testing.T) {
	r := New(ViewDashboard)
	r.SelectPolicy("pol-404")
	if id, ok := r.SelectedPolicyID(); !ok || id != "pol-404" {
		t.Errorf("SelectedPolicyID() = %q, %v", id, ok)
	}
}

func TestBack(t *testing.T) {
	tests := []struct {
		name string
		nav  func(r *Router)
		want Screen
	}{
		{"object detail", func(r *Router) { r.SelectObject("cdm-001") }, CdmListScreen{}},
		{"domain detail", func(r *Router) { r.SelectDomain("dom-01") }, DomainListScreen{}},
		{"policy detail", func(r *Router) { r.SelectPolicy("pol-001") }, CouncilScreen{}},
		{"charter", func(r *Router) { r.OpenCharter() }, CouncilScreen{}},
		{"admin", func(r *Router) { r.SetView(ViewAdmin) }, DashboardScreen{}},
		{"dashboard", func(r *Router) {}, DashboardScreen{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(ViewDashboard)
			tt.nav(r)
			tr := r.Back()
			if tr.Cause != CauseBack {
				t.Errorf("cause = %s", tr.Cause)
			}
			if r.Current() != tt.want {
				t.Errorf("Back() landed on %#v, want %#v", r.Current(), tt.want)
			}
		})
	}
}

func TestScreenForIsTotal(t *testing.T) {
	tests := []struct {
		view  View
		want  Screen
		title string
	}{
		{ViewSearch, SearchScreen{}, "Search"},
		{ViewCouncil, CouncilScreen{}, "Governance Council"},
		{ViewObjectDetail, ObjectDetailScreen{}, "CDM Object"},
		{ViewLineage, PlaceholderScreen{Key: ViewLineage}, "Lineage"},
		{"quality-rules", PlaceholderScreen{Key: "quality-rules"}, "Quality rules"},
		{"data-quality-rules", PlaceholderScreen{Key: "data-quality-rules"}, "Data quality-rules"},
		{"échéancier", PlaceholderScreen{Key: "échéancier"}, "Échéancier"},
	}
	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			got := ScreenFor(tt.view)
			if got != tt.want {
				t.Errorf("ScreenFor(%q) = %#v, want %#v", tt.view, got, tt.want)
			}
			if got.Title() != tt.title {
				t.Errorf("Title() = %q, want %q", got.Title(), tt.title)
			}
			if got.View() != tt.view {
				t.Errorf("View() = %q, want %q", got.View(), tt.view)
			}
		})
	}
}

func TestDetailViewKeyCarriesNoSelection(t *testing.T) {
	r := New(ViewObjectDetail)
	if id, ok := r.SelectedObjectID(); ok {
		t.Errorf("New(detail).SelectedObjectID() = %q, true; want unset", id)
	}

	r.SelectObject("cdm-002")
	r.SetView(ViewObjectDetail)
	if id, ok := r.SelectedObjectID(); ok {
		t.Errorf("SelectedObjectID() after SetView(detail) = %q, true; want unset", id)
	}

	r.SelectDomain("dom-01")
	r.SetView(ViewDomainDetail)
	if id, ok := r.SelectedDomainID(); ok {
		t.Errorf("SelectedDomainID() after SetView(domain-detail) = %q, true", id)
	}

	r.SelectPolicy("pol-001")
	r.SetView(ViewPolicyDetail)
	if id, ok := r.SelectedPolicyID(); ok {
		t.Errorf("SelectedPolicyID() after SetView(policy-detail) = %q, true", id)
	}
}

func TestSidebarFlag(t *testing.T) {
	r := New(ViewDashboard)
	if r.SidebarMinimized() {
		t.Fatal("sidebar should start expanded")
	}
	if !r.ToggleSidebar() || !r.SidebarMinimized() {
		t.Error("toggle should minimize")
	}
	r.SetSidebarMinimized(false)
	if r.SidebarMinimized() {
		t.Error("SetSidebarMinimized(false) ignored")
	}
}

// step is one random navigation action
type step struct {
	Kind int
	Arg  string
}

func (s step) apply(r *Router) {
	switch s.Kind {
	case 0:
		r.SelectObject(s.Arg)
	case 1:
		r.SelectDomain(s.Arg)
	case 2:
		r.SelectPolicy(s.Arg)
	case 3:
		r.Back()
	case 4:
		r.OpenCharter()
	case 5:
		r.ToggleSidebar()
	default:
		r.SetView(View(s.Arg))
	}
}

func (s step) String() string {
	return fmt.Sprintf("%d(%s)", s.Kind, s.Arg)
}

var sidebarViews = []interface{}{
	ViewDashboard, ViewSearch, ViewCdmList, ViewDomainList, ViewLineage,
	ViewCouncil, ViewAdmin, ViewSettings,
	ViewObjectDetail, ViewDomainDetail, ViewPolicyDetail,
}

func stepGen() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, 6),
		gen.OneGenOf(gen.Identifier(), gen.OneConstOf(sidebarViews...).Map(func(v View) string { return string(v) })),
	).Map(func(vals []interface{}) step {
		return step{Kind: vals[0].(int), Arg: vals[1].(string)}
	})
}

func TestNavigationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("no selection id survives a sidebar navigation", prop.ForAll(
		func(steps []step, v View) bool {
			r := New(ViewDashboard)
			for _, s := range steps {
				s.apply(r)
			}
			r.SetView(v)
			_, obj := r.SelectedObjectID()
			_, dom := r.SelectedDomainID()
			_, pol := r.SelectedPolicyID()
			return !obj && !dom && !pol
		},
		gen.SliceOf(stepGen()),
		gen.OneConstOf(sidebarViews...),
	))

	properties.Property("at most one selection id is ever set", prop.ForAll(
		func(steps []step) bool {
			r := New(ViewDashboard)
			for _, s := range steps {
				s.apply(r)
				n := 0
				if _, ok := r.SelectedObjectID(); ok {
					n++
				}
				if _, ok := r.SelectedDomainID(); ok {
					n++
				}
				if _, ok := r.SelectedPolicyID(); ok {
					n++
				}
				if n > 1 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(stepGen()),
	))

	properties.Property("a selected id is kept until the next navigation", prop.ForAll(
		func(steps []step, id string) bool {
			r := New(ViewDashboard)
			for _, s := range steps {
				s.apply(r)
			}
			r.SelectObject(id)
			r.ToggleSidebar()
			got, ok := r.SelectedObjectID()
			return ok && got == id
		},
		gen.SliceOf(stepGen()),
		gen.Identifier(),
	))

	properties.TestingRun(t)
}
