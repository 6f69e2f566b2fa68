package router

// Cause records what triggered a transition
type Cause string

const (
	CauseSidebar Cause = "sidebar"
	CauseSelect  Cause = "select"
	CauseBack    Cause = "back"
	CauseLink    Cause = "link"
)

// Transition describes one navigation step
type Transition struct {
	From  Screen
	To    Screen
	Cause Cause
}

// Changed reports whether the transition replaced the screen
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Router owns the current screen and the sidebar collapse flag. It is the
// only cross-view state in the dashboard.
type Router struct {
	current   Screen
	minimized bool
}

// New starts the router on the screen for start
func New(start View) *Router {
	return &Router{current: ScreenFor(start)}
}

// Current returns the active screen
func (r *Router) Current() Screen {
	return r.current
}

// SetView switches to the screen for v. Sidebar navigation never carries
// an id, so any drill-down context is dropped.
func (r *Router) SetView(v View) Transition {
	return r.move(ScreenFor(v), CauseSidebar)
}

// SelectObject opens the object detail for id without validating it
func (r *Router) SelectObject(id string) Transition {
	return r.move(ObjectDetailScreen{ObjectID: id}, CauseSelect)
}

// SelectDomain opens the domain detail for id without validating it
func (r *Router) SelectDomain(id string) Transition {
	return r.move(DomainDetailScreen{DomainID: id}, CauseSelect)
}

// SelectPolicy opens the policy detail for id without validating it
func (r *Router) SelectPolicy(id string) Transition {
	return r.move(PolicyDetailScreen{PolicyID: id}, CauseSelect)
}

// OpenCharter follows the council's charter link
func (r *Router) OpenCharter() Transition {
	return r.move(CharterScreen{}, CauseLink)
}

// Back returns from a detail screen to the screen it is listed on
func (r *Router) Back() Transition {
	return r.move(parentOf(r.current), CauseBack)
}

// ToggleSidebar flips the minimize flag and returns the new value
func (r *Router) ToggleSidebar() bool {
	r.minimized = !r.minimized
	return r.minimized
}

// SetSidebarMinimized sets the minimize flag
func (r *Router) SetSidebarMinimized(minimized bool) {
	r.minimized = minimized
}

// SidebarMinimized reports whether the sidebar is collapsed
func (r *Router) SidebarMinimized() bool {
	return r.minimized
}

// SelectedObjectID is set only while an object detail is active. A detail
// reached by view key carries no id and reports unset.
func (r *Router) SelectedObjectID() (string, bool) {
	s, ok := r.current.(ObjectDetailScreen)
	return s.ObjectID, ok && s.ObjectID != ""
}

// SelectedDomainID is set only while a domain detail is active
func (r *Router) SelectedDomainID() (string, bool) {
	s, ok := r.current.(DomainDetailScreen)
	return s.DomainID, ok && s.DomainID != ""
}

// SelectedPolicyID is set only while a policy detail is active
func (r *Router) SelectedPolicyID() (string, bool) {
	s, ok := r.current.(PolicyDetailScreen)
	return s.PolicyID, ok && s.PolicyID != ""
}

func (r *Router) move(to Screen, cause Cause) Transition {
	t := Transition{From: r.current, To: to, Cause: cause}
	r.current = to
	return t
}

func parentOf(s Screen) Screen {
	switch s.(type) {
	case ObjectDetailScreen:
		return CdmListScreen{}
	case DomainDetailScreen:
		return DomainListScreen{}
	case PolicyDetailScreen, CharterScreen:
		return CouncilScreen{}
	default:
		return DashboardScreen{}
	}
}
