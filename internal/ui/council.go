package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/datagov/internal/catalog"
	"github.com/yildizm/datagov/internal/emoji"
	"github.com/yildizm/datagov/internal/ui/components"
)

type councilPane int

const (
	paneProposals councilPane = iota
	panePolicies
)

var (
	approveKey = key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "approve"))
	reviseKey  = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "revise"))
	paneKey    = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch list"))
)

// councilView is the governance council workspace. Reviews are read-only:
// approve and revise close the overlay without changing any status.
type councilView struct {
	staticView
	council   catalog.Council
	policies  []catalog.Policy
	proposals *components.List
	policyTbl *components.List
	pane      councilPane
	reviewing *catalog.ProposedEntity
	styles    *Styles
}

func newCouncilView(env viewEnv) *councilView {
	c := env.catalog

	proposals := components.NewList("", "ID", "ENTITY", "PROPOSED BY", "DEPT", "STATUS")
	proposals.Empty = "No proposals awaiting review."
	proposals.Palette = env.styles.palette()
	items := make([]components.ListItem, 0, len(c.Council.Proposals))
	for _, p := range c.Council.Proposals {
		items = append(items, components.ListItem{
			ID:      p.ID,
			Columns: []string{p.ID, p.Name, p.ProposedBy, p.Department, string(p.Status)},
		})
	}
	proposals.SetItems(items)

	policies := components.NewList("", "POLICY", "OWNER", "RETENTION", "STATUS")
	policies.Empty = "No policies defined."
	policies.Palette = env.styles.palette()
	rows := make([]components.ListItem, 0, len(c.Policies))
	for _, p := range c.Policies {
		rows = append(rows, components.ListItem{
			ID:      p.ID,
			Columns: []string{p.Name, p.Owner, p.Retention, p.Status},
		})
	}
	policies.SetItems(rows)

	v := &councilView{
		council:   c.Council,
		policies:  c.Policies,
		proposals: proposals,
		policyTbl: policies,
		styles:    env.styles,
	}
	v.setPane(paneProposals)
	return v
}

func (v *councilView) Keys() []key.Binding {
	if v.reviewing != nil {
		return []key.Binding{approveKey, reviseKey, keys.Back}
	}
	return []key.Binding{paneKey, keys.Up, keys.Down, keys.Select, keys.Charter, keys.Back}
}

// Reviewing returns the proposal shown in the overlay, if any
func (v *councilView) Reviewing() (catalog.ProposedEntity, bool) {
	if v.reviewing == nil {
		return catalog.ProposedEntity{}, false
	}
	return *v.reviewing, true
}

func (v *councilView) setPane(p councilPane) {
	v.pane = p
	v.proposals.Focused = p == paneProposals
	v.policyTbl.Focused = p == panePolicies
}

func (v *councilView) current() *components.List {
	if v.pane == panePolicies {
		return v.policyTbl
	}
	return v.proposals
}

func (v *councilView) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if v.reviewing != nil {
		switch {
		case key.Matches(km, keys.Back), key.Matches(km, approveKey), key.Matches(km, reviseKey):
			v.reviewing = nil
		}
		return nil
	}

	switch {
	case key.Matches(km, keys.Back):
		return emit(backMsg{})
	case key.Matches(km, keys.Charter):
		return emit(openCharterMsg{})
	case key.Matches(km, paneKey), key.Matches(km, keys.PrevTab):
		v.setPane(1 - v.pane)
	case key.Matches(km, keys.Up):
		v.current().MoveUp()
	case key.Matches(km, keys.Down):
		v.current().MoveDown()
	case key.Matches(km, keys.Select):
		return v.open()
	}
	return nil
}

func (v *councilView) open() tea.Cmd {
	item := v.current().GetSelectedItem()
	if item == nil {
		return nil
	}
	if v.pane == panePolicies {
		return emit(selectPolicyMsg{id: item.ID})
	}
	for i := range v.council.Proposals {
		if v.council.Proposals[i].ID == item.ID {
			p := v.council.Proposals[i]
			v.reviewing = &p
			break
		}
	}
	return nil
}

func (v *councilView) Render(width, height int) string {
	if v.reviewing != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, v.renderReview(width))
	}
	s := v.styles
	c := v.council

	summary := s.kv(16,
		[2]string{"Trust Score", fmt.Sprintf("%.1f", c.TrustScore)},
		[2]string{"CDM Adoption", fmt.Sprintf("%.1f%%", c.CdmAdoption)},
		[2]string{"Next Meeting", c.NextMeeting},
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Header.Render(emoji.GetEmoji("council")+" Governance Council"),
		s.Muted.Width(max(20, width-2)).Render("Focus: "+c.Focus),
		"",
		summary,
		"",
		s.section("Proposed Entities", v.proposals.Render()),
		"",
		s.section(emoji.GetEmoji("heatmap")+" Domain Health", v.renderHeatmap(width)),
		"",
		s.section(emoji.GetEmoji("policy")+" Policies", v.policyTbl.Render()),
		s.Info.Render("[c] "+emoji.GetEmoji("charter")+" Read the Governance Charter"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			v.renderMembers(),
			"    ",
			v.renderConflicts(),
			"    ",
			v.renderMinutes(),
		),
	)
}

func (v *councilView) renderHeatmap(width int) string {
	s := v.styles
	tileWidth := 18
	perRow := max(1, width/(tileWidth+2))

	tiles := make([]string, 0, len(v.council.Health))
	for _, h := range v.council.Health {
		color := s.Theme.StatusColor(h.Status)
		lead := h.Lead
		if lead == "Unassigned" {
			lead = emoji.GetEmoji("unassigned") + " " + lead
		}
		tiles = append(tiles, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color).
			Width(tileWidth).
			Padding(0, 1).
			Render(lipgloss.JoinVertical(lipgloss.Left,
				s.Body.Bold(true).Render(h.Domain),
				lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%s %d", h.Status, h.Score)),
				s.Muted.Render(lead),
			)))
	}

	var rows []string
	for i := 0; i < len(tiles); i += perRow {
		end := min(i+perRow, len(tiles))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (v *councilView) renderMembers() string {
	lines := make([]string, 0, len(v.council.Members))
	for _, m := range v.council.Members {
		lines = append(lines, v.styles.Body.Render(m.Name)+" "+v.styles.Muted.Render(m.Role))
	}
	return v.styles.section("Members", lines...)
}

func (v *councilView) renderConflicts() string {
	lines := make([]string, 0, len(v.council.Conflicts))
	for _, c := range v.council.Conflicts {
		lines = append(lines,
			v.styles.Warning.Render(c.Term),
			v.styles.Muted.Render(strings.Join(c.Positions, " vs ")),
		)
	}
	return v.styles.section(emoji.GetEmoji("conflict")+" Definition Conflicts", lines...)
}

func (v *councilView) renderMinutes() string {
	lines := make([]string, 0, len(v.council.Minutes))
	for _, m := range v.council.Minutes {
		lines = append(lines, v.styles.Muted.Render(m.Date)+" "+v.styles.Body.Render(m.Title))
	}
	return v.styles.section(emoji.GetEmoji("minutes")+" Minutes", lines...)
}

func (v *councilView) renderReview(width int) string {
	s := v.styles
	p := v.reviewing

	gap := s.Success.Render("Mapped to existing sources")
	if p.TechnicalGap {
		gap = s.Warning.Render(emoji.GetEmoji("gap") + " Technical gap: no source system mapping yet")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		s.Header.Render("Review: "+p.Name),
		s.Muted.Render(fmt.Sprintf("%s · proposed by %s (%s)", p.ID, p.ProposedBy, p.Department)),
		"",
		s.Body.Width(min(60, max(20, width-10))).Render(p.Definition),
		"",
		s.Subheader.Render("Attributes"),
		s.Info.Render(strings.Join(p.Attributes, ", ")),
		"",
		gap,
		"",
		s.Success.Render("[y] Approve")+"   "+s.Warning.Render("[r] Request Revision")+"   "+s.Muted.Render("[esc] Close"),
	)
	return s.Overlay.Render(body)
}
