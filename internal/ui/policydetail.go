package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/datagov/internal/catalog"
	"github.com/yildizm/datagov/internal/emoji"
)

// policyDetailView renders one governance policy. Unknown ids show a
// not-found panel rather than another policy.
type policyDetailView struct {
	staticView
	id     string
	policy catalog.Policy
	found  bool
	styles *Styles
}

func newPolicyDetailView(env viewEnv, id string) *policyDetailView {
	p, found := env.catalog.Policy(id)
	return &policyDetailView{id: id, policy: p, found: found, styles: env.styles}
}

func (v *policyDetailView) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, keys.Back) {
		return emit(backMsg{})
	}
	return nil
}

func (v *policyDetailView) Render(width, height int) string {
	s := v.styles
	if !v.found {
		return s.notFound("Policy not found", fmt.Sprintf("No policy is registered under %q.", v.id))
	}
	p := v.policy

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		s.Header.Render(emoji.GetEmoji("policy")+" "+p.Name),
		"  ",
		s.Status(p.Status),
	)
	meta := s.kv(14,
		[2]string{"Owner", p.Owner},
		[2]string{"Retention", p.Retention},
		[2]string{"Last Audit", p.LastAudit},
	)

	rules := make([]string, 0, len(p.Rules))
	ruleWidth := max(20, width-4)
	for _, r := range p.Rules {
		rules = append(rules, s.Box.Width(ruleWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
			s.Body.Bold(true).Render(r.Name)+"  "+s.Info.Render(r.Value),
			s.Muted.Render(r.Description),
		)))
	}
	if len(rules) == 0 {
		rules = append(rules, s.Muted.Render("No rules defined."))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		s.Muted.Render(p.ID),
		"",
		s.Body.Width(max(20, width-2)).Render(p.Description),
		"",
		meta,
		"",
		s.section("Enforced Rules", rules...),
	)
}
