package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/datagov/internal/catalog"
	"github.com/yildizm/datagov/internal/emoji"
	"github.com/yildizm/datagov/internal/monitor"
	"github.com/yildizm/datagov/internal/ui/components"
)

const (
	noObjectsMessage = "No objects found matching your criteria."
	noDomainsMessage = "No domains found matching your criteria."
)

// filterView is a list with a live filter box. Rows are recomputed on
// every keystroke from the full fixture set, never from the previous
// result.
type filterView struct {
	title    string
	input    textinput.Model
	list     *components.List
	styles   *Styles
	metrics  *monitor.Collector
	rows     func(query string) []components.ListItem
	onSelect func(id string) tea.Msg
}

func newFilterView(env viewEnv, title, placeholder, empty string, headers []string) *filterView {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = emoji.GetEmoji("search") + " "
	ti.CharLimit = 64
	ti.Focus()

	list := components.NewList("", headers...)
	list.Empty = empty
	list.Focused = true
	list.Palette = env.styles.palette()

	return &filterView{
		title:   title,
		input:   ti,
		list:    list,
		styles:  env.styles,
		metrics: env.metrics,
	}
}

func (v *filterView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *filterView) CapturesText() bool {
	return true
}

func (v *filterView) Teardown() {}

func (v *filterView) Keys() []key.Binding {
	return []key.Binding{listKeys.Up, listKeys.Down, keys.Select, keys.Back, keys.FocusSidebar}
}

// Query is the current filter text
func (v *filterView) Query() string {
	return v.input.Value()
}

func (v *filterView) refilter() {
	if v.metrics == nil {
		v.list.SetItems(v.rows(v.input.Value()))
		return
	}
	v.metrics.TrackOperation(monitor.OperationFilter, func() {
		v.list.SetItems(v.rows(v.input.Value()))
	})
}

func (v *filterView) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, listKeys.Up):
			v.list.MoveUp()
			return nil
		case key.Matches(msg, listKeys.Down):
			v.list.MoveDown()
			return nil
		case key.Matches(msg, keys.Select):
			if item := v.list.GetSelectedItem(); item != nil {
				return emit(v.onSelect(item.ID))
			}
			return nil
		case key.Matches(msg, keys.Back):
			if v.input.Value() != "" {
				v.input.SetValue("")
				v.refilter()
				return nil
			}
			return emit(backMsg{})
		}
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() != before {
		v.refilter()
	}
	return cmd
}

func (v *filterView) Render(width, height int) string {
	v.input.Width = max(10, min(50, width-6))
	v.list.SetSize(width, max(3, height-6))

	count := v.styles.Muted.Render(fmt.Sprintf("%d shown", len(v.list.Items)))
	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Header.Render(v.title),
		"",
		v.styles.Box.Render(v.input.View()),
		count,
		"",
		v.list.Render(),
	)
}

// cdmListView is the CDM object registry
type cdmListView struct {
	*filterView
}

func newCdmListView(env viewEnv) *cdmListView {
	v := newFilterView(env,
		emoji.GetEmoji("cdm")+" CDM Registry",
		"Filter by object name or domain",
		noObjectsMessage,
		[]string{"NAME", "DOMAIN", "CERT", "PII", "FREQUENCY", "STEWARD"},
	)
	objects := env.catalog.Objects
	v.rows = func(query string) []components.ListItem {
		matched := catalog.FilterObjects(objects, query)
		items := make([]components.ListItem, 0, len(matched))
		for _, o := range matched {
			items = append(items, components.ListItem{
				ID:      o.ID,
				Columns: []string{o.Name, o.Domain, string(o.Certification), o.PII, o.Frequency, o.Steward.Name},
			})
		}
		return items
	}
	v.onSelect = func(id string) tea.Msg { return selectObjectMsg{id: id} }
	v.refilter()
	return &cdmListView{v}
}

// domainListView lists business domains and their stewards
type domainListView struct {
	*filterView
}

func newDomainListView(env viewEnv) *domainListView {
	v := newFilterView(env,
		emoji.GetEmoji("domain")+" Domains",
		"Filter by domain or steward",
		noDomainsMessage,
		[]string{"DOMAIN", "STEWARD", "DATASETS", "CDM", "ISSUES", "QUALITY"},
	)
	domains := env.catalog.Domains
	v.rows = func(query string) []components.ListItem {
		matched := catalog.FilterDomains(domains, query)
		items := make([]components.ListItem, 0, len(matched))
		for _, d := range matched {
			status := ""
			if d.Issues >= 5 {
				status = "warning"
			}
			items = append(items, components.ListItem{
				ID: d.ID,
				Columns: []string{
					d.Name,
					d.Steward.Name,
					strconv.Itoa(d.Datasets),
					strconv.Itoa(d.CdmObjects),
					strconv.Itoa(d.Issues),
					strconv.Itoa(d.Quality) + "%",
				},
				Status: status,
			})
		}
		return items
	}
	v.onSelect = func(id string) tea.Msg { return selectDomainMsg{id: id} }
	v.refilter()
	return &domainListView{v}
}
