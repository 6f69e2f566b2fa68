package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/datagov/internal/assistant"
	"github.com/yildizm/datagov/internal/catalog"
	"github.com/yildizm/datagov/internal/emoji"
	"github.com/yildizm/datagov/internal/ui/components"
)

const (
	analyzeLabel  = "Analyze Health"
	thinkingLabel = "Thinking..."
)

// objectDetailView shows one CDM object and owns the "analyze health" ask.
//
// At most one ask is in flight. Each ask gets its own cancellable context
// and a generation number; a result is applied only when both the view
// instance and the generation still match. Teardown cancels the context.
type objectDetailView struct {
	instance uint64
	id       string
	obj      catalog.DataObject
	found    bool
	tabs     *components.Tabs
	styles   *Styles
	answerer Answerer
	spinner  spinner.Model

	pending bool
	closed  bool
	gen     uint64
	cancel  context.CancelFunc
	answer  string

	rendered      string
	renderedWidth int
}

func newObjectDetailView(env viewEnv, id string) *objectDetailView {
	obj, found := env.catalog.Object(id)

	tabs := components.NewTabs(
		[2]string{"context", "Context"},
		[2]string{"technical-schema", "Technical Schema"},
		[2]string{"lineage", "Lineage"},
		[2]string{"sample-data", "Sample Data"},
	)
	tabs.Palette = env.styles.palette()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = env.styles.Assistant

	return &objectDetailView{
		instance: env.instance,
		id:       id,
		obj:      obj,
		found:    found,
		tabs:     tabs,
		styles:   env.styles,
		answerer: env.answerer,
		spinner:  sp,
	}
}

func (v *objectDetailView) Init() tea.Cmd {
	return nil
}

func (v *objectDetailView) CapturesText() bool {
	return false
}

func (v *objectDetailView) Keys() []key.Binding {
	if !v.found {
		return []key.Binding{keys.Back}
	}
	return []key.Binding{keys.NextTab, keys.Ask, keys.Back}
}

// Pending reports whether an ask is in flight
func (v *objectDetailView) Pending() bool {
	return v.pending
}

// Answer is the last applied ask outcome
func (v *objectDetailView) Answer() string {
	return v.answer
}

func (v *objectDetailView) askLabel() string {
	if v.pending {
		return thinkingLabel
	}
	return analyzeLabel
}

// Teardown cancels any in-flight ask. Results that still arrive are dropped.
func (v *objectDetailView) Teardown() {
	v.closed = true
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.pending = false
}

func (v *objectDetailView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Back):
			return emit(backMsg{})
		case key.Matches(msg, keys.Ask):
			return v.startAsk()
		}
		if v.found {
			v.tabs.HandleKey(msg.String())
		}
		return nil

	case askResultMsg:
		v.applyResult(msg)
		return nil

	case spinner.TickMsg:
		if !v.pending {
			return nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return cmd
	}
	return nil
}

// startAsk launches the health question unless one is already running
func (v *objectDetailView) startAsk() tea.Cmd {
	if v.pending || v.closed || !v.found {
		return nil
	}
	v.gen++
	v.setAnswer("")

	if v.answerer == nil {
		v.setAnswer(assistant.FallbackAnswer)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	v.pending = true

	answerer := v.answerer
	instance, gen := v.instance, v.gen
	question := assistant.HealthQuestion
	askContext := assistant.BuildObjectContext(v.obj)

	ask := func() tea.Msg {
		return askResultMsg{
			instance: instance,
			gen:      gen,
			answer:   answerer.Answer(ctx, question, askContext),
		}
	}
	return tea.Batch(v.spinner.Tick, ask)
}

func (v *objectDetailView) applyResult(msg askResultMsg) {
	if v.closed || !v.pending || msg.instance != v.instance || msg.gen != v.gen {
		return
	}
	v.pending = false
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.setAnswer(msg.answer)
}

func (v *objectDetailView) setAnswer(answer string) {
	v.answer = answer
	v.rendered = ""
	v.renderedWidth = 0
}

func (v *objectDetailView) Render(width, height int) string {
	s := v.styles
	if !v.found {
		return s.notFound("Object not found", fmt.Sprintf("No CDM object is registered under %q.", v.id))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		s.Header.Render(emoji.GetEmoji("cdm")+" "+v.obj.Name),
		"  ",
		s.Certification(v.obj.Certification),
	)
	sub := s.Muted.Render(v.obj.Domain + " · " + v.obj.ID)

	var panel string
	switch v.tabs.Current() {
	case "technical-schema":
		panel = v.renderSchema(width)
	case "lineage":
		pipeline := components.NewPipeline(lineageStages(v.obj.Lineage), min(width, 72))
		pipeline.Palette = s.palette()
		panel = pipeline.Render()
	case "sample-data":
		panel = v.renderSample()
	default:
		panel = v.renderContext()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		sub,
		"",
		v.tabs.Render(),
		"",
		panel,
		"",
		v.renderAssistant(width),
	)
}

func (v *objectDetailView) renderContext() string {
	s := v.styles
	o := v.obj

	description := o.Description
	if description == "" {
		description = "No description provided."
	}

	steward := s.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.Subheader.Render(emoji.GetEmoji("steward")+" Data Steward"),
		s.Body.Bold(true).Render(o.Steward.Name),
		s.Muted.Render(o.Steward.Department),
		s.Info.Render(o.Steward.Email),
	))

	quality := "n/a"
	if o.Quality > 0 {
		quality = lipgloss.NewStyle().Foreground(s.Theme.QualityColor(o.Quality)).Render(strconv.Itoa(o.Quality) + "%")
	}

	attributes := s.kv(18,
		[2]string{"Certification", string(o.Certification)},
		[2]string{"PII Level", o.PII},
		[2]string{"Frequency", o.Frequency},
		[2]string{"Classification", o.Classification},
		[2]string{"SLA", orDash(o.SLA)},
		[2]string{"Quality Score", quality},
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		s.section("Business Context", s.Body.Render(description)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, steward, "  ", s.section("Attributes", attributes)),
	)
}

func (v *objectDetailView) renderSchema(width int) string {
	list := components.NewList("", "FIELD", "TYPE", "SOURCE", "DESCRIPTION")
	list.Empty = "No schema fields documented."
	list.Palette = v.styles.palette()
	list.SetSize(width, 20)
	items := make([]components.ListItem, 0, len(v.obj.Schema))
	for _, f := range v.obj.Schema {
		items = append(items, components.ListItem{
			ID:      f.Name,
			Columns: []string{f.Name, f.Type, f.Source, f.Description},
		})
	}
	list.SetItems(items)
	return list.Render()
}

func (v *objectDetailView) renderSample() string {
	if v.obj.Sample == "" {
		return v.styles.Muted.Italic(true).Render("No sample record available.")
	}
	return v.styles.Box.Render(v.styles.Body.Render(v.obj.Sample))
}

func (v *objectDetailView) renderAssistant(width int) string {
	s := v.styles
	control := s.Assistant.Render("[a] " + v.askLabel())
	if v.pending {
		control = v.spinner.View() + " " + s.Assistant.Render(thinkingLabel)
	}

	lines := []string{
		s.Subheader.Render(emoji.GetEmoji("assistant") + " AI Health Analysis"),
		control,
	}
	if v.answer != "" {
		if v.renderedWidth != width {
			v.rendered = components.RenderMarkdown(v.answer, width-4, markdownStyle())
			v.renderedWidth = width
		}
		lines = append(lines, "", v.rendered)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func lineageStages(stages []catalog.LineageStage) []components.Stage {
	out := make([]components.Stage, 0, len(stages))
	for _, st := range stages {
		out = append(out, components.Stage{Kind: st.Kind, Label: st.Label, Items: st.Items})
	}
	return out
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
