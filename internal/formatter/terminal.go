package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/go-termfmt"

	"github.com/yildizm/datagov/internal/catalog"
	"github.com/yildizm/datagov/internal/emoji"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = !emoji.IsEmojiDisabled()
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) FormatObjects(objects []catalog.DataObject) ([]byte, error) {
	var b strings.Builder
	f.writeHeader(&b, "CDM Objects")

	if len(objects) == 0 {
		b.WriteString("No objects found matching your criteria.\n")
		return []byte(b.String()), nil
	}

	items := make([]termfmt.TreeItem, 0, len(objects))
	for i, o := range objects {
		items = append(items, termfmt.TreeItem{
			Label: fmt.Sprintf("%s %s", certificationIcon(o.Certification), o.Name),
			Value: o.ID,
			Children: []termfmt.TreeItem{
				{Label: "Domain", Value: o.Domain},
				{Label: "PII", Value: o.PII},
				{Label: "Frequency", Value: o.Frequency},
				{Label: "Steward", Value: o.Steward.Name, Last: true},
			},
			Last: i == len(objects)-1,
		})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
	fmt.Fprintf(&b, "%d objects\n", len(objects))
	return []byte(b.String()), nil
}

func (f *terminalFormatter) FormatObject(o catalog.DataObject) ([]byte, error) {
	var b strings.Builder
	f.writeHeader(&b, o.Name)
	if o.Description != "" {
		b.WriteString(o.Description + "\n\n")
	}

	b.WriteString(emoji.GetEmoji("cdm") + " Context\n")
	context := []termfmt.TreeItem{
		{Label: "ID", Value: o.ID},
		{Label: "Domain", Value: o.Domain},
		{Label: "Certification", Value: string(o.Certification)},
		{Label: "PII", Value: o.PII},
		{Label: "Frequency", Value: o.Frequency},
		{Label: "Classification", Value: o.Classification},
		{Label: "SLA", Value: orDash(o.SLA)},
		{Label: "Steward", Value: stewardLine(o.Steward), Last: o.Quality <= 0},
	}
	if o.Quality > 0 {
		context = append(context, termfmt.TreeItem{
			Label: "Quality",
			Value: f.qualityBar(o.Quality),
			Last:  true,
		})
	}
	b.WriteString(termfmt.TreeViewWithOptions(context, f.opts) + "\n\n")

	if len(o.Schema) > 0 {
		b.WriteString(emoji.GetEmoji("search") + " Technical Schema\n")
		fields := make([]termfmt.TreeItem, 0, len(o.Schema))
		for i, field := range o.Schema {
			fields = append(fields, termfmt.TreeItem{
				Label: field.Name,
				Value: fmt.Sprintf("%s <- %s", field.Type, field.Source),
				Last:  i == len(o.Schema)-1,
			})
		}
		b.WriteString(termfmt.TreeViewWithOptions(fields, f.opts) + "\n\n")
	}

	if len(o.Lineage) > 0 {
		b.WriteString(emoji.GetEmoji("lineage") + " Lineage\n")
		for i, stage := range o.Lineage {
			if i > 0 {
				b.WriteString("   │\n   ▼\n")
			}
			fmt.Fprintf(&b, "[%s] %s\n", stage.Kind, stage.Label)
			for _, item := range stage.Items {
				b.WriteString("    • " + item + "\n")
			}
		}
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}

func (f *terminalFormatter) FormatDomains(domains []catalog.Domain) ([]byte, error) {
	var b strings.Builder
	f.writeHeader(&b, "Domains")

	if len(domains) == 0 {
		b.WriteString("No domains found matching your criteria.\n")
		return []byte(b.String()), nil
	}

	items := make([]termfmt.TreeItem, 0, len(domains))
	for i, d := range domains {
		items = append(items, termfmt.TreeItem{
			Label: fmt.Sprintf("%s %s", emoji.GetEmoji("domain"), d.Name),
			Value: d.ID,
			Children: []termfmt.TreeItem{
				{Label: "Steward", Value: d.Steward.Name},
				{Label: "Datasets", Value: formatNumber(d.Datasets)},
				{Label: "Issues", Value: formatNumber(d.Issues)},
				{Label: "Quality", Value: percent(d.Quality), Last: true},
			},
			Last: i == len(domains)-1,
		})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
	fmt.Fprintf(&b, "%d domains\n", len(domains))
	return []byte(b.String()), nil
}

func (f *terminalFormatter) FormatDomain(d catalog.Domain) ([]byte, error) {
	var b strings.Builder
	f.writeHeader(&b, d.Name)
	if d.Description != "" {
		b.WriteString(d.Description + "\n\n")
	}

	summary := []termfmt.TreeItem{
		{Label: "Steward", Value: stewardLine(d.Steward)},
		{Label: "Datasets", Value: formatNumber(d.Datasets)},
		{Label: "CDM Objects", Value: formatNumber(d.CdmObjects)},
		{Label: "Open Issues", Value: formatNumber(d.Issues)},
		{Label: "Quality", Value: f.qualityBar(d.Quality), Last: true},
	}
	b.WriteString(termfmt.TreeViewWithOptions(summary, f.opts) + "\n\n")

	if len(d.Assets) > 0 {
		b.WriteString(emoji.GetEmoji("cdm") + " Assets\n")
		assets := make([]termfmt.TreeItem, 0, len(d.Assets))
		for i, a := range d.Assets {
			assets = append(assets, termfmt.TreeItem{
				Label: fmt.Sprintf("%s (%s)", a.Name, a.Type),
				Value: fmt.Sprintf("%s, %s", a.System, a.Status),
				Last:  i == len(d.Assets)-1,
			})
		}
		b.WriteString(termfmt.TreeViewWithOptions(assets, f.opts) + "\n\n")
	}

	if len(d.Tickets) > 0 {
		b.WriteString(emoji.GetEmoji("ticket") + " Open Issues\n")
		for _, t := range d.Tickets {
			fmt.Fprintf(&b, "• %s %s [%s, %s]\n", t.ID, t.Title, t.Status, t.Priority)
		}
		b.WriteString("\n")
	}

	if len(d.Requests) > 0 {
		b.WriteString(emoji.GetEmoji("activity") + " Prioritized Requests\n")
		for _, r := range d.Requests {
			fmt.Fprintf(&b, "%d. %s %s (%s)\n", r.Priority, r.ID, r.Title, r.Status)
		}
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}

func (f *terminalFormatter) FormatPolicies(policies []catalog.Policy) ([]byte, error) {
	var b strings.Builder
	f.writeHeader(&b, "Policies")

	items := make([]termfmt.TreeItem, 0, len(policies))
	for i, p := range policies {
		items = append(items, termfmt.TreeItem{
			Label: fmt.Sprintf("%s %s", emoji.GetEmoji("policy"), p.Name),
			Value: p.ID,
			Children: []termfmt.TreeItem{
				{Label: "Status", Value: p.Status},
				{Label: "Last Audit", Value: p.LastAudit},
				{Label: "Owner", Value: p.Owner, Last: true},
			},
			Last: i == len(policies)-1,
		})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n")
	return []byte(b.String()), nil
}

func (f *terminalFormatter) FormatPolicy(p catalog.Policy) ([]byte, error) {
	var b strings.Builder
	f.writeHeader(&b, p.Name)

	meta := []termfmt.TreeItem{
		{Label: "ID", Value: p.ID},
		{Label: "Status", Value: p.Status},
		{Label: "Last Audit", Value: p.LastAudit},
		{Label: "Owner", Value: p.Owner},
		{Label: "Retention", Value: p.Retention, Last: true},
	}
	b.WriteString(termfmt.TreeViewWithOptions(meta, f.opts) + "\n\n")
	if p.Description != "" {
		b.WriteString(p.Description + "\n\n")
	}

	if len(p.Rules) > 0 {
		b.WriteString(emoji.GetEmoji("settings") + " Rules\n")
		rules := make([]termfmt.TreeItem, 0, len(p.Rules))
		for i, r := range p.Rules {
			rules = append(rules, termfmt.TreeItem{
				Label:    r.Name,
				Value:    r.Value,
				Children: []termfmt.TreeItem{{Label: r.Description, Last: true}},
				Last:     i == len(p.Rules)-1,
			})
		}
		b.WriteString(termfmt.TreeViewWithOptions(rules, f.opts) + "\n")
	}
	return []byte(b.String()), nil
}

// writeHeader writes a title box
func (f *terminalFormatter) writeHeader(b *strings.Builder, title string) {
	width := len([]rune(title))

	b.WriteString("╔" + strings.Repeat("═", width+2) + "╗\n")
	b.WriteString("║ " + title + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", width+2) + "╝\n\n")
}

func (f *terminalFormatter) qualityBar(score int) string {
	if score <= 0 {
		return "-"
	}
	return fmt.Sprintf("%s %d%%", termfmt.CreateConfidenceBar(float64(score)/100, f.opts), score)
}

func certificationIcon(c catalog.Certification) string {
	switch c {
	case catalog.CertGold:
		return emoji.GetEmoji("gold")
	case catalog.CertSilver:
		return emoji.GetEmoji("silver")
	case catalog.CertBronze:
		return emoji.GetEmoji("bronze")
	default:
		return emoji.GetEmoji("cdm")
	}
}
