package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/datagov/internal/catalog"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) FormatObjects(objects []catalog.DataObject) ([]byte, error) {
	var b strings.Builder
	b.WriteString("# CDM Objects\n\n")
	if len(objects) == 0 {
		b.WriteString("_No objects found matching your criteria._\n")
		return []byte(b.String()), nil
	}

	writeTable(&b, []string{"ID", "Name", "Domain", "Certification", "PII", "Frequency", "Steward"},
		func(row func(...string)) {
			for _, o := range objects {
				row(o.ID, o.Name, o.Domain, string(o.Certification), o.PII, o.Frequency, o.Steward.Name)
			}
		})
	fmt.Fprintf(&b, "\n%d objects\n", len(objects))
	return []byte(b.String()), nil
}

func (f *markdownFormatter) FormatObject(o catalog.DataObject) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", o.Name)
	if o.Description != "" {
		b.WriteString(o.Description + "\n\n")
	}

	b.WriteString("## Context\n\n")
	writeTable(&b, []string{"Attribute", "Value"}, func(row func(...string)) {
		row("ID", o.ID)
		row("Domain", o.Domain)
		row("Certification", string(o.Certification))
		row("PII", o.PII)
		row("Frequency", o.Frequency)
		row("Classification", o.Classification)
		row("SLA", orDash(o.SLA))
		row("Steward", stewardLine(o.Steward))
		row("Quality", percent(o.Quality))
	})

	if len(o.Schema) > 0 {
		b.WriteString("\n## Technical Schema\n\n")
		writeTable(&b, []string{"Field", "Type", "Source", "Description"}, func(row func(...string)) {
			for _, field := range o.Schema {
				row("`"+field.Name+"`", field.Type, "`"+field.Source+"`", field.Description)
			}
		})
	}

	if len(o.Lineage) > 0 {
		b.WriteString("\n## Lineage\n\n")
		for i, stage := range o.Lineage {
			fmt.Fprintf(&b, "%d. **%s** (%s)", i+1, stage.Label, stage.Kind)
			if len(stage.Items) > 0 {
				b.WriteString(": " + strings.Join(stage.Items, ", "))
			}
			b.WriteString("\n")
		}
	}

	if o.Sample != "" {
		b.WriteString("\n## Sample Data\n\n```json\n" + strings.TrimSpace(o.Sample) + "\n```\n")
	}
	return []byte(b.String()), nil
}

func (f *markdownFormatter) FormatDomains(domains []catalog.Domain) ([]byte, error) {
	var b strings.Builder
	b.WriteString("# Domains\n\n")
	if len(domains) == 0 {
		b.WriteString("_No domains found matching your criteria._\n")
		return []byte(b.String()), nil
	}

	writeTable(&b, []string{"ID", "Name", "Steward", "Datasets", "CDM Objects", "Issues", "Quality"},
		func(row func(...string)) {
			for _, d := range domains {
				row(d.ID, d.Name, d.Steward.Name, formatNumber(d.Datasets),
					formatNumber(d.CdmObjects), formatNumber(d.Issues), percent(d.Quality))
			}
		})
	fmt.Fprintf(&b, "\n%d domains\n", len(domains))
	return []byte(b.String()), nil
}

func (f *markdownFormatter) FormatDomain(d catalog.Domain) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Name)
	if d.Description != "" {
		b.WriteString(d.Description + "\n\n")
	}
	fmt.Fprintf(&b, "- **Steward:** %s\n", stewardLine(d.Steward))
	fmt.Fprintf(&b, "- **Datasets:** %s\n- **CDM Objects:** %s\n- **Open Issues:** %s\n- **Quality:** %s\n",
		formatNumber(d.Datasets), formatNumber(d.CdmObjects), formatNumber(d.Issues), percent(d.Quality))

	b.WriteString("\n## Assets\n\n")
	if len(d.Assets) == 0 {
		b.WriteString("_No assets registered._\n")
	} else {
		writeTable(&b, []string{"ID", "Name", "Type", "System", "Status"}, func(row func(...string)) {
			for _, a := range d.Assets {
				row(a.ID, a.Name, a.Type, a.System, a.Status)
			}
		})
	}

	b.WriteString("\n## Open Issues\n\n")
	if len(d.Tickets) == 0 {
		b.WriteString("_No open issues._\n")
	} else {
		writeTable(&b, []string{"ID", "Title", "Requester", "SLA", "Status", "Priority", "Opened"}, func(row func(...string)) {
			for _, t := range d.Tickets {
				row(t.ID, t.Title, t.Requester, t.SLA, t.Status, t.Priority, t.Opened)
			}
		})
	}

	b.WriteString("\n## Prioritized Requests\n\n")
	if len(d.Requests) == 0 {
		b.WriteString("_No prioritized requests._\n")
	} else {
		writeTable(&b, []string{"Priority", "ID", "Title", "Owner", "Status"}, func(row func(...string)) {
			for _, r := range d.Requests {
				row(fmt.Sprintf("%d", r.Priority), r.ID, r.Title, r.Owner, r.Status)
			}
		})
	}
	return []byte(b.String()), nil
}

func (f *markdownFormatter) FormatPolicies(policies []catalog.Policy) ([]byte, error) {
	var b strings.Builder
	b.WriteString("# Policies\n\n")
	writeTable(&b, []string{"ID", "Name", "Status", "Last Audit", "Owner", "Retention"}, func(row func(...string)) {
		for _, p := range policies {
			row(p.ID, p.Name, p.Status, p.LastAudit, p.Owner, p.Retention)
		}
	})
	return []byte(b.String()), nil
}

func (f *markdownFormatter) FormatPolicy(p catalog.Policy) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	fmt.Fprintf(&b, "- **ID:** %s\n- **Status:** %s\n- **Last Audit:** %s\n- **Owner:** %s\n- **Retention:** %s\n\n",
		p.ID, p.Status, p.LastAudit, p.Owner, p.Retention)
	if p.Description != "" {
		b.WriteString(p.Description + "\n\n")
	}
	b.WriteString("## Rules\n\n")
	writeTable(&b, []string{"Rule", "Value", "Description"}, func(row func(...string)) {
		for _, r := range p.Rules {
			row(r.Name, r.Value, r.Description)
		}
	})
	return []byte(b.String()), nil
}

// writeTable writes a GitHub-flavoured table; rows are fed through the callback
func writeTable(b *strings.Builder, headers []string, rows func(row func(...string))) {
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")
	rows(func(cells ...string) {
		escaped := make([]string, len(cells))
		for i, c := range cells {
			escaped[i] = strings.ReplaceAll(orDash(c), "|", `\|`)
		}
		b.WriteString("| " + strings.Join(escaped, " | ") + " |\n")
	})
}

func stewardLine(s catalog.Steward) string {
	parts := []string{s.Name}
	if s.Department != "" {
		parts = append(parts, s.Department)
	}
	if s.Email != "" {
		parts = append(parts, s.Email)
	}
	return strings.Join(parts, ", ")
}
