package formatter

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/yildizm/datagov/internal/catalog"
	"github.com/yildizm/datagov/internal/emoji"
)

func fixtures(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error = %v", err)
	}
	return c
}

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"terminal", false},
		{"", false},
		{"JSON", false},
		{"csv", false},
		{"markdown", false},
		{"md", false},
		{"yaml", true},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f, err := New(tt.format, false)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if !tt.wantErr && f == nil {
				t.Fatalf("New(%q) returned nil formatter", tt.format)
			}
		})
	}
}

func TestJSONObjects(t *testing.T) {
	c := fixtures(t)
	data, err := NewJSON().FormatObjects(catalog.FilterObjects(c.Objects, "operations"))
	if err != nil {
		t.Fatal(err)
	}

	var out ObjectListOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Count != 2 || len(out.Objects) != 2 {
		t.Errorf("count = %d, objects = %d; want 2", out.Count, len(out.Objects))
	}
}

func TestJSONEmptyListIsArray(t *testing.T) {
	data, err := NewJSON().FormatDomains(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"domains": []`) {
		t.Errorf("empty listing should encode as an array:\n%s", data)
	}
}

func TestCSVObjectSchema(t *testing.T) {
	c := fixtures(t)
	obj, _ := c.Object("cdm-001")

	data, err := NewCSV().FormatObject(obj)
	if err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != len(obj.Schema)+1 {
		t.Fatalf("got %d records, want header + %d fields", len(records), len(obj.Schema))
	}
	if records[1][0] != "cdm-001" || records[1][3] != obj.Schema[0].Source {
		t.Errorf("unexpected first row %v", records[1])
	}
}

func TestCSVDomains(t *testing.T) {
	c := fixtures(t)
	data, err := NewCSV().FormatDomains(c.Domains)
	if err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != len(c.Domains)+1 {
		t.Errorf("got %d records, want %d", len(records), len(c.Domains)+1)
	}
}

func TestMarkdownDomain(t *testing.T) {
	c := fixtures(t)
	d, _ := c.Domain("dom-01")

	data, err := NewMarkdown().FormatDomain(d)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{"# " + d.Name, "## Assets", "## Open Issues", "SR-57159", "## Prioritized Requests", "PR-102"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestMarkdownEscapesPipes(t *testing.T) {
	var b strings.Builder
	writeTable(&b, []string{"A"}, func(row func(...string)) { row("x|y") })
	if !strings.Contains(b.String(), `x\|y`) {
		t.Errorf("pipe not escaped: %q", b.String())
	}
}

func TestTerminalObjects(t *testing.T) {
	emoji.SetEmojiDisabled(true)
	defer emoji.SetEmojiDisabled(false)

	c := fixtures(t)
	data, err := NewTerminal(false).FormatObjects(c.Objects)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "CDM_Sales_Order_Header") || !strings.Contains(out, "cdm-001") {
		t.Errorf("object listing missing first object:\n%s", out)
	}
	if !strings.Contains(out, "6 objects") {
		t.Errorf("object listing missing count:\n%s", out)
	}

	data, err = NewTerminal(false).FormatObjects(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "No objects found matching your criteria.") {
		t.Errorf("empty listing missing message:\n%s", data)
	}
}

func TestTerminalPolicy(t *testing.T) {
	c := fixtures(t)
	p := c.Policies[0]

	data, err := NewTerminal(false).FormatPolicy(p)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "║ "+p.Name+" ║") {
		t.Errorf("missing header box:\n%s", out)
	}
	for _, r := range p.Rules {
		if !strings.Contains(out, r.Name) {
			t.Errorf("missing rule %q", r.Name)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int]string{0: "0", 999: "999", 1000: "1,000", 1234567: "1,234,567"}
	for n, want := range tests {
		if got := formatNumber(n); got != want {
			t.Errorf("formatNumber(%d) = %q, want %q", n, got, want)
		}
	}
}
