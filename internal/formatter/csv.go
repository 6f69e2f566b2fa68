package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/yildizm/datagov/internal/catalog"
)

// csvFormatter writes one row per entity. Single-entity output lists the
// entity's children: schema fields, assets or rules.
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) FormatObjects(objects []catalog.DataObject) ([]byte, error) {
	rows := make([][]string, 0, len(objects))
	for _, o := range objects {
		rows = append(rows, []string{
			o.ID, o.Name, o.Domain, string(o.Certification), o.PII,
			o.Frequency, o.Classification, o.Steward.Name, strconv.Itoa(o.Quality),
		})
	}
	return writeCSV([]string{
		"ID", "Name", "Domain", "Certification", "PII",
		"Frequency", "Classification", "Steward", "Quality",
	}, rows)
}

func (f *csvFormatter) FormatObject(object catalog.DataObject) ([]byte, error) {
	rows := make([][]string, 0, len(object.Schema))
	for _, field := range object.Schema {
		rows = append(rows, []string{object.ID, field.Name, field.Type, field.Source, field.Description})
	}
	return writeCSV([]string{"Object ID", "Field", "Type", "Source", "Description"}, rows)
}

func (f *csvFormatter) FormatDomains(domains []catalog.Domain) ([]byte, error) {
	rows := make([][]string, 0, len(domains))
	for _, d := range domains {
		rows = append(rows, []string{
			d.ID, d.Name, d.Steward.Name, strconv.Itoa(d.Datasets),
			strconv.Itoa(d.CdmObjects), strconv.Itoa(d.Issues), strconv.Itoa(d.Quality),
		})
	}
	return writeCSV([]string{"ID", "Name", "Steward", "Datasets", "CDM Objects", "Issues", "Quality"}, rows)
}

func (f *csvFormatter) FormatDomain(domain catalog.Domain) ([]byte, error) {
	rows := make([][]string, 0, len(domain.Assets))
	for _, a := range domain.Assets {
		rows = append(rows, []string{domain.ID, a.ID, a.Name, a.Type, a.System, a.Status})
	}
	return writeCSV([]string{"Domain ID", "Asset ID", "Name", "Type", "System", "Status"}, rows)
}

func (f *csvFormatter) FormatPolicies(policies []catalog.Policy) ([]byte, error) {
	rows := make([][]string, 0, len(policies))
	for _, p := range policies {
		rows = append(rows, []string{p.ID, p.Name, p.Status, p.LastAudit, p.Owner, p.Retention})
	}
	return writeCSV([]string{"ID", "Name", "Status", "Last Audit", "Owner", "Retention"}, rows)
}

func (f *csvFormatter) FormatPolicy(policy catalog.Policy) ([]byte, error) {
	rows := make([][]string, 0, len(policy.Rules))
	for _, r := range policy.Rules {
		rows = append(rows, []string{policy.ID, r.Name, r.Value, r.Description})
	}
	return writeCSV([]string{"Policy ID", "Rule", "Value", "Description"}, rows)
}

func writeCSV(headers []string, rows [][]string) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write CSV record: %w", err)
	}
	return b.Bytes(), nil
}
