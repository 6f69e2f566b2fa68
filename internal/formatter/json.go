package formatter

import (
	"encoding/json"

	"github.com/yildizm/datagov/internal/catalog"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// ObjectListOutput wraps a filtered object listing
type ObjectListOutput struct {
	Count   int                  `json:"count"`
	Objects []catalog.DataObject `json:"objects"`
}

// DomainListOutput wraps a filtered domain listing
type DomainListOutput struct {
	Count   int              `json:"count"`
	Domains []catalog.Domain `json:"domains"`
}

// PolicyListOutput wraps the policy listing
type PolicyListOutput struct {
	Count    int              `json:"count"`
	Policies []catalog.Policy `json:"policies"`
}

func (f *jsonFormatter) FormatObjects(objects []catalog.DataObject) ([]byte, error) {
	if objects == nil {
		objects = []catalog.DataObject{}
	}
	return marshal(ObjectListOutput{Count: len(objects), Objects: objects})
}

func (f *jsonFormatter) FormatObject(object catalog.DataObject) ([]byte, error) {
	return marshal(object)
}

func (f *jsonFormatter) FormatDomains(domains []catalog.Domain) ([]byte, error) {
	if domains == nil {
		domains = []catalog.Domain{}
	}
	return marshal(DomainListOutput{Count: len(domains), Domains: domains})
}

func (f *jsonFormatter) FormatDomain(domain catalog.Domain) ([]byte, error) {
	return marshal(domain)
}

func (f *jsonFormatter) FormatPolicies(policies []catalog.Policy) ([]byte, error) {
	if policies == nil {
		policies = []catalog.Policy{}
	}
	return marshal(PolicyListOutput{Count: len(policies), Policies: policies})
}

func (f *jsonFormatter) FormatPolicy(policy catalog.Policy) ([]byte, error) {
	return marshal(policy)
}

func marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
