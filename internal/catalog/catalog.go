// Package catalog holds the read-only governance fixtures shown by the dashboard.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var builtinCatalog []byte

//go:embed data/charter.md
var builtinCharter string

// BuiltinSource names the embedded catalog in logs and status lines
const BuiltinSource = "built-in"

// Catalog is the complete fixture set. It is never mutated after Parse returns;
// a reload produces a new value.
type Catalog struct {
	Objects   []DataObject `yaml:"objects" json:"objects"`
	Domains   []Domain     `yaml:"domains" json:"domains"`
	Policies  []Policy     `yaml:"policies" json:"policies"`
	Council   Council      `yaml:"council" json:"council"`
	Dashboard Dashboard    `yaml:"dashboard" json:"dashboard"`
	Admin     Admin        `yaml:"admin" json:"admin"`
	Charter   string       `yaml:"charter,omitempty" json:"charter,omitempty"`

	Source string `yaml:"-" json:"-"`
}

// Default returns the embedded catalog
func Default() (*Catalog, error) {
	return Parse(builtinCatalog, BuiltinSource)
}

// Load reads the catalog at path, or the embedded one when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	if err := validateCatalogPath(path); err != nil {
		return nil, fmt.Errorf("invalid catalog path: %w", err)
	}
	// #nosec G304 - path is validated above
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a catalog document
func Parse(data []byte, source string) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", source, err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", source, err)
	}
	if strings.TrimSpace(c.Charter) == "" {
		c.Charter = builtinCharter
	}
	c.Source = source
	return &c, nil
}

func (c *Catalog) validate() error {
	if err := uniqueIDs("object", len(c.Objects), func(i int) string { return c.Objects[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("domain", len(c.Domains), func(i int) string { return c.Domains[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("policy", len(c.Policies), func(i int) string { return c.Policies[i].ID }); err != nil {
		return err
	}
	return uniqueIDs("proposal", len(c.Council.Proposals), func(i int) string { return c.Council.Proposals[i].ID })
}

func uniqueIDs(kind string, n int, id func(int) string) error {
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if v == "" {
			return fmt.Errorf("%s at index %d has no id", kind, i)
		}
		if seen[v] {
			return fmt.Errorf("duplicate %s id %q", kind, v)
		}
		seen[v] = true
	}
	return nil
}

// Object looks up a CDM object by id
func (c *Catalog) Object(id string) (DataObject, bool) {
	for _, o := range c.Objects {
		if o.ID == id {
			return o, true
		}
	}
	return DataObject{}, false
}

// Domain looks up a domain by id
func (c *Catalog) Domain(id string) (Domain, bool) {
	for _, d := range c.Domains {
		if d.ID == id {
			return d, true
		}
	}
	return Domain{}, false
}

// Policy looks up a policy by id
func (c *Catalog) Policy(id string) (Policy, bool) {
	for _, p := range c.Policies {
		if p.ID == id {
			return p, true
		}
	}
	return Policy{}, false
}

// Proposal looks up a council proposal by id
func (c *Catalog) Proposal(id string) (ProposedEntity, bool) {
	for _, p := range c.Council.Proposals {
		if p.ID == id {
			return p, true
		}
	}
	return ProposedEntity{}, false
}

// WithActivity returns a copy whose dashboard activity is replaced.
// The receiver is left untouched.
func (c *Catalog) WithActivity(activity []Activity) *Catalog {
	cp := *c
	cp.Dashboard.Activity = append([]Activity(nil), activity...)
	return &cp
}

// validateCatalogPath checks that path names a YAML file. Clean folds
// inner ".." elements away; leading ones are ordinary relative paths.
func validateCatalogPath(path string) error {
	cleanPath := filepath.Clean(path)
	if path == "" || cleanPath == "." || cleanPath == ".." {
		return fmt.Errorf("catalog path is empty")
	}
	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("catalog file must have .yaml or .yml extension")
	}
	return nil
}

// Counts reports entity totals by kind for status lines and metrics
func (c *Catalog) Counts() map[string]int {
	return map[string]int{
		"objects":   len(c.Objects),
		"domains":   len(c.Domains),
		"policies":  len(c.Policies),
		"proposals": len(c.Council.Proposals),
	}
}
