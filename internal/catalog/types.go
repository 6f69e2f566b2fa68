package catalog

// Certification is the display-only trust level of a CDM object
type Certification string

const (
	CertGold   Certification = "GOLD"
	CertSilver Certification = "SILVER"
	CertBronze Certification = "BRONZE"
)

// Steward is the named owner attached to a domain or object
type Steward struct {
	Name       string `yaml:"name" json:"name"`
	Email      string `yaml:"email,omitempty" json:"email,omitempty"`
	Department string `yaml:"department,omitempty" json:"department,omitempty"`
}

// SchemaField is one column of a CDM object with its source mapping
type SchemaField struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Source      string `yaml:"source" json:"source"`
	Description string `yaml:"description" json:"description"`
}

// LineageStage is one hop in an object's data flow
type LineageStage struct {
	Kind  string   `yaml:"kind" json:"kind"`
	Label string   `yaml:"label" json:"label"`
	Items []string `yaml:"items,omitempty" json:"items,omitempty"`
}

// DataObject is a Canonical Data Model registry entry
type DataObject struct {
	ID             string         `yaml:"id" json:"id"`
	Name           string         `yaml:"name" json:"name"`
	Domain         string         `yaml:"domain" json:"domain"`
	Certification  Certification  `yaml:"certification" json:"certification"`
	PII            string         `yaml:"pii" json:"pii"`
	Frequency      string         `yaml:"frequency" json:"frequency"`
	Classification string         `yaml:"classification" json:"classification"`
	SLA            string         `yaml:"sla,omitempty" json:"sla,omitempty"`
	Description    string         `yaml:"description,omitempty" json:"description,omitempty"`
	Steward        Steward        `yaml:"steward" json:"steward"`
	Quality        int            `yaml:"quality,omitempty" json:"quality,omitempty"`
	Schema         []SchemaField  `yaml:"schema,omitempty" json:"schema,omitempty"`
	Lineage        []LineageStage `yaml:"lineage,omitempty" json:"lineage,omitempty"`
	Sample         string         `yaml:"sample,omitempty" json:"sample,omitempty"`
}

// Ticket is a service request raised against a domain
type Ticket struct {
	ID        string `yaml:"id" json:"id"`
	Title     string `yaml:"title" json:"title"`
	Requester string `yaml:"requester" json:"requester"`
	SLA       string `yaml:"sla" json:"sla"`
	Status    string `yaml:"status" json:"status"`
	Priority  string `yaml:"priority" json:"priority"`
	Opened    string `yaml:"opened" json:"opened"`
}

// PrioritizedRequest is a ranked enhancement request for a domain
type PrioritizedRequest struct {
	ID       string `yaml:"id" json:"id"`
	Title    string `yaml:"title" json:"title"`
	Priority int    `yaml:"priority" json:"priority"`
	Owner    string `yaml:"owner" json:"owner"`
	Status   string `yaml:"status" json:"status"`
}

// Asset is anything registered under a domain. Only CDM assets can be opened.
type Asset struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Type   string `yaml:"type" json:"type"`
	System string `yaml:"system" json:"system"`
	Status string `yaml:"status" json:"status"`
}

// Selectable reports whether the asset drills down into an object detail
func (a Asset) Selectable() bool {
	return a.Type == "CDM"
}

// Domain is a business data domain with its steward and health counters
type Domain struct {
	ID          string               `yaml:"id" json:"id"`
	Name        string               `yaml:"name" json:"name"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	Steward     Steward              `yaml:"steward" json:"steward"`
	Datasets    int                  `yaml:"datasets" json:"datasets"`
	CdmObjects  int                  `yaml:"cdm_objects" json:"cdm_objects"`
	Issues      int                  `yaml:"issues" json:"issues"`
	Quality     int                  `yaml:"quality" json:"quality"`
	Assets      []Asset              `yaml:"assets,omitempty" json:"assets,omitempty"`
	Tickets     []Ticket             `yaml:"tickets,omitempty" json:"tickets,omitempty"`
	Requests    []PrioritizedRequest `yaml:"requests,omitempty" json:"requests,omitempty"`
}

// PolicyRule is one enforced setting of a policy
type PolicyRule struct {
	Name        string `yaml:"name" json:"name"`
	Value       string `yaml:"value" json:"value"`
	Description string `yaml:"description" json:"description"`
}

// Policy is a governance policy document
type Policy struct {
	ID          string       `yaml:"id" json:"id"`
	Name        string       `yaml:"name" json:"name"`
	Status      string       `yaml:"status" json:"status"`
	LastAudit   string       `yaml:"last_audit" json:"last_audit"`
	Owner       string       `yaml:"owner" json:"owner"`
	Retention   string       `yaml:"retention" json:"retention"`
	Description string       `yaml:"description" json:"description"`
	Rules       []PolicyRule `yaml:"rules" json:"rules"`
}

// EntityStatus is the council workflow state of a proposed entity
type EntityStatus string

const (
	EntityNew      EntityStatus = "New"
	EntityReview   EntityStatus = "Review"
	EntityApproved EntityStatus = "Approved"
	EntityRevision EntityStatus = "Revision"
)

// ProposedEntity is a CDM candidate awaiting council review
type ProposedEntity struct {
	ID           string       `yaml:"id" json:"id"`
	Name         string       `yaml:"name" json:"name"`
	ProposedBy   string       `yaml:"proposed_by" json:"proposed_by"`
	Department   string       `yaml:"department" json:"department"`
	Status       EntityStatus `yaml:"status" json:"status"`
	Definition   string       `yaml:"definition" json:"definition"`
	Attributes   []string     `yaml:"attributes" json:"attributes"`
	TechnicalGap bool         `yaml:"technical_gap" json:"technical_gap"`
}

// DomainHealth is one tile of the council heatmap
type DomainHealth struct {
	Domain string `yaml:"domain" json:"domain"`
	Status string `yaml:"status" json:"status"` // Healthy|Warning|Critical
	Score  int    `yaml:"score" json:"score"`
	Lead   string `yaml:"lead" json:"lead"`
}

// CouncilMember sits on the governance council
type CouncilMember struct {
	Name string `yaml:"name" json:"name"`
	Role string `yaml:"role" json:"role"`
}

// Minute is a recorded council decision
type Minute struct {
	Date    string `yaml:"date" json:"date"`
	Title   string `yaml:"title" json:"title"`
	Summary string `yaml:"summary" json:"summary"`
}

// Conflict is an open definition dispute between domains
type Conflict struct {
	Term      string   `yaml:"term" json:"term"`
	Positions []string `yaml:"positions" json:"positions"`
}

// Council groups everything shown on the governance council view
type Council struct {
	TrustScore  float64          `yaml:"trust_score" json:"trust_score"`
	CdmAdoption float64          `yaml:"cdm_adoption" json:"cdm_adoption"`
	Focus       string           `yaml:"focus" json:"focus"`
	NextMeeting string           `yaml:"next_meeting" json:"next_meeting"`
	Proposals   []ProposedEntity `yaml:"proposals" json:"proposals"`
	Health      []DomainHealth   `yaml:"health" json:"health"`
	Members     []CouncilMember  `yaml:"members" json:"members"`
	Conflicts   []Conflict       `yaml:"conflicts" json:"conflicts"`
	Minutes     []Minute         `yaml:"minutes" json:"minutes"`
}

// Stat is a headline number on the dashboard
type Stat struct {
	Title  string `yaml:"title" json:"title"`
	Value  string `yaml:"value" json:"value"`
	Change string `yaml:"change" json:"change"`
	Trend  string `yaml:"trend" json:"trend"` // up|down|neutral
}

// QualityScore is a per-domain quality percentage
type QualityScore struct {
	Domain string `yaml:"domain" json:"domain"`
	Score  int    `yaml:"score" json:"score"`
}

// Activity is a recent stewardship event
type Activity struct {
	Action string `yaml:"action" json:"action"`
	Asset  string `yaml:"asset" json:"asset"`
	User   string `yaml:"user" json:"user"`
	When   string `yaml:"when" json:"when"`
	Status string `yaml:"status" json:"status"`
}

// Dashboard groups the overview screen's content
type Dashboard struct {
	Stats    []Stat         `yaml:"stats" json:"stats"`
	Quality  []QualityScore `yaml:"quality" json:"quality"`
	Activity []Activity     `yaml:"activity" json:"activity"`
}

// RegistryEntry is a row in the admin asset registry
type RegistryEntry struct {
	Name      string `yaml:"name" json:"name"`
	Owner     string `yaml:"owner" json:"owner"`
	UpdatedAt string `yaml:"updated_at" json:"updated_at"`
	Status    string `yaml:"status" json:"status"`
}

// AdminUser is a row in the admin role table
type AdminUser struct {
	Name string `yaml:"name" json:"name"`
	Role string `yaml:"role" json:"role"`
}

// HealthCheck is a system health line on the admin view
type HealthCheck struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// Admin groups the admin console's content
type Admin struct {
	Registry []RegistryEntry `yaml:"registry" json:"registry"`
	Users    []AdminUser     `yaml:"users" json:"users"`
	Health   []HealthCheck   `yaml:"health" json:"health"`
	Alert    string          `yaml:"alert" json:"alert"`
}
