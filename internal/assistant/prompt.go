package assistant

import (
	"encoding/json"
	"fmt"

	"github.com/yildizm/go-promptfmt"

	"github.com/yildizm/datagov/internal/catalog"
)

const systemPrompt = "You are a data governance expert helping data stewards. " +
	"Answer concisely in markdown, focusing on data quality, lineage and ownership risks."

// HealthQuestion is the fixed question behind the object detail's
// "Analyze Health" action
const HealthQuestion = "Explain the data quality implications of the source fields used here."

// AskPattern builds the prompt for a single assistant question
type AskPattern struct {
	promptfmt.BasePattern
	Question string
	Context  string
}

// NewAskPattern creates a pattern for question grounded on context
func NewAskPattern(question, context string) *AskPattern {
	return &AskPattern{
		BasePattern: promptfmt.BasePattern{
			Description: "Answers a steward's question about a catalog object",
			Tags:        []string{"data-governance", "data-quality"},
		},
		Question: question,
		Context:  context,
	}
}

// Build renders the system turn, the question and the attached context
func (p *AskPattern) Build() *promptfmt.Prompt {
	pb := promptfmt.New().
		System(systemPrompt).
		User("%s", p.Question)

	if p.Context != "" {
		pb.AddContext("catalog_object", p.Context)
	}

	return pb.Build()
}

type contextField struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	SourceField string `json:"sourceField"`
	Description string `json:"description"`
}

// BuildObjectContext renders an object as
// "Object: <name>. Description: <description>. Schema: <json>"
func BuildObjectContext(obj catalog.DataObject) string {
	fields := make([]contextField, 0, len(obj.Schema))
	for _, f := range obj.Schema {
		fields = append(fields, contextField{
			Name:        f.Name,
			Type:        f.Type,
			SourceField: f.Source,
			Description: f.Description,
		})
	}

	schema, err := json.Marshal(fields)
	if err != nil {
		schema = []byte("[]")
	}

	return fmt.Sprintf("Object: %s. Description: %s. Schema: %s", obj.Name, obj.Description, schema)
}
