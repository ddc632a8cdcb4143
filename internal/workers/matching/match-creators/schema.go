// internal/workers/matching/match-creators/schema.go
package matchcreators

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// briefSchema guards the job boundary. Scoring itself tolerates missing
// fields, so only the shape and value types are enforced here.
const briefSchema = `{
	"type": "object",
	"required": ["brief"],
	"properties": {
		"brief": {
			"type": "object",
			"required": ["category", "budget"],
			"properties": {
				"category":  {"type": "string", "minLength": 1},
				"budget":    {"type": "number", "exclusiveMinimum": 0},
				"locations": {"type": "array", "items": {"type": "string"}},
				"ageRange":  {"type": "string"},
				"tone":      {"type": "array", "items": {"type": "string"}},
				"platforms": {"type": "array", "items": {"type": "string"}}
			}
		}
	}
}`

var briefSchemaLoader = gojsonschema.NewStringLoader(briefSchema)

// validateBriefPayload checks raw job variables against the brief schema
// and returns a readable description of every violation.
func validateBriefPayload(raw string) error {
	result, err := gojsonschema.Validate(briefSchemaLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid brief: %s", strings.Join(problems, "; "))
}
