package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/example/study-planner/internal/models"
)

// Verifier decides whether a plan may be returned to a caller.
type Verifier interface {
	Verify(ctx context.Context, plan *models.StudyPlan) (bool, string)
}

const planSchemaJSON = `{
  "type": "object",
  "required": ["title", "blocks"],
  "properties": {
    "title": {"type": "string"},
    "blocks": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["title"],
        "properties": {
          "title": {"type": "string", "minLength": 1, "pattern": "\\S"},
          "bullets": {"type": ["array", "null"], "items": {"type": "string"}}
        }
      }
    },
    "rubric": {"type": ["array", "null"]}
  }
}`

var planSchema = gojsonschema.NewStringLoader(planSchemaJSON)

// PlanVerifier checks the output invariant: at least one block, every block
// titled.
type PlanVerifier struct{}

func (PlanVerifier) Verify(_ context.Context, plan *models.StudyPlan) (bool, string) {
	if plan == nil {
		return false, "nil plan"
	}
	b, err := json.Marshal(plan)
	if err != nil {
		return false, fmt.Sprintf("marshal plan: %v", err)
	}
	result, err := gojsonschema.Validate(planSchema, gojsonschema.NewBytesLoader(b))
	if err != nil {
		return false, fmt.Sprintf("schema validation error: %v", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return false, strings.Join(msgs, "; ")
	}
	return true, "ok"
}
