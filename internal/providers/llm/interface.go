package llm

import (
	"context"

	"github.com/example/study-planner/internal/models"
)

// Client is the uniform surface over one vendor. Implementations check the
// credential before any network call and return the vendor reply already
// normalized into a JSON object.
type Client interface {
	Name() string
	Configured() bool
	GenerateStudyPlan(ctx context.Context, req models.PlanRequest) (map[string]any, error)
}
