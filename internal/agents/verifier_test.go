package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/study-planner/internal/models"
)

func TestPlanVerifier(t *testing.T) {
	tests := []struct {
		name string
		plan *models.StudyPlan
		ok   bool
	}{
		{name: "nil plan", plan: nil, ok: false},
		{
			name: "no blocks",
			plan: &models.StudyPlan{Title: "x", Blocks: []models.PlanBlock{}},
			ok:   false,
		},
		{
			name: "nil blocks",
			plan: &models.StudyPlan{Title: "x"},
			ok:   false,
		},
		{
			name: "untitled block",
			plan: &models.StudyPlan{Title: "x", Blocks: []models.PlanBlock{{Title: "A"}, {Title: ""}}},
			ok:   false,
		},
		{
			name: "whitespace title",
			plan: &models.StudyPlan{Title: "x", Blocks: []models.PlanBlock{{Title: "  "}}},
			ok:   false,
		},
		{
			name: "valid with nil bullets",
			plan: &models.StudyPlan{Title: "x", Blocks: []models.PlanBlock{{Title: "A"}}},
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := PlanVerifier{}.Verify(context.Background(), tt.plan)
			assert.Equal(t, tt.ok, ok, reason)
			if !tt.ok {
				assert.NotEqual(t, "ok", reason)
			}
		})
	}
}
