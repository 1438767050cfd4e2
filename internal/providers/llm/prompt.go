package llm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/study-planner/internal/models"
)

// PlanSchema is the exact output shape every vendor is asked to honor.
const PlanSchema = `{
  "title": string,
  "goal": string,
  "level": "Beginner" | "Junior" | "Intermediate",
  "hoursPerWeek": number,
  "durationWeeks": number,
  "blocks": [
    {
      "title": string,
      "bullets": [string],
      "project": string,
      "role": string
    }
  ],
  "rubric": [
    { "criterion": string, "level": string }
  ]
}`

const systemPrompt = `You are an academic advisor who designs practical, project-based study plans.
Return ONLY one JSON object, no prose, no markdown, no code fences.
The object MUST follow this schema exactly:
` + PlanSchema + `

Rules:
- Produce 3 to 5 blocks ordered from fundamentals to real-world application.
- Each block has 3 to 5 concrete bullets, one small project and the competence tier ("role") it targets.
- Fit the workload to hoursPerWeek and durationWeeks.
- Produce 3 rubric items; "level" is the grading tier expected at the end of the plan.
- Answer in the same language as the objective.`

func buildUserPrompt(req models.PlanRequest) string {
	var b strings.Builder
	b.WriteString("Build a study plan for this learner.\n")
	fmt.Fprintf(&b, "objective: %s\n", req.Objective)
	if strings.TrimSpace(req.Experience) != "" {
		fmt.Fprintf(&b, "experience: %s\n", req.Experience)
	}
	fmt.Fprintf(&b, "level: %s\n", req.Level)
	fmt.Fprintf(&b, "hoursPerWeek: %s\n", strconv.FormatFloat(req.HoursPerWeek, 'f', -1, 64))
	fmt.Fprintf(&b, "durationWeeks: %d\n", req.DurationWeeks)
	return b.String()
}
