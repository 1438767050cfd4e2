package models

import (
	"strings"

	"github.com/google/uuid"
)

// Source tags which generator produced a plan. It is the only signal a caller
// gets that a plan came from the static local template.
type Source string

const (
	SourceLocal  Source = "local"
	SourceOpenAI Source = "openai"
	SourceGemini Source = "gemini"
)

// PlanRequest is the normalized, per-call input to every plan generator.
type PlanRequest struct {
	Objective     string  `json:"objective" validate:"required"`
	Experience    string  `json:"experience,omitempty"`
	Level         string  `json:"level" validate:"required"`
	HoursPerWeek  float64 `json:"hoursPerWeek" validate:"gt=0"`
	DurationWeeks int     `json:"durationWeeks" validate:"gt=0"`
}

type StudyPlan struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Goal          string       `json:"goal"`
	Level         string       `json:"level"`
	HoursPerWeek  float64      `json:"hoursPerWeek"`
	DurationWeeks int          `json:"durationWeeks"`
	Blocks        []PlanBlock  `json:"blocks"`
	Rubric        []RubricItem `json:"rubric"`
	Source        Source       `json:"source"`
}

type PlanBlock struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
	Project string   `json:"project"`
	Role    string   `json:"role"`
}

type RubricItem struct {
	Criterion string `json:"criterion"`
	Level     string `json:"level"`
}

const planIDLength = 12

// NewPlanID returns "plan_" followed by 12 random lowercase alphanumerics.
// Collisions are not checked.
func NewPlanID() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "plan_" + token[:planIDLength]
}
