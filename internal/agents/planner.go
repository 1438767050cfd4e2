package agents

import (
	"context"
	"fmt"

	"github.com/example/study-planner/internal/models"
)

// Planner produces a study plan for a normalized request.
type Planner interface {
	Plan(ctx context.Context, req models.PlanRequest) (*models.StudyPlan, error)
}

// LocalPlanner fills a fixed three-block template. It does no I/O and never
// fails, so it backs every vendor failure.
type LocalPlanner struct{}

func (LocalPlanner) Plan(_ context.Context, req models.PlanRequest) (*models.StudyPlan, error) {
	return Synthesize(req), nil
}

// Synthesize builds the template plan for req.
func Synthesize(req models.PlanRequest) *models.StudyPlan {
	level := req.Level
	if level == "" {
		level = models.ClassifyLevel(req.Experience)
	}
	obj := req.Objective
	role := RoleForLevel(level)

	return &models.StudyPlan{
		ID:            models.NewPlanID(),
		Title:         "Study plan: " + obj,
		Goal:          obj,
		Level:         level,
		HoursPerWeek:  req.HoursPerWeek,
		DurationWeeks: req.DurationWeeks,
		Blocks: []models.PlanBlock{
			{
				Title: "Fundamentals",
				Bullets: []string{
					fmt.Sprintf("Core concepts and vocabulary of %s", obj),
					"Set up a working environment and tooling",
					"Short daily exercises to fix the basics",
				},
				Project: fmt.Sprintf("Mini exercise set covering the basics of %s", obj),
				Role:    role,
			},
			{
				Title: "Guided practice",
				Bullets: []string{
					fmt.Sprintf("Follow a guided tutorial on %s end to end", obj),
					"Rebuild each example without looking at the solution",
					"Keep notes of mistakes and how they were fixed",
				},
				Project: fmt.Sprintf("Small guided project applying %s", obj),
				Role:    role,
			},
			{
				Title: "Real application",
				Bullets: []string{
					fmt.Sprintf("Pick a real problem that %s can solve", obj),
					"Plan, build and document a solution",
					"Ask for feedback and iterate once",
				},
				Project: fmt.Sprintf("Portfolio project built with %s", obj),
				Role:    role,
			},
		},
		Rubric: []models.RubricItem{
			{Criterion: "Understands and explains the core concepts", Level: level},
			{Criterion: "Completes the guided practice independently", Level: level},
			{Criterion: "Delivers a working, documented final project", Level: level},
		},
		Source: models.SourceLocal,
	}
}

// RoleForLevel maps a level to the competence tier suggested for each block.
func RoleForLevel(level string) string {
	switch level {
	case models.LevelBeginner:
		return "Trainee"
	case models.LevelJunior:
		return "Junior"
	case "":
		return "Learner"
	default:
		return level
	}
}
