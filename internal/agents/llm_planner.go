package agents

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/example/study-planner/internal/models"
	"github.com/example/study-planner/internal/providers/llm"
)

// LLMPlanner asks the selected vendor for a plan and coerces the returned
// object into a StudyPlan.
type LLMPlanner struct {
	Registry *llm.Registry
	Provider string
}

func (p *LLMPlanner) Plan(ctx context.Context, req models.PlanRequest) (*models.StudyPlan, error) {
	client, err := p.Registry.Select(p.Provider)
	if err != nil {
		return nil, err
	}
	obj, err := client.GenerateStudyPlan(ctx, req)
	if err != nil {
		return nil, err
	}
	plan, err := PlanFromObject(obj, req)
	if err != nil {
		return nil, &llm.ParseError{Provider: client.Name(), Err: err}
	}
	plan.Source = models.Source(client.Name())
	return plan, nil
}

// PlanFromObject fills a StudyPlan from a decoded vendor object, defaulting
// missing fields from req. It fails only when blocks or rubric have the
// wrong shape.
func PlanFromObject(obj map[string]any, req models.PlanRequest) (*models.StudyPlan, error) {
	plan := &models.StudyPlan{
		ID:            models.NewPlanID(),
		Title:         stringOr(obj["title"], "Study plan: "+req.Objective),
		Goal:          stringOr(obj["goal"], req.Objective),
		Level:         stringOr(obj["level"], req.Level),
		HoursPerWeek:  positiveOr(obj["hoursPerWeek"], req.HoursPerWeek),
		DurationWeeks: int(math.Round(positiveOr(obj["durationWeeks"], float64(req.DurationWeeks)))),
		Blocks:        []models.PlanBlock{},
		Rubric:        []models.RubricItem{},
	}
	if plan.DurationWeeks <= 0 {
		plan.DurationWeeks = req.DurationWeeks
	}

	blocks, err := objectList(obj["blocks"], "blocks")
	if err != nil {
		return nil, err
	}
	for _, b := range blocks {
		plan.Blocks = append(plan.Blocks, models.PlanBlock{
			Title:   stringOr(b["title"], ""),
			Bullets: bulletList(b["bullets"]),
			Project: stringOr(b["project"], ""),
			Role:    stringOr(b["role"], plan.Level),
		})
	}

	rubric, err := objectList(obj["rubric"], "rubric")
	if err != nil {
		return nil, err
	}
	for _, r := range rubric {
		plan.Rubric = append(plan.Rubric, models.RubricItem{
			Criterion: stringOr(r["criterion"], ""),
			Level:     stringOr(r["level"], ""),
		})
	}
	return plan, nil
}

func objectList(v any, field string) ([]map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected array, got %T", field, v)
	}
	out := make([]map[string]any, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s[%d]: expected object, got %T", field, i, item)
		}
		out = append(out, m)
	}
	return out, nil
}

func stringOr(v any, fallback string) string {
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	if s = strings.TrimSpace(s); s == "" {
		return fallback
	}
	return s
}

// positiveOr coerces numbers and numeric strings, keeping fallback for
// anything not finite and positive.
func positiveOr(v any, fallback float64) float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return fallback
		}
		f = parsed
	default:
		return fallback
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fallback
	}
	return f
}

func bulletList(v any) []string {
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
		return []string{}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			switch s := item.(type) {
			case string:
				out = append(out, s)
			case nil:
			default:
				out = append(out, fmt.Sprint(s))
			}
		}
		return out
	default:
		return []string{}
	}
}

// IsAuthError reports whether err means the vendor had no credential.
func IsAuthError(err error) bool {
	var authErr *llm.AuthError
	return errors.As(err, &authErr)
}
