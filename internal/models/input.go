package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/example/study-planner/internal/sanitize"
)

const (
	maxObjectiveRunes  = 120
	maxExperienceRunes = 200
	maxNumericRunes    = 16

	DefaultObjective     = "General study"
	DefaultDailyHours    = 1.0
	DefaultDurationWeeks = 4

	minHoursPerWeek  = 3
	maxHoursPerWeek  = 20
	maxDurationWeeks = 52
	workDaysPerWeek  = 5
)

// LooseString accepts either a JSON string or a JSON number. The web form
// sends strings, scripted callers often send numbers.
type LooseString string

func (s *LooseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = LooseString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = LooseString(n.String())
	return nil
}

// PlanInput is the raw body accepted by the plan endpoint and the CLI.
type PlanInput struct {
	Course      LooseString `json:"course"`
	Goal        LooseString `json:"goal"`
	Experience  LooseString `json:"experience"`
	HoursPerDay LooseString `json:"hoursPerDay"`
	Hours       LooseString `json:"hours"`
	Weeks       LooseString `json:"weeks"`
}

// Request converts loose input into a PlanRequest. Invalid values are replaced
// by defaults rather than rejected.
func (in PlanInput) Request() PlanRequest {
	objective := cleanField(string(in.Course), maxObjectiveRunes)
	if objective == "" {
		objective = cleanField(string(in.Goal), maxObjectiveRunes)
	}
	if objective == "" {
		objective = DefaultObjective
	}
	experience := cleanField(string(in.Experience), maxExperienceRunes)

	daily, ok := PositiveNumber(sanitize.Truncate(string(in.HoursPerDay), maxNumericRunes))
	if !ok {
		daily, ok = PositiveNumber(sanitize.Truncate(string(in.Hours), maxNumericRunes))
	}
	if !ok {
		daily = DefaultDailyHours
	}

	weeks := DefaultDurationWeeks
	if w, ok := PositiveNumber(sanitize.Truncate(string(in.Weeks), maxNumericRunes)); ok {
		weeks = clampInt(int(math.Round(w)), 1, maxDurationWeeks)
	}

	return PlanRequest{
		Objective:     objective,
		Experience:    experience,
		Level:         ClassifyLevel(experience),
		HoursPerWeek:  WeeklyHours(daily),
		DurationWeeks: weeks,
	}
}

// WeeklyHours turns a daily estimate into a weekly budget clamped to [3, 20].
func WeeklyHours(daily float64) float64 {
	return math.Min(maxHoursPerWeek, math.Max(minHoursPerWeek, daily*workDaysPerWeek))
}

// PositiveNumber parses s like a lenient Number(): surrounding space is
// ignored, and only finite values greater than zero are accepted.
func PositiveNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	return f, true
}

func cleanField(s string, limit int) string {
	return sanitize.Truncate(sanitize.Text(s), limit)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
