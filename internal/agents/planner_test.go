package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/study-planner/internal/models"
)

func TestSynthesize_PythonBeginner(t *testing.T) {
	req := models.PlanInput{
		Course:      "Python",
		Experience:  "cero",
		HoursPerDay: "2",
		Weeks:       "6",
	}.Request()

	plan := Synthesize(req)
	assert.Equal(t, models.LevelBeginner, plan.Level)
	assert.Equal(t, 10.0, plan.HoursPerWeek)
	assert.Equal(t, 6, plan.DurationWeeks)
	assert.Len(t, plan.Blocks, 3)
	assert.Len(t, plan.Rubric, 3)
	assert.Equal(t, models.SourceLocal, plan.Source)
	assert.Regexp(t, `^plan_[a-z0-9]{12}$`, plan.ID)
	assert.Equal(t, "Python", plan.Goal)
}

func TestSynthesize_FixedBlocks(t *testing.T) {
	plan := Synthesize(models.PlanRequest{
		Objective:     "Rust",
		Level:         models.LevelJunior,
		HoursPerWeek:  5,
		DurationWeeks: 4,
	})

	titles := make([]string, 0, len(plan.Blocks))
	for _, b := range plan.Blocks {
		titles = append(titles, b.Title)
		assert.NotEmpty(t, b.Bullets)
		assert.Contains(t, b.Project, "Rust")
		assert.Equal(t, "Junior", b.Role)
	}
	assert.Equal(t, []string{"Fundamentals", "Guided practice", "Real application"}, titles)
}

func TestSynthesize_DeterministicExceptID(t *testing.T) {
	req := models.PlanRequest{Objective: "SQL", Level: models.LevelIntermediate, HoursPerWeek: 8, DurationWeeks: 3}
	a, b := Synthesize(req), Synthesize(req)
	assert.NotEqual(t, a.ID, b.ID)
	a.ID, b.ID = "", ""
	assert.Equal(t, a, b)
}

func TestSynthesize_ClassifiesWhenLevelMissing(t *testing.T) {
	plan := Synthesize(models.PlanRequest{Objective: "Go", Experience: "some scripting", HoursPerWeek: 5, DurationWeeks: 4})
	assert.Equal(t, models.LevelJunior, plan.Level)
}

func TestLocalPlanner_NeverFails(t *testing.T) {
	plan, err := LocalPlanner{}.Plan(context.Background(), models.PlanRequest{Objective: "Go", Level: models.LevelBeginner, HoursPerWeek: 3, DurationWeeks: 1})
	require.NoError(t, err)
	ok, reason := PlanVerifier{}.Verify(context.Background(), plan)
	assert.True(t, ok, reason)
}

func TestRoleForLevel(t *testing.T) {
	assert.Equal(t, "Trainee", RoleForLevel(models.LevelBeginner))
	assert.Equal(t, "Junior", RoleForLevel(models.LevelJunior))
	assert.Equal(t, "Intermediate", RoleForLevel(models.LevelIntermediate))
	assert.Equal(t, "Learner", RoleForLevel(""))
}
