package main

import (
	"encoding/json"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/study-planner/internal/models"
)

func newPlanCmd() *cobra.Command {
	var (
		course      string
		experience  string
		hoursPerDay float64
		weeks       int
		provider    string
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate one study plan and print it as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, provider)
			if err != nil {
				return err
			}
			defer a.Close()

			in := models.PlanInput{
				Course:     models.LooseString(course),
				Experience: models.LooseString(experience),
			}
			if cmd.Flags().Changed("hours-per-day") {
				in.HoursPerDay = models.LooseString(strconv.FormatFloat(hoursPerDay, 'f', -1, 64))
			}
			if cmd.Flags().Changed("weeks") {
				in.Weeks = models.LooseString(strconv.Itoa(weeks))
			}

			plan := a.orch.GeneratePlan(cmd.Context(), in.Request())

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(plan)
		},
	}
	cmd.Flags().StringVar(&course, "course", "", "Course or objective to study")
	cmd.Flags().StringVar(&experience, "experience", "", "Prior experience, free text")
	cmd.Flags().Float64Var(&hoursPerDay, "hours-per-day", models.DefaultDailyHours, "Daily study hours")
	cmd.Flags().IntVar(&weeks, "weeks", models.DefaultDurationWeeks, "Plan duration in weeks")
	cmd.Flags().StringVar(&provider, "provider", "", "Vendor to use (overrides LLM_PROVIDER)")
	return cmd
}
