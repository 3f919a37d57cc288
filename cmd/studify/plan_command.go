package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"studify/internal/api"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var subjectID string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a study plan from the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			plan, err := api.BuildPlan(cmd.Context(), api.BuildPlanRequest{
				Config:    cfg,
				Logger:    ctx.ensureLogger(),
				SubjectID: subjectID,
			})
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, plan)
			}

			out := cmd.OutOrStdout()
			if plan.TotalSessions == 0 {
				fmt.Fprintln(out, "Nothing to plan; upload some materials first")
				return nil
			}

			fmt.Fprintf(out, "Study plan: %d session(s), %s total\n\n",
				plan.TotalSessions, formatMinutesValue(plan.TotalMinutes))

			for _, day := range plan.Days {
				fmt.Fprintf(out, "Day %d (%s)\n", day.Index, formatMinutesValue(day.Minutes))
				rows := make([][]string, 0, len(day.Sessions))
				for _, session := range day.Sessions {
					rows = append(rows, []string{
						session.Type,
						session.SubjectName,
						session.FileName,
						formatMinutesValue(session.Duration),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Block", "Subject", "Material", "Length"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
				))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&subjectID, "subject", "s", "", "Limit the plan to one subject id")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}
