package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"studify/internal/api"
	"studify/internal/progress"
	"studify/internal/textutil"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "analyze <material-id>",
		Short: "Analyze an uploaded material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var renderer progressRenderer
			if !jsonOutput {
				renderer = newProgressRenderer(cmd.OutOrStdout(), "Analyzing material")
			}

			result, err := api.AnalyzeMaterial(cmd.Context(), api.AnalyzeMaterialRequest{
				Config: cfg,
				Logger: ctx.ensureLogger(),
				ID:     args[0],
				OnProgress: func(event progress.Event) {
					if renderer == nil {
						return
					}
					switch event.Kind {
					case progress.EventStep:
						renderer.update(event.Label, event.Percent)
					case progress.EventProgress, progress.EventComplete:
						renderer.update("", event.Percent)
					}
				},
			})
			if renderer != nil {
				if err != nil {
					renderer.finish("Analysis failed")
				} else {
					renderer.finish("Analysis complete")
				}
			}
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Analyzed %s\n", result.FileName)
			fmt.Fprintf(out, "  Total pages:     %d\n", result.Result.TotalPages)
			fmt.Fprintf(out, "  Content density: %d/100\n", result.Result.ContentDensity)
			fmt.Fprintf(out, "  Estimated time:  %dh\n", result.Result.EstimatedHours)
			fmt.Fprintf(out, "  Difficulty:      %s\n", textutil.Label(string(result.Result.Difficulty)))

			fmt.Fprintln(out, "Recommended sessions:")
			for i, session := range result.Result.RecommendedSessions {
				fmt.Fprintf(out, "  %d. %-12s %s\n", i+1, session.Type, formatMinutesValue(session.Duration))
			}
			fmt.Fprintln(out, "Suggested topics:")
			for _, topic := range result.Result.SuggestedTopics {
				fmt.Fprintf(out, "  - %s\n", topic)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}
