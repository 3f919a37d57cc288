package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"studify/internal/api"
)

func newSubjectCommand(ctx *commandContext) *cobra.Command {
	subjectCmd := &cobra.Command{
		Use:   "subject",
		Short: "Manage the subject catalog",
	}

	subjectCmd.AddCommand(newSubjectListCommand(ctx))
	subjectCmd.AddCommand(newSubjectShowCommand(ctx))
	subjectCmd.AddCommand(newSubjectAddCommand(ctx))
	subjectCmd.AddCommand(newSubjectUpdateCommand(ctx))
	subjectCmd.AddCommand(newSubjectRemoveCommand(ctx))

	return subjectCmd
}

func newSubjectListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			response, err := api.ListSubjects(cmd.Context(), api.ListSubjectsRequest{
				Config: cfg,
				Logger: ctx.ensureLogger(),
			})
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, response)
			}

			rows := make([][]string, 0, len(response.Subjects))
			for _, subject := range response.Subjects {
				rows = append(rows, []string{
					subject.ID,
					subject.Name,
					dashIfEmpty(subject.Description),
					subject.Color,
					fmt.Sprintf("%d", subject.Materials),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name", "Description", "Color", "Materials"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}

func newSubjectShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one subject in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			record, err := api.DescribeSubject(cmd.Context(), api.DescribeSubjectRequest{
				Config: cfg,
				Logger: ctx.ensureLogger(),
				ID:     args[0],
			})
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, record)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:        %s\n", record.Name)
			fmt.Fprintf(out, "ID:          %s\n", record.ID)
			fmt.Fprintf(out, "Description: %s\n", dashIfEmpty(record.Description))
			fmt.Fprintf(out, "Color:       %s\n", record.Color)
			fmt.Fprintf(out, "Materials:   %d\n", record.Materials)
			fmt.Fprintf(out, "Created:     %s\n", formatDisplayTime(record.CreatedAt))
			fmt.Fprintf(out, "Updated:     %s\n", formatDisplayTime(record.UpdatedAt))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}

func newSubjectAddCommand(ctx *commandContext) *cobra.Command {
	var description string
	var color string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			created, err := api.CreateSubject(cmd.Context(), api.CreateSubjectRequest{
				Config:      cfg,
				Logger:      ctx.ensureLogger(),
				Name:        args[0],
				Description: description,
				Color:       color,
			})
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added subject %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Subject description")
	cmd.Flags().StringVar(&color, "color", "", "Subject color (hex); next palette color when omitted")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}

func newSubjectUpdateCommand(ctx *commandContext) *cobra.Command {
	var name string
	var description string
	var color string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			request := api.UpdateSubjectRequest{
				Config: cfg,
				Logger: ctx.ensureLogger(),
				ID:     args[0],
			}
			if cmd.Flags().Changed("name") {
				request.Name = &name
			}
			if cmd.Flags().Changed("description") {
				request.Description = &description
			}
			if cmd.Flags().Changed("color") {
				request.Color = &color
			}

			updated, err := api.UpdateSubject(cmd.Context(), request)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, updated)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated subject %s (%s)\n", updated.Name, updated.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New subject name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New subject description")
	cmd.Flags().StringVar(&color, "color", "", "New subject color (hex)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}

func newSubjectRemoveCommand(ctx *commandContext) *cobra.Command {
	var cascade bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			result, err := api.RemoveSubject(cmd.Context(), api.RemoveSubjectRequest{
				Config:  cfg,
				Logger:  ctx.ensureLogger(),
				ID:      args[0],
				Cascade: cascade,
			})
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Removed subject %s\n", args[0])
			if result.MaterialsRemoved > 0 {
				fmt.Fprintf(out, "Removed %d material(s) with it\n", result.MaterialsRemoved)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&cascade, "cascade", false, "Also remove the subject's materials")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}
