package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"studify/internal/api"
)

func newLibraryCommand(ctx *commandContext) *cobra.Command {
	libraryCmd := &cobra.Command{
		Use:   "library",
		Short: "Browse uploaded study materials",
	}

	libraryCmd.AddCommand(newLibraryListCommand(ctx))
	libraryCmd.AddCommand(newLibraryShowCommand(ctx))
	libraryCmd.AddCommand(newLibraryRemoveCommand(ctx))

	return libraryCmd
}

func newLibraryListCommand(ctx *commandContext) *cobra.Command {
	var subjectID string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List uploaded materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			response, err := api.ListMaterials(cmd.Context(), api.ListMaterialsRequest{
				Config:    cfg,
				Logger:    ctx.ensureLogger(),
				SubjectID: subjectID,
			})
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, response)
			}

			if len(response.Materials) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No materials uploaded yet")
				return nil
			}

			rows := make([][]string, 0, len(response.Materials))
			for _, material := range response.Materials {
				estimate := "-"
				difficulty := "-"
				if material.Metadata != nil {
					estimate = dashIfEmpty(material.Metadata.EstimatedTime)
					difficulty = difficultyLabel(material.Metadata.Difficulty)
				}
				rows = append(rows, []string{
					material.ID,
					material.FileName,
					typeLabel(material.FileType),
					material.SubjectName,
					formatFileSize(material.FileSize),
					estimate,
					difficulty,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "File", "Type", "Subject", "Size", "Estimate", "Difficulty"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&subjectID, "subject", "s", "", "Limit the listing to one subject id")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}

func newLibraryShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one material in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			record, err := api.DescribeMaterial(cmd.Context(), api.DescribeMaterialRequest{
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
			fmt.Fprintf(out, "File:       %s\n", record.FileName)
			fmt.Fprintf(out, "ID:         %s\n", record.ID)
			fmt.Fprintf(out, "Type:       %s\n", typeLabel(record.FileType))
			fmt.Fprintf(out, "Subject:    %s (%s)\n", record.SubjectName, record.SubjectID)
			fmt.Fprintf(out, "Size:       %s\n", formatFileSize(record.FileSize))
			fmt.Fprintf(out, "Path:       %s\n", record.FilePath)
			fmt.Fprintf(out, "Uploaded:   %s\n", formatDisplayTime(record.UploadedAt))
			if record.Metadata != nil {
				if record.Metadata.Pages > 0 {
					fmt.Fprintf(out, "Pages:      %d\n", record.Metadata.Pages)
				}
				if record.Metadata.Duration != "" {
					fmt.Fprintf(out, "Duration:   %s\n", record.Metadata.Duration)
				}
				fmt.Fprintf(out, "Estimate:   %s\n", dashIfEmpty(record.Metadata.EstimatedTime))
				fmt.Fprintf(out, "Difficulty: %s\n", difficultyLabel(record.Metadata.Difficulty))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}

func newLibraryRemoveCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			result, err := api.RemoveMaterial(cmd.Context(), api.RemoveMaterialRequest{
				Config: cfg,
				Logger: ctx.ensureLogger(),
				ID:     args[0],
			})
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, result)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed material %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}
