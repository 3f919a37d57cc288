package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"studify/internal/api"
	"studify/internal/config"
	"studify/internal/fileutil"
	"studify/internal/materials"
)

func newUploadCommand(ctx *commandContext) *cobra.Command {
	var subjectID string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a study material to a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve file path: %w", err)
			}
			size, err := fileutil.CheckReadableFile(path)
			if err != nil {
				return err
			}

			fileName := filepath.Base(path)
			var renderer progressRenderer
			if !jsonOutput {
				renderer = newProgressRenderer(cmd.OutOrStdout(), "Uploading "+fileName)
			}

			record, err := api.UploadMaterial(cmd.Context(), api.UploadMaterialRequest{
				Config:    cfg,
				Logger:    ctx.ensureLogger(),
				FileName:  fileName,
				FileSize:  size,
				SubjectID: subjectID,
				OnProgress: func(event materials.ProgressEvent) {
					if renderer != nil {
						renderer.update("", event.Progress)
					}
				},
			})
			if renderer != nil {
				if err != nil {
					renderer.finish("Upload failed")
				} else {
					renderer.finish("Upload complete")
				}
			}
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, record)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Uploaded %s to %s (%s)\n", record.FileName, record.SubjectName, record.ID)
			if record.Metadata != nil && record.Metadata.EstimatedTime != "" {
				fmt.Fprintf(out, "Estimated study time: %s\n", record.Metadata.EstimatedTime)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&subjectID, "subject", "s", "", "Subject id to attach the material to")
	cmd.MarkFlagRequired("subject")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}
