package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/venturelens/venturelens/internal/report"
	"github.com/venturelens/venturelens/internal/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <idea>",
	Short: "Run the full research pipeline for a startup idea",
	Long: `Analyze runs all five research stages for the given idea and prints the
report. Stages whose data source is unavailable degrade to defaults and are
listed in the report notes.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idea := strings.Join(args, " ")

		if err := checkCredentials(appConfig, appLogger); err != nil {
			return err
		}

		wf, closeFn, err := buildWorkflow(cmd.Context(), appConfig, appLogger)
		if err != nil {
			return err
		}
		defer closeFn()

		rep, err := wf.Run(cmd.Context(), idea)
		if err != nil {
			return err
		}

		save, _ := cmd.Flags().GetBool("save")
		if save && appConfig.Archive.Enabled {
			archive, err := store.Open(appConfig.Archive.Path)
			if err != nil {
				return err
			}
			defer archive.Close()
			if err := archive.Save(rep); err != nil {
				return err
			}
			appLogger.Info("report archived", "id", rep.ID, "path", appConfig.Archive.Path)
		}

		format, _ := cmd.Flags().GetString("format")
		out, err := report.Render(rep, format)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if output != "" {
			if err := os.WriteFile(output, []byte(out), 0o644); err != nil {
				return fmt.Errorf("writing report to %s: %w", output, err)
			}
			fmt.Fprintf(os.Stderr, "Report written to %s\n", output)
			return nil
		}

		fmt.Print(out)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("format", "text", "output format (text, markdown, json, yaml)")
	analyzeCmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
	analyzeCmd.Flags().Bool("save", false, "archive the report for later retrieval")

	rootCmd.AddCommand(analyzeCmd)
}
