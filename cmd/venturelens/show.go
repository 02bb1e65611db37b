package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/venturelens/venturelens/internal/report"
	"github.com/venturelens/venturelens/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show <report-id>",
	Short: "Print an archived report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := store.Open(appConfig.Archive.Path)
		if err != nil {
			return err
		}
		defer archive.Close()

		rep, err := archive.Get(args[0])
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		out, err := report.Render(rep, format)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	showCmd.Flags().String("format", "text", "output format (text, markdown, json, yaml)")

	rootCmd.AddCommand(showCmd)
}
