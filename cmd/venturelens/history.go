package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/venturelens/venturelens/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived analysis reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := store.Open(appConfig.Archive.Path)
		if err != nil {
			return err
		}
		defer archive.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		list, err := archive.List(limit)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("No archived reports.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCREATED\tSCORE\tRISK\tIDEA")
		for _, s := range list {
			score := "-"
			if s.ViabilityScore > 0 {
				score = fmt.Sprintf("%d/10", s.ViabilityScore)
			}
			risk := s.Risk
			if risk == "" {
				risk = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				s.ID, s.CreatedAt.Format("2006-01-02 15:04"), score, risk, s.Idea)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of reports to list")

	rootCmd.AddCommand(historyCmd)
}
