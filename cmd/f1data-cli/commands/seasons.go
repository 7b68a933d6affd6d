package commands

import (
	"f1data-backend/cmd/f1data-cli/utils"
	"f1data-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var seasonsStart *int
var seasonsEnd *int

func init() {
	seasonsStart = seasonsCmd.Flags().Int("start", 0, "First season year to include, 0 means 1950.")
	seasonsEnd = seasonsCmd.Flags().Int("end", 0, "Last season year to include, 0 means the current year.")
	rootCmd.AddCommand(seasonsCmd)
}

var seasonsCmd = &cobra.Command{
	Use:   "seasons [--start <year>] [--end <year>]",
	Short: "Lists championship seasons.",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := newCollector().Seasons(cmd.Context(), *seasonsStart, *seasonsEnd)
		if err != nil {
			serviceutil.Fatal("failed to collect seasons", err)
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"year"})
		for _, season := range records {
			t.AppendRow(table.Row{season.Year})
		}
		t.Render()
	},
}
