package commands

import (
	"f1data-backend/cmd/f1data-cli/utils"
	"f1data-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var qualifyingSeason *int
var qualifyingRound *int

func init() {
	qualifyingSeason = qualifyingCmd.Flags().Int("season", 0, "Season year to collect qualifying for.")
	qualifyingRound = qualifyingCmd.Flags().Int("round", 0, "Round number, 0 means the whole season.")
	qualifyingCmd.MarkFlagRequired("season")
	rootCmd.AddCommand(qualifyingCmd)
}

var qualifyingCmd = &cobra.Command{
	Use:   "qualifying --season <year> [--round <n>]",
	Short: "Lists qualifying results, one row per driver per session.",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := newCollector().Qualifying(cmd.Context(), *qualifyingSeason, *qualifyingRound)
		if err != nil {
			serviceutil.Fatal("failed to collect qualifying results", err)
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"race", "pos", "driver", "constructor", "q1", "q2", "q3"})
		for _, qual := range records {
			t.AppendRow(table.Row{
				qual.RaceName,
				qual.Position,
				qual.DriverName,
				qual.ConstructorName,
				qual.Q1,
				qual.Q2,
				qual.Q3,
			})
		}
		t.Render()
	},
}
