package commands

import (
	"f1data-backend/cmd/f1data-cli/utils"
	"f1data-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var resultsSeason *int
var resultsRound *int

func init() {
	resultsSeason = resultsCmd.Flags().Int("season", 0, "Season year to collect results for.")
	resultsRound = resultsCmd.Flags().Int("round", 0, "Round number, 0 means the whole season.")
	resultsCmd.MarkFlagRequired("season")
	rootCmd.AddCommand(resultsCmd)
}

var resultsCmd = &cobra.Command{
	Use:   "results --season <year> [--round <n>]",
	Short: "Lists race results, one row per driver per race.",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := newCollector().Results(cmd.Context(), *resultsSeason, *resultsRound)
		if err != nil {
			serviceutil.Fatal("failed to collect results", err)
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{
			"race", "pos", "driver", "constructor",
			"grid", "laps", "status", "points", "time",
		})
		for _, result := range records {
			t.AppendRow(table.Row{
				result.RaceName,
				utils.OptInt(result.Position),
				result.DriverName,
				result.ConstructorName,
				utils.OptInt(result.Grid),
				result.Laps,
				result.Status,
				result.Points,
				result.RaceTime,
			})
		}
		t.Render()
	},
}
