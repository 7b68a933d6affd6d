package commands

import (
	"f1data-backend/cmd/f1data-cli/utils"
	"f1data-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var racesSeason *int

func init() {
	racesSeason = racesCmd.Flags().Int("season", 0, "Season year to list the calendar for.")
	racesCmd.MarkFlagRequired("season")
	rootCmd.AddCommand(racesCmd)
}

var racesCmd = &cobra.Command{
	Use:   "races --season <year>",
	Short: "Lists the race calendar of a season.",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := newCollector().Races(cmd.Context(), *racesSeason)
		if err != nil {
			serviceutil.Fatal("failed to collect races", err)
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"id", "round", "name", "circuit", "country", "date", "start"})
		for _, race := range records {
			t.AppendRow(table.Row{
				race.ID,
				race.Round,
				race.Name,
				race.CircuitName,
				race.Country,
				utils.Date(race.Date),
				race.StartTime,
			})
		}
		t.Render()
	},
}
