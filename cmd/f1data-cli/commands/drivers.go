package commands

import (
	"f1data-backend/cmd/f1data-cli/utils"
	"f1data-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var driversSeason *int

func init() {
	driversSeason = driversCmd.Flags().Int("season", 0, "Season year, 0 lists all drivers on record.")
	rootCmd.AddCommand(driversCmd)
}

var driversCmd = &cobra.Command{
	Use:   "drivers [--season <year>]",
	Short: "Lists drivers.",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := newCollector().Drivers(cmd.Context(), *driversSeason)
		if err != nil {
			serviceutil.Fatal("failed to collect drivers", err)
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"id", "name", "nationality", "born"})
		for _, driver := range records {
			t.AppendRow(table.Row{
				driver.DriverID,
				driver.Name,
				driver.Nationality,
				utils.OptDate(driver.DateOfBirth),
			})
		}
		t.Render()
	},
}
