package commands

import (
	"f1data-backend/cmd/f1data-cli/utils"
	"f1data-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var constructorsSeason *int

func init() {
	constructorsSeason = constructorsCmd.Flags().Int("season", 0, "Season year, 0 lists all constructors on record.")
	rootCmd.AddCommand(constructorsCmd)
}

var constructorsCmd = &cobra.Command{
	Use:   "constructors [--season <year>]",
	Short: "Lists constructors.",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := newCollector().Constructors(cmd.Context(), *constructorsSeason)
		if err != nil {
			serviceutil.Fatal("failed to collect constructors", err)
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"id", "name", "nationality"})
		for _, constructor := range records {
			t.AppendRow(table.Row{
				constructor.ConstructorID,
				constructor.Name,
				constructor.Nationality,
			})
		}
		t.Render()
	},
}
