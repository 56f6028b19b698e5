package commands

import (
	"usaspending-client/lib/usaspending"

	"github.com/spf13/cobra"
)

func init() {
	examplesCmd.AddCommand(agencyCmd)
}

var agencyCmd = &cobra.Command{
	Use:   "agency",
	Short: "2024 awards made by the Department of Health and Human Services.",
	Run: func(cmd *cobra.Command, args []string) {
		filters := usaspending.Filters{}.
			Agencies(usaspending.Agency{
				Type: "awarding",
				Tier: "toptier",
				Name: "Department of Health and Human Services",
			}).
			TimePeriod(year2024)

		runExample(cmd.Context(), usaspending.SearchRequest{
			Filters: filters,
			Limit:   50,
		}, "hhs_awards_2024.csv")
	},
}
