package commands

import (
	"usaspending-client/lib/usaspending"

	"github.com/spf13/cobra"
)

func init() {
	examplesCmd.AddCommand(grantsCmd)
}

var grantsCmd = &cobra.Command{
	Use:   "grants",
	Short: "Grants from fiscal year 2024.",
	Run: func(cmd *cobra.Command, args []string) {
		filters := usaspending.Filters{}.
			AwardTypeCodes("02", "03", "04", "05").
			// FY2024 runs Oct 1, 2023 through Sep 30, 2024
			TimePeriod(usaspending.TimePeriod{
				StartDate: "2023-10-01",
				EndDate:   "2024-09-30",
			})

		runExample(cmd.Context(), usaspending.SearchRequest{
			Filters: filters,
			Limit:   50,
		}, "grants_fy2024.csv")
	},
}
