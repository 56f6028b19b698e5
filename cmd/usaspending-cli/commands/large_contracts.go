package commands

import (
	"usaspending-client/lib/usaspending"

	"github.com/spf13/cobra"
)

func init() {
	examplesCmd.AddCommand(largeContractsCmd)
}

var largeContractsCmd = &cobra.Command{
	Use:   "large-contracts",
	Short: "Contracts over $5M awarded in 2024.",
	Run: func(cmd *cobra.Command, args []string) {
		filters := usaspending.Filters{}.
			AwardTypeCodes("10").
			AwardAmounts(usaspending.AwardAmount{LowerBound: 5_000_000}).
			TimePeriod(year2024)

		runExample(cmd.Context(), usaspending.SearchRequest{
			Filters: filters,
			Limit:   25,
		}, "large_contracts.csv")
	},
}
