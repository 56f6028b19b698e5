package commands

import (
	"usaspending-client/lib/usaspending"

	"github.com/spf13/cobra"
)

func init() {
	examplesCmd.AddCommand(customFieldsCmd)
}

var customFieldsCmd = &cobra.Command{
	Use:   "custom-fields",
	Short: "Awards over $10M with a hand-picked column set.",
	Run: func(cmd *cobra.Command, args []string) {
		fields := []string{
			"Award ID",
			"Recipient Name",
			"Award Amount",
			"Awarding Agency",
			"Description",
		}
		filters := usaspending.Filters{}.
			AwardAmounts(usaspending.AwardAmount{LowerBound: 10_000_000}).
			TimePeriod(year2024)

		runExample(cmd.Context(), usaspending.SearchRequest{
			Filters: filters,
			Fields:  fields,
			Limit:   20,
		}, "custom_fields_awards.csv")
	},
}
