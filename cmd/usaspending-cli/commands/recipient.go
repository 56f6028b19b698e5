package commands

import (
	"usaspending-client/lib/usaspending"

	"github.com/spf13/cobra"
)

var recipientQuery *string

func init() {
	recipientQuery = recipientCmd.Flags().String("query", "university", "Recipient name text to search for.")
	examplesCmd.AddCommand(recipientCmd)
}

var recipientCmd = &cobra.Command{
	Use:   "recipient [--query <text>]",
	Short: "2024 grants to recipients matching a name search.",
	Run: func(cmd *cobra.Command, args []string) {
		filters := usaspending.Filters{}.
			RecipientSearchText(*recipientQuery).
			AwardTypeCodes("02", "03", "04", "05").
			TimePeriod(year2024)

		runExample(cmd.Context(), usaspending.SearchRequest{
			Filters: filters,
			Limit:   25,
		}, "university_grants.csv")
	},
}
