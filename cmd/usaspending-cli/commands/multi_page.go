package commands

import (
	"fmt"
	"log/slog"

	"usaspending-client/lib/serviceutil"
	"usaspending-client/lib/usaspending"
	"usaspending-client/lib/usaspending/export"

	"github.com/spf13/cobra"
)

func init() {
	examplesCmd.AddCommand(multiPageCmd)
}

var multiPageCmd = &cobra.Command{
	Use:   "multi-page",
	Short: "Fetches three pages of 2024 contracts and concatenates them into one CSV.",
	Run: func(cmd *cobra.Command, args []string) {
		filters := usaspending.Filters{}.
			AwardTypeCodes("10").
			TimePeriod(year2024)

		client := newClient()

		var combined []map[string]any
		for pageNum := 1; pageNum <= 3; pageNum++ {
			page, err := client.SpendingByAward(cmd.Context(), usaspending.SearchRequest{
				Filters: filters,
				Limit:   100,
				Page:    pageNum,
			})
			if err != nil {
				// a failed page doesn't sink the whole batch
				slog.Error("failed to fetch page", "page", pageNum, "err", err)
				continue
			}
			combined = append(combined, page.Results...)
			fmt.Printf("Fetched page %d: %d records\n", pageNum, len(page.Results))
		}

		written, err := export.WriteCSVColumns(
			combined,
			usaspending.DefaultFields(),
			"multiple_pages_contracts.csv",
		)
		if err != nil {
			serviceutil.Fatal("failed to save data", err)
		}

		fmt.Printf("Total records fetched: %d\n", len(combined))
		if written != "" {
			fmt.Println("Saved to", written)
		}
	},
}
