package commands

import (
	"fmt"

	"usaspending-client/lib/serviceutil"
	"usaspending-client/lib/usaspending"
	"usaspending-client/lib/usaspending/export"

	"github.com/spf13/cobra"
)

var fetchLimit *int
var fetchPage *int
var fetchFormat *string
var fetchOut *string

func init() {
	fetchLimit = fetchCmd.Flags().Int("limit", 0, "Results per page (the API caps this at 500).")
	fetchPage = fetchCmd.Flags().Int("page", 1, "Page number to fetch.")
	fetchFormat = fetchCmd.Flags().String("format", "json", "Output format, json or csv.")
	fetchOut = fetchCmd.Flags().String("out", "", "Output filename, a timestamped name is generated when empty.")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch [--limit <n>] [--page <n>] [--format json|csv] [--out <file>]",
	Short: "Fetches one page of award data using the default filters and saves it.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		limit := *fetchLimit
		if limit == 0 {
			limit = cfg.PageSize
		}

		client := usaspending.NewClient(cfg.BaseUrl)
		page, err := client.SpendingByAward(cmd.Context(), usaspending.SearchRequest{
			Limit: limit,
			Page:  *fetchPage,
		})
		if err != nil {
			serviceutil.Fatal("failed to fetch spending data", err)
		}

		printSummary(page)

		var filename string
		switch *fetchFormat {
		case "json":
			filename, err = export.WriteJSON(page, *fetchOut)
		case "csv":
			filename, err = export.WriteCSVColumns(page.Results, usaspending.DefaultFields(), *fetchOut)
		default:
			serviceutil.Fatal("unknown format", fmt.Errorf("%q is not json or csv", *fetchFormat))
		}
		if err != nil {
			serviceutil.Fatal("failed to save data", err)
		}
		if filename != "" {
			fmt.Println("Saved to", filename)
		}
	},
}
