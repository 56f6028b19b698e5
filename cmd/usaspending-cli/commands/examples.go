package commands

import (
	"context"
	"fmt"

	"usaspending-client/lib/serviceutil"
	"usaspending-client/lib/usaspending"
	"usaspending-client/lib/usaspending/export"

	"github.com/spf13/cobra"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Canned queries showing the shapes the search filters can take.",
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}

// year2024 is the time-period filter most of the examples share.
var year2024 = usaspending.TimePeriod{
	StartDate: "2024-01-01",
	EndDate:   "2024-12-31",
}

func runExample(ctx context.Context, req usaspending.SearchRequest, filename string) {
	client := newClient()
	page, err := client.SpendingByAward(ctx, req)
	if err != nil {
		serviceutil.Fatal("failed to fetch spending data", err)
	}

	fields := req.Fields
	if fields == nil {
		fields = usaspending.DefaultFields()
	}
	written, err := export.WriteCSVColumns(page.Results, fields, filename)
	if err != nil {
		serviceutil.Fatal("failed to save data", err)
	}

	fmt.Printf("Found %d total records\n", page.PageMetadata.Total)
	if written != "" {
		fmt.Println("Saved to", written)
	}
}
