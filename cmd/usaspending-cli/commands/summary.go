package commands

import (
	"fmt"
	"os"

	"usaspending-client/lib/usaspending"

	"github.com/jedib0t/go-pretty/v6/table"
)

const sampleRows = 3

func printSummary(page *usaspending.ResultPage) {
	fmt.Printf("Total results available: %d\n", page.PageMetadata.Total)
	fmt.Printf("Current page: %d\n", page.PageMetadata.Page)
	fmt.Printf("Results on this page: %d\n", len(page.Results))

	if len(page.Results) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Recipient", "Amount", "Agency", "Type"})
	for i, result := range page.Results {
		if i == sampleRows {
			break
		}
		t.AppendRow(table.Row{
			result["Recipient Name"],
			result["Award Amount"],
			result["Awarding Agency"],
			result["Award Type"],
		})
	}
	t.Render()
}
