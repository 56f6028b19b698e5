package commands

import (
	"context"
	"fmt"
	"os"

	"usaspending-client/lib/restyutil"
	"usaspending-client/lib/serviceutil"
	"usaspending-client/lib/telemetry"
	"usaspending-client/lib/usaspending"

	"github.com/spf13/cobra"
)

var verbose bool
var tel telemetry.Telemetry

var rootCmd = &cobra.Command{
	Use:   "usaspending-cli",
	Short: "usaspending-cli fetches award data from the USAspending API and saves it to JSON or CSV files.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)

		var err error
		tel, err = telemetry.SetupFromEnv(cmd.Context(), "usaspending-cli")
		if err != nil && !os.IsNotExist(err) {
			serviceutil.Fatal("setup telemetry", err)
		}
		if err == nil {
			telemetry.InstrumentPerfStats(cmd.Context())
		}

		if verbose {
			usaspending.SetRestyInstrumentOutput(
				restyutil.NewFilesystemOutput(".dev/resty/usaspending"),
			)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		// flushes any spans still buffered
		tel.Shutdown(context.Background())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false,
		"Enable debug logging and request/response dump files.",
	)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
