package commands

import (
	"context"
	"fmt"
	"lapchart-scraper/lib/telemetry"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath *string
	verbose    *bool
	outputDir  *string
)

var rootCmd = &cobra.Command{
	Use:   "lapchart",
	Short: "lapchart scrapes FIA lap chart PDFs and converts them to csv.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
	},
	SilenceUsage: true,
}

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "config.json5", "The config file to read, a sibling <name>.local.json5 overrides it.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output and dump http exchanges to <dev_state>/resty.")
	outputDir = rootCmd.PersistentFlags().String("out", "", "The directory charts and csv files are written to, overrides output_dir.")
}

func ExecuteContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return err
}
