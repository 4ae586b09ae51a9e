package commands

import (
	"fmt"
	"lapchart-scraper/internal/pipeline"
	"lapchart-scraper/lib/serviceutil"
	"log/slog"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var scrapeYears *[]int

func init() {
	scrapeYears = scrapeCmd.Flags().IntSlice("year", nil, "The seasons to scrape, defaults to the years in the config.")
	rootCmd.AddCommand(scrapeCmd)
}

func printResults(results []pipeline.Result) {
	t := newTable(table.Row{"Year", "#", "Race", "Status", "CSV", "Issues"})
	for _, r := range results {
		t.AppendRow(table.Row{r.Year, r.RaceID, r.Race, r.Status, r.CSVPath, len(r.Issues)})
	}
	t.Render()
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--year <year>...]",
	Short: "Downloads and extracts the lap chart of every race in the given seasons.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		years := cfg.Years
		if len(*scrapeYears) > 0 {
			years = *scrapeYears
		}

		p, err := newPipeline(cmd.Context(), cfg)
		if err != nil {
			serviceutil.Fatal("failed to create pipeline", err)
		}

		t1 := time.Now()
		results, err := p.RunBatch(cmd.Context(), years)
		printResults(results)
		slog.Info("scraping time", "elapsed", time.Since(t1).Round(time.Second).String())
		if err != nil {
			serviceutil.Fatal(fmt.Sprintf("scrape of %v stopped", years), err)
		}
	},
}
