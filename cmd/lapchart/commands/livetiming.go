package commands

import (
	"lapchart-scraper/internal/components/telemetry"
	"lapchart-scraper/internal/season"
	"lapchart-scraper/lib/serviceutil"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var liveTimingYear *int

func init() {
	liveTimingYear = liveTimingCmd.Flags().Int("year", time.Now().Year(), "The season to fetch.")
	rootCmd.AddCommand(liveTimingCmd)
}

var liveTimingCmd = &cobra.Command{
	Use:   "livetiming [--year <year>]",
	Short: "Prints the events and sessions published by the F1 live timing service.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		live := season.NewLiveTiming(cfg.LiveTimingUrl, telemetry.SlogAPI{})
		index, err := live.FetchSeason(cmd.Context(), *liveTimingYear)
		if err != nil {
			serviceutil.Fatal("failed to fetch season index", err)
		}

		t := newTable(table.Row{"#", "Event", "Location", "Sessions"})
		for i, event := range index.Events() {
			location := ""
			if i < len(index.Meetings) {
				location = index.Meetings[i].Location
			}
			t.AppendRow(table.Row{i + 1, event, location, strings.Join(index.Sessions(event), ", ")})
		}
		t.Render()
	},
}
