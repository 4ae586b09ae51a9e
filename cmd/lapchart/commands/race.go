package commands

import (
	"errors"
	"lapchart-scraper/internal/pipeline"
	"lapchart-scraper/internal/season"
	"lapchart-scraper/lib/serviceutil"
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	raceYear *int
	raceID   *int
	raceName *string
)

func init() {
	raceYear = raceCmd.Flags().Int("year", 0, "The season of the race.")
	raceID = raceCmd.Flags().Int("race", 0, "The 1-based ordinal of the race in the season's event list.")
	raceName = raceCmd.Flags().String("name", "", "The race name, matched loosely against the season's events.")
	raceCmd.MarkFlagRequired("year")
	raceCmd.MarkFlagsOneRequired("race", "name")
	raceCmd.MarkFlagsMutuallyExclusive("race", "name")
	rootCmd.AddCommand(raceCmd)
}

var raceCmd = &cobra.Command{
	Use:   "race --year <year> (--race <ordinal> | --name <name>)",
	Short: "Downloads and extracts the lap chart of a single race.",
	Run: func(cmd *cobra.Command, args []string) {
		id := *raceID
		if *raceName != "" {
			match, err := season.FindRace(*raceYear, *raceName)
			if err != nil {
				serviceutil.Fatal("failed to find race", err)
			}
			slog.Info("matched race", "name", match.Name, "race", match.RaceID, "similarity", match.Similarity)
			id = match.RaceID
		}

		cfg, err := loadConfig()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		p, err := newPipeline(cmd.Context(), cfg)
		if err != nil {
			serviceutil.Fatal("failed to create pipeline", err)
		}

		result, err := p.ProcessRace(cmd.Context(), *raceYear, id)
		printResults([]pipeline.Result{result})
		if err != nil {
			serviceutil.Fatal("failed to process race", err)
		}
		if result.Status != pipeline.StatusExtracted {
			serviceutil.Fatal("race was not extracted", errors.New(string(result.Status)))
		}
	},
}
