package commands

import (
	"errors"
	"fmt"
	"lapchart-scraper/internal/season"
	"lapchart-scraper/lib/serviceutil"
	"slices"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	eventsYear   *int
	sessionsYear *int
	sessionEvent *string
	teamsYear    *int
)

func init() {
	currentYear := time.Now().Year()

	eventsYear = eventsCmd.Flags().Int("year", currentYear, "The season to list.")
	sessionsYear = sessionsCmd.Flags().Int("year", currentYear, "The season of the event.")
	sessionEvent = sessionsCmd.Flags().String("event", "", "The event name, matched loosely against the season's events.")
	sessionsCmd.MarkFlagRequired("event")
	teamsYear = teamsCmd.Flags().Int("year", currentYear, "The season to list.")

	rootCmd.AddCommand(eventsCmd, sessionsCmd, teamsCmd)
}

var eventsCmd = &cobra.Command{
	Use:   "events [--year <year>]",
	Short: "Prints the races of a season with their ordinals.",
	Run: func(cmd *cobra.Command, args []string) {
		events := season.Events(*eventsYear)
		if len(events) == 0 {
			serviceutil.Fatal("no events", fmt.Errorf("season %d has no event table", *eventsYear))
		}

		t := newTable(table.Row{"#", "Race", "Output name"})
		for i, name := range events {
			t.AppendRow(table.Row{i + 1, name, season.FormatRaceName(name)})
		}
		t.Render()
	},
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions --event <name> [--year <year>]",
	Short: "Prints the session schedule of an event.",
	Run: func(cmd *cobra.Command, args []string) {
		event := *sessionEvent
		match, err := season.FindRace(*sessionsYear, event)
		if err == nil {
			event = match.Name
		} else if !errors.Is(err, season.ErrNoMatch) {
			serviceutil.Fatal("failed to find event", err)
		}

		sessions := season.Sessions(*sessionsYear, event)
		if sessions == nil {
			serviceutil.Fatal("no sessions", fmt.Errorf("season %d has no session table", *sessionsYear))
		}

		t := newTable(table.Row{"#", event})
		for i, s := range sessions {
			t.AppendRow(table.Row{i + 1, s})
		}
		t.Render()
	},
}

var teamsCmd = &cobra.Command{
	Use:   "teams [--year <year>]",
	Short: "Prints the constructor codes and colors of a season.",
	Run: func(cmd *cobra.Command, args []string) {
		codes := season.TeamCodes(*teamsYear)
		colors := season.TeamColors(*teamsYear)

		var names []string
		for name := range codes {
			names = append(names, name)
		}
		for name := range colors {
			if _, ok := codes[name]; !ok {
				names = append(names, name)
			}
		}
		if len(names) == 0 {
			serviceutil.Fatal("no teams", fmt.Errorf("season %d has no team table", *teamsYear))
		}
		slices.SortFunc(names, func(a, b string) int {
			return strings.Compare(strings.ToLower(a), strings.ToLower(b))
		})

		t := newTable(table.Row{"Team", "Code", "Color"})
		for _, name := range names {
			t.AppendRow(table.Row{name, codes[name], colors[name]})
		}
		t.Render()
	},
}
