// Package season holds the read-only lookup tables of the championship: the
// race list of every season, session schedules and constructor names.
//
// All exported functions return copies, the package level tables are never
// written to after init.
package season

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// FirstYear is the first season with tables.
const FirstYear = 2018

var ErrRaceOutOfRange = errors.New("race ordinal out of range")

// Events returns the race names of `year` in race ordinal order,
// an unknown year returns an empty list.
func Events(year int) []string {
	return slices.Clone(events[year])
}

// RaceName resolves a 1-based race ordinal to the race's display name.
func RaceName(year, raceID int) (string, error) {
	list := events[year]
	if raceID < 1 || raceID > len(list) {
		return "", fmt.Errorf(
			"%w: race %d of season %d (%d races)",
			ErrRaceOutOfRange, raceID, year, len(list),
		)
	}
	return list[raceID-1], nil
}

// FormatRaceName turns a display name into the form used in output
// filenames, ex. "Abu Dhabi Grand Prix" -> "abu_dhabi_grand_prix".
func FormatRaceName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

// Years lists the seasons from the current year down to FirstYear.
func Years(now time.Time) []int {
	var years []int
	for y := now.Year(); y >= FirstYear; y-- {
		years = append(years, y)
	}
	return years
}

// TeamCodes returns the constructor name -> short code table of `year`.
func TeamCodes(year int) map[string]string {
	return cloneTable(teamCodes[year])
}

// TeamColors returns the constructor name -> hex color table of `year`.
func TeamColors(year int) map[string]string {
	return cloneTable(teamColors[year])
}

func cloneTable(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return maps.Clone(m)
}
