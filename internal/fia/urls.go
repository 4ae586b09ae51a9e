package fia

import (
	"fmt"
	"lapchart-scraper/internal/season"
	"strings"
)

const DefaultBaseURL = "https://www.fia.com/events/fia-formula-one-world-championship"

// the event timing page has been published under both of these segments with
// no rule as to which season or race uses which, so both are tried in order.
var timingSegments = [2]string{"eventtiming-information", "eventtiming"}

// EventURLs returns the two candidate event timing pages of a race, `raceID`
// being the 1-based race ordinal in the season's event list.
func EventURLs(baseUrl string, year, raceID int) ([2]string, error) {
	name, err := season.RaceName(year, raceID)
	if err != nil {
		return [2]string{}, err
	}
	slug := strings.ReplaceAll(name, " ", "-")
	base := strings.TrimRight(baseUrl, "/")

	var urls [2]string
	for i, segment := range timingSegments {
		urls[i] = fmt.Sprintf("%s/season-%d/%s/%s", base, year, slug, segment)
	}
	return urls, nil
}
