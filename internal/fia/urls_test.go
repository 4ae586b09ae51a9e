package fia

import (
	"lapchart-scraper/internal/season"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventURLs(t *testing.T) {
	urls, err := EventURLs(DefaultBaseURL, 2021, 1)
	require.NoError(t, err)

	require.Equal(
		t,
		"https://www.fia.com/events/fia-formula-one-world-championship/season-2021/Abu-Dhabi-Grand-Prix/eventtiming-information",
		urls[0],
	)
	require.Equal(
		t,
		"https://www.fia.com/events/fia-formula-one-world-championship/season-2021/Abu-Dhabi-Grand-Prix/eventtiming",
		urls[1],
	)
}

func TestEventURLsDifferOnlyInLastSegment(t *testing.T) {
	for year := season.FirstYear; year <= 2025; year++ {
		for raceID := 1; raceID <= len(season.Events(year)); raceID++ {
			urls, err := EventURLs(DefaultBaseURL+"/", year, raceID)
			require.NoError(t, err)
			require.NotEmpty(t, urls[0])
			require.NotEmpty(t, urls[1])
			require.NotEqual(t, urls[0], urls[1])
			require.Equal(t, path.Dir(urls[0]), path.Dir(urls[1]))
			require.False(t, strings.Contains(urls[0], " "))
		}
	}
}

func TestEventURLsOutOfRange(t *testing.T) {
	_, err := EventURLs(DefaultBaseURL, 2021, 23)
	require.ErrorIs(t, err, season.ErrRaceOutOfRange)

	_, err = EventURLs(DefaultBaseURL, 2021, 0)
	require.ErrorIs(t, err, season.ErrRaceOutOfRange)
}
