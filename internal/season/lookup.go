package season

import (
	"errors"
	"fmt"
	"lapchart-scraper/lib/textutil"
	"strings"

	"github.com/antzucaro/matchr"
)

var ErrNoMatch = errors.New("no race matches")

// minSimilarity is the lowest Jaro-Winkler score accepted as a match.
const minSimilarity = 0.8

type Match struct {
	RaceID     int
	Name       string
	Similarity float64
}

func similarity(query, name string) float64 {
	full := textutil.NormalizeName(name)
	short := textutil.NormalizeName(strings.TrimSuffix(name, " Grand Prix"))
	if query == full || query == short {
		return 1
	}
	return max(
		matchr.JaroWinkler(query, full, false),
		matchr.JaroWinkler(query, short, false),
	)
}

// FindRace resolves a loosely typed race name ("abu dhabi", "sao paulo gp")
// to its race ordinal in `year`.
func FindRace(year int, query string) (Match, error) {
	normalized := textutil.NormalizeName(query)
	if normalized == "" {
		return Match{}, fmt.Errorf("%w: empty query", ErrNoMatch)
	}

	var best Match
	for i, name := range events[year] {
		sim := similarity(normalized, name)
		if sim > best.Similarity {
			best = Match{RaceID: i + 1, Name: name, Similarity: sim}
		}
	}

	if best.Similarity < minSimilarity {
		return Match{}, fmt.Errorf("%w: %q in season %d", ErrNoMatch, query, year)
	}
	return best, nil
}
