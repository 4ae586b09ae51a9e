package season

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"lapchart-scraper/internal/components/telemetry"
	"net/http"
	"time"

	"github.com/dimchansky/utfbom"
	"github.com/go-resty/resty/v2"
)

const (
	report_livetiming_fetch_season = "livetiming.fetch-season"
)

const DefaultLiveTimingURL = "https://livetiming.formula1.com"

var ErrLiveTimingStatus = errors.New("live timing: unexpected status")

type LiveSession struct {
	Key       int    `json:"Key"`
	Name      string `json:"Name"`
	Type      string `json:"Type"`
	StartDate string `json:"StartDate"`
	Path      string `json:"Path"`
}

type LiveMeeting struct {
	Key      int           `json:"Key"`
	Name     string        `json:"Name"`
	Location string        `json:"Location"`
	Sessions []LiveSession `json:"Sessions"`
}

// LiveSeason is the season index published by the live timing service.
type LiveSeason struct {
	Year     int           `json:"Year"`
	Meetings []LiveMeeting `json:"Meetings"`
}

// Events returns the meeting names in the order they are published.
func (s LiveSeason) Events() []string {
	names := make([]string, 0, len(s.Meetings))
	for _, m := range s.Meetings {
		names = append(names, m.Name)
	}
	return names
}

// Sessions returns the session names of the meeting called `event`.
func (s LiveSeason) Sessions(event string) []string {
	var names []string
	for _, m := range s.Meetings {
		if m.Name != event {
			continue
		}
		for _, session := range m.Sessions {
			names = append(names, session.Name)
		}
	}
	return names
}

type LiveTiming struct {
	http *resty.Client
	tel  telemetry.API
}

func NewLiveTiming(baseUrl string, tel telemetry.API) LiveTiming {
	tel = telemetry.NewScopedAPI("livetiming", tel)

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetTimeout(time.Second * 5)
	telemetry.InstrumentResty(client, tel, nil)

	return LiveTiming{http: client, tel: tel}
}

// FetchSeason downloads and decodes the season index of `year`.
func (l LiveTiming) FetchSeason(ctx context.Context, year int) (LiveSeason, error) {
	res, err := l.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/static/%d/Index.json", year))
	if err != nil {
		l.tel.ReportBroken(report_livetiming_fetch_season, "err", err, "year", year)
		return LiveSeason{}, fmt.Errorf("fetch season index: %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		l.tel.ReportWarning(report_livetiming_fetch_season, "year", year, "status", res.StatusCode())
		return LiveSeason{}, fmt.Errorf("%w: %d", ErrLiveTimingStatus, res.StatusCode())
	}

	// the index is served with a utf-8 byte order mark
	var out LiveSeason
	err = json.NewDecoder(utfbom.SkipOnly(bytes.NewReader(res.Body()))).Decode(&out)
	if err != nil {
		l.tel.ReportBroken(report_livetiming_fetch_season, "err", err, "year", year)
		return LiveSeason{}, fmt.Errorf("decode season index: %w", err)
	}
	return out, nil
}
