// Package pipeline drives the scraper: for every race it locates and
// downloads the lap chart, then has it extracted to csv.
//
// Races are processed strictly one after another with a fixed pause in
// between, the extraction service allows only a handful of requests a minute.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"lapchart-scraper/internal/components/assert"
	"lapchart-scraper/internal/components/chrono"
	"lapchart-scraper/internal/components/telemetry"
	"lapchart-scraper/internal/extract"
	"lapchart-scraper/internal/fia"
	"lapchart-scraper/internal/season"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

const (
	report_pipeline_process_race = "pipeline.process-race"
	report_pipeline_validate     = "pipeline.validate"
	report_pipeline_run_batch    = "pipeline.run-batch"
)

var (
	tracer = otel.Tracer("lapchart.internal.pipeline")
	meter  = otel.Meter("lapchart.internal.pipeline")
)

const DefaultPause = 15 * time.Second

// Locator finds and downloads the lap chart linked from an event page.
type Locator interface {
	LocateAndDownload(ctx context.Context, pageUrl string, year int, raceName string) (string, error)
}

// Extractor turns a downloaded lap chart into a csv file.
type Extractor interface {
	ExtractCSV(ctx context.Context, pdfPath string, year int, raceName string) (string, error)
}

type Status string

const (
	StatusExtracted Status = "extracted"
	StatusNoChart   Status = "no-chart"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

type Result struct {
	Year    int
	RaceID  int
	Race    string
	PageUrl string
	PDFPath string
	CSVPath string
	Status  Status
	// Issues is only filled when validation is enabled.
	Issues []extract.Issue
}

type Options struct {
	BaseUrl string
	// Pause is waited after every processed race, zero means DefaultPause.
	Pause time.Duration
	// Validate runs extract.ValidateCSV on every generated csv and reports
	// what it finds, it never fails a race.
	Validate bool
}

type Pipeline struct {
	locator   Locator
	extractor Extractor
	time      chrono.API
	tel       telemetry.API
	opts      Options
	races     metric.Int64Counter
}

func New(locator Locator, extractor Extractor, clock chrono.API, tel telemetry.API, opts Options) (Pipeline, error) {
	assert.NotNil("locator", locator)
	assert.NotNil("extractor", extractor)
	assert.NotNil("clock", clock)
	assert.NotNil("tel", tel)

	if opts.BaseUrl == "" {
		opts.BaseUrl = fia.DefaultBaseURL
	}
	if opts.Pause <= 0 {
		opts.Pause = DefaultPause
	}
	races, err := meter.Int64Counter(
		"lapchart.races",
		metric.WithDescription("The amount of races processed, by outcome."),
	)
	if err != nil {
		return Pipeline{}, err
	}
	return Pipeline{
		locator:   locator,
		extractor: extractor,
		time:      clock,
		tel:       telemetry.NewScopedAPI("pipeline", tel),
		opts:      opts,
		races:     races,
	}, nil
}

// ProcessRace runs a single race through the pipeline. The second event page
// is only tried when the first one yields no chart.
//
// Recoverable failures (no chart on either page, missing pdf) are reported
// through Result.Status with a nil error. The returned error is only set for
// failures that should stop the batch's current season: an out of range race
// or a failing extraction service.
func (p Pipeline) ProcessRace(ctx context.Context, year, raceID int) (Result, error) {
	ctx, span := tracer.Start(ctx, "pipeline:ProcessRace")
	defer span.End()
	span.SetAttributes(attribute.Int("year", year), attribute.Int("race_id", raceID))

	result := Result{Year: year, RaceID: raceID, Status: StatusFailed}

	name, err := season.RaceName(year, raceID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to resolve race")
		return result, err
	}
	result.Race = name
	raceName := season.FormatRaceName(name)

	urls, err := fia.EventURLs(p.opts.BaseUrl, year, raceID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to resolve event urls")
		return result, err
	}

	for _, pageUrl := range urls {
		pdfPath, err := p.locator.LocateAndDownload(ctx, pageUrl, year, raceName)
		if err == nil {
			result.PageUrl = pageUrl
			result.PDFPath = pdfPath
			break
		}
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		p.tel.ReportDebug("no chart from event page", "url", pageUrl, "err", err)
	}
	if result.PDFPath == "" {
		p.tel.ReportWarning(report_pipeline_process_race, "year", year, "race", name, "reason", "no lap chart")
		return p.finish(ctx, result, StatusNoChart), nil
	}

	csvPath, err := p.extractor.ExtractCSV(ctx, result.PDFPath, year, raceName)
	if errors.Is(err, extract.ErrPDFNotFound) {
		p.tel.ReportWarning(report_pipeline_process_race, "year", year, "race", name, "err", err)
		return p.finish(ctx, result, StatusSkipped), nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract csv")
		p.finish(ctx, result, StatusFailed)
		return result, fmt.Errorf("extract %d %s: %w", year, name, err)
	}
	result.CSVPath = csvPath

	if p.opts.Validate {
		result.Issues = p.validate(csvPath)
	}
	return p.finish(ctx, result, StatusExtracted), nil
}

func (p Pipeline) finish(ctx context.Context, result Result, status Status) Result {
	result.Status = status
	p.races.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(status))))
	return result
}

func (p Pipeline) validate(csvPath string) []extract.Issue {
	f, err := os.Open(csvPath)
	if err != nil {
		p.tel.ReportBroken(report_pipeline_validate, "err", err, "path", csvPath)
		return nil
	}
	defer f.Close()

	issues, err := extract.ValidateCSV(f)
	if err != nil {
		p.tel.ReportWarning(report_pipeline_validate, "err", err, "path", csvPath)
	}
	for _, issue := range issues {
		p.tel.ReportWarning(report_pipeline_validate, "path", csvPath, "issue", issue.String())
	}
	return issues
}

// RunBatch processes every race of every season in `years`, waiting
// Options.Pause after each one.
//
// An error from ProcessRace abandons the rest of that season and the batch
// moves on to the next one. Only cancellation of `ctx` stops the batch early.
func (p Pipeline) RunBatch(ctx context.Context, years []int) ([]Result, error) {
	var results []Result
	for _, year := range years {
		seasonResults, err := p.runSeason(ctx, year)
		results = append(results, seasonResults...)
		p.reportSeason(year, seasonResults)
		if err != nil {
			return results, err
		}
	}

	p.tel.ReportInfo("finished processing all specified races", "races", len(results))
	return results, nil
}

// runSeason only returns an error when ctx is done.
func (p Pipeline) runSeason(ctx context.Context, year int) ([]Result, error) {
	total := len(season.Events(year))
	p.tel.ReportInfo("processing season", "year", year, "races", total)

	var results []Result
	for raceID := 1; raceID <= total; raceID++ {
		result, err := p.ProcessRace(ctx, year, raceID)
		results = append(results, result)
		if ctx.Err() != nil {
			return results, ctx.Err()
		}
		if err != nil {
			p.tel.ReportBroken(report_pipeline_run_batch, "err", err, "year", year, "race_id", raceID)
			return results, nil
		}

		p.tel.ReportInfo("waiting before next race", "pause", p.opts.Pause.String())
		err = p.time.Sleep(ctx, p.opts.Pause)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

var statuses = []Status{StatusExtracted, StatusNoChart, StatusSkipped, StatusFailed}

// reportSeason reports how many races of `year` ended in each status,
// as `season-{year}.{status}` counts.
func (p Pipeline) reportSeason(year int, results []Result) {
	if len(results) == 0 {
		return
	}
	counts := map[Status]int64{}
	for _, r := range results {
		counts[r.Status]++
	}
	for _, status := range statuses {
		p.tel.ReportCount(fmt.Sprintf("season-%d.%s", year, status), counts[status])
	}
}
