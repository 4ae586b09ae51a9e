package fia

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"lapchart-scraper/internal/components/assert"
	"lapchart-scraper/internal/components/telemetry"
	"lapchart-scraper/internal/season"
	"lapchart-scraper/lib/pdfutil"
	"lapchart-scraper/lib/restyutil"
	"net/http"
	"os"
	"path/filepath"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	report_client_fetch_page = "client.fetch-page"
	report_client_locate     = "client.locate"
	report_client_download   = "client.download"
)

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

var (
	ErrRaceOutOfRange   = season.ErrRaceOutOfRange
	ErrUnexpectedStatus = errors.New("unexpected http status")
	ErrLapChartNotFound = errors.New("lap chart link not found")
)

type ClientOptions struct {
	UserAgent string
	// BypassCloudflare swaps the transport for one that mimics a browser's
	// TLS handshake and headers.
	BypassCloudflare bool
	// OutputDir is where downloaded charts are written, defaults to the
	// working directory.
	OutputDir string
	// MessageOutput receives a dump of every http exchange, can be nil.
	MessageOutput restyutil.MessageOutput
	Timeout       time.Duration
}

// Client fetches event pages and downloads the lap chart they link to.
type Client struct {
	http      *resty.Client
	outputDir string
	tel       telemetry.API
}

func NewClient(opts ClientOptions, tel telemetry.API) *Client {
	assert.NotNil("tel", tel)
	tel = telemetry.NewScopedAPI("fia", tel)

	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}

	httpClient := resty.New()
	if opts.BypassCloudflare {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}
	httpClient.SetHeader("user-agent", opts.UserAgent)
	httpClient.SetTimeout(opts.Timeout)

	// 2 requests max per second
	rateLimiter := rate.NewLimiter(2, 2)
	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return rateLimiter.Wait(req.Context())
	})

	telemetry.InstrumentResty(httpClient, tel, opts.MessageOutput)

	return &Client{
		http:      httpClient,
		outputDir: opts.OutputDir,
		tel:       tel,
	}
}

// LapChartFilename is the name a race's downloaded chart is saved under,
// `raceName` being the formatted race name.
func LapChartFilename(year int, raceName string) string {
	return fmt.Sprintf("%d_%s_lap_chart.pdf", year, raceName)
}

// FetchPage gets `pageUrl` and parses it as html, any status other than 200
// returns ErrUnexpectedStatus.
func (c *Client) FetchPage(ctx context.Context, pageUrl string) (*goquery.Document, error) {
	c.tel.ReportInfo("fetching event page", "url", pageUrl)

	res, err := c.http.R().
		SetContext(ctx).
		Get(pageUrl)
	if err != nil {
		c.tel.ReportBroken(report_client_fetch_page, "err", err, "url", pageUrl)
		return nil, fmt.Errorf("fetch event page: %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		c.tel.ReportWarning(report_client_fetch_page, "url", pageUrl, "status", res.StatusCode())
		return nil, fmt.Errorf("fetch event page: %w: %d", ErrUnexpectedStatus, res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		c.tel.ReportBroken(report_client_fetch_page, "err", err, "url", pageUrl)
		return nil, fmt.Errorf("parse event page: %w", err)
	}
	return doc, nil
}

// LocateAndDownload finds the lap chart linked from the event page at
// `pageUrl` and saves it into the output directory, returning the path of
// the written file.
//
// Every failure is recoverable from the caller's point of view: a bad
// status, a missing link or a failed download leave nothing on disk.
func (c *Client) LocateAndDownload(ctx context.Context, pageUrl string, year int, raceName string) (string, error) {
	doc, err := c.FetchPage(ctx, pageUrl)
	if err != nil {
		return "", err
	}

	href, ok := FindLapChartLink(ctx, doc)
	if !ok {
		anchors := PDFAnchors(ctx, doc.Selection)
		c.tel.ReportWarning(report_client_locate, "url", pageUrl, "pdf_links", len(anchors))
		for _, a := range anchors {
			text := a.Text
			if text == "" {
				text = "No text"
			}
			c.tel.ReportInfo("pdf link on page", "text", text, "href", a.Href)
		}
		return "", fmt.Errorf("%w on %s", ErrLapChartNotFound, pageUrl)
	}

	link, err := ResolveLink(pageUrl, href)
	if err != nil {
		c.tel.ReportBroken(report_client_locate, "err", err, "url", pageUrl, "href", href)
		return "", err
	}

	path := filepath.Join(c.outputDir, LapChartFilename(year, raceName))
	err = c.download(ctx, link, path)
	if err != nil {
		return "", err
	}
	return path, nil
}

func (c *Client) download(ctx context.Context, link, path string) error {
	c.tel.ReportInfo("downloading lap chart", "url", link)

	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		c.tel.ReportBroken(report_client_download, "err", err, "url", link)
		return fmt.Errorf("download lap chart: %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		c.tel.ReportWarning(report_client_download, "url", link, "status", res.StatusCode())
		return fmt.Errorf("download lap chart: %w: %d", ErrUnexpectedStatus, res.StatusCode())
	}

	body := res.Body()
	pages, err := pdfutil.PageCount(body)
	if err != nil {
		// diagnostic only, the file is kept either way
		c.tel.ReportWarning(report_client_download, "url", link, "err", err)
	}

	err = os.WriteFile(path, body, 0644)
	if err != nil {
		c.tel.ReportBroken(report_client_download, "err", err, "path", path)
		return fmt.Errorf("write lap chart: %w", err)
	}

	c.tel.ReportInfo(
		"downloaded lap chart",
		"path", path,
		"size", humanize.Bytes(uint64(len(body))),
		"pages", pages,
	)
	return nil
}
