package fia

import (
	"context"
	"lapchart-scraper/internal/components/telemetry"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

const chartBytes = "%PDF-1.4 not really a chart"

type eventSite struct {
	*httptest.Server
	page      string
	pageCode  int
	pdfCode   int
	pdfServed atomic.Int32
}

func newEventSite(t *testing.T, page string, pageCode, pdfCode int) *eventSite {
	site := &eventSite{page: page, pageCode: pageCode, pdfCode: pdfCode}
	mux := http.NewServeMux()
	mux.HandleFunc("/race", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(site.pageCode)
		w.Write([]byte(site.page))
	})
	mux.HandleFunc("/doc/chart.pdf", func(w http.ResponseWriter, r *http.Request) {
		site.pdfServed.Add(1)
		w.WriteHeader(site.pdfCode)
		w.Write([]byte(chartBytes))
	})
	site.Server = httptest.NewServer(mux)
	t.Cleanup(site.Close)
	return site
}

func newTestClient(t *testing.T) (*Client, string) {
	dir := t.TempDir()
	return NewClient(ClientOptions{OutputDir: dir}, telemetry.SlogAPI{}), dir
}

const chartPage = `<html><body>
	<a href="/doc/entry.pdf">Entry List</a>
	<a href="/doc/chart.pdf">2024 Lap Chart</a>
</body></html>`

func TestLocateAndDownload(t *testing.T) {
	site := newEventSite(t, chartPage, http.StatusOK, http.StatusOK)
	client, dir := newTestClient(t)

	path, err := client.LocateAndDownload(context.Background(), site.URL+"/race", 2024, "bahrain_grand_prix")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "2024_bahrain_grand_prix_lap_chart.pdf"), path)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, chartBytes, string(contents))
	require.EqualValues(t, 1, site.pdfServed.Load())
}

func TestLocateAndDownloadOverwrites(t *testing.T) {
	site := newEventSite(t, chartPage, http.StatusOK, http.StatusOK)
	client, dir := newTestClient(t)

	for range 2 {
		_, err := client.LocateAndDownload(context.Background(), site.URL+"/race", 2024, "bahrain_grand_prix")
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.EqualValues(t, 2, site.pdfServed.Load())
}

func TestLocateAndDownloadPageNotFound(t *testing.T) {
	site := newEventSite(t, chartPage, http.StatusNotFound, http.StatusOK)
	client, dir := newTestClient(t)

	path, err := client.LocateAndDownload(context.Background(), site.URL+"/race", 2024, "bahrain_grand_prix")
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	require.Empty(t, path)
	require.Zero(t, site.pdfServed.Load())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestLocateAndDownloadNoLink(t *testing.T) {
	site := newEventSite(t, `<html><body>
		<a href="/doc/entry.pdf">Entry List</a>
		<a href="/doc/grid.pdf"></a>
	</body></html>`, http.StatusOK, http.StatusOK)
	rec := &telemetry.Recorder{}
	client := NewClient(ClientOptions{OutputDir: t.TempDir()}, rec)

	path, err := client.LocateAndDownload(context.Background(), site.URL+"/race", 2024, "bahrain_grand_prix")
	require.ErrorIs(t, err, ErrLapChartNotFound)
	require.Empty(t, path)
	require.Zero(t, site.pdfServed.Load())

	warnings := rec.Reports(telemetry.LevelWarning)
	require.Len(t, warnings, 1)
	require.Equal(t, "fia: client.locate", warnings[0].Id)

	var links [][]any
	for _, r := range rec.Reports(telemetry.LevelInfo) {
		if r.Id == "fia: pdf link on page" {
			links = append(links, r.Params)
		}
	}
	require.Equal(t, [][]any{
		{"text", "Entry List", "href", "/doc/entry.pdf"},
		{"text", "No text", "href", "/doc/grid.pdf"},
	}, links)
}

func TestLocateAndDownloadFailedDownload(t *testing.T) {
	site := newEventSite(t, chartPage, http.StatusOK, http.StatusInternalServerError)
	client, dir := newTestClient(t)

	path, err := client.LocateAndDownload(context.Background(), site.URL+"/race", 2024, "bahrain_grand_prix")
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	require.Empty(t, path)

	_, err = os.Stat(filepath.Join(dir, LapChartFilename(2024, "bahrain_grand_prix")))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocateAndDownloadUnreachable(t *testing.T) {
	site := newEventSite(t, chartPage, http.StatusOK, http.StatusOK)
	url := site.URL + "/race"
	site.Close()

	client, _ := newTestClient(t)
	_, err := client.LocateAndDownload(context.Background(), url, 2024, "bahrain_grand_prix")
	require.Error(t, err)
}

type memoryOutput struct {
	mu       sync.Mutex
	messages map[string]string
}

func (o *memoryOutput) Write(id string, contents string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages[id] = contents
}

func TestLocateAndDownloadDumpsMessages(t *testing.T) {
	site := newEventSite(t, chartPage, http.StatusOK, http.StatusOK)
	out := &memoryOutput{messages: map[string]string{}}
	client := NewClient(ClientOptions{OutputDir: t.TempDir(), MessageOutput: out}, telemetry.SlogAPI{})

	_, err := client.LocateAndDownload(context.Background(), site.URL+"/race", 2024, "bahrain_grand_prix")
	require.NoError(t, err)

	require.Len(t, out.messages, 2)
	require.Contains(t, out.messages["1"], "GET "+site.URL+"/race")
	require.Contains(t, out.messages["1"], "2024 Lap Chart")
	require.Contains(t, out.messages["2"], "GET "+site.URL+"/doc/chart.pdf")
}
