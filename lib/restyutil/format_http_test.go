package restyutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func TestFormatHttpMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/chart.pdf" {
			w.Header().Set("Content-Type", "application/pdf")
			w.Write([]byte{0x25, 0x50, 0x44, 0x46, 0xff, 0xfe, 0x00})
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>Lap Chart</html>"))
	}))
	defer srv.Close()

	client := resty.New().SetHeader("X-Test", "1")

	res, err := client.R().Get(srv.URL + "/race")
	require.NoError(t, err)
	message := FormatHttpMessage(res)
	require.True(t, strings.HasPrefix(message, "---- REQUEST ----\n\nGET "+srv.URL+"/race\n"))
	require.Contains(t, message, "X-Test: 1\n")
	require.Contains(t, message, "---- RESPONSE ----\n\n200 "+srv.URL+"/race\n")
	require.Contains(t, message, "<html>Lap Chart</html>\n")

	res, err = client.R().Get(srv.URL + "/chart.pdf")
	require.NoError(t, err)
	require.Contains(t, FormatHttpMessage(res), "<7 BYTES OF BINARY CONTENT: application/pdf>")
}

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dumps")
	output, err := NewFilesystemOutput(dir)
	require.NoError(t, err)

	output.Write("1", "contents")
	contents, err := os.ReadFile(filepath.Join(dir, "1"))
	require.NoError(t, err)
	require.Equal(t, "contents", string(contents))

	// a new output starts from an empty directory
	_, err = NewFilesystemOutput(dir)
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestFormatHttpMessageRequestBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	// the request body is only readable while the response hooks run
	var message string
	client := resty.New().OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		message = FormatHttpMessage(res)
		return nil
	})
	_, err := client.R().
		SetHeader("Content-Type", "text/plain").
		SetBody("year=2024").
		Post(srv.URL + "/submit")
	require.NoError(t, err)

	require.Contains(t, message, "POST "+srv.URL+"/submit\n")
	require.Contains(t, message, "year=2024\n")
	require.Contains(t, message, "<EMPTY BODY>\n")
}
