package restyutil

import (
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// text bodies longer than this are cut, event pages run to a few hundred KB
const maxDumpedBody = 64 * 1024

func writeHeaders(out *strings.Builder, headers http.Header) {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		for _, v := range headers[k] {
			fmt.Fprintf(out, "%s: %s\n", k, v)
		}
	}
}

func writeBody(out *strings.Builder, body []byte, contentType string) {
	switch {
	case len(body) == 0:
		out.WriteString("<EMPTY BODY>\n")
	case !utf8.Valid(body):
		fmt.Fprintf(out, "<%d BYTES OF BINARY CONTENT: %s>\n", len(body), contentType)
	case len(body) > maxDumpedBody:
		out.Write(body[:maxDumpedBody])
		fmt.Fprintf(out, "\n<%d MORE BYTES>\n", len(body)-maxDumpedBody)
	default:
		out.Write(body)
		out.WriteString("\n")
	}
}

func requestBody(req *http.Request) ([]byte, error) {
	if req == nil || req.GetBody == nil {
		return nil, nil
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}
	defer body.Close()
	return io.ReadAll(body)
}

// FormatHttpMessage renders a completed exchange as plain text: the request
// line, headers and body followed by the status, final url, headers and body
// of the response.
func FormatHttpMessage(res *resty.Response) string {
	var out strings.Builder

	out.WriteString("---- REQUEST ----\n\n")
	fmt.Fprintf(&out, "%s %s\n\n", res.Request.Method, res.Request.URL)
	if raw := res.Request.RawRequest; raw != nil {
		writeHeaders(&out, raw.Header)
		out.WriteString("\n")
		body, err := requestBody(raw)
		if err != nil {
			fmt.Fprintf(&out, "<FAILED TO READ BODY: %s>\n", err)
		} else {
			writeBody(&out, body, raw.Header.Get("Content-Type"))
		}
	}

	finalUrl := res.Request.URL
	if res.RawResponse != nil && res.RawResponse.Request != nil {
		finalUrl = res.RawResponse.Request.URL.String()
	}

	out.WriteString("\n---- RESPONSE ----\n\n")
	fmt.Fprintf(&out, "%d %s\n\n", res.StatusCode(), finalUrl)
	writeHeaders(&out, res.Header())
	out.WriteString("\n")
	writeBody(&out, res.Body(), res.Header().Get("Content-Type"))

	return out.String()
}
