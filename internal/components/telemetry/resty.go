package telemetry

import (
	"context"
	"lapchart-scraper/lib/restyutil"
	"strconv"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
)

const (
	report_resty_request  = "resty.request"
	report_resty_response = "resty.response"
)

type requestIdKey struct{}

type restyHooks struct {
	tel    API
	output restyutil.MessageOutput
	nextId *atomic.Uint64
}

// InstrumentResty attaches request/response reporting to a resty client.
// `output` can be nil, if it isn't, every completed exchange is dumped to it.
func InstrumentResty(client *resty.Client, tel API, output restyutil.MessageOutput) {
	h := restyHooks{tel: tel, output: output, nextId: &atomic.Uint64{}}
	client.OnBeforeRequest(h.before)
	client.OnAfterResponse(h.after)
	client.OnError(h.failed)
}

func requestId(req *resty.Request) (uint64, bool) {
	id, ok := req.Context().Value(requestIdKey{}).(uint64)
	return id, ok
}

func (h restyHooks) before(_ *resty.Client, req *resty.Request) error {
	id := h.nextId.Add(1)
	req.SetContext(context.WithValue(req.Context(), requestIdKey{}, id))
	h.tel.ReportDebug(report_resty_request, "request_id", id, "method", req.Method, "url", req.URL)
	return nil
}

func (h restyHooks) after(_ *resty.Client, res *resty.Response) error {
	id, ok := requestId(res.Request)
	if !ok {
		return nil
	}
	h.tel.ReportDebug(
		report_resty_response,
		"request_id", id,
		"duration", res.Time().String(),
		"status", res.Status(),
		"size", res.Size(),
	)
	if h.output != nil {
		h.output.Write(strconv.FormatUint(id, 10), restyutil.FormatHttpMessage(res))
	}
	return nil
}

func (h restyHooks) failed(req *resty.Request, err error) {
	params := []any{"err", err, "method", req.Method, "url", req.URL}
	if id, ok := requestId(req); ok {
		params = append(params, "request_id", id)
	}
	h.tel.ReportBroken(report_resty_response, params...)
}
