package telemetry

import (
	"fmt"
)

// API is what components report through instead of logging directly, so
// that tests can observe what a component reported.
//
// Ids name the component and method that reported, lowercase with dashes,
// ex. `client.fetch-page`. Packages keep them as `report_*` constants and
// wrap the API in a ScopedAPI to prefix their own namespace.
//
// note: fault injection point
type API interface {
	// ReportBroken reports a failure that needs fixing (a request that errored,
	// a file that could not be written).
	ReportBroken(id string, params ...any)
	// ReportWarning reports something unexpected that the run survives, like an
	// event page without a lap chart.
	ReportWarning(id string, params ...any)
	// ReportInfo reports progress that the person running the tool reads.
	ReportInfo(msg string, params ...any)
	// ReportDebug is only shown when verbose.
	ReportDebug(msg string, params ...any)
	// ReportCount reports the value of a counter at this point in time.
	ReportCount(id string, count int64)
}

// ScopedAPI prefixes every id and message with a namespace.
type ScopedAPI struct {
	namespace string
	inner     API
}

func NewScopedAPI(namespace string, inner API) ScopedAPI {
	return ScopedAPI{namespace: namespace, inner: inner}
}

func (s ScopedAPI) scoped(id string) string {
	return fmt.Sprintf("%s: %s", s.namespace, id)
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(s.scoped(id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(s.scoped(id), params...)
}

func (s ScopedAPI) ReportInfo(msg string, params ...any) {
	s.inner.ReportInfo(s.scoped(msg), params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(s.scoped(msg), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(s.scoped(id), count)
}
