package telemetry

import (
	"log/slog"
)

// SlogAPI implements API using the log/slog package.
//
// params are logged as slog key-value pairs, so callers pass them as
// alternating keys and values.
type SlogAPI struct{}

func (s SlogAPI) ReportBroken(id string, params ...any) {
	slog.Error("broken component", append([]any{"id", id}, params...)...)
}

func (s SlogAPI) ReportWarning(id string, params ...any) {
	slog.Warn("warning", append([]any{"id", id}, params...)...)
}

func (s SlogAPI) ReportInfo(msg string, params ...any) {
	slog.Info(msg, params...)
}

func (s SlogAPI) ReportDebug(msg string, params ...any) {
	slog.Debug(msg, params...)
}

func (s SlogAPI) ReportCount(id string, count int64) {
	slog.Info("count", "id", id, "n", count)
}
