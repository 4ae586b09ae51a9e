package telemetry

import "sync"

type Level string

const (
	LevelBroken  Level = "broken"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
	LevelDebug   Level = "debug"
	LevelCount   Level = "count"
)

type Report struct {
	Level  Level
	Id     string
	Params []any
}

// Recorder is an API that keeps every report in memory, for tests.
type Recorder struct {
	mutex   sync.Mutex
	reports []Report
}

func (r *Recorder) record(level Level, id string, params []any) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.reports = append(r.reports, Report{Level: level, Id: id, Params: params})
}

func (r *Recorder) ReportBroken(id string, params ...any) {
	r.record(LevelBroken, id, params)
}

func (r *Recorder) ReportWarning(id string, params ...any) {
	r.record(LevelWarning, id, params)
}

func (r *Recorder) ReportInfo(msg string, params ...any) {
	r.record(LevelInfo, msg, params)
}

func (r *Recorder) ReportDebug(msg string, params ...any) {
	r.record(LevelDebug, msg, params)
}

func (r *Recorder) ReportCount(id string, count int64) {
	r.record(LevelCount, id, []any{count})
}

// Reports returns the reports of `level` in the order they were made.
func (r *Recorder) Reports(level Level) []Report {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var out []Report
	for _, report := range r.reports {
		if report.Level == level {
			out = append(out, report)
		}
	}
	return out
}
