package events

import "github.com/tohojo/stgit-console/internal/logging"

type SeriesTracer struct{}

var Series = SeriesTracer{}

func (SeriesTracer) Refreshed(branch string, patches int) {
	logging.Trace("series.refreshed", map[string]interface{}{"branch": branch, "patches": patches})
}

func (SeriesTracer) ParseFailed(err error) {
	logging.Trace("series.parse_failed", map[string]interface{}{"error": err.Error()})
}

func (SeriesTracer) Mark(name string, marked bool) {
	logging.Trace("series.mark", map[string]interface{}{"name": name, "marked": marked})
}

func (SeriesTracer) MarksCleared(count int) {
	logging.Trace("series.marks_cleared", map[string]interface{}{"count": count})
}

func (SeriesTracer) RangeAnchor(name string, active bool) {
	logging.Trace("series.range_anchor", map[string]interface{}{"name": name, "active": active})
}
