package history

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Skip reasons used as the "reason" label of Metrics.Skipped.
const (
	reasonDanglingOwner = "dangling_owner"
	reasonWriteFailed   = "write_failed"
)

// Metrics counts history traffic. Passing a nil Registerer to NewMetrics gives
// unregistered collectors, which is what a Stack uses by default.
type Metrics struct {
	Records   prometheus.Counter
	Undos     prometheus.Counter
	Redos     prometheus.Counter
	Discarded prometheus.Counter
	Skipped   *prometheus.CounterVec
	Entries   prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Records: factory.NewCounter(prometheus.CounterOpts{
			Name: "editor_history_records_total",
			Help: "Total number of edits committed to history",
		}),
		Undos: factory.NewCounter(prometheus.CounterOpts{
			Name: "editor_history_undo_steps_total",
			Help: "Total number of entries stepped back over, including history jumps",
		}),
		Redos: factory.NewCounter(prometheus.CounterOpts{
			Name: "editor_history_redo_steps_total",
			Help: "Total number of entries stepped forward over, including history jumps",
		}),
		Discarded: factory.NewCounter(prometheus.CounterOpts{
			Name: "editor_history_discarded_total",
			Help: "Entries dropped from history by a new recording or the size limit",
		}),
		Skipped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "editor_history_skipped_applies_total",
			Help: "Undo/redo steps whose value write was skipped",
		}, []string{"reason"}),
		Entries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "editor_history_entries",
			Help: "Current number of entries in history",
		}),
	}
}
