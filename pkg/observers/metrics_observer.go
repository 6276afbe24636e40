package observers

import (
	"errors"

	"github.com/anggasct/points"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsObserver exports junction activity as Prometheus metrics
type MetricsObserver struct {
	entries *prometheus.CounterVec
	blocked *prometheus.CounterVec
	errors  *prometheus.CounterVec
	state   *prometheus.GaugeVec
}

// NewMetricsObserver creates a metrics observer and registers its collectors with reg.
// A nil reg means prometheus.DefaultRegisterer.
func NewMetricsObserver(reg prometheus.Registerer) (*MetricsObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &MetricsObserver{
		entries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "points",
				Subsystem: "junction",
				Name:      "entries_total",
				Help:      "Total number of vehicles routed by a junction",
			},
			[]string{"junction", "type", "entry", "exit"},
		),
		blocked: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "points",
				Subsystem: "junction",
				Name:      "blocked_total",
				Help:      "Total number of arrivals with no valid exit",
			},
			[]string{"junction", "type"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "points",
				Subsystem: "junction",
				Name:      "errors_total",
				Help:      "Total number of rejected arrivals",
			},
			[]string{"junction"},
		),
		state: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "points",
				Subsystem: "junction",
				Name:      "state",
				Help:      "Current switching state of a junction",
			},
			[]string{"junction"},
		),
	}
	for _, c := range []prometheus.Collector{o.entries, o.blocked, o.errors, o.state} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// OnEnter records a routed arrival and the new state
func (o *MetricsObserver) OnEnter(event points.EnterEvent) {
	junction := junctionLabel(event.JunctionID, event.JunctionName)
	o.entries.WithLabelValues(junction, event.Type.String(), event.Entry.String(), event.Exit.String()).Inc()
	o.state.WithLabelValues(junction).Set(float64(event.ToState))
}

// OnBlocked records an arrival with no valid exit
func (o *MetricsObserver) OnBlocked(event points.EnterEvent) {
	o.blocked.WithLabelValues(junctionLabel(event.JunctionID, event.JunctionName), event.Type.String()).Inc()
}

// OnError records a rejected arrival
func (o *MetricsObserver) OnError(err error) {
	junction := "unknown"
	var entryErr *points.InvalidEntryDirectionError
	if errors.As(err, &entryErr) {
		junction = junctionLabel(entryErr.JunctionID, entryErr.JunctionName)
	}
	o.errors.WithLabelValues(junction).Inc()
}

func junctionLabel(id, name string) string {
	if name != "" {
		return name
	}
	if id != "" {
		return id
	}
	return "unknown"
}
