// Package metrics exposes the site's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gyansetu"

// Metrics holds the collectors. A nil *Metrics records nothing.
type Metrics struct {
	registry     *prometheus.Registry
	pageRenders  *prometheus.CounterVec
	liveEvents   *prometheus.CounterVec
	liveSessions prometheus.Gauge
	themeToggles *prometheus.CounterVec
	exportedFile prometheus.Counter
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		pageRenders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Server-side page renders by page and status code",
		}, []string{"page", "code"}),
		liveEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "live_events_total",
			Help:      "Live client events by type and outcome",
		}, []string{"type", "status"}),
		liveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_sessions",
			Help:      "Open live websocket sessions",
		}),
		themeToggles: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_toggles_total",
			Help:      "Theme toggles by resulting mode and channel",
		}, []string{"mode", "via"}),
		exportedFile: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "export_files_total",
			Help:      "Files written by static exports",
		}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) PageRendered(page, code string) {
	if m == nil {
		return
	}
	m.pageRenders.WithLabelValues(page, code).Inc()
}

func (m *Metrics) LiveEvent(typ, status string) {
	if m == nil {
		return
	}
	m.liveEvents.WithLabelValues(typ, status).Inc()
}

func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.liveSessions.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.liveSessions.Dec()
}

func (m *Metrics) ThemeToggled(mode, via string) {
	if m == nil {
		return
	}
	m.themeToggles.WithLabelValues(mode, via).Inc()
}

func (m *Metrics) FileExported() {
	if m == nil {
		return
	}
	m.exportedFile.Inc()
}
