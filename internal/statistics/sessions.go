package statistics

import (
	"github.com/markusressel/fps2go/internal/sessions"
	"github.com/prometheus/client_golang/prometheus"
)

const sessionsSubsystem = "sessions"

type SessionsCollector struct {
	tracker    *sessions.Tracker
	connected  *prometheus.Desc
	privileged *prometheus.Desc
}

func NewSessionsCollector(tracker *sessions.Tracker) *SessionsCollector {
	return &SessionsCollector{
		tracker: tracker,
		connected: prometheus.NewDesc(prometheus.BuildFQName(namespace, sessionsSubsystem, "connected"),
			"Number of connected sessions",
			nil, nil,
		),
		privileged: prometheus.NewDesc(prometheus.BuildFQName(namespace, sessionsSubsystem, "privileged"),
			"Number of connected privileged sessions",
			nil, nil,
		),
	}
}

func (collector *SessionsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.connected
	ch <- collector.privileged
}

func (collector *SessionsCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(collector.connected, prometheus.GaugeValue, float64(collector.tracker.Count()))
	ch <- prometheus.MustNewConstMetric(collector.privileged, prometheus.GaugeValue, float64(len(collector.tracker.Privileged())))
}
