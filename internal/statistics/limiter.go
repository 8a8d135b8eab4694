package statistics

import (
	"github.com/markusressel/fps2go/internal/controller"
	"github.com/prometheus/client_golang/prometheus"
)

const limiterSubsystem = "limiter"

type LimiterCollector struct {
	controller controller.LimitController

	value             *prometheus.Desc
	enabled           *prometheus.Desc
	load              *prometheus.Desc
	applyCount        *prometheus.Desc
	applyFailureCount *prometheus.Desc
	notificationCount *prometheus.Desc
}

func NewLimiterCollector(controller controller.LimitController) *LimiterCollector {
	return &LimiterCollector{
		controller: controller,
		value: prometheus.NewDesc(prometheus.BuildFQName(namespace, limiterSubsystem, "value"),
			"Limit currently applied to the host",
			nil, nil,
		),
		enabled: prometheus.NewDesc(prometheus.BuildFQName(namespace, limiterSubsystem, "enabled"),
			"1 if the limiter actively adjusts the limit, 0 otherwise",
			nil, nil,
		),
		load: prometheus.NewDesc(prometheus.BuildFQName(namespace, limiterSubsystem, "load"),
			"Load seen by the last evaluation",
			nil, nil,
		),
		applyCount: prometheus.NewDesc(prometheus.BuildFQName(namespace, limiterSubsystem, "apply_count"),
			"Counter for limits handed to the actuator",
			nil, nil,
		),
		applyFailureCount: prometheus.NewDesc(prometheus.BuildFQName(namespace, limiterSubsystem, "apply_failure_count"),
			"Counter for limits the actuator failed to apply",
			nil, nil,
		),
		notificationCount: prometheus.NewDesc(prometheus.BuildFQName(namespace, limiterSubsystem, "notification_count"),
			"Counter for limit change notifications sent to privileged sessions",
			nil, nil,
		),
	}
}

func (collector *LimiterCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.value
	ch <- collector.enabled
	ch <- collector.load
	ch <- collector.applyCount
	ch <- collector.applyFailureCount
	ch <- collector.notificationCount
}

// Collect implements required collect function for all prometheus collectors
func (collector *LimiterCollector) Collect(ch chan<- prometheus.Metric) {
	status := collector.controller.Status()
	stats := collector.controller.GetStatistics()

	// nothing was applied yet
	if status.CurrentValue != nil {
		ch <- prometheus.MustNewConstMetric(collector.value, prometheus.GaugeValue, float64(*status.CurrentValue))
	}
	enabled := 0.0
	if status.Enabled {
		enabled = 1
	}
	ch <- prometheus.MustNewConstMetric(collector.enabled, prometheus.GaugeValue, enabled)
	ch <- prometheus.MustNewConstMetric(collector.load, prometheus.GaugeValue, float64(status.CurrentLoad))
	ch <- prometheus.MustNewConstMetric(collector.applyCount, prometheus.CounterValue, float64(stats.ApplyCount))
	ch <- prometheus.MustNewConstMetric(collector.applyFailureCount, prometheus.CounterValue, float64(stats.ApplyFailureCount))
	ch <- prometheus.MustNewConstMetric(collector.notificationCount, prometheus.CounterValue, float64(stats.NotificationCount))
}
