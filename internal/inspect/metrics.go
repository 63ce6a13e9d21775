package inspect

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// scanMetrics tracks scan activity for the /metrics endpoint.
type scanMetrics struct {
	scansTotal   prometheus.Counter
	scanFailures prometheus.Counter
	scanDuration prometheus.Histogram
	routeCount   prometheus.Gauge
	layoutCount  prometheus.Gauge
}

// newScanMetrics registers the scan metrics with the given registry.
func newScanMetrics(reg prometheus.Registerer) *scanMetrics {
	factory := promauto.With(reg)
	return &scanMetrics{
		scansTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "routemap",
			Name:      "scans_total",
			Help:      "Total number of route scans performed.",
		}),
		scanFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "routemap",
			Name:      "scan_failures_total",
			Help:      "Total number of route scans that failed.",
		}),
		scanDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "routemap",
			Name:      "scan_duration_seconds",
			Help:      "Route scan duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
		routeCount: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "routemap",
			Name:      "routes",
			Help:      "Number of page and endpoint records in the last scan.",
		}),
		layoutCount: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "routemap",
			Name:      "layouts",
			Help:      "Number of layout records in the last scan.",
		}),
	}
}
