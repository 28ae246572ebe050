package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	datasetAdsDesc = prometheus.NewDesc(
		"jobinsights_dataset_job_ads",
		"Job ads loaded at startup by title",
		[]string{"title"},
		nil,
	)
	datasetPatternsDesc = prometheus.NewDesc(
		"jobinsights_keyword_patterns",
		"Compiled keyword patterns by set",
		[]string{"set"},
		nil,
	)

	passDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "jobinsights_report_pass_duration_seconds",
		Help:    "Time spent computing one report pass",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
	})
	passesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "jobinsights_report_passes_total",
		Help: "Report passes by outcome",
	}, []string{"outcome"})
)

// Dataset describes the loaded data exposed on every scrape.
type Dataset interface {
	AdsByTitle() map[string]int
	PatternCounts() map[string]int
}

// DatasetCollector is a custom Prometheus collector that reports the loaded
// dataset on each scrape.
type DatasetCollector struct {
	ds Dataset
}

// Describe sends the metric descriptors to the channel.
func (c *DatasetCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- datasetAdsDesc
	ch <- datasetPatternsDesc
}

// Collect emits the ad count per title and the pattern count per set.
func (c *DatasetCollector) Collect(ch chan<- prometheus.Metric) {
	for title, n := range c.ds.AdsByTitle() {
		ch <- prometheus.MustNewConstMetric(datasetAdsDesc, prometheus.GaugeValue, float64(n), title)
	}
	for set, n := range c.ds.PatternCounts() {
		ch <- prometheus.MustNewConstMetric(datasetPatternsDesc, prometheus.GaugeValue, float64(n), set)
	}
}

var initOnce sync.Once

// Init registers the collectors with the default registry.
// Must be called once at startup.
func Init(ds Dataset) {
	initOnce.Do(func() {
		prometheus.MustRegister(passDuration, passesTotal, &DatasetCollector{ds: ds})
	})
}

// ObservePass records one report pass. It matches insights.Settings.OnPass.
func ObservePass(elapsed time.Duration, empty bool) {
	passDuration.Observe(elapsed.Seconds())
	outcome := "ok"
	if empty {
		outcome = "empty"
	}
	passesTotal.WithLabelValues(outcome).Inc()
}
