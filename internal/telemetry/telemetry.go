// Package telemetry provides Prometheus-based metrics collection for the runtime string lookup.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//nolint:gochecknoglobals // Package-level registry and metrics required by Prometheus
var (
	registry *prometheus.Registry

	// LookupsTotal counts string lookups by table and whether a translation was found.
	LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stringcat_lookups_total",
			Help: "Total number of localized string lookups",
		},
		[]string{"table", "found"},
	)

	// MissingTranslationsTotal counts lookups that fell back to the default value.
	MissingTranslationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stringcat_missing_translations_total",
			Help: "Total number of lookups that fell back to the default value",
		},
		[]string{"table"},
	)
)

// Configure initializes the telemetry registry and registers the provided collectors.
// If useDefaultRegistry is true, uses the default Prometheus registry; otherwise creates a new one.
func Configure(useDefaultRegistry bool, collectors ...prometheus.Collector) {
	if useDefaultRegistry {
		var ok bool
		registry, ok = prometheus.DefaultRegisterer.(*prometheus.Registry)
		if !ok {
			registry = prometheus.NewRegistry()
		}
	} else {
		registry = prometheus.NewRegistry()
	}

	if len(collectors) > 0 {
		registry.MustRegister(collectors...)
	} else {
		registry.MustRegister(
			LookupsTotal,
			MissingTranslationsTotal,
		)
	}
}

// Handler returns an HTTP handler for the prometheus metrics endpoint.
func Handler(opts promhttp.HandlerOpts) http.Handler {
	return promhttp.HandlerFor(
		registry,
		opts,
	)
}
