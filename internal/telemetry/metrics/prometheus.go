package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus creates the registry served by the metrics HTTP server and
// registers the go runtime / process collectors plus any extra ones
// (e.g. the pgx pool collector).
func SetupPrometheus(extraCollectors ...prometheus.Collector) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	for _, c := range extraCollectors {
		registry.MustRegister(c)
	}
	return registry
}
