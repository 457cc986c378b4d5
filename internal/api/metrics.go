package api

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	queries  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hostinfo",
			Subsystem: "api",
			Name:      "queries_total",
			Help:      "Number of host queries served, by operation.",
		}, []string{"op"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hostinfo",
			Subsystem: "api",
			Name:      "query_failures_total",
			Help:      "Number of host queries that returned an error, by operation.",
		}, []string{"op"}),
	}
	reg.MustRegister(m.queries, m.failures)
	return m
}
