package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SeedRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "seed_runs_total",
		Help: "Seeding pipeline invocations by outcome.",
	}, []string{"status"})

	InvoiceMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "invoice_mutations_total",
		Help: "Invoice create/update/delete attempts by action and outcome.",
	}, []string{"action", "outcome"})

	ViewCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "view_cache_requests_total",
		Help: "Invoice-listing view cache lookups by result.",
	}, []string{"result"})
)
