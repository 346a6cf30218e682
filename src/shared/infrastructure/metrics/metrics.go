package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores del terminal de caja, expuestos en /metrics cuando
// PROMETHEUS_ENABLED=true.
var (
	CartMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "register",
		Name:      "cart_mutations_total",
		Help:      "Total number of cart mutations by operation.",
	}, []string{"operation"})

	SalesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "register",
		Name:      "sales_completed_total",
		Help:      "Total number of successfully submitted sales.",
	})

	SalesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "register",
		Name:      "sales_failed_total",
		Help:      "Total number of sale submissions that failed.",
	})
)
