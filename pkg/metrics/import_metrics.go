package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ImportRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rentora_fleet_import_rows_total",
		Help: "Vehicle import rows by terminal outcome.",
	}, []string{"outcome"})

	ImportBatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentora_fleet_import_batches_total",
		Help: "Committed vehicle import batches.",
	})
)
