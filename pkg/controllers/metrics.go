package controllers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

const (
	resultSucceeded = "succeeded"
	resultPaused    = "paused"
)

var (
	reconcilePasses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hbase_operator_reconcile_passes_total",
		Help: "Reconcile passes of HbaseClusters by result.",
	}, []string{"result"})

	reconcileDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hbase_operator_reconcile_duration_seconds",
		Help:    "Duration of HbaseCluster reconcile passes.",
		Buckets: prometheus.DefBuckets,
	})

	orphansDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hbase_operator_orphans_deleted_total",
		Help: "Generated objects deleted because they were no longer generated.",
	})
)

func init() {
	metrics.Registry.MustRegister(reconcilePasses, reconcileDuration, orphansDeleted)
}

func observePass(result string, start time.Time) {
	reconcilePasses.WithLabelValues(result).Inc()
	reconcileDuration.Observe(time.Since(start).Seconds())
}
