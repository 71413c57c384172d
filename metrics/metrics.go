package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var DeliveriesConfirmedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "epochrank_deliveries_confirmed_total",
	Help: "Number of confirmed item deliveries",
})

var ThresholdReachedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "epochrank_item_threshold_reached_total",
	Help: "Number of deliveries that pushed an item to its reset threshold",
})

var ItemResetCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "epochrank_item_resets_total",
	Help: "Number of item ranking resets",
})

var ScoreFieldsUpdatedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "epochrank_score_fields_updated_total",
	Help: "Number of score fields applied by bulk updates",
})

var ScoreFieldsSkippedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "epochrank_score_fields_skipped_total",
	Help: "Number of score fields skipped by bulk updates due to bad input",
})
