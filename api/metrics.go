package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ForecastsTotal counts forecasts served, by entry point and outcome.
var ForecastsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "jade_forecast",
	Name:      "forecasts_total",
	Help:      "Total forecasts requested.",
}, []string{"source", "outcome"})

// ForecastHorizonDays tracks how far ahead players forecast.
var ForecastHorizonDays = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "jade_forecast",
	Name:      "horizon_days",
	Help:      "Days between today and the requested end date.",
	Buckets:   []float64{7, 14, 30, 42, 60, 90, 180, 365, 730},
})

// ForecastPulls tracks the total pulls in each forecast result.
var ForecastPulls = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "jade_forecast",
	Name:      "pulls",
	Help:      "Total pulls available at the end of each forecast.",
	Buckets:   []float64{10, 20, 40, 80, 90, 160, 180, 320},
})

// PlansSaved counts saved plan writes.
var PlansSaved = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "jade_forecast",
	Name:      "plans_saved_total",
	Help:      "Total saved plan writes.",
})

// CatalogReloads counts catalog reload attempts by outcome.
var CatalogReloads = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "jade_forecast",
	Name:      "catalog_reloads_total",
	Help:      "Reward catalog reload attempts.",
}, []string{"outcome"})

// Forecast sources
const (
	sourceForm   = "form"
	sourcePreset = "preset"
	sourcePlan   = "plan"
)

// Outcomes
const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)
