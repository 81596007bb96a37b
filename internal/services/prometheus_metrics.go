package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsCreated       *prometheus.CounterVec
	categoriesCreated         *prometheus.CounterVec
	budgetsUpserted           *prometheus.CounterVec
	summariesGenerated        *prometheus.CounterVec
	summaryDuration           prometheus.Histogram
	authenticationEventsTotal *prometheus.CounterVec
	demoDataSeeded            prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"kind"},
		),
		categoriesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "categories_created_total",
				Help: "Total number of categories created",
			},
			[]string{"kind"},
		),
		budgetsUpserted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgets_upserted_total",
				Help: "Total number of budget create-or-replace operations",
			},
			[]string{"month"},
		),
		summariesGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_summaries_generated_total",
				Help: "Total number of dashboard summaries generated",
			},
			[]string{"month"},
		),
		summaryDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_summary_duration_milliseconds",
				Help:    "Dashboard summary generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		demoDataSeeded: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "demo_data_seeded_total",
				Help: "Total number of demo data seeding runs",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transaction_created":
		if kind := tags["kind"]; kind != "" {
			m.transactionsCreated.WithLabelValues(kind).Inc()
		}
	case "category_created":
		if kind := tags["kind"]; kind != "" {
			m.categoriesCreated.WithLabelValues(kind).Inc()
		}
	case "budget_upserted":
		if month := tags["month"]; month != "" {
			m.budgetsUpserted.WithLabelValues(month).Inc()
		}
	case "dashboard_summary_generated":
		if month := tags["month"]; month != "" {
			m.summariesGenerated.WithLabelValues(month).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	case "demo_data_seeded":
		m.demoDataSeeded.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "dashboard_summary":
		m.summaryDuration.Observe(float64(duration.Milliseconds()))
	}
}
