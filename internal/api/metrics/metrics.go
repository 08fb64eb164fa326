// Package metrics defines the custom Prometheus metrics of the catalog API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics register with the default Prometheus registry on package load; the
// router exposes them at /metrics next to the echoprometheus request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// ── Catalog metrics ───────────────────────────────────────────────────────────

// EntitiesCreatedTotal counts inserted entities.
// Label:
//   - entity: "category", "product" or "user"
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of entities created, by entity kind.",
	},
	[]string{"entity"},
)

// ── Report metrics ────────────────────────────────────────────────────────────

// ReportsGeneratedTotal counts reports served.
// Labels:
//   - entity: "category" or "product"
//   - format: "pdf", "xlsx" or "csv"
var ReportsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Total number of reports generated, by entity and format.",
	},
	[]string{"entity", "format"},
)

// ReportGenerationDuration measures report rendering time.
// Label:
//   - format: "pdf", "xlsx" or "csv"
var ReportGenerationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_generation_duration_seconds",
		Help:      "Duration of report generation, from query to rendered file.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"format"},
)

// ── Email and auth metrics ────────────────────────────────────────────────────

// EmailDispatchTotal counts product list emails.
// Label:
//   - result: "sent" or "failed"
var EmailDispatchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "email_dispatch_total",
		Help:      "Total number of product list emails, by result.",
	},
	[]string{"result"},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "blocked" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
