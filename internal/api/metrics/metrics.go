// Package metrics defines the custom Prometheus metrics of the storefront
// services. It is the single source of truth for metric names, labels and
// help strings. Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Wallet metrics ────────────────────────────────────────────────────────────

// WalletOperationsTotal counts wallet operations.
// Labels:
//   - operation: "charge" or "deduct"
//   - result: "ok", "replayed", "insufficient_funds", "not_found", "invalid_amount" or "error"
var WalletOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wallet_operations_total",
		Help:      "Total number of wallet charge/deduct operations, by result.",
	},
	[]string{"operation", "result"},
)

// LedgerQueueDepth tracks the entries waiting in each ledger worker channel.
var LedgerQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ledger_queue_depth",
		Help:      "Current number of ledger entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// LedgerWriteErrorsTotal counts audit entries that could not be stored.
var LedgerWriteErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ledger_write_errors_total",
		Help:      "Total number of wallet ledger entries that failed to persist.",
	},
)

// ── Account metrics ───────────────────────────────────────────────────────────

var CustomersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "customers_registered_total",
		Help:      "Total number of customer accounts registered.",
	},
)

// ── Review metrics ────────────────────────────────────────────────────────────

// ReviewsModeratedTotal counts moderation decisions.
// Label:
//   - action: "approve" or "flag"
var ReviewsModeratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_moderated_total",
		Help:      "Total number of review moderation decisions, by action.",
	},
	[]string{"action"},
)

// ── Recommendation metrics ────────────────────────────────────────────────────

// RecommendationDuration measures one scoring pass over the review snapshot.
var RecommendationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "recommendation_duration_seconds",
		Help:      "Duration of a recommendation computation including the review load.",
		Buckets:   prometheus.DefBuckets,
	},
)
