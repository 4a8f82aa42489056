// Package metrics defines and registers the custom Prometheus metrics for the
// Billigi lending API. It is the single source of truth for metric names,
// labels, and help strings.
//
// The collectors are registered with the default Prometheus registry on
// package initialisation; HTTP request metrics come from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "billigi"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "conflict", "invalid" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Listing metrics ───────────────────────────────────────────────────────────

// ItemsCreatedTotal counts new item listings.
// Label:
//   - type: "lending" or "borrowing"
var ItemsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_created_total",
		Help:      "Total number of item listings created, by type.",
	},
	[]string{"type"},
)

// ItemClaimsTotal counts claim attempts on item listings.
// Label:
//   - result: "success", "conflict" (already borrowed), "not_found" or "error"
var ItemClaimsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "item_claims_total",
		Help:      "Total number of item claim attempts, by result.",
	},
	[]string{"result"},
)

// ReportsCreatedTotal counts lost-and-found reports.
// Label:
//   - status: "lost" or "found"
var ReportsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_created_total",
		Help:      "Total number of lost-and-found reports created, by status.",
	},
	[]string{"status"},
)

// ListingsDeletedTotal counts deleted listings.
// Label:
//   - kind: "item" or "report"
var ListingsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_deleted_total",
		Help:      "Total number of listings deleted, by kind.",
	},
	[]string{"kind"},
)
