// Package metrics defines and registers all custom Prometheus metrics for
// the inventory API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry on import; the router exposes
// them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// BorrowRequestsTotal counts borrow requests that were accepted as pending.
// Label:
//   - kind: "user" or "guest"
var BorrowRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "borrow_requests_total",
		Help:      "Total number of borrow requests accepted, by borrower kind.",
	},
	[]string{"kind"},
)

// BorrowTransitionsTotal counts successful lifecycle transitions.
// Label:
//   - transition: "approve", "reject" or "return"
var BorrowTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "borrow_transitions_total",
		Help:      "Total number of successful borrow lifecycle transitions.",
	},
	[]string{"transition"},
)

// BorrowConflictsTotal counts lifecycle operations refused by a guard.
// Label:
//   - reason: "invalid_transition" or "insufficient_quantity"
var BorrowConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "borrow_conflicts_total",
		Help:      "Total number of borrow transitions refused, by reason.",
	},
	[]string{"reason"},
)

// ItemsCreatedTotal counts inventory items created.
var ItemsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_created_total",
		Help:      "Total number of inventory items created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ListingCacheTotal counts listing cache lookups.
// Label:
//   - result: "hit" or "miss"
var ListingCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_cache_total",
		Help:      "Total number of inventory listing cache lookups, by result.",
	},
	[]string{"result"},
)
