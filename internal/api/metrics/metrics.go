// Package metrics defines the custom Prometheus metrics for the wallet API.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics register with the default registry at import time via
// promauto and are served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mywallet"

// SignupsTotal counts successfully registered users.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful user registrations.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "not_found", "invalid_password", or "invalid_input"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// SessionsCreatedTotal counts issued session tokens. Sessions never expire,
// so this is also the size of the session store.
var SessionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Total number of session tokens issued at login.",
	},
)

// TransactionsRecordedTotal counts ledger appends.
// Label:
//   - kind: "income" or "outcome"
var TransactionsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_recorded_total",
		Help:      "Total number of ledger entries recorded, by kind.",
	},
	[]string{"kind"},
)
