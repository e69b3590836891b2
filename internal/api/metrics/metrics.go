// Package metrics defines and registers all custom Prometheus metrics for the
// arise API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default registry at import time via
// promauto; the HTTP-level request metrics come from the echoprometheus
// middleware wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "arise"

// RegistrationsTotal counts sign-up attempts.
// Label:
//   - result: "created", "conflict", "invalid" or "error"
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
//   - result: "success", "invalid_credentials", "rate_limited" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer-token checks in the auth middleware.
// Label:
//   - result: "ok", "missing", "invalid", "expired" or "failed"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// GameRosterChangesTotal counts join/leave operations on game rosters.
// Labels:
//   - action: "join" or "leave"
//   - result: "ok", "already_joined", "full", "not_participant", "not_found" or "error"
var GameRosterChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "game_roster_changes_total",
		Help:      "Total number of game roster mutations, by action and result.",
	},
	[]string{"action", "result"},
)
