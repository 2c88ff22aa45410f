// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Decision outcomes recorded per policy evaluation.
const (
	decisionPublic          = "public"
	decisionAllowed         = "allowed"
	decisionDenied          = "denied"
	decisionUnauthenticated = "unauthenticated"
	decisionMisconfigured   = "misconfigured"
	decisionError           = "error"
)

var (
	// AuthDecisions counts policy evaluations by method and outcome.
	// Labels:
	//   - method: HTTP method the policy keyed on
	//   - outcome: "public", "allowed", "denied", "unauthenticated",
	//     "misconfigured", "error"
	AuthDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_policy_decisions_total",
			Help: "Total number of authorization policy decisions",
		},
		[]string{"method", "outcome"},
	)

	// LoginAttempts counts login attempts by outcome.
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"outcome"},
	)
)

func recordDecision(method, outcome string) {
	AuthDecisions.WithLabelValues(method, outcome).Inc()
}
