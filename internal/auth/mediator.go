// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinelog/internal/logging"
	"github.com/tomtom215/cinelog/internal/models"
)

// Authorize returns middleware enforcing the policy table for one resource
// group. It runs after Extract and is the single place requests are allowed
// or denied.
//
// The decision sequence for each request:
//
//  1. No table entry for the method: the group is misconfigured, fail
//     closed with 500.
//  2. The selector returns SchemeNone: the request is public and proceeds
//     untouched. The predicate is never called.
//  3. The request's identity scheme differs from the selected scheme
//     (including no identity at all): 401. The predicate is never called.
//  4. The predicate errors with a *StatusError: that status is forwarded
//     verbatim. Any other error: 500.
//  5. The predicate returns false: 403. True: the request proceeds.
func Authorize(table PolicyTable) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			policy, ok := table[r.Method]
			if !ok {
				logging.Ctx(r.Context()).Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("no authorization policy for method")
				recordDecision(r.Method, decisionMisconfigured)
				writeDenial(w, http.StatusInternalServerError, "SECURITY_NOT_CONFIGURED",
					"no authorization policy configured for this operation")
				return
			}

			required := policy.Scheme(r)
			if required == SchemeNone {
				recordDecision(r.Method, decisionPublic)
				next.ServeHTTP(w, r)
				return
			}

			id := IdentityFromContext(r.Context())
			if id.Scheme != required {
				recordDecision(r.Method, decisionUnauthenticated)
				writeDenial(w, http.StatusUnauthorized, "AUTHENTICATION_ERROR",
					"valid "+string(required)+" credentials are required")
				return
			}

			allowed, err := policy.Allow(r, id)
			if err != nil {
				var statusErr *StatusError
				if errors.As(err, &statusErr) {
					recordDecision(r.Method, decisionDenied)
					writeDenial(w, statusErr.Status, codeForStatus(statusErr.Status), statusErr.Message)
					return
				}
				logging.Ctx(r.Context()).Error().Err(err).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("authorization predicate failed")
				recordDecision(r.Method, decisionError)
				writeDenial(w, http.StatusInternalServerError, "INTERNAL_ERROR",
					"authorization check failed")
				return
			}
			if !allowed {
				recordDecision(r.Method, decisionDenied)
				writeDenial(w, http.StatusForbidden, "AUTHORIZATION_ERROR",
					"you are not allowed to perform this operation")
				return
			}

			recordDecision(r.Method, decisionAllowed)
			next.ServeHTTP(w, r)
		})
	}
}

// codeForStatus maps a denial status to its envelope error code.
func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusTooManyRequests:
		return "RATE_LIMIT_EXCEEDED"
	case http.StatusUnauthorized:
		return "AUTHENTICATION_ERROR"
	case http.StatusForbidden:
		return "AUTHORIZATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// writeDenial emits the standard error envelope. Kept local to avoid a
// dependency on the api package's helpers.
func writeDenial(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error:    &models.APIError{Code: code, Message: message},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Error().Err(err).Msg("failed to encode denial response")
	}
}
