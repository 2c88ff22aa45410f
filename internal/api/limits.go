// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinelog/internal/auth"
	"github.com/tomtom215/cinelog/internal/config"
	"github.com/tomtom215/cinelog/internal/logging"
	"github.com/tomtom215/cinelog/internal/models"
	"github.com/tomtom215/cinelog/internal/store"
)

// Limits implements the account-scoped secondary policies: the persisted
// per-window request quota and the one-vote-per-movie gate. Both apply only
// to the basic user role; premium users and admins pass untouched.
type Limits struct {
	store    *store.Store
	requests int
	window   time.Duration
}

// NewLimits builds the secondary policy middleware state.
func NewLimits(cfg *config.SecurityConfig, st *store.Store) *Limits {
	return &Limits{
		store:    st,
		requests: cfg.QuotaRequests,
		window:   cfg.QuotaWindow,
	}
}

// Quota enforces the persisted request counter for user-role callers.
//
// The counter lives on the account record: read it, reset it when the
// window lapsed, deny with 429 at the threshold, otherwise increment and
// admit. The read and increment are separate writes, so two concurrent
// requests can both see the pre-increment count and both pass. That race
// admits at most a handful of extra requests per window and is accepted;
// serializing every request of an account through one transaction is not
// worth it for a soft quota.
func (l *Limits) Quota(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		if id.Role != models.RoleUser {
			next.ServeHTTP(w, r)
			return
		}

		quota, err := l.store.ReadAndMaybeResetQuota(r.Context(), id.Subject, time.Now().UTC(), l.window)
		if err != nil {
			logging.Ctx(r.Context()).Error().Err(err).Str("email", id.Subject).Msg("quota read failed")
			respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "request quota check failed")
			return
		}
		if quota.Count >= l.requests {
			respondError(w, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED",
				"request quota exceeded, retry after the window resets")
			return
		}
		if err := l.store.IncrementQuota(r.Context(), id.Subject); err != nil {
			logging.Ctx(r.Context()).Error().Err(err).Str("email", id.Subject).Msg("quota increment failed")
			respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "request quota check failed")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// VoteOnce blocks a user-role caller from rating the same movie twice.
// The movie is identified by the imdbID path parameter.
func (l *Limits) VoteOnce(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		if id.Role != models.RoleUser {
			next.ServeHTTP(w, r)
			return
		}

		imdbID, err := strconv.Atoi(chi.URLParam(r, "imdbID"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "imdbID must be an integer")
			return
		}
		voted, err := l.store.HasVoted(r.Context(), id.Subject, imdbID)
		if err != nil {
			logging.Ctx(r.Context()).Error().Err(err).Str("email", id.Subject).Msg("vote lookup failed")
			respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "vote check failed")
			return
		}
		if voted {
			respondError(w, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED",
				"you have already rated this movie")
			return
		}

		next.ServeHTTP(w, r)
	})
}
