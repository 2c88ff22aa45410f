// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package models

import "time"

// Account is the stored identity for an API caller, keyed by email.
//
// The quota counter and voting history live on the account document so that
// updates to either are single-document writes. Concurrent requests against
// the same account may interleave between read and write; that best-effort
// behavior is accepted (see RequestQuota).
type Account struct {
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Blocked      bool      `json:"blocked"`
	CreatedAt    time.Time `json:"created_at"`

	// Quota is the per-window request counter consumed by the request
	// limiter middleware.
	Quota RequestQuota `json:"quota"`

	// MoviesVoted records IMDb IDs this account has already rated.
	MoviesVoted []int `json:"movies_voted,omitempty"`
}

// RequestQuota is a rolling request counter with its window start.
type RequestQuota struct {
	Count       int       `json:"count"`
	WindowStart time.Time `json:"window_start"`
}

// HasVoted reports whether the account already rated the given IMDb ID.
func (a *Account) HasVoted(imdbID int) bool {
	for _, id := range a.MoviesVoted {
		if id == imdbID {
			return true
		}
	}
	return false
}
