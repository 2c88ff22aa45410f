// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/cinelog/internal/auth"
	"github.com/tomtom215/cinelog/internal/logging"
	"github.com/tomtom215/cinelog/internal/store"
)

// Handlers owns the HTTP endpoint implementations. Authorization has already
// happened by the time a handler runs; handlers read the caller from the
// request context when they need it and otherwise just do the work.
type Handlers struct {
	store *store.Store
	jwt   *auth.JWTManager
}

// NewHandlers wires the endpoint implementations.
func NewHandlers(st *store.Store, jwtManager *auth.JWTManager) *Handlers {
	return &Handlers{store: st, jwt: jwtManager}
}

// respondStoreError translates store sentinels to their status codes. Any
// unrecognized error is logged and surfaced as 500.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, store.ErrAlreadyExists):
		respondError(w, http.StatusConflict, "CONFLICT", "resource already exists")
	case errors.Is(err, store.ErrSamePassword):
		respondError(w, http.StatusConflict, "CONFLICT", "new password must differ from the current one")
	default:
		logging.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}
