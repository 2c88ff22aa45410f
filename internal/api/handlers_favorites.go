// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinelog/internal/auth"
	"github.com/tomtom215/cinelog/internal/logging"
)

type createFavoriteRequest struct {
	MovieID string `json:"movie_id" validate:"required"`
}

type updateFavoriteRequest struct {
	MovieID  string `json:"movie_id" validate:"required"`
	Viewed   bool   `json:"viewed"`
	Feedback string `json:"feedback" validate:"omitempty,max=2000"`
}

type deleteFavoriteRequest struct {
	MovieID string `json:"movie_id" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
}

// CreateFavorite handles POST /favorites/favorite. Favoriting the same
// movie twice is a conflict.
func (h *Handlers) CreateFavorite(w http.ResponseWriter, r *http.Request) {
	var req createFavoriteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id := auth.IdentityFromContext(r.Context())
	favorite, err := h.store.AddFavorite(r.Context(), id.Subject, req.MovieID)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().
		Str("email", id.Subject).
		Str("movie_id", req.MovieID).
		Msg("favorite added")
	respondSuccess(w, http.StatusCreated, favorite)
}

// GetFavorites handles GET /favorites/{email}. The policy table already
// pinned the path email to the caller.
func (h *Handlers) GetFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.store.GetFavoritesByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, favorites)
}

// UpdateFavorite handles PUT /favorites/favorite: sets the viewed flag and
// feedback on the caller's favorite for the movie.
func (h *Handlers) UpdateFavorite(w http.ResponseWriter, r *http.Request) {
	var req updateFavoriteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id := auth.IdentityFromContext(r.Context())
	favorite, err := h.store.UpdateFavorite(r.Context(), id.Subject, req.MovieID, req.Viewed, req.Feedback)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, favorite)
}

// DeleteFavorite handles DELETE /favorites/favorite. The body email was
// matched to the caller by the policy table.
func (h *Handlers) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	var req deleteFavoriteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.store.DeleteFavorite(r.Context(), req.Email, req.MovieID); err != nil {
		respondStoreError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().
		Str("email", req.Email).
		Str("movie_id", req.MovieID).
		Msg("favorite removed")
	respondSuccess(w, http.StatusOK, map[string]string{"movie_id": req.MovieID})
}
