// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinelog/internal/auth"
	"github.com/tomtom215/cinelog/internal/logging"
	"github.com/tomtom215/cinelog/internal/models"
)

// defaultQueryAmount caps ranked catalog queries that do not ask for a
// specific result count.
const defaultQueryAmount = 10

type rateMovieRequest struct {
	Rating float64 `json:"rating" validate:"required,min=0,max=10"`
}

// GetMovie handles GET /movies/{id}.
func (h *Handlers) GetMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := h.store.GetMovieByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, movie)
}

// MostRated handles POST /movies/most-rated: the catalog ranked by IMDb
// rating, narrowed by the filter body.
func (h *Handlers) MostRated(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.decodeFilter(w, r)
	if !ok {
		return
	}
	summaries, err := h.store.MostRatedMovies(r.Context(), filter)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, summaries)
}

// MostCommented handles POST /movies/most-commented: the catalog ranked by
// comment count.
func (h *Handlers) MostCommented(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.decodeFilter(w, r)
	if !ok {
		return
	}
	summaries, err := h.store.MostCommentedMovies(r.Context(), filter)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, summaries)
}

func (h *Handlers) decodeFilter(w http.ResponseWriter, r *http.Request) (models.MovieFilter, bool) {
	var filter models.MovieFilter
	if !decodeJSON(w, r, &filter) {
		return filter, false
	}
	if filter.Amount == 0 {
		filter.Amount = defaultQueryAmount
	}
	return filter, true
}

// RateMovie handles PATCH /movies/{imdbID}: folds the caller's rating into
// the movie's running average and records the vote in the caller's history.
func (h *Handlers) RateMovie(w http.ResponseWriter, r *http.Request) {
	imdbID, err := strconv.Atoi(chi.URLParam(r, "imdbID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "imdbID must be an integer")
		return
	}

	var req rateMovieRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	movie, err := h.store.RateMovie(r.Context(), imdbID, req.Rating)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	// The vote history drives the one-vote gate for user-role callers.
	// Recording it for every rater keeps the history complete even though
	// premium users are exempt from the gate.
	id := auth.IdentityFromContext(r.Context())
	if err := h.store.RecordVote(r.Context(), id.Subject, imdbID); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).
			Str("email", id.Subject).
			Int("imdb_id", imdbID).
			Msg("failed to record vote")
	}

	respondSuccess(w, http.StatusOK, movie)
}
