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

type createCommentRequest struct {
	MovieID string `json:"movie_id" validate:"required"`
	Text    string `json:"text" validate:"required,max=2000"`
	Email   string `json:"email" validate:"omitempty,email"`
	Name    string `json:"name" validate:"omitempty,max=128"`
}

type updateCommentRequest struct {
	CommentID string `json:"comment_id" validate:"required"`
	Text      string `json:"text" validate:"required,max=2000"`
}

// CreateComment handles POST /comments/comment. The movie's comment counter
// is incremented alongside the insert.
func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// The policy already checked any declared author email against the
	// caller; an omitted email defaults to the caller.
	id := auth.IdentityFromContext(r.Context())
	email := req.Email
	if email == "" {
		email = id.Subject
	}

	comment, err := h.store.AddComment(r.Context(), req.MovieID, email, req.Name, req.Text)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().
		Str("comment_id", comment.ID).
		Str("movie_id", comment.MovieID).
		Msg("comment created")
	respondSuccess(w, http.StatusCreated, comment)
}

// UpdateComment handles POST /comments/: replaces the text of the comment
// named in the body. Ownership was established by the policy table.
func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	var req updateCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.store.UpdateCommentText(r.Context(), req.CommentID, req.Text)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, comment)
}

// GetCommentsByMovie handles GET /comments/comment/{id}, where id is the
// movie's catalog ID.
func (h *Handlers) GetCommentsByMovie(w http.ResponseWriter, r *http.Request) {
	comments, err := h.store.GetCommentsByMovie(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, comments)
}

// GetCommentsByEmail handles GET /comments/{email}.
func (h *Handlers) GetCommentsByEmail(w http.ResponseWriter, r *http.Request) {
	comments, err := h.store.GetCommentsByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, comments)
}

// DeleteComment handles DELETE /comments/comment/{id}. The movie's comment
// counter is decremented alongside the delete.
func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID := chi.URLParam(r, "id")
	if err := h.store.DeleteComment(r.Context(), commentID); err != nil {
		respondStoreError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().Str("comment_id", commentID).Msg("comment deleted")
	respondSuccess(w, http.StatusOK, map[string]string{"id": commentID})
}
