// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinelog/internal/auth"
	"github.com/tomtom215/cinelog/internal/logging"
	"github.com/tomtom215/cinelog/internal/models"
	"github.com/tomtom215/cinelog/internal/store"
)

type createAccountRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=2,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,role"`
}

type updatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// CreateUser handles POST /accounts/user. Public self-service signup; the
// account always starts with the user role.
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	h.createAccount(w, r, models.RoleUser)
}

// CreateAdmin handles POST /accounts/admin. The policy table restricts this
// to the super-admin identity over Basic auth.
func (h *Handlers) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	h.createAccount(w, r, models.RoleAdmin)
}

func (h *Handlers) createAccount(w http.ResponseWriter, r *http.Request, role models.Role) {
	var req createAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := h.store.CreateAccount(r.Context(), req.Email, req.Username, req.Password, role)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().
		Str("email", account.Email).
		Str("role", string(account.Role)).
		Msg("account created")
	respondSuccess(w, http.StatusCreated, account)
}

// Login handles POST /accounts/login. Issues a bearer token carrying the
// account's current role.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := h.store.FindAccountByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			auth.LoginAttempts.WithLabelValues("failure").Inc()
			respondError(w, http.StatusUnauthorized, "AUTHENTICATION_ERROR", "invalid email or password")
			return
		}
		respondStoreError(w, r, err)
		return
	}
	if !h.store.VerifyPassword(req.Password, account.PasswordHash) {
		auth.LoginAttempts.WithLabelValues("failure").Inc()
		respondError(w, http.StatusUnauthorized, "AUTHENTICATION_ERROR", "invalid email or password")
		return
	}

	token, expiresAt, err := h.jwt.GenerateToken(account.Email, account.Role)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	auth.LoginAttempts.WithLabelValues("success").Inc()
	logging.Ctx(r.Context()).Info().Str("email", account.Email).Msg("login succeeded")
	respondSuccess(w, http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Email:     account.Email,
		Role:      account.Role,
	})
}

// GetAccount handles GET /accounts/{email}.
func (h *Handlers) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.store.FindAccountByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, account)
}

// UpdateRole handles PATCH /accounts/roles/{email}. The role value is
// validated against the closed role set before it reaches the store.
func (h *Handlers) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req updateRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	email := chi.URLParam(r, "email")
	role, err := models.ParseRole(req.Role)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if err := h.store.SetAccountRole(r.Context(), email, role); err != nil {
		respondStoreError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().Str("email", email).Str("role", req.Role).Msg("role updated")
	respondSuccess(w, http.StatusOK, map[string]string{"email": email, "role": req.Role})
}

// UpdatePassword handles PATCH /accounts/password/{email}. Reusing the
// current password is a conflict.
func (h *Handlers) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req updatePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	email := chi.URLParam(r, "email")
	if err := h.store.UpdateAccountPassword(r.Context(), email, req.Password); err != nil {
		respondStoreError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().Str("email", email).Msg("password updated")
	respondSuccess(w, http.StatusOK, map[string]string{"email": email})
}

// BlockAccount handles PATCH /accounts/block/{email}.
func (h *Handlers) BlockAccount(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, true)
}

// UnblockAccount handles PATCH /accounts/unblock/{email}.
func (h *Handlers) UnblockAccount(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, false)
}

func (h *Handlers) setBlocked(w http.ResponseWriter, r *http.Request, blocked bool) {
	email := chi.URLParam(r, "email")
	if err := h.store.SetAccountBlocked(r.Context(), email, blocked); err != nil {
		respondStoreError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().Str("email", email).Bool("blocked", blocked).Msg("block flag updated")
	respondSuccess(w, http.StatusOK, map[string]interface{}{"email": email, "blocked": blocked})
}

// DeleteAccount handles DELETE /accounts/{email}.
func (h *Handlers) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if err := h.store.DeleteAccount(r.Context(), email); err != nil {
		respondStoreError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().Str("email", email).Msg("account deleted")
	respondSuccess(w, http.StatusOK, map[string]string{"email": email})
}
