// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package models

import "time"

// APIResponse is the envelope returned by every HTTP endpoint.
//
// Status is "success" or "error". Data carries the payload on success;
// Error is populated only on failure.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response metadata for observability.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
}

// APIError is a structured error payload.
//
// Common codes: VALIDATION_ERROR, AUTHENTICATION_ERROR, AUTHORIZATION_ERROR,
// NOT_FOUND, CONFLICT, RATE_LIMIT_EXCEEDED, SECURITY_NOT_CONFIGURED,
// INTERNAL_ERROR.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// LoginRequest is the account login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the signed JWT for subsequent requests.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
}
