// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinelog/internal/logging"
	"github.com/tomtom215/cinelog/internal/models"
	"github.com/tomtom215/cinelog/internal/validation"
)

// maxBodyBytes caps request payload size. Movie documents are small; a
// megabyte is generous.
const maxBodyBytes = 1 << 20

func respondJSON(w http.ResponseWriter, status int, resp models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp.Metadata = models.Metadata{Timestamp: time.Now().UTC()}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Error().Err(err).Msg("failed to encode response")
	}
}

func respondSuccess(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, status, models.APIResponse{Status: "success", Data: data})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, models.APIResponse{
		Status: "error",
		Error:  &models.APIError{Code: code, Message: message},
	})
}

func respondValidationError(w http.ResponseWriter, verr *validation.RequestValidationError) {
	respondJSON(w, http.StatusBadRequest, models.APIResponse{
		Status: "error",
		Error:  verr.ToAPIError(),
	})
}

// decodeJSON decodes the request body into dst, rejecting unknown fields,
// then validates dst's `validate` tags. On failure it writes the error
// response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	if verr := validation.ValidateStruct(dst); verr != nil {
		respondValidationError(w, verr)
		return false
	}
	return true
}

// peekBody reads the request body into dst while leaving the body readable
// for the downstream handler. Policy predicates that depend on payload
// fields use this; the handler then decodes the same bytes again.
func peekBody(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}
