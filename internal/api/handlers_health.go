// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package api

import "net/http"

// HealthLive handles GET /health/live: the process is up.
func (h *Handlers) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]string{"status": "alive"})
}

// HealthReady handles GET /health/ready: the process can serve traffic,
// which means the database answers.
func (h *Handlers) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(); err != nil {
		respondError(w, http.StatusServiceUnavailable, "INTERNAL_ERROR", "database unavailable")
		return
	}
	respondSuccess(w, http.StatusOK, map[string]string{"status": "ready"})
}
