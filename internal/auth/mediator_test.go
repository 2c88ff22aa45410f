// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinelog/internal/models"
)

// serve runs a request through Authorize(table) with an optional identity
// already on the context, recording whether the inner handler ran.
func serve(t *testing.T, table PolicyTable, method string, id *Identity) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	var reached bool
	handler := Authorize(table)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(method, "/resource", nil)
	if id != nil {
		req = req.WithContext(WithIdentity(req.Context(), *id))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, reached
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *models.APIError {
	t.Helper()
	var resp models.APIResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "error" {
		t.Fatalf("response status = %q, want error", resp.Status)
	}
	if resp.Error == nil {
		t.Fatal("response error payload missing")
	}
	return resp.Error
}

func TestAuthorizeDecisions(t *testing.T) {
	jwtUser := &Identity{Subject: "u@example.com", Role: models.RoleUser, Scheme: SchemeJWT}
	basicAdmin := &Identity{Subject: "a@example.com", Role: models.RoleAdmin, Scheme: SchemeBasic}

	predicateCalled := false
	countingTrue := func(*http.Request, Identity) (bool, error) {
		predicateCalled = true
		return true, nil
	}

	tests := []struct {
		name        string
		table       PolicyTable
		method      string
		id          *Identity
		wantStatus  int
		wantCode    string
		wantReached bool
		// wantPredicate asserts on whether the predicate ran.
		wantPredicate bool
	}{
		{
			name:       "missing method entry fails closed",
			table:      PolicyTable{http.MethodGet: {Scheme: SchemeAlways(SchemeJWT), Allow: countingTrue}},
			method:     http.MethodDelete,
			id:         jwtUser,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "SECURITY_NOT_CONFIGURED",
		},
		{
			name:        "public selector skips predicate",
			table:       PolicyTable{http.MethodPost: {Scheme: Public(), Allow: countingTrue}},
			method:      http.MethodPost,
			id:          nil,
			wantStatus:  http.StatusOK,
			wantReached: true,
		},
		{
			name:       "no identity against jwt scheme",
			table:      PolicyTable{http.MethodGet: {Scheme: SchemeAlways(SchemeJWT), Allow: countingTrue}},
			method:     http.MethodGet,
			id:         nil,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTHENTICATION_ERROR",
		},
		{
			name:       "scheme mismatch",
			table:      PolicyTable{http.MethodGet: {Scheme: SchemeAlways(SchemeBasic), Allow: countingTrue}},
			method:     http.MethodGet,
			id:         jwtUser,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTHENTICATION_ERROR",
		},
		{
			name: "predicate false is forbidden",
			table: PolicyTable{http.MethodGet: {
				Scheme: SchemeAlways(SchemeJWT),
				Allow:  func(*http.Request, Identity) (bool, error) { return false, nil },
			}},
			method:     http.MethodGet,
			id:         jwtUser,
			wantStatus: http.StatusForbidden,
			wantCode:   "AUTHORIZATION_ERROR",
		},
		{
			name: "status error forwarded verbatim",
			table: PolicyTable{http.MethodDelete: {
				Scheme: SchemeAlways(SchemeJWT),
				Allow: func(*http.Request, Identity) (bool, error) {
					return false, NewStatusError(http.StatusNotFound, "comment not found")
				},
			}},
			method:     http.MethodDelete,
			id:         jwtUser,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name: "rate limit status error forwarded",
			table: PolicyTable{http.MethodGet: {
				Scheme: SchemeAlways(SchemeJWT),
				Allow: func(*http.Request, Identity) (bool, error) {
					return false, NewStatusError(http.StatusTooManyRequests, "request quota exceeded")
				},
			}},
			method:     http.MethodGet,
			id:         jwtUser,
			wantStatus: http.StatusTooManyRequests,
			wantCode:   "RATE_LIMIT_EXCEEDED",
		},
		{
			name: "bare predicate error is internal",
			table: PolicyTable{http.MethodGet: {
				Scheme: SchemeAlways(SchemeJWT),
				Allow: func(*http.Request, Identity) (bool, error) {
					return false, errors.New("store unavailable")
				},
			}},
			method:     http.MethodGet,
			id:         jwtUser,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
		{
			name: "predicate true passes through",
			table: PolicyTable{http.MethodGet: {
				Scheme: SchemeAlways(SchemeBasic),
				Allow:  RequireRole("admin"),
			}},
			method:      http.MethodGet,
			id:          basicAdmin,
			wantStatus:  http.StatusOK,
			wantReached: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predicateCalled = false
			rec, reached := serve(t, tt.table, tt.method, tt.id)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if reached != tt.wantReached {
				t.Errorf("handler reached = %v, want %v", reached, tt.wantReached)
			}
			if tt.wantCode != "" {
				if got := decodeError(t, rec); got.Code != tt.wantCode {
					t.Errorf("error code = %q, want %q", got.Code, tt.wantCode)
				}
			}
		})
	}

	// The misconfigured, public, and unauthenticated paths must never have
	// consulted the shared counting predicate.
	if predicateCalled {
		t.Error("predicate was called on a path that should have skipped it")
	}
}

func TestAuthorizeDenialBodyIsEnvelope(t *testing.T) {
	table := PolicyTable{http.MethodGet: {Scheme: SchemeAlways(SchemeJWT), Allow: AllowAll}}
	rec, _ := serve(t, table, http.MethodGet, nil)

	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	apiErr := decodeError(t, rec)
	if apiErr.Message == "" {
		t.Error("denial message is empty")
	}
}

func TestRequireRole(t *testing.T) {
	pred := RequireRole("admin", "premium_user")

	tests := []struct {
		role models.Role
		want bool
	}{
		{models.RoleAdmin, true},
		{models.RolePremiumUser, true},
		{models.RoleUser, false},
	}
	for _, tt := range tests {
		got, err := pred(nil, Identity{Role: tt.role})
		if err != nil {
			t.Fatalf("RequireRole(%s) error = %v", tt.role, err)
		}
		if got != tt.want {
			t.Errorf("RequireRole(%s) = %v, want %v", tt.role, got, tt.want)
		}
	}
}
