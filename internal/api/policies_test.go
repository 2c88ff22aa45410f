// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package api

import (
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/cinelog/internal/auth"
	"github.com/tomtom215/cinelog/internal/config"
	"github.com/tomtom215/cinelog/internal/models"
)

func TestPathTail(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/accounts/alice@example.com", "alice@example.com"},
		{"/api/v1/accounts/alice@example.com/", "alice@example.com"},
		{"/api/v1/comments/comment/abc123", "abc123"},
		{"/", ""},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", tt.path, nil)
		if got := pathTail(r); got != tt.want {
			t.Errorf("pathTail(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestPathContains(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/v1/accounts/admin", nil)
	if !pathContains(r, "admin") {
		t.Error("pathContains(admin) = false")
	}
	if pathContains(r, "adm") {
		t.Error("pathContains matched a partial segment")
	}
	if pathContains(r, "user") {
		t.Error("pathContains(user) = true")
	}
}

func TestIsAdminRecognizesBypassIdentity(t *testing.T) {
	p := NewPolicies(&config.SecurityConfig{AdminEmail: "root@example.com"}, nil)

	tests := []struct {
		name string
		id   auth.Identity
		want bool
	}{
		{"admin role", auth.Identity{Subject: "a@example.com", Role: models.RoleAdmin}, true},
		{"super-admin, empty role", auth.Identity{Subject: "root@example.com"}, true},
		{"plain user", auth.Identity{Subject: "u@example.com", Role: models.RoleUser}, false},
		{"premium", auth.Identity{Subject: "p@example.com", Role: models.RolePremiumUser}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.isAdmin(tt.id); got != tt.want {
				t.Errorf("isAdmin(%+v) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}

	if p.isSuperAdmin(auth.Identity{Subject: "a@example.com", Role: models.RoleAdmin}) {
		t.Error("stored admin treated as super-admin")
	}
	if !p.isSuperAdmin(auth.Identity{Subject: "root@example.com"}) {
		t.Error("super-admin not recognized")
	}
}
