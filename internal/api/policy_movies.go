// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package api

import (
	"net/http"

	"github.com/tomtom215/cinelog/internal/auth"
	"github.com/tomtom215/cinelog/internal/models"
)

// MoviesPolicy encodes the access model for the movies group. Every method
// requires a bearer token. Reads and catalog queries are open to any
// non-admin role; rating a movie is reserved for premium accounts.
func (p *Policies) MoviesPolicy() auth.PolicyTable {
	nonAdminRead := func(_ *http.Request, id auth.Identity) (bool, error) {
		return id.Role != models.RoleAdmin, nil
	}

	return auth.PolicyTable{
		http.MethodGet: {
			Scheme: auth.SchemeAlways(auth.SchemeJWT),
			Allow:  nonAdminRead,
		},
		// Catalog queries (most-rated, most-commented) post a filter body.
		http.MethodPost: {
			Scheme: auth.SchemeAlways(auth.SchemeJWT),
			Allow:  nonAdminRead,
		},
		http.MethodPatch: {
			Scheme: auth.SchemeAlways(auth.SchemeJWT),
			Allow:  auth.RequireRole(string(models.RolePremiumUser)),
		},
	}
}
