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

// favoriteRef is the slice of a favorites body the policy needs.
type favoriteRef struct {
	Email string `json:"email"`
}

// FavoritesPolicy encodes the access model for the favorites group. Every
// method requires a bearer token and the premium role, and each method adds
// its own ownership condition:
//
//   - GET: the path email must match the caller.
//   - POST: premium alone suffices; the handler writes under the caller.
//   - PUT: the caller must already hold at least one favorite.
//   - DELETE: the body email must match the caller.
func (p *Policies) FavoritesPolicy() auth.PolicyTable {
	premium := func(id auth.Identity) bool {
		return id.Role == models.RolePremiumUser
	}

	return auth.PolicyTable{
		http.MethodGet: {
			Scheme: auth.SchemeAlways(auth.SchemeJWT),
			Allow: func(r *http.Request, id auth.Identity) (bool, error) {
				return premium(id) && pathTail(r) == id.Subject, nil
			},
		},
		http.MethodPost: {
			Scheme: auth.SchemeAlways(auth.SchemeJWT),
			Allow: func(_ *http.Request, id auth.Identity) (bool, error) {
				return premium(id), nil
			},
		},
		http.MethodPut: {
			Scheme: auth.SchemeAlways(auth.SchemeJWT),
			Allow: func(r *http.Request, id auth.Identity) (bool, error) {
				if !premium(id) {
					return false, nil
				}
				return p.store.HasAnyFavorite(r.Context(), id.Subject)
			},
		},
		http.MethodDelete: {
			Scheme: auth.SchemeAlways(auth.SchemeJWT),
			Allow: func(r *http.Request, id auth.Identity) (bool, error) {
				if !premium(id) {
					return false, nil
				}
				var ref favoriteRef
				if err := peekBody(r, &ref); err != nil {
					return false, auth.NewStatusError(http.StatusBadRequest, "request body is not valid JSON")
				}
				return ref.Email == id.Subject, nil
			},
		},
	}
}
