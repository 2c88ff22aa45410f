// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package api

import (
	"net/http"

	"github.com/tomtom215/cinelog/internal/auth"
)

// AccountsPolicy encodes the access model for the accounts group:
//
//   - POST: creating a user account and logging in are public; creating an
//     admin account demands Basic credentials from the super-admin identity.
//   - GET: the caller must be the target account or an admin.
//   - PATCH: password changes are owner-or-admin; role changes, block, and
//     unblock are admin only.
//   - DELETE: owner-or-admin.
func (p *Policies) AccountsPolicy() auth.PolicyTable {
	return auth.PolicyTable{
		http.MethodPost: {
			// Only the admin-creation sub-path requires credentials; user
			// signup and login stay public.
			Scheme: func(r *http.Request) auth.Scheme {
				if pathContains(r, "admin") {
					return auth.SchemeBasic
				}
				return auth.SchemeNone
			},
			Allow: func(r *http.Request, id auth.Identity) (bool, error) {
				return p.isSuperAdmin(id), nil
			},
		},
		http.MethodGet: {
			Scheme: auth.SchemeAlways(auth.SchemeJWT),
			Allow:  p.ownerOrAdmin(pathTail),
		},
		http.MethodPatch: {
			Scheme: auth.SchemeAlways(auth.SchemeJWT),
			Allow: func(r *http.Request, id auth.Identity) (bool, error) {
				if pathContains(r, "password") {
					return p.isAdmin(id) || pathTail(r) == id.Subject, nil
				}
				// roles, block, unblock
				return p.isAdmin(id), nil
			},
		},
		http.MethodDelete: {
			Scheme: auth.SchemeAlways(auth.SchemeJWT),
			Allow:  p.ownerOrAdmin(pathTail),
		},
	}
}

// ownerOrAdmin admits admins and callers whose subject equals the email the
// extractor pulls from the request.
func (p *Policies) ownerOrAdmin(email func(*http.Request) string) auth.Predicate {
	return func(r *http.Request, id auth.Identity) (bool, error) {
		return p.isAdmin(id) || email(r) == id.Subject, nil
	}
}
