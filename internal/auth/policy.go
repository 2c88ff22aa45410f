// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package auth

import "net/http"

// Selector inspects a request and names the credential scheme it must carry.
// Returning SchemeNone marks the request public: it proceeds without any
// identity and the predicate is never consulted.
type Selector func(r *http.Request) Scheme

// Predicate decides whether an authenticated caller may perform the request.
//
// Returning (false, nil) denies with 403. Returning a *StatusError denies
// with that error's status, which is how a missing predicate target surfaces
// as 404 instead of a misleading 403. Any other error is treated as an
// internal fault and surfaces as 500.
type Predicate func(r *http.Request, id Identity) (bool, error)

// Policy pairs the scheme a request must authenticate with and the predicate
// that authorizes it.
type Policy struct {
	Scheme Selector
	Allow  Predicate
}

// PolicyTable maps an HTTP method to its policy. A table is built once at
// router construction and never mutated afterwards; requests only read it.
//
// Lookups are exact: a method with no entry is a configuration error and the
// mediator fails the request with 500 rather than guessing.
type PolicyTable map[string]Policy

// SchemeAlways returns a selector that demands the same scheme for every
// request.
func SchemeAlways(s Scheme) Selector {
	return func(*http.Request) Scheme { return s }
}

// Public marks every request public.
func Public() Selector {
	return func(*http.Request) Scheme { return SchemeNone }
}

// AllowAll is a predicate that admits every authenticated caller.
func AllowAll(*http.Request, Identity) (bool, error) {
	return true, nil
}

// RequireRole admits callers holding any of the given roles.
func RequireRole(roles ...string) Predicate {
	return func(_ *http.Request, id Identity) (bool, error) {
		for _, role := range roles {
			if string(id.Role) == role {
				return true, nil
			}
		}
		return false, nil
	}
}
