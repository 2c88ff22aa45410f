// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package auth

import (
	"context"

	"github.com/tomtom215/cinelog/internal/models"
)

// Scheme identifies how a request authenticated.
type Scheme string

const (
	// SchemeNone means no usable credentials were presented.
	SchemeNone Scheme = ""

	// SchemeBasic means the request carried valid HTTP Basic credentials.
	SchemeBasic Scheme = "basic"

	// SchemeJWT means the request carried a valid bearer token.
	SchemeJWT Scheme = "jwt"
)

// Identity is the authenticated caller attached to the request context by
// the extraction middleware. A zero Identity means extraction found nothing
// usable; enforcement happens later, at the policy check.
type Identity struct {
	// Subject is the account email the credentials resolved to.
	Subject string

	// Role is the account's role at the time of authentication.
	Role models.Role

	// Scheme records which credential type produced this identity.
	Scheme Scheme
}

// Authenticated reports whether extraction produced an identity.
func (id Identity) Authenticated() bool {
	return id.Scheme != SchemeNone
}

type identityContextKey struct{}

// WithIdentity returns a context carrying the identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// IdentityFromContext returns the identity attached by the extraction
// middleware. The zero Identity is returned when extraction found no
// credentials or never ran.
func IdentityFromContext(ctx context.Context) Identity {
	id, _ := ctx.Value(identityContextKey{}).(Identity)
	return id
}
