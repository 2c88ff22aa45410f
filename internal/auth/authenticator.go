// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/cinelog/internal/config"
	"github.com/tomtom215/cinelog/internal/logging"
	"github.com/tomtom215/cinelog/internal/models"
	"github.com/tomtom215/cinelog/internal/store"
)

const (
	bearerPrefix = "Bearer "
	basicPrefix  = "Basic "
)

// Authenticator resolves request credentials to an Identity.
//
// Extraction is deliberately lenient: any failure (malformed header, bad
// signature, unknown account, wrong password) leaves the request
// unauthenticated rather than rejecting it. Whether an unauthenticated
// request may proceed is the policy layer's decision, not this one's.
type Authenticator struct {
	jwt   *JWTManager
	store *store.Store

	// Configured super-admin, validated without a store lookup. The
	// password is hashed once at construction so requests pay a single
	// bcrypt comparison, never a hash.
	adminEmail        string
	adminPasswordHash []byte
}

// NewAuthenticator builds the extraction middleware's backing state.
func NewAuthenticator(cfg *config.SecurityConfig, jwtManager *JWTManager, st *store.Store) (*Authenticator, error) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil, fmt.Errorf("admin credentials are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), 12)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &Authenticator{
		jwt:               jwtManager,
		store:             st,
		adminEmail:        cfg.AdminEmail,
		adminPasswordHash: hash,
	}, nil
}

// Extract is middleware that inspects the Authorization header and, when
// the credentials check out, attaches an Identity to the request context.
// It never writes a response and never blocks a request.
func (a *Authenticator) Extract(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		var id Identity
		switch {
		case strings.HasPrefix(header, bearerPrefix):
			id = a.extractBearer(r, strings.TrimPrefix(header, bearerPrefix))
		case strings.HasPrefix(header, basicPrefix):
			id = a.extractBasic(r, strings.TrimPrefix(header, basicPrefix))
		}

		if id.Authenticated() {
			r = r.WithContext(WithIdentity(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

func (a *Authenticator) extractBearer(r *http.Request, token string) Identity {
	claims, err := a.jwt.ValidateToken(token)
	if err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("bearer token rejected")
		return Identity{}
	}
	role, err := models.ParseRole(claims.Role)
	if err != nil {
		logging.Ctx(r.Context()).Debug().Str("role", claims.Role).Msg("token carries unknown role")
		return Identity{}
	}
	return Identity{Subject: claims.Subject, Role: role, Scheme: SchemeJWT}
}

func (a *Authenticator) extractBasic(r *http.Request, encoded string) Identity {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Identity{}
	}
	email, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return Identity{}
	}

	// Configured super-admin first. The email comparison is constant time
	// and the password comparison always runs, so an attacker cannot tell
	// which of the two failed. The resulting identity carries no role: it
	// is the administrative bypass identity, recognized by subject.
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(a.adminEmail)) == 1
	passwordMatch := bcrypt.CompareHashAndPassword(a.adminPasswordHash, []byte(password)) == nil
	if emailMatch && passwordMatch {
		return Identity{Subject: a.adminEmail, Scheme: SchemeBasic}
	}

	account, err := a.store.FindAccountByEmail(r.Context(), email)
	if err != nil {
		logging.Ctx(r.Context()).Debug().Str("email", email).Msg("basic credentials rejected")
		return Identity{}
	}
	if !a.store.VerifyPassword(password, account.PasswordHash) {
		logging.Ctx(r.Context()).Debug().Str("email", email).Msg("basic password mismatch")
		return Identity{}
	}
	return Identity{Subject: account.Email, Role: account.Role, Scheme: SchemeBasic}
}
