// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package models

import "fmt"

// Role is the authorization role carried by an account and by issued tokens.
// The set is closed: only the three values below are valid after account
// creation. The configured super-admin identity authenticates with an empty
// role and is recognized by subject, not by role.
type Role string

const (
	// RoleUser is the default role assigned on self-service signup.
	RoleUser Role = "user"

	// RolePremiumUser unlocks rating, commenting, and favorites.
	RolePremiumUser Role = "premium_user"

	// RoleAdmin is assigned via the admin signup path or a role change.
	RoleAdmin Role = "admin"
)

// ParseRole validates a raw role string against the closed role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RolePremiumUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("invalid role %q: must be one of user, premium_user, admin", s)
	}
}

// Valid reports whether the role is a member of the closed role set.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}
