// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package store

import "errors"

// Sentinel errors returned by store operations. Callers branch on these with
// errors.Is; the API layer maps them to 404 and 409 responses.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists indicates a unique key collision on create.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrSamePassword indicates a password update that matches the stored
	// password.
	ErrSamePassword = errors.New("password is the same")
)

// errStopScan terminates a prefix scan early once the caller found what it
// was looking for. Never escapes the store package.
var errStopScan = errors.New("stop scan")
