// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

// Package auth implements credential extraction and policy-table
// authorization.
//
// The two concerns are deliberately split into separate middlewares:
//
//   - Extract resolves Authorization headers (bearer tokens and HTTP Basic
//     credentials) to an Identity on the request context. It never rejects
//     a request; failed extraction just leaves the identity unset.
//
//   - Authorize(table) enforces a per-method PolicyTable: which scheme the
//     operation demands and which predicate must hold. All allow and deny
//     decisions, and all of their status codes, originate here.
//
// Handlers downstream of Authorize can assume the policy held and read the
// caller from IdentityFromContext.
package auth
