// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package auth

import "fmt"

// StatusError is an error carrying an HTTP status. Policy predicates return
// it when a denial must surface with a specific status (404 for a missing
// target, 429 for an exhausted quota) instead of the generic 403.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// NewStatusError builds a StatusError with the given status and message.
func NewStatusError(status int, format string, args ...interface{}) *StatusError {
	return &StatusError{Status: status, Message: fmt.Sprintf(format, args...)}
}
