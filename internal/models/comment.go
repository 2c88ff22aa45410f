// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package models

import "time"

// Comment is a user comment attached to a movie. Email is the author's
// account key; ownership checks in the comments policy table compare it
// against the caller's subject.
type Comment struct {
	ID      string    `json:"id"`
	MovieID string    `json:"movie_id"`
	Email   string    `json:"email"`
	Name    string    `json:"name,omitempty"`
	Text    string    `json:"text"`
	Date    time.Time `json:"date"`
}
