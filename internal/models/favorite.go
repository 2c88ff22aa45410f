// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package models

// Favorite marks a movie on a user's watch list. A given (email, movie)
// pair may appear at most once; the store enforces this with a secondary
// index and reports duplicates as a conflict.
type Favorite struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	MovieID  string `json:"movie_id"`
	Viewed   bool   `json:"viewed"`
	Feedback string `json:"feedback,omitempty"`
}
