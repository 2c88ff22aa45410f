// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package models

import "strings"

// Movie is a catalog entry. The IMDb block carries the community rating as a
// running average over IMDB.Votes votes.
type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	Cast        []string `json:"cast,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Languages   []string `json:"languages,omitempty"`
	IMDB        IMDBInfo `json:"imdb"`
	NumComments int      `json:"num_comments"`
}

// IMDBInfo is the IMDb identity and rating state of a movie.
type IMDBInfo struct {
	ID     int     `json:"id"`
	Rating float64 `json:"rating"`
	Votes  int     `json:"votes"`
}

// MovieFilter narrows catalog queries. Zero values mean "no constraint";
// Genres requires all listed genres to be present. Amount caps the result
// count.
type MovieFilter struct {
	Year     int      `json:"year,omitempty"`
	Actor    string   `json:"actor,omitempty"`
	Genres   []string `json:"genres,omitempty"`
	Language string   `json:"language,omitempty"`
	Amount   int      `json:"amount,omitempty" validate:"omitempty,min=1,max=100"`
}

// MovieSummary is the trimmed projection returned by the ranked queries.
type MovieSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	IMDB        IMDBInfo `json:"imdb"`
	NumComments int      `json:"num_comments,omitempty"`
}

// Summary projects a movie onto its ranked-query shape.
func (m *Movie) Summary() MovieSummary {
	return MovieSummary{
		ID:          m.ID,
		Title:       m.Title,
		IMDB:        m.IMDB,
		NumComments: m.NumComments,
	}
}

// MatchesFilter reports whether the movie satisfies every set constraint.
func (m *Movie) MatchesFilter(f MovieFilter) bool {
	if f.Year != 0 && m.Year != f.Year {
		return false
	}
	if f.Actor != "" && !containsFold(m.Cast, f.Actor) {
		return false
	}
	if f.Language != "" && !contains(m.Languages, f.Language) {
		return false
	}
	for _, g := range f.Genres {
		if !contains(m.Genres, g) {
			return false
		}
	}
	return true
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

// containsFold is a case-insensitive substring match, mirroring the
// case-insensitive actor regex of the ranked catalog queries.
func containsFold(list []string, substr string) bool {
	needle := strings.ToLower(substr)
	for _, s := range list {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}
