// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinelog/internal/models"
)

func movieKey(id string) string {
	return movieKeyPrefix + id
}

// GetMovieByID returns the movie with the given catalog ID, or ErrNotFound.
func (s *Store) GetMovieByID(ctx context.Context, id string) (*models.Movie, error) {
	var movie models.Movie
	if err := s.getJSON(movieKey(id), &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetMovieByImdbID scans for the movie carrying the given IMDb numeric ID.
func (s *Store) GetMovieByImdbID(ctx context.Context, imdbID int) (*models.Movie, error) {
	var found *models.Movie
	err := s.scanPrefix(movieKeyPrefix, func(val []byte) error {
		var movie models.Movie
		if err := json.Unmarshal(val, &movie); err != nil {
			return fmt.Errorf("decode movie: %w", err)
		}
		if movie.IMDB.ID == imdbID {
			found = &movie
			return errStopScan
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopScan) {
		return nil, err
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// PutMovie writes (or overwrites) a movie record.
func (s *Store) PutMovie(ctx context.Context, movie *models.Movie) error {
	return s.setJSON(movieKey(movie.ID), movie)
}

// listMovies scans the full movie collection, keeping entries that pass the
// filter.
func (s *Store) listMovies(filter models.MovieFilter) ([]models.Movie, error) {
	var movies []models.Movie
	err := s.scanPrefix(movieKeyPrefix, func(val []byte) error {
		var movie models.Movie
		if err := json.Unmarshal(val, &movie); err != nil {
			return fmt.Errorf("decode movie: %w", err)
		}
		if movie.MatchesFilter(filter) {
			movies = append(movies, movie)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movies, nil
}

// MostRatedMovies returns up to filter.Amount movies matching the filter,
// ordered by IMDb rating descending.
func (s *Store) MostRatedMovies(ctx context.Context, filter models.MovieFilter) ([]models.MovieSummary, error) {
	movies, err := s.listMovies(filter)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].IMDB.Rating > movies[j].IMDB.Rating
	})
	return summarize(movies, filter.Amount), nil
}

// MostCommentedMovies returns up to filter.Amount movies matching the filter,
// ordered by comment count descending.
func (s *Store) MostCommentedMovies(ctx context.Context, filter models.MovieFilter) ([]models.MovieSummary, error) {
	movies, err := s.listMovies(filter)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].NumComments > movies[j].NumComments
	})
	return summarize(movies, filter.Amount), nil
}

func summarize(movies []models.Movie, amount int) []models.MovieSummary {
	if amount > 0 && amount < len(movies) {
		movies = movies[:amount]
	}
	summaries := make([]models.MovieSummary, 0, len(movies))
	for i := range movies {
		summaries = append(summaries, movies[i].Summary())
	}
	return summaries
}

// RateMovie folds a new rating into the movie's running IMDb average and
// bumps the vote count. Returns the updated movie.
func (s *Store) RateMovie(ctx context.Context, imdbID int, rating float64) (*models.Movie, error) {
	movie, err := s.GetMovieByImdbID(ctx, imdbID)
	if err != nil {
		return nil, err
	}

	votes := movie.IMDB.Votes
	movie.IMDB.Rating = (movie.IMDB.Rating*float64(votes) + rating) / float64(votes+1)
	movie.IMDB.Votes = votes + 1

	if err := s.setJSON(movieKey(movie.ID), movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// AdjustMovieCommentCount shifts the movie's cached comment counter by delta,
// clamping at zero. Missing movies are ignored so orphaned comments never
// fail their own writes.
func (s *Store) AdjustMovieCommentCount(ctx context.Context, movieID string, delta int) error {
	movie, err := s.GetMovieByID(ctx, movieID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	movie.NumComments += delta
	if movie.NumComments < 0 {
		movie.NumComments = 0
	}
	return s.setJSON(movieKey(movie.ID), movie)
}
