// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/cinelog/internal/models"
)

func favoriteKey(id string) string {
	return favoriteKeyPrefix + id
}

// favoriteUserKey indexes one favorite per (email, movie) pair so duplicate
// favorites are caught with a single point lookup.
func favoriteUserKey(email, movieID string) string {
	return favoriteUserKeyPrefix + email + ":" + movieID
}

// AddFavorite stores a new favorite for the account. Favoriting the same
// movie twice is rejected with ErrAlreadyExists. The movie must exist.
func (s *Store) AddFavorite(ctx context.Context, email, movieID string) (*models.Favorite, error) {
	if _, err := s.GetMovieByID(ctx, movieID); err != nil {
		return nil, err
	}

	favorite := &models.Favorite{
		ID:      uuid.NewString(),
		Email:   email,
		MovieID: movieID,
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		indexKey := []byte(favoriteUserKey(email, movieID))
		if _, err := txn.Get(indexKey); err == nil {
			return ErrAlreadyExists
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check favorite: %w", err)
		}
		if err := txn.Set(indexKey, []byte(favorite.ID)); err != nil {
			return err
		}
		return txnSetJSON(txn, favoriteKey(favorite.ID), favorite)
	})
	if err != nil {
		return nil, err
	}
	return favorite, nil
}

// GetFavoritesByEmail returns every favorite belonging to the account.
func (s *Store) GetFavoritesByEmail(ctx context.Context, email string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := s.scanPrefix(favoriteKeyPrefix, func(val []byte) error {
		var favorite models.Favorite
		if err := json.Unmarshal(val, &favorite); err != nil {
			return fmt.Errorf("decode favorite: %w", err)
		}
		if favorite.Email == email {
			favorites = append(favorites, favorite)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// HasAnyFavorite reports whether the account holds at least one favorite.
func (s *Store) HasAnyFavorite(ctx context.Context, email string) (bool, error) {
	favorites, err := s.GetFavoritesByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return len(favorites) > 0, nil
}

// UpdateFavorite sets the viewed flag and feedback text of the account's
// favorite for the movie. Returns ErrNotFound when the pair is unknown.
func (s *Store) UpdateFavorite(ctx context.Context, email, movieID string, viewed bool, feedback string) (*models.Favorite, error) {
	var favorite models.Favorite
	err := s.db.Update(func(txn *badger.Txn) error {
		id, err := s.favoriteIDFor(txn, email, movieID)
		if err != nil {
			return err
		}
		if err := txnGetJSON(txn, favoriteKey(id), &favorite); err != nil {
			return err
		}
		favorite.Viewed = viewed
		favorite.Feedback = feedback
		return txnSetJSON(txn, favoriteKey(id), &favorite)
	})
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

// DeleteFavorite removes the account's favorite for the movie along with its
// index entry. Returns ErrNotFound when the pair is unknown.
func (s *Store) DeleteFavorite(ctx context.Context, email, movieID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		id, err := s.favoriteIDFor(txn, email, movieID)
		if err != nil {
			return err
		}
		if err := txn.Delete([]byte(favoriteKey(id))); err != nil {
			return err
		}
		return txn.Delete([]byte(favoriteUserKey(email, movieID)))
	})
}

func (s *Store) favoriteIDFor(txn *badger.Txn, email, movieID string) (string, error) {
	item, err := txn.Get([]byte(favoriteUserKey(email, movieID)))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get favorite index: %w", err)
	}
	var id string
	err = item.Value(func(val []byte) error {
		id = string(val)
		return nil
	})
	return id, err
}
