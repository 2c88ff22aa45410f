// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/cinelog/internal/models"
)

func commentKey(id string) string {
	return commentKeyPrefix + id
}

// GetCommentByID returns the comment with the given ID, or ErrNotFound.
func (s *Store) GetCommentByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	if err := s.getJSON(commentKey(id), &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// listComments scans all comments keeping those that pass the filter.
func (s *Store) listComments(keep func(*models.Comment) bool) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.scanPrefix(commentKeyPrefix, func(val []byte) error {
		var comment models.Comment
		if err := json.Unmarshal(val, &comment); err != nil {
			return fmt.Errorf("decode comment: %w", err)
		}
		if keep(&comment) {
			comments = append(comments, comment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Date.After(comments[j].Date)
	})
	return comments, nil
}

// GetCommentsByMovie returns all comments on the movie, newest first.
func (s *Store) GetCommentsByMovie(ctx context.Context, movieID string) ([]models.Comment, error) {
	return s.listComments(func(c *models.Comment) bool {
		return c.MovieID == movieID
	})
}

// GetCommentsByEmail returns all comments written by the account, newest
// first.
func (s *Store) GetCommentsByEmail(ctx context.Context, email string) ([]models.Comment, error) {
	return s.listComments(func(c *models.Comment) bool {
		return c.Email == email
	})
}

// AddComment stores a new comment and bumps the movie's comment counter.
// The movie must exist; a comment on an unknown movie is rejected with
// ErrNotFound.
func (s *Store) AddComment(ctx context.Context, movieID, email, name, text string) (*models.Comment, error) {
	if _, err := s.GetMovieByID(ctx, movieID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:      uuid.NewString(),
		MovieID: movieID,
		Email:   email,
		Name:    name,
		Text:    text,
		Date:    time.Now().UTC(),
	}
	if err := s.setJSON(commentKey(comment.ID), comment); err != nil {
		return nil, err
	}
	if err := s.AdjustMovieCommentCount(ctx, movieID, 1); err != nil {
		return nil, err
	}
	return comment, nil
}

// UpdateCommentText replaces the text of an existing comment.
func (s *Store) UpdateCommentText(ctx context.Context, id, text string) (*models.Comment, error) {
	comment, err := s.GetCommentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	comment.Text = text
	if err := s.setJSON(commentKey(id), comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment and decrements the movie's comment
// counter. Returns ErrNotFound when the comment does not exist.
func (s *Store) DeleteComment(ctx context.Context, id string) error {
	comment, err := s.GetCommentByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.delete(commentKey(id)); err != nil {
		return err
	}
	return s.AdjustMovieCommentCount(ctx, comment.MovieID, -1)
}
