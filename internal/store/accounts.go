// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/cinelog/internal/models"
)

// bcryptCost balances security and login latency; matches the cost used for
// the configured super-admin secret.
const bcryptCost = 12

func accountKey(email string) string {
	return accountKeyPrefix + email
}

// FindAccountByEmail returns the stored account for email, or ErrNotFound.
func (s *Store) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	if err := s.getJSON(accountKey(email), &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// CreateAccount hashes the password and inserts a new account with the given
// role. Returns ErrAlreadyExists when the email is taken.
func (s *Store) CreateAccount(ctx context.Context, email, username, password string, role models.Role) (*models.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &models.Account{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Blocked:      false,
		CreatedAt:    time.Now().UTC(),
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		key := []byte(accountKey(email))
		if _, err := txn.Get(key); err == nil {
			return ErrAlreadyExists
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check account: %w", err)
		}
		return txnSetJSON(txn, accountKey(email), account)
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// VerifyPassword compares a plaintext password against the stored hash.
func (s *Store) VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// updateAccount loads, mutates, and rewrites a single account in one
// transaction. mutate returning an error aborts the write.
func (s *Store) updateAccount(email string, mutate func(*models.Account) error) error {
	return s.db.Update(func(txn *badger.Txn) error {
		var account models.Account
		if err := txnGetJSON(txn, accountKey(email), &account); err != nil {
			return err
		}
		if err := mutate(&account); err != nil {
			return err
		}
		return txnSetJSON(txn, accountKey(email), &account)
	})
}

// SetAccountRole changes an account's role. The role must already be
// validated against the closed role set.
func (s *Store) SetAccountRole(ctx context.Context, email string, role models.Role) error {
	return s.updateAccount(email, func(a *models.Account) error {
		a.Role = role
		return nil
	})
}

// UpdateAccountPassword replaces the stored password hash. A new password
// identical to the current one is rejected with ErrSamePassword.
func (s *Store) UpdateAccountPassword(ctx context.Context, email, newPassword string) error {
	return s.updateAccount(email, func(a *models.Account) error {
		if s.VerifyPassword(newPassword, a.PasswordHash) {
			return ErrSamePassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		a.PasswordHash = string(hash)
		return nil
	})
}

// SetAccountBlocked sets the blocked flag to the given value.
func (s *Store) SetAccountBlocked(ctx context.Context, email string, blocked bool) error {
	return s.updateAccount(email, func(a *models.Account) error {
		a.Blocked = blocked
		return nil
	})
}

// DeleteAccount removes an account. Returns ErrNotFound when absent.
func (s *Store) DeleteAccount(ctx context.Context, email string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := []byte(accountKey(email))
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		} else if err != nil {
			return fmt.Errorf("check account: %w", err)
		}
		return txn.Delete(key)
	})
}

// ReadAndMaybeResetQuota returns the account's current quota counter,
// resetting it first when the window has elapsed relative to now.
//
// The read and any concurrent increment are not serialized against each
// other; two in-flight requests can both observe the pre-increment count.
// That weak consistency is accepted for this limiter.
func (s *Store) ReadAndMaybeResetQuota(ctx context.Context, email string, now time.Time, window time.Duration) (models.RequestQuota, error) {
	var quota models.RequestQuota
	err := s.updateAccount(email, func(a *models.Account) error {
		if now.Sub(a.Quota.WindowStart) > window {
			a.Quota = models.RequestQuota{Count: 0, WindowStart: now}
		}
		quota = a.Quota
		return nil
	})
	return quota, err
}

// IncrementQuota bumps the account's request counter by one.
func (s *Store) IncrementQuota(ctx context.Context, email string) error {
	return s.updateAccount(email, func(a *models.Account) error {
		a.Quota.Count++
		return nil
	})
}

// HasVoted reports whether the account already rated the movie.
func (s *Store) HasVoted(ctx context.Context, email string, imdbID int) (bool, error) {
	account, err := s.FindAccountByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return account.HasVoted(imdbID), nil
}

// RecordVote appends the movie to the account's voting history.
// Recording the same movie twice is a no-op.
func (s *Store) RecordVote(ctx context.Context, email string, imdbID int) error {
	return s.updateAccount(email, func(a *models.Account) error {
		if a.HasVoted(imdbID) {
			return nil
		}
		a.MoviesVoted = append(a.MoviesVoted, imdbID)
		return nil
	})
}
