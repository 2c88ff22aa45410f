// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

// Package store persists accounts, movies, comments, and favorites in
// BadgerDB.
//
// Records are stored as JSON values under typed key prefixes. Every mutation
// touches a single record inside one Badger transaction; there are no
// cross-record transactions. Secondary lookups (movies by IMDb ID, comments
// by movie, favorites by email) either use a prefix index key or a prefix
// scan over the collection.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinelog/internal/config"
	"github.com/tomtom215/cinelog/internal/logging"
)

// Key prefixes for BadgerDB storage.
const (
	accountKeyPrefix      = "account:"
	movieKeyPrefix        = "movie:"
	commentKeyPrefix      = "comment:"
	favoriteKeyPrefix     = "favorite:"
	favoriteUserKeyPrefix = "favorite_user:"
)

// Store wraps a Badger database with typed accessors for each collection.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the Badger database described by cfg.
func Open(cfg config.DatabaseConfig) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithLogger(badgerLogger{logging.WithComponent("badger")})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", cfg.Path, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a throwaway in-memory store. Used by tests.
func OpenInMemory() (*Store, error) {
	return Open(config.DatabaseConfig{InMemory: true})
}

// Close flushes and closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database is open and readable.
func (s *Store) Ping() error {
	if s.db.IsClosed() {
		return errors.New("database is closed")
	}
	return s.db.View(func(*badger.Txn) error { return nil })
}

// getJSON reads and unmarshals the value at key into out.
// Returns ErrNotFound when the key is absent.
func (s *Store) getJSON(key string, out interface{}) error {
	return s.db.View(func(txn *badger.Txn) error {
		return txnGetJSON(txn, key, out)
	})
}

// setJSON marshals v and writes it at key in a single transaction.
func (s *Store) setJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func txnGetJSON(txn *badger.Txn, key string, out interface{}) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}

func txnSetJSON(txn *badger.Txn, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return txn.Set([]byte(key), data)
}

// delete removes the value at key inside its own transaction.
func (s *Store) delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// scanPrefix iterates every value under prefix, invoking fn with the raw
// JSON value. fn returning an error stops the scan.
func (s *Store) scanPrefix(prefix string, fn func(val []byte) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			if err := it.Item().Value(fn); err != nil {
				return err
			}
		}
		return nil
	})
}

// badgerLogger adapts the zerolog component logger to badger.Logger.
// Badger's info-level output is verbose, so it is demoted to debug.
type badgerLogger struct {
	log zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msgf(strings.TrimSpace(format), args...)
}
