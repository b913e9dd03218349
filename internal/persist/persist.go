// Package persist provides named JSON state partitions on an embedded
// Badger database. Each store in the application owns exactly one
// partition, so a corrupt value in one partition can never cascade into
// another.
package persist

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const partitionPrefix = "partition:"

// Store wraps a Badger database instance and exposes partition-level
// save/load. It is the only component that touches the storage medium.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// New opens the database at path. SyncWrites is enabled so a mutation
// does not return before its durable write is issued.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil      // Disable Badger's internal logging
	opts.SyncWrites = true // Mutations must not outrun durability
	opts.CompactL0OnClose = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("Partition database opened", "path", path)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close gracefully closes the database.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing partition database")
	}
	return s.db.Close()
}

// Save serializes value under the named partition. The write is
// synchronous relative to the calling mutation.
func (s *Store) Save(ctx context.Context, partition string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal partition %s: %w", partition, err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(partitionPrefix+partition), data)
	})
}

// Load deserializes the named partition into dest. Returns false when
// the partition is absent. A value that fails to parse is treated
// identically to an absent one: the caller falls back to defaults, the
// corruption is logged, never surfaced as an error.
func (s *Store) Load(ctx context.Context, partition string, dest any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(partitionPrefix + partition))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw = append(raw[:0], val...)
			return nil
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load partition %s: %w", partition, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		if s.logger != nil {
			s.logger.Warn("Discarding corrupt partition",
				"partition", partition,
				"error", err,
			)
		}
		return false, nil
	}

	return true, nil
}

// Delete removes the named partition. Idempotent: deleting an absent
// partition is not an error.
func (s *Store) Delete(ctx context.Context, partition string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(partitionPrefix + partition))
	})
}

// SaveRaw stores an opaque byte value under the named key. Used for the
// session marker, which must be checkable without JSON decoding.
func (s *Store) SaveRaw(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(partitionPrefix+key), value)
	})
}

// LoadRaw retrieves an opaque byte value. Returns false when absent.
func (s *Store) LoadRaw(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(partitionPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw = append(raw[:0], val...)
			return nil
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load key %s: %w", key, err)
	}

	return raw, true, nil
}

// Exists reports whether the named key or partition is present, without
// reading its value.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(partitionPrefix + key))
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
