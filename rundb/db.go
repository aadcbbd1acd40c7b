// SPDX-License-Identifier: MIT
// File: db.go
// Role: badger/v4-backed storage of Run records, keyed by run id.

package rundb

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

// DB is a single badger-backed run cache. Safe for concurrent use: every
// operation runs inside its own badger transaction.
type DB struct {
	badger *badger.DB
}

// Open opens (creating if absent) the badger store rooted at dir.
func Open(dir string) (*DB, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	bdb, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("rundb: opening %q: %w", dir, err)
	}

	return &DB{badger: bdb}, nil
}

// Close releases the underlying badger store.
func (d *DB) Close() error { return d.badger.Close() }

// Put persists run under its ID, overwriting any existing entry.
func (d *DB) Put(run Run) error {
	value, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("rundb: encoding run %q: %w", run.ID, err)
	}

	return d.badger.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(run.ID), value)
	})
}

// Get retrieves the run recorded under id.
func (d *DB) Get(id string) (Run, error) {
	var run Run
	err := d.badger.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return fmt.Errorf("rundb: run %q: %w", id, ErrRunNotFound)
			}
			return err
		}

		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &run)
		})
	})

	return run, err
}

// List returns every cached run, in key (run id) order.
func (d *DB) List() ([]Run, error) {
	var runs []Run
	err := d.badger.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var run Run
			if err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &run)
			}); err != nil {
				return err
			}
			runs = append(runs, run)
		}

		return nil
	})

	return runs, err
}
