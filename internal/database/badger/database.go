// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package badger provides a database implementation using badger v2.
package badger

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/grandpa-bridge/internal/database"
	badger "github.com/dgraph-io/badger/v2"
)

var _ database.Database = (*Database)(nil)

// Database is database implementation using a badger/v2 database.
type Database struct {
	badgerDatabase *badger.DB
}

// New returns a new database based on a badger v2 database.
func New(settings Settings) (db *Database, err error) {
	err = settings.validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	var badgerOptions badger.Options
	if settings.InMemory {
		badgerOptions = badger.DefaultOptions("").WithInMemory(true)
	} else {
		badgerOptions = badger.DefaultOptions(settings.Path).
			WithSyncWrites(settings.SyncWrites)
	}

	if settings.Logger != nil {
		badgerOptions = badgerOptions.WithLogger(badgerLogger{logger: settings.Logger})
	} else {
		badgerOptions = badgerOptions.WithLogger(nil)
	}

	badgerDatabase, err := badger.Open(badgerOptions)
	if err != nil {
		return nil, fmt.Errorf("opening badger database: %w", err)
	}

	return &Database{
		badgerDatabase: badgerDatabase,
	}, nil
}

// Get retrieves a value from the database using the given key.
// It returns the wrapped error `database.ErrKeyNotFound` if the
// key is not found.
func (db *Database) Get(key []byte) (value []byte, err error) {
	err = db.badgerDatabase.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return fmt.Errorf("getting item from transaction: %w", err)
		}

		value, err = item.ValueCopy(nil)
		if err != nil {
			return fmt.Errorf("copying value: %w", err)
		}

		return nil
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: 0x%x", database.ErrKeyNotFound, key)
	}

	return value, transformError(err)
}

// Set sets a value at the given key in the database.
func (db *Database) Set(key, value []byte) (err error) {
	err = db.badgerDatabase.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	return transformError(err)
}

// Delete deletes the given key from the database.
// If the key is not found, no error is returned.
func (db *Database) Delete(key []byte) (err error) {
	err = db.badgerDatabase.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	return transformError(err)
}

// Iterate iterates over the key value pairs with the given prefix,
// in ascending key order, or descending order if reverse is true.
func (db *Database) Iterate(prefix []byte, reverse bool,
	handle func(key, value []byte) (more bool, err error)) (err error) {
	err = db.badgerDatabase.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = reverse
		options.Prefix = prefix
		iterator := txn.NewIterator(options)
		defer iterator.Close()

		seekKey := prefix
		if reverse {
			// a reverse iterator seeks to the largest key lower or equal
			// to the seek key.
			seekKey = makeReverseSeekKey(prefix)
		}

		for iterator.Seek(seekKey); iterator.ValidForPrefix(prefix); iterator.Next() {
			item := iterator.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("copying value: %w", err)
			}

			more, err := handle(item.Key(), value)
			if err != nil {
				return fmt.Errorf("handling key value: %w", err)
			} else if !more {
				return nil
			}
		}
		return nil
	})
	return transformError(err)
}

// NewWriteBatch returns a new write batch for the database.
func (db *Database) NewWriteBatch() (writeBatch database.WriteBatch) {
	prefix := []byte(nil)
	badgerWriteBatch := db.badgerDatabase.NewWriteBatch()
	return newWriteBatch(prefix, badgerWriteBatch)
}

// NewTable returns a new table using the database.
// All keys on the table will be prefixed with the given prefix.
func (db *Database) NewTable(prefix string) (dbTable database.Table) {
	return newTable([]byte(prefix), db)
}

// Close closes the database.
func (db *Database) Close() (err error) {
	err = db.badgerDatabase.Close()
	return transformError(err)
}

// DropAll drops all data from the database.
func (db *Database) DropAll() (err error) {
	err = db.badgerDatabase.DropAll()
	return transformError(err)
}
