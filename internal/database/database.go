// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package database defines the key value database interfaces
// implemented by the badger sub-package.
package database

import (
	"errors"
)

var (
	// ErrKeyNotFound is returned when a key is not found in the database.
	ErrKeyNotFound = errors.New("key not found")
	// ErrClosed is returned when the database is closed.
	ErrClosed = errors.New("database closed")
)

// Reader reads values from the database.
type Reader interface {
	Get(key []byte) (value []byte, err error)
}

// Writer writes values to the database.
type Writer interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// Iterator iterates over key value pairs sharing a key prefix.
// The handle function returns false to stop the iteration.
// Keys are visited in ascending byte order, or descending
// order if reverse is true. Key and value slices are only
// valid during the handle call.
type Iterator interface {
	Iterate(prefix []byte, reverse bool,
		handle func(key, value []byte) (more bool, err error)) error
}

// WriteBatch is a batch of writes applied to the database
// on Flush. It is not safe for concurrent use.
type WriteBatch interface {
	Writer
	Flush() error
	Cancel()
}

// Table is a view of the database where all keys
// are prefixed with the table prefix.
type Table interface {
	Reader
	Writer
	Iterator
	NewWriteBatch() WriteBatch
}

// Database is a key value database. All its methods are safe
// for concurrent use.
type Database interface {
	Reader
	Writer
	Iterator
	NewWriteBatch() WriteBatch
	NewTable(prefix string) Table
	Close() error
}
