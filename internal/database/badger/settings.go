// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package badger

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ChainSafe/grandpa-bridge/internal/log"
)

// ErrPathNotSet is returned when an on-disk database has no path.
var ErrPathNotSet = errors.New("database path is not set")

// Settings is the database settings.
type Settings struct {
	// Path is the database directory, ignored for in-memory databases.
	Path string
	// InMemory keeps the database in memory only.
	InMemory bool
	// SyncWrites syncs every write to disk before returning.
	SyncWrites bool
	// Logger receives the badger internal logs.
	// They are discarded if it is nil.
	Logger log.LeveledLogger
}

// validate checks the settings and makes the path absolute.
func (s *Settings) validate() (err error) {
	if s.InMemory {
		return nil
	}

	if s.Path == "" {
		return ErrPathNotSet
	}

	s.Path, err = filepath.Abs(s.Path)
	if err != nil {
		return fmt.Errorf("changing path to absolute path: %w", err)
	}
	return nil
}

// badgerLogger adapts a leveled logger to the badger logger interface.
// Badger info logs are noisy so they are logged at the debug level.
type badgerLogger struct {
	logger log.LeveledLogger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warnf(format, args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Tracef(format, args...)
}
