// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/internal/database"
	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/ChainSafe/grandpa-bridge/pkg/scale"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "state"))

const justificationPrefix = "justification"

// ErrNotFound is returned when no justification is stored for a block.
var ErrNotFound = errors.New("justification not found")

// JustificationStore persists verified justification records keyed
// by block number. Records are SCALE encoded and zstd compressed.
// Writes to the same block number overwrite the previous record.
type JustificationStore struct {
	table      database.Table
	compressor *compressor

	// latest caches the highest stored block number
	latestMutex sync.Mutex
	latest      *uint32
}

// NewJustificationStore creates a justification store using the database given.
func NewJustificationStore(db database.Database) (*JustificationStore, error) {
	compressor, err := newCompressor()
	if err != nil {
		return nil, err
	}

	return &JustificationStore{
		table:      db.NewTable(justificationPrefix),
		compressor: compressor,
	}, nil
}

func justificationKey(blockNumber uint32) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, blockNumber)
	return key
}

// Append stores the justification record, keyed by its block number.
func (s *JustificationStore) Append(stored types.StoredJustification) error {
	err := stored.Record.CheckShape()
	if err != nil {
		return fmt.Errorf("checking record: %w", err)
	}

	encoded, err := scale.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encoding stored justification: %w", err)
	}

	blockNumber := stored.Record.BlockNumber
	err = s.table.Set(justificationKey(blockNumber), s.compressor.compress(encoded))
	if err != nil {
		return fmt.Errorf("writing justification for block %d: %w", blockNumber, err)
	}

	s.latestMutex.Lock()
	if s.latest == nil || blockNumber > *s.latest {
		s.latest = &blockNumber
	}
	s.latestMutex.Unlock()

	logger.Debugf("stored justification for block %d and authority set id %d",
		blockNumber, stored.AuthoritySetID)
	return nil
}

// Get returns the justification stored for the block number given.
// It returns an error wrapping ErrNotFound if there is none.
func (s *JustificationStore) Get(blockNumber uint32) (*types.StoredJustification, error) {
	value, err := s.table.Get(justificationKey(blockNumber))
	if errors.Is(err, database.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: block %d", ErrNotFound, blockNumber)
	} else if err != nil {
		return nil, fmt.Errorf("reading justification for block %d: %w", blockNumber, err)
	}

	return s.decode(value)
}

// Latest returns the stored justification with the highest block number.
// It returns an error wrapping ErrNotFound if the store is empty.
func (s *JustificationStore) Latest() (*types.StoredJustification, error) {
	var latest *types.StoredJustification
	err := s.table.Iterate(nil, true, func(_, value []byte) (more bool, err error) {
		latest, err = s.decode(value)
		return false, err
	})
	if err != nil {
		return nil, fmt.Errorf("iterating justifications: %w", err)
	}

	if latest == nil {
		return nil, fmt.Errorf("%w: store is empty", ErrNotFound)
	}
	return latest, nil
}

// LatestBlockNumber returns the highest stored block number, and false
// if the store is empty.
func (s *JustificationStore) LatestBlockNumber() (blockNumber uint32, ok bool, err error) {
	s.latestMutex.Lock()
	defer s.latestMutex.Unlock()

	if s.latest != nil {
		return *s.latest, true, nil
	}

	latest, err := s.Latest()
	if errors.Is(err, ErrNotFound) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}

	blockNumber = latest.Record.BlockNumber
	s.latest = &blockNumber
	return blockNumber, true, nil
}

// Iterate calls handle for each stored justification with a block
// number of at least from, in ascending block number order, until
// handle returns false or an error.
func (s *JustificationStore) Iterate(from uint32,
	handle func(stored *types.StoredJustification) (more bool, err error)) error {
	return s.table.Iterate(nil, false, func(key, value []byte) (more bool, err error) {
		if binary.BigEndian.Uint32(key) < from {
			return true, nil
		}

		stored, err := s.decode(value)
		if err != nil {
			return false, err
		}
		return handle(stored)
	})
}

// Close releases the compression resources.
// It does not close the underlying database.
func (s *JustificationStore) Close() {
	s.compressor.close()
}

func (s *JustificationStore) decode(value []byte) (*types.StoredJustification, error) {
	encoded, err := s.compressor.decompress(value)
	if err != nil {
		return nil, err
	}

	stored := new(types.StoredJustification)
	err = scale.Unmarshal(encoded, stored)
	if err != nil {
		return nil, fmt.Errorf("decoding stored justification: %w", err)
	}
	return stored, nil
}
