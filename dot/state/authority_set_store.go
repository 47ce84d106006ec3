// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/internal/database"
	"github.com/ChainSafe/grandpa-bridge/pkg/scale"
	"github.com/dgraph-io/ristretto"
)

const authoritySetPrefix = "authority_set"

// ErrAuthoritySetNotFound is returned when no authority set is stored for a set id.
var ErrAuthoritySetNotFound = errors.New("authority set not found")

// AuthoritySetStore persists authority sets keyed by set id,
// with an in-memory cache in front of the database.
type AuthoritySetStore struct {
	table database.Table
	cache *ristretto.Cache
}

// NewAuthoritySetStore creates an authority set store caching
// up to maxCachedSets authority sets in memory.
func NewAuthoritySetStore(db database.Database, maxCachedSets int64) (*AuthoritySetStore, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxCachedSets,
		MaxCost:     maxCachedSets,
		BufferItems: 64,
		Cost: func(value interface{}) int64 {
			return 1
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating cache: %w", err)
	}

	return &AuthoritySetStore{
		table: db.NewTable(authoritySetPrefix),
		cache: cache,
	}, nil
}

func authoritySetKey(setID uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, setID)
	return key
}

// Put stores the authority set.
func (s *AuthoritySetStore) Put(set *types.AuthoritySet) error {
	encoded, err := scale.Marshal(*set)
	if err != nil {
		return fmt.Errorf("encoding authority set: %w", err)
	}

	err = s.table.Set(authoritySetKey(set.ID), encoded)
	if err != nil {
		return fmt.Errorf("writing authority set %d: %w", set.ID, err)
	}

	s.cache.Set(set.ID, set, 1)
	s.cache.Wait()
	return nil
}

// Get returns the authority set for the set id given.
// It returns an error wrapping ErrAuthoritySetNotFound if there is none.
func (s *AuthoritySetStore) Get(setID uint64) (*types.AuthoritySet, error) {
	cached, ok := s.cache.Get(setID)
	if ok {
		return cached.(*types.AuthoritySet), nil
	}

	value, err := s.table.Get(authoritySetKey(setID))
	if errors.Is(err, database.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: set id %d", ErrAuthoritySetNotFound, setID)
	} else if err != nil {
		return nil, fmt.Errorf("reading authority set %d: %w", setID, err)
	}

	set := new(types.AuthoritySet)
	err = scale.Unmarshal(value, set)
	if err != nil {
		return nil, fmt.Errorf("decoding authority set %d: %w", setID, err)
	}

	s.cache.Set(setID, set, 1)
	return set, nil
}

// Has returns true if the authority set is stored.
func (s *AuthoritySetStore) Has(setID uint64) (bool, error) {
	_, err := s.Get(setID)
	if errors.Is(err, ErrAuthoritySetNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}

// Close closes the cache. It does not close the underlying database.
func (s *AuthoritySetStore) Close() {
	s.cache.Close()
}
