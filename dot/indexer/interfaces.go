// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package indexer

import (
	"context"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
)

// JustificationSource yields finalised block justifications in
// finalisation order. Next returns io.EOF once the source has ended.
type JustificationSource interface {
	Next(ctx context.Context) (*types.Justification, error)
}

// JustificationStore is the append only store of verified justifications.
type JustificationStore interface {
	Append(stored types.StoredJustification) error
	LatestBlockNumber() (blockNumber uint32, ok bool, err error)
}

// AuthoritySetStore keeps the authority sets seen by the indexer.
type AuthoritySetStore interface {
	Has(setID uint64) (bool, error)
	Put(set *types.AuthoritySet) error
}

// ChainReader reads chain state at a given block.
type ChainReader interface {
	Header(ctx context.Context, hash common.Hash) (*types.Header, error)
	AuthoritySetID(ctx context.Context, atHash common.Hash) (uint64, error)
	Authorities(ctx context.Context, atNumber uint32) (types.AuthorityList, error)
	Close() error
}

// ChainReaderFactory creates a new chain reader.
type ChainReaderFactory func(ctx context.Context) (ChainReader, error)

// Verifier verifies a justification against an authority set.
type Verifier interface {
	Verify(justification *types.Justification, setID uint64,
		set *types.AuthoritySet) (*types.VerifiedJustificationRecord, error)
}
