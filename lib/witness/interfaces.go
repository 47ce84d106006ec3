// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package witness

import (
	"context"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto"
)

// Provider supplies off-chain data to the verification computation.
// Its responses are untrusted.
type Provider interface {
	Justification(ctx context.Context, request JustificationRequest) (*JustificationResponse, error)
	Rotation(ctx context.Context, request RotationRequest) (*RotationResponse, error)
}

// SignatureVerifier verifies a batch of signatures and returns the
// validity of each one in the order given.
type SignatureVerifier interface {
	VerifyAll(signatures []crypto.SignatureInfo) (valid []bool)
}

// JustificationStore reads stored justification records.
type JustificationStore interface {
	Get(blockNumber uint32) (*types.StoredJustification, error)
}

// AuthoritySetStore reads and writes authority sets by set id.
type AuthoritySetStore interface {
	Get(setID uint64) (*types.AuthoritySet, error)
	Put(set *types.AuthoritySet) error
}

// ChainReader reads chain data. Justification returns a nil
// justification and no error if the block has no GRANDPA justification.
type ChainReader interface {
	BlockHash(ctx context.Context, number uint32) (common.Hash, error)
	Header(ctx context.Context, hash common.Hash) (*types.Header, error)
	AuthoritySetID(ctx context.Context, atHash common.Hash) (uint64, error)
	Authorities(ctx context.Context, atNumber uint32) (types.AuthorityList, error)
	Justification(ctx context.Context, hash common.Hash) (*types.Justification, error)
	Close() error
}

// ChainReaderFactory creates a new chain reader.
type ChainReaderFactory func(ctx context.Context) (ChainReader, error)
