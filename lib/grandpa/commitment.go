// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"fmt"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"
)

// AuthoritySetCommitment returns the chained SHA-256 digest of the first
// activeCount keys: h0 = sha256(k0) and hi = sha256(h(i-1) ++ ki).
// Keys past activeCount are padding and do not change the digest.
func AuthoritySetCommitment(keys []ed25519.PublicKeyBytes, activeCount int) (common.Hash, error) {
	if activeCount <= 0 || activeCount > len(keys) {
		return common.Hash{}, fmt.Errorf("%w: %d active out of %d keys",
			ErrInvalidActiveCount, activeCount, len(keys))
	}

	digest := common.Sha256(keys[0][:])
	for i := 1; i < activeCount; i++ {
		digest = common.Sha256Concat(digest[:], keys[i][:])
	}
	return digest, nil
}

// VerifyAuthoritySetCommitment returns true if the commitment of the
// keys equals expected.
func VerifyAuthoritySetCommitment(keys []ed25519.PublicKeyBytes, activeCount int, expected common.Hash) bool {
	digest, err := AuthoritySetCommitment(keys, activeCount)
	if err != nil {
		return false
	}
	return digest == expected
}

// PadAuthorityKeys returns a copy of keys padded with zero keys to max entries.
func PadAuthorityKeys(keys []ed25519.PublicKeyBytes, max int) ([]ed25519.PublicKeyBytes, error) {
	if len(keys) > max {
		return nil, fmt.Errorf("%w: %d keys for a maximum of %d",
			ErrTooManyAuthorities, len(keys), max)
	}

	padded := make([]ed25519.PublicKeyBytes, max)
	copy(padded, keys)
	return padded, nil
}

// NewAuthoritySet builds the authority set of the given id,
// committing to the authorities in the order given.
func NewAuthoritySet(id uint64, authorities types.AuthorityList) (*types.AuthoritySet, error) {
	commitment, err := AuthoritySetCommitment(authorities.Keys(), len(authorities))
	if err != nil {
		return nil, fmt.Errorf("committing to authority set %d: %w", id, err)
	}

	return &types.AuthoritySet{
		ID:          id,
		Authorities: append(types.AuthorityList(nil), authorities...),
		Commitment:  commitment,
	}, nil
}
