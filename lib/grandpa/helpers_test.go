// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"testing"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"
	"github.com/ChainSafe/grandpa-bridge/pkg/scale"

	"github.com/stretchr/testify/require"
)

func newTestKeypairs(t *testing.T, n int) []*ed25519.Keypair {
	t.Helper()

	keypairs := make([]*ed25519.Keypair, n)
	for i := range keypairs {
		seed := make([]byte, ed25519.SeedLength)
		seed[0] = byte(i + 1)
		kp, err := ed25519.NewKeypairFromSeed(seed)
		require.NoError(t, err)
		keypairs[i] = kp
	}
	return keypairs
}

func newTestAuthorities(keypairs []*ed25519.Keypair) types.AuthorityList {
	authorities := make(types.AuthorityList, len(keypairs))
	for i, kp := range keypairs {
		authorities[i] = types.Authority{Key: kp.Public(), Weight: 1}
	}
	return authorities
}

func newTestAuthoritySet(t *testing.T, setID uint64, keypairs []*ed25519.Keypair) *types.AuthoritySet {
	t.Helper()

	set, err := NewAuthoritySet(setID, newTestAuthorities(keypairs))
	require.NoError(t, err)
	return set
}

var testTarget = types.Precommit{
	TargetHash:   common.Hash{0xab, 0xcd},
	TargetNumber: 90,
}

// newSignedJustification returns a justification for the target,
// with a precommit signed by each of the signers for the round and set id.
func newSignedJustification(round, setID uint64, target types.Precommit,
	signers ...*ed25519.Keypair) *types.Justification {
	message := types.NewPrecommitMessage(target, round, setID)

	precommits := make([]types.SignedPrecommit, len(signers))
	for i, signer := range signers {
		precommits[i] = types.SignedPrecommit{
			Precommit: target,
			Signature: signer.Sign(message),
			Signer:    signer.Public(),
		}
	}

	return &types.Justification{
		Round: round,
		Commit: types.Commit{
			TargetHash:   target.TargetHash,
			TargetNumber: target.TargetNumber,
			Precommits:   precommits,
		},
	}
}

func newScheduledChangeDigest(t *testing.T, authorities types.AuthorityList) *types.ConsensusDigest {
	t.Helper()

	data, err := types.EncodeGrandpaConsensusMessage(types.GrandpaScheduledChange{
		Auths: authorities,
		Delay: 0,
	})
	require.NoError(t, err)

	return &types.ConsensusDigest{
		ConsensusEngineID: types.GrandpaEngineID,
		Data:              data,
	}
}

func encodeTestHeader(t *testing.T, number uint32, items ...types.DigestItem) []byte {
	t.Helper()

	header := types.NewHeader(common.Hash{1}, common.Hash{2}, common.Hash{3},
		number, types.NewDigest(items...))
	encoded, err := scale.Marshal(*header)
	require.NoError(t, err)
	return encoded
}
