// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package witness

import (
	"testing"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"
	"github.com/ChainSafe/grandpa-bridge/lib/grandpa"

	"github.com/stretchr/testify/require"
)

const testMaxHeaderLen = 1024

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

func newTestAuthoritySet(t *testing.T, setID uint64, keypairs []*ed25519.Keypair) *types.AuthoritySet {
	t.Helper()

	authorities := make(types.AuthorityList, len(keypairs))
	for i, kp := range keypairs {
		authorities[i] = types.Authority{Key: kp.Public(), Weight: 1}
	}

	set, err := grandpa.NewAuthoritySet(setID, authorities)
	require.NoError(t, err)
	return set
}

func newTestJustification(round, setID uint64, target types.Precommit,
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

// newTestResponse returns the justification response for the target signed
// by the signers, out of the authority set formed by all the keypairs.
func newTestResponse(t *testing.T, setID uint64, target types.Precommit,
	keypairs []*ed25519.Keypair, signers ...*ed25519.Keypair) *JustificationResponse {
	t.Helper()

	set := newTestAuthoritySet(t, setID, keypairs)
	justification := newTestJustification(1, setID, target, signers...)
	record, err := grandpa.NewVerifier().Verify(justification, setID, set)
	require.NoError(t, err)

	return &JustificationResponse{
		AuthoritySetID: setID,
		Record:         *record,
	}
}

func newTestHeader(t *testing.T, number uint32, authorities types.AuthorityList) *types.Header {
	t.Helper()

	data, err := types.EncodeGrandpaConsensusMessage(types.GrandpaScheduledChange{
		Auths: authorities,
	})
	require.NoError(t, err)

	return types.NewHeader(common.Hash{1}, common.Hash{2}, common.Hash{3}, number, types.NewDigest(
		&types.PreRuntimeDigest{ConsensusEngineID: types.BabeEngineID, Data: []byte{1, 2}},
		&types.ConsensusDigest{ConsensusEngineID: types.GrandpaEngineID, Data: data},
	))
}

func newTestRotation(t *testing.T, header *types.Header) *RotationResponse {
	t.Helper()

	headerBytes, err := header.Bytes()
	require.NoError(t, err)

	rotation, err := grandpa.ExtractRotation(headerBytes, testMaxHeaderLen)
	require.NoError(t, err)

	return &RotationResponse{Rotation: *rotation}
}

var testTarget = types.Precommit{
	TargetHash:   common.Hash{0xab, 0xcd},
	TargetNumber: 90,
}
