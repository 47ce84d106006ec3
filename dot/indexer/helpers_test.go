// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package indexer

import (
	"context"
	"errors"
	"testing"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"

	"github.com/stretchr/testify/require"
)

var errDial = errors.New("dial error")

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

// newTestHeader returns a header at the given number and its hash.
func newTestHeader(t *testing.T, number uint32) (*types.Header, common.Hash) {
	t.Helper()

	parentHash := common.Hash{0xaa, byte(number >> 8), byte(number)}
	header := types.NewHeader(parentHash, common.Hash{2}, common.Hash{3}, number, types.NewDigest())
	hash, err := header.Hash()
	require.NoError(t, err)
	return header, hash
}

func newTestJustification(round, setID uint64, targetHash common.Hash, targetNumber uint32,
	signers ...*ed25519.Keypair) *types.Justification {
	target := types.Precommit{TargetHash: targetHash, TargetNumber: targetNumber}
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
			TargetHash:   targetHash,
			TargetNumber: targetNumber,
			Precommits:   precommits,
		},
	}
}

// newTestFactory returns a chain reader factory handing out the readers
// given in order, failing with errDial for nil readers or once all
// readers are handed out. The calls counter must only be read once the
// service has stopped.
func newTestFactory(readers ...ChainReader) (factory ChainReaderFactory, calls *int) {
	calls = new(int)
	factory = func(context.Context) (ChainReader, error) {
		i := *calls
		*calls++
		if i >= len(readers) || readers[i] == nil {
			return nil, errDial
		}
		return readers[i], nil
	}
	return factory, calls
}
