// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"testing"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/internal/database/badger"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) *badger.Database {
	t.Helper()

	db, err := badger.New(badger.Settings{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		err := db.Close()
		require.NoError(t, err)
	})
	return db
}

func newTestStoredJustification(blockNumber uint32, setID uint64) types.StoredJustification {
	return types.StoredJustification{
		AuthoritySetID: setID,
		Record: types.VerifiedJustificationRecord{
			BlockNumber:     blockNumber,
			SignedMessage:   common.HexBytes{1, 2, 3},
			Pubkeys:         []ed25519.PublicKeyBytes{{1}, {2}},
			Signatures:      []ed25519.SignatureBytes{{3}, ed25519.DummySignature},
			NumAuthorities:  2,
			ValidatorSigned: []bool{true, false},
		},
	}
}
