// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package witness

import (
	"errors"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
)

var (
	// ErrAuthoritySetIDMismatch is returned when the authority set id of a
	// response differs from the one requested.
	ErrAuthoritySetIDMismatch = errors.New("authority set id mismatch")
	// ErrBlockNumberMismatch is returned when the block number of a
	// response differs from the one requested.
	ErrBlockNumberMismatch = errors.New("block number mismatch")
	// ErrInvalidSignedMessage is returned when the signed message of a
	// record is not a 53 bytes precommit message.
	ErrInvalidSignedMessage = types.ErrInvalidSignedMessage
	// ErrRecordShape is returned when a record is not of fixed arity.
	ErrRecordShape = types.ErrRecordShape
	// ErrSpotCheckFailed is returned when a spot checked signature does not verify.
	ErrSpotCheckFailed = errors.New("signature spot check failed")
	// ErrRotationMismatch is returned when rotation data does not match
	// the data re-extracted from its header bytes.
	ErrRotationMismatch = errors.New("rotation data mismatch")
	// ErrCommitmentMismatch is returned when the authority set commitment
	// of the public keys differs from the expected authority set hash.
	ErrCommitmentMismatch = errors.New("authority set commitment mismatch")
	// ErrInvalidSignature is returned when a signed slot of a record
	// carries a signature which does not verify.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrTargetHashMismatch is returned when the signed message targets
	// another block hash than the header hash.
	ErrTargetHashMismatch = errors.New("target hash mismatch")
	// ErrEmptyResponse is returned when a provider returns no response and no error.
	ErrEmptyResponse = errors.New("empty response")
	// ErrJustificationNotFound is returned when a block has no GRANDPA justification.
	ErrJustificationNotFound = errors.New("justification not found")
)
