// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package witness

import (
	"context"
	"fmt"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"
	"github.com/ChainSafe/grandpa-bridge/lib/grandpa"
)

// JustificationTrace is the trace of a simple justification verification.
type JustificationTrace struct {
	BlockNumber      uint32          `json:"blockNumber"`
	AuthoritySetID   uint64          `json:"authoritySetId"`
	AuthoritySetHash common.Hash     `json:"authoritySetHash"`
	TargetHash       common.Hash     `json:"targetHash"`
	Round            uint64          `json:"round"`
	SignedMessage    common.HexBytes `json:"signedMessage"`
	NumAuthorities   uint64          `json:"numAuthorities"`
	Signers          int             `json:"signers"`
	ValidatorSigned  []bool          `json:"validatorSigned"`
}

// RotateInput is the input of a rotation computation.
type RotateInput struct {
	// AuthoritySetID is the id of the authority set finalising the epoch end block.
	AuthoritySetID uint64 `json:"authoritySetId"`
	// AuthoritySetHash is the commitment of that authority set.
	AuthoritySetHash    common.Hash `json:"authoritySetHash"`
	EpochEndBlockNumber uint32      `json:"epochEndBlockNumber"`
}

// RotateTrace is the trace of a rotation computation.
type RotateTrace struct {
	Input               RotateInput        `json:"input"`
	HeaderHash          common.Hash        `json:"headerHash"`
	HeaderSize          uint64             `json:"headerSize"`
	ConsensusLogStart   uint64             `json:"consensusLogStart"`
	ConsensusLogEnd     uint64             `json:"consensusLogEnd"`
	NewAuthoritySetID   uint64             `json:"newAuthoritySetId"`
	NewNumAuthorities   uint64             `json:"newNumAuthorities"`
	NewAuthoritySetHash common.Hash        `json:"newAuthoritySetHash"`
	Justification       JustificationTrace `json:"justification"`
}

// Computation is the deterministic verification computation. It obtains
// its data through a bridge and checks everything it relies on.
type Computation struct {
	bridge            *Bridge
	signatureVerifier SignatureVerifier
	maxAuthorities    int
}

// ComputationOption configures a Computation.
type ComputationOption func(c *Computation)

// WithMaxAuthorities sets the maximum number of authorities a rotation
// can introduce. Zero means no maximum.
func WithMaxAuthorities(maxAuthorities int) ComputationOption {
	return func(c *Computation) {
		c.maxAuthorities = maxAuthorities
	}
}

// NewComputation creates a computation over the bridge given.
// A nil signature verifier defaults to the batch verifier.
func NewComputation(bridge *Bridge, signatureVerifier SignatureVerifier,
	options ...ComputationOption) *Computation {
	if signatureVerifier == nil {
		signatureVerifier = crypto.NewSignatureVerifier(logger, 0)
	}
	c := &Computation{
		bridge:            bridge,
		signatureVerifier: signatureVerifier,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// VerifySimpleJustification verifies the justification of the block is
// signed by a quorum of the authority set committed to by setHash.
func (c *Computation) VerifySimpleJustification(ctx context.Context, blockNumber uint32,
	setID uint64, setHash common.Hash) (trace *JustificationTrace, err error) {
	response, err := c.bridge.Justification(ctx, JustificationRequest{
		BlockNumber:    blockNumber,
		AuthoritySetID: setID,
	})
	if err != nil {
		return nil, err
	}
	record := response.Record

	pubkeys, err := c.paddedKeys(record.Pubkeys)
	if err != nil {
		return nil, err
	}

	commitment, err := grandpa.AuthoritySetCommitment(pubkeys, int(record.NumAuthorities))
	if err != nil {
		return nil, fmt.Errorf("computing authority set commitment: %w", err)
	}

	if commitment != setHash {
		return nil, fmt.Errorf("%w: pubkeys commit to %s instead of %s",
			ErrCommitmentMismatch, commitment, setHash)
	}

	var signed []int
	signatures := make([]crypto.SignatureInfo, 0, record.NumAuthorities)
	for i, isSigned := range record.ValidatorSigned {
		if !isSigned {
			continue
		}
		signed = append(signed, i)
		signatures = append(signatures, crypto.SignatureInfo{
			PubKey: record.Pubkeys[i],
			Sign:   record.Signatures[i],
			Msg:    record.SignedMessage,
		})
	}

	valid := c.signatureVerifier.VerifyAll(signatures)
	for i, slot := range signed {
		if i >= len(valid) || !valid[i] {
			return nil, fmt.Errorf("%w: slot %d with public key %s",
				ErrInvalidSignature, slot, record.Pubkeys[slot])
		}
	}

	if !grandpa.QuorumReached(len(signed), int(record.NumAuthorities)) {
		return nil, fmt.Errorf("%w: %d signers out of %d authorities",
			grandpa.ErrQuorumNotMet, len(signed), record.NumAuthorities)
	}

	vote, err := types.DecodeSignedMessage(record.SignedMessage)
	if err != nil {
		return nil, err
	}

	return &JustificationTrace{
		BlockNumber:      blockNumber,
		AuthoritySetID:   setID,
		AuthoritySetHash: setHash,
		TargetHash:       vote.Vote.TargetHash,
		Round:            vote.Round,
		SignedMessage:    record.SignedMessage,
		NumAuthorities:   record.NumAuthorities,
		Signers:          len(signed),
		ValidatorSigned:  record.ValidatorSigned,
	}, nil
}

// Rotate verifies the epoch end block is finalised by the current
// authority set, and derives the commitment of the next authority set
// from the scheduled change in its header.
func (c *Computation) Rotate(ctx context.Context, input RotateInput) (trace *RotateTrace, err error) {
	response, err := c.bridge.Rotation(ctx, RotationRequest{BlockNumber: input.EpochEndBlockNumber})
	if err != nil {
		return nil, err
	}
	rotation := response.Rotation

	headerBytes, err := rotation.Header()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRotationMismatch, err)
	}

	headerHash, err := common.Blake2bHash(headerBytes)
	if err != nil {
		return nil, fmt.Errorf("hashing header: %w", err)
	}

	authorities, err := grandpa.DecodeRotationAuthorities(&rotation)
	if err != nil {
		return nil, fmt.Errorf("decoding new authorities: %w", err)
	}

	newKeys, err := c.paddedKeys(authorities.Keys())
	if err != nil {
		return nil, fmt.Errorf("new authority set: %w", err)
	}

	newSetHash, err := grandpa.AuthoritySetCommitment(newKeys, len(authorities))
	if err != nil {
		return nil, fmt.Errorf("computing new authority set commitment: %w", err)
	}

	justification, err := c.VerifySimpleJustification(ctx, input.EpochEndBlockNumber,
		input.AuthoritySetID, input.AuthoritySetHash)
	if err != nil {
		return nil, fmt.Errorf("verifying epoch end justification: %w", err)
	}

	if justification.TargetHash != headerHash {
		return nil, fmt.Errorf("%w: justification targets %s instead of header hash %s",
			ErrTargetHashMismatch, justification.TargetHash, headerHash)
	}

	logger.Debugf("rotated from authority set %d to %d with %d authorities at block %d",
		input.AuthoritySetID, input.AuthoritySetID+1, len(authorities), input.EpochEndBlockNumber)

	return &RotateTrace{
		Input:               input,
		HeaderHash:          headerHash,
		HeaderSize:          rotation.HeaderSize,
		ConsensusLogStart:   rotation.ConsensusLogStart,
		ConsensusLogEnd:     rotation.ConsensusLogEnd,
		NewAuthoritySetID:   input.AuthoritySetID + 1,
		NewNumAuthorities:   rotation.NumAuthorities,
		NewAuthoritySetHash: newSetHash,
		Justification:       *justification,
	}, nil
}

// paddedKeys pads the keys with zero keys up to the maximum number of
// authorities, if one is set. The commitment only covers the active
// keys so padding leaves it unchanged.
func (c *Computation) paddedKeys(keys []ed25519.PublicKeyBytes) ([]ed25519.PublicKeyBytes, error) {
	if c.maxAuthorities <= 0 {
		return keys, nil
	}
	return grandpa.PadAuthorityKeys(keys, c.maxAuthorities)
}
