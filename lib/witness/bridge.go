// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package witness

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"
	"github.com/ChainSafe/grandpa-bridge/lib/grandpa"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "witness"))

// DefaultMaxHeaderLength is the default maximum encoded header length.
const DefaultMaxHeaderLength = 4096

// Bridge wraps a provider and re-validates each of its responses.
type Bridge struct {
	provider          Provider
	signatureVerifier SignatureVerifier
	verifyAll         bool
	maxHeaderLen      int
}

// BridgeOption configures a Bridge.
type BridgeOption func(b *Bridge)

// WithVerifyAll sets whether every signed slot of a justification record
// is verified, instead of only the first one.
func WithVerifyAll(verifyAll bool) BridgeOption {
	return func(b *Bridge) {
		b.verifyAll = verifyAll
	}
}

// WithMaxHeaderLength sets the maximum encoded header length of rotations.
func WithMaxHeaderLength(maxHeaderLen int) BridgeOption {
	return func(b *Bridge) {
		b.maxHeaderLen = maxHeaderLen
	}
}

// WithBridgeSignatureVerifier sets the signature verifier used.
func WithBridgeSignatureVerifier(signatureVerifier SignatureVerifier) BridgeOption {
	return func(b *Bridge) {
		b.signatureVerifier = signatureVerifier
	}
}

// NewBridge creates a bridge over the provider given.
func NewBridge(provider Provider, options ...BridgeOption) *Bridge {
	b := &Bridge{
		provider:     provider,
		maxHeaderLen: DefaultMaxHeaderLength,
	}
	for _, option := range options {
		option(b)
	}

	if b.signatureVerifier == nil {
		b.signatureVerifier = crypto.NewSignatureVerifier(logger, 0)
	}
	return b
}

// Justification requests a justification record from the provider and
// checks it answers the request before returning it.
func (b *Bridge) Justification(ctx context.Context, request JustificationRequest) (
	*JustificationResponse, error) {
	response, err := b.provider.Justification(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("requesting justification for block %d: %w",
			request.BlockNumber, err)
	} else if response == nil {
		return nil, fmt.Errorf("%w: justification for block %d",
			ErrEmptyResponse, request.BlockNumber)
	}

	err = b.checkJustification(request, response)
	if err != nil {
		return nil, fmt.Errorf("checking justification for block %d: %w",
			request.BlockNumber, err)
	}

	return response, nil
}

func (b *Bridge) checkJustification(request JustificationRequest,
	response *JustificationResponse) error {
	if response.AuthoritySetID != request.AuthoritySetID {
		return fmt.Errorf("%w: response has %d instead of %d",
			ErrAuthoritySetIDMismatch, response.AuthoritySetID, request.AuthoritySetID)
	}

	record := response.Record
	err := record.CheckShape()
	if err != nil {
		return err
	}

	if record.NumAuthorities == 0 {
		return fmt.Errorf("%w: no authorities", ErrRecordShape)
	}

	if record.BlockNumber != request.BlockNumber {
		return fmt.Errorf("%w: record has %d instead of %d",
			ErrBlockNumberMismatch, record.BlockNumber, request.BlockNumber)
	}

	vote, err := types.DecodeSignedMessage(record.SignedMessage)
	if err != nil {
		return err
	}

	if vote.Vote.TargetNumber != request.BlockNumber {
		return fmt.Errorf("%w: signed message targets %d instead of %d",
			ErrBlockNumberMismatch, vote.Vote.TargetNumber, request.BlockNumber)
	}

	if vote.SetID != request.AuthoritySetID {
		return fmt.Errorf("%w: signed message has %d instead of %d",
			ErrAuthoritySetIDMismatch, vote.SetID, request.AuthoritySetID)
	}

	var toCheck []crypto.SignatureInfo
	for i, signed := range record.ValidatorSigned {
		if !signed {
			if record.Signatures[i] != ed25519.DummySignature {
				return fmt.Errorf("%w: unsigned slot %d has a signature", ErrRecordShape, i)
			}
			continue
		}

		if len(toCheck) > 0 && !b.verifyAll {
			continue
		}
		toCheck = append(toCheck, crypto.SignatureInfo{
			PubKey: record.Pubkeys[i],
			Sign:   record.Signatures[i],
			Msg:    record.SignedMessage,
		})
	}

	if len(toCheck) > 0 {
		valid := b.signatureVerifier.VerifyAll(toCheck)
		for i, signature := range toCheck {
			if i >= len(valid) || !valid[i] {
				return fmt.Errorf("%w: signature of %s", ErrSpotCheckFailed, signature.PubKey)
			}
		}
	}

	signers := record.SignedCount()
	if !grandpa.QuorumReached(signers, int(record.NumAuthorities)) {
		return fmt.Errorf("%w: %d signers out of %d authorities",
			grandpa.ErrQuorumNotMet, signers, record.NumAuthorities)
	}

	return nil
}

// Rotation requests the rotation data of a block from the provider and
// checks it against the data extracted again from its header bytes.
func (b *Bridge) Rotation(ctx context.Context, request RotationRequest) (*RotationResponse, error) {
	response, err := b.provider.Rotation(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("requesting rotation for block %d: %w",
			request.BlockNumber, err)
	} else if response == nil {
		return nil, fmt.Errorf("%w: rotation for block %d",
			ErrEmptyResponse, request.BlockNumber)
	}

	err = b.checkRotation(request, response.Rotation)
	if err != nil {
		return nil, fmt.Errorf("checking rotation for block %d: %w",
			request.BlockNumber, err)
	}

	return response, nil
}

func (b *Bridge) checkRotation(request RotationRequest, rotation types.RotationData) error {
	if len(rotation.HeaderBytes) != b.maxHeaderLen {
		return fmt.Errorf("%w: %d header bytes instead of %d",
			ErrRotationMismatch, len(rotation.HeaderBytes), b.maxHeaderLen)
	}

	headerBytes, err := rotation.Header()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRotationMismatch, err)
	}

	expected, err := grandpa.ExtractRotation(headerBytes, b.maxHeaderLen)
	if err != nil {
		return fmt.Errorf("extracting rotation: %w", err)
	}

	if !bytes.Equal(expected.HeaderBytes, rotation.HeaderBytes) {
		return fmt.Errorf("%w: header padding is not zeroed", ErrRotationMismatch)
	}

	if expected.NumAuthorities != rotation.NumAuthorities ||
		expected.ConsensusLogStart != rotation.ConsensusLogStart ||
		expected.ConsensusLogEnd != rotation.ConsensusLogEnd {
		return fmt.Errorf("%w: %d authorities in [%d, %d) instead of %d authorities in [%d, %d)",
			ErrRotationMismatch, rotation.NumAuthorities,
			rotation.ConsensusLogStart, rotation.ConsensusLogEnd,
			expected.NumAuthorities, expected.ConsensusLogStart, expected.ConsensusLogEnd)
	}

	header, err := types.DecodeHeader(headerBytes)
	if err != nil {
		return fmt.Errorf("decoding header: %w", err)
	}

	if header.Number != request.BlockNumber {
		return fmt.Errorf("%w: header has %d instead of %d",
			ErrBlockNumberMismatch, header.Number, request.BlockNumber)
	}

	return nil
}
