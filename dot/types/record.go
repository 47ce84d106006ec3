// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"
)

// ErrRecordShape is returned when the slices of a verified justification
// record do not all have NumAuthorities entries.
var ErrRecordShape = errors.New("record is not of fixed arity")

// VerifiedJustificationRecord is the fixed arity summary of a verified
// justification. Pubkeys, Signatures and ValidatorSigned all hold
// NumAuthorities entries in authority set order, and slots of authorities
// which did not sign carry ed25519.DummySignature.
type VerifiedJustificationRecord struct {
	BlockNumber     uint32                   `json:"blockNumber"`
	SignedMessage   common.HexBytes          `json:"signedMessage"`
	Pubkeys         []ed25519.PublicKeyBytes `json:"pubkeys"`
	Signatures      []ed25519.SignatureBytes `json:"signatures"`
	NumAuthorities  uint64                   `json:"numAuthorities"`
	ValidatorSigned []bool                   `json:"validatorSigned"`
}

// CheckShape returns an error wrapping ErrRecordShape if the record
// slices do not all have NumAuthorities entries.
func (r *VerifiedJustificationRecord) CheckShape() error {
	n := r.NumAuthorities
	if uint64(len(r.Pubkeys)) != n ||
		uint64(len(r.Signatures)) != n ||
		uint64(len(r.ValidatorSigned)) != n {
		return fmt.Errorf("%w: %d pubkeys, %d signatures and %d signed flags for %d authorities",
			ErrRecordShape, len(r.Pubkeys), len(r.Signatures), len(r.ValidatorSigned), n)
	}
	return nil
}

// SignedCount returns the number of authorities flagged as signers.
func (r *VerifiedJustificationRecord) SignedCount() (count int) {
	for _, signed := range r.ValidatorSigned {
		if signed {
			count++
		}
	}
	return count
}

// StoredJustification is a verified justification record as persisted,
// along with the authority set id it was verified against.
type StoredJustification struct {
	AuthoritySetID uint64                      `json:"authoritySetId"`
	Record         VerifiedJustificationRecord `json:"record"`
}

// RotationData locates the authority list of a scheduled change
// in the SCALE encoded bytes of a header.
type RotationData struct {
	// HeaderBytes is the encoded header, zero padded to the maximum header length.
	HeaderBytes common.HexBytes `json:"headerBytes"`
	// HeaderSize is the length of the encoded header before padding.
	HeaderSize     uint64 `json:"headerSize"`
	NumAuthorities uint64 `json:"numAuthorities"`
	// ConsensusLogStart and ConsensusLogEnd delimit the authority
	// list bytes, end excluded.
	ConsensusLogStart uint64 `json:"consensusLogStart"`
	ConsensusLogEnd   uint64 `json:"consensusLogEnd"`
}

// Header returns the encoded header bytes without padding.
func (r *RotationData) Header() ([]byte, error) {
	if r.HeaderSize > uint64(len(r.HeaderBytes)) {
		return nil, fmt.Errorf("header size %d exceeds %d available bytes",
			r.HeaderSize, len(r.HeaderBytes))
	}
	return r.HeaderBytes[:r.HeaderSize], nil
}
